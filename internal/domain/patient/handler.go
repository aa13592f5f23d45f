package patient

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vitalapp/api/internal/platform/middleware"
	"github.com/vitalapp/api/pkg/envelope"
)

const listMessage = "Lista de pacientes recuperada exitosamente"

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients", h.ListPatients)
	api.GET("/patients/:id", h.GetPatient)
	api.POST("/patients", h.CreatePatient)
}

func (h *Handler) ListPatients(c echo.Context) error {
	items, err := h.svc.ListPatients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.OKWithMessage(items, listMessage))
}

func (h *Handler) GetPatient(c echo.Context) error {
	p, err := h.svc.GetPatient(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
		}
		return err
	}
	return c.JSON(http.StatusOK, envelope.OK(p))
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return middleware.BindError(err, ErrIncomplete.Error())
	}
	p, err := h.svc.CreatePatient(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, ErrIncomplete) {
			return echo.NewHTTPError(http.StatusBadRequest, ErrIncomplete.Error())
		}
		return err
	}
	return c.JSON(http.StatusCreated, envelope.OK(p))
}
