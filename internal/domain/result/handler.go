package result

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vitalapp/api/internal/platform/middleware"
	"github.com/vitalapp/api/pkg/envelope"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/results/:patientId", h.ListResults)
	api.POST("/results", h.CreateResult)
}

func (h *Handler) ListResults(c echo.Context) error {
	items, err := h.svc.ListResultsByPatient(c.Request().Context(), c.Param("patientId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.OK(items))
}

func (h *Handler) CreateResult(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return middleware.BindError(err, ErrIncomplete.Error())
	}
	r, err := h.svc.CreateResult(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, ErrIncomplete) {
			return echo.NewHTTPError(http.StatusBadRequest, ErrIncomplete.Error())
		}
		return err
	}
	return c.JSON(http.StatusCreated, envelope.OK(r))
}
