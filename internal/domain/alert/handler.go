package alert

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
	api.GET("/alerts/:patientId", h.ListAlerts)
	api.POST("/alerts", h.CreateAlert)
	api.PATCH("/alerts/:id/read", h.MarkRead)
}

func (h *Handler) ListAlerts(c echo.Context) error {
	items, err := h.svc.ListAlertsByPatient(c.Request().Context(), c.Param("patientId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.OK(items))
}

func (h *Handler) CreateAlert(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return middleware.BindError(err, ErrIncomplete.Error())
	}
	a, err := h.svc.CreateAlert(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, ErrIncomplete) {
			return echo.NewHTTPError(http.StatusBadRequest, ErrIncomplete.Error())
		}
		return err
	}
	return c.JSON(http.StatusCreated, envelope.OK(a))
}

func (h *Handler) MarkRead(c echo.Context) error {
	a, err := h.svc.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
		}
		return err
	}
	return c.JSON(http.StatusOK, envelope.OK(a))
}
