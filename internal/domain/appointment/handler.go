package appointment

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
	api.GET("/appointments", h.ListAppointments)
	api.POST("/appointments", h.CreateAppointment)
	api.PATCH("/appointments/:id", h.PatchAppointment)
	api.DELETE("/appointments/:id", h.DeleteAppointment)
}

func (h *Handler) ListAppointments(c echo.Context) error {
	items, err := h.svc.ListAppointments(c.Request().Context(), c.QueryParam("patientId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.OK(items))
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return middleware.BindError(err, ErrIncomplete.Error())
	}
	a, err := h.svc.CreateAppointment(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, ErrIncomplete) {
			return echo.NewHTTPError(http.StatusBadRequest, ErrIncomplete.Error())
		}
		return err
	}
	return c.JSON(http.StatusCreated, envelope.OK(a))
}

func (h *Handler) PatchAppointment(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	if _, err := h.svc.GetAppointment(ctx, id); err != nil {
		return notFoundOr(err)
	}

	var p Patch
	// Body only: path params must not land in the merge.
	if err := (&echo.DefaultBinder{}).BindBody(c, &p); err != nil {
		return middleware.BindError(err, ErrIncomplete.Error())
	}
	a, err := h.svc.PatchAppointment(ctx, id, p)
	if err != nil {
		return notFoundOr(err)
	}
	return c.JSON(http.StatusOK, envelope.OK(a))
}

func (h *Handler) DeleteAppointment(c echo.Context) error {
	if err := h.svc.DeleteAppointment(c.Request().Context(), c.Param("id")); err != nil {
		return notFoundOr(err)
	}
	return c.JSON(http.StatusOK, envelope.Ack(CancelledMessage))
}

func notFoundOr(err error) error {
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
	}
	return err
}
