package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vitalapp/api/pkg/envelope"
)

// Client-facing texts for failures that are not owned by a resource.
const (
	RouteNotFoundMessage = "Ruta no encontrada"
	InternalErrorMessage = "Error interno del servidor"
)

// ErrorHandler renders every error as a failure envelope. Unknown routes and
// methods become 404. Anything that is not an *echo.HTTPError, or is a plain
// 500, is replaced by a generic message. Every 5xx is logged with its cause.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := resolve(err)
		if status >= http.StatusInternalServerError {
			rid, _ := c.Get(RequestIDKey).(string)
			logger.Error().
				Err(err).
				Str("request_id", rid).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("internal error")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, envelope.Fail(message))
		}
		if werr != nil {
			logger.Error().Err(werr).Msg("write error response")
		}
	}
}

func resolve(err error) (int, string) {
	if errors.Is(err, echo.ErrNotFound) || errors.Is(err, echo.ErrMethodNotAllowed) {
		return http.StatusNotFound, RouteNotFoundMessage
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return http.StatusInternalServerError, InternalErrorMessage
	}
	// A bare 500 may carry a cause in its message; other 5xx codes are raised
	// on purpose with a client-facing text.
	if he.Code == http.StatusInternalServerError {
		return he.Code, InternalErrorMessage
	}
	return he.Code, fmt.Sprint(he.Message)
}

// BindError maps a failed c.Bind to a 400 carrying message. An oversized
// body keeps its 413.
func BindError(err error, message string) error {
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge {
		return he
	}
	return echo.NewHTTPError(http.StatusBadRequest, message).SetInternal(err)
}

func statusOf(err error) int {
	status, _ := resolve(err)
	return status
}
