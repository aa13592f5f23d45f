package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// AuditEntry records one access to patient data.
type AuditEntry struct {
	Resource   string
	Action     string // read, create, update, delete
	PatientID  string
	RecordID   string
	Method     string
	Path       string
	IPAddress  string
	UserAgent  string
	RequestID  string
	StatusCode int
	Timestamp  time.Time
}

// AuditRecorder persists audit entries in addition to the log line.
type AuditRecorder interface {
	RecordAccess(entry AuditEntry) error
}

// AuditRecorderFunc is a function adapter for AuditRecorder.
type AuditRecorderFunc func(entry AuditEntry) error

func (f AuditRecorderFunc) RecordAccess(entry AuditEntry) error {
	return f(entry)
}

// Audit logs every matched /api request as a data access event. It must be
// registered on a group so route params are resolved when it runs.
func Audit(logger zerolog.Logger, recorders ...AuditRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			req := c.Request()
			entry := AuditEntry{
				Resource:   resourceOf(c.Path()),
				Action:     actionOf(req.Method),
				Method:     req.Method,
				Path:       req.URL.Path,
				IPAddress:  c.RealIP(),
				UserAgent:  req.UserAgent(),
				StatusCode: c.Response().Status,
				Timestamp:  time.Now().UTC(),
			}
			if err != nil {
				entry.StatusCode = statusOf(err)
			}
			if rid, ok := c.Get(RequestIDKey).(string); ok {
				entry.RequestID = rid
			}
			entry.PatientID, entry.RecordID = subjectOf(c, entry.Resource)

			for _, r := range recorders {
				if r == nil {
					continue
				}
				if recErr := r.RecordAccess(entry); recErr != nil {
					logger.Error().Err(recErr).
						Str("request_id", entry.RequestID).
						Msg("failed to record audit entry")
				}
			}

			logger.Info().
				Str("type", "data_access").
				Str("request_id", entry.RequestID).
				Str("resource", entry.Resource).
				Str("action", entry.Action).
				Str("patient_id", entry.PatientID).
				Str("record_id", entry.RecordID).
				Str("remote_ip", entry.IPAddress).
				Int("status", entry.StatusCode).
				Msg("audit")

			return err
		}
	}
}

func actionOf(method string) string {
	switch method {
	case http.MethodPost:
		return "create"
	case http.MethodPut, http.MethodPatch:
		return "update"
	case http.MethodDelete:
		return "delete"
	default:
		return "read"
	}
}

// resourceOf takes the first segment after /api/ from the route template,
// e.g. /api/alerts/:id/read -> alerts.
func resourceOf(route string) string {
	rest := strings.TrimPrefix(route, "/api/")
	if rest == route {
		return "unknown"
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" || rest == "*" {
		return "unknown"
	}
	return rest
}

// subjectOf extracts the patient and record ids touched by the request.
func subjectOf(c echo.Context, resource string) (patientID, recordID string) {
	patientID = c.Param("patientId")
	if patientID == "" {
		patientID = c.QueryParam("patientId")
	}
	recordID = c.Param("id")
	if resource == "patients" && recordID != "" {
		patientID = recordID
	}
	return patientID, recordID
}
