package alert

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	return NewHandler(newTestService(nil)), echo.New()
}

type alertReply struct {
	Success bool   `json:"success"`
	Data    *Alert `json:"data"`
}

func createAlert(t *testing.T, h *Handler, e *echo.Echo, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h.CreateAlert(e.NewContext(req, rec))
}

func TestHandler_CreateAlert(t *testing.T) {
	h, e := newTestHandler()
	rec, err := createAlert(t, h, e, `{"patientId":"PAT1","message":"Test alert","priority":"low"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var body alertReply
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Data.Type != "general" || body.Data.IsRead {
		t.Errorf("unexpected alert %+v", body.Data)
	}
	if !strings.Contains(rec.Body.String(), `"isRead":false`) {
		t.Errorf("expected isRead false in body, got %s", rec.Body.String())
	}
}

func TestHandler_CreateAlert_MissingFields(t *testing.T) {
	h, e := newTestHandler()
	_, err := createAlert(t, h, e, `{"type":"medication","message":"Test alert"}`)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if he.Message != "Datos incompletos de la alerta" {
		t.Errorf("unexpected message %v", he.Message)
	}
}

func TestHandler_MarkRead(t *testing.T) {
	h, e := newTestHandler()
	rec, _ := createAlert(t, h, e, `{"patientId":"PAT1","message":"Test alert","priority":"high"}`)
	var created alertReply
	json.Unmarshal(rec.Body.Bytes(), &created)

	req := httptest.NewRequest(http.MethodPatch, "/", nil)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(created.Data.ID)

	if err := h.MarkRead(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body alertReply
	json.Unmarshal(rec.Body.Bytes(), &body)
	if !body.Data.IsRead || body.Data.ReadAt == "" {
		t.Errorf("expected read alert, got %+v", body.Data)
	}
}

func TestHandler_MarkRead_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPatch, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("NON_EXISTENT_ID")

	err := h.MarkRead(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound || he.Message != "Alerta no encontrada" {
		t.Fatalf("expected 404 Alerta no encontrada, got %v", err)
	}
}

func TestHandler_ListAlerts(t *testing.T) {
	h, e := newTestHandler()
	createAlert(t, h, e, `{"patientId":"PAT1","message":"Test alert 1","priority":"high"}`)
	createAlert(t, h, e, `{"patientId":"PAT1","message":"Test alert 2","priority":"low"}`)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues("PAT1")

	if err := h.ListAlerts(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body struct {
		Data []Alert `json:"data"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if len(body.Data) != 2 {
		t.Errorf("expected 2 alerts, got %d", len(body.Data))
	}
}
