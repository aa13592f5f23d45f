package alert

import (
	"context"
	"errors"
	"time"

	"github.com/vitalapp/api/internal/platform/clock"
)

var (
	ErrIncomplete = errors.New("Datos incompletos de la alerta")
	ErrNotFound   = errors.New("Alerta no encontrada")
)

type IDGenerator interface {
	Next(prefix string) string
}

type Service struct {
	alerts Repository
	ids    IDGenerator
	events Events
	now    func() time.Time
}

// NewService wires the alert service. events may be nil.
func NewService(repo Repository, ids IDGenerator, events Events) *Service {
	if events == nil {
		events = nopEvents{}
	}
	return &Service{alerts: repo, ids: ids, events: events, now: time.Now}
}

func (s *Service) ListAlertsByPatient(ctx context.Context, patientID string) ([]*Alert, error) {
	return s.alerts.ListByPatient(ctx, patientID)
}

func (s *Service) CreateAlert(ctx context.Context, in CreateInput) (*Alert, error) {
	if !in.complete() {
		return nil, ErrIncomplete
	}
	typ := in.Type
	if typ == "" {
		typ = DefaultType
	}
	a := &Alert{
		ID:        s.ids.Next(IDPrefix),
		PatientID: in.PatientID,
		Type:      typ,
		Message:   in.Message,
		Priority:  in.Priority,
		IsRead:    false,
		CreatedAt: clock.Stamp(s.now()),
	}
	if err := s.alerts.Create(ctx, a); err != nil {
		return nil, err
	}
	s.events.AlertCreated(ctx, a)
	return a, nil
}

// MarkRead is idempotent; each call overwrites ReadAt.
func (s *Service) MarkRead(ctx context.Context, id string) (*Alert, error) {
	stamp := clock.Stamp(s.now())
	a, err := s.alerts.Update(ctx, id, func(a *Alert) {
		a.IsRead = true
		a.ReadAt = stamp
	})
	if err != nil {
		return nil, err
	}
	s.events.AlertRead(ctx, a)
	return a, nil
}
