package patient

import (
	"context"
	"errors"
	"time"

	"github.com/vitalapp/api/internal/platform/clock"
)

// Errors returned by the patient service. Their text is sent to clients.
var (
	ErrIncomplete = errors.New("Datos incompletos")
	ErrNotFound   = errors.New("Paciente no encontrado")
)

// IDGenerator issues record identifiers.
type IDGenerator interface {
	Next(prefix string) string
}

type Service struct {
	patients Repository
	ids      IDGenerator
	now      func() time.Time
}

func NewService(repo Repository, ids IDGenerator) *Service {
	return &Service{patients: repo, ids: ids, now: time.Now}
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.patients.List(ctx)
}

func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) CreatePatient(ctx context.Context, in CreateInput) (*Patient, error) {
	if !in.complete() {
		return nil, ErrIncomplete
	}
	p := &Patient{
		ID:        s.ids.Next(IDPrefix),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		BirthDate: in.BirthDate,
		CreatedAt: clock.Stamp(s.now()),
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
