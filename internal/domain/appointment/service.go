package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/vitalapp/api/internal/platform/clock"
)

var (
	ErrIncomplete = errors.New("Datos incompletos para la cita")
	ErrNotFound   = errors.New("Cita no encontrada")
)

// CancelledMessage acknowledges a deleted appointment.
const CancelledMessage = "Cita cancelada exitosamente"

type IDGenerator interface {
	Next(prefix string) string
}

type Service struct {
	appointments Repository
	ids          IDGenerator
	now          func() time.Time
}

func NewService(repo Repository, ids IDGenerator) *Service {
	return &Service{appointments: repo, ids: ids, now: time.Now}
}

// ListAppointments returns every appointment, or only those of patientID
// when it is non-empty.
func (s *Service) ListAppointments(ctx context.Context, patientID string) ([]*Appointment, error) {
	if patientID != "" {
		return s.appointments.ListByPatient(ctx, patientID)
	}
	return s.appointments.List(ctx)
}

func (s *Service) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) CreateAppointment(ctx context.Context, in CreateInput) (*Appointment, error) {
	if !in.complete() {
		return nil, ErrIncomplete
	}
	a := &Appointment{
		ID:         s.ids.Next(IDPrefix),
		PatientID:  in.PatientID,
		DoctorName: in.DoctorName,
		Date:       in.Date,
		Time:       in.Time,
		Reason:     in.Reason,
		Status:     StatusScheduled,
		CreatedAt:  clock.Stamp(s.now()),
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) PatchAppointment(ctx context.Context, id string, p Patch) (*Appointment, error) {
	ts := clock.Stamp(s.now())
	return s.appointments.Update(ctx, id, func(a *Appointment) {
		p.applyTo(a)
		a.stamp(ts)
	})
}

func (s *Service) DeleteAppointment(ctx context.Context, id string) error {
	return s.appointments.Delete(ctx, id)
}
