package appointment

import "context"

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)
	// Update runs fn against the stored appointment and returns the result.
	Update(ctx context.Context, id string, fn func(*Appointment)) (*Appointment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error)
}
