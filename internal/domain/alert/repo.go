package alert

import "context"

type Repository interface {
	Create(ctx context.Context, a *Alert) error
	// Update runs fn against the stored alert and returns the result.
	Update(ctx context.Context, id string, fn func(*Alert)) (*Alert, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Alert, error)
}
