package result

import "context"

type Repository interface {
	Create(ctx context.Context, r *Result) error
	ListByPatient(ctx context.Context, patientID string) ([]*Result, error)
}
