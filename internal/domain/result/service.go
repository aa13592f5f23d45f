package result

import (
	"context"
	"errors"
	"time"

	"github.com/vitalapp/api/internal/platform/clock"
)

var ErrIncomplete = errors.New("Datos incompletos del resultado")

type IDGenerator interface {
	Next(prefix string) string
}

type Service struct {
	results Repository
	ids     IDGenerator
	now     func() time.Time
}

func NewService(repo Repository, ids IDGenerator) *Service {
	return &Service{results: repo, ids: ids, now: time.Now}
}

// ListResultsByPatient never fails on an unknown patient; it returns an empty
// list instead.
func (s *Service) ListResultsByPatient(ctx context.Context, patientID string) ([]*Result, error) {
	return s.results.ListByPatient(ctx, patientID)
}

func (s *Service) CreateResult(ctx context.Context, in CreateInput) (*Result, error) {
	if !in.complete() {
		return nil, ErrIncomplete
	}
	r := &Result{
		ID:             s.ids.Next(IDPrefix),
		PatientID:      in.PatientID,
		TestType:       in.TestType,
		Values:         in.Values,
		Interpretation: in.Interpretation,
		DoctorNotes:    in.DoctorNotes,
		Date:           clock.Stamp(s.now()),
	}
	if err := s.results.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}
