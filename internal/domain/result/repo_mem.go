package result

import (
	"context"

	"github.com/vitalapp/api/internal/platform/store"
)

// CollectionName is the store key for results.
const CollectionName = "results"

type memRepo struct {
	records *store.Collection[Result]
}

// NewMemRepo returns a Repository backed by a collection registered in s.
func NewMemRepo(s *store.Store) Repository {
	return &memRepo{records: store.NewCollection[Result](s, CollectionName)}
}

func (m *memRepo) Create(_ context.Context, r *Result) error {
	m.records.Append(*r)
	return nil
}

func (m *memRepo) ListByPatient(_ context.Context, patientID string) ([]*Result, error) {
	items := m.records.Filter(func(r Result) bool { return r.PatientID == patientID })
	out := make([]*Result, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out, nil
}
