package alert

import (
	"context"

	"github.com/vitalapp/api/internal/platform/store"
)

// CollectionName is the store key for alerts.
const CollectionName = "alerts"

type memRepo struct {
	records *store.Collection[Alert]
}

// NewMemRepo returns a Repository backed by a collection registered in s.
func NewMemRepo(s *store.Store) Repository {
	return &memRepo{records: store.NewCollection[Alert](s, CollectionName)}
}

func (r *memRepo) Create(_ context.Context, a *Alert) error {
	r.records.Append(*a)
	return nil
}

func (r *memRepo) Update(_ context.Context, id string, fn func(*Alert)) (*Alert, error) {
	a, ok := r.records.Update(func(a Alert) bool { return a.ID == id }, fn)
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (r *memRepo) ListByPatient(_ context.Context, patientID string) ([]*Alert, error) {
	items := r.records.Filter(func(a Alert) bool { return a.PatientID == patientID })
	out := make([]*Alert, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out, nil
}
