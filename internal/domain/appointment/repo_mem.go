package appointment

import (
	"context"

	"github.com/vitalapp/api/internal/platform/store"
)

// CollectionName is the store key for appointments.
const CollectionName = "appointments"

type memRepo struct {
	records *store.Collection[Appointment]
}

// NewMemRepo returns a Repository backed by a collection registered in s.
func NewMemRepo(s *store.Store) Repository {
	return &memRepo{records: store.NewCollection[Appointment](s, CollectionName)}
}

func withID(id string) func(Appointment) bool {
	return func(a Appointment) bool { return a.ID == id }
}

func (r *memRepo) Create(_ context.Context, a *Appointment) error {
	r.records.Append(*a)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*Appointment, error) {
	a, ok := r.records.Find(withID(id))
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (r *memRepo) Update(_ context.Context, id string, fn func(*Appointment)) (*Appointment, error) {
	a, ok := r.records.Update(withID(id), fn)
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	if !r.records.RemoveFirst(withID(id)) {
		return ErrNotFound
	}
	return nil
}

func (r *memRepo) List(_ context.Context) ([]*Appointment, error) {
	return pointers(r.records.List()), nil
}

func (r *memRepo) ListByPatient(_ context.Context, patientID string) ([]*Appointment, error) {
	return pointers(r.records.Filter(func(a Appointment) bool { return a.PatientID == patientID })), nil
}

func pointers(items []Appointment) []*Appointment {
	out := make([]*Appointment, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}
