package patient

import (
	"context"

	"github.com/vitalapp/api/internal/platform/store"
)

// CollectionName is the store key for patients.
const CollectionName = "patients"

type memRepo struct {
	records *store.Collection[Patient]
}

// NewMemRepo returns a Repository backed by a collection registered in s.
func NewMemRepo(s *store.Store) Repository {
	return &memRepo{records: store.NewCollection[Patient](s, CollectionName)}
}

func (r *memRepo) Create(_ context.Context, p *Patient) error {
	r.records.Append(*p)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*Patient, error) {
	p, ok := r.records.Find(func(p Patient) bool { return p.ID == id })
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *memRepo) List(_ context.Context) ([]*Patient, error) {
	all := r.records.List()
	out := make([]*Patient, len(all))
	for i := range all {
		out[i] = &all[i]
	}
	return out, nil
}
