package user

import (
	"context"
	"sync"
)

// InMemUserRepo keeps user rows in memory. Used by tests.
type InMemUserRepo struct {
	mu   sync.RWMutex
	rows map[string]UserRow
}

func NewInMemUserRepo() *InMemUserRepo {
	return &InMemUserRepo{rows: make(map[string]UserRow)}
}

func (r *InMemUserRepo) Save(ctx context.Context, row *UserRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row.Version++
	r.rows[row.Uuid] = *row
	return nil
}

func (r *InMemUserRepo) List(ctx context.Context) ([]*UserRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]*UserRow, 0, len(r.rows))
	for _, row := range r.rows {
		copy := row
		res = append(res, &copy)
	}
	return res, nil
}
