package form

import (
	"context"
	"sort"
	"sync"
)

// InMemFormRepo keeps form rows in memory. Used by tests.
type InMemFormRepo struct {
	mu   sync.RWMutex
	rows map[string]FormRow
}

func NewInMemFormRepo() *InMemFormRepo {
	return &InMemFormRepo{rows: make(map[string]FormRow)}
}

func (r *InMemFormRepo) Save(ctx context.Context, row *FormRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row.Version++
	r.rows[row.Uuid] = *row
	return nil
}

func (r *InMemFormRepo) ListByOwner(ctx context.Context, ownerUuid string) ([]*FormRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []*FormRow
	for _, row := range r.rows {
		if row.OwnerUuid == ownerUuid {
			copy := row
			res = append(res, &copy)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.Before(res[j].CreatedAt)
	})
	return res, nil
}

func (r *InMemFormRepo) GetActiveByCode(ctx context.Context, code string) (*FormRow, error) {
	row, err := r.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if row == nil || !row.Active {
		return nil, nil
	}
	return row, nil
}

func (r *InMemFormRepo) GetByCode(ctx context.Context, code string) (*FormRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.AccessCode == code {
			copy := row
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *InMemFormRepo) GetActiveByID(ctx context.Context, id string) (*FormRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[id]
	if !ok || !row.Active {
		return nil, nil
	}
	copy := row
	return &copy, nil
}

func (r *InMemFormRepo) GetOwned(ctx context.Context, id string, ownerUuid string) (*FormRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[id]
	if !ok || row.OwnerUuid != ownerUuid {
		return nil, nil
	}
	copy := row
	return &copy, nil
}
