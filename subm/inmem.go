package subm

import (
	"context"
	"sort"
	"sync"
)

// InMemSubmRepo keeps submission rows in memory. Used by tests.
type InMemSubmRepo struct {
	mu   sync.RWMutex
	rows []SubmRow
}

func NewInMemSubmRepo() *InMemSubmRepo {
	return &InMemSubmRepo{}
}

func (r *InMemSubmRepo) Store(ctx context.Context, row *SubmRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *row)
	return nil
}

func (r *InMemSubmRepo) ListByForm(ctx context.Context, formUuid string) ([]*SubmRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []*SubmRow
	for _, row := range r.rows {
		if row.FormUuid == formUuid {
			copy := row
			res = append(res, &copy)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].SortKey < res[j].SortKey
	})
	return res, nil
}
