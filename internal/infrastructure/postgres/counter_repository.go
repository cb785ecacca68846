package postgres

import (
	"context"
	"fmt"

	"github.com/sajiloprint/press-api/internal/domain/repository"
)

var _ repository.CounterRepository = (*CounterRepo)(nil)

// CounterRepo implements CounterRepository on PostgreSQL. Meant to run inside
// the transaction that creates the numbered document.
type CounterRepo struct {
	q Querier
}

// NewCounterRepository builds the persistence adapter for document counters.
func NewCounterRepository(q Querier) *CounterRepo {
	return &CounterRepo{q: q}
}

// Next atomically increments and returns the tenant's counter for kind,
// starting at 1.
func (r *CounterRepo) Next(adminID, kind string) (int64, error) {
	query := `
		INSERT INTO counters (admin_id, kind, value)
		VALUES ($1, $2, 1)
		ON CONFLICT (admin_id, kind)
		DO UPDATE SET value = counters.value + 1
		RETURNING value`
	var n int64
	if err := r.q.QueryRow(context.Background(), query, adminID, kind).Scan(&n); err != nil {
		return 0, fmt.Errorf("next counter value: %w", err)
	}
	return n, nil
}
