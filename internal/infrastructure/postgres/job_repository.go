package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo implements JobRepository on PostgreSQL.
type JobRepo struct {
	q Querier
}

// NewJobRepository builds the persistence adapter for print jobs.
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

// Create persists a new job.
func (r *JobRepo) Create(job *entity.Job) error {
	query := `
		INSERT INTO jobs (id, admin_id, job_no, name, client_id, client_name, quantity, description,
			delivery_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		job.ID, job.AdminID, job.JobNo, job.Name, job.ClientID, job.ClientName, job.Quantity,
		job.Description, job.DeliveryDate, job.Status, job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// GetByID fetches a job scoped by admin.
func (r *JobRepo) GetByID(adminID, id string) (*entity.Job, error) {
	query := `
		SELECT id, admin_id, job_no, name, client_id, client_name, quantity, description,
			delivery_date, status, created_at, updated_at
		FROM jobs WHERE id = $1 AND admin_id = $2`
	var j entity.Job
	err := r.q.QueryRow(context.Background(), query, id, adminID).Scan(
		&j.ID, &j.AdminID, &j.JobNo, &j.Name, &j.ClientID, &j.ClientName, &j.Quantity,
		&j.Description, &j.DeliveryDate, &j.Status, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job by id: %w", err)
	}
	return &j, nil
}

// ListByAdmin lists jobs for a tenant, newest first.
func (r *JobRepo) ListByAdmin(adminID string, limit, offset int) ([]*entity.Job, error) {
	query := `
		SELECT id, admin_id, job_no, name, client_id, client_name, quantity, description,
			delivery_date, status, created_at, updated_at
		FROM jobs WHERE admin_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, adminID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Job
	for rows.Next() {
		var j entity.Job
		if err := rows.Scan(&j.ID, &j.AdminID, &j.JobNo, &j.Name, &j.ClientID, &j.ClientName, &j.Quantity,
			&j.Description, &j.DeliveryDate, &j.Status, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		list = append(list, &j)
	}
	return list, rows.Err()
}

// Update rewrites a job's fields.
func (r *JobRepo) Update(job *entity.Job) error {
	query := `
		UPDATE jobs SET name = $3, client_id = $4, client_name = $5, quantity = $6, description = $7,
			delivery_date = $8, status = $9, updated_at = $10
		WHERE id = $1 AND admin_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		job.ID, job.AdminID, job.Name, job.ClientID, job.ClientName, job.Quantity,
		job.Description, job.DeliveryDate, job.Status, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// Delete removes a job scoped by admin.
func (r *JobRepo) Delete(adminID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM jobs WHERE id = $1 AND admin_id = $2`, id, adminID)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}
