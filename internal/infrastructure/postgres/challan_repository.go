package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/internal/domain/repository"
)

var _ repository.ChallanRepository = (*ChallanRepo)(nil)

// ChallanRepo implements ChallanRepository on PostgreSQL.
type ChallanRepo struct {
	q Querier
}

// NewChallanRepository builds the persistence adapter for delivery notes.
func NewChallanRepository(q Querier) *ChallanRepo {
	return &ChallanRepo{q: q}
}

const challanColumns = `id, admin_id, challan_no, client_id, client_name, job_id, job_no, job_name,
		date, remarks, created_at, updated_at`

// Create persists the challan header and its lines.
func (r *ChallanRepo) Create(challan *entity.Challan) error {
	query := `
		INSERT INTO challans (` + challanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		challan.ID, challan.AdminID, challan.ChallanNo, challan.ClientID, challan.ClientName,
		challan.JobID, challan.JobNo, challan.JobName, challan.Date, challan.Remarks,
		challan.CreatedAt, challan.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("challan number already exists: %w", err)
		}
		return fmt.Errorf("insert challan: %w", err)
	}
	return r.insertItems(challan.ID, challan.Items)
}

// GetByID fetches a challan with its lines, scoped by admin.
func (r *ChallanRepo) GetByID(adminID, id string) (*entity.Challan, error) {
	query := `SELECT ` + challanColumns + ` FROM challans WHERE id = $1 AND admin_id = $2`
	var ch entity.Challan
	err := r.q.QueryRow(context.Background(), query, id, adminID).Scan(
		&ch.ID, &ch.AdminID, &ch.ChallanNo, &ch.ClientID, &ch.ClientName,
		&ch.JobID, &ch.JobNo, &ch.JobName, &ch.Date, &ch.Remarks,
		&ch.CreatedAt, &ch.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get challan by id: %w", err)
	}
	items, err := r.listItems(ch.ID)
	if err != nil {
		return nil, err
	}
	ch.Items = items
	return &ch, nil
}

// ListByAdmin lists challans (headers with lines) for a tenant, newest first.
func (r *ChallanRepo) ListByAdmin(adminID string, limit, offset int) ([]*entity.Challan, error) {
	query := `SELECT ` + challanColumns + ` FROM challans WHERE admin_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, adminID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list challans: %w", err)
	}
	defer rows.Close()
	var list []*entity.Challan
	for rows.Next() {
		var ch entity.Challan
		if err := rows.Scan(&ch.ID, &ch.AdminID, &ch.ChallanNo, &ch.ClientID, &ch.ClientName,
			&ch.JobID, &ch.JobNo, &ch.JobName, &ch.Date, &ch.Remarks,
			&ch.CreatedAt, &ch.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan challan: %w", err)
		}
		list = append(list, &ch)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, ch := range list {
		items, err := r.listItems(ch.ID)
		if err != nil {
			return nil, err
		}
		ch.Items = items
	}
	return list, nil
}

// Update rewrites the header and replaces all lines.
func (r *ChallanRepo) Update(challan *entity.Challan) error {
	query := `
		UPDATE challans SET client_id = $3, client_name = $4, job_id = $5, job_no = $6, job_name = $7,
			date = $8, remarks = $9, updated_at = $10
		WHERE id = $1 AND admin_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		challan.ID, challan.AdminID, challan.ClientID, challan.ClientName,
		challan.JobID, challan.JobNo, challan.JobName, challan.Date, challan.Remarks,
		challan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update challan: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM challan_items WHERE challan_id = $1`, challan.ID); err != nil {
		return fmt.Errorf("delete challan items: %w", err)
	}
	return r.insertItems(challan.ID, challan.Items)
}

// Delete removes a challan and its lines (ON DELETE CASCADE).
func (r *ChallanRepo) Delete(adminID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM challans WHERE id = $1 AND admin_id = $2`, id, adminID)
	if err != nil {
		return fmt.Errorf("delete challan: %w", err)
	}
	return nil
}

func (r *ChallanRepo) insertItems(challanID string, items []entity.ChallanItem) error {
	query := `
		INSERT INTO challan_items (id, challan_id, position, description, quantity, unit, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
		items[i].ChallanID = challanID
		_, err := r.q.Exec(context.Background(), query,
			items[i].ID, challanID, i, items[i].Description, items[i].Quantity, items[i].Unit, items[i].Remarks,
		)
		if err != nil {
			return fmt.Errorf("insert challan item: %w", err)
		}
	}
	return nil
}

func (r *ChallanRepo) listItems(challanID string) ([]entity.ChallanItem, error) {
	query := `
		SELECT id, challan_id, description, quantity, unit, remarks
		FROM challan_items WHERE challan_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, challanID)
	if err != nil {
		return nil, fmt.Errorf("list challan items: %w", err)
	}
	defer rows.Close()
	var items []entity.ChallanItem
	for rows.Next() {
		var it entity.ChallanItem
		if err := rows.Scan(&it.ID, &it.ChallanID, &it.Description, &it.Quantity, &it.Unit, &it.Remarks); err != nil {
			return nil, fmt.Errorf("scan challan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
