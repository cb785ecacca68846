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

var _ repository.EstimateRepository = (*EstimateRepo)(nil)

// EstimateRepo implements EstimateRepository on PostgreSQL. Same shape as
// QuotationRepo over the estimates tables.
type EstimateRepo struct {
	q Querier
}

// NewEstimateRepository builds the persistence adapter for estimates.
func NewEstimateRepository(q Querier) *EstimateRepo {
	return &EstimateRepo{q: q}
}

const estimateColumns = `id, admin_id, estimate_no, client_id, client_name, date, subtotal, discount,
		vat_rate, vat_amount, grand_total, remarks, created_at, updated_at`

// Create persists the estimate header and its lines.
func (r *EstimateRepo) Create(estimate *entity.Estimate) error {
	query := `
		INSERT INTO estimates (` + estimateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		estimate.ID, estimate.AdminID, estimate.EstimateNo, estimate.ClientID, estimate.ClientName,
		estimate.Date, estimate.Subtotal, estimate.Discount, estimate.VATRate, estimate.VATAmount,
		estimate.GrandTotal, estimate.Remarks, estimate.CreatedAt, estimate.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("estimate number already exists: %w", err)
		}
		return fmt.Errorf("insert estimate: %w", err)
	}
	return r.insertItems(estimate.ID, estimate.Items)
}

// GetByID fetches an estimate with its lines, scoped by admin.
func (r *EstimateRepo) GetByID(adminID, id string) (*entity.Estimate, error) {
	query := `SELECT ` + estimateColumns + ` FROM estimates WHERE id = $1 AND admin_id = $2`
	var est entity.Estimate
	err := r.q.QueryRow(context.Background(), query, id, adminID).Scan(
		&est.ID, &est.AdminID, &est.EstimateNo, &est.ClientID, &est.ClientName, &est.Date,
		&est.Subtotal, &est.Discount, &est.VATRate, &est.VATAmount, &est.GrandTotal, &est.Remarks,
		&est.CreatedAt, &est.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estimate by id: %w", err)
	}
	items, err := r.listItems(est.ID)
	if err != nil {
		return nil, err
	}
	est.Items = items
	return &est, nil
}

// ListByAdmin lists estimates (headers with lines) for a tenant, newest first.
func (r *EstimateRepo) ListByAdmin(adminID string, limit, offset int) ([]*entity.Estimate, error) {
	query := `SELECT ` + estimateColumns + ` FROM estimates WHERE admin_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, adminID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list estimates: %w", err)
	}
	defer rows.Close()
	var list []*entity.Estimate
	for rows.Next() {
		var est entity.Estimate
		if err := rows.Scan(&est.ID, &est.AdminID, &est.EstimateNo, &est.ClientID, &est.ClientName, &est.Date,
			&est.Subtotal, &est.Discount, &est.VATRate, &est.VATAmount, &est.GrandTotal, &est.Remarks,
			&est.CreatedAt, &est.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan estimate: %w", err)
		}
		list = append(list, &est)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, est := range list {
		items, err := r.listItems(est.ID)
		if err != nil {
			return nil, err
		}
		est.Items = items
	}
	return list, nil
}

// Update rewrites the header and replaces all lines.
func (r *EstimateRepo) Update(estimate *entity.Estimate) error {
	query := `
		UPDATE estimates SET client_id = $3, client_name = $4, date = $5, subtotal = $6, discount = $7,
			vat_rate = $8, vat_amount = $9, grand_total = $10, remarks = $11, updated_at = $12
		WHERE id = $1 AND admin_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		estimate.ID, estimate.AdminID, estimate.ClientID, estimate.ClientName, estimate.Date,
		estimate.Subtotal, estimate.Discount, estimate.VATRate, estimate.VATAmount,
		estimate.GrandTotal, estimate.Remarks, estimate.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update estimate: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM estimate_items WHERE estimate_id = $1`, estimate.ID); err != nil {
		return fmt.Errorf("delete estimate items: %w", err)
	}
	return r.insertItems(estimate.ID, estimate.Items)
}

// Delete removes an estimate and its lines (ON DELETE CASCADE).
func (r *EstimateRepo) Delete(adminID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM estimates WHERE id = $1 AND admin_id = $2`, id, adminID)
	if err != nil {
		return fmt.Errorf("delete estimate: %w", err)
	}
	return nil
}

func (r *EstimateRepo) insertItems(estimateID string, items []entity.EstimateItem) error {
	query := `
		INSERT INTO estimate_items (id, estimate_id, position, particular, quantity, rate, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
		items[i].EstimateID = estimateID
		_, err := r.q.Exec(context.Background(), query,
			items[i].ID, estimateID, i, items[i].Particular, items[i].Quantity, items[i].Rate, items[i].Amount,
		)
		if err != nil {
			return fmt.Errorf("insert estimate item: %w", err)
		}
	}
	return nil
}

func (r *EstimateRepo) listItems(estimateID string) ([]entity.EstimateItem, error) {
	query := `
		SELECT id, estimate_id, particular, quantity, rate, amount
		FROM estimate_items WHERE estimate_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, estimateID)
	if err != nil {
		return nil, fmt.Errorf("list estimate items: %w", err)
	}
	defer rows.Close()
	var items []entity.EstimateItem
	for rows.Next() {
		var it entity.EstimateItem
		if err := rows.Scan(&it.ID, &it.EstimateID, &it.Particular, &it.Quantity, &it.Rate, &it.Amount); err != nil {
			return nil, fmt.Errorf("scan estimate item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
