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

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implements QuotationRepository on PostgreSQL. Lines live in
// quotation_items; Update rewrites them wholesale.
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository builds the persistence adapter for quotations.
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

const quotationColumns = `id, admin_id, quotation_no, client_id, client_name, date, subtotal, discount,
		vat_rate, vat_amount, grand_total, remarks, created_at, updated_at`

// Create persists the quotation header and its lines.
func (r *QuotationRepo) Create(quotation *entity.Quotation) error {
	query := `
		INSERT INTO quotations (` + quotationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		quotation.ID, quotation.AdminID, quotation.QuotationNo, quotation.ClientID, quotation.ClientName,
		quotation.Date, quotation.Subtotal, quotation.Discount, quotation.VATRate, quotation.VATAmount,
		quotation.GrandTotal, quotation.Remarks, quotation.CreatedAt, quotation.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("quotation number already exists: %w", err)
		}
		return fmt.Errorf("insert quotation: %w", err)
	}
	return r.insertItems(quotation.ID, quotation.Items)
}

// GetByID fetches a quotation with its lines, scoped by admin.
func (r *QuotationRepo) GetByID(adminID, id string) (*entity.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE id = $1 AND admin_id = $2`
	var qt entity.Quotation
	err := r.q.QueryRow(context.Background(), query, id, adminID).Scan(
		&qt.ID, &qt.AdminID, &qt.QuotationNo, &qt.ClientID, &qt.ClientName, &qt.Date,
		&qt.Subtotal, &qt.Discount, &qt.VATRate, &qt.VATAmount, &qt.GrandTotal, &qt.Remarks,
		&qt.CreatedAt, &qt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation by id: %w", err)
	}
	items, err := r.listItems(qt.ID)
	if err != nil {
		return nil, err
	}
	qt.Items = items
	return &qt, nil
}

// ListByAdmin lists quotations (headers with lines) for a tenant, newest first.
func (r *QuotationRepo) ListByAdmin(adminID string, limit, offset int) ([]*entity.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE admin_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, adminID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quotation
	for rows.Next() {
		var qt entity.Quotation
		if err := rows.Scan(&qt.ID, &qt.AdminID, &qt.QuotationNo, &qt.ClientID, &qt.ClientName, &qt.Date,
			&qt.Subtotal, &qt.Discount, &qt.VATRate, &qt.VATAmount, &qt.GrandTotal, &qt.Remarks,
			&qt.CreatedAt, &qt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		list = append(list, &qt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, qt := range list {
		items, err := r.listItems(qt.ID)
		if err != nil {
			return nil, err
		}
		qt.Items = items
	}
	return list, nil
}

// Update rewrites the header and replaces all lines.
func (r *QuotationRepo) Update(quotation *entity.Quotation) error {
	query := `
		UPDATE quotations SET client_id = $3, client_name = $4, date = $5, subtotal = $6, discount = $7,
			vat_rate = $8, vat_amount = $9, grand_total = $10, remarks = $11, updated_at = $12
		WHERE id = $1 AND admin_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		quotation.ID, quotation.AdminID, quotation.ClientID, quotation.ClientName, quotation.Date,
		quotation.Subtotal, quotation.Discount, quotation.VATRate, quotation.VATAmount,
		quotation.GrandTotal, quotation.Remarks, quotation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quotation: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM quotation_items WHERE quotation_id = $1`, quotation.ID); err != nil {
		return fmt.Errorf("delete quotation items: %w", err)
	}
	return r.insertItems(quotation.ID, quotation.Items)
}

// Delete removes a quotation and its lines (ON DELETE CASCADE).
func (r *QuotationRepo) Delete(adminID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM quotations WHERE id = $1 AND admin_id = $2`, id, adminID)
	if err != nil {
		return fmt.Errorf("delete quotation: %w", err)
	}
	return nil
}

func (r *QuotationRepo) insertItems(quotationID string, items []entity.QuotationItem) error {
	query := `
		INSERT INTO quotation_items (id, quotation_id, position, particular, quantity, rate, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
		items[i].QuotationID = quotationID
		_, err := r.q.Exec(context.Background(), query,
			items[i].ID, quotationID, i, items[i].Particular, items[i].Quantity, items[i].Rate, items[i].Amount,
		)
		if err != nil {
			return fmt.Errorf("insert quotation item: %w", err)
		}
	}
	return nil
}

func (r *QuotationRepo) listItems(quotationID string) ([]entity.QuotationItem, error) {
	query := `
		SELECT id, quotation_id, particular, quantity, rate, amount
		FROM quotation_items WHERE quotation_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list quotation items: %w", err)
	}
	defer rows.Close()
	var items []entity.QuotationItem
	for rows.Next() {
		var it entity.QuotationItem
		if err := rows.Scan(&it.ID, &it.QuotationID, &it.Particular, &it.Quantity, &it.Rate, &it.Amount); err != nil {
			return nil, fmt.Errorf("scan quotation item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
