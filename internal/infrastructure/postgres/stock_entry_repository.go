package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

// StockEntryRepo implements StockEntryRepository on PostgreSQL.
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository builds the persistence adapter for ledger rows.
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

const stockEntryColumns = `id, admin_id, paper_id, date, entry_type, issued_paper, wastage, added_stock,
		remaining, clamped, job_id, job_no, job_name, remarks, created_at, updated_at`

// Create persists a new ledger row.
func (r *StockEntryRepo) Create(entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (` + stockEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.AdminID, entry.PaperID, entry.Date, entry.EntryType,
		entry.IssuedPaper, entry.Wastage, entry.AddedStock, entry.Remaining, entry.Clamped,
		entry.JobID, entry.JobNo, entry.JobName, entry.Remarks, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock entry: %w", err)
	}
	return nil
}

// GetByID fetches a ledger row scoped by admin.
func (r *StockEntryRepo) GetByID(adminID, id string) (*entity.StockEntry, error) {
	query := `SELECT ` + stockEntryColumns + ` FROM stock_entries WHERE id = $1 AND admin_id = $2`
	var e entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, id, adminID).Scan(
		&e.ID, &e.AdminID, &e.PaperID, &e.Date, &e.EntryType,
		&e.IssuedPaper, &e.Wastage, &e.AddedStock, &e.Remaining, &e.Clamped,
		&e.JobID, &e.JobNo, &e.JobName, &e.Remarks, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock entry by id: %w", err)
	}
	return &e, nil
}

// ListByPaperAsc returns a paper's full ledger in recomputation order:
// date ascending, then created_at ascending.
func (r *StockEntryRepo) ListByPaperAsc(adminID, paperID string) ([]*entity.StockEntry, error) {
	query := `
		SELECT ` + stockEntryColumns + `
		FROM stock_entries WHERE paper_id = $1 AND admin_id = $2
		ORDER BY date ASC, created_at ASC`
	return r.list(query, paperID, adminID)
}

// ListByPaperDesc returns a paper's full ledger in display order (most recent
// date first).
func (r *StockEntryRepo) ListByPaperDesc(adminID, paperID string) ([]*entity.StockEntry, error) {
	query := `
		SELECT ` + stockEntryColumns + `
		FROM stock_entries WHERE paper_id = $1 AND admin_id = $2
		ORDER BY date DESC, created_at DESC`
	return r.list(query, paperID, adminID)
}

func (r *StockEntryRepo) list(query string, args ...any) ([]*entity.StockEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(
			&e.ID, &e.AdminID, &e.PaperID, &e.Date, &e.EntryType,
			&e.IssuedPaper, &e.Wastage, &e.AddedStock, &e.Remaining, &e.Clamped,
			&e.JobID, &e.JobNo, &e.JobName, &e.Remarks, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update rewrites a ledger row's input fields and balance.
func (r *StockEntryRepo) Update(entry *entity.StockEntry) error {
	query := `
		UPDATE stock_entries SET date = $3, entry_type = $4, issued_paper = $5, wastage = $6,
			added_stock = $7, remaining = $8, clamped = $9, job_id = $10, job_no = $11,
			job_name = $12, remarks = $13, updated_at = $14
		WHERE id = $1 AND admin_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.AdminID, entry.Date, entry.EntryType,
		entry.IssuedPaper, entry.Wastage, entry.AddedStock, entry.Remaining, entry.Clamped,
		entry.JobID, entry.JobNo, entry.JobName, entry.Remarks, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock entry: %w", err)
	}
	return nil
}

// UpdateBalance rewrites only a row's running balance and clamp flag. The
// recomputation cascade calls this for every downstream row it changed.
func (r *StockEntryRepo) UpdateBalance(entry *entity.StockEntry) error {
	query := `
		UPDATE stock_entries SET remaining = $3, clamped = $4
		WHERE id = $1 AND admin_id = $2`
	_, err := r.q.Exec(context.Background(), query, entry.ID, entry.AdminID, entry.Remaining, entry.Clamped)
	if err != nil {
		return fmt.Errorf("update stock entry balance: %w", err)
	}
	return nil
}

// Delete removes a ledger row scoped by admin.
func (r *StockEntryRepo) Delete(adminID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_entries WHERE id = $1 AND admin_id = $2`, id, adminID)
	if err != nil {
		return fmt.Errorf("delete stock entry: %w", err)
	}
	return nil
}

// CountByPaper counts a paper's ledger rows.
func (r *StockEntryRepo) CountByPaper(adminID, paperID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM stock_entries WHERE paper_id = $1 AND admin_id = $2`, paperID, adminID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count stock entries: %w", err)
	}
	return n, nil
}
