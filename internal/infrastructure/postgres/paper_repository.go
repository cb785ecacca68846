package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/internal/domain/repository"
)

var _ repository.PaperRepository = (*PaperRepo)(nil)

// PaperRepo implements PaperRepository on PostgreSQL.
type PaperRepo struct {
	q Querier
}

// NewPaperRepository builds the persistence adapter for papers.
func NewPaperRepository(q Querier) *PaperRepo {
	return &PaperRepo{q: q}
}

const paperColumns = `id, admin_id, type, type_other, size, weight, unit, original_stock, created_at, updated_at`

// Create persists a new paper.
func (r *PaperRepo) Create(paper *entity.Paper) error {
	query := `
		INSERT INTO papers (` + paperColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		paper.ID, paper.AdminID, paper.Type, paper.TypeOther, paper.Size, paper.Weight, paper.Unit,
		paper.OriginalStock, paper.CreatedAt, paper.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert paper: %w", err)
	}
	return nil
}

// GetByID fetches a paper scoped by admin.
func (r *PaperRepo) GetByID(adminID, id string) (*entity.Paper, error) {
	query := `SELECT ` + paperColumns + ` FROM papers WHERE id = $1 AND admin_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, adminID), "get paper by id")
}

// GetForUpdate fetches a paper and locks its row for the rest of the
// transaction (SELECT FOR UPDATE). Ledger mutations take this lock before
// recomputing so concurrent writes to one paper serialize.
func (r *PaperRepo) GetForUpdate(adminID, id string) (*entity.Paper, error) {
	query := `SELECT ` + paperColumns + ` FROM papers WHERE id = $1 AND admin_id = $2 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, adminID), "get paper for update")
}

func (r *PaperRepo) scanOne(row pgx.Row, op string) (*entity.Paper, error) {
	var p entity.Paper
	err := row.Scan(
		&p.ID, &p.AdminID, &p.Type, &p.TypeOther, &p.Size, &p.Weight, &p.Unit,
		&p.OriginalStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// ListByAdmin lists papers for a tenant, newest first.
func (r *PaperRepo) ListByAdmin(adminID string, limit, offset int) ([]*entity.Paper, error) {
	query := `SELECT ` + paperColumns + ` FROM papers WHERE admin_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, adminID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list papers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Paper
	for rows.Next() {
		var p entity.Paper
		if err := rows.Scan(&p.ID, &p.AdminID, &p.Type, &p.TypeOther, &p.Size, &p.Weight, &p.Unit,
			&p.OriginalStock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan paper: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update rewrites a paper's fields.
func (r *PaperRepo) Update(paper *entity.Paper) error {
	query := `
		UPDATE papers SET type = $3, type_other = $4, size = $5, weight = $6, unit = $7,
			original_stock = $8, updated_at = $9
		WHERE id = $1 AND admin_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		paper.ID, paper.AdminID, paper.Type, paper.TypeOther, paper.Size, paper.Weight, paper.Unit,
		paper.OriginalStock, paper.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update paper: %w", err)
	}
	return nil
}

// Delete removes a paper scoped by admin.
func (r *PaperRepo) Delete(adminID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM papers WHERE id = $1 AND admin_id = $2`, id, adminID)
	if err != nil {
		return fmt.Errorf("delete paper: %w", err)
	}
	return nil
}
