package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/internal/domain/repository"
)

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

// EquipmentRepo implements EquipmentRepository on PostgreSQL.
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository builds the persistence adapter for press equipment.
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

const equipmentColumns = `id, admin_id, name, model, vendor, purchase_date, status, notes, created_at, updated_at`

// Create persists a new equipment record.
func (r *EquipmentRepo) Create(equipment *entity.Equipment) error {
	query := `
		INSERT INTO equipment (` + equipmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		equipment.ID, equipment.AdminID, equipment.Name, equipment.Model, equipment.Vendor,
		equipment.PurchaseDate, equipment.Status, equipment.Notes, equipment.CreatedAt, equipment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert equipment: %w", err)
	}
	return nil
}

// GetByID fetches an equipment record scoped by admin.
func (r *EquipmentRepo) GetByID(adminID, id string) (*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1 AND admin_id = $2`
	var e entity.Equipment
	err := r.q.QueryRow(context.Background(), query, id, adminID).Scan(
		&e.ID, &e.AdminID, &e.Name, &e.Model, &e.Vendor, &e.PurchaseDate, &e.Status, &e.Notes,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment by id: %w", err)
	}
	return &e, nil
}

// ListByAdmin lists equipment for a tenant, newest first.
func (r *EquipmentRepo) ListByAdmin(adminID string, limit, offset int) ([]*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE admin_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, adminID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()
	var list []*entity.Equipment
	for rows.Next() {
		var e entity.Equipment
		if err := rows.Scan(&e.ID, &e.AdminID, &e.Name, &e.Model, &e.Vendor, &e.PurchaseDate,
			&e.Status, &e.Notes, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update rewrites an equipment record's fields.
func (r *EquipmentRepo) Update(equipment *entity.Equipment) error {
	query := `
		UPDATE equipment SET name = $3, model = $4, vendor = $5, purchase_date = $6, status = $7,
			notes = $8, updated_at = $9
		WHERE id = $1 AND admin_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		equipment.ID, equipment.AdminID, equipment.Name, equipment.Model, equipment.Vendor,
		equipment.PurchaseDate, equipment.Status, equipment.Notes, equipment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update equipment: %w", err)
	}
	return nil
}

// Delete removes an equipment record scoped by admin.
func (r *EquipmentRepo) Delete(adminID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM equipment WHERE id = $1 AND admin_id = $2`, id, adminID)
	if err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}
	return nil
}
