package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implements ClientRepository on PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository builds the persistence adapter for clients.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persists a new client.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, admin_id, name, address, phone, email, pan_no, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.AdminID, client.Name, client.Address, client.Phone, client.Email,
		client.PANNo, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID fetches a client scoped by admin.
func (r *ClientRepo) GetByID(adminID, id string) (*entity.Client, error) {
	query := `
		SELECT id, admin_id, name, address, phone, email, pan_no, created_at, updated_at
		FROM clients WHERE id = $1 AND admin_id = $2`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id, adminID).Scan(
		&c.ID, &c.AdminID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.PANNo,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by id: %w", err)
	}
	return &c, nil
}

// ListByAdmin lists clients for a tenant, newest first.
func (r *ClientRepo) ListByAdmin(adminID string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT id, admin_id, name, address, phone, email, pan_no, created_at, updated_at
		FROM clients WHERE admin_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, adminID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.AdminID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.PANNo, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update rewrites a client's fields.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET name = $3, address = $4, phone = $5, email = $6, pan_no = $7, updated_at = $8
		WHERE id = $1 AND admin_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.AdminID, client.Name, client.Address, client.Phone, client.Email,
		client.PANNo, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete removes a client scoped by admin.
func (r *ClientRepo) Delete(adminID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1 AND admin_id = $2`, id, adminID)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
