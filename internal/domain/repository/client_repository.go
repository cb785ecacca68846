package repository

import "github.com/sajiloprint/press-api/internal/domain/entity"

// ClientRepository is the persistence port for clients. Every read and write
// is scoped by the owning admin; a cross-tenant id behaves as not-found.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(adminID, id string) (*entity.Client, error)
	ListByAdmin(adminID string, limit, offset int) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(adminID, id string) error
}
