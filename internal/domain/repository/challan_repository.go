package repository

import "github.com/sajiloprint/press-api/internal/domain/entity"

// ChallanRepository is the persistence port for delivery notes.
type ChallanRepository interface {
	Create(challan *entity.Challan) error
	GetByID(adminID, id string) (*entity.Challan, error)
	ListByAdmin(adminID string, limit, offset int) ([]*entity.Challan, error)
	Update(challan *entity.Challan) error
	Delete(adminID, id string) error
}
