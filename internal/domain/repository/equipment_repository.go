package repository

import "github.com/sajiloprint/press-api/internal/domain/entity"

// EquipmentRepository is the persistence port for press equipment.
type EquipmentRepository interface {
	Create(equipment *entity.Equipment) error
	GetByID(adminID, id string) (*entity.Equipment, error)
	ListByAdmin(adminID string, limit, offset int) ([]*entity.Equipment, error)
	Update(equipment *entity.Equipment) error
	Delete(adminID, id string) error
}
