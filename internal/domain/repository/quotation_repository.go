package repository

import "github.com/sajiloprint/press-api/internal/domain/entity"

// QuotationRepository is the persistence port for quotations and their lines.
type QuotationRepository interface {
	Create(quotation *entity.Quotation) error
	GetByID(adminID, id string) (*entity.Quotation, error)
	ListByAdmin(adminID string, limit, offset int) ([]*entity.Quotation, error)
	Update(quotation *entity.Quotation) error
	Delete(adminID, id string) error
}

// EstimateRepository is the persistence port for estimates and their lines.
type EstimateRepository interface {
	Create(estimate *entity.Estimate) error
	GetByID(adminID, id string) (*entity.Estimate, error)
	ListByAdmin(adminID string, limit, offset int) ([]*entity.Estimate, error)
	Update(estimate *entity.Estimate) error
	Delete(adminID, id string) error
}
