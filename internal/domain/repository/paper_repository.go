package repository

import "github.com/sajiloprint/press-api/internal/domain/entity"

// PaperRepository is the persistence port for papers. GetForUpdate locks the
// paper row for the duration of the surrounding transaction; the ledger use
// cases take it before any recomputation so concurrent mutations of one
// paper's ledger serialize.
type PaperRepository interface {
	Create(paper *entity.Paper) error
	GetByID(adminID, id string) (*entity.Paper, error)
	GetForUpdate(adminID, id string) (*entity.Paper, error)
	ListByAdmin(adminID string, limit, offset int) ([]*entity.Paper, error)
	Update(paper *entity.Paper) error
	Delete(adminID, id string) error
}
