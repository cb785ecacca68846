package repository

import "github.com/sajiloprint/press-api/internal/domain/entity"

// StockEntryRepository is the persistence port for ledger rows.
//
// ListByPaperAsc returns the full sequence in (date, created_at) ascending
// order, the order recomputation walks. ListByPaperDesc is the display order
// (most recent first).
type StockEntryRepository interface {
	Create(entry *entity.StockEntry) error
	GetByID(adminID, id string) (*entity.StockEntry, error)
	ListByPaperAsc(adminID, paperID string) ([]*entity.StockEntry, error)
	ListByPaperDesc(adminID, paperID string) ([]*entity.StockEntry, error)
	Update(entry *entity.StockEntry) error
	UpdateBalance(entry *entity.StockEntry) error
	Delete(adminID, id string) error
	CountByPaper(adminID, paperID string) (int, error)
}
