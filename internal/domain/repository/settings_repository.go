package repository

import "github.com/sajiloprint/press-api/internal/domain/entity"

// SettingsRepository is the persistence port for the per-tenant configuration
// record. Get returns nil when the tenant has no row yet; Upsert writes the
// whole record.
type SettingsRepository interface {
	Get(adminID string) (*entity.Settings, error)
	Upsert(settings *entity.Settings) error
}

// CounterRepository hands out per-tenant sequential numbers for document
// kinds (quotation, estimate, challan, job). Next must be called inside the
// transaction that creates the document so numbers have no gaps on rollback.
type CounterRepository interface {
	Next(adminID, kind string) (int64, error)
}

// Counter kinds.
const (
	CounterQuotation = "quotation"
	CounterEstimate  = "estimate"
	CounterChallan   = "challan"
	CounterJob       = "job"
)
