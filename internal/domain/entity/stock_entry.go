package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock entry kinds. An issue row consumes paper (issued + wastage), an
// addition row replenishes it. The two never mix on one row.
const (
	EntryTypeIssue    = "issue"
	EntryTypeAddition = "addition"
)

// StockEntry is one ledger row for a paper. Remaining is the running balance
// after this entry's effect; Clamped marks rows whose balance was floored at
// zero. JobNo/JobName are snapshotted from the job at write time.
type StockEntry struct {
	ID          string
	AdminID     string
	PaperID     string
	Date        string // BS date, YYYY-MM-DD, the ledger ordering key
	EntryType   string // issue | addition
	IssuedPaper decimal.Decimal
	Wastage     decimal.Decimal
	AddedStock  decimal.Decimal
	Remaining   decimal.Decimal
	Clamped     bool
	JobID       string
	JobNo       string
	JobName     string
	Remarks     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Delta is the entry's net effect on the balance: added - issued - wastage.
func (e *StockEntry) Delta() decimal.Decimal {
	return e.AddedStock.Sub(e.IssuedPaper).Sub(e.Wastage)
}
