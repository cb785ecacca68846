package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Paper types. TypeOther carries a free-text label when Type is "other".
const (
	PaperTypeArt       = "art"
	PaperTypeMatte     = "matte"
	PaperTypeNewsprint = "newsprint"
	PaperTypeCardstock = "cardstock"
	PaperTypeOther     = "other"
)

// ValidPaperType reports whether t is one of the enumerated paper types.
func ValidPaperType(t string) bool {
	switch t {
	case PaperTypeArt, PaperTypeMatte, PaperTypeNewsprint, PaperTypeCardstock, PaperTypeOther:
		return true
	}
	return false
}

// Paper is the reference entity a stock ledger hangs off. OriginalStock is the
// balance at ledger start; the ledger never mutates it.
type Paper struct {
	ID            string
	AdminID       string
	Type          string
	TypeOther     string // label when Type == "other"
	Size          string
	Weight        string
	Unit          string
	OriginalStock decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TypeLabel returns the display label for the paper type.
func (p *Paper) TypeLabel() string {
	if p.Type == PaperTypeOther && p.TypeOther != "" {
		return p.TypeOther
	}
	return p.Type
}
