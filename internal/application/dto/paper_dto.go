package dto

import "github.com/shopspring/decimal"

// CreatePaperRequest new paper reference record.
type CreatePaperRequest struct {
	Type          string          `json:"type"`
	TypeOther     string          `json:"type_other"`
	Size          string          `json:"size"`
	Weight        string          `json:"weight"`
	Unit          string          `json:"unit"`
	OriginalStock decimal.Decimal `json:"original_stock"`
}

// UpdatePaperRequest partial update. OriginalStock is rejected once stock
// entries exist against the paper.
type UpdatePaperRequest struct {
	Type          *string          `json:"type"`
	TypeOther     *string          `json:"type_other"`
	Size          *string          `json:"size"`
	Weight        *string          `json:"weight"`
	Unit          *string          `json:"unit"`
	OriginalStock *decimal.Decimal `json:"original_stock"`
}

// PaperResponse public view of a paper, including the current balance (the
// last ledger entry's remaining, or original stock when the ledger is empty).
type PaperResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	TypeOther     string          `json:"type_other,omitempty"`
	Size          string          `json:"size"`
	Weight        string          `json:"weight"`
	Unit          string          `json:"unit"`
	OriginalStock decimal.Decimal `json:"original_stock"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
}
