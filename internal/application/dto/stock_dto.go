package dto

import "github.com/shopspring/decimal"

// CreateStockEntryRequest new ledger row. EntryType decides which quantity
// fields may be set: "issue" uses issued_paper/wastage, "addition" uses
// added_stock. When JobID is given without job_no/job_name, the job's values
// are snapshotted onto the entry.
type CreateStockEntryRequest struct {
	PaperID     string          `json:"paper_id"`
	Date        string          `json:"date"`
	EntryType   string          `json:"entry_type"`
	IssuedPaper decimal.Decimal `json:"issued_paper"`
	Wastage     decimal.Decimal `json:"wastage"`
	AddedStock  decimal.Decimal `json:"added_stock"`
	JobID       string          `json:"job_id"`
	JobNo       string          `json:"job_no"`
	JobName     string          `json:"job_name"`
	Remarks     string          `json:"remarks"`
}

// UpdateStockEntryRequest partial update of a ledger row; nil fields are left
// unchanged. Changing the date may move the entry's position in the ledger,
// and the cascade recomputes from the earlier of the old and new positions.
type UpdateStockEntryRequest struct {
	Date        *string          `json:"date"`
	IssuedPaper *decimal.Decimal `json:"issued_paper"`
	Wastage     *decimal.Decimal `json:"wastage"`
	AddedStock  *decimal.Decimal `json:"added_stock"`
	JobID       *string          `json:"job_id"`
	JobNo       *string          `json:"job_no"`
	JobName     *string          `json:"job_name"`
	Remarks     *string          `json:"remarks"`
}

// StockEntryResponse public view of a ledger row.
type StockEntryResponse struct {
	ID          string          `json:"id"`
	PaperID     string          `json:"paper_id"`
	Date        string          `json:"date"`
	EntryType   string          `json:"entry_type"`
	IssuedPaper decimal.Decimal `json:"issued_paper"`
	Wastage     decimal.Decimal `json:"wastage"`
	AddedStock  decimal.Decimal `json:"added_stock"`
	Remaining   decimal.Decimal `json:"remaining"`
	Clamped     bool            `json:"clamped"`
	JobID       string          `json:"job_id,omitempty"`
	JobNo       string          `json:"job_no,omitempty"`
	JobName     string          `json:"job_name,omitempty"`
	Remarks     string          `json:"remarks,omitempty"`
}
