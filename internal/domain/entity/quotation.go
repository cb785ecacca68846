package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quotation is a priced offer to a client. Totals are computed once at write
// time with the sequential discount-then-VAT arithmetic and stored.
type Quotation struct {
	ID          string
	AdminID     string
	QuotationNo string // e.g. QTN-0007, from the per-tenant counter
	ClientID    string
	ClientName  string // snapshot at write time
	Date        string // BS date
	Items       []QuotationItem
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal // absolute amount, applied before VAT
	VATRate     decimal.Decimal // percent
	VATAmount   decimal.Decimal
	GrandTotal  decimal.Decimal
	Remarks     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// QuotationItem is one priced line of a quotation.
type QuotationItem struct {
	ID          string
	QuotationID string
	Particular  string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Amount      decimal.Decimal // quantity × rate
}
