package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estimate is an internal cost estimate for a prospective job. Same totals
// arithmetic as quotations, separate numbering sequence.
type Estimate struct {
	ID         string
	AdminID    string
	EstimateNo string // e.g. EST-0003
	ClientID   string
	ClientName string // snapshot at write time
	Date       string // BS date
	Items      []EstimateItem
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	VATRate    decimal.Decimal
	VATAmount  decimal.Decimal
	GrandTotal decimal.Decimal
	Remarks    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EstimateItem is one priced line of an estimate.
type EstimateItem struct {
	ID         string
	EstimateID string
	Particular string
	Quantity   decimal.Decimal
	Rate       decimal.Decimal
	Amount     decimal.Decimal
}
