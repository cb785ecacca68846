package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Challan is a delivery note. Client and job fields are snapshots taken at
// write time; they do not update retroactively if the referenced records are
// later renamed.
type Challan struct {
	ID         string
	AdminID    string
	ChallanNo  string // e.g. CHN-0015
	ClientID   string
	ClientName string
	JobID      string
	JobNo      string
	JobName    string
	Date       string // BS date
	Items      []ChallanItem
	Remarks    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ChallanItem is one delivered line on a challan.
type ChallanItem struct {
	ID          string
	ChallanID   string
	Description string
	Quantity    decimal.Decimal
	Unit        string
	Remarks     string
}
