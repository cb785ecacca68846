package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the per-tenant configuration record, loaded per request. One row
// per admin; there is no process-wide mutable singleton.
type Settings struct {
	AdminID         string
	PressName       string
	Address         string
	Phone           string
	PANNo           string
	VATRate         decimal.Decimal // percent, default applied to new quotations
	QuotationPrefix string
	EstimatePrefix  string
	ChallanPrefix   string
	JobPrefix       string
	UpdatedAt       time.Time
}

// DefaultSettings returns the settings a fresh tenant starts with.
func DefaultSettings(adminID string) *Settings {
	return &Settings{
		AdminID:         adminID,
		VATRate:         decimal.NewFromInt(13),
		QuotationPrefix: "QTN",
		EstimatePrefix:  "EST",
		ChallanPrefix:   "CHN",
		JobPrefix:       "JOB",
		UpdatedAt:       time.Now(),
	}
}
