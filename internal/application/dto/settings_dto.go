package dto

import "github.com/shopspring/decimal"

// UpdateSettingsRequest partial update of the tenant configuration record.
type UpdateSettingsRequest struct {
	PressName       *string          `json:"press_name"`
	Address         *string          `json:"address"`
	Phone           *string          `json:"phone"`
	PANNo           *string          `json:"pan_no"`
	VATRate         *decimal.Decimal `json:"vat_rate"`
	QuotationPrefix *string          `json:"quotation_prefix"`
	EstimatePrefix  *string          `json:"estimate_prefix"`
	ChallanPrefix   *string          `json:"challan_prefix"`
	JobPrefix       *string          `json:"job_prefix"`
}

// SettingsResponse the tenant configuration record.
type SettingsResponse struct {
	PressName       string          `json:"press_name"`
	Address         string          `json:"address"`
	Phone           string          `json:"phone"`
	PANNo           string          `json:"pan_no"`
	VATRate         decimal.Decimal `json:"vat_rate"`
	QuotationPrefix string          `json:"quotation_prefix"`
	EstimatePrefix  string          `json:"estimate_prefix"`
	ChallanPrefix   string          `json:"challan_prefix"`
	JobPrefix       string          `json:"job_prefix"`
}
