package dto

import "github.com/shopspring/decimal"

// DocumentItemRequest one priced line of a quotation or estimate.
type DocumentItemRequest struct {
	Particular string          `json:"particular"`
	Quantity   decimal.Decimal `json:"quantity"`
	Rate       decimal.Decimal `json:"rate"`
}

// CreateQuotationRequest new quotation. The number comes from the per-tenant
// counter; VATRate defaults to the tenant's settings when nil.
type CreateQuotationRequest struct {
	ClientID string                `json:"client_id"`
	Date     string                `json:"date"`
	Items    []DocumentItemRequest `json:"items"`
	Discount decimal.Decimal       `json:"discount"`
	VATRate  *decimal.Decimal      `json:"vat_rate"`
	Remarks  string                `json:"remarks"`
}

// UpdateQuotationRequest replaces the mutable parts of a quotation. Items, when
// present, replace the whole line set and totals are recomputed.
type UpdateQuotationRequest struct {
	Date     *string               `json:"date"`
	Items    []DocumentItemRequest `json:"items"`
	Discount *decimal.Decimal      `json:"discount"`
	VATRate  *decimal.Decimal      `json:"vat_rate"`
	Remarks  *string               `json:"remarks"`
}

// DocumentItemResponse one priced line.
type DocumentItemResponse struct {
	Particular string          `json:"particular"`
	Quantity   decimal.Decimal `json:"quantity"`
	Rate       decimal.Decimal `json:"rate"`
	Amount     decimal.Decimal `json:"amount"`
}

// QuotationResponse public view of a quotation.
type QuotationResponse struct {
	ID          string                 `json:"id"`
	QuotationNo string                 `json:"quotation_no"`
	ClientID    string                 `json:"client_id"`
	ClientName  string                 `json:"client_name"`
	Date        string                 `json:"date"`
	Items       []DocumentItemResponse `json:"items"`
	Subtotal    decimal.Decimal        `json:"subtotal"`
	Discount    decimal.Decimal        `json:"discount"`
	VATRate     decimal.Decimal        `json:"vat_rate"`
	VATAmount   decimal.Decimal        `json:"vat_amount"`
	GrandTotal  decimal.Decimal        `json:"grand_total"`
	Remarks     string                 `json:"remarks,omitempty"`
}

// CreateEstimateRequest new estimate; same shape as quotations with its own
// numbering sequence.
type CreateEstimateRequest struct {
	ClientID string                `json:"client_id"`
	Date     string                `json:"date"`
	Items    []DocumentItemRequest `json:"items"`
	Discount decimal.Decimal       `json:"discount"`
	VATRate  *decimal.Decimal      `json:"vat_rate"`
	Remarks  string                `json:"remarks"`
}

// UpdateEstimateRequest replaces the mutable parts of an estimate.
type UpdateEstimateRequest struct {
	Date     *string               `json:"date"`
	Items    []DocumentItemRequest `json:"items"`
	Discount *decimal.Decimal      `json:"discount"`
	VATRate  *decimal.Decimal      `json:"vat_rate"`
	Remarks  *string               `json:"remarks"`
}

// EstimateResponse public view of an estimate.
type EstimateResponse struct {
	ID         string                 `json:"id"`
	EstimateNo string                 `json:"estimate_no"`
	ClientID   string                 `json:"client_id"`
	ClientName string                 `json:"client_name"`
	Date       string                 `json:"date"`
	Items      []DocumentItemResponse `json:"items"`
	Subtotal   decimal.Decimal        `json:"subtotal"`
	Discount   decimal.Decimal        `json:"discount"`
	VATRate    decimal.Decimal        `json:"vat_rate"`
	VATAmount  decimal.Decimal        `json:"vat_amount"`
	GrandTotal decimal.Decimal        `json:"grand_total"`
	Remarks    string                 `json:"remarks,omitempty"`
}
