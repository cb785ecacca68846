package dto

import "github.com/shopspring/decimal"

// ChallanItemRequest one delivered line.
type ChallanItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Remarks     string          `json:"remarks"`
}

// CreateChallanRequest new delivery note. Client and job names are
// snapshotted from the referenced records at write time.
type CreateChallanRequest struct {
	ClientID string               `json:"client_id"`
	JobID    string               `json:"job_id"`
	Date     string               `json:"date"`
	Items    []ChallanItemRequest `json:"items"`
	Remarks  string               `json:"remarks"`
}

// UpdateChallanRequest replaces the mutable parts of a challan.
type UpdateChallanRequest struct {
	Date    *string              `json:"date"`
	Items   []ChallanItemRequest `json:"items"`
	Remarks *string              `json:"remarks"`
}

// ChallanItemResponse one delivered line.
type ChallanItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Remarks     string          `json:"remarks,omitempty"`
}

// ChallanResponse public view of a challan.
type ChallanResponse struct {
	ID         string                `json:"id"`
	ChallanNo  string                `json:"challan_no"`
	ClientID   string                `json:"client_id"`
	ClientName string                `json:"client_name"`
	JobID      string                `json:"job_id,omitempty"`
	JobNo      string                `json:"job_no,omitempty"`
	JobName    string                `json:"job_name,omitempty"`
	Date       string                `json:"date"`
	Items      []ChallanItemResponse `json:"items"`
	Remarks    string                `json:"remarks,omitempty"`
}
