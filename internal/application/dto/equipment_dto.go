package dto

// CreateEquipmentRequest new equipment record.
type CreateEquipmentRequest struct {
	Name         string `json:"name"`
	Model        string `json:"model"`
	Vendor       string `json:"vendor"`
	PurchaseDate string `json:"purchase_date"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
}

// UpdateEquipmentRequest partial update; nil fields are left unchanged.
type UpdateEquipmentRequest struct {
	Name         *string `json:"name"`
	Model        *string `json:"model"`
	Vendor       *string `json:"vendor"`
	PurchaseDate *string `json:"purchase_date"`
	Status       *string `json:"status"`
	Notes        *string `json:"notes"`
}

// EquipmentResponse public view of an equipment record.
type EquipmentResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Model        string `json:"model"`
	Vendor       string `json:"vendor"`
	PurchaseDate string `json:"purchase_date,omitempty"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
}
