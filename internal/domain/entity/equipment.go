package entity

import "time"

// Equipment statuses.
const (
	EquipmentStatusOperational = "operational"
	EquipmentStatusMaintenance = "maintenance"
	EquipmentStatusRetired     = "retired"
)

// Equipment is a machine owned by the press.
type Equipment struct {
	ID           string
	AdminID      string
	Name         string
	Model        string
	Vendor       string
	PurchaseDate string // BS date, optional
	Status       string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
