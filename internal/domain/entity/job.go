package entity

import "time"

// Job statuses.
const (
	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusDelivered = "delivered"
)

// Job is a print job. ClientName is snapshotted from the client at write time
// and does not follow later renames.
type Job struct {
	ID           string
	AdminID      string
	JobNo        string // e.g. JOB-0042, from the per-tenant counter
	Name         string
	ClientID     string
	ClientName   string
	Quantity     int64
	Description  string
	DeliveryDate string // BS date, YYYY-MM-DD
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
