package entity

import "time"

// User roles. The admin is the tenant owner; staff accounts belong to an
// admin's press and share its data scope.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User represents an account. AdminID is the tenant scope: for an admin
// account it equals the user's own ID, for staff it points at the owning admin.
type User struct {
	ID           string
	AdminID      string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | staff
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
