package entity

import "time"

// Client is a customer of the press.
type Client struct {
	ID        string
	AdminID   string
	Name      string
	Address   string
	Phone     string
	Email     string
	PANNo     string // tax registration number
	CreatedAt time.Time
	UpdatedAt time.Time
}
