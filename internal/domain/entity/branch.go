package entity

import "time"

// Branch is a physical store or service location.
type Branch struct {
	ID        string
	Name      string
	Code      string
	Address   string
	City      string
	Region    string
	Phone     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
