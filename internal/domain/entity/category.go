package entity

import "time"

// Category groups products in the catalog.
type Category struct {
	ID        string
	Name      string
	NameSw    string
	ParentID  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
