package entity

import "time"

// User statuses.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

// User represents a staff account. Accounts are never hard-deleted;
// deactivation flips Status instead.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, never the plaintext
	FirstName    string
	LastName     string
	Phone        string
	Role         string // one of rbac.Roles
	Status       string // active, inactive, suspended
	BranchID     string // optional branch affiliation
	AccessToken  string // last issued access token, cleared on logout
	RefreshToken string // last issued refresh token, single active session
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
