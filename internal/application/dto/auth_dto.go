package dto

import "time"

// LoginRequest credentials for POST /auth/login. Username matches either the
// account's username or its email.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest body for POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// BranchSummary is the branch block embedded in user payloads.
type BranchSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// UserResponse is the user payload returned on login and /auth/me. The
// permission list is resolved from the static role table, never stored.
type UserResponse struct {
	ID          string         `json:"id"`
	Username    string         `json:"username"`
	Email       string         `json:"email"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	FullName    string         `json:"full_name"`
	Role        string         `json:"role"`
	Status      string         `json:"status"`
	BranchID    string         `json:"branch_id,omitempty"`
	Branch      *BranchSummary `json:"branch"`
	Permissions []string       `json:"permissions"`
	LastLoginAt *time.Time     `json:"last_login_at,omitempty"`
}

// TokenBundle is the token block returned by login and refresh.
type TokenBundle struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"` // always "Bearer"
	ExpiresIn    int64  `json:"expires_in"` // access token lifetime in seconds
}

// LoginResponse payload under data for a successful login.
type LoginResponse struct {
	User   UserResponse `json:"user"`
	Tokens TokenBundle  `json:"tokens"`
}

// RefreshResponse payload under data for a successful refresh.
type RefreshResponse struct {
	Tokens TokenBundle `json:"tokens"`
}
