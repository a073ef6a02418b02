package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest typed body for POST /customers. customer_number is
// never accepted from the client; it is generated server-side.
type CreateCustomerRequest struct {
	Type        string          `json:"type"` // individual (default) or business
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	CompanyName string          `json:"company_name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Phone2      string          `json:"phone2"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	Region      string          `json:"region"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Notes       string          `json:"notes"`
}

// UpdateCustomerRequest typed body for PUT /customers/:id. Pointer fields
// distinguish "absent" from "set to zero value". The customer number and
// creation timestamp are immutable and have no fields here.
type UpdateCustomerRequest struct {
	Type        *string          `json:"type"`
	FirstName   *string          `json:"first_name"`
	LastName    *string          `json:"last_name"`
	CompanyName *string          `json:"company_name"`
	Email       *string          `json:"email"`
	Phone       *string          `json:"phone"`
	Phone2      *string          `json:"phone2"`
	Address     *string          `json:"address"`
	City        *string          `json:"city"`
	Region      *string          `json:"region"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
	Notes       *string          `json:"notes"`
}

// CustomerListRequest query parameters for GET /customers.
type CustomerListRequest struct {
	Search string `query:"search"`
	Type   string `query:"type"`
	PageRequest
}

// CustomerResponse outbound customer payload.
type CustomerResponse struct {
	ID             string          `json:"id"`
	CustomerNumber string          `json:"customer_number"`
	Type           string          `json:"type"`
	FirstName      string          `json:"first_name,omitempty"`
	LastName       string          `json:"last_name,omitempty"`
	CompanyName    string          `json:"company_name,omitempty"`
	FullName       string          `json:"full_name"`
	DisplayName    string          `json:"display_name"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Phone2         string          `json:"phone2,omitempty"`
	Address        string          `json:"address,omitempty"`
	City           string          `json:"city,omitempty"`
	Region         string          `json:"region,omitempty"`
	CreditLimit    decimal.Decimal `json:"credit_limit"`
	LoyaltyPoints  int             `json:"loyalty_points"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
