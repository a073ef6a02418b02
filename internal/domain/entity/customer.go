package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Customer types.
const (
	CustomerIndividual = "individual"
	CustomerBusiness   = "business"
)

// Customer is a retail or service customer. CustomerNumber is assigned once
// at creation and immutable afterwards.
type Customer struct {
	ID             string
	CustomerNumber string // C + yymm + 4-digit sequence
	Type           string // individual or business
	FirstName      string
	LastName       string
	CompanyName    string
	Email          string
	Phone          string
	Phone2         string
	Address        string
	City           string
	Region         string
	CreditLimit    decimal.Decimal
	LoyaltyPoints  int
	IsActive       bool
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName is the person name for individuals and the company name for
// business customers.
func (c *Customer) FullName() string {
	if c.Type == CustomerBusiness {
		return c.CompanyName
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// DisplayName falls back to the customer number when no name is on record.
func (c *Customer) DisplayName() string {
	if name := c.FullName(); name != "" {
		return name
	}
	return c.CustomerNumber
}
