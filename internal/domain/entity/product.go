package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product types.
const (
	ProductTypeProduct = "product"
	ProductTypeService = "service"
)

// Product is a catalog item. Barcode is assigned once (generated when not
// provided at creation) and immutable afterwards.
type Product struct {
	ID             string
	SKU            string
	Barcode        string // 13-digit EAN-13
	Name           string
	NameSw         string // Swahili display name
	Description    string
	Brand          string
	Model          string
	CategoryID     string
	Type           string // product or service
	SellingPrice   decimal.Decimal
	WholesalePrice decimal.Decimal
	CostPrice      decimal.Decimal
	TaxRate        decimal.Decimal
	ReorderLevel   int
	HasSerial      bool
	HasIMEI        bool
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
