package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest typed body for POST /products. Barcode is optional;
// when absent an EAN-13 is generated from the product sequence.
type CreateProductRequest struct {
	SKU            string          `json:"sku"`
	Barcode        string          `json:"barcode"`
	Name           string          `json:"name"`
	NameSw         string          `json:"name_sw"`
	Description    string          `json:"description"`
	Brand          string          `json:"brand"`
	Model          string          `json:"model"`
	CategoryID     string          `json:"category_id"`
	Type           string          `json:"type"` // product (default) or service
	SellingPrice   decimal.Decimal `json:"selling_price"`
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	ReorderLevel   int             `json:"reorder_level"`
	HasSerial      bool            `json:"has_serial"`
	HasIMEI        bool            `json:"has_imei"`
}

// UpdateProductRequest typed body for PUT /products/:id. Barcode is
// immutable once assigned and has no field here.
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	NameSw         *string          `json:"name_sw"`
	Description    *string          `json:"description"`
	Brand          *string          `json:"brand"`
	Model          *string          `json:"model"`
	CategoryID     *string          `json:"category_id"`
	Type           *string          `json:"type"`
	SellingPrice   *decimal.Decimal `json:"selling_price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price"`
	CostPrice      *decimal.Decimal `json:"cost_price"`
	TaxRate        *decimal.Decimal `json:"tax_rate"`
	ReorderLevel   *int             `json:"reorder_level"`
	HasSerial      *bool            `json:"has_serial"`
	HasIMEI        *bool            `json:"has_imei"`
}

// ProductListRequest query parameters for GET /products.
type ProductListRequest struct {
	Search     string `query:"search"`
	CategoryID string `query:"category_id"`
	Type       string `query:"type"`
	Brand      string `query:"brand"`
	PageRequest
}

// ProductResponse outbound product payload.
type ProductResponse struct {
	ID             string          `json:"id"`
	SKU            string          `json:"sku"`
	Barcode        string          `json:"barcode"`
	Name           string          `json:"name"`
	NameSw         string          `json:"name_sw,omitempty"`
	Description    string          `json:"description,omitempty"`
	Brand          string          `json:"brand,omitempty"`
	Model          string          `json:"model,omitempty"`
	CategoryID     string          `json:"category_id,omitempty"`
	Type           string          `json:"type"`
	SellingPrice   decimal.Decimal `json:"selling_price"`
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	ReorderLevel   int             `json:"reorder_level"`
	HasSerial      bool            `json:"has_serial"`
	HasIMEI        bool            `json:"has_imei"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// POSProductResponse is the trimmed payload served to the point-of-sale
// client by /products/search and /products/by-barcode.
type POSProductResponse struct {
	ID             string          `json:"id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	NameSw         string          `json:"name_sw,omitempty"`
	Brand          string          `json:"brand,omitempty"`
	Model          string          `json:"model,omitempty"`
	Barcode        string          `json:"barcode"`
	SellingPrice   decimal.Decimal `json:"selling_price"`
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	HasSerial      bool            `json:"has_serial"`
	HasIMEI        bool            `json:"has_imei"`
	Type           string          `json:"type"`
}
