package repository

import (
	"context"

	"github.com/faithbit/ssms-api/internal/domain/entity"
)

// ProductListFilter narrows and pages product listings.
type ProductListFilter struct {
	Search     string // substring over name, name_sw, sku, barcode, brand
	CategoryID string
	Type       string
	Brand      string
	Page       int
	PerPage    int
}

// ProductRepository is the persistence port for Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByBarcode(ctx context.Context, code string) (*entity.Product, error)
	// NextProductNumber reserves the next value of the product numbering
	// sequence used for barcode generation.
	NextProductNumber(ctx context.Context) (int, error)
	List(ctx context.Context, filter ProductListFilter) ([]*entity.Product, int, error)
	// SearchPOS is the quick lookup for the point-of-sale client: relevance
	// ordered (name prefix, then sku prefix, then barcode prefix), capped.
	SearchPOS(ctx context.Context, query string, limit int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Deactivate(ctx context.Context, id string) error
}
