package repository

import (
	"context"

	"github.com/faithbit/ssms-api/internal/domain/entity"
)

// CustomerListFilter narrows and pages customer listings.
type CustomerListFilter struct {
	Search  string // substring over names, company, number, email, phone
	Type    string // exact: individual or business
	Page    int
	PerPage int
}

// CustomerRepository is the persistence port for Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// MaxNumberForPrefix returns the highest customer number starting with
	// prefix, or empty when none exists.
	MaxNumberForPrefix(ctx context.Context, prefix string) (string, error)
	List(ctx context.Context, filter CustomerListFilter) ([]*entity.Customer, int, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Deactivate(ctx context.Context, id string) error
}
