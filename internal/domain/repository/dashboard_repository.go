package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// CategoryCount is a per-category product tally for the dashboard.
type CategoryCount struct {
	Name  string
	Count int
}

// DashboardRepository exposes the read-only aggregate queries behind the
// admin dashboard.
type DashboardRepository interface {
	CountActiveProducts(ctx context.Context) (int, error)
	CountActiveCustomers(ctx context.Context) (int, error)
	CountLowStockProducts(ctx context.Context) (int, error)
	TodayRevenue(ctx context.Context) (decimal.Decimal, error)
	ProductsByCategory(ctx context.Context) ([]CategoryCount, error)
}
