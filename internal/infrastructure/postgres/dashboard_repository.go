package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/faithbit/ssms-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo serves the read-only aggregates behind the admin dashboard.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository builds the adapter.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountActiveProducts counts the live catalog.
func (r *DashboardRepo) CountActiveProducts(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products WHERE is_active = TRUE`)
}

// CountActiveCustomers counts active customers.
func (r *DashboardRepo) CountActiveCustomers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM customers WHERE is_active = TRUE`)
}

// CountLowStockProducts counts active products at or below their reorder level.
func (r *DashboardRepo) CountLowStockProducts(ctx context.Context) (int, error) {
	return r.count(ctx, `
		SELECT COUNT(*) FROM products
		WHERE is_active = TRUE AND type = 'product' AND stock_quantity <= reorder_level`)
}

// TodayRevenue sums completed sale totals since local midnight.
func (r *DashboardRepo) TodayRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `
		SELECT COALESCE(SUM(total_amount), 0) FROM sales
		WHERE status = 'completed' AND created_at >= CURRENT_DATE`
	if err := r.q.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("today revenue: %w", err)
	}
	return total, nil
}

// ProductsByCategory tallies active products per category name.
func (r *DashboardRepo) ProductsByCategory(ctx context.Context) ([]repository.CategoryCount, error) {
	query := `
		SELECT COALESCE(c.name, 'Uncategorized'), COUNT(*)
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.is_active = TRUE
		GROUP BY 1
		ORDER BY 2 DESC, 1`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("products by category: %w", err)
	}
	defer rows.Close()
	var counts []repository.CategoryCount
	for rows.Next() {
		var cc repository.CategoryCount
		if err := rows.Scan(&cc.Name, &cc.Count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		counts = append(counts, cc)
	}
	return counts, rows.Err()
}

func (r *DashboardRepo) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard count: %w", err)
	}
	return n, nil
}
