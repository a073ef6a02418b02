package dto

import "github.com/shopspring/decimal"

// CategoryCountResponse per-category product tally.
type CategoryCountResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DashboardStatsResponse payload for GET /dashboard/stats.
type DashboardStatsResponse struct {
	TotalProducts      int                     `json:"total_products"`
	TotalCustomers     int                     `json:"total_customers"`
	LowStockProducts   int                     `json:"low_stock_products"`
	TodayRevenue       decimal.Decimal         `json:"today_revenue"`
	ProductsByCategory []CategoryCountResponse `json:"products_by_category"`
}
