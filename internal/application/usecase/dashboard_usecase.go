package usecase

import (
	"context"

	"github.com/faithbit/ssms-api/internal/application/dto"
	"github.com/faithbit/ssms-api/internal/domain/repository"
)

// DashboardUseCase aggregates the read-only counts behind the admin
// dashboard.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Stats collects the headline numbers for the dashboard landing view.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	products, err := uc.repo.CountActiveProducts(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := uc.repo.CountActiveCustomers(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.repo.CountLowStockProducts(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := uc.repo.TodayRevenue(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := uc.repo.ProductsByCategory(ctx)
	if err != nil {
		return nil, err
	}
	categories := make([]dto.CategoryCountResponse, 0, len(byCategory))
	for _, c := range byCategory {
		categories = append(categories, dto.CategoryCountResponse{Name: c.Name, Count: c.Count})
	}
	return &dto.DashboardStatsResponse{
		TotalProducts:      products,
		TotalCustomers:     customers,
		LowStockProducts:   lowStock,
		TodayRevenue:       revenue,
		ProductsByCategory: categories,
	}, nil
}
