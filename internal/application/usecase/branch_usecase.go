package usecase

import (
	"context"

	"github.com/faithbit/ssms-api/internal/application/dto"
	"github.com/faithbit/ssms-api/internal/domain"
	"github.com/faithbit/ssms-api/internal/domain/entity"
	"github.com/faithbit/ssms-api/internal/domain/repository"
)

// BranchUseCase read-side branch operations.
type BranchUseCase struct {
	repo repository.BranchRepository
}

// NewBranchUseCase builds the use case.
func NewBranchUseCase(repo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo}
}

// List returns every branch.
func (uc *BranchUseCase) List(ctx context.Context) ([]dto.BranchResponse, error) {
	branches, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(branches))
	for _, b := range branches {
		items = append(items, *toBranchResponse(b))
	}
	return items, nil
}

// GetByID returns one branch or ErrNotFound.
func (uc *BranchUseCase) GetByID(ctx context.Context, id string) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	return toBranchResponse(branch), nil
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		Code:      b.Code,
		Address:   b.Address,
		City:      b.City,
		Region:    b.Region,
		Phone:     b.Phone,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
