package repository

import (
	"context"

	"github.com/faithbit/ssms-api/internal/domain/entity"
)

// BranchRepository is the persistence port for Branch.
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, id string) (*entity.Branch, error)
	List(ctx context.Context) ([]*entity.Branch, error)
}
