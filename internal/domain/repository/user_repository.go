package repository

import (
	"context"

	"github.com/faithbit/ssms-api/internal/domain/entity"
)

// UserRepository is the persistence port for User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// FindByLogin matches username OR email in a single lookup, regardless
	// of account status; callers gate on status themselves. Returns
	// nil, nil when nothing matches.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)
	// FindActiveByID returns nil, nil when the user is missing or not active.
	FindActiveByID(ctx context.Context, id string) (*entity.User, error)
	// UpdateTokens persists the issued token pair for server-side revocation.
	UpdateTokens(ctx context.Context, id, accessToken, refreshToken string) error
	// ClearTokens revokes both stored tokens.
	ClearTokens(ctx context.Context, id string) error
	UpdateLastLogin(ctx context.Context, id string) error
}
