package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/faithbit/ssms-api/internal/domain"
	"github.com/faithbit/ssms-api/internal/domain/entity"
	"github.com/faithbit/ssms-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, email, password_hash, first_name, last_name,
		COALESCE(phone, ''), role, status, COALESCE(branch_id, ''),
		COALESCE(access_token, ''), COALESCE(refresh_token, ''),
		last_login_at, created_at, updated_at`

// UserRepo implements the UserRepository port over PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository builds the adapter. Accepts a pool or a tx.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persists a new user account.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, first_name, last_name,
			phone, role, status, branch_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, $12)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Phone, user.Role, user.Status, user.BranchID, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user regardless of status. Returns nil, nil when missing.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// FindByLogin matches username or email regardless of status. The login
// use case gates on status itself, so an inactive account with correct
// credentials is told about its status rather than getting a generic
// credentials failure.
func (r *UserRepo) FindByLogin(ctx context.Context, login string) (*entity.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE username = $1 OR email = $1
		LIMIT 1`
	return r.scanOne(ctx, query, login)
}

// FindActiveByID returns nil, nil when the user is missing or not active.
func (r *UserRepo) FindActiveByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND status = $2`
	return r.scanOne(ctx, query, id, entity.StatusActive)
}

// UpdateTokens stores the issued pair on the user row. A later refresh or
// logout checks against these, which is what makes revocation server-side.
func (r *UserRepo) UpdateTokens(ctx context.Context, id, accessToken, refreshToken string) error {
	query := `
		UPDATE users SET access_token = $2, refresh_token = $3, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, accessToken, refreshToken)
	if err != nil {
		return fmt.Errorf("update user tokens: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ClearTokens revokes both stored tokens.
func (r *UserRepo) ClearTokens(ctx context.Context, id string) error {
	query := `
		UPDATE users SET access_token = NULL, refresh_token = NULL, updated_at = NOW()
		WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("clear user tokens: %w", err)
	}
	return nil
}

// UpdateLastLogin stamps the login time.
func (r *UserRepo) UpdateLastLogin(ctx context.Context, id string) error {
	query := `UPDATE users SET last_login_at = NOW(), updated_at = NOW() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

func (r *UserRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Phone, &u.Role, &u.Status, &u.BranchID,
		&u.AccessToken, &u.RefreshToken,
		&u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
