// Package auth implements the login, refresh, logout and current-user flows.
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/faithbit/ssms-api/internal/application/dto"
	"github.com/faithbit/ssms-api/internal/domain"
	"github.com/faithbit/ssms-api/internal/domain/entity"
	"github.com/faithbit/ssms-api/internal/domain/rbac"
	"github.com/faithbit/ssms-api/internal/domain/repository"
	"github.com/faithbit/ssms-api/pkg/token"
)

// UseCase wires the credential check against the user store with token
// issuance. Tokens are persisted on the user row so refresh can enforce a
// single active session and logout can revoke server-side.
type UseCase struct {
	userRepo   repository.UserRepository
	branchRepo repository.BranchRepository
	issuer     *token.Issuer
}

// dummyHash is a syntactically valid bcrypt hash compared against when the
// login matches no account, keeping the two failure paths the same shape.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// NewUseCase builds the auth use case.
func NewUseCase(userRepo repository.UserRepository, branchRepo repository.BranchRepository, issuer *token.Issuer) *UseCase {
	return &UseCase{userRepo: userRepo, branchRepo: branchRepo, issuer: issuer}
}

// Login verifies login (username or email) + password and issues a token
// pair. Unknown user and wrong password both come back as
// ErrInvalidCredentials so the response cannot reveal which check failed.
// A matching account whose status is not active gets ErrAccountNotActive.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByLogin(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Burn a hash comparison so an unknown login costs the same as a
		// wrong password.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, domain.ErrAccountNotActive
	}

	bundle, err := uc.issueAndPersist(ctx, user)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		User:   *uc.toUserResponse(ctx, user),
		Tokens: *bundle,
	}, nil
}

// Refresh exchanges a refresh token for a new pair. Every failure mode —
// bad signature, expiry, wrong token type, unknown or inactive user, or a
// token that is not the one currently stored for the account — is reported
// uniformly as ErrInvalidToken.
func (uc *UseCase) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	claims, err := uc.issuer.Verify(refreshToken, token.TypeRefresh)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	user, err := uc.userRepo.FindActiveByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.RefreshToken != refreshToken {
		return nil, domain.ErrInvalidToken
	}

	bundle, err := uc.issueAndPersist(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{Tokens: *bundle}, nil
}

// Logout clears the stored token pair. Idempotent: logging out twice is fine.
func (uc *UseCase) Logout(ctx context.Context, userID string) error {
	return uc.userRepo.ClearTokens(ctx, userID)
}

// Me re-fetches the live user row. This is the freshness check the
// lightweight token path skips: a suspended account is turned away here
// even while its access token is still within TTL.
func (uc *UseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.FindActiveByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.toUserResponse(ctx, user), nil
}

// issueAndPersist mints a fresh access+refresh pair and stores both on the
// user row (rotation: the previous refresh token stops working).
func (uc *UseCase) issueAndPersist(ctx context.Context, user *entity.User) (*dto.TokenBundle, error) {
	access, err := uc.issuer.IssueAccess(user)
	if err != nil {
		return nil, err
	}
	refresh, err := uc.issuer.IssueRefresh(user)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.UpdateTokens(ctx, user.ID, access, refresh); err != nil {
		return nil, err
	}
	user.AccessToken = access
	user.RefreshToken = refresh
	return &dto.TokenBundle{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(uc.issuer.AccessTTL().Seconds()),
	}, nil
}

func (uc *UseCase) toUserResponse(ctx context.Context, user *entity.User) *dto.UserResponse {
	out := &dto.UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		FullName:    user.FullName(),
		Role:        user.Role,
		Status:      user.Status,
		BranchID:    user.BranchID,
		Permissions: rbac.Permissions(user.Role),
		LastLoginAt: user.LastLoginAt,
	}
	if user.BranchID != "" && uc.branchRepo != nil {
		// Branch lookup is decorative; a miss never fails the auth flow.
		if branch, err := uc.branchRepo.GetByID(ctx, user.BranchID); err == nil && branch != nil {
			out.Branch = &dto.BranchSummary{ID: branch.ID, Name: branch.Name, Code: branch.Code}
		}
	}
	return out
}
