package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/faithbit/ssms-api/internal/application/auth"
	"github.com/faithbit/ssms-api/internal/application/dto"
	"github.com/faithbit/ssms-api/internal/domain"
	"github.com/faithbit/ssms-api/internal/domain/entity"
	"github.com/faithbit/ssms-api/pkg/token"
)

// fakeUserRepo is an in-memory UserRepository for use case tests.
type fakeUserRepo struct {
	users map[string]*entity.User // by ID
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByLogin(_ context.Context, login string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == login || u.Email == login {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindActiveByID(_ context.Context, id string) (*entity.User, error) {
	u := r.users[id]
	if u == nil || !u.IsActive() {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) UpdateTokens(_ context.Context, id, access, refresh string) error {
	u := r.users[id]
	u.AccessToken = access
	u.RefreshToken = refresh
	return nil
}

func (r *fakeUserRepo) ClearTokens(_ context.Context, id string) error {
	if u := r.users[id]; u != nil {
		u.AccessToken = ""
		u.RefreshToken = ""
	}
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id string) error {
	now := time.Now()
	r.users[id].LastLoginAt = &now
	return nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func activeUser(t *testing.T) *entity.User {
	return &entity.User{
		ID:           "u-1",
		Username:     "asha",
		Email:        "asha@faithbit.example",
		PasswordHash: hashOf(t, "correct horse"),
		FirstName:    "Asha",
		LastName:     "Mrema",
		Role:         "manager",
		Status:       entity.StatusActive,
	}
}

func newUseCase(repo *fakeUserRepo) *auth.UseCase {
	iss := token.NewIssuer("usecase-test-secret", "ssms-test", time.Hour, 24*time.Hour)
	return auth.NewUseCase(repo, nil, iss)
}

func TestLogin_Success(t *testing.T) {
	user := activeUser(t)
	repo := newFakeUserRepo(user)
	uc := newUseCase(repo)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "asha", Password: "correct horse"})
	require.NoError(t, err)

	assert.Equal(t, "u-1", out.User.ID)
	assert.Equal(t, "Asha Mrema", out.User.FullName)
	assert.NotEmpty(t, out.User.Permissions, "permissions come from the role table")
	assert.Equal(t, "Bearer", out.Tokens.TokenType)
	assert.Equal(t, int64(3600), out.Tokens.ExpiresIn)
	assert.NotEmpty(t, out.Tokens.AccessToken)
	assert.NotEmpty(t, out.Tokens.RefreshToken)

	assert.Equal(t, out.Tokens.AccessToken, user.AccessToken, "issued tokens are persisted")
	assert.Equal(t, out.Tokens.RefreshToken, user.RefreshToken)
	assert.NotNil(t, user.LastLoginAt)
}

func TestLogin_ByEmail(t *testing.T) {
	uc := newUseCase(newFakeUserRepo(activeUser(t)))
	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "asha@faithbit.example", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "asha", out.User.Username)
}

// Wrong password and unknown user must be indistinguishable to the caller.
func TestLogin_UniformCredentialFailure(t *testing.T) {
	uc := newUseCase(newFakeUserRepo(activeUser(t)))

	_, errWrongPass := uc.Login(context.Background(), dto.LoginRequest{Username: "asha", Password: "nope"})
	_, errNoUser := uc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "nope"})

	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.Equal(t, errWrongPass, errNoUser)
}

func TestLogin_InactiveAccount(t *testing.T) {
	user := activeUser(t)
	user.Status = entity.StatusSuspended
	uc := newUseCase(newFakeUserRepo(user))

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "asha", Password: "correct horse"})
	assert.ErrorIs(t, err, domain.ErrAccountNotActive)
}

// The status gate sits behind the password check, so a suspended account
// probed with a wrong password reveals nothing about its status.
func TestLogin_InactiveAccountWrongPassword(t *testing.T) {
	user := activeUser(t)
	user.Status = entity.StatusSuspended
	uc := newUseCase(newFakeUserRepo(user))

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "asha", Password: "nope"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRefresh_RotatesPair(t *testing.T) {
	user := activeUser(t)
	repo := newFakeUserRepo(user)
	uc := newUseCase(repo)

	login, err := uc.Login(context.Background(), dto.LoginRequest{Username: "asha", Password: "correct horse"})
	require.NoError(t, err)
	oldRefresh := login.Tokens.RefreshToken

	// Issued-at has second resolution; step past it so the new pair differs.
	time.Sleep(1100 * time.Millisecond)

	out, err := uc.Refresh(context.Background(), oldRefresh)
	require.NoError(t, err)
	assert.NotEqual(t, oldRefresh, out.Tokens.RefreshToken)
	assert.Equal(t, out.Tokens.RefreshToken, user.RefreshToken, "rotation persists the new token")

	// The replaced refresh token is dead.
	_, err = uc.Refresh(context.Background(), oldRefresh)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

// An access token presented to Refresh must be rejected even though its
// signature and expiry are valid.
func TestRefresh_RejectsAccessToken(t *testing.T) {
	user := activeUser(t)
	uc := newUseCase(newFakeUserRepo(user))

	login, err := uc.Login(context.Background(), dto.LoginRequest{Username: "asha", Password: "correct horse"})
	require.NoError(t, err)

	_, err = uc.Refresh(context.Background(), login.Tokens.AccessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestRefresh_GarbageToken(t *testing.T) {
	uc := newUseCase(newFakeUserRepo(activeUser(t)))
	_, err := uc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestLogout_RevokesStoredTokens(t *testing.T) {
	user := activeUser(t)
	repo := newFakeUserRepo(user)
	uc := newUseCase(repo)

	login, err := uc.Login(context.Background(), dto.LoginRequest{Username: "asha", Password: "correct horse"})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), user.ID))
	assert.Empty(t, user.AccessToken)
	assert.Empty(t, user.RefreshToken)

	// The stored-token match makes the revoked refresh token unusable.
	_, err = uc.Refresh(context.Background(), login.Tokens.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestMe_ReFetchesLiveStatus(t *testing.T) {
	user := activeUser(t)
	uc := newUseCase(newFakeUserRepo(user))

	out, err := uc.Me(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha", out.Username)

	// Suspension takes effect immediately on the re-fetch path, even while
	// the access token is still within its TTL.
	user.Status = entity.StatusSuspended
	_, err = uc.Me(context.Background(), user.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
