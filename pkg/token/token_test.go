package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithbit/ssms-api/internal/domain/entity"
	"github.com/faithbit/ssms-api/pkg/token"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "faithbit-ssms-test"
)

func testUser() *entity.User {
	return &entity.User{
		ID:       "00000000-0000-0000-0000-000000000001",
		Username: "jdoe",
		Email:    "jdoe@faithbit.example",
		Role:     "manager",
		BranchID: "00000000-0000-0000-0000-0000000000b1",
		Status:   entity.StatusActive,
	}
}

func TestIssueAccess_RoundTripClaims(t *testing.T) {
	iss := token.NewIssuer(testSecret, testIssuer, time.Hour, 30*24*time.Hour)
	user := testUser()

	tok, err := iss.IssueAccess(user)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := iss.Verify(tok, token.TypeAccess)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, user.BranchID, claims.BranchID)
	assert.Equal(t, token.TypeAccess, claims.TokenType)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, user.ID, claims.Subject)
}

func TestIssueAccess_ExpiryMatchesTTL(t *testing.T) {
	const ttl = 24 * time.Hour
	iss := token.NewIssuer(testSecret, testIssuer, ttl, 0)

	tok, err := iss.IssueAccess(testUser())
	require.NoError(t, err)

	claims, err := iss.Verify(tok, token.TypeAccess)
	require.NoError(t, err)

	gap := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	assert.Equal(t, ttl, gap, "expires_at - issued_at must equal the access TTL")
}

func TestIssueRefresh_CarriesOnlyIdentity(t *testing.T) {
	iss := token.NewIssuer(testSecret, testIssuer, time.Hour, time.Hour)
	user := testUser()

	tok, err := iss.IssueRefresh(user)
	require.NoError(t, err)

	claims, err := iss.Verify(tok, token.TypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, token.TypeRefresh, claims.TokenType)
	assert.Empty(t, claims.Role)
	assert.Empty(t, claims.Email)
	assert.Empty(t, claims.Username)
}

// An access token presented where a refresh token is expected must be
// rejected even though signature and expiry are fine, and vice versa.
func TestVerify_TypeMismatchRejected(t *testing.T) {
	iss := token.NewIssuer(testSecret, testIssuer, time.Hour, time.Hour)

	access, err := iss.IssueAccess(testUser())
	require.NoError(t, err)
	_, err = iss.Verify(access, token.TypeRefresh)
	assert.Error(t, err)

	refresh, err := iss.IssueRefresh(testUser())
	require.NoError(t, err)
	_, err = iss.Verify(refresh, token.TypeAccess)
	assert.Error(t, err)
}

// NewIssuer clamps non-positive TTLs to the defaults, so an expired token
// has to be signed by hand with the same secret and claims shape.
func TestVerify_ExpiredRejected(t *testing.T) {
	iss := token.NewIssuer(testSecret, testIssuer, time.Hour, time.Hour)

	now := time.Now()
	claims := token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   testUser().ID,
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		UserID:    testUser().ID,
		TokenType: token.TypeAccess,
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = iss.Verify(tok, token.TypeAccess)
	assert.Error(t, err, "expired token must fail verification despite a valid signature")
}

func TestVerify_WrongSecretRejected(t *testing.T) {
	iss := token.NewIssuer(testSecret, testIssuer, time.Hour, time.Hour)
	other := token.NewIssuer("a-completely-different-secret", testIssuer, time.Hour, time.Hour)

	tok, err := iss.IssueAccess(testUser())
	require.NoError(t, err)

	_, err = other.Verify(tok, token.TypeAccess)
	assert.Error(t, err)
}

func TestVerify_MalformedRejected(t *testing.T) {
	iss := token.NewIssuer(testSecret, testIssuer, time.Hour, time.Hour)
	_, err := iss.Verify("not.a.token", token.TypeAccess)
	assert.Error(t, err)
}

func TestNewIssuer_DefaultTTLs(t *testing.T) {
	iss := token.NewIssuer(testSecret, testIssuer, 0, 0)
	assert.Equal(t, 24*time.Hour, iss.AccessTTL())
}

func TestIssue_EmptySecretFails(t *testing.T) {
	iss := token.NewIssuer("", testIssuer, time.Hour, time.Hour)
	_, err := iss.IssueAccess(testUser())
	assert.Error(t, err)
}
