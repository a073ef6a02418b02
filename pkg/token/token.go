// Package token issues and verifies the signed bearer tokens used by the
// API: short-lived access tokens carrying identity and role claims, and
// long-lived refresh tokens carrying only the user id.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/faithbit/ssms-api/internal/domain/entity"
)

// Token types. A token's declared type must match the endpoint's expected
// type or verification fails, regardless of signature validity.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims are the standard JWT claims plus the application's identity fields.
// Role lets the permission middleware decide without a database read.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"uid"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	BranchID  string `json:"branch_id,omitempty"`
	TokenType string `json:"type"`
}

// Issuer mints and verifies HS256-signed tokens.
type Issuer struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewIssuer builds an Issuer. TTLs are configuration-driven; zero values get
// the documented defaults (24h access, 30d refresh).
func NewIssuer(secret, issuer string, accessTTL, refreshTTL time.Duration) *Issuer {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 30 * 24 * time.Hour
	}
	return &Issuer{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// AccessTTL returns the configured access token lifetime (for expires_in).
func (i *Issuer) AccessTTL() time.Duration { return i.accessTTL }

// IssueAccess mints an access token carrying the user's identity, role and
// branch. ExpiresAt - IssuedAt always equals the configured access TTL.
func (i *Issuer) IssueAccess(user *entity.User) (string, error) {
	return i.sign(Claims{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		BranchID:  user.BranchID,
		TokenType: TypeAccess,
	}, i.accessTTL)
}

// IssueRefresh mints a refresh token carrying only the user id and the
// refresh type marker.
func (i *Issuer) IssueRefresh(user *entity.User) (string, error) {
	return i.sign(Claims{
		UserID:    user.ID,
		TokenType: TypeRefresh,
	}, i.refreshTTL)
}

func (i *Issuer) sign(claims Claims, ttl time.Duration) (string, error) {
	if len(i.secret) == 0 {
		return "", fmt.Errorf("token: empty signing secret")
	}
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    i.issuer,
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify validates signature and expiry and checks the declared token type.
// Any failure (malformed, wrong signature, expired, wrong type) returns an
// error; callers surface it uniformly without detailing which check failed.
func (i *Issuer) Verify(tokenString, wantType string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("token: invalid claims")
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("token: type %q where %q expected", claims.TokenType, wantType)
	}
	return claims, nil
}
