package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithbit/ssms-api/internal/domain/entity"
	"github.com/faithbit/ssms-api/internal/domain/rbac"
	apphttp "github.com/faithbit/ssms-api/internal/interfaces/http"
	"github.com/faithbit/ssms-api/pkg/token"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
)

func testIssuer() *token.Issuer {
	return token.NewIssuer(testSecret, "ssms-test", time.Hour, 24*time.Hour)
}

// buildProtectedApp wires Authenticate plus RequirePermission in front of a
// handler that echoes the authenticated identity.
func buildProtectedApp(issuer *token.Issuer, permission string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.Authenticate(issuer),
		apphttp.RequirePermission(permission),
		func(c *fiber.Ctx) error {
			claims := apphttp.CurrentClaims(c)
			return c.JSON(fiber.Map{
				"user_id": apphttp.CurrentUserID(c),
				"role":    claims.Role,
			})
		},
	)
	return app
}

func accessTokenForRole(t *testing.T, issuer *token.Issuer, role string) string {
	t.Helper()
	tok, err := issuer.IssueAccess(&entity.User{
		ID:       testUserID,
		Username: "jmwangi",
		Email:    "jmwangi@example.com",
		Role:     role,
	})
	require.NoError(t, err)
	return tok
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthenticate_ValidTokenLoadsClaims(t *testing.T) {
	issuer := testIssuer()
	app := buildProtectedApp(issuer, "customer.view")
	resp := doProtected(t, app, "Bearer "+accessTokenForRole(t, issuer, rbac.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, rbac.RoleAdmin, body["role"])
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	app := buildProtectedApp(testIssuer(), "customer.view")
	resp := doProtected(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Access token required")
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	issuer := testIssuer()
	app := buildProtectedApp(issuer, "customer.view")
	resp := doProtected(t, app, accessTokenForRole(t, issuer, rbac.RoleAdmin)) // no Bearer prefix
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	app := buildProtectedApp(testIssuer(), "customer.view")
	resp := doProtected(t, app, "Bearer not.a.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Invalid or expired token")
}

// A refresh token must not open protected routes even though its signature
// is valid.
func TestAuthenticate_RefreshTokenRejected(t *testing.T) {
	issuer := testIssuer()
	app := buildProtectedApp(issuer, "customer.view")

	refresh, err := issuer.IssueRefresh(&entity.User{ID: testUserID})
	require.NoError(t, err)

	resp := doProtected(t, app, "Bearer "+refresh)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	other := token.NewIssuer("a-completely-different-secret", "ssms-test", time.Hour, 24*time.Hour)
	app := buildProtectedApp(testIssuer(), "customer.view")
	resp := doProtected(t, app, "Bearer "+accessTokenForRole(t, other, rbac.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequirePermission_WildcardGrant(t *testing.T) {
	issuer := testIssuer()
	// manager holds customer.*, which covers customer.view
	app := buildProtectedApp(issuer, "customer.view")
	resp := doProtected(t, app, "Bearer "+accessTokenForRole(t, issuer, rbac.RoleManager))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequirePermission_Denied(t *testing.T) {
	issuer := testIssuer()
	// cashier has no branch grants
	app := buildProtectedApp(issuer, "branch.view")
	resp := doProtected(t, app, "Bearer "+accessTokenForRole(t, issuer, rbac.RoleCashier))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "permission")
}

func TestRequirePermission_UnknownRoleDenied(t *testing.T) {
	issuer := testIssuer()
	app := buildProtectedApp(issuer, "customer.view")
	resp := doProtected(t, app, "Bearer "+accessTokenForRole(t, issuer, "intern"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
