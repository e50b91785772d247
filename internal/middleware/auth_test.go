package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"skylog/flightdeck/internal/auth"
	"skylog/flightdeck/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedEndpoint(t *testing.T, sawClaims *auth.UserClaims) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*sawClaims = auth.GetUserClaims(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddlewarePassesValidToken(t *testing.T) {
	token, _, err := auth.IssueToken("user-1", "maverick", constants.RolePilot)
	require.NoError(t, err)

	var claims auth.UserClaims
	handler := AuthMiddleware()(protectedEndpoint(t, &claims))

	req := httptest.NewRequest("GET", "/api/v1/flights", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, claims)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "maverick", claims.Username())
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	var claims auth.UserClaims
	handler := AuthMiddleware()(protectedEndpoint(t, &claims))

	req := httptest.NewRequest("GET", "/api/v1/flights", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Nil(t, claims)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	var claims auth.UserClaims
	handler := AuthMiddleware()(protectedEndpoint(t, &claims))

	req := httptest.NewRequest("GET", "/api/v1/flights", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestIsAdminMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := IsAdminMiddleware()(next)

	adminToken, _, err := auth.IssueToken("boss", "iceman", constants.RoleAdmin)
	require.NoError(t, err)
	adminClaims, err := auth.ParseToken(adminToken)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/v1/admin/audit", nil)
	req = req.WithContext(auth.SetUserClaims(req.Context(), adminClaims))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	pilotToken, _, err := auth.IssueToken("user-1", "maverick", constants.RolePilot)
	require.NoError(t, err)
	pilotClaims, err := auth.ParseToken(pilotToken)
	require.NoError(t, err)

	req = httptest.NewRequest("GET", "/api/v1/admin/audit", nil)
	req = req.WithContext(auth.SetUserClaims(req.Context(), pilotClaims))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	// No claims at all.
	req = httptest.NewRequest("GET", "/api/v1/admin/audit", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
