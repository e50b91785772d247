package api

import (
	"net/http"

	"skylog/flightdeck/internal/auth"
	"skylog/flightdeck/internal/constants"
)

// testClaims satisfies auth.UserClaims without minting a token.
type testClaims struct {
	id   string
	name string
	role constants.UserRole
}

func (c *testClaims) UserID() string           { return c.id }
func (c *testClaims) Username() string         { return c.name }
func (c *testClaims) Role() constants.UserRole { return c.role }
func (c *testClaims) IsAdmin() bool            { return c.role.IsAdmin() }

func withClaims(req *http.Request, claims auth.UserClaims) *http.Request {
	return req.WithContext(auth.SetUserClaims(req.Context(), claims))
}

// recordingInvalidator remembers which cache scopes were dropped.
type recordingInvalidator struct {
	invalidated []string
}

func (r *recordingInvalidator) Invalidate(userID string) {
	r.invalidated = append(r.invalidated, userID)
}
