package auth

import (
	"skylog/flightdeck/internal/constants"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is what middleware attaches to the request context and what
// handlers read. Keeping it an interface lets tests stub claims without
// minting tokens.
type UserClaims interface {
	UserID() string
	Username() string
	Role() constants.UserRole
	IsAdmin() bool
}

// JWTClaims is the token payload. RegisteredClaims supplies exp/iat/sub
// handling; the extra fields carry the logbook identity.
type JWTClaims struct {
	UsernameValue string             `json:"username"`
	RoleValue     constants.UserRole `json:"role"`
	jwt.RegisteredClaims
}

func (c *JWTClaims) UserID() string           { return c.Subject }
func (c *JWTClaims) Username() string         { return c.UsernameValue }
func (c *JWTClaims) Role() constants.UserRole { return c.RoleValue }
func (c *JWTClaims) IsAdmin() bool            { return c.RoleValue.IsAdmin() }
