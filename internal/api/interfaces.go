package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/limbo/ecosaver/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

func (c *JWTClaims) UID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}

// Active reports whether the token is usable at now. Tokens without an
// expiry are never active.
func (c *JWTClaims) Active(now time.Time) bool {
	if c.ExpiresAt == nil || !c.ExpiresAt.Time.After(now) {
		return false
	}
	return c.NotBefore == nil || !c.NotBefore.Time.After(now)
}
