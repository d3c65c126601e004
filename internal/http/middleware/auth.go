// README: Bearer-token auth middleware over a pluggable verifier.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID   = "auth_user_id"
	ContextIsHost   = "auth_is_host"
	ContextRawToken = "auth_raw_token"
)

// Identity is what downstream handlers need from the session: who the
// caller is and whether they also act as a host for listed vehicles.
type Identity struct {
	UserID string
	IsHost bool
}

// TokenVerifier validates a raw bearer token and returns the caller's
// identity. Session management itself lives upstream; this layer only
// verifies and forwards.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

// JWTVerifier is the production TokenVerifier, validating HMAC-signed
// tokens issued by the auth backend.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

func (v *JWTVerifier) Verify(token string) (Identity, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Identity{}, errors.New("invalid token")
	}
	return Identity{
		UserID: claims.Subject,
		IsHost: claims.Role == "host",
	}, nil
}

// Auth rejects requests without a valid bearer token and stores the
// caller's identity plus the raw token (forwarded to the upstream
// booking backend) on the request context.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		id, err := verifier.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(ContextUserID, id.UserID)
		c.Set(ContextIsHost, id.IsHost)
		c.Set(ContextRawToken, raw)
		c.Next()
	}
}
