package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cookshare/backend/internal/service"
)

const accountIDKey = "account_id"

// AuthConfig carries what token validation needs: the signing secret and the
// revocation list. Deny may be nil, in which case no revocation check runs.
type AuthConfig struct {
	Secret string
	Deny   service.DenyChecker
}

// RequireAuth validates the Bearer token and aborts with 401 when it is
// missing, invalid, or revoked.
func RequireAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, err := authenticate(c, cfg)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		if accountID == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}
		c.Set(accountIDKey, *accountID)
		c.Next()
	}
}

// OptionalAuth resolves the account when a valid token is present and lets
// anonymous requests through. Used by read paths that only personalize their
// response (favorite annotation on popular lists).
func OptionalAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, err := authenticate(c, cfg)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		if accountID != nil {
			c.Set(accountIDKey, *accountID)
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, cfg AuthConfig) (*uuid.UUID, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, fmt.Errorf("invalid authorization header format")
	}
	token := parts[1]

	if cfg.Deny != nil {
		denied, err := cfg.Deny.IsDenied(c.Request.Context(), token)
		if err != nil {
			return nil, fmt.Errorf("token check failed")
		}
		if denied {
			return nil, fmt.Errorf("token revoked")
		}
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid token subject")
	}
	return &accountID, nil
}

// AccountID returns the authenticated account id, or nil for anonymous
// requests.
func AccountID(c *gin.Context) *uuid.UUID {
	v, exists := c.Get(accountIDKey)
	if !exists {
		return nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}
