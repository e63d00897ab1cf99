package middleware

import (
	"net/http"
	"strings"

	"github.com/DREXATROLL/muzrent-pro/internal/auth"
	"github.com/DREXATROLL/muzrent-pro/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

type TokenVerifier interface {
	Validate(token string) (*auth.Claims, error)
}

// Auth requires a valid bearer token and stores its subject and role in the
// request context.
func Auth(verifier TokenVerifier) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": auth.ErrMissingToken.Error()})
			return
		}

		claims, err := verifier.Validate(strings.TrimSpace(token))
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": auth.ErrInvalidToken.Error()})
			return
		}

		role := claims.Role
		if role == "" {
			role = domain.RoleUser
		}

		c.Set(CtxUserID, claims.Subject)
		c.Set(CtxRole, string(role))
		c.Next()
	}
}

// RequireRole must run after Auth.
func RequireRole(role domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if c.GetString(CtxRole) != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": domain.ErrForbidden.Error()})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated subject or "" outside Auth.
func UserID(c *ginext.Context) string {
	return c.GetString(CtxUserID)
}
