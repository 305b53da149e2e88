package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-admin/internal/domain"
)

// TokenCookieName is the cookie carrying the session token.
const TokenCookieName = "x-access-token"

const identityKey = "identity"

// requireAuth gates protected routes. An absent, invalid, or expired
// token rejects the request before the handler runs; on success the
// resolved identity is stored in the request context.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(TokenCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		user, err := h.auth.Identify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		c.Set(identityKey, user)
		c.Next()
	}
}

// identityFrom returns the authenticated user for the request, or nil.
func identityFrom(c *gin.Context) *domain.User {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	user, ok := value.(*domain.User)
	if !ok {
		return nil
	}
	return user
}
