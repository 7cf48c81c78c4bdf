package middleware

import (
	"worklink_backend/internal/apperrors"
	"worklink_backend/internal/auth"
	"worklink_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// AuthMiddleware resolves the request's principal through the configured
// authenticator and stores it in the Gin context. Handlers never see how
// the identity was produced.
func AuthMiddleware(authenticator auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := authenticator.Authenticate(c.Request)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError(err.Error()))
			c.Abort()
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), principal.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(principalKey, principal)
		c.Next()
	}
}

// GetPrincipal extracts the authenticated identity from the context.
func GetPrincipal(c *gin.Context) (*auth.Principal, bool) {
	val, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := val.(*auth.Principal)
	return principal, ok
}

// SetPrincipal injects a principal directly; used by handler tests.
func SetPrincipal(c *gin.Context, principal *auth.Principal) {
	c.Set(principalKey, principal)
}
