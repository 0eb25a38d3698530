// Package middleware provides the request/response delivery mode of the
// authorization guard: every guarded route resolves the bearer token to a
// principal before the handler runs.
package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"cookcal_backend/internal/api"
	"cookcal_backend/internal/domain/apperr"
	"cookcal_backend/internal/feature/users/domain/entity"
)

// ContextPrincipal is the gin context key holding the resolved principal.
const ContextPrincipal = "principal"

// Resolver resolves a bearer token to the acting principal.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*entity.User, error)
}

// AuthRequired returns a middleware that rejects requests without a valid
// bearer token and stores the resolved principal in the request context.
func AuthRequired(resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(api.StatusFor(apperr.ErrUnauthenticated),
				api.ErrorResponse{Detail: api.DetailFor(apperr.ErrUnauthenticated)})
			return
		}

		principal, err := resolver.Resolve(c.Request.Context(), strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(api.StatusFor(err), api.ErrorResponse{Detail: api.DetailFor(err)})
			return
		}

		c.Set(ContextPrincipal, principal)
		c.Next()
	}
}

// PrincipalFrom returns the principal stored by AuthRequired, or nil on
// unguarded routes.
func PrincipalFrom(c *gin.Context) *entity.User {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return nil
	}
	principal, _ := v.(*entity.User)
	return principal
}
