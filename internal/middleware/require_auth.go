// Package middleware contain utilities middleware code
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/auth"
	"jobportal-backend/internal/service"
	"jobportal-backend/internal/utilities"
)

// Principal is the authenticated identity resolved from a bearer token.
type Principal struct {
	ID   uint
	Role string
}

const principalKey = "principal"

// RequireAuth validates the Bearer token in the Authorization header and
// attaches the resolved principal to the request context. The token alone
// establishes the principal; no database lookup happens per request.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := utilities.ExtractBearerToken(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, service.FailField("authorization", "No token provided"))
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, service.FailField("authorization", "Invalid token"))
			return
		}

		ctx.Set(principalKey, Principal{ID: claims.SubjectID, Role: claims.Role})
		ctx.Next()
	}
}

// GetPrincipal extracts the principal stored by RequireAuth.
func GetPrincipal(c *gin.Context) (Principal, error) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, errors.New("principal not provided")
	}

	principal, ok := v.(Principal)
	if !ok {
		return Principal{}, errors.New("failed to assert principal type")
	}
	return principal, nil
}
