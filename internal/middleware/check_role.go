package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/model"
	"jobportal-backend/internal/service"
	"jobportal-backend/internal/utilities"
)

// RequireRole will protect endpoint from principals that hold none of the
// given roles. It must run after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal, err := GetPrincipal(ctx)
		if err != nil || !utilities.Contains(roles, principal.Role) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, service.FailField("authorization", "Only employers can access this resource"))
			return
		}
		ctx.Next()
	}
}

// RequireEmployer is the role guard used on job creation.
func RequireEmployer() gin.HandlerFunc {
	return RequireRole(model.RoleEmployer)
}
