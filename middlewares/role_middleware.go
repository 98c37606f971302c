package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole allows only callers whose session carries one of the given
// roles. Anonymous callers and wrong-role callers are both forbidden.
// SessionMiddlewareの後に使用することを想定
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, _, ok := CurrentSession(ctx)
		if !ok {
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		for _, role := range allowedRoles {
			if session.Role == role {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatus(http.StatusForbidden)
	}
}
