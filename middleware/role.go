package middleware

import (
	"net/http"

	"barberbook/models"
	"barberbook/services/auth"

	"github.com/gin-gonic/gin"
)

// RequireRoles gates a route group to the given roles. It reuses the portal
// gate evaluation so HTTP responses carry the same redirect targets the
// client-side gate would compute: 401 with the login redirect for anonymous
// callers, 403 with the caller's own home screen on a role mismatch.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := auth.State{IsInitialized: true}

		if id, ok := c.Get(ContextUserIDKey); ok {
			role, _ := c.Get(ContextRoleKey)
			normalized, _ := role.(models.Role)
			st.User = &models.User{ID: id.(string), Role: normalized}
		}

		result := auth.Evaluate(st, roles, c.Request.URL.Path)
		switch result.Decision {
		case auth.DecisionAllow:
			c.Next()
		case auth.DecisionLogin:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "Authentication required",
				"redirectTo": result.RedirectTo,
			})
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "Insufficient permissions",
				"redirectTo": result.RedirectTo,
			})
		}
	}
}
