package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
)

// RequireRole is a middleware that checks if the authenticated client has the required role.
// It must run after OAuth2Auth.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, exists := c.Get(ContextClientID)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewErrorResponse("Client not authenticated"))
			return
		}

		role := c.GetString(ContextUserRole)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, models.NewErrorResponse("Client role not found in token"))
			return
		}

		if role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":         "Insufficient permissions",
				"required_role": requiredRole,
				"client_role":   role,
				"client_id":     clientID,
			})
			return
		}

		c.Next()
	}
}
