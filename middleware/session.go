package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanyamChaudhary27/project-panther/models"
	"github.com/sanyamChaudhary27/project-panther/stores"
)

// RequireSession rejects requests while no session is established.
// Checkout needs a logged-in customer; everything else is public.
func RequireSession(auth *stores.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.IsLoggedIn() {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
