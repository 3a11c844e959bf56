package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanyamChaudhary27/project-panther/models"
)

// Logout godoc
// @Summary Clear the session
// @Tags Store - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	auth.Logout()
	toasts.Info("Logged out")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", sessionPayload()))
}
