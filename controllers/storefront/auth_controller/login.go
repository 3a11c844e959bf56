package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanyamChaudhary27/project-panther/models"
)

// Login godoc
// @Summary Exchange credentials for a session
// @Tags Store - Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.SessionResponse}
// @Failure 401 {object} models.ApiResponse "Login failed"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	if !auth.Login(c.Request.Context(), req.Email, req.Password) {
		toasts.Error(auth.Err())
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, auth.Err()))
		return
	}

	toasts.Success("Welcome back")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in", sessionPayload()))
}
