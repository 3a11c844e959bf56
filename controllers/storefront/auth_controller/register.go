package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanyamChaudhary27/project-panther/models"
)

// Register godoc
// @Summary Create an account and establish a session
// @Description Registration success chains straight into login with the
// @Description same credentials.
// @Tags Store - Auth
// @Accept json
// @Produce json
// @Param user body models.RegisterRequest true "Account details"
// @Success 201 {object} models.ApiResponse{data=models.SessionResponse}
// @Failure 400 {object} models.ApiResponse "Registration failed"
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	if !auth.Register(c.Request.Context(), req) {
		toasts.Error(auth.Err())
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, auth.Err()))
		return
	}

	toasts.Success("Account created")
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Registered", sessionPayload()))
}
