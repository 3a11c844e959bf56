package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanyamChaudhary27/project-panther/models"
)

// GetSession godoc
// @Summary Current session state
// @Tags Store - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.SessionResponse}
// @Router /auth/session [get]
func GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session retrieved", sessionPayload()))
}
