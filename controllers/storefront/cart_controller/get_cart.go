package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanyamChaudhary27/project-panther/models"
)

// GetCart godoc
// @Summary Current cart with derived totals
// @Tags Store - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /cart [get]
func GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart retrieved", cart.Response()))
}
