package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanyamChaudhary27/project-panther/models"
)

// ClearCart godoc
// @Summary Empty the cart
// @Tags Store - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /cart [delete]
func ClearCart(c *gin.Context) {
	cart.ClearCart()
	toasts.Info("Cart cleared")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", cart.Response()))
}
