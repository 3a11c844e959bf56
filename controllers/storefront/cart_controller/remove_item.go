package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanyamChaudhary27/project-panther/models"
)

// RemoveItem godoc
// @Summary Remove a line item from the cart
// @Tags Store - Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /cart/items/{id} [delete]
func RemoveItem(c *gin.Context) {
	cart.RemoveFromCart(c.Param("id"))
	toasts.Info("Item removed from cart")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed", cart.Response()))
}
