package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanyamChaudhary27/project-panther/models"
)

// UpdateItem godoc
// @Summary Set the quantity of a cart line item
// @Description A non-positive quantity or unknown line item is silently
// @Description ignored; the cart comes back unchanged either way.
// @Tags Store - Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param quantity body models.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /cart/items/{id} [patch]
func UpdateItem(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	cart.UpdateQuantity(c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", cart.Response()))
}
