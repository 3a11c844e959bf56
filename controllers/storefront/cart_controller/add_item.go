package cart_controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanyamChaudhary27/project-panther/models"
)

// AddItem godoc
// @Summary Add a catalog product to the cart
// @Description Adding a product already in the cart increments its quantity
// @Tags Store - Cart
// @Accept json
// @Produce json
// @Param item body models.AddToCartRequest true "Product and quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /cart/items [post]
func AddItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	product, ok := products.GetByID(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	cart.AddToCart(product, req.Quantity)
	toasts.Success(fmt.Sprintf("%s added to cart", product.Name))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", cart.Response()))
}
