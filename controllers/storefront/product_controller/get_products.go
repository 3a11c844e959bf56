package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanyamChaudhary27/project-panther/models"
)

// GetProducts godoc
// @Summary List catalog products
// @Description Full catalog, or filtered by availability
// @Tags Store - Products
// @Produce json
// @Param availability query string false "available | coming_soon"
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Router /store/products [get]
func GetProducts(c *gin.Context) {
	var list []models.Product

	switch c.Query("availability") {
	case "available":
		list = products.Available()
	case "coming_soon":
		list = products.ComingSoon()
	default:
		list = products.All()
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products retrieved", list))
}
