package checkout_controller

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanyamChaudhary27/project-panther/models"
)

// CreateShipment godoc
// @Summary Forward an order payload to the logistics partner
// @Description Pure pass-through: the payload goes out verbatim and the
// @Description shipment record comes back verbatim.
// @Tags Store - Checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /checkout/shipment [post]
func CreateShipment(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil || len(payload) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Order payload required"))
		return
	}

	shipment, err := pickrr.CreateShipment(c.Request.Context(), json.RawMessage(payload))
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shipment created", shipment))
}
