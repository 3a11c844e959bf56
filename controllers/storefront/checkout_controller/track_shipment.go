package checkout_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanyamChaudhary27/project-panther/models"
)

// TrackShipment godoc
// @Summary Tracking record for a shipment
// @Tags Store - Checkout
// @Produce json
// @Param id path string true "Tracking ID"
// @Success 200 {object} models.ApiResponse
// @Router /checkout/shipment/track/{id} [get]
func TrackShipment(c *gin.Context) {
	record, err := pickrr.TrackShipment(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, err.Error()))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Tracking retrieved", record))
}
