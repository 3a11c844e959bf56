package checkout_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sanyamChaudhary27/project-panther/models"
	"github.com/sanyamChaudhary27/project-panther/utils"
)

// CreatePayment godoc
// @Summary Open a gateway payment for the current cart
// @Description Registers a Razorpay order for the cart total and returns
// @Description the checkout dialog options. Gateway failures are returned
// @Description to the caller as-is; there is no automatic retry.
// @Tags Store - Checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payment body models.CheckoutPaymentRequest true "Checkout contact details"
// @Success 200 {object} models.ApiResponse{data=models.CheckoutOptions}
// @Failure 400 {object} models.ApiResponse "Cart is empty"
// @Failure 502 {object} models.ApiResponse "Payment gateway unavailable"
// @Router /checkout/payment [post]
func CreatePayment(c *gin.Context) {
	var req models.CheckoutPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	if !cart.HasItems() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
		return
	}

	amount := cart.Total()
	receipt := uuid.Must(uuid.NewV7()).String()

	orderID, err := razorpay.CreateOrder(amount, receipt)
	if err != nil {
		log.Printf("❌ Failed to create payment order: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, err.Error()))
		return
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Panther Order · %s", utils.FormatINR(amount))
	}

	options := razorpay.CheckoutOptions(models.PaymentOrder{
		Amount:          amount,
		Description:     description,
		RazorpayOrderID: orderID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   auth.UserEmail(),
		CustomerPhone:   req.CustomerPhone,
	})

	log.Printf("✅ Payment order %s created for %s", orderID, utils.FormatINR(amount))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Payment order created", options))
}
