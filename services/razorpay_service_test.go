package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanyamChaudhary27/project-panther/models"
)

func TestCreateOrderWithoutKeys(t *testing.T) {
	svc := NewRazorpayService("", "")
	_, err := svc.CreateOrder(2099, "rcpt-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestCheckoutOptionsConvertsToPaiseAtBoundary(t *testing.T) {
	svc := NewRazorpayService("rzp_test_key", "secret")

	opts := svc.CheckoutOptions(models.PaymentOrder{
		Amount:          2099,
		RazorpayOrderID: "order_123",
		CustomerName:    "Arjun",
		CustomerEmail:   "arjun@panther.fit",
		CustomerPhone:   "+919900112233",
	})

	assert.Equal(t, 209900, opts.Amount)
	assert.Equal(t, "INR", opts.Currency)
	assert.Equal(t, "rzp_test_key", opts.Key)
	assert.Equal(t, "The Panther", opts.Name)
	assert.Equal(t, "Panther Order", opts.Description, "empty description falls back to the default")
	assert.Equal(t, "order_123", opts.OrderID)
	assert.Equal(t, "Arjun", opts.Prefill.Name)
	assert.Equal(t, "arjun@panther.fit", opts.Prefill.Email)
	assert.Equal(t, "+919900112233", opts.Prefill.Contact)
	assert.Equal(t, "#ffd700", opts.Theme.Color)
}

func TestCheckoutOptionsKeepsExplicitDescription(t *testing.T) {
	svc := NewRazorpayService("rzp_test_key", "secret")
	opts := svc.CheckoutOptions(models.PaymentOrder{Amount: 100, Description: "Panther Core ×1"})
	assert.Equal(t, "Panther Core ×1", opts.Description)
}
