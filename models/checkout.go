package models

// CheckoutPaymentRequest starts a gateway payment for the current cart.
// Email comes from the session; name and phone are collected at checkout.
type CheckoutPaymentRequest struct {
	Description   string `json:"description"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
}

// PaymentOrder describes a payment to be opened with the gateway.
// Amount is whole rupees; the paise conversion happens at the gateway
// boundary only.
type PaymentOrder struct {
	Amount          int
	Description     string
	RazorpayOrderID string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
}

// CheckoutPrefill pre-populates the gateway dialog's contact fields
type CheckoutPrefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

type CheckoutTheme struct {
	Color string `json:"color"`
}

// CheckoutOptions is the configuration handed to the Razorpay checkout
// dialog. Amount here is in paise.
type CheckoutOptions struct {
	Key         string          `json:"key"`
	Amount      int             `json:"amount"`
	Currency    string          `json:"currency"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	OrderID     string          `json:"order_id"`
	Prefill     CheckoutPrefill `json:"prefill"`
	Theme       CheckoutTheme   `json:"theme"`
}
