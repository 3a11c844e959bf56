package services

import (
	"errors"
	"fmt"
	"sync"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/sanyamChaudhary27/project-panther/models"
)

const (
	brandName     = "The Panther"
	checkoutColor = "#ffd700"
)

// RazorpayService wraps the payment gateway SDK. The client is built once
// and reused, and gateway failures are handed back to the caller untouched;
// the caller owns the user-facing messaging and there is no automatic retry.
type RazorpayService struct {
	keyID     string
	keySecret string

	once   sync.Once
	client *razorpay.Client
}

func NewRazorpayService(keyID, keySecret string) *RazorpayService {
	return &RazorpayService{keyID: keyID, keySecret: keySecret}
}

func (s *RazorpayService) ensureClient() (*razorpay.Client, error) {
	if s.keyID == "" || s.keySecret == "" {
		return nil, errors.New("razorpay keys not configured")
	}
	s.once.Do(func() {
		s.client = razorpay.NewClient(s.keyID, s.keySecret)
	})
	return s.client, nil
}

// CreateOrder registers a gateway order for the given rupee amount and
// returns the gateway order id. The gateway wants paise; the ×100
// conversion happens here and nowhere else.
func (s *RazorpayService) CreateOrder(amount int, receipt string) (string, error) {
	client, err := s.ensureClient()
	if err != nil {
		return "", err
	}

	data := map[string]interface{}{
		"amount":   amount * 100,
		"currency": "INR",
		"receipt":  receipt,
	}
	body, err := client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create razorpay order: %w", err)
	}

	orderID, _ := body["id"].(string)
	if orderID == "" {
		return "", errors.New("razorpay order response missing id")
	}
	return orderID, nil
}

// CheckoutOptions builds the configuration for the checkout dialog.
// Amounts are converted to paise at this boundary only.
func (s *RazorpayService) CheckoutOptions(order models.PaymentOrder) models.CheckoutOptions {
	description := order.Description
	if description == "" {
		description = "Panther Order"
	}
	return models.CheckoutOptions{
		Key:         s.keyID,
		Amount:      order.Amount * 100,
		Currency:    "INR",
		Name:        brandName,
		Description: description,
		OrderID:     order.RazorpayOrderID,
		Prefill: models.CheckoutPrefill{
			Name:    order.CustomerName,
			Email:   order.CustomerEmail,
			Contact: order.CustomerPhone,
		},
		Theme: models.CheckoutTheme{Color: checkoutColor},
	}
}
