package models

// CartLineItem snapshots a product at the moment it was added: the price on
// the line item is the price paid, even if the catalog price changes later.
type CartLineItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}

// AddToCartRequest for POST /cart/items
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required" example:"panther-core"`
	Quantity  int    `json:"quantity" binding:"required,min=1" example:"1"`
}

// UpdateQuantityRequest for PATCH /cart/items/:id. Deliberately unvalidated:
// a non-positive quantity is passed through and ignored by the store, it is
// not a request error.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart plus its derived totals, all in whole rupees
type CartResponse struct {
	Items       []CartLineItem `json:"items"`
	Count       int            `json:"count"`
	Subtotal    int            `json:"subtotal"`
	ShippingFee int            `json:"shipping_fee"`
	Total       int            `json:"total"`
}
