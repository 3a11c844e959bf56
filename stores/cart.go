package stores

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sanyamChaudhary27/project-panther/models"
	"github.com/sanyamChaudhary27/project-panther/storage"
)

// ShippingFee is the flat prepaid shipping charge in rupees
const ShippingFee = 100

// CartStore owns the cart line items. Mutations go through the listed
// operations only and persist to the bridge afterwards; totals are always
// derived from the current items, never stored.
//
// The mutation calls are total functions over the state: a missing line
// item or a non-positive quantity is silently ignored, not reported.
type CartStore struct {
	mu          sync.Mutex
	items       []models.CartLineItem
	shippingFee int
	bridge      storage.Bridge
	log         zerolog.Logger
}

// NewCartStore loads any persisted cart from the bridge. A missing or
// corrupt entry falls back to an empty cart.
func NewCartStore(bridge storage.Bridge, log zerolog.Logger) *CartStore {
	s := &CartStore{
		shippingFee: ShippingFee,
		bridge:      bridge,
		log:         log.With().Str("store", "cart").Logger(),
	}
	var items []models.CartLineItem
	if storage.LoadJSON(context.Background(), bridge, storage.KeyCart, &items) {
		s.items = items
	}
	return s
}

// AddToCart merges product into the cart. An existing line item for the
// same product id has its quantity incremented; otherwise a new line item
// snapshots the product's id, name, price and image. Quantity >= 1 is the
// caller's responsibility.
func (s *CartStore) AddToCart(product models.Product, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity += quantity
			s.persistLocked()
			return
		}
	}

	s.items = append(s.items, models.CartLineItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
		Image:     product.Image,
	})
	s.persistLocked()
}

// RemoveFromCart drops the line item for productID; removing an absent id
// is a no-op, not an error.
func (s *CartStore) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persistLocked()
}

// UpdateQuantity sets the quantity of an existing line item. It is a
// silent no-op when no item matches or quantity <= 0; quantities never
// reach zero through this path, RemoveFromCart deletes.
func (s *CartStore) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.persistLocked()
			return
		}
	}
}

// ClearCart empties the cart
func (s *CartStore) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]models.CartLineItem, 0)
	s.persistLocked()
}

// Items returns a copy of the current line items in insertion order
func (s *CartStore) Items() []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.CartLineItem, len(s.items))
	copy(items, s.items)
	return items
}

// Count is the number of line items, not the summed quantity
func (s *CartStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *CartStore) HasItems() bool {
	return s.Count() > 0
}

// Subtotal is Σ price × quantity over the current line items
func (s *CartStore) Subtotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

// Total is subtotal plus the flat shipping fee
func (s *CartStore) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked() + s.shippingFee
}

func (s *CartStore) ShippingFee() int {
	return s.shippingFee
}

// Response bundles the items and derived totals for the HTTP surface
func (s *CartStore) Response() models.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartLineItem, len(s.items))
	copy(items, s.items)
	subtotal := s.subtotalLocked()
	return models.CartResponse{
		Items:       items,
		Count:       len(items),
		Subtotal:    subtotal,
		ShippingFee: s.shippingFee,
		Total:       subtotal + s.shippingFee,
	}
}

func (s *CartStore) subtotalLocked() int {
	sum := 0
	for _, item := range s.items {
		sum += item.Price * item.Quantity
	}
	return sum
}

// persistLocked writes the items list (never the derived totals) to the
// bridge. A full or broken substrate surfaces here and nowhere else.
func (s *CartStore) persistLocked() {
	if err := storage.SaveJSON(context.Background(), s.bridge, storage.KeyCart, s.items); err != nil {
		s.log.Error().Err(err).Msg("failed to persist cart")
	}
}
