package stores

import (
	"github.com/sanyamChaudhary27/project-panther/models"
)

// ProductsStore holds the static catalog. Operations are pure lookups and
// filters; nothing here mutates or persists.
type ProductsStore struct {
	products []models.Product
}

func NewProductsStore() *ProductsStore {
	return &ProductsStore{products: catalog}
}

// GetByID looks up a product by its catalog id
func (s *ProductsStore) GetByID(id string) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// All returns the full catalog
func (s *ProductsStore) All() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Available returns the products currently on sale
func (s *ProductsStore) Available() []models.Product {
	return s.filter(true)
}

// ComingSoon returns the products not yet on sale
func (s *ProductsStore) ComingSoon() []models.Product {
	return s.filter(false)
}

func (s *ProductsStore) filter(available bool) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range s.products {
		if p.Available == available {
			out = append(out, p)
		}
	}
	return out
}
