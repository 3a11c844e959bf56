package product_controller

import "github.com/sanyamChaudhary27/project-panther/stores"

var products *stores.ProductsStore

// Init wires the catalog store into this controller
func Init(p *stores.ProductsStore) {
	products = p
}
