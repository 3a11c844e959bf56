package cart_controller

import (
	"github.com/sanyamChaudhary27/project-panther/notify"
	"github.com/sanyamChaudhary27/project-panther/stores"
)

var (
	cart     *stores.CartStore
	products *stores.ProductsStore
	toasts   *notify.Queue
)

// Init wires the stores and the toast queue into this controller
func Init(c *stores.CartStore, p *stores.ProductsStore, t *notify.Queue) {
	cart = c
	products = p
	toasts = t
}
