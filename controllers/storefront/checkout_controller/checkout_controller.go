package checkout_controller

import (
	"github.com/sanyamChaudhary27/project-panther/services"
	"github.com/sanyamChaudhary27/project-panther/stores"
)

var (
	cart     *stores.CartStore
	auth     *stores.AuthStore
	razorpay *services.RazorpayService
	pickrr   *services.PickrrService
)

// Init wires the cart, session and the payment/logistics collaborators
// into this controller
func Init(c *stores.CartStore, a *stores.AuthStore, r *services.RazorpayService, p *services.PickrrService) {
	cart = c
	auth = a
	razorpay = r
	pickrr = p
}
