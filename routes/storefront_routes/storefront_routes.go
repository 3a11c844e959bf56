package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sanyamChaudhary27/project-panther/controllers/storefront/auth_controller"
	"github.com/sanyamChaudhary27/project-panther/controllers/storefront/cart_controller"
	"github.com/sanyamChaudhary27/project-panther/controllers/storefront/checkout_controller"
	"github.com/sanyamChaudhary27/project-panther/controllers/storefront/notification_controller"
	"github.com/sanyamChaudhary27/project-panther/controllers/storefront/product_controller"
	"github.com/sanyamChaudhary27/project-panther/controllers/storefront/theme_controller"
)

func SetupProductRoutes(router *gin.RouterGroup) {
	// Catalog routes (public, read-only)
	products := router.Group("/store/products")
	{
		products.GET("", product_controller.GetProducts)
		products.GET("/:id", product_controller.GetProductByID)
	}
}

func SetupCartRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		cart.GET("", cart_controller.GetCart)
		cart.DELETE("", cart_controller.ClearCart)
		cart.POST("/items", cart_controller.AddItem)
		cart.PATCH("/items/:id", cart_controller.UpdateItem)
		cart.DELETE("/items/:id", cart_controller.RemoveItem)
	}
}

func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", auth_controller.Login)
		auth.POST("/register", auth_controller.Register)
		auth.POST("/logout", auth_controller.Logout)
		auth.GET("/session", auth_controller.GetSession)
	}
}

func SetupThemeRoutes(router *gin.RouterGroup) {
	theme := router.Group("/theme")
	{
		theme.GET("", theme_controller.GetTheme)
		theme.POST("/toggle", theme_controller.ToggleTheme)
	}
}

func SetupNotificationRoutes(router *gin.RouterGroup) {
	router.GET("/notifications", notification_controller.GetNotifications)
}

// SetupCheckoutRoutes guards payment with the session middleware;
// shipment tracking stays public.
func SetupCheckoutRoutes(router *gin.RouterGroup, requireSession gin.HandlerFunc) {
	checkout := router.Group("/checkout")
	{
		checkout.POST("/payment", requireSession, checkout_controller.CreatePayment)
		checkout.POST("/shipment", requireSession, checkout_controller.CreateShipment)
		checkout.GET("/shipment/track/:id", checkout_controller.TrackShipment)
	}
}
