// @title Panther Storefront API
// @version 1.0
// @description Headless storefront service for The Panther supplement brand
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/sanyamChaudhary27/project-panther/config"
	"github.com/sanyamChaudhary27/project-panther/controllers/storefront/auth_controller"
	"github.com/sanyamChaudhary27/project-panther/controllers/storefront/cart_controller"
	"github.com/sanyamChaudhary27/project-panther/controllers/storefront/checkout_controller"
	"github.com/sanyamChaudhary27/project-panther/controllers/storefront/notification_controller"
	"github.com/sanyamChaudhary27/project-panther/controllers/storefront/product_controller"
	"github.com/sanyamChaudhary27/project-panther/controllers/storefront/theme_controller"
	"github.com/sanyamChaudhary27/project-panther/middleware"
	"github.com/sanyamChaudhary27/project-panther/notify"
	"github.com/sanyamChaudhary27/project-panther/routes/storefront_routes"
	"github.com/sanyamChaudhary27/project-panther/services"
	"github.com/sanyamChaudhary27/project-panther/stores"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Persistence bridge (file / sqlite / redis)
	bridge, err := config.NewBridge()
	if err != nil {
		log.Fatalf("❌ Failed to initialize storage bridge: %v", err)
	}

	// Shared client for the remote storefront API
	api := services.NewAPIClient(config.APIBaseURL())

	// Stores: created once per process, mutation only through their operations
	productsStore := stores.NewProductsStore()
	cartStore := stores.NewCartStore(bridge, logger)
	authStore := stores.NewAuthStore(bridge, api, logger)
	themeStore := stores.NewThemeStore(bridge, logger)

	// Apply the persisted theme before anything is served
	themeStore.Init()
	log.Println("✅ Stores initialized")

	// Payment + logistics collaborators
	razorpayService := services.NewRazorpayService(
		os.Getenv("PANTHER_RZP_KEY_ID"),
		os.Getenv("PANTHER_RZP_KEY_SECRET"),
	)
	pickrrService := services.NewPickrrService(api)

	// Toast queue for UI feedback
	toasts := notify.NewQueue()
	defer toasts.Close()

	// Wire controllers
	product_controller.Init(productsStore)
	cart_controller.Init(cartStore, productsStore, toasts)
	auth_controller.Init(authStore, toasts)
	theme_controller.Init(themeStore)
	checkout_controller.Init(cartStore, authStore, razorpayService, pickrrService)
	notification_controller.Init(toasts)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api1 := router.Group("/api/v1")

	// Rate limit the whole surface when redis is around
	if os.Getenv("PANTHER_REDIS_URL") != "" {
		if config.RedisClient == nil {
			if err := config.ConnectRedis(); err != nil {
				log.Fatalf("❌ Failed to connect to Redis: %v", err)
			}
		}
		api1.Use(middleware.RateLimiter(config.RedisClient, 100, time.Minute))
		log.Println("✅ Rate limiter enabled")
	}

	storefront_routes.SetupProductRoutes(api1)
	storefront_routes.SetupCartRoutes(api1)
	storefront_routes.SetupAuthRoutes(api1)
	storefront_routes.SetupThemeRoutes(api1)
	storefront_routes.SetupNotificationRoutes(api1)
	storefront_routes.SetupCheckoutRoutes(api1, middleware.RequireSession(authStore))

	addr := config.ServerAddr()
	log.Println("🚀 Storefront is running on", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
