package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/sanyamChaudhary27/project-panther/config"
	"github.com/sanyamChaudhary27/project-panther/storage"
	"github.com/sanyamChaudhary27/project-panther/stores"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds a demo cart and theme preference into the configured bridge.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("PROJECT PANTHER - Demo Data Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	bridge, err := config.NewBridge()
	if err != nil {
		log.Fatalf("Failed to initialize storage bridge: %v", err)
	}
	log.Println("✓ Storage bridge connected")

	logger := zerolog.Nop()
	products := stores.NewProductsStore()
	cart := stores.NewCartStore(bridge, logger)

	if cart.Count() > 0 {
		log.Printf("✓ Cart already has %d line item(s), leaving it alone", cart.Count())
	} else {
		core, _ := products.GetByID(stores.ProductCore)
		cart.AddToCart(core, 2)
		log.Printf("✓ Seeded cart: %s ×2 (total ₹%d)", core.Name, cart.Total())
	}

	if err := bridge.Save(context.Background(), storage.KeyTheme, []byte("dark")); err != nil {
		log.Fatalf("Failed to seed theme: %v", err)
	}
	log.Println("✓ Seeded theme preference: dark")

	fmt.Println()
	fmt.Println("Done. Start the storefront and the seeded cart will load.")
}
