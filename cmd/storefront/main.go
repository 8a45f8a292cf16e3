package main

import (
	"context"
	"log"
	"os"

	"github.com/Dharmendra7798/sports-store/internal/catalog"
	"github.com/Dharmendra7798/sports-store/internal/checkout"
	"github.com/Dharmendra7798/sports-store/internal/session"
)

// storefront walks one shopping session end to end against a running order
// service: browse the catalog, fill a cart, check out, print the confirmed
// order. It stands in for the web storefront during development.
func main() {
	catalogPath := getEnv("CATALOG_DB_PATH", "catalog.db")
	migrationsPath := getEnv("MIGRATIONS_PATH", "migrations")
	apiURL := getEnv("ORDER_API_URL", "http://localhost:5000")

	products, err := catalog.NewRepository(catalogPath)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer products.Close()

	if err := products.RunMigrations(migrationsPath); err != nil {
		log.Fatalf("Failed to migrate catalog: %v", err)
	}

	ctx := context.Background()

	listing, err := products.ListProducts(ctx, catalog.Filter{Sort: catalog.SortPriceDesc})
	if err != nil {
		log.Fatalf("Failed to list products: %v", err)
	}
	log.Printf("Catalog has %d products", len(listing))
	for _, p := range listing {
		log.Printf("  %-6s %-38s $%8.2f  rating %.1f  stock %d", p.ID, p.Name, p.Price, p.Rating, p.Stock)
	}
	if len(listing) < 2 {
		log.Fatal("Catalog too small for the demo flow")
	}

	sess := session.New(checkout.NewClient(apiURL))
	log.Printf("Session %s started", sess.ID)

	// Two most expensive products, one of them twice
	first, second := listing[0], listing[1]
	sess.Cart.AddItem(*first, first.Stock)
	sess.Cart.AddItem(*second, second.Stock)
	sess.Cart.AddItem(*second, second.Stock)

	snapshot := sess.Cart.Snapshot()
	log.Printf("Cart: %d items, subtotal %.2f, shipping %.2f, total %.2f",
		sess.Cart.ItemCount(), snapshot.Subtotal, snapshot.Shipping, snapshot.Total)

	details := checkout.ShippingDetails{
		Name:        getEnv("SHIP_NAME", "Ravi Sharma"),
		Email:       getEnv("SHIP_EMAIL", "ravi@example.com"),
		AddressLine: getEnv("SHIP_ADDRESS", "221 MG Road"),
		City:        getEnv("SHIP_CITY", "Pune"),
		Zip:         getEnv("SHIP_ZIP", "411001"),
	}

	saved, err := sess.PlaceOrder(ctx, details, "COD")
	if err != nil {
		log.Printf("Order submission failed: %v", err)
		log.Fatalf("Reason shown to shopper: %s", sess.FailureReason())
	}

	log.Printf("Order %s confirmed at %s, total %.2f", saved.ID.Hex(), saved.CreatedAt, saved.Total)
	if sess.Cart.IsEmpty() {
		log.Println("Cart cleared after confirmation")
	}

	if ord, ok := sess.ConfirmedOrder(); ok {
		log.Printf("Confirmation view: order %s with %d items", ord.ID.Hex(), len(ord.Items))
	}
	sess.ClearOrder()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
