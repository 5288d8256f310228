package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dorushugo/terra/config"
	"github.com/dorushugo/terra/generator"
	"github.com/dorushugo/terra/models"
	"github.com/dorushugo/terra/payload"
)

// stock-check smoke-tests the CMS stock endpoints end to end: it
// creates a throwaway product, records a movement, runs a bulk
// restock, reads stats and alerts, then deletes the product again.
func main() {
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	ctx := context.Background()
	client := payload.NewClient(cfg)
	if err := client.Login(ctx); err != nil {
		log.Fatalf("❌ Login failed: %v", err)
	}
	log.Printf("✅ Authenticated against %s", cfg.APIURL)

	passed, failed := 0, 0
	check := func(name string, fn func() error) {
		if err := fn(); err != nil {
			log.Printf("❌ %s: %v", name, err)
			failed++
			return
		}
		log.Printf("✅ %s", name)
		passed++
	}

	gen := generator.NewSynthetic(time.Now().UnixNano())
	product := gen.Product(0)
	product.Title = "TERRA Stock Check " + time.Now().Format("150405")
	product.Slug = generator.Slugify(product.Title)

	var created *models.Product
	check("create test product", func() error {
		var err error
		created, err = client.CreateProduct(ctx, &product)
		return err
	})
	if created == nil {
		log.Fatalf("❌ Cannot continue without a test product")
	}
	productID := created.ID.String()

	check("stock stats", func() error {
		stats, err := client.StockStats(ctx)
		if err != nil {
			return err
		}
		log.Printf("📦 %d products, %d low stock, %d out of stock, %d pending alerts",
			stats.TotalProducts, stats.LowStockProducts, stats.OutOfStockProducts, stats.PendingAlerts)
		return nil
	})

	check("stock movement", func() error {
		size := "42"
		if len(created.Sizes) > 0 {
			size = created.Sizes[0].Size
		}
		_, err := client.CreateStockMovement(ctx, &models.StockMovement{
			Type:     "restock",
			Product:  models.MediaRelation(productID),
			Size:     size,
			Quantity: 10,
			Reason:   "stock system check",
		})
		return err
	})

	check("bulk restock", func() error {
		size := "42"
		if len(created.Sizes) > 0 {
			size = created.Sizes[0].Size
		}
		result, err := client.BulkRestock(ctx, &models.BulkRestockRequest{
			Items: []models.BulkRestockItem{
				{ProductID: productID, Size: size, Quantity: 5, Reason: "stock system check"},
			},
			Reason: "stock system check",
		})
		if err != nil {
			return err
		}
		if result.Summary.Errors > 0 {
			return fmt.Errorf("%d/%d lines failed", result.Summary.Errors, result.Summary.Total)
		}
		return nil
	})

	check("active alerts", func() error {
		alerts, err := client.ActiveStockAlerts(ctx)
		if err != nil {
			return err
		}
		log.Printf("📦 %d unresolved alerts", len(alerts))
		return nil
	})

	check("delete test product", func() error {
		return client.DeleteProduct(ctx, productID)
	})

	log.Printf("🎉 Stock check finished: %d passed, %d failed", passed, failed)
}
