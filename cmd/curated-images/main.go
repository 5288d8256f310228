package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/dorushugo/terra/batch"
	"github.com/dorushugo/terra/cli"
	"github.com/dorushugo/terra/config"
	"github.com/dorushugo/terra/imagesource"
	"github.com/dorushugo/terra/imageutil"
	"github.com/dorushugo/terra/payload"
)

// curated-images replaces every product image with a strictly
// filtered stock photo: studio-style shots only, no people.
func main() {
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}
	if cfg.UnsplashAccessKey == "" {
		log.Fatalf("❌ UNSPLASH_ACCESS_KEY is required for curated images")
	}

	ctx := context.Background()
	client := payload.NewClient(cfg)
	if err := client.Login(ctx); err != nil {
		log.Fatalf("❌ Login failed: %v", err)
	}
	log.Printf("✅ Authenticated against %s", cfg.APIURL)

	source := imagesource.NewStockSearch(cfg.UnsplashAccessKey)
	if err := source.CollectPhotos(ctx); err != nil {
		log.Fatalf("❌ Could not build the photo pool: %v", err)
	}

	products, err := client.ListAllProducts(ctx)
	if err != nil {
		log.Fatalf("❌ Cannot list products: %v", err)
	}
	log.Printf("📦 %d products to recover", len(products))

	prompter := cli.NewPrompter()
	if !prompter.Confirm(fmt.Sprintf("Replace images on %d products", len(products)), true) {
		log.Printf("⏭️ Aborted")
		return
	}

	runner := batch.Runner{Delay: 2 * time.Second, LongPauseEvery: 10, LongPause: 10 * time.Second}
	report := runner.Run(len(products), func(i int) error {
		p := products[i]
		log.Printf("🔍 %d/%d %s", i+1, len(products), p.Title)

		item := imagesource.Item{
			ProductID:  p.ID.String(),
			Title:      p.Title,
			Collection: string(p.Collection),
			Index:      i,
		}
		data, err := source.Fetch(ctx, item)
		if err != nil {
			return fmt.Errorf("no curated photo for %s: %w", p.Title, err)
		}

		normalized, err := imageutil.Normalize(data)
		if err != nil {
			return fmt.Errorf("unusable photo for %s: %w", p.Title, err)
		}

		filename := fmt.Sprintf("terra_%s.jpg", uuid.NewString()[:8])
		mediaID, err := client.UploadMedia(ctx, normalized, filename, p.Title)
		if err != nil {
			return fmt.Errorf("upload for %s: %w", p.Title, err)
		}
		if err := client.ReplaceProductImage(ctx, p.ID.String(), mediaID, p.Title); err != nil {
			return fmt.Errorf("patch for %s: %w", p.Title, err)
		}
		log.Printf("✅ %s refreshed", p.Title)
		return nil
	})

	report.Log("products")
}
