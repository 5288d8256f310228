package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/dorushugo/terra/batch"
	"github.com/dorushugo/terra/config"
	"github.com/dorushugo/terra/imagesource"
	"github.com/dorushugo/terra/payload"
)

// template-images gives every product a locally rendered placeholder.
// It needs no external API at all, which makes it the reliable way to
// get a demo catalog presentable.
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

	products, err := client.ListAllProducts(ctx)
	if err != nil {
		log.Fatalf("❌ Cannot list products: %v", err)
	}
	log.Printf("📦 %d products to illustrate", len(products))

	source := imagesource.NewPlaceholder()

	runner := batch.Runner{Delay: 200 * time.Millisecond}
	report := runner.Run(len(products), func(i int) error {
		p := products[i]
		item := imagesource.Item{
			ProductID:  p.ID.String(),
			Title:      p.Title,
			Collection: string(p.Collection),
			Index:      i,
		}

		// Placeholder rendering is local and cannot fail on content;
		// no normalization pass needed, it already emits 800px JPEG.
		data, err := source.Fetch(ctx, item)
		if err != nil {
			return fmt.Errorf("render for %s: %w", p.Title, err)
		}

		filename := fmt.Sprintf("terra_placeholder_%s.jpg", uuid.NewString()[:8])
		mediaID, err := client.UploadMedia(ctx, data, filename, p.Title)
		if err != nil {
			return fmt.Errorf("upload for %s: %w", p.Title, err)
		}
		if err := client.ReplaceProductImage(ctx, p.ID.String(), mediaID, p.Title); err != nil {
			return fmt.Errorf("patch for %s: %w", p.Title, err)
		}
		log.Printf("✅ %d/%d %s", i+1, len(products), p.Title)
		return nil
	})

	report.Log("products")
}
