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

// estimatedCostPerImage is the published price of a standard 1024px
// generation, shown before committing to a run.
const estimatedCostPerImage = 0.04

// generate-ai-images renders a generated product shot for each
// product and replaces its image.
func main() {
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}
	if cfg.OpenAIAPIKey == "" {
		log.Fatalf("❌ OPENAI_API_KEY is required for image generation")
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

	prompter := cli.NewPrompter()
	limit := prompter.AskInt("How many products to process", len(products))
	if limit > len(products) {
		limit = len(products)
	}
	if limit <= 0 {
		log.Printf("⏭️ Nothing to do")
		return
	}
	cost := float64(limit) * estimatedCostPerImage
	if !prompter.Confirm(fmt.Sprintf("Generate %d images (~%.2f$)", limit, cost), false) {
		log.Printf("⏭️ Aborted")
		return
	}

	source := imagesource.NewGenerative(cfg.OpenAIAPIKey)

	runner := batch.Runner{Delay: 2 * time.Second, LongPauseEvery: 5, LongPause: 15 * time.Second}
	report := runner.Run(limit, func(i int) error {
		p := products[i]
		item := imagesource.Item{
			ProductID:  p.ID.String(),
			Title:      p.Title,
			Collection: string(p.Collection),
			Index:      i,
		}

		data, err := source.Fetch(ctx, item)
		if err != nil {
			return fmt.Errorf("generation for %s: %w", p.Title, err)
		}
		normalized, err := imageutil.Normalize(data)
		if err != nil {
			return fmt.Errorf("unusable generation for %s: %w", p.Title, err)
		}

		filename := fmt.Sprintf("terra_ai_%s.jpg", uuid.NewString()[:8])
		mediaID, err := client.UploadMedia(ctx, normalized, filename, p.Title)
		if err != nil {
			return fmt.Errorf("upload for %s: %w", p.Title, err)
		}
		if err := client.ReplaceProductImage(ctx, p.ID.String(), mediaID, p.Title); err != nil {
			return fmt.Errorf("patch for %s: %w", p.Title, err)
		}
		log.Printf("✅ %d/%d %s illustrated", i+1, limit, p.Title)
		return nil
	})

	report.Log("products")
}
