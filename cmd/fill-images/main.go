package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dorushugo/terra/batch"
	"github.com/dorushugo/terra/cli"
	"github.com/dorushugo/terra/config"
	"github.com/dorushugo/terra/imagesource"
	"github.com/dorushugo/terra/imageutil"
	"github.com/dorushugo/terra/models"
	"github.com/dorushugo/terra/payload"
)

// fill-images finds products without a usable image and fills the gap
// from a priority chain: local directory, then stock photo APIs, then
// keyless generic providers.
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

	var missing []models.Product
	for i := range products {
		if client.ProductNeedsImage(ctx, &products[i]) {
			missing = append(missing, products[i])
		}
	}
	log.Printf("📦 %d products total, %d without a usable image", len(products), len(missing))
	if len(missing) == 0 {
		log.Printf("🎉 Nothing to fill")
		return
	}

	prompter := cli.NewPrompter()
	mode := prompter.AskChoice("Image source", []string{
		"auto (local, then stock APIs, then generic)",
		"local directory only",
		"generic providers only",
	}, 0)
	chain := buildChain(cfg, mode)

	runner := batch.Runner{Delay: time.Second, LongPauseEvery: 10, LongPause: 5 * time.Second}
	report := runner.Run(len(missing), func(i int) error {
		p := missing[i]
		log.Printf("🔍 %d/%d %s", i+1, len(missing), p.Title)

		item := imagesource.Item{
			ProductID:  p.ID.String(),
			Title:      p.Title,
			Collection: string(p.Collection),
			Index:      i,
		}
		data, err := chain.Fetch(ctx, item)
		if err != nil {
			return fmt.Errorf("no image for %s: %w", p.Title, err)
		}

		normalized, err := imageutil.Normalize(data)
		if err != nil {
			return fmt.Errorf("unusable image for %s: %w", p.Title, err)
		}

		filename := fmt.Sprintf("terra_%s.jpg", uuid.NewString()[:8])
		mediaID, err := client.UploadMedia(ctx, normalized, filename, p.Title)
		if err != nil {
			return fmt.Errorf("upload for %s: %w", p.Title, err)
		}
		if err := client.ReplaceProductImage(ctx, p.ID.String(), mediaID, p.Title); err != nil {
			return fmt.Errorf("patch for %s: %w", p.Title, err)
		}
		log.Printf("✅ %s now has media %s", p.Title, mediaID)
		return nil
	})

	report.Log("products")
}

// buildChain assembles the source priority order for the chosen
// mode. In auto mode the keyless generic provider terminates the
// chain.
func buildChain(cfg config.Config, mode int) *imagesource.Chain {
	var sources []imagesource.Source

	if mode == 1 {
		local, err := imagesource.NewLocalDir(cfg.LocalImagesDir)
		if err != nil {
			log.Fatalf("❌ Local images unavailable: %v", err)
		}
		return imagesource.NewChain(local)
	}
	if mode == 2 {
		return imagesource.NewChain(imagesource.NewGeneric())
	}

	if _, err := os.Stat(cfg.LocalImagesDir); err == nil {
		local, err := imagesource.NewLocalDir(cfg.LocalImagesDir)
		if err == nil {
			sources = append(sources, local)
		} else {
			log.Printf("⚠️ Local images unavailable: %v", err)
		}
	}
	if cfg.UnsplashAccessKey != "" {
		sources = append(sources, imagesource.NewStockSearch(cfg.UnsplashAccessKey))
	}
	if cfg.PexelsAPIKey != "" {
		sources = append(sources, imagesource.NewPexels(cfg.PexelsAPIKey))
	}
	sources = append(sources, imagesource.NewGeneric())

	for _, s := range sources {
		log.Printf("🔄 Source enabled: %s", s.Name())
	}
	return imagesource.NewChain(sources...)
}
