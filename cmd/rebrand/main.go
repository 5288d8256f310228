package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dorushugo/terra/batch"
	"github.com/dorushugo/terra/cli"
	"github.com/dorushugo/terra/config"
	"github.com/dorushugo/terra/generator"
	"github.com/dorushugo/terra/payload"
)

// rebrand rewrites every product's title, slug, short description and
// collection from the curated TERRA name list. Images are untouched.
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
	log.Printf("📦 %d products to rebrand", len(products))

	prompter := cli.NewPrompter()
	if !prompter.Confirm(fmt.Sprintf("Rename %d products to TERRA names", len(products)), true) {
		log.Printf("⏭️ Aborted")
		return
	}

	runner := batch.Runner{Delay: 300 * time.Millisecond}
	report := runner.Run(len(products), func(i int) error {
		p := products[i]
		title, slug, shortDescription, collection := generator.RebrandProduct(i)

		patch := payload.RebrandPatch{
			Title:            title,
			Slug:             slug,
			ShortDescription: shortDescription,
			Collection:       collection,
		}
		if err := client.Rebrand(ctx, p.ID.String(), patch); err != nil {
			return fmt.Errorf("rebrand %s: %w", p.Title, err)
		}
		log.Printf("✅ %d/%d %s -> %s", i+1, len(products), p.Title, title)
		return nil
	})

	report.Log("products")
}
