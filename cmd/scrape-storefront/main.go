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
	"github.com/dorushugo/terra/generator"
	"github.com/dorushugo/terra/imagesource"
	"github.com/dorushugo/terra/imageutil"
	"github.com/dorushugo/terra/models"
	"github.com/dorushugo/terra/payload"
	"github.com/dorushugo/terra/scraper"
)

const (
	defaultStoreURL = "https://www.nobrand.pt"
	sourceBrand     = "nobrand"
)

// scrape-storefront harvests product photos from a plain-HTML
// storefront and rebrands the demo products with them: new TERRA
// name, slug, description, collection and image.
func main() {
	log.SetFlags(0)

	storeURL := defaultStoreURL
	if len(os.Args) > 1 {
		storeURL = os.Args[1]
	}

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

	sections := []scraper.Section{
		{Name: "men", URL: storeURL + "/men"},
		{Name: "women", URL: storeURL + "/women"},
	}
	static := scraper.NewStatic(storeURL, sourceBrand, sections)

	log.Printf("🔄 Scraping %s...", storeURL)
	candidates := static.ScrapeAll()
	if len(candidates) == 0 {
		log.Fatalf("❌ No product images found on %s", storeURL)
	}
	log.Printf("🎉 %d unique product images collected", len(candidates))

	products, err := client.ListAllProducts(ctx)
	if err != nil {
		log.Fatalf("❌ Cannot list products: %v", err)
	}

	total := len(products)
	if len(candidates) < total {
		// One image per product; leftovers keep their current look.
		total = len(candidates)
		log.Printf("⚠️ Only %d images for %d products, extra products skipped", len(candidates), len(products))
	}

	prompter := cli.NewPrompter()
	if !prompter.Confirm(fmt.Sprintf("Rebrand %d products with scraped images", total), true) {
		log.Printf("⏭️ Aborted")
		return
	}

	pool := imagesource.NewScraped(candidates, false)

	runner := batch.Runner{Delay: time.Second, LongPauseEvery: 10, LongPause: 5 * time.Second}
	report := runner.Run(total, func(i int) error {
		return rebrandWithCandidate(ctx, client, pool, products[i], i)
	})

	report.Log("products")
}

func rebrandWithCandidate(ctx context.Context, client *payload.Client, pool *imagesource.Scraped, p models.Product, index int) error {
	c, err := pool.NextCandidate()
	if err != nil {
		return err
	}

	data, err := scraper.DownloadImage(ctx, c.ImageURL)
	if err != nil {
		return fmt.Errorf("download for %s: %w", c.Name, err)
	}
	normalized, err := imageutil.Normalize(data)
	if err != nil {
		return fmt.Errorf("unusable image for %s: %w", c.Name, err)
	}

	filename := fmt.Sprintf("terra_%s.jpg", uuid.NewString()[:8])
	mediaID, err := client.UploadMedia(ctx, normalized, filename, c.Name)
	if err != nil {
		return fmt.Errorf("upload for %s: %w", c.Name, err)
	}

	patch := payload.RebrandPatch{
		Title:            c.Name,
		Slug:             fmt.Sprintf("%s-%d", generator.Slugify(c.Name), index),
		ShortDescription: generator.RebrandDescription(index),
		Collection:       generator.CollectionFromName(c.Name),
		Images:           []models.ImageRef{{Image: models.MediaRelation(mediaID), Alt: c.Name}},
	}
	if err := client.Rebrand(ctx, p.ID.String(), patch); err != nil {
		return fmt.Errorf("rebrand for %s: %w", c.Name, err)
	}

	log.Printf("✅ %s -> %s", p.Title, c.Name)
	return nil
}
