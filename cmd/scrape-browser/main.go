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

// scrape-browser is the headless-Chrome variant of the storefront
// scraper, for sites that lazy-load their listing images. Collected
// images cycle when there are more products than photos, so every
// product still gets rebranded.
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
		{Name: "kids", URL: storeURL + "/kids"},
	}
	browser := scraper.NewBrowser(storeURL, sourceBrand, cfg.ChromePath, sections)

	log.Printf("🔄 Scraping %s with headless Chrome...", storeURL)
	candidates, err := browser.ScrapeAll(ctx)
	if err != nil {
		log.Fatalf("❌ Browser scraping failed: %v", err)
	}
	if len(candidates) == 0 {
		log.Fatalf("❌ No product images found on %s", storeURL)
	}
	log.Printf("🎉 %d unique product images collected", len(candidates))

	products, err := client.ListAllProducts(ctx)
	if err != nil {
		log.Fatalf("❌ Cannot list products: %v", err)
	}

	prompter := cli.NewPrompter()
	if !prompter.Confirm(fmt.Sprintf("Rebrand %d products with %d scraped images", len(products), len(candidates)), true) {
		log.Printf("⏭️ Aborted")
		return
	}

	pool := imagesource.NewScraped(candidates, true)

	runner := batch.Runner{Delay: time.Second, LongPauseEvery: 10, LongPause: 5 * time.Second}
	report := runner.Run(len(products), func(i int) error {
		p := products[i]

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
			Slug:             fmt.Sprintf("%s-%d", generator.Slugify(c.Name), i),
			ShortDescription: generator.RebrandDescription(i),
			Collection:       generator.CollectionFromName(c.Name),
			Images:           []models.ImageRef{{Image: models.MediaRelation(mediaID), Alt: c.Name}},
		}
		if err := client.Rebrand(ctx, p.ID.String(), patch); err != nil {
			return fmt.Errorf("rebrand for %s: %w", c.Name, err)
		}

		log.Printf("✅ %s -> %s", p.Title, c.Name)
		return nil
	})

	report.Log("products")
}
