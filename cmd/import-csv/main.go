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
	"github.com/dorushugo/terra/imageutil"
	"github.com/dorushugo/terra/payload"
	"github.com/dorushugo/terra/scraper"
)

// import-csv imports products from a CSV export, downloading and
// attaching up to three images per row.
func main() {
	log.SetFlags(0)

	csvPath := "products.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		log.Fatalf("❌ Cannot open %s: %v", csvPath, err)
	}
	rows, err := generator.ParseCSV(f)
	f.Close()
	if err != nil {
		log.Fatalf("❌ Cannot parse %s: %v", csvPath, err)
	}
	log.Printf("📦 %d rows loaded from %s", len(rows), csvPath)

	ctx := context.Background()
	client := payload.NewClient(cfg)
	if err := client.Login(ctx); err != nil {
		log.Fatalf("❌ Login failed: %v", err)
	}
	log.Printf("✅ Authenticated against %s", cfg.APIURL)

	prompter := cli.NewPrompter()
	if prompter.Confirm("Delete all existing products first", false) {
		clearExisting(ctx, client)
	}
	if !prompter.Confirm(fmt.Sprintf("Import %d products", len(rows)), true) {
		log.Printf("⏭️ Aborted")
		return
	}

	gen := generator.NewSynthetic(time.Now().UnixNano())

	runner := batch.Runner{Delay: time.Second, LongPauseEvery: 10, LongPause: 5 * time.Second}
	report := runner.Run(len(rows), func(i int) error {
		row := rows[i]
		product := gen.FromCSVRow(row, i)

		doc, err := client.CreateProduct(ctx, &product)
		if err != nil {
			return fmt.Errorf("create %s: %w", product.Title, err)
		}
		log.Printf("📦 %d/%d Created %s", i+1, len(rows), doc.Title)

		attached := 0
		for _, imageURL := range row.ImageURLs {
			data, err := scraper.DownloadImage(ctx, imageURL)
			if err != nil {
				log.Printf("⚠️ Image download failed for %s: %v", doc.Title, err)
				continue
			}
			normalized, err := imageutil.Normalize(data)
			if err != nil {
				log.Printf("⚠️ Unusable image for %s: %v", doc.Title, err)
				continue
			}
			filename := fmt.Sprintf("terra_%s.jpg", uuid.NewString()[:8])
			mediaID, err := client.UploadMedia(ctx, normalized, filename, doc.Title)
			if err != nil {
				log.Printf("⚠️ Upload failed for %s: %v", doc.Title, err)
				continue
			}
			if err := client.AttachProductImage(ctx, doc.ID.String(), mediaID, doc.Title); err != nil {
				log.Printf("⚠️ Attach failed for %s: %v", doc.Title, err)
				continue
			}
			attached++
		}
		log.Printf("📸 %d image(s) attached to %s", attached, doc.Title)
		return nil
	})

	report.Log("rows")
}

func clearExisting(ctx context.Context, client *payload.Client) {
	products, err := client.ListAllProducts(ctx)
	if err != nil {
		log.Printf("⚠️ Could not list existing products: %v", err)
		return
	}
	deleted := 0
	for _, p := range products {
		if err := client.DeleteProduct(ctx, p.ID.String()); err != nil {
			log.Printf("⚠️ Could not delete %s: %v", p.Title, err)
			continue
		}
		deleted++
	}
	log.Printf("🔄 %d existing products deleted", deleted)
}
