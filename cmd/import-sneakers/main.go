package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dorushugo/terra/batch"
	"github.com/dorushugo/terra/cli"
	"github.com/dorushugo/terra/config"
	"github.com/dorushugo/terra/generator"
	"github.com/dorushugo/terra/models"
	"github.com/dorushugo/terra/payload"
)

// import-sneakers seeds the catalog with synthetic TERRA products and
// writes a CSV snapshot of what was created.
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

	prompter := cli.NewPrompter()
	count := prompter.AskInt("How many products to generate", 20)
	if count <= 0 {
		log.Printf("⏭️ Nothing to do")
		return
	}
	if !prompter.Confirm(fmt.Sprintf("Create %d synthetic products", count), true) {
		log.Printf("⏭️ Aborted")
		return
	}

	gen := generator.NewSynthetic(time.Now().UnixNano())
	var created []models.Product

	runner := batch.Runner{Delay: 500 * time.Millisecond}
	report := runner.Run(count, func(i int) error {
		product := gen.Product(i)
		doc, err := client.CreateProduct(ctx, &product)
		if err != nil {
			return fmt.Errorf("create %s: %w", product.Title, err)
		}
		created = append(created, *doc)
		log.Printf("📦 %d/%d Created %s (%s, %d€)", i+1, count, doc.Title, doc.Collection, doc.Price)
		return nil
	})

	if len(created) > 0 {
		if err := writeSnapshot(created); err != nil {
			log.Printf("⚠️ Could not write snapshot: %v", err)
		}
	}
	report.Log("products")
}

func writeSnapshot(products []models.Product) error {
	name := fmt.Sprintf("terra_products_%s.csv", time.Now().Format("2006-01-02_150405"))
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := generator.WriteSnapshot(f, products); err != nil {
		return err
	}
	log.Printf("✅ Snapshot written to %s", name)
	return nil
}
