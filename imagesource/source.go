package imagesource

import (
	"context"
	"fmt"
	"log"
)

// Item describes the product an image is being acquired for. Sources
// use the title and collection to pick or build a relevant picture.
type Item struct {
	ProductID  string
	Title      string
	Brand      string
	Collection string
	// Index is the position of the product in the current run, used by
	// deterministic sources to vary their output.
	Index int
}

// Source produces one image for a product. Implementations may be
// remote APIs, scraped pools, local directories or pure generators.
type Source interface {
	Name() string
	Fetch(ctx context.Context, item Item) ([]byte, error)
}

// Chain tries each source in order and returns the first image that
// comes back. It only errors when every source failed.
type Chain struct {
	sources []Source
}

func NewChain(sources ...Source) *Chain {
	return &Chain{sources: sources}
}

var _ Source = (*Chain)(nil)

func (c *Chain) Name() string { return "chain" }

func (c *Chain) Fetch(ctx context.Context, item Item) ([]byte, error) {
	var lastErr error
	for _, src := range c.sources {
		data, err := src.Fetch(ctx, item)
		if err != nil {
			log.Printf("⚠️ Source %s failed for %s: %v", src.Name(), item.Title, err)
			lastErr = err
			continue
		}
		if len(data) > 0 {
			return data, nil
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("all sources failed: %w", lastErr)
	}
	return nil, fmt.Errorf("no source produced an image for %s", item.Title)
}
