package imagesource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Generic serves free keyless image providers. Picsum gives stable
// curated photos by id; LoremFlickr gives keyword-tagged ones. Neither
// needs an API key, which makes them the fallback of last resort
// before placeholders.
type Generic struct {
	picsumURL      string
	loremFlickrURL string
	http           *http.Client
}

func NewGeneric() *Generic {
	return &Generic{
		picsumURL:      "https://picsum.photos",
		loremFlickrURL: "https://loremflickr.com",
		http:           &http.Client{Timeout: 30 * time.Second},
	}
}

var _ Source = (*Generic)(nil)

// picsumIDs are curated photo ids that look plausible as product or
// texture shots.
var picsumIDs = []int{21, 103, 119, 146, 157, 175, 180, 201, 211, 250, 292, 312, 338, 365, 423, 447}

func (g *Generic) Name() string { return "generic" }

func (g *Generic) Fetch(ctx context.Context, item Item) ([]byte, error) {
	id := picsumIDs[item.Index%len(picsumIDs)]
	data, err := g.get(ctx, fmt.Sprintf("%s/id/%d/800/800.jpg", g.picsumURL, id))
	if err == nil {
		return data, nil
	}

	data, flickrErr := g.get(ctx, fmt.Sprintf("%s/800/800/sneakers,shoes,trainers,footwear/all", g.loremFlickrURL))
	if flickrErr != nil {
		return nil, fmt.Errorf("picsum and loremflickr both failed: %w", flickrErr)
	}
	return data, nil
}

func (g *Generic) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", u, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
