package imagesource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"
)

const pexelsAPIURL = "https://api.pexels.com/v1"

// Pexels pulls sneaker photos from the Pexels search API. Each Fetch
// picks a random query and page, so a seeding run gets varied images
// without keeping a pool around.
type Pexels struct {
	apiURL string
	apiKey string
	http   *http.Client
	rng    *rand.Rand
}

func NewPexels(apiKey string) *Pexels {
	return &Pexels{
		apiURL: pexelsAPIURL,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 30 * time.Second},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var _ Source = (*Pexels)(nil)

var pexelsQueries = []string{
	"sneakers", "running shoes", "sport shoes", "trainers", "footwear",
}

func (p *Pexels) Name() string { return "pexels" }

func (p *Pexels) Fetch(ctx context.Context, item Item) ([]byte, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("PEXELS_API_KEY is not set")
	}

	query := pexelsQueries[p.rng.Intn(len(pexelsQueries))]
	page := p.rng.Intn(80) + 1

	u := fmt.Sprintf("%s/search?query=%s&per_page=1&page=%d",
		p.apiURL, url.QueryEscape(query), page)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", p.apiKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pexels search failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pexels search returned status %d", resp.StatusCode)
	}

	var result struct {
		Photos []struct {
			Src struct {
				Large string `json:"large"`
			} `json:"src"`
		} `json:"photos"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode pexels response: %w", err)
	}
	if len(result.Photos) == 0 {
		return nil, fmt.Errorf("no pexels results for %q page %d", query, page)
	}

	return p.download(ctx, result.Photos[0].Src.Large)
}

func (p *Pexels) download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download photo: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("photo download returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
