package imagesource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const unsplashAPIURL = "https://api.unsplash.com"

// KeywordFilter keeps only stock photos whose description looks like a
// clean product shot. A photo passes when at least one positive
// keyword matches and no negative keyword does.
type KeywordFilter struct {
	Positive []string
	Negative []string
}

// DefaultKeywordFilter targets catalog-style photography and rejects
// lifestyle shots with people in them.
func DefaultKeywordFilter() KeywordFilter {
	return KeywordFilter{
		Positive: []string{
			"white background", "studio", "product", "minimal", "clean",
			"isolated", "professional", "commercial", "photography",
		},
		Negative: []string{
			"person", "people", "wearing", "feet", "legs", "model",
			"street", "outdoor", "lifestyle", "fashion", "portrait",
		},
	}
}

// Allow reports whether a photo description passes the filter.
func (f KeywordFilter) Allow(description string) bool {
	desc := strings.ToLower(description)
	for _, kw := range f.Negative {
		if strings.Contains(desc, kw) {
			return false
		}
	}
	for _, kw := range f.Positive {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

// unsplashPhoto is the subset of the search result we use.
type unsplashPhoto struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	AltDesc     string `json:"alt_description"`
	Tags        []struct {
		Title string `json:"title"`
	} `json:"tags"`
	URLs struct {
		Regular string `json:"regular"`
		Small   string `json:"small"`
	} `json:"urls"`
	Links struct {
		DownloadLocation string `json:"download_location"`
	} `json:"links"`
}

// filterText combines description, alt text and tag titles into the
// text the keyword filter judges.
func (p unsplashPhoto) filterText() string {
	parts := []string{p.Description, p.AltDesc}
	for _, tag := range p.Tags {
		parts = append(parts, tag.Title)
	}
	return strings.Join(parts, " ")
}

// StockSearch fetches curated sneaker photos from the Unsplash search
// API and serves them one at a time. The pool is filled lazily on the
// first Fetch and shuffled so repeated runs do not assign the same
// photo to the same product.
type StockSearch struct {
	apiURL    string
	accessKey string
	queries   []string
	perPage   int
	maxPages  int
	filter    KeywordFilter
	http      *http.Client
	rng       *rand.Rand

	pool []unsplashPhoto
	next int
}

func NewStockSearch(accessKey string) *StockSearch {
	return &StockSearch{
		apiURL:    unsplashAPIURL,
		accessKey: accessKey,
		queries: []string{
			"sneakers white background",
			"running shoes product",
			"minimalist sneakers studio",
			"shoes isolated",
		},
		perPage:  30,
		maxPages: 5,
		filter:   DefaultKeywordFilter(),
		http:     &http.Client{Timeout: 30 * time.Second},
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var _ Source = (*StockSearch)(nil)

func (s *StockSearch) Name() string { return "unsplash" }

// CollectPhotos runs every configured search query and fills the pool
// with filtered, shuffled results.
func (s *StockSearch) CollectPhotos(ctx context.Context) error {
	var pool []unsplashPhoto
	seen := map[string]bool{}

	for _, query := range s.queries {
		for page := 1; page <= s.maxPages; page++ {
			photos, err := s.search(ctx, query, page)
			if err != nil {
				log.Printf("⚠️ Unsplash search %q page %d failed: %v", query, page, err)
				break
			}
			kept := 0
			for _, p := range photos {
				if seen[p.ID] || !s.filter.Allow(p.filterText()) {
					continue
				}
				seen[p.ID] = true
				pool = append(pool, p)
				kept++
			}
			log.Printf("🔍 Unsplash %q page %d: %d photos, %d kept", query, page, len(photos), kept)

			// A short page means the provider ran out of results.
			if len(photos) < s.perPage {
				break
			}
		}
	}

	if len(pool) == 0 {
		return fmt.Errorf("no usable photos found on Unsplash")
	}
	s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	s.pool = pool
	s.next = 0
	log.Printf("📦 Unsplash pool ready: %d photos", len(pool))
	return nil
}

func (s *StockSearch) search(ctx context.Context, query string, page int) ([]unsplashPhoto, error) {
	u := fmt.Sprintf("%s/search/photos?query=%s&per_page=%d&page=%d&orientation=squarish",
		s.apiURL, url.QueryEscape(query), s.perPage, page)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash search returned status %d", resp.StatusCode)
	}

	var result struct {
		Results []unsplashPhoto `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode unsplash response: %w", err)
	}
	return result.Results, nil
}

// Fetch pops the next photo from the pool, notifies the download
// endpoint as the API guidelines require, and downloads the image.
func (s *StockSearch) Fetch(ctx context.Context, item Item) ([]byte, error) {
	if s.accessKey == "" {
		return nil, fmt.Errorf("UNSPLASH_ACCESS_KEY is not set")
	}
	if s.pool == nil {
		if err := s.CollectPhotos(ctx); err != nil {
			return nil, err
		}
	}
	if s.next >= len(s.pool) {
		return nil, fmt.Errorf("unsplash pool exhausted after %d photos", len(s.pool))
	}
	photo := s.pool[s.next]
	s.next++

	s.trackDownload(ctx, photo)

	imageURL := photo.URLs.Regular
	if imageURL == "" {
		imageURL = photo.URLs.Small
	}
	if imageURL == "" {
		return nil, fmt.Errorf("photo %s has no downloadable URL", photo.ID)
	}
	return s.download(ctx, imageURL)
}

// trackDownload hits the download_location link. Failures are logged
// only; the image itself is still usable.
func (s *StockSearch) trackDownload(ctx context.Context, photo unsplashPhoto) {
	if photo.Links.DownloadLocation == "" {
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, photo.Links.DownloadLocation, nil)
	if err != nil {
		return
	}
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)
	resp, err := s.http.Do(req)
	if err != nil {
		log.Printf("⚠️ Download tracking failed for %s: %v", photo.ID, err)
		return
	}
	resp.Body.Close()
}

func (s *StockSearch) download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download photo: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("photo download returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
