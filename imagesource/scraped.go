package imagesource

import (
	"context"
	"fmt"

	"github.com/dorushugo/terra/scraper"
)

// Scraped serves a pool of storefront candidates collected earlier in
// the run. With cycling enabled the pool wraps around when more
// products than photos exist; otherwise it errors on exhaustion.
type Scraped struct {
	candidates []scraper.Candidate
	next       int
	cycle      bool
}

func NewScraped(candidates []scraper.Candidate, cycle bool) *Scraped {
	return &Scraped{candidates: candidates, cycle: cycle}
}

var _ Source = (*Scraped)(nil)

func (s *Scraped) Name() string { return "scraped" }

// NextCandidate pops the next candidate without downloading it, for
// callers that need the derived name too.
func (s *Scraped) NextCandidate() (scraper.Candidate, error) {
	if len(s.candidates) == 0 {
		return scraper.Candidate{}, fmt.Errorf("no scraped candidates available")
	}
	if s.next >= len(s.candidates) {
		if !s.cycle {
			return scraper.Candidate{}, fmt.Errorf("scraped pool exhausted after %d images", len(s.candidates))
		}
		s.next = 0
	}
	c := s.candidates[s.next]
	s.next++
	return c, nil
}

func (s *Scraped) Fetch(ctx context.Context, item Item) ([]byte, error) {
	c, err := s.NextCandidate()
	if err != nil {
		return nil, err
	}
	return scraper.DownloadImage(ctx, c.ImageURL)
}
