package scraper

import (
	"fmt"
	"log"
	"time"

	"github.com/gocolly/colly/v2"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Section is one storefront listing category to walk.
type Section struct {
	Name string
	URL  string
}

// Static scrapes storefront listing pages over plain HTTP. Sites that
// only populate images from JavaScript need the Browser variant.
type Static struct {
	baseURL     string
	sections    []Section
	maxPages    int
	pageDelay   time.Duration
	sourceBrand string
	filter      Filter
	dedup       *Dedup
}

// NewStatic creates a static scraper for the given site. sourceBrand
// is stripped from derived candidate names.
func NewStatic(baseURL, sourceBrand string, sections []Section) *Static {
	return &Static{
		baseURL:     baseURL,
		sections:    sections,
		maxPages:    5,
		pageDelay:   2 * time.Second,
		sourceBrand: sourceBrand,
		filter:      DefaultFilter(),
		dedup:       NewDedup(),
	}
}

// ScrapeAll walks every configured section and page, returning the
// deduplicated candidates of the whole run. A page that errors yields
// zero candidates and the run continues.
func (s *Static) ScrapeAll() []Candidate {
	var all []Candidate

	for _, section := range s.sections {
		log.Printf("👟 Section %s:", section.Name)

		for page := 1; page <= s.maxPages; page++ {
			pageURL := section.URL
			if page > 1 {
				pageURL = fmt.Sprintf("%s?p=%d", section.URL, page)
			}
			log.Printf("🔍 Scraping %s page %d/%d...", section.Name, page, s.maxPages)

			candidates := s.ScrapePage(pageURL)
			if len(candidates) > 0 {
				all = append(all, candidates...)
				log.Printf("✅ Page %d: %d unique products found", page, len(candidates))
			} else {
				log.Printf("❌ Page %d: no unique products found", page)
			}

			time.Sleep(s.pageDelay)
		}
	}

	return all
}

// ScrapePage fetches one listing page and returns its candidates,
// filtered and deduplicated against everything already seen this run.
func (s *Static) ScrapePage(pageURL string) []Candidate {
	var out []Candidate

	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.AllowURLRevisit(),
	)

	c.OnHTML("img", func(e *colly.HTMLElement) {
		src := ExtractSrc(e.Attr)
		if src == "" {
			return
		}
		abs := AbsoluteURL(s.baseURL, src)
		alt := e.Attr("alt")
		if !s.filter.Allow(abs, alt) {
			return
		}
		if !s.dedup.Add(abs) {
			return
		}
		name := DeriveName(e.DOM, alt, s.sourceBrand)
		candidateAlt := alt
		if candidateAlt == "" {
			candidateAlt = name
		}
		out = append(out, Candidate{Name: name, ImageURL: abs, Alt: candidateAlt})
	})

	c.OnError(func(r *colly.Response, err error) {
		log.Printf("❌ Error scraping %s: %v", pageURL, err)
	})

	if err := c.Visit(pageURL); err != nil {
		log.Printf("❌ Error scraping %s: %v", pageURL, err)
		return nil
	}
	c.Wait()

	return out
}
