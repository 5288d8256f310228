package scraper

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// Browser scrapes listing pages through a headless Chrome session so
// that lazy-loaded images are rendered before the DOM is read. One
// Chrome process serves the whole run and is closed when ScrapeAll
// returns.
type Browser struct {
	baseURL     string
	sections    []Section
	maxPages    int
	scrolls     int
	chromePath  string
	sourceBrand string
	filter      Filter
	dedup       *Dedup
}

// NewBrowser creates a browser-automated scraper. chromePath may be
// empty, in which case common installation paths are probed.
func NewBrowser(baseURL, sourceBrand, chromePath string, sections []Section) *Browser {
	return &Browser{
		baseURL:     baseURL,
		sections:    sections,
		maxPages:    7,
		scrolls:     3,
		chromePath:  chromePath,
		sourceBrand: sourceBrand,
		filter:      DefaultFilter(),
		dedup:       NewDedup(),
	}
}

// detectChromePath probes the configured path and then common
// installation locations for a Chrome/Chromium executable.
func (b *Browser) detectChromePath() string {
	if b.chromePath != "" {
		if _, err := os.Stat(b.chromePath); err == nil {
			return b.chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// scrapedImage is the raw tuple the in-page collector script returns
// for every rendered img element.
type scrapedImage struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Context string `json:"context"`
}

// collectImagesJS enumerates every img element, preferring the lazy
// attributes, and captures nearby heading text for name derivation.
const collectImagesJS = `
	Array.from(document.querySelectorAll('img')).map(img => {
		const attrs = ['src', 'data-src', 'data-lazy-src', 'data-original', 'data-srcset'];
		let src = '';
		for (const a of attrs) {
			const v = img.getAttribute(a);
			if (v && !v.startsWith('data:')) { src = v; break; }
		}
		let context = '';
		let parent = img.parentElement;
		for (let depth = 0; depth < 5 && parent; depth++) {
			const heading = parent.querySelector('h1, h2, h3, h4, h5, [class*=title], [class*=name]');
			if (heading && heading.textContent.trim().length > 3) {
				context = heading.textContent.trim();
				break;
			}
			parent = parent.parentElement;
		}
		return { src: src, alt: img.getAttribute('alt') || '', context: context };
	})
`

// ScrapeAll renders and reads every configured section and page. The
// Chrome session is torn down before returning; a crash mid-run can
// leak it.
func (b *Browser) ScrapeAll(ctx context.Context) ([]Candidate, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-gpu", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(userAgent),
	)
	if path := b.detectChromePath(); path != "" {
		opts = append(opts, chromedp.ExecPath(path))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	// Plain browser headers; some storefronts reject the headless
	// defaults.
	err := chromedp.Run(browserCtx,
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers(map[string]interface{}{
			"Accept-Language": "en-US,en;q=0.5",
		})),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start browser session: %w", err)
	}

	var all []Candidate
	for _, section := range b.sections {
		log.Printf("👟 Section %s:", section.Name)

		for page := 1; page <= b.maxPages; page++ {
			pageURL := section.URL
			if page > 1 {
				pageURL = fmt.Sprintf("%s?p=%d", section.URL, page)
			}
			log.Printf("🔍 Scraping %s page %d/%d...", section.Name, page, b.maxPages)

			candidates, err := b.scrapePage(browserCtx, pageURL)
			if err != nil {
				log.Printf("❌ Error scraping %s: %v", pageURL, err)
				continue
			}
			if len(candidates) > 0 {
				all = append(all, candidates...)
				log.Printf("✅ %d images found", len(candidates))
			} else {
				log.Printf("❌ No images")
			}

			time.Sleep(2 * time.Second)
		}
	}

	return all, nil
}

func (b *Browser) scrapePage(ctx context.Context, pageURL string) ([]Candidate, error) {
	pageCtx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	var raw []scrapedImage
	err := chromedp.Run(pageCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("img", chromedp.ByQuery),
		// Scroll cycles trigger the lazy loader; there is no event to
		// wait on, only settling time.
		chromedp.ActionFunc(func(ctx context.Context) error {
			if err := chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight);`, nil).Do(ctx); err != nil {
				return err
			}
			time.Sleep(3 * time.Second)
			for i := 0; i < b.scrolls; i++ {
				if err := chromedp.Evaluate(`window.scrollTo(0, 0);`, nil).Do(ctx); err != nil {
					return err
				}
				time.Sleep(time.Second)
				if err := chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight);`, nil).Do(ctx); err != nil {
					return err
				}
				time.Sleep(time.Second)
			}
			return nil
		}),
		chromedp.Evaluate(collectImagesJS, &raw),
	)
	if err != nil {
		return nil, fmt.Errorf("browser actions failed: %w", err)
	}

	var out []Candidate
	for _, img := range raw {
		if img.Src == "" {
			continue
		}
		abs := AbsoluteURL(b.baseURL, img.Src)
		if !b.filter.Allow(abs, img.Alt) {
			continue
		}
		if !b.dedup.Add(abs) {
			continue
		}

		name := "TERRA Classic Shoe"
		if img.Alt != "" {
			name = NormalizeName(img.Alt, b.sourceBrand)
		} else if img.Context != "" {
			name = NormalizeName(img.Context, b.sourceBrand)
		}

		alt := img.Alt
		if alt == "" {
			alt = name
		}
		out = append(out, Candidate{Name: name, ImageURL: abs, Alt: alt})
	}

	return out, nil
}
