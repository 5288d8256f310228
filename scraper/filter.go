package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Candidate is a provisional image discovered on a storefront page:
// a display name, the resolved image URL, and the alt text it carried.
// Candidates are transient; nothing persists them across runs.
type Candidate struct {
	Name     string
	ImageURL string
	Alt      string
}

// srcAttributes are tried in order when extracting an image URL; lazy
// loading sites park the real URL in data attributes.
var srcAttributes = []string{"src", "data-src", "data-lazy-src", "data-original", "data-srcset"}

// ExtractSrc returns the first non-empty, non-inline source found by
// the attribute getter, or "".
func ExtractSrc(attr func(name string) string) string {
	for _, name := range srcAttributes {
		v := strings.TrimSpace(attr(name))
		if v != "" && !strings.HasPrefix(v, "data:") {
			return v
		}
	}
	return ""
}

// AbsoluteURL normalizes a scraped src against the site base URL.
func AbsoluteURL(base, src string) string {
	switch {
	case strings.HasPrefix(src, "//"):
		return "https:" + src
	case strings.HasPrefix(src, "/"):
		return strings.TrimSuffix(base, "/") + src
	case strings.HasPrefix(src, "http"):
		return src
	default:
		b, err := url.Parse(base)
		if err != nil {
			return src
		}
		ref, err := url.Parse(src)
		if err != nil {
			return src
		}
		return b.ResolveReference(ref).String()
	}
}

// Filter decides whether a scraped image looks like a product shot.
// The keyword lists are configuration so they can be tuned and tested
// independently of the scraping loop.
type Filter struct {
	// Extensions an accepted URL must end with (before any query).
	Extensions []string
	// DenyKeywords reject a candidate when found in URL or alt text.
	DenyKeywords []string
	// IconSizes are filename-embedded dimensions that mark tiny UI
	// icons.
	IconSizes []string
}

// DefaultFilter returns the filter tuned for storefront listings:
// real image extensions only, site chrome excluded.
func DefaultFilter() Filter {
	return Filter{
		Extensions: []string{".jpg", ".jpeg", ".png", ".webp"},
		DenyKeywords: []string{
			"logo", "icon", "banner", "header", "footer", "nav", "menu",
			"arrow", "button", "cart", "search", "close", "hamburger",
			"social", "facebook", "instagram", "twitter", "youtube",
			"favicon", "sprite", "background", "pattern", "texture",
			"placeholder", "loading", "spinner",
		},
		IconSizes: []string{"16x16", "32x32", "64x64", "100x100"},
	}
}

// Allow reports whether the URL/alt pair passes the inclusion filter.
func (f Filter) Allow(imageURL, alt string) bool {
	urlLower := strings.ToLower(imageURL)
	altLower := strings.ToLower(alt)

	pathPart := urlLower
	if i := strings.IndexByte(pathPart, '?'); i >= 0 {
		pathPart = pathPart[:i]
	}
	isImage := false
	for _, ext := range f.Extensions {
		if strings.HasSuffix(pathPart, ext) {
			isImage = true
			break
		}
	}
	if !isImage {
		return false
	}

	for _, kw := range f.DenyKeywords {
		if strings.Contains(urlLower, kw) || strings.Contains(altLower, kw) {
			return false
		}
	}
	for _, size := range f.IconSizes {
		if strings.Contains(urlLower, size) {
			return false
		}
	}
	return true
}

// chrome words never accepted as a product name during parent walks.
var nonNameWords = map[string]bool{"nobrand": true, "new": true, "sale": true}

// DeriveName derives a display name for a candidate: alt text when
// present, else a bounded walk up the DOM looking for heading/title
// text, else a generic fallback. The result is normalized to carry
// the TERRA prefix instead of the source brand's.
func DeriveName(sel *goquery.Selection, alt, sourceBrand string) string {
	if name := strings.TrimSpace(alt); name != "" {
		return NormalizeName(name, sourceBrand)
	}

	parent := sel.Parent()
	for depth := 0; depth < 5 && parent.Length() > 0; depth++ {
		text := headingText(parent)
		if text != "" {
			return NormalizeName(text, sourceBrand)
		}
		parent = parent.Parent()
	}

	return "TERRA Classic Shoe"
}

func headingText(sel *goquery.Selection) string {
	found := ""
	sel.Find("h1, h2, h3, h4, h5, [class*=title], [class*=name], [class*=product], span, p").
		EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text := strings.TrimSpace(s.Text())
			if len(text) > 3 && !nonNameWords[strings.ToLower(text)] {
				found = text
				return false
			}
			return true
		})
	return found
}

// NormalizeName strips the source brand prefix and ensures the TERRA
// prefix.
func NormalizeName(name, sourceBrand string) string {
	cleaned := strings.TrimSpace(name)
	if sourceBrand != "" {
		lower := strings.ToLower(cleaned)
		if strings.HasPrefix(lower, strings.ToLower(sourceBrand)) {
			cleaned = strings.TrimSpace(cleaned[len(sourceBrand):])
		}
	}
	if !strings.HasPrefix(strings.ToUpper(cleaned), "TERRA") {
		cleaned = "TERRA " + cleaned
	}
	return strings.TrimSpace(cleaned)
}

// Dedup tracks image URLs already seen within one run, across pages
// and sections.
type Dedup struct {
	seen map[string]bool
}

// NewDedup creates an empty in-run URL set.
func NewDedup() *Dedup {
	return &Dedup{seen: make(map[string]bool)}
}

// Add records a URL and reports whether it was new.
func (d *Dedup) Add(imageURL string) bool {
	if d.seen[imageURL] {
		return false
	}
	d.seen[imageURL] = true
	return true
}
