package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterAllow(t *testing.T) {
	f := DefaultFilter()

	tests := []struct {
		name string
		url  string
		alt  string
		want bool
	}{
		{"product jpg", "https://cdn.example.com/products/shoe-1.jpg", "white sneaker product shot", true},
		{"webp with query", "https://cdn.example.com/p/shoe.webp?w=600", "sneaker", true},
		{"logo alt rejected", "https://cdn.example.com/products/shoe-2.jpg", "brand logo", false},
		{"logo url rejected", "https://cdn.example.com/assets/logo.png", "", false},
		{"svg rejected", "https://cdn.example.com/assets/shoe.svg", "sneaker", false},
		{"icon size rejected", "https://cdn.example.com/img/thing_32x32.png", "", false},
		{"spinner rejected", "https://cdn.example.com/img/loading-spinner.jpg", "", false},
		{"no extension rejected", "https://cdn.example.com/products/shoe", "sneaker", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Allow(tt.url, tt.alt))
		})
	}
}

func TestAbsoluteURL(t *testing.T) {
	base := "https://shop.example.com"

	assert.Equal(t, "https://cdn.example.com/a.jpg", AbsoluteURL(base, "//cdn.example.com/a.jpg"))
	assert.Equal(t, "https://shop.example.com/img/a.jpg", AbsoluteURL(base, "/img/a.jpg"))
	assert.Equal(t, "https://other.example.com/a.jpg", AbsoluteURL(base, "https://other.example.com/a.jpg"))
}

func TestExtractSrcPrefersFirstUsableAttribute(t *testing.T) {
	attrs := map[string]string{
		"src":      "data:image/gif;base64,xyz",
		"data-src": "https://cdn.example.com/real.jpg",
	}
	got := ExtractSrc(func(name string) string { return attrs[name] })
	assert.Equal(t, "https://cdn.example.com/real.jpg", got)

	assert.Equal(t, "", ExtractSrc(func(string) string { return "" }))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "TERRA Runner Low", NormalizeName("nobrand Runner Low", "nobrand"))
	assert.Equal(t, "TERRA Court White", NormalizeName("Court White", "nobrand"))
	assert.Equal(t, "TERRA Move Flex", NormalizeName("TERRA Move Flex", "nobrand"))
}

func TestDedup(t *testing.T) {
	d := NewDedup()
	assert.True(t, d.Add("https://cdn.example.com/a.jpg"))
	assert.False(t, d.Add("https://cdn.example.com/a.jpg"))
	assert.True(t, d.Add("https://cdn.example.com/b.jpg"))
}
