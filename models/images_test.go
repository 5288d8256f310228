package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeedsImage(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    bool
	}{
		{"no images at all", Product{}, true},
		{"nil relation", Product{Images: []ImageRef{{Image: nil}}}, true},
		{"sentinel string id", Product{Images: []ImageRef{{Image: "0"}}}, true},
		{"sentinel None id", Product{Images: []ImageRef{{Image: "None"}}}, true},
		{"sentinel null id", Product{Images: []ImageRef{{Image: "null"}}}, true},
		{"expanded without url", Product{Images: []ImageRef{{Image: map[string]any{"id": float64(7)}}}}, true},
		{"expanded with url", Product{Images: []ImageRef{{Image: map[string]any{"id": float64(7), "url": "/media/7.jpg"}}}}, false},
		{"bare numeric id", Product{Images: []ImageRef{{Image: float64(12)}}}, false},
		{"bare string id", Product{Images: []ImageRef{{Image: "abc123"}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.NeedsImage())
		})
	}
}

func TestMediaID(t *testing.T) {
	assert.Equal(t, "12", ImageRef{Image: float64(12)}.MediaID())
	assert.Equal(t, "abc", ImageRef{Image: "abc"}.MediaID())
	assert.Equal(t, "7", ImageRef{Image: map[string]any{"id": float64(7)}}.MediaID())
	assert.Equal(t, "", ImageRef{}.MediaID())
}

func TestResolvedURL(t *testing.T) {
	assert.Equal(t, "/media/7.jpg", ImageRef{Image: map[string]any{"id": float64(7), "url": "/media/7.jpg"}}.ResolvedURL())
	assert.Equal(t, "", ImageRef{Image: map[string]any{"id": float64(7)}}.ResolvedURL())
	assert.Equal(t, "", ImageRef{Image: float64(7)}.ResolvedURL())
}

func TestValidImageRefsDropsSentinels(t *testing.T) {
	refs := []ImageRef{
		{Image: "0", Alt: "broken"},
		{Image: float64(5), Alt: "keep"},
		{Image: map[string]any{"id": float64(9), "url": "/media/9.jpg"}},
		{Image: "None"},
	}

	out := ValidImageRefs(refs, "fallback alt")

	assert.Len(t, out, 2)
	assert.Equal(t, 5, out[0].Image)
	assert.Equal(t, "keep", out[0].Alt)
	assert.Equal(t, 9, out[1].Image)
	assert.Equal(t, "fallback alt", out[1].Alt)
}

func TestMediaRelationShape(t *testing.T) {
	assert.Equal(t, 42, MediaRelation("42"))
	assert.Equal(t, "66b2f1", MediaRelation("66b2f1"))
}
