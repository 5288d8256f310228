package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dorushugo/terra/models"
)

func TestSyntheticProductInvariants(t *testing.T) {
	gen := NewSynthetic(42)

	for i := 0; i < 200; i++ {
		p := gen.Product(i)

		assert.True(t, strings.HasPrefix(p.Title, "TERRA "), "title %q", p.Title)
		assert.NotEmpty(t, p.Slug)
		assert.Contains(t, []models.Collection{
			models.CollectionOrigin, models.CollectionMove, models.CollectionLimited,
		}, p.Collection)

		priceRange := priceRanges[p.Collection]
		assert.GreaterOrEqual(t, p.Price, priceRange[0])
		assert.LessOrEqual(t, p.Price, priceRange[1])

		ecoRange := ecoRanges[p.Collection]
		assert.GreaterOrEqual(t, p.EcoScore, ecoRange[0]-0.1)
		assert.LessOrEqual(t, p.EcoScore, ecoRange[1])

		require.GreaterOrEqual(t, len(p.Sizes), 6)
		require.LessOrEqual(t, len(p.Sizes), 8)
		seen := map[string]bool{}
		for _, s := range p.Sizes {
			assert.False(t, seen[s.Size], "duplicate size %s", s.Size)
			seen[s.Size] = true

			assert.GreaterOrEqual(t, s.Stock, 0)
			assert.LessOrEqual(t, s.Stock, 50)
			assert.LessOrEqual(t, s.ReservedStock, s.Stock)
			assert.LessOrEqual(t, s.ReservedStock, 3)
			assert.Equal(t, s.Stock-s.ReservedStock, s.AvailableStock)
			assert.Equal(t, s.Stock == 0, s.IsOutOfStock)
			assert.Equal(t, s.Stock <= s.LowStockThreshold, s.IsLowStock)
		}

		require.NotEmpty(t, p.Colors)
		assert.LessOrEqual(t, len(p.Colors), 2)
		assert.NotEmpty(t, p.Description)
	}
}

func TestSyntheticIsReproducibleForSameSeed(t *testing.T) {
	a := NewSynthetic(7).Product(0)
	b := NewSynthetic(7).Product(0)
	assert.Equal(t, a, b)
}

func TestRebrandNames(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < len(rebrandNames); i++ {
		name := RebrandName(i)
		assert.True(t, strings.HasPrefix(name, "TERRA "))
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}

	// Past the pool, names get a numeric suffix and stay unique.
	assert.NotEqual(t, RebrandName(0), RebrandName(len(rebrandNames)))
	assert.NotEmpty(t, RebrandDescription(999))
}

func TestRebrandProduct(t *testing.T) {
	title, slug, desc, collection := RebrandProduct(20)

	assert.Equal(t, "TERRA Move Runner White", title)
	assert.Equal(t, "terra-move-runner-white-20", slug)
	assert.NotEmpty(t, desc)
	assert.Equal(t, models.CollectionMove, collection)
}
