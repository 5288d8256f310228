package imagesource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dorushugo/terra/scraper"
)

func TestScrapedSequentialExhausts(t *testing.T) {
	pool := NewScraped([]scraper.Candidate{
		{Name: "TERRA One", ImageURL: "https://cdn.example.com/1.jpg"},
		{Name: "TERRA Two", ImageURL: "https://cdn.example.com/2.jpg"},
	}, false)

	c, err := pool.NextCandidate()
	require.NoError(t, err)
	assert.Equal(t, "TERRA One", c.Name)

	_, err = pool.NextCandidate()
	require.NoError(t, err)

	_, err = pool.NextCandidate()
	assert.Error(t, err)
}

func TestScrapedCyclesWhenEnabled(t *testing.T) {
	pool := NewScraped([]scraper.Candidate{
		{Name: "TERRA One", ImageURL: "https://cdn.example.com/1.jpg"},
	}, true)

	for i := 0; i < 3; i++ {
		c, err := pool.NextCandidate()
		require.NoError(t, err)
		assert.Equal(t, "TERRA One", c.Name)
	}
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("TERRA Move Trail Green")
	assert.Contains(t, p, "trail running shoe")
	assert.Contains(t, p, "sage green")
	assert.Contains(t, p, "white studio background")

	generic := BuildPrompt("TERRA Mystery")
	assert.Contains(t, generic, "eco-friendly sneaker")
}
