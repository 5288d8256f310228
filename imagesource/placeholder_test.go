package imagesource

import (
	"bytes"
	"context"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderRendersDecodableJPEG(t *testing.T) {
	p := NewPlaceholder()
	item := Item{Title: "TERRA Move Runner Blue", Collection: "move", Index: 2}

	data, err := p.Fetch(context.Background(), item)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, placeholderSize, img.Bounds().Dx())
	assert.Equal(t, placeholderSize, img.Bounds().Dy())
}

func TestPlaceholderIsDeterministic(t *testing.T) {
	p := NewPlaceholder()
	item := Item{Title: "TERRA Origin Stone White", Collection: "origin", Index: 0}

	a, err := p.Fetch(context.Background(), item)
	require.NoError(t, err)
	b, err := p.Fetch(context.Background(), item)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestPlaceholderUnknownCollectionFallsBack(t *testing.T) {
	p := NewPlaceholder()
	_, err := p.Fetch(context.Background(), Item{Title: "TERRA Mystery", Collection: "archive", Index: 1})
	assert.NoError(t, err)
}
