package imagesource

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	name string
	data []byte
	err  error
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Fetch(context.Context, Item) ([]byte, error) {
	return s.data, s.err
}

func TestChainFirstSuccessWins(t *testing.T) {
	chain := NewChain(
		stubSource{name: "a", err: errors.New("down")},
		stubSource{name: "b", data: []byte("img-b")},
		stubSource{name: "c", data: []byte("img-c")},
	)

	data, err := chain.Fetch(context.Background(), Item{Title: "TERRA Test"})
	require.NoError(t, err)
	assert.Equal(t, []byte("img-b"), data)
}

func TestChainAllFail(t *testing.T) {
	chain := NewChain(
		stubSource{name: "a", err: errors.New("down")},
		stubSource{name: "b", err: errors.New("also down")},
	)

	_, err := chain.Fetch(context.Background(), Item{Title: "TERRA Test"})
	assert.Error(t, err)
}
