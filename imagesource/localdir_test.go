package imagesource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDirServesEachFileOnce(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.jpg"), []byte("second"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), []byte("first"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0644))

	l, err := NewLocalDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Remaining())

	ctx := context.Background()

	data, err := l.Fetch(ctx, Item{})
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)

	data, err = l.Fetch(ctx, Item{})
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
	assert.Equal(t, 0, l.Remaining())

	_, err = l.Fetch(ctx, Item{})
	assert.Error(t, err)
}

func TestLocalDirMissingDirectory(t *testing.T) {
	_, err := NewLocalDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
