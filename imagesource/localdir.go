package imagesource

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LocalDir serves images from a directory on disk, each file at most
// once. It backs runs seeded from a folder of hand-picked photos.
type LocalDir struct {
	dir   string
	files []string
	next  int
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// NewLocalDir lists the usable image files in dir, sorted by name so
// assignment order is reproducible.
func NewLocalDir(dir string) (*LocalDir, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	log.Printf("📦 %d local images found in %s", len(files), dir)
	return &LocalDir{dir: dir, files: files}, nil
}

var _ Source = (*LocalDir)(nil)

func (l *LocalDir) Name() string { return "localdir" }

// Remaining reports how many unused images are left.
func (l *LocalDir) Remaining() int { return len(l.files) - l.next }

func (l *LocalDir) Fetch(ctx context.Context, item Item) ([]byte, error) {
	if l.next >= len(l.files) {
		return nil, fmt.Errorf("no local images left in %s (%d used)", l.dir, len(l.files))
	}
	path := l.files[l.next]
	l.next++

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
