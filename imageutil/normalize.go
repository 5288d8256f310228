package imageutil

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"log"

	"github.com/disintegration/imaging"
)

const (
	// maxDimension is the longest side uploaded media is allowed.
	maxDimension = 800
	jpegQuality  = 85
	// minBytes rejects tracking pixels and truncated downloads before
	// they reach the decoder.
	minBytes = 1000
)

// Normalize converts arbitrary downloaded image bytes into an
// upload-ready JPEG: decoded, fitted inside maxDimension keeping the
// aspect ratio, and flattened onto a white background so transparent
// PNGs do not turn black.
func Normalize(data []byte) ([]byte, error) {
	if len(data) < minBytes {
		return nil, fmt.Errorf("image too small (%d bytes), probably not a real photo", len(data))
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	log.Printf("📸 Image decoded: format=%s, bounds=%v", format, img.Bounds())

	bounds := img.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
		log.Printf("🔄 Resized to %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}

	flat := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
	flat = imaging.Overlay(flat, img, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}
