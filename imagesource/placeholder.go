package imagesource

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Placeholder renders a stylized sneaker silhouette entirely offline.
// Output is deterministic for a given item, so reruns produce the same
// picture for the same product.
type Placeholder struct{}

func NewPlaceholder() *Placeholder { return &Placeholder{} }

var _ Source = (*Placeholder)(nil)

const placeholderSize = 800

// collectionPalettes keys the silhouette colors on the product
// collection so the three lines are visually distinct.
var collectionPalettes = map[string][2]color.RGBA{
	"origin":  {{0x2D, 0x5A, 0x27, 0xFF}, {0x9C, 0xAF, 0x88, 0xFF}},
	"move":    {{0x46, 0x82, 0xB4, 0xFF}, {0x36, 0x45, 0x4F, 0xFF}},
	"limited": {{0xD4, 0x72, 0x5B, 0xFF}, {0x1A, 0x1A, 0x1A, 0xFF}},
}

// accentColors rotate with the item index for variety inside a
// collection.
var accentColors = []color.RGBA{
	{0x8B, 0x45, 0x13, 0xFF},
	{0xED, 0xC9, 0xAF, 0xFF},
	{0xF5, 0xE6, 0xD3, 0xFF},
	{0x36, 0x45, 0x4F, 0xFF},
}

func (p *Placeholder) Name() string { return "placeholder" }

func (p *Placeholder) Fetch(_ context.Context, item Item) ([]byte, error) {
	palette, ok := collectionPalettes[item.Collection]
	if !ok {
		palette = collectionPalettes["origin"]
	}
	body, sole := palette[0], palette[1]
	accent := accentColors[item.Index%len(accentColors)]

	img := image.NewRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	fillRect(img, 0, 0, placeholderSize, placeholderSize, color.RGBA{0xF5, 0xF5, 0xF0, 0xFF})

	// Sole: flat slab with a rounded toe.
	fillRect(img, 140, 520, 560, 60, sole)
	fillEllipse(img, 660, 550, 60, 30, sole)

	// Body and toe box.
	fillEllipse(img, 360, 470, 220, 110, body)
	fillEllipse(img, 620, 500, 110, 60, body)
	// Ankle collar.
	fillEllipse(img, 230, 390, 90, 100, body)

	// Lacing stripes.
	for i := 0; i < 4; i++ {
		fillRect(img, 330+i*55, 400+i*12, 40, 10, accent)
	}

	// Eco badge in the top right corner.
	fillEllipse(img, 690, 120, 56, 56, color.RGBA{0x2D, 0x5A, 0x27, 0xFF})
	drawText(img, 668, 126, "ECO", color.White)

	title := item.Title
	if title == "" {
		title = "TERRA"
	}
	brand := item.Brand
	if brand == "" {
		brand = "TERRA Sneakers"
	}
	drawText(img, 40, 740, title, color.RGBA{0x1A, 0x1A, 0x1A, 0xFF})
	drawText(img, 40, 770, brand, color.RGBA{0x8B, 0x8B, 0x8B, 0xFF})

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("failed to encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.Color) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			img.Set(px, py, c)
		}
	}
}

// fillEllipse fills the ellipse centered at (cx, cy) with the given
// half axes.
func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.Color) {
	for py := cy - ry; py <= cy+ry; py++ {
		for px := cx - rx; px <= cx+rx; px++ {
			dx := float64(px-cx) / float64(rx)
			dy := float64(py-cy) / float64(ry)
			if dx*dx+dy*dy <= 1.0 {
				img.Set(px, py, c)
			}
		}
	}
}

func drawText(img *image.RGBA, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
