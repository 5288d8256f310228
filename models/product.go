package models

// Collection is one of the fixed TERRA marketing categories.
type Collection string

const (
	CollectionOrigin  Collection = "origin"
	CollectionMove    Collection = "move"
	CollectionLimited Collection = "limited"
)

// Product represents a catalog entry as stored by the CMS.
// Field names mirror the CMS schema (camelCase, "_status").
type Product struct {
	ID               DocID          `json:"id,omitempty"`
	Title            string         `json:"title"`
	Slug             string         `json:"slug"`
	Collection       Collection     `json:"collection"`
	Price            int            `json:"price"`
	ShortDescription string         `json:"shortDescription"`
	Description      []RichTextNode `json:"description,omitempty"`
	Colors           []Color        `json:"colors,omitempty"`
	Sizes            []SizeEntry    `json:"sizes,omitempty"`
	EcoScore         float64        `json:"ecoScore"`
	IsFeatured       bool           `json:"isFeatured"`
	IsNewArrival     bool           `json:"isNewArrival"`
	Status           string         `json:"_status,omitempty"`
	Images           []ImageRef     `json:"images,omitempty"`
}

// RichTextNode is one paragraph of the CMS rich-text description.
type RichTextNode struct {
	Children []RichTextChild `json:"children"`
}

// RichTextChild is a single text run inside a rich-text node.
type RichTextChild struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// Paragraph builds a plain one-run rich-text node.
func Paragraph(text string) RichTextNode {
	return RichTextNode{Children: []RichTextChild{{Text: text}}}
}

// BoldParagraph builds a one-run rich-text node with bold styling.
func BoldParagraph(text string) RichTextNode {
	return RichTextNode{Children: []RichTextChild{{Text: text, Bold: true}}}
}

// Color is a product color variant with its swatch value.
type Color struct {
	Name   string     `json:"name"`
	Value  string     `json:"value"`
	Images []ImageRef `json:"images"`
}

// SizeEntry is one per-size stock line on a product. The derived
// fields (availableStock, isLowStock, isOutOfStock) are computed
// client-side before sending; the CMS never re-validates them here.
type SizeEntry struct {
	Size              string `json:"size"`
	Stock             int    `json:"stock"`
	ReservedStock     int    `json:"reservedStock"`
	AvailableStock    int    `json:"availableStock"`
	LowStockThreshold int    `json:"lowStockThreshold"`
	IsLowStock        bool   `json:"isLowStock"`
	IsOutOfStock      bool   `json:"isOutOfStock"`
}

// NewSizeEntry builds a size entry with its derived stock fields.
func NewSizeEntry(size string, stock, reserved, threshold int) SizeEntry {
	if reserved > stock {
		reserved = stock
	}
	if reserved < 0 {
		reserved = 0
	}
	return SizeEntry{
		Size:              size,
		Stock:             stock,
		ReservedStock:     reserved,
		AvailableStock:    stock - reserved,
		LowStockThreshold: threshold,
		IsLowStock:        stock <= threshold,
		IsOutOfStock:      stock == 0,
	}
}
