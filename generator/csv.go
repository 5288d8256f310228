package generator

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/dorushugo/terra/models"
)

// defaultPrice is used when a CSV row carries no parseable price.
const defaultPrice = 150.0

// maxImagesPerRow caps how many image URLs a single row contributes.
const maxImagesPerRow = 3

// CSVRow is one product row from an import file.
type CSVRow struct {
	Name      string
	Price     float64
	ImageURLs []string
}

// ParseCSV reads an import file. Headers are matched loosely so both
// French (nom, prix, images) and English (name, price, images) exports
// work.
func ParseCSV(r io.Reader) ([]CSVRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV has no data rows")
	}

	nameCol, priceCol, imagesCol := -1, -1, -1
	for i, h := range records[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "nom", "name", "title", "titre":
			nameCol = i
		case "prix", "price":
			priceCol = i
		case "images", "image", "photos":
			imagesCol = i
		}
	}
	if nameCol == -1 {
		return nil, fmt.Errorf("CSV has no name column")
	}

	var rows []CSVRow
	for _, record := range records[1:] {
		if nameCol >= len(record) || strings.TrimSpace(record[nameCol]) == "" {
			continue
		}
		row := CSVRow{Name: strings.TrimSpace(record[nameCol]), Price: defaultPrice}

		if priceCol != -1 && priceCol < len(record) {
			row.Price = parsePrice(record[priceCol])
		}
		if imagesCol != -1 && imagesCol < len(record) {
			for _, u := range strings.Split(record[imagesCol], ";") {
				u = strings.TrimSpace(u)
				if u == "" || len(row.ImageURLs) == maxImagesPerRow {
					continue
				}
				row.ImageURLs = append(row.ImageURLs, u)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parsePrice handles "159,00 €" style values as well as plain floats.
func parsePrice(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "€", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	cleaned = strings.TrimSpace(cleaned)
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || price <= 0 {
		log.Printf("⚠️ Unparseable price %q, using default %.0f", raw, defaultPrice)
		return defaultPrice
	}
	return price
}

// FromCSVRow turns an import row into a full product, inferring the
// collection and colors from the name and filling the rest randomly.
func (s *Synthetic) FromCSVRow(row CSVRow, index int) models.Product {
	collection := CollectionFromName(row.Name)
	ecoRange := ecoRanges[collection]
	ecoScore := ecoRange[0] + s.rng.Float64()*(ecoRange[1]-ecoRange[0])
	ecoScore = float64(int(ecoScore*10)) / 10

	title := row.Name
	if !strings.HasPrefix(strings.ToUpper(title), "TERRA") {
		title = "TERRA " + title
	}

	return models.Product{
		Title:            title,
		Slug:             fmt.Sprintf("%s-%d", Slugify(title), index),
		Collection:       collection,
		Price:            int(row.Price),
		ShortDescription: fmt.Sprintf("%s sneaker from the %s collection.", collectionLabel(collection), collection),
		Description: []models.RichTextNode{
			models.BoldParagraph(title),
			models.Paragraph(fmt.Sprintf(
				"Part of the TERRA %s collection. Eco score %.1f/10, made with recycled and natural materials.",
				collection, ecoScore)),
		},
		Colors:       ColorsFromName(row.Name),
		Sizes:        s.sizes(),
		EcoScore:     ecoScore,
		IsNewArrival: true,
		Status:       "published",
	}
}

// WriteSnapshot saves a human-checkable CSV of what a run created.
func WriteSnapshot(w io.Writer, products []models.Product) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "title", "collection", "price", "ecoScore", "sizes"}); err != nil {
		return err
	}
	for _, p := range products {
		record := []string{
			p.ID.String(),
			p.Title,
			string(p.Collection),
			strconv.Itoa(p.Price),
			strconv.FormatFloat(p.EcoScore, 'f', 1, 64),
			strconv.Itoa(len(p.Sizes)),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
