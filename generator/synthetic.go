package generator

import (
	"fmt"
	"math/rand"

	"github.com/dorushugo/terra/models"
)

// Synthetic builds complete fake products for seeding a demo catalog.
// A fixed seed gives a reproducible catalog; time-based seeds give a
// fresh one per run.
type Synthetic struct {
	rng *rand.Rand
}

func NewSynthetic(seed int64) *Synthetic {
	return &Synthetic{rng: rand.New(rand.NewSource(seed))}
}

// modelNames are per-collection base names combined with a palette
// color into the final title.
var modelNames = map[models.Collection][]string{
	models.CollectionOrigin: {
		"Classic Low", "Heritage Court", "Essential Canvas", "Retro Court",
		"Daily Low", "Canvas One",
	},
	models.CollectionMove: {
		"Runner Flex", "Trail Grip", "Active Knit", "Move Lite",
		"Performance Run", "Flex Trainer",
	},
	models.CollectionLimited: {
		"Signature Edition", "Premium Craft", "Atelier One", "Archive Edition",
		"Studio Exclusive",
	},
}

// ecoSuffixes occasionally extend a title to advertise the material.
var ecoSuffixes = []string{"", "", "Recycled", "Organic", "Vegan"}

// priceRanges are per-collection price bounds in euros.
var priceRanges = map[models.Collection][2]int{
	models.CollectionOrigin:  {120, 160},
	models.CollectionMove:    {140, 180},
	models.CollectionLimited: {180, 250},
}

// ecoRanges bound the eco score per collection. Limited pieces use
// more experimental materials and score a bit lower.
var ecoRanges = map[models.Collection][2]float64{
	models.CollectionOrigin:  {8.0, 9.5},
	models.CollectionMove:    {7.5, 9.0},
	models.CollectionLimited: {7.0, 8.5},
}

var ecoMaterials = []string{
	"recycled ocean plastic", "organic cotton canvas", "natural rubber",
	"chrome-free leather", "recycled polyester mesh", "cork insoles",
	"sugarcane EVA foam",
}

// sizePool is the EU size range the shop carries.
var sizePool = []string{"36", "37", "38", "39", "40", "41", "42", "43", "44", "45"}

var collections = []models.Collection{
	models.CollectionOrigin, models.CollectionMove, models.CollectionLimited,
}

// Product generates the index-th synthetic product.
func (s *Synthetic) Product(index int) models.Product {
	collection := collections[s.rng.Intn(len(collections))]
	model := modelNames[collection][s.rng.Intn(len(modelNames[collection]))]
	colorA := TerraColors[s.rng.Intn(len(TerraColors))]

	title := fmt.Sprintf("TERRA %s %s", model, colorA.Name)
	if suffix := ecoSuffixes[s.rng.Intn(len(ecoSuffixes))]; suffix != "" {
		title = fmt.Sprintf("%s %s", title, suffix)
	}

	priceRange := priceRanges[collection]
	price := priceRange[0] + s.rng.Intn(priceRange[1]-priceRange[0]+1)

	ecoRange := ecoRanges[collection]
	ecoScore := ecoRange[0] + s.rng.Float64()*(ecoRange[1]-ecoRange[0])
	// One decimal, like the shop displays it.
	ecoScore = float64(int(ecoScore*10)) / 10

	colors := []models.Color{{Name: colorA.Name, Value: colorA.Value}}
	if s.rng.Intn(2) == 0 {
		colorB := TerraColors[s.rng.Intn(len(TerraColors))]
		if colorB.Name != colorA.Name {
			colors = append(colors, models.Color{Name: colorB.Name, Value: colorB.Value})
		}
	}

	material := ecoMaterials[s.rng.Intn(len(ecoMaterials))]

	return models.Product{
		Title:            title,
		Slug:             fmt.Sprintf("%s-%d", Slugify(title), index),
		Collection:       collection,
		Price:            price,
		ShortDescription: fmt.Sprintf("%s sneaker made with %s.", collectionLabel(collection), material),
		Description: []models.RichTextNode{
			models.BoldParagraph(title),
			models.Paragraph(fmt.Sprintf(
				"Crafted from %s with a natural rubber outsole, the %s pairs everyday comfort with a minimal footprint.",
				material, model)),
			models.Paragraph(fmt.Sprintf(
				"Eco score %.1f/10. Produced in small batches in European workshops.", ecoScore)),
		},
		Colors:       colors,
		Sizes:        s.sizes(),
		EcoScore:     ecoScore,
		IsFeatured:   s.rng.Intn(5) == 0,
		IsNewArrival: s.rng.Intn(3) == 0,
		Status:       "published",
	}
}

// sizes picks 6 to 8 distinct sizes from the pool with randomized
// stock levels.
func (s *Synthetic) sizes() []models.SizeEntry {
	count := 6 + s.rng.Intn(3)
	picked := append([]string(nil), sizePool...)
	s.rng.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })
	picked = picked[:count]

	entries := make([]models.SizeEntry, 0, count)
	for _, size := range picked {
		stock := s.rng.Intn(51)
		reserved := 0
		if stock > 0 {
			reserved = s.rng.Intn(min(3, stock) + 1)
		}
		entries = append(entries, models.NewSizeEntry(size, stock, reserved, 5))
	}
	return entries
}

func collectionLabel(c models.Collection) string {
	switch c {
	case models.CollectionMove:
		return "Performance"
	case models.CollectionLimited:
		return "Limited edition"
	default:
		return "Timeless"
	}
}
