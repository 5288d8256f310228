package generator

import (
	"regexp"
	"strings"

	"github.com/dorushugo/terra/models"
)

// TerraColor pairs a palette name with its hex value.
type TerraColor struct {
	Name  string
	Value string
}

// TerraColors is the brand palette. Color inference and synthetic
// products both draw from it.
var TerraColors = []TerraColor{
	{"Stone White", "#F5F5F0"},
	{"Urban Black", "#1A1A1A"},
	{"Terra Green", "#2D5A27"},
	{"Clay Orange", "#D4725B"},
	{"Sage Green", "#9CAF88"},
	{"Earth Brown", "#8B4513"},
	{"Ocean Blue", "#4682B4"},
	{"Desert Sand", "#EDC9AF"},
	{"Charcoal Grey", "#36454F"},
	{"Natural Beige", "#F5E6D3"},
}

// collectionKeywords decide which line a product name belongs to.
// Checked in order; first hit wins.
var collectionKeywords = []struct {
	collection models.Collection
	keywords   []string
}{
	{models.CollectionOrigin, []string{"classic", "heritage", "essential", "origin", "canvas", "retro"}},
	{models.CollectionMove, []string{"run", "sport", "active", "move", "trail", "performance", "flex"}},
	{models.CollectionLimited, []string{"limited", "edition", "exclusive", "premium", "signature", "collab"}},
}

// CollectionFromName infers the collection from a product name,
// defaulting to origin.
func CollectionFromName(name string) models.Collection {
	lower := strings.ToLower(name)
	for _, ck := range collectionKeywords {
		for _, kw := range ck.keywords {
			if strings.Contains(lower, kw) {
				return ck.collection
			}
		}
	}
	return models.CollectionOrigin
}

// colorNameKeywords map plain color words in names to palette entries.
var colorNameKeywords = []struct {
	keyword string
	color   TerraColor
}{
	{"white", TerraColors[0]},
	{"black", TerraColors[1]},
	{"green", TerraColors[2]},
	{"orange", TerraColors[3]},
	{"sage", TerraColors[4]},
	{"brown", TerraColors[5]},
	{"blue", TerraColors[6]},
	{"sand", TerraColors[7]},
	{"grey", TerraColors[8]},
	{"gray", TerraColors[8]},
	{"beige", TerraColors[9]},
}

// ColorsFromName extracts up to two palette colors mentioned in a
// product name, defaulting to Stone White.
func ColorsFromName(name string) []models.Color {
	lower := strings.ToLower(name)
	var colors []models.Color
	seen := map[string]bool{}
	for _, ck := range colorNameKeywords {
		if len(colors) == 2 {
			break
		}
		if strings.Contains(lower, ck.keyword) && !seen[ck.color.Name] {
			seen[ck.color.Name] = true
			colors = append(colors, models.Color{Name: ck.color.Name, Value: ck.color.Value})
		}
	}
	if len(colors) == 0 {
		colors = append(colors, models.Color{Name: TerraColors[0].Name, Value: TerraColors[0].Value})
	}
	return colors
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a product title into a URL slug.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
