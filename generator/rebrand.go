package generator

import (
	"fmt"

	"github.com/dorushugo/terra/models"
)

// rebrandNames is the curated pool of catalog names used when taking
// over a demo database seeded with foreign brand data.
var rebrandNames = []string{
	"TERRA Origin Stone White",
	"TERRA Origin Urban Black",
	"TERRA Origin Sage Green",
	"TERRA Origin Clay Orange",
	"TERRA Origin Desert Sand",
	"TERRA Origin Natural Beige",
	"TERRA Origin Ocean Blue",
	"TERRA Origin Charcoal Grey",
	"TERRA Origin Earth Brown",
	"TERRA Origin Terra Green",
	"TERRA Classic Low White",
	"TERRA Classic Low Black",
	"TERRA Classic Court Green",
	"TERRA Classic Court Sand",
	"TERRA Heritage Canvas White",
	"TERRA Heritage Canvas Beige",
	"TERRA Heritage Retro Blue",
	"TERRA Heritage Retro Grey",
	"TERRA Essential One White",
	"TERRA Essential One Black",
	"TERRA Move Runner White",
	"TERRA Move Runner Black",
	"TERRA Move Runner Blue",
	"TERRA Move Trail Green",
	"TERRA Move Trail Brown",
	"TERRA Move Trail Sand",
	"TERRA Move Flex Grey",
	"TERRA Move Flex Orange",
	"TERRA Move Knit White",
	"TERRA Move Knit Black",
	"TERRA Active Lite Blue",
	"TERRA Active Lite Green",
	"TERRA Active Pro White",
	"TERRA Active Pro Grey",
	"TERRA Performance Run Black",
	"TERRA Performance Run Orange",
	"TERRA Trail Grip Brown",
	"TERRA Trail Grip Green",
	"TERRA Flex Trainer Sand",
	"TERRA Flex Trainer White",
	"TERRA Limited Atelier White",
	"TERRA Limited Atelier Black",
	"TERRA Limited Archive Green",
	"TERRA Limited Archive Orange",
	"TERRA Limited Studio Blue",
	"TERRA Limited Studio Sand",
	"TERRA Signature Edition White",
	"TERRA Signature Edition Black",
	"TERRA Premium Craft Brown",
	"TERRA Premium Craft Beige",
	"TERRA Exclusive One Grey",
	"TERRA Exclusive One Green",
	"TERRA Collab Series White",
	"TERRA Collab Series Orange",
	"TERRA Archive Edition Blue",
	"TERRA Archive Edition Sand",
	"TERRA Atelier Craft Black",
	"TERRA Atelier Craft Green",
	"TERRA Studio Exclusive White",
	"TERRA Studio Exclusive Brown",
}

// rebrandDescriptions rotate across the renamed products.
var rebrandDescriptions = []string{
	"Minimalist sneaker in recycled ocean plastic with a natural rubber outsole.",
	"Everyday low-top made from organic cotton canvas, produced in European workshops.",
	"Performance runner built on sugarcane EVA foam for a lighter footprint.",
	"Heritage silhouette in chrome-free leather with cork insoles.",
	"Trail-ready sneaker with a recycled polyester mesh upper and aggressive grip.",
	"Clean court shoe in natural materials, designed to age beautifully.",
	"Limited small-batch release combining recycled and plant-based materials.",
	"Breathable knit sneaker made from post-consumer plastic bottles.",
	"Timeless canvas one with undyed organic cotton and natural rubber.",
	"Urban sneaker pairing recycled rubber soles with vegetable-tanned accents.",
	"Featherweight trainer with a sugarcane midsole and recycled laces.",
	"Retro runner reissued in certified organic and recycled fabrics.",
	"Studio edition crafted by hand in numbered small batches.",
	"All-day comfort sneaker with cork footbed and recycled mesh lining.",
	"Signature piece mixing earth-tone suede offcuts with natural rubber.",
}

// RebrandName returns the curated name for the index-th product,
// adding a numeric suffix once the pool runs out so slugs stay unique.
func RebrandName(index int) string {
	if index < len(rebrandNames) {
		return rebrandNames[index]
	}
	return fmt.Sprintf("%s %d", rebrandNames[index%len(rebrandNames)], index/len(rebrandNames)+1)
}

// RebrandDescription returns the description for the index-th product.
func RebrandDescription(index int) string {
	return rebrandDescriptions[index%len(rebrandDescriptions)]
}

// RebrandProduct builds the patch that renames one product, inferring
// the collection from the new name.
func RebrandProduct(index int) (title, slug, shortDescription string, collection models.Collection) {
	title = RebrandName(index)
	return title, fmt.Sprintf("%s-%d", Slugify(title), index), RebrandDescription(index), CollectionFromName(title)
}
