package layout

// Category is the layout classification of a catalog item. It selects the
// slot table and base paint-order layer, and is independent of the catalog's
// presentation "category" tag.
type Category string

const (
	CategoryPlatform     Category = "platform"
	CategoryCarpet       Category = "carpet"
	CategoryBackdrop     Category = "backdrop"
	CategoryAisle        Category = "aisle"
	CategoryAccentPanels Category = "accentPanels"
	CategoryArch         Category = "arch"
	CategoryLanterns     Category = "lanterns"
	CategoryArchFlorals  Category = "archFlorals"
	CategoryDefault      Category = "default"
	CategorySofaFlorals  Category = "sofaFlorals"
	CategorySeating      Category = "seating"
	CategoryCenterpieces Category = "centerpieces"
	CategoryLighting     Category = "lighting"
	CategoryStringLights Category = "stringLights"
)

// Base paint-order layers, lower paints further back. Backdrops sit just
// above the platform and carpet; string lighting paints above everything.
var baseLayers = map[Category]int{
	CategoryPlatform:     5,
	CategoryCarpet:       8,
	CategoryBackdrop:     10,
	CategoryAisle:        12,
	CategoryAccentPanels: 15,
	CategoryArch:         20,
	CategoryLanterns:     22,
	CategoryArchFlorals:  25,
	CategoryDefault:      30,
	CategorySofaFlorals:  35,
	CategorySeating:      40,
	CategoryCenterpieces: 42,
	CategoryLighting:     45,
	CategoryStringLights: 50,
}

// BaseLayer returns the base z-index for a category. Unknown categories get
// the default layer so layering never fails.
func BaseLayer(category Category) int {
	if z, ok := baseLayers[category]; ok {
		return z
	}
	return baseLayers[CategoryDefault]
}
