package layout

import "enchanted-stage-quote/models"

// categoryLayout is the slot table for one layout category. Slot coordinates
// are center-point percentages of the canvas; z-indexes are resolved
// separately from the category base layer plus an optional per-id offset.
type categoryLayout struct {
	slots    map[string]models.Placement
	fallback models.Placement
	zOffsets map[string]int
}

func slot(x, y, width, height float64) models.PositionSlot {
	return models.PositionSlot{X: x, Y: y, Width: width, Height: height}
}

func single(x, y, width, height float64) models.Placement {
	return models.SinglePlacement(slot(x, y, width, height))
}

// Slot tables for each category. Backdrops span the full width at the back,
// arches center in front of them, seating holds the stage center, lighting
// and accents mirror symmetrically on the sides.
var categoryLayouts = map[Category]categoryLayout{
	CategoryBackdrop: {
		slots: map[string]models.Placement{
			"backdrop-white-draping": single(50, 25, 92, 45),
			"backdrop-fairy-lights":  single(50, 25, 92, 45),
			"backdrop-sequin-gold":   single(50, 25, 92, 45),
			"backdrop-black-draping": single(50, 25, 92, 45),
		},
		fallback: single(50, 25, 92, 45),
	},
	CategoryArch: {
		slots: map[string]models.Placement{
			"arch-circular-single": single(50, 38, 28, 48),
			"arch-triple-set":      single(50, 36, 50, 52),
			"arch-hexagon":         single(50, 38, 26, 46),
			"arch-rectangle":       single(50, 38, 30, 48),
		},
		fallback: single(50, 38, 28, 48),
	},
	CategoryArchFlorals: {
		slots: map[string]models.Placement{
			"floral-arch-arrangement": single(50, 20, 42, 22),
		},
		fallback: single(50, 20, 42, 22),
	},
	CategorySeating: {
		slots: map[string]models.Placement{
			"sofa-cream-tufted": single(50, 68, 30, 14),
			"sofa-velvet-blush": single(50, 68, 28, 13),
			"chairs-accent-pair": models.MultiPlacement(
				slot(35, 68, 10, 12),
				slot(65, 68, 10, 12),
			),
			"cushions-floor-set": single(50, 80, 40, 8),
		},
		fallback: single(50, 68, 30, 14),
		zOffsets: map[string]int{
			"cushions-floor-set": 2, // Floor cushions paint above the sofas
		},
	},
	CategorySofaFlorals: {
		slots: map[string]models.Placement{
			"floral-sofa-wrap": models.MultiPlacement(
				slot(32, 65, 14, 14),
				slot(68, 65, 14, 14),
			),
		},
		fallback: single(50, 65, 14, 14),
	},
	CategoryLighting: {
		slots: map[string]models.Placement{
			"lighting-pillar-candles": models.MultiPlacement(
				slot(18, 62, 8, 18),
				slot(82, 62, 8, 18),
			),
			"lighting-candle-cluster": models.MultiPlacement(
				slot(20, 72, 10, 12),
				slot(80, 72, 10, 12),
			),
			"lighting-uplighting": models.MultiPlacement(
				slot(8, 50, 6, 40),
				slot(92, 50, 6, 40),
			),
		},
		fallback: single(50, 62, 10, 16),
	},
	CategoryStringLights: {
		slots: map[string]models.Placement{
			"lighting-string-addition": single(50, 8, 88, 10),
		},
		fallback: single(50, 8, 88, 10),
	},
	CategoryAccentPanels: {
		slots: map[string]models.Placement{
			"accent-gold-panels": models.MultiPlacement(
				slot(10, 42, 7, 35),
				slot(90, 42, 7, 35),
			),
			"accent-mirror-frame": single(50, 35, 14, 22),
		},
		fallback: single(50, 42, 10, 30),
		zOffsets: map[string]int{
			"accent-mirror-frame": 1,
		},
	},
	CategoryLanterns: {
		slots: map[string]models.Placement{
			"accent-lantern-set": models.MultiPlacement(
				slot(14, 50, 8, 16),
				slot(86, 50, 8, 16),
			),
		},
		fallback: single(50, 50, 8, 16),
	},
	CategoryAisle: {
		slots: map[string]models.Placement{
			"accent-aisle-runner": single(50, 88, 18, 22),
			"floral-aisle-boxes": models.MultiPlacement(
				slot(38, 82, 8, 10),
				slot(62, 82, 8, 10),
				slot(38, 92, 8, 10),
				slot(62, 92, 8, 10),
			),
		},
		fallback: single(50, 88, 18, 22),
		zOffsets: map[string]int{
			"floral-aisle-boxes": 2, // Aisle boxes sit on top of the runner
		},
	},
	CategoryCenterpieces: {
		slots: map[string]models.Placement{
			"floral-centerpieces": models.MultiPlacement(
				slot(22, 68, 10, 18),
				slot(78, 68, 10, 18),
			),
		},
		fallback: single(50, 68, 10, 18),
	},
	CategoryPlatform: {
		slots: map[string]models.Placement{
			"stage-white-riser": single(50, 78, 75, 18),
			"stage-steps":       single(50, 92, 28, 12),
		},
		fallback: single(50, 78, 75, 18),
		zOffsets: map[string]int{
			"stage-steps": 1,
		},
	},
	CategoryCarpet: {
		slots: map[string]models.Placement{
			"stage-carpet": single(50, 72, 55, 22),
		},
		fallback: single(50, 72, 55, 22),
	},
	// Catch-all for catalog entries without a layout rule: a visible
	// placeholder at canvas center so a missing table entry never breaks
	// the canvas.
	CategoryDefault: {
		fallback: single(50, 50, 20, 20),
	},
}
