package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enchanted-stage-quote/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		id       string
		expected Category
	}{
		{"backdrop-white-draping", CategoryBackdrop},
		{"backdrop-fairy-lights", CategoryBackdrop},
		{"arch-circular-single", CategoryArch},
		{"arch-hexagon", CategoryArch},
		{"floral-arch-arrangement", CategoryArchFlorals},
		{"floral-sofa-wrap", CategorySofaFlorals},
		{"floral-aisle-boxes", CategoryAisle},
		{"floral-centerpieces", CategoryCenterpieces},
		{"sofa-cream-tufted", CategorySeating},
		{"chairs-accent-pair", CategorySeating},
		{"cushions-floor-set", CategorySeating},
		{"lighting-pillar-candles", CategoryLighting},
		{"lighting-uplighting", CategoryLighting},
		{"lighting-string-addition", CategoryStringLights},
		{"accent-gold-panels", CategoryAccentPanels},
		{"accent-mirror-frame", CategoryAccentPanels},
		{"accent-lantern-set", CategoryLanterns},
		{"accent-aisle-runner", CategoryAisle},
		{"stage-white-riser", CategoryPlatform},
		{"stage-steps", CategoryPlatform},
		{"stage-carpet", CategoryCarpet},
		// Unknown ids fall through to the default category.
		{"mystery-item-42", CategoryDefault},
		{"", CategoryDefault},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.id))
		})
	}
}

func TestExactRulesWinOverPrefixRules(t *testing.T) {
	// lighting-string-addition shares the lighting- prefix but paints on its
	// own layer above the rest of the lighting category.
	assert.Equal(t, CategoryStringLights, Classify("lighting-string-addition"))
	assert.Equal(t, CategoryLighting, Classify("lighting-pillar-candles"))

	assert.Equal(t, CategoryLanterns, Classify("accent-lantern-set"))
	assert.Equal(t, CategoryAccentPanels, Classify("accent-gold-panels"))
}

func TestResolvePositionIsPure(t *testing.T) {
	ids := []string{"arch-circular-single", "chairs-accent-pair", "mystery-item-42"}
	for _, id := range ids {
		first := ResolvePosition(id)
		second := ResolvePosition(id)
		assert.Equal(t, first, second, "ResolvePosition(%q) must be deterministic", id)
	}
}

func TestResolvePositionSingleSlot(t *testing.T) {
	placement := ResolvePosition("arch-circular-single")

	require.False(t, placement.IsMultiple())
	assert.Equal(t, models.PositionSlot{X: 50, Y: 38, Width: 28, Height: 48, ZIndex: 20}, placement.Single)

	instances := placement.Instances()
	require.Len(t, instances, 1)
	assert.Equal(t, placement.Single, instances[0])
}

func TestResolvePositionMultiSlotPairs(t *testing.T) {
	tests := []struct {
		id    string
		count int
	}{
		{"chairs-accent-pair", 2},
		{"floral-sofa-wrap", 2},
		{"lighting-pillar-candles", 2},
		{"lighting-candle-cluster", 2},
		{"lighting-uplighting", 2},
		{"accent-gold-panels", 2},
		{"accent-lantern-set", 2},
		{"floral-centerpieces", 2},
		{"floral-aisle-boxes", 4},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			placement := ResolvePosition(tc.id)
			require.True(t, placement.IsMultiple())
			require.Len(t, placement.Slots, tc.count)

			// Every sub-instance shares the item's resolved z-index.
			z := ResolveZIndex(tc.id)
			for i, slot := range placement.Slots {
				assert.Equal(t, z, slot.ZIndex, "instance %d of %s", i, tc.id)
			}
		})
	}
}

func TestResolvePositionSymmetricPair(t *testing.T) {
	placement := ResolvePosition("chairs-accent-pair")

	require.True(t, placement.IsMultiple())
	require.Len(t, placement.Slots, 2)
	left, right := placement.Slots[0], placement.Slots[1]
	assert.Equal(t, 35.0, left.X)
	assert.Equal(t, 65.0, right.X)
	assert.Equal(t, left.Y, right.Y)
	assert.Equal(t, left.ZIndex, right.ZIndex)
}

func TestResolveZIndex(t *testing.T) {
	tests := []struct {
		id       string
		expected int
	}{
		{"stage-white-riser", 5},
		{"stage-steps", 6},
		{"stage-carpet", 8},
		{"backdrop-sequin-gold", 10},
		{"accent-aisle-runner", 12},
		{"floral-aisle-boxes", 14},
		{"accent-gold-panels", 15},
		{"accent-mirror-frame", 16},
		{"arch-circular-single", 20},
		{"accent-lantern-set", 22},
		{"floral-arch-arrangement", 25},
		{"mystery-item-42", 30},
		{"floral-sofa-wrap", 35},
		{"sofa-cream-tufted", 40},
		{"cushions-floor-set", 42},
		{"floral-centerpieces", 42},
		{"lighting-pillar-candles", 45},
		{"lighting-string-addition", 50},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolveZIndex(tc.id))
		})
	}
}

func TestBackdropPaintsBelowArch(t *testing.T) {
	assert.Less(t, ResolveZIndex("backdrop-white-draping"), ResolveZIndex("arch-circular-single"))
	assert.Less(t, ResolveZIndex("arch-circular-single"), ResolveZIndex("floral-arch-arrangement"))
	assert.Less(t, ResolveZIndex("lighting-pillar-candles"), ResolveZIndex("lighting-string-addition"))
}

func TestUnknownIDFallsBackToDefaultSlot(t *testing.T) {
	placement := ResolvePosition("mystery-item-42")

	require.False(t, placement.IsMultiple())
	assert.Equal(t, models.PositionSlot{X: 50, Y: 50, Width: 20, Height: 20, ZIndex: 30}, placement.Single)
}

func TestKnownCategoryUnknownIDUsesCategoryFallback(t *testing.T) {
	// A new backdrop without its own table entry still lands on the backdrop
	// layer at the backdrop default slot.
	placement := ResolvePosition("backdrop-emerald-velvet")

	require.False(t, placement.IsMultiple())
	assert.Equal(t, 10, placement.Single.ZIndex)
	assert.Equal(t, 50.0, placement.Single.X)
	assert.Equal(t, 25.0, placement.Single.Y)
}

func TestBaseLayerUnknownCategory(t *testing.T) {
	assert.Equal(t, 30, BaseLayer(Category("nonexistent")))
}
