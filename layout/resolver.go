// Package layout maps catalog item ids to on-canvas placements and paint
// order. Resolution is a pure function of the item id: it never consults the
// selection state, never errors, and unknown ids degrade to a centered
// default slot instead of breaking the canvas.
package layout

import "enchanted-stage-quote/models"

// ResolvePosition returns the placement for an item id with z-indexes
// resolved. The result is deterministic: the same id always yields the same
// placement regardless of what else is selected.
func ResolvePosition(id string) models.Placement {
	category := Classify(id)
	table := categoryLayouts[category]

	placement, ok := table.slots[id]
	if !ok {
		placement = table.fallback
	}

	return stampZIndex(placement, ResolveZIndex(id))
}

// ResolveZIndex returns the paint-order key for an item id: the category's
// base layer plus the item's offset, if the slot table declares one.
func ResolveZIndex(id string) int {
	category := Classify(id)
	z := BaseLayer(category)
	if offset, ok := categoryLayouts[category].zOffsets[id]; ok {
		z += offset
	}
	return z
}

// stampZIndex copies the placement with every instance carrying the resolved
// z-index. All sub-instances of a multiple placement share the same layer.
func stampZIndex(placement models.Placement, z int) models.Placement {
	if !placement.IsMultiple() {
		stamped := placement.Single
		stamped.ZIndex = z
		return models.SinglePlacement(stamped)
	}

	slots := make([]models.PositionSlot, len(placement.Slots))
	for i, s := range placement.Slots {
		s.ZIndex = z
		slots[i] = s
	}
	return models.MultiPlacement(slots...)
}
