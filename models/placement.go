package models

// PositionSlot describes one visual instance of an item on the stage canvas.
// X and Y are the CENTER point of the item as a percentage (0-100) of canvas
// width/height; Width and Height are percentages of canvas dimensions.
// ZIndex is the paint-order key (larger paints on top).
type PositionSlot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	ZIndex int     `json:"zIndex"`
}

// Placement is the resolver output for one catalog item: either a single slot
// or a fixed-length ordered list of slots for items that render multiple
// instances (e.g. a left/right chair pair). Callers must branch on IsMultiple.
type Placement struct {
	Multiple bool           `json:"isMultiple"`
	Single   PositionSlot   `json:"position"`
	Slots    []PositionSlot `json:"positions,omitempty"`
}

// SinglePlacement wraps one slot as a Placement
func SinglePlacement(slot PositionSlot) Placement {
	return Placement{Single: slot}
}

// MultiPlacement wraps an ordered slot list as a Placement
func MultiPlacement(slots ...PositionSlot) Placement {
	return Placement{Multiple: true, Slots: slots}
}

// IsMultiple reports whether the placement expands into several instances
func (p Placement) IsMultiple() bool {
	return p.Multiple
}

// Instances returns the ordered slots of the placement. Single placements
// return a one-element slice so render loops can treat both shapes uniformly;
// the slice index is the stable per-instance index (0..N-1).
func (p Placement) Instances() []PositionSlot {
	if p.Multiple {
		return p.Slots
	}
	return []PositionSlot{p.Single}
}

// PlacedInstance is one resolved, paint-ordered instance in a full stage
// render pass.
type PlacedInstance struct {
	ItemID        string       `json:"itemId"`
	InstanceIndex int          `json:"instanceIndex"` // Used only for animation stagger
	Slot          PositionSlot `json:"slot"`
}
