package service

import (
	"sort"

	"enchanted-stage-quote/layout"
	"enchanted-stage-quote/models"
)

// StageService composes full-canvas render passes from the currently
// selected item ids. Placement comes from the layout resolver alone, so the
// same selection always composes the same stage regardless of the order the
// items were added in.
type StageService struct{}

// NewStageService creates a new StageService
func NewStageService() *StageService {
	return &StageService{}
}

// ComposeStage expands each selected id into its placed instances and sorts
// them by z-index ascending so overlapping items stack in a fixed,
// reproducible paint order. Ties paint in item-id order.
func (s *StageService) ComposeStage(selectedIDs []string) []models.PlacedInstance {
	// Sort the ids first so equal z-index instances keep a stable order
	// independent of selection history.
	ids := make([]string, len(selectedIDs))
	copy(ids, selectedIDs)
	sort.Strings(ids)

	var instances []models.PlacedInstance
	for _, id := range ids {
		placement := layout.ResolvePosition(id)
		for i, slot := range placement.Instances() {
			instances = append(instances, models.PlacedInstance{
				ItemID:        id,
				InstanceIndex: i,
				Slot:          slot,
			})
		}
	}

	sort.SliceStable(instances, func(i, j int) bool {
		return instances[i].Slot.ZIndex < instances[j].Slot.ZIndex
	})

	return instances
}
