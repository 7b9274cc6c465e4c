package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeStageSortsByZIndexAscending(t *testing.T) {
	s := NewStageService()

	instances := s.ComposeStage([]string{
		"lighting-string-addition",
		"backdrop-white-draping",
		"arch-circular-single",
		"sofa-cream-tufted",
	})

	require.Len(t, instances, 4)
	for i := 1; i < len(instances); i++ {
		assert.LessOrEqual(t, instances[i-1].Slot.ZIndex, instances[i].Slot.ZIndex)
	}
	assert.Equal(t, "backdrop-white-draping", instances[0].ItemID)
	assert.Equal(t, "lighting-string-addition", instances[3].ItemID)
}

func TestComposeStageExpandsMultiSlotItems(t *testing.T) {
	s := NewStageService()

	instances := s.ComposeStage([]string{"chairs-accent-pair", "floral-aisle-boxes"})

	require.Len(t, instances, 6)

	indexesByItem := map[string][]int{}
	for _, inst := range instances {
		indexesByItem[inst.ItemID] = append(indexesByItem[inst.ItemID], inst.InstanceIndex)
	}
	assert.ElementsMatch(t, []int{0, 1}, indexesByItem["chairs-accent-pair"])
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, indexesByItem["floral-aisle-boxes"])
}

func TestComposeStageIsIndependentOfSelectionOrder(t *testing.T) {
	s := NewStageService()

	forward := s.ComposeStage([]string{
		"backdrop-white-draping", "arch-circular-single", "chairs-accent-pair",
	})
	reversed := s.ComposeStage([]string{
		"chairs-accent-pair", "arch-circular-single", "backdrop-white-draping",
	})

	assert.Equal(t, forward, reversed)
}

func TestComposeStageEmptySelection(t *testing.T) {
	s := NewStageService()

	assert.Empty(t, s.ComposeStage(nil))
	assert.Empty(t, s.ComposeStage([]string{}))
}

func TestComposeStageUnknownIDStillRenders(t *testing.T) {
	s := NewStageService()

	instances := s.ComposeStage([]string{"mystery-item-42"})

	require.Len(t, instances, 1)
	assert.Equal(t, 30, instances[0].Slot.ZIndex)
	assert.Equal(t, 50.0, instances[0].Slot.X)
}
