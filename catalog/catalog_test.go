package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enchanted-stage-quote/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `{
		"items": [
			{"id": "arch-circular-single", "name": "Circular Arch", "price": 450, "maxQuantity": 1, "category": "arches", "drawingKey": "arch-circular-single"},
			{"id": "floral-centerpieces", "name": "Floral Centerpieces", "price": 150, "category": "florals", "drawingKey": "floral-centerpieces"}
		]
	}`)

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())

	arch, ok := cat.Get("arch-circular-single")
	require.True(t, ok)
	assert.Equal(t, int64(450), arch.Price)
	assert.Equal(t, 1, arch.MaxQuantity)

	// Unspecified maxQuantity defaults to 10.
	florals, ok := cat.Get("floral-centerpieces")
	require.True(t, ok)
	assert.Equal(t, models.DefaultMaxQuantity, florals.MaxQuantity)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse")
}

func TestNewRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name  string
		items []models.DecorItem
	}{
		{"empty catalog", nil},
		{"empty id", []models.DecorItem{{Name: "x", Price: 1}}},
		{"duplicate id", []models.DecorItem{
			{ID: "a", Name: "x", Price: 1},
			{ID: "a", Name: "y", Price: 2},
		}},
		{"negative price", []models.DecorItem{{ID: "a", Name: "x", Price: -1}}},
		{"negative max quantity", []models.DecorItem{{ID: "a", Name: "x", Price: 1, MaxQuantity: -2}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.items)
			assert.Error(t, err)
		})
	}
}

func TestItemsReturnsCopyInConfigOrder(t *testing.T) {
	cat, err := New([]models.DecorItem{
		{ID: "b-item", Name: "B", Price: 2},
		{ID: "a-item", Name: "A", Price: 1},
	})
	require.NoError(t, err)

	items := cat.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "b-item", items[0].ID)

	// Mutating the returned slice must not affect the catalog.
	items[0].Name = "mutated"
	fresh, _ := cat.Get("b-item")
	assert.Equal(t, "B", fresh.Name)
}

func TestCategories(t *testing.T) {
	cat, err := New([]models.DecorItem{
		{ID: "a", Name: "A", Price: 1, Category: "arches"},
		{ID: "b", Name: "B", Price: 1, Category: "florals"},
		{ID: "c", Name: "C", Price: 1, Category: "arches"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"arches", "florals"}, cat.Categories())
	assert.Len(t, cat.ItemsByCategory("arches"), 2)
	assert.Empty(t, cat.ItemsByCategory("seating"))
}
