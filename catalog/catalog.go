package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"enchanted-stage-quote/models"
)

// catalogConfig represents the catalog configuration file structure
type catalogConfig struct {
	Items []models.DecorItem `json:"items"`
}

// Catalog is the read-only list of decor items loaded at startup. The core
// never mutates it.
type Catalog struct {
	items []models.DecorItem
	byID  map[string]models.DecorItem
}

// Load reads and validates the catalog configuration file
func Load(configPath string) (*Catalog, error) {
	// Resolve config path
	if !filepath.IsAbs(configPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		configPath = filepath.Join(wd, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog config: %w", err)
	}

	var config catalogConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse catalog config: %w", err)
	}

	catalog, err := New(config.Items)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog config: %w", err)
	}

	log.Printf("✅ Catalog: Successfully loaded %d items from %s", len(catalog.items), configPath)
	return catalog, nil
}

// New builds a catalog from an ordered item list, applying defaults and
// validating entries.
func New(items []models.DecorItem) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog requires at least one item")
	}

	byID := make(map[string]models.DecorItem, len(items))
	normalized := make([]models.DecorItem, 0, len(items))

	for i, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("item at index %d has an empty id", i)
		}
		if _, exists := byID[item.ID]; exists {
			return nil, fmt.Errorf("duplicate item id: %s", item.ID)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("item %s has a negative price", item.ID)
		}
		if item.MaxQuantity < 0 {
			return nil, fmt.Errorf("item %s has a negative max quantity", item.ID)
		}
		if item.MaxQuantity == 0 {
			item.MaxQuantity = models.DefaultMaxQuantity
		}

		byID[item.ID] = item
		normalized = append(normalized, item)
	}

	return &Catalog{items: normalized, byID: byID}, nil
}

// Items returns the catalog entries in configuration order
func (c *Catalog) Items() []models.DecorItem {
	items := make([]models.DecorItem, len(c.items))
	copy(items, c.items)
	return items
}

// Get returns the catalog entry for an id
func (c *Catalog) Get(id string) (models.DecorItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// ItemsByCategory returns the entries tagged with the given presentation category
func (c *Catalog) ItemsByCategory(category string) []models.DecorItem {
	var items []models.DecorItem
	for _, item := range c.items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items
}

// Categories returns the distinct presentation categories in first-seen order
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, item := range c.items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories
}

// Len returns the number of catalog entries
func (c *Catalog) Len() int {
	return len(c.items)
}
