package models

// DefaultMaxQuantity is applied when a catalog entry does not specify its own limit
const DefaultMaxQuantity = 10

// DecorItem represents a single entry in the decor catalog.
// Catalog entries are loaded once at startup and never mutated.
type DecorItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`       // Whole currency units (USD)
	MaxQuantity int    `json:"maxQuantity"` // Defaults to DefaultMaxQuantity when 0 in config
	Category    string `json:"category"`    // Presentation tag only, not used for layout
	DrawingKey  string `json:"drawingKey"`  // Opaque key consumed by the presentation layer
}

// SelectedItem is a catalog entry plus the quantity the customer has chosen.
// An entry exists in the store only while quantity >= 1.
type SelectedItem struct {
	DecorItem
	Quantity int `json:"quantity"`
}

// LineTotal returns price * quantity for this selection line
func (s SelectedItem) LineTotal() int64 {
	return s.Price * int64(s.Quantity)
}
