package models

// QuoteSnapshot is the single durable record written after every store
// mutation and read once at startup to rehydrate the store.
type QuoteSnapshot struct {
	SelectedItems map[string]SelectedItem `json:"selectedItems"`
	CustomerInfo  CustomerInfo            `json:"customerInfo"`
}

// NewQuoteSnapshot returns an empty snapshot with an allocated item map
func NewQuoteSnapshot() QuoteSnapshot {
	return QuoteSnapshot{
		SelectedItems: make(map[string]SelectedItem),
	}
}
