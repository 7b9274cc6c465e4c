// Package store owns the quote selection state: which catalog items are
// chosen, in what quantity, and who the customer is. All writes go through
// the public operations and are serialized by a mutex, so two interleaved
// AddItem calls on the same id can never read the same pre-increment
// quantity. Every mutation snapshots the state to the injected persister.
package store

import (
	"context"
	"log"
	"sync"

	"enchanted-stage-quote/models"
)

// QuoteStore is the authoritative in-process container for the current quote
type QuoteStore struct {
	mu        sync.Mutex
	selected  map[string]models.SelectedItem
	customer  models.CustomerInfo
	persister Persister
	name      string
}

// New creates an empty QuoteStore backed by the given persister
func New(persister Persister) *QuoteStore {
	return &QuoteStore{
		selected:  make(map[string]models.SelectedItem),
		persister: persister,
		name:      SnapshotName,
	}
}

// NewHydrated creates a QuoteStore and rehydrates it from the persister's
// prior snapshot, if one exists. A load failure starts the store empty; the
// in-memory state is authoritative from then on.
func NewHydrated(ctx context.Context, persister Persister) *QuoteStore {
	s := New(persister)

	snapshot, err := persister.Load(ctx, s.name)
	if err != nil {
		log.Printf("⚠️  QuoteStore: failed to load snapshot %q, starting empty: %v", s.name, err)
		return s
	}
	if snapshot == nil {
		log.Printf("ℹ️  QuoteStore: no prior snapshot %q, starting empty", s.name)
		return s
	}

	for id, item := range snapshot.SelectedItems {
		if item.Quantity < 1 {
			continue
		}
		s.selected[id] = item
	}
	s.customer = snapshot.CustomerInfo

	log.Printf("✓ QuoteStore: rehydrated %d selections from snapshot %q", len(s.selected), s.name)
	return s
}

// AddItem inserts the item at quantity 1, or increments an existing
// selection. A selection already at the item's maximum quantity is left
// unchanged: the cap is silent, not an error.
func (s *QuoteStore) AddItem(item models.DecorItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxQty := item.MaxQuantity
	if maxQty <= 0 {
		maxQty = models.DefaultMaxQuantity
	}

	current, exists := s.selected[item.ID]
	if exists && current.Quantity >= maxQty {
		return
	}

	if exists {
		current.Quantity++
		s.selected[item.ID] = current
	} else {
		s.selected[item.ID] = models.SelectedItem{DecorItem: item, Quantity: 1}
	}

	s.persistLocked()
}

// RemoveItem deletes the selection for the id; no-op when absent
func (s *QuoteStore) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.selected[id]; !exists {
		return
	}
	delete(s.selected, id)
	s.persistLocked()
}

// UpdateQuantity replaces the stored quantity for an existing selection,
// clamped to [1, MaxQuantity]. A quantity <= 0 deletes the selection; an id
// that was never added is a no-op (initial selection goes through AddItem).
func (s *QuoteStore) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		if _, exists := s.selected[id]; !exists {
			return
		}
		delete(s.selected, id)
		s.persistLocked()
		return
	}

	item, exists := s.selected[id]
	if !exists {
		return
	}

	maxQty := item.MaxQuantity
	if maxQty <= 0 {
		maxQty = models.DefaultMaxQuantity
	}
	if quantity > maxQty {
		quantity = maxQty
	}

	item.Quantity = quantity
	s.selected[id] = item
	s.persistLocked()
}

// SetCustomerInfo shallow-merges the given fields into the customer record;
// fields not present in the update are untouched
func (s *QuoteStore) SetCustomerInfo(update models.CustomerInfoUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customer.Merge(update)
	s.persistLocked()
}

// ClearItems empties the selection map, keeping the customer info
func (s *QuoteStore) ClearItems() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = make(map[string]models.SelectedItem)
	s.persistLocked()
}

// ClearAll empties the selection map and resets the customer info to its
// empty-default shape
func (s *QuoteStore) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = make(map[string]models.SelectedItem)
	s.customer = models.CustomerInfo{}
	s.persistLocked()
}

// IsItemSelected reports whether the id currently has a selection
func (s *QuoteStore) IsItemSelected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.selected[id]
	return exists
}

// GetItemQuantity returns the selected quantity for the id, 0 when absent
func (s *QuoteStore) GetItemQuantity(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selected[id].Quantity
}

// TotalItemCount returns the sum of all selected quantities
func (s *QuoteStore) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.selected {
		count += item.Quantity
	}
	return count
}

// Subtotal returns the sum of price * quantity over all selections
func (s *QuoteStore) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var subtotal int64
	for _, item := range s.selected {
		subtotal += item.LineTotal()
	}
	return subtotal
}

// SelectedItemsArray returns all selections as an order-irrelevant list
func (s *QuoteStore) SelectedItemsArray() []models.SelectedItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.SelectedItem, 0, len(s.selected))
	for _, item := range s.selected {
		items = append(items, item)
	}
	return items
}

// CustomerInfo returns a copy of the current customer record
func (s *QuoteStore) CustomerInfo() models.CustomerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.customer
}

// Snapshot returns a deep copy of the persistable state
func (s *QuoteStore) Snapshot() models.QuoteSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *QuoteStore) snapshotLocked() models.QuoteSnapshot {
	snapshot := models.NewQuoteSnapshot()
	for id, item := range s.selected {
		snapshot.SelectedItems[id] = item
	}
	snapshot.CustomerInfo = s.customer
	return snapshot
}

// persistLocked writes the current snapshot through the persister. The write
// is best-effort: a failure is logged and the in-memory state stays
// authoritative for the rest of the process lifetime.
func (s *QuoteStore) persistLocked() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(context.Background(), s.name, s.snapshotLocked()); err != nil {
		log.Printf("⚠️  QuoteStore: failed to persist snapshot %q (continuing in memory): %v", s.name, err)
	}
}
