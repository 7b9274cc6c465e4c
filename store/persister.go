package store

import (
	"context"

	"enchanted-stage-quote/models"
)

// SnapshotName is the key under which the quote snapshot is persisted
const SnapshotName = "ak-enchanted-quote"

// Persister is the durable-storage collaborator injected into the store. It
// is called after every successful mutation; failures are treated as a
// degraded, non-fatal condition and never surfaced to store callers.
type Persister interface {
	// Save writes the snapshot under the given record name.
	Save(ctx context.Context, name string, snapshot models.QuoteSnapshot) error
	// Load reads the snapshot for the record name, returning (nil, nil)
	// when no prior record exists.
	Load(ctx context.Context, name string) (*models.QuoteSnapshot, error)
}

// NoopPersister discards snapshots. Useful for tests and for running without
// a database.
type NoopPersister struct{}

var _ Persister = (*NoopPersister)(nil)

// Save discards the snapshot
func (NoopPersister) Save(ctx context.Context, name string, snapshot models.QuoteSnapshot) error {
	return nil
}

// Load reports that no prior record exists
func (NoopPersister) Load(ctx context.Context, name string) (*models.QuoteSnapshot, error) {
	return nil, nil
}
