package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"enchanted-stage-quote/db"
	"enchanted-stage-quote/models"
	"enchanted-stage-quote/store"
)

// SnapshotRepository persists the quote snapshot as a single JSONB row keyed
// by the record name. It implements store.Persister.
type SnapshotRepository struct{}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{}
}

// Ensure SnapshotRepository implements store.Persister
var _ store.Persister = (*SnapshotRepository)(nil)

// Save upserts the snapshot row for the record name
func (r *SnapshotRepository) Save(ctx context.Context, name string, snapshot models.QuoteSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	query := `
		INSERT INTO quote_snapshots (name, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`

	if _, err := db.DB.ExecContext(ctx, query, name, data); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", name, err)
	}

	return nil
}

// Load reads the snapshot row for the record name, returning (nil, nil) when
// no prior record exists
func (r *SnapshotRepository) Load(ctx context.Context, name string) (*models.QuoteSnapshot, error) {
	var data []byte
	query := `SELECT data FROM quote_snapshots WHERE name = $1`

	err := db.DB.QueryRowContext(ctx, query, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", name, err)
	}

	var snapshot models.QuoteSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot %s: %w", name, err)
	}
	if snapshot.SelectedItems == nil {
		snapshot.SelectedItems = make(map[string]models.SelectedItem)
	}

	log.Printf("✓ Loaded snapshot %s (%d selections)", name, len(snapshot.SelectedItems))
	return &snapshot, nil
}
