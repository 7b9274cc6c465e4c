package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"enchanted-stage-quote/db"
	"enchanted-stage-quote/models"
)

// DrawingAssetRepository handles database operations for drawing assets
// Implements DrawingAssetRepositoryInterface
type DrawingAssetRepository struct{}

// NewDrawingAssetRepository creates a new DrawingAssetRepository
func NewDrawingAssetRepository() *DrawingAssetRepository {
	return &DrawingAssetRepository{}
}

// Ensure DrawingAssetRepository implements DrawingAssetRepositoryInterface
var _ DrawingAssetRepositoryInterface = (*DrawingAssetRepository)(nil)

// ExistsByDriveFileID checks if a drawing asset exists by drive_file_id
func (r *DrawingAssetRepository) ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM drawing_assets WHERE drive_file_id = $1)`
	err := db.DB.QueryRowContext(ctx, query, driveFileID).Scan(&exists)
	if err != nil {
		log.Printf("❌ Error checking existence for drive_file_id %s: %v", driveFileID, err)
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return exists, nil
}

// Insert inserts a new drawing asset into the database
func (r *DrawingAssetRepository) Insert(ctx context.Context, asset *models.DrawingAssetDB) error {
	query := `
		INSERT INTO drawing_assets (drive_file_id, drawing_key, image_url, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (drive_file_id) DO NOTHING
	`

	result, err := db.DB.ExecContext(ctx, query, asset.DriveFileID, asset.DrawingKey, asset.ImageURL)
	if err != nil {
		log.Printf("❌ Error inserting drawing asset %s: %v", asset.DriveFileID, err)
		return fmt.Errorf("failed to insert drawing asset: %w", err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		log.Printf("⏭️  Drawing asset %s already existed, insert skipped", asset.DriveFileID)
	}

	return nil
}

func (r *DrawingAssetRepository) scanOne(row *sql.Row) (*models.DrawingAssetDB, error) {
	var asset models.DrawingAssetDB
	err := row.Scan(&asset.ID, &asset.DriveFileID, &asset.DrawingKey, &asset.ImageURL, &asset.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("drawing asset does not exist")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan drawing asset: %w", err)
	}
	return &asset, nil
}

// GetByDrawingKey returns the drawing asset for a drawing key
func (r *DrawingAssetRepository) GetByDrawingKey(ctx context.Context, drawingKey string) (*models.DrawingAssetDB, error) {
	query := `
		SELECT id, drive_file_id, drawing_key, image_url, created_at::text
		FROM drawing_assets WHERE drawing_key = $1
	`
	return r.scanOne(db.DB.QueryRowContext(ctx, query, drawingKey))
}

// GetByID returns the drawing asset for a row id
func (r *DrawingAssetRepository) GetByID(ctx context.Context, id int) (*models.DrawingAssetDB, error) {
	query := `
		SELECT id, drive_file_id, drawing_key, image_url, created_at::text
		FROM drawing_assets WHERE id = $1
	`
	return r.scanOne(db.DB.QueryRowContext(ctx, query, id))
}

// List returns all drawing assets ordered by drawing key
func (r *DrawingAssetRepository) List(ctx context.Context) ([]models.DrawingAssetDB, error) {
	query := `
		SELECT id, drive_file_id, drawing_key, image_url, created_at::text
		FROM drawing_assets ORDER BY drawing_key ASC
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query drawing assets: %w", err)
	}
	defer rows.Close()

	var assets []models.DrawingAssetDB
	for rows.Next() {
		var asset models.DrawingAssetDB
		if err := rows.Scan(&asset.ID, &asset.DriveFileID, &asset.DrawingKey, &asset.ImageURL, &asset.CreatedAt); err != nil {
			log.Printf("❌ Error scanning drawing asset: %v", err)
			continue
		}
		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate drawing assets: %w", err)
	}

	return assets, nil
}
