package service

import (
	"context"

	"enchanted-stage-quote/models"
)

// SyncServiceInterface defines the contract for drawing asset synchronization
type SyncServiceInterface interface {
	SyncDrawingAssets(ctx context.Context, folderID string) ([]models.DrawingAsset, error)
	// SyncDrawingAssetsWithStats synchronizes assets and returns insertion stats:
	// inserted = new rows created, skipped = already existed (by drive_file_id),
	// total = total assets seen in Drive.
	SyncDrawingAssetsWithStats(ctx context.Context, folderID string) (assets []models.DrawingAsset, inserted int, skipped int, total int, err error)
}
