package service

import (
	"context"
	"fmt"
	"log"

	"enchanted-stage-quote/models"
	"enchanted-stage-quote/repository"
)

// SyncService handles synchronization of drawing assets between Google Drive
// and PostgreSQL. Implements SyncServiceInterface.
type SyncService struct {
	driveService DriveServiceInterface
	repository   repository.DrawingAssetRepositoryInterface
}

// NewSyncService creates a new SyncService
func NewSyncService(driveService DriveServiceInterface, repo repository.DrawingAssetRepositoryInterface) *SyncService {
	return &SyncService{
		driveService: driveService,
		repository:   repo,
	}
}

// Ensure SyncService implements SyncServiceInterface
var _ SyncServiceInterface = (*SyncService)(nil)

// SyncDrawingAssets synchronizes drawing assets from Google Drive to PostgreSQL
// and returns the list of assets found in Drive
func (s *SyncService) SyncDrawingAssets(ctx context.Context, folderID string) ([]models.DrawingAsset, error) {
	assets, _, _, _, err := s.SyncDrawingAssetsWithStats(ctx, folderID)
	return assets, err
}

// SyncDrawingAssetsWithStats synchronizes drawing assets and returns stats.
// inserted = new rows created, skipped = already existed (by drive_file_id),
// total = total assets seen in Drive.
func (s *SyncService) SyncDrawingAssetsWithStats(ctx context.Context, folderID string) (assets []models.DrawingAsset, inserted int, skipped int, total int, err error) {
	log.Printf("🔄 Starting drawing asset sync for folder: %s", folderID)

	driveAssets, err := s.driveService.ListDrawingAssets(folderID)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("failed to list drawing assets from Drive: %w", err)
	}

	log.Printf("📦 Processing %d drawing assets from Google Drive", len(driveAssets))
	total = len(driveAssets)

	for _, asset := range driveAssets {
		exists, err := s.repository.ExistsByDriveFileID(ctx, asset.DriveFileID)
		if err != nil {
			log.Printf("❌ Error checking existence for drive_file_id %s: %v", asset.DriveFileID, err)
			continue
		}

		if exists {
			log.Printf("⏭️  Skipping drive_file_id %s (already exists in database)", asset.DriveFileID)
			skipped++
			continue
		}

		dbAsset := &models.DrawingAssetDB{
			DriveFileID: asset.DriveFileID,
			DrawingKey:  asset.DrawingKey,
			ImageURL:    asset.ImageURL,
		}

		if err := s.repository.Insert(ctx, dbAsset); err != nil {
			log.Printf("❌ Error inserting drive_file_id %s into database: %v", asset.DriveFileID, err)
			continue
		}

		log.Printf("✅ Synced drawing asset %s (drawing_key: %s)", asset.DriveFileID, asset.DrawingKey)
		inserted++
	}

	log.Printf("🎉 Drawing asset sync completed: %d inserted, %d skipped, %d total", inserted, skipped, total)
	return driveAssets, inserted, skipped, total, nil
}
