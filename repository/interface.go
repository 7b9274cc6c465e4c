package repository

import (
	"context"

	"enchanted-stage-quote/models"
)

// DrawingAssetRepositoryInterface defines the contract for drawing asset repository operations
type DrawingAssetRepositoryInterface interface {
	ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error)
	Insert(ctx context.Context, asset *models.DrawingAssetDB) error
	GetByDrawingKey(ctx context.Context, drawingKey string) (*models.DrawingAssetDB, error)
	GetByID(ctx context.Context, id int) (*models.DrawingAssetDB, error)
	List(ctx context.Context) ([]models.DrawingAssetDB, error)
}
