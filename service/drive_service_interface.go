package service

import "enchanted-stage-quote/models"

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListDrawingAssets(folderID string) ([]models.DrawingAsset, error)
	DownloadImage(fileID string) ([]byte, error)
}
