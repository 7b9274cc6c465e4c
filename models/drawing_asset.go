package models

// DrawingAsset represents an item drawing discovered in Google Drive
type DrawingAsset struct {
	DriveFileID string `json:"driveFileId"`
	FileName    string `json:"fileName"`
	DrawingKey  string `json:"drawingKey"` // Derived from the file name, matches DecorItem.DrawingKey
	ImageURL    string `json:"imageUrl"`
}

// DrawingAssetDB represents a drawing asset row in the database
type DrawingAssetDB struct {
	ID          int    `json:"id"`
	DriveFileID string `json:"driveFileId"`
	DrawingKey  string `json:"drawingKey"`
	ImageURL    string `json:"imageUrl"`
	CreatedAt   string `json:"createdAt"`
}
