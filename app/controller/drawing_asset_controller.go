package controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"enchanted-stage-quote/models"
	"enchanted-stage-quote/repository"
	"enchanted-stage-quote/service"
)

// DrawingAssetController handles HTTP requests for item drawing assets
type DrawingAssetController struct {
	syncService  service.SyncServiceInterface
	driveService service.DriveServiceInterface
	repository   repository.DrawingAssetRepositoryInterface
}

// NewDrawingAssetController creates a new DrawingAssetController
func NewDrawingAssetController(
	syncService service.SyncServiceInterface,
	driveService service.DriveServiceInterface,
	repo repository.DrawingAssetRepositoryInterface,
) *DrawingAssetController {
	return &DrawingAssetController{
		syncService:  syncService,
		driveService: driveService,
		repository:   repo,
	}
}

// LoadAssets handles GET /admin/drawing-assets/load?folderId=...
// Fetches drawing images from Google Drive, syncs them into the database,
// and returns the sync stats
func (c *DrawingAssetController) LoadAssets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	folderID := r.URL.Query().Get("folderId")
	if folderID == "" {
		http.Error(w, "folderId query parameter is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	assets, inserted, skipped, total, err := c.syncService.SyncDrawingAssetsWithStats(ctx, folderID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to load and sync drawing assets: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Assets   []models.DrawingAsset `json:"assets"`
		Inserted int                   `json:"inserted"`
		Skipped  int                   `json:"skipped"`
		Total    int                   `json:"total"`
	}{Assets: assets, Inserted: inserted, Skipped: skipped, Total: total})
}

// ListAssets handles GET /admin/drawing-assets
func (c *DrawingAssetController) ListAssets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	assets, err := c.repository.List(context.Background())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list drawing assets: %v", err), http.StatusInternalServerError)
		return
	}
	if assets == nil {
		assets = []models.DrawingAssetDB{}
	}

	writeJSON(w, http.StatusOK, assets)
}

// GetOptimizedImage handles GET /admin/drawing-assets/{id}/image?size=thumb|medium
// Serves the optimized drawing image, downloading and caching it on first use
func (c *DrawingAssetController) GetOptimizedImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Path format: /admin/drawing-assets/{id}/image
	path := strings.TrimPrefix(r.URL.Path, "/admin/drawing-assets/")
	idStr := strings.TrimSuffix(path, "/image")
	assetID, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid drawing asset id", http.StatusBadRequest)
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		size = "medium"
	}

	cachePath := service.GetCachePath(assetID, size)
	if service.CacheExists(cachePath) {
		data, err := service.ReadFromCache(cachePath)
		if err == nil {
			w.Header().Set("Content-Type", "image/jpeg")
			w.Header().Set("Cache-Control", "public, max-age=86400")
			w.Write(data)
			return
		}
		log.Printf("⚠️  Cache read failed for %s, regenerating: %v", cachePath, err)
	}

	ctx := context.Background()
	asset, err := c.repository.GetByID(ctx, assetID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Drawing asset not found: %v", err), http.StatusNotFound)
		return
	}

	raw, err := c.driveService.DownloadImage(asset.DriveFileID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to download drawing: %v", err), http.StatusInternalServerError)
		return
	}

	optimized, err := service.OptimizeImage(raw, size)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to optimize drawing: %v", err), http.StatusInternalServerError)
		return
	}

	if err := service.SaveToCache(cachePath, optimized); err != nil {
		log.Printf("⚠️  Failed to cache image %s: %v", cachePath, err)
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(optimized)
}
