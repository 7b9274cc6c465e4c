package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"enchanted-stage-quote/app/controller"
	"enchanted-stage-quote/app/router"
	"enchanted-stage-quote/catalog"
	"enchanted-stage-quote/db"
	"enchanted-stage-quote/repository"
	"enchanted-stage-quote/service"
	"enchanted-stage-quote/store"
)

// Initialize wires the application and returns its HTTP handler
func Initialize() (http.Handler, error) {
	ctx := context.Background()

	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	// Load the decor catalog
	catalogPath := os.Getenv("CATALOG_CONFIG")
	if catalogPath == "" {
		catalogPath = "configs/catalog.json"
	}
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, err
	}

	// Rehydrate the quote store from the persisted snapshot
	snapshotRepo := repository.NewSnapshotRepository()
	quoteStore := store.NewHydrated(ctx, snapshotRepo)

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		baseURL = "http://localhost:" + port
	}

	quoteService := service.NewQuoteService(quoteStore, baseURL)
	stageService := service.NewStageService()

	controllers := &router.Controllers{
		Catalog: controller.NewCatalogController(cat),
		Quote:   controller.NewQuoteController(cat, quoteStore, quoteService),
		Stage:   controller.NewStageController(quoteStore, stageService),
	}

	// Drawing asset sync is optional: it needs Drive credentials
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath != "" {
		driveService, err := service.NewDriveService(credentialsPath)
		if err != nil {
			return nil, err
		}
		drawingAssetRepo := repository.NewDrawingAssetRepository()
		syncService := service.NewSyncService(driveService, drawingAssetRepo)
		controllers.DrawingAsset = controller.NewDrawingAssetController(syncService, driveService, drawingAssetRepo)

		if err := service.EnsureCacheDir(); err != nil {
			return nil, err
		}
	} else {
		log.Printf("ℹ️  GOOGLE_APPLICATION_CREDENTIALS not set, drawing asset sync disabled")
	}

	return router.SetupRoutes(controllers), nil
}
