package router

import (
	"net/http"
	"strings"

	"enchanted-stage-quote/app/controller"
)

type Controllers struct {
	Catalog      *controller.CatalogController
	Quote        *controller.QuoteController
	Stage        *controller.StageController
	DrawingAsset *controller.DrawingAssetController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes wires all routes onto a fresh mux so multiple instances (e.g.
// in tests) don't collide on the default mux
func SetupRoutes(controllers *Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Catalog routes (read-only)
	mux.HandleFunc("/catalog", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Catalog.ListItems(w, r)
	})
	mux.HandleFunc("/catalog/categories", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Catalog.ListCategories(w, r)
	})

	// Quote routes - handles GET (summary) and DELETE (clear all)
	mux.HandleFunc("/quote", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			controllers.Quote.GetQuote(w, r)
		case http.MethodDelete:
			controllers.Quote.ClearAll(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Quote item collection - POST adds an item, DELETE clears the selection
	mux.HandleFunc("/quote/items", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			controllers.Quote.AddItem(w, r)
		case http.MethodDelete:
			controllers.Quote.ClearItems(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Quote item by id - PUT/PATCH sets quantity, DELETE removes
	mux.HandleFunc("/quote/items/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut, http.MethodPatch:
			controllers.Quote.UpdateQuantity(w, r)
		case http.MethodDelete:
			controllers.Quote.RemoveItem(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/quote/customer", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut && r.Method != http.MethodPatch {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Quote.SetCustomerInfo(w, r)
	})

	mux.HandleFunc("/quote/submit", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Quote.Submit(w, r)
	})

	mux.HandleFunc("/quote/render", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Quote.RenderQuote(w, r)
	})

	mux.HandleFunc("/quote/pdf", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Quote.DownloadPDF(w, r)
	})

	// Stage composition routes
	mux.HandleFunc("/stage", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Stage.ComposeStage(w, r)
	})
	mux.HandleFunc("/stage/positions/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Stage.ResolvePosition(w, r)
	})

	// Drawing asset routes (admin). Only wired when Drive is configured.
	if controllers.DrawingAsset != nil {
		mux.HandleFunc("/admin/drawing-assets", controllers.DrawingAsset.ListAssets)
		mux.HandleFunc("/admin/drawing-assets/load", controllers.DrawingAsset.LoadAssets)
		mux.HandleFunc("/admin/drawing-assets/", func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/image") {
				controllers.DrawingAsset.GetOptimizedImage(w, r)
				return
			}
			http.Error(w, "Not found", http.StatusNotFound)
		})
	}

	return mux
}
