package controller

import (
	"net/http"

	"enchanted-stage-quote/catalog"
)

// CatalogController handles HTTP requests for the decor catalog
type CatalogController struct {
	catalog *catalog.Catalog
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(cat *catalog.Catalog) *CatalogController {
	return &CatalogController{catalog: cat}
}

// ListItems handles GET /catalog
// Returns the full catalog, or a single presentation category when the
// category query parameter is set
func (c *CatalogController) ListItems(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		writeJSON(w, http.StatusOK, c.catalog.ItemsByCategory(category))
		return
	}
	writeJSON(w, http.StatusOK, c.catalog.Items())
}

// ListCategories handles GET /catalog/categories
func (c *CatalogController) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.catalog.Categories())
}
