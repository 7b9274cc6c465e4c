package controller

import (
	"net/http"
	"strings"

	"enchanted-stage-quote/layout"
	"enchanted-stage-quote/models"
	"enchanted-stage-quote/service"
	"enchanted-stage-quote/store"
)

// StageController handles HTTP requests for stage composition
type StageController struct {
	store        *store.QuoteStore
	stageService *service.StageService
}

// NewStageController creates a new StageController
func NewStageController(quoteStore *store.QuoteStore, stageService *service.StageService) *StageController {
	return &StageController{
		store:        quoteStore,
		stageService: stageService,
	}
}

// ComposeStage handles GET /stage
// Returns the paint-ordered render pass for the current selection
func (c *StageController) ComposeStage(w http.ResponseWriter, r *http.Request) {
	items := c.store.SelectedItemsArray()
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	instances := c.stageService.ComposeStage(ids)
	if instances == nil {
		instances = []models.PlacedInstance{}
	}
	writeJSON(w, http.StatusOK, instances)
}

// positionResponse is the resolver output for one item id
type positionResponse struct {
	ItemID    string           `json:"itemId"`
	Category  layout.Category  `json:"category"`
	ZIndex    int              `json:"zIndex"`
	Placement models.Placement `json:"placement"`
}

// ResolvePosition handles GET /stage/positions/{id}
// Pure lookup: unknown ids resolve to the default centered slot
func (c *StageController) ResolvePosition(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/stage/positions/")
	if id == "" {
		http.Error(w, "item id is required", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, positionResponse{
		ItemID:    id,
		Category:  layout.Classify(id),
		ZIndex:    layout.ResolveZIndex(id),
		Placement: layout.ResolvePosition(id),
	})
}
