package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"enchanted-stage-quote/catalog"
	"enchanted-stage-quote/models"
	"enchanted-stage-quote/service"
	"enchanted-stage-quote/store"
)

// QuoteController handles HTTP requests for the quote selection
type QuoteController struct {
	catalog      *catalog.Catalog
	store        *store.QuoteStore
	quoteService *service.QuoteService
}

// NewQuoteController creates a new QuoteController
func NewQuoteController(cat *catalog.Catalog, quoteStore *store.QuoteStore, quoteService *service.QuoteService) *QuoteController {
	return &QuoteController{
		catalog:      cat,
		store:        quoteStore,
		quoteService: quoteService,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}

// GetQuote handles GET /quote
// Returns the current quote summary
func (c *QuoteController) GetQuote(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.quoteService.BuildSummary())
}

// AddItem handles POST /quote/items
// Adds one unit of a catalog item to the quote; an item already at its
// maximum quantity is left unchanged
func (c *QuoteController) AddItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AddItem: Received %s request to %s", r.Method, r.URL.Path)

	var req models.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ AddItem: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.ItemID) == "" {
		http.Error(w, "item_id cannot be empty", http.StatusBadRequest)
		return
	}

	item, ok := c.catalog.Get(req.ItemID)
	if !ok {
		log.Printf("❌ AddItem: Unknown catalog item: %s", req.ItemID)
		http.Error(w, fmt.Sprintf("Catalog item not found: %s", req.ItemID), http.StatusNotFound)
		return
	}

	c.store.AddItem(item)
	log.Printf("✅ AddItem: %s now at quantity %d", item.ID, c.store.GetItemQuantity(item.ID))

	writeJSON(w, http.StatusOK, c.quoteService.BuildSummary())
}

// UpdateQuantity handles PUT/PATCH /quote/items/{id}
// Quantities <= 0 remove the item; quantities above the item maximum are clamped
func (c *QuoteController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/quote/items/")
	if id == "" {
		http.Error(w, "item id is required", http.StatusBadRequest)
		return
	}

	var req models.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateQuantity: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	c.store.UpdateQuantity(id, req.Quantity)
	log.Printf("✅ UpdateQuantity: %s -> %d", id, c.store.GetItemQuantity(id))

	writeJSON(w, http.StatusOK, c.quoteService.BuildSummary())
}

// RemoveItem handles DELETE /quote/items/{id}
func (c *QuoteController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/quote/items/")
	if id == "" {
		http.Error(w, "item id is required", http.StatusBadRequest)
		return
	}

	c.store.RemoveItem(id)
	log.Printf("✅ RemoveItem: %s removed", id)

	writeJSON(w, http.StatusOK, c.quoteService.BuildSummary())
}

// ClearItems handles DELETE /quote/items
// Empties the selection, keeping the customer info
func (c *QuoteController) ClearItems(w http.ResponseWriter, r *http.Request) {
	c.store.ClearItems()
	log.Printf("✅ ClearItems: selection emptied")
	writeJSON(w, http.StatusOK, c.quoteService.BuildSummary())
}

// ClearAll handles DELETE /quote
// Empties the selection and resets the customer info
func (c *QuoteController) ClearAll(w http.ResponseWriter, r *http.Request) {
	c.store.ClearAll()
	log.Printf("✅ ClearAll: quote reset")
	writeJSON(w, http.StatusOK, c.quoteService.BuildSummary())
}

// SetCustomerInfo handles PUT /quote/customer
// Shallow-merges the given fields into the customer record
func (c *QuoteController) SetCustomerInfo(w http.ResponseWriter, r *http.Request) {
	var update models.CustomerInfoUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Printf("❌ SetCustomerInfo: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	c.store.SetCustomerInfo(update)
	writeJSON(w, http.StatusOK, c.store.CustomerInfo())
}

// Submit handles POST /quote/submit
func (c *QuoteController) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Submit: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	response := c.quoteService.Submit(context.Background(), req)
	writeJSON(w, http.StatusOK, response)
}

// RenderQuote handles GET /quote/render
// Serves the printable quote HTML consumed by the PDF generator
func (c *QuoteController) RenderQuote(w http.ResponseWriter, r *http.Request) {
	html, err := c.quoteService.RenderQuoteHTML()
	if err != nil {
		log.Printf("❌ RenderQuote: %v", err)
		http.Error(w, fmt.Sprintf("Failed to render quote: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// DownloadPDF handles GET /quote/pdf
func (c *QuoteController) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	pdf, err := c.quoteService.GeneratePDF(context.Background())
	if err != nil {
		log.Printf("❌ DownloadPDF: %v", err)
		http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="enchanted-stage-quote.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
