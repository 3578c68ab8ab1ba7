// Package v1alpha1 exposes the campaign content API over JSON REST
package v1alpha1

import (
	"net/http"

	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/orchestrators/item"
)

// ItemHandlerConfig holds dependencies for the item handler
type ItemHandlerConfig struct {
	ItemService item.Service
}

// Validate ensures all required dependencies are present
func (c *ItemHandlerConfig) Validate() error {
	if c.ItemService == nil {
		return errors.InvalidArgument("item service is required")
	}
	return nil
}

// ItemHandler serves the forge item routes
type ItemHandler struct {
	itemService item.Service
}

// NewItemHandler creates a new item handler with the given configuration
func NewItemHandler(cfg *ItemHandlerConfig) (*ItemHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &ItemHandler{
		itemService: cfg.ItemService,
	}, nil
}

// Register mounts the item routes on mux
func (h *ItemHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1alpha1/items", h.Create)
	mux.HandleFunc("GET /v1alpha1/items", h.List)
	mux.HandleFunc("GET /v1alpha1/items/{id}", h.Get)
	mux.HandleFunc("PUT /v1alpha1/items/{id}", h.Update)
	mux.HandleFunc("DELETE /v1alpha1/items/{id}", h.Delete)
	mux.HandleFunc("GET /v1alpha1/items/{id}/print", h.Print)
}

// Create handles POST /v1alpha1/items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body ItemJSON
	if err := decodeJSON(r, &body); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	entity, err := itemFromJSON(&body)
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.itemService.CreateItem(r.Context(), &item.CreateItemInput{Item: entity})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, itemToJSON(output.Item))
}

// List handles GET /v1alpha1/items with an optional ?slot= filter
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	output, err := h.itemService.ListItems(r.Context(), &item.ListItemsInput{
		Slot: r.URL.Query().Get("slot"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	items := make([]*ItemJSON, 0, len(output.Items))
	for _, entity := range output.Items {
		items = append(items, itemToJSON(entity))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// Get handles GET /v1alpha1/items/{id}
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	output, err := h.itemService.GetItem(r.Context(), &item.GetItemInput{ID: r.PathValue("id")})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, itemToJSON(output.Item))
}

// Update handles PUT /v1alpha1/items/{id}
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body ItemJSON
	if err := decodeJSON(r, &body); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	entity, err := itemFromJSON(&body)
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	entity.ID = r.PathValue("id")

	output, err := h.itemService.UpdateItem(r.Context(), &item.UpdateItemInput{Item: entity})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, itemToJSON(output.Item))
}

// Delete handles DELETE /v1alpha1/items/{id}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.itemService.DeleteItem(r.Context(), &item.DeleteItemInput{ID: r.PathValue("id")}); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Print handles GET /v1alpha1/items/{id}/print
func (h *ItemHandler) Print(w http.ResponseWriter, r *http.Request) {
	output, err := h.itemService.RenderPrintCard(r.Context(), &item.RenderPrintCardInput{ID: r.PathValue("id")})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, printCardToJSON(output.Card))
}
