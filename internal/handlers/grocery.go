package handlers

import (
	"net/http"

	"github.com/ADARSH-E404/diet-eco-plan/internal/middleware"
	"github.com/ADARSH-E404/diet-eco-plan/internal/models"
	"github.com/ADARSH-E404/diet-eco-plan/internal/services"
	"github.com/go-chi/chi/v5"
)

// GroceryHandler serves the in-memory shopping list. Every response carries
// the full list grouped for display plus the summary panel, so the page
// never needs a second request after a mutation.
type GroceryHandler struct {
	store *services.GroceryStore
}

func NewGroceryHandler(store *services.GroceryStore) *GroceryHandler {
	return &GroceryHandler{store: store}
}

func (handler *GroceryHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	handler.respond(w, handler.store.List(user.ID))
}

func (handler *GroceryHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	name := r.FormValue("name")

	items := handler.store.Update(user.ID, func(items []models.GroceryItem) []models.GroceryItem {
		return services.AddItem(items, name)
	})
	handler.respond(w, items)
}

func (handler *GroceryHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	id := chi.URLParam(r, "id")

	items := handler.store.Update(user.ID, func(items []models.GroceryItem) []models.GroceryItem {
		return services.ToggleItem(items, id)
	})
	handler.respond(w, items)
}

func (handler *GroceryHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	id := chi.URLParam(r, "id")

	items := handler.store.Update(user.ID, func(items []models.GroceryItem) []models.GroceryItem {
		return services.RemoveItem(items, id)
	})
	handler.respond(w, items)
}

func (handler *GroceryHandler) respond(w http.ResponseWriter, items []models.GroceryItem) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":      items,
		"categories": services.Categories(items),
		"summary":    services.Summarize(items),
	})
}
