package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ADARSH-E404/diet-eco-plan/internal/middleware"
	"github.com/ADARSH-E404/diet-eco-plan/internal/models"
	"github.com/ADARSH-E404/diet-eco-plan/internal/repository"
	"github.com/go-chi/chi/v5"
)

type TrackerHandler struct {
	entryRepo repository.EntryRepository
}

func NewTrackerHandler(entryRepo repository.EntryRepository) *TrackerHandler {
	return &TrackerHandler{entryRepo: entryRepo}
}

// List returns the user's entries newest-first. A store failure degrades to
// an empty list rather than an error page.
func (handler *TrackerHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUser(ctx)

	entries, err := handler.entryRepo.FindAllForUser(ctx, user.ID)
	if err != nil {
		slog.Error("loading entries", "user", user.ID, "error", err)
		entries = nil
	}
	if entries == nil {
		entries = []models.Entry{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}

// Add creates one entry from the form. The created row is not echoed back;
// the page refetches the list to observe it.
func (handler *TrackerHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUser(ctx)

	entry := models.Entry{
		UserID:    user.ID,
		EntryDate: r.FormValue("entry_date"),
		MealType:  models.MealType(r.FormValue("meal_type")),
		FoodName:  r.FormValue("food_name"),
	}

	if calories := strings.TrimSpace(r.FormValue("calories")); calories != "" {
		parsed, err := strconv.Atoi(calories)
		if err != nil {
			writeError(w, http.StatusBadRequest, "calories: must be a whole number")
			return
		}
		entry.Calories = &parsed
	}
	if quantity := r.FormValue("quantity"); quantity != "" {
		entry.Quantity = &quantity
	}
	if notes := r.FormValue("notes"); notes != "" {
		entry.Notes = &notes
	}

	if _, err := handler.entryRepo.Create(ctx, entry); err != nil {
		if !models.IsValidation(err) {
			slog.Error("creating entry", "user", user.ID, "error", err)
		}
		writeValidation(w, err, http.StatusInternalServerError, "failed to add entry")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func (handler *TrackerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUser(ctx)
	id := chi.URLParam(r, "id")

	if err := handler.entryRepo.Delete(ctx, id, user.ID); err != nil {
		slog.Error("deleting entry", "user", user.ID, "entry", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete entry")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
