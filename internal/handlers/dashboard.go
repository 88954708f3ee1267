package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ADARSH-E404/diet-eco-plan/internal/middleware"
	"github.com/ADARSH-E404/diet-eco-plan/internal/models"
	"github.com/ADARSH-E404/diet-eco-plan/internal/repository"
	"github.com/ADARSH-E404/diet-eco-plan/internal/services"
)

type DashboardHandler struct {
	entryRepo    repository.EntryRepository
	statsService *services.StatsService
}

func NewDashboardHandler(entryRepo repository.EntryRepository, statsService *services.StatsService) *DashboardHandler {
	return &DashboardHandler{entryRepo: entryRepo, statsService: statsService}
}

// Show renders the overview: goal progress plus the most recent meals.
func (handler *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUser(ctx)

	overview, err := handler.statsService.Overview(ctx, user.ID)
	if err != nil {
		slog.Error("building overview", "user", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	entries, err := handler.entryRepo.FindAllForUser(ctx, user.ID)
	if err != nil {
		slog.Error("loading recent entries", "user", user.ID, "error", err)
		entries = nil
	}
	if len(entries) > 5 {
		entries = entries[:5]
	}
	if entries == nil {
		entries = []models.Entry{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":         user.Name,
		"overview":     overview,
		"recent_meals": entries,
	})
}
