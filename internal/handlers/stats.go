package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ADARSH-E404/diet-eco-plan/internal/content"
	"github.com/ADARSH-E404/diet-eco-plan/internal/middleware"
	"github.com/ADARSH-E404/diet-eco-plan/internal/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (handler *StatsHandler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUser(ctx)

	monthly, err := handler.statsService.Monthly(ctx, user.ID)
	if err != nil {
		slog.Error("loading monthly stats", "user", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load statistics")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("top"))
	topFoods, err := handler.statsService.TopFoods(ctx, user.ID, limit)
	if err != nil {
		slog.Error("loading top foods", "user", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load statistics")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"monthly":   monthly,
		"top_foods": topFoods,
		"impact":    content.ImpactComparison(),
	})
}
