package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ADARSH-E404/diet-eco-plan/internal/middleware"
	"github.com/ADARSH-E404/diet-eco-plan/internal/models"
	"github.com/ADARSH-E404/diet-eco-plan/internal/repository"
)

type ProfileHandler struct {
	profileRepo repository.ProfileRepository
}

func NewProfileHandler(profileRepo repository.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo}
}

func (handler *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUser(ctx)

	profile, err := handler.profileRepo.Load(ctx, user.ID)
	if err != nil {
		slog.Error("loading profile", "user", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"profile": profile,
		"email":   user.Email,
	})
}

// Save parses the calorie-goal text at this boundary; non-numeric input is a
// surfaced error, never silently coerced.
func (handler *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUser(ctx)

	goalText := strings.TrimSpace(r.FormValue("calorie_goal"))
	goal, err := strconv.Atoi(goalText)
	if err != nil {
		writeError(w, http.StatusBadRequest, "calorie_goal: must be a whole number")
		return
	}

	fields := repository.ProfileFields{
		FullName:       r.FormValue("full_name"),
		Phone:          r.FormValue("phone"),
		Location:       r.FormValue("location"),
		DietPreference: models.DietPreference(r.FormValue("diet_preference")),
		CalorieGoal:    goal,
	}

	if err := handler.profileRepo.Save(ctx, user.ID, fields); err != nil {
		if !models.IsValidation(err) {
			slog.Error("saving profile", "user", user.ID, "error", err)
		}
		writeValidation(w, err, http.StatusInternalServerError, "failed to save profile")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}
