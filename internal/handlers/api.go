package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"

	"github.com/ADARSH-E404/diet-eco-plan/internal/middleware"
	"github.com/ADARSH-E404/diet-eco-plan/internal/models"
	"github.com/ADARSH-E404/diet-eco-plan/internal/repository"
	"github.com/ADARSH-E404/diet-eco-plan/internal/services"
	"github.com/go-chi/chi/v5"
)

// APIHandler serves token-authenticated programmatic reads plus token
// management for the session-holding user.
type APIHandler struct {
	entryRepo    repository.EntryRepository
	profileRepo  repository.ProfileRepository
	tokenRepo    repository.APITokenRepository
	statsService *services.StatsService
}

func NewAPIHandler(
	entryRepo repository.EntryRepository,
	profileRepo repository.ProfileRepository,
	tokenRepo repository.APITokenRepository,
	statsService *services.StatsService,
) *APIHandler {
	return &APIHandler{
		entryRepo:    entryRepo,
		profileRepo:  profileRepo,
		tokenRepo:    tokenRepo,
		statsService: statsService,
	}
}

func (handler *APIHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUser(ctx)

	entries, err := handler.entryRepo.FindAllForUser(ctx, user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load entries")
		return
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (handler *APIHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUser(ctx)

	profile, err := handler.profileRepo.Load(ctx, user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (handler *APIHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUser(ctx)

	overview, err := handler.statsService.Overview(ctx, user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

// CreateToken mints a new opaque token. The raw value is only ever present
// in this response.
func (handler *APIHandler) CreateToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUser(ctx)

	name := r.FormValue("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	rawToken := generateToken()
	token := models.APIToken{
		Name:            name,
		TokenHash:       repository.HashToken(rawToken),
		CreatedByUserID: user.ID,
	}

	created, err := handler.tokenRepo.Create(ctx, token)
	if err != nil {
		slog.Error("creating token", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create token")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":    created.ID,
		"name":  created.Name,
		"token": rawToken,
	})
}

func (handler *APIHandler) DeleteToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUser(ctx)
	id := chi.URLParam(r, "id")

	if err := handler.tokenRepo.Delete(ctx, id, user.ID); err != nil {
		slog.Error("deleting token", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete token")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func generateToken() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
