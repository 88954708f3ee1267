package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ADARSH-E404/diet-eco-plan/internal/models"
	"github.com/ADARSH-E404/diet-eco-plan/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (handler *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")
	fullName := r.FormValue("full_name")

	user, err := handler.authService.SignUp(r.Context(), email, password, fullName)
	if err != nil {
		if models.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("signing up", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	if err := handler.authService.SetSession(w, user.ID); err != nil {
		slog.Error("setting session", "error", err)
		writeError(w, http.StatusInternalServerError, "session error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": user.ID, "email": user.Email})
}

func (handler *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := handler.authService.SignIn(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		slog.Error("signing in", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	if err := handler.authService.SetSession(w, user.ID); err != nil {
		slog.Error("setting session", "error", err)
		writeError(w, http.StatusInternalServerError, "session error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": user.ID, "email": user.Email})
}

func (handler *AuthHandler) OIDCLogin(w http.ResponseWriter, r *http.Request) {
	if !handler.authService.OIDCConfigured() {
		http.Error(w, "OIDC not configured", http.StatusServiceUnavailable)
		return
	}

	state, err := handler.authService.GenerateState()
	if err != nil {
		slog.Error("generating state", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   300,
	})

	http.Redirect(w, r, handler.authService.LoginURL(state), http.StatusFound)
}

func (handler *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie("oauth_state")
	if err != nil {
		http.Error(w, "Missing state cookie", http.StatusBadRequest)
		return
	}

	if r.URL.Query().Get("state") != stateCookie.Value {
		http.Error(w, "Invalid state", http.StatusBadRequest)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:   "oauth_state",
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Missing code", http.StatusBadRequest)
		return
	}

	user, err := handler.authService.HandleCallback(r.Context(), code)
	if err != nil {
		slog.Error("handling callback", "error", err)
		http.Error(w, "Authentication failed", http.StatusInternalServerError)
		return
	}

	if err := handler.authService.SetSession(w, user.ID); err != nil {
		slog.Error("setting session", "error", err)
		http.Error(w, "Session error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (handler *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	handler.authService.ClearSession(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}
