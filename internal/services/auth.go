package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ADARSH-E404/diet-eco-plan/internal/config"
	"github.com/ADARSH-E404/diet-eco-plan/internal/models"
	"github.com/ADARSH-E404/diet-eco-plan/internal/repository"
	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gorilla/securecookie"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords so the login response does not reveal which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	oauthConfig  *oauth2.Config
	oidcVerifier *oidc.IDTokenVerifier
	secureCookie *securecookie.SecureCookie
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
}

type SessionData struct {
	UserID string `json:"user_id"`
}

func NewAuthService(ctx context.Context, cfg config.Config, userRepo repository.UserRepository, profileRepo repository.ProfileRepository) (*AuthService, error) {
	service := &AuthService{
		secureCookie: securecookie.New([]byte(cfg.SessionSecret), nil),
		userRepo:     userRepo,
		profileRepo:  profileRepo,
	}

	if cfg.OIDCIssuer == "" {
		slog.Info("OIDC not configured, password auth only")
		return service, nil
	}

	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		return nil, fmt.Errorf("creating OIDC provider: %w", err)
	}

	service.oauthConfig = &oauth2.Config{
		ClientID:     cfg.OIDCClientID,
		ClientSecret: cfg.OIDCClientSecret,
		RedirectURL:  cfg.OIDCRedirectURL,
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}
	service.oidcVerifier = provider.Verifier(&oidc.Config{ClientID: cfg.OIDCClientID})

	return service, nil
}

// SignUp creates a user with a bcrypt password hash and provisions the
// profile row every page reads from.
func (service *AuthService) SignUp(ctx context.Context, email, password, fullName string) (models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return models.User{}, models.NewValidationError("email", "email is required")
	}
	if password == "" {
		return models.User{}, models.NewValidationError("password", "password is required")
	}

	if _, err := service.userRepo.FindByEmail(ctx, email); err == nil {
		return models.User{}, models.NewValidationError("email", "email is already registered")
	} else if !errors.Is(err, models.ErrNotFound) {
		return models.User{}, fmt.Errorf("checking existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	user, err := service.userRepo.Create(ctx, models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         fullName,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("creating user: %w", err)
	}

	if err := service.profileRepo.Create(ctx, models.Profile{ID: user.ID, FullName: fullName}); err != nil {
		return models.User{}, fmt.Errorf("provisioning profile: %w", err)
	}

	slog.Info("registered user", "id", user.ID, "email", user.Email)
	return user, nil
}

func (service *AuthService) SignIn(ctx context.Context, email, password string) (models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := service.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("looking up user: %w", err)
	}
	if user.PasswordHash == "" {
		return models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) OIDCConfigured() bool {
	return service.oauthConfig != nil
}

func (service *AuthService) LoginURL(state string) string {
	if service.oauthConfig == nil {
		return ""
	}
	return service.oauthConfig.AuthCodeURL(state)
}

func (service *AuthService) GenerateState() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generating state: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

func (service *AuthService) HandleCallback(ctx context.Context, code string) (models.User, error) {
	if service.oauthConfig == nil {
		return models.User{}, errors.New("OIDC not configured")
	}

	token, err := service.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return models.User{}, fmt.Errorf("exchanging code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return models.User{}, errors.New("no id_token in response")
	}

	idToken, err := service.oidcVerifier.Verify(ctx, rawIDToken)
	if err != nil {
		return models.User{}, fmt.Errorf("verifying id token: %w", err)
	}

	var claims struct {
		Subject string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return models.User{}, fmt.Errorf("parsing claims: %w", err)
	}

	return service.provisionOIDCUser(ctx, claims.Subject, claims.Email, claims.Name)
}

func (service *AuthService) provisionOIDCUser(ctx context.Context, subject, email, name string) (models.User, error) {
	existing, err := service.userRepo.FindByOIDCSubject(ctx, subject)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return models.User{}, fmt.Errorf("looking up user: %w", err)
	}

	user, err := service.userRepo.Create(ctx, models.User{
		Email:       strings.ToLower(email),
		OIDCSubject: &subject,
		Name:        name,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("creating user: %w", err)
	}

	if err := service.profileRepo.Create(ctx, models.Profile{ID: user.ID, FullName: name}); err != nil {
		return models.User{}, fmt.Errorf("provisioning profile: %w", err)
	}

	slog.Info("provisioned OIDC user", "id", user.ID, "email", user.Email)
	return user, nil
}

func (service *AuthService) SetSession(w http.ResponseWriter, userID string) error {
	encoded, err := json.Marshal(SessionData{UserID: userID})
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}

	value, err := service.secureCookie.Encode("session", string(encoded))
	if err != nil {
		return fmt.Errorf("encoding session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 30,
	})
	return nil
}

func (service *AuthService) GetSession(r *http.Request) (SessionData, error) {
	cookie, err := r.Cookie("session")
	if err != nil {
		return SessionData{}, fmt.Errorf("no session cookie: %w", err)
	}

	var decoded string
	if err := service.secureCookie.Decode("session", cookie.Value, &decoded); err != nil {
		return SessionData{}, fmt.Errorf("decoding session cookie: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal([]byte(decoded), &session); err != nil {
		return SessionData{}, fmt.Errorf("unmarshaling session: %w", err)
	}
	return session, nil
}

func (service *AuthService) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// GetCurrentUser resolves the session on every request; any failure means
// unauthenticated, no retries.
func (service *AuthService) GetCurrentUser(r *http.Request) (models.User, error) {
	session, err := service.GetSession(r)
	if err != nil {
		return models.User{}, err
	}

	user, err := service.userRepo.FindByID(r.Context(), session.UserID)
	if err != nil {
		return models.User{}, fmt.Errorf("finding user: %w", err)
	}
	return user, nil
}
