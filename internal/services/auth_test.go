package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ADARSH-E404/diet-eco-plan/internal/config"
	"github.com/ADARSH-E404/diet-eco-plan/internal/models"
	"github.com/ADARSH-E404/diet-eco-plan/internal/repository"
	"github.com/ADARSH-E404/diet-eco-plan/internal/testutil"
)

func setupAuthService(t *testing.T) (*AuthService, repository.ProfileRepository) {
	t.Helper()
	db := testutil.NewTestDatabase(t)
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	cfg := config.Config{SessionSecret: "test-secret-test-secret-test-32b"}
	service, err := NewAuthService(context.Background(), cfg, userRepo, profileRepo)
	if err != nil {
		t.Fatalf("creating auth service: %v", err)
	}
	return service, profileRepo
}

func TestAuthService_SignUpAndSignIn(t *testing.T) {
	service, _ := setupAuthService(t)
	ctx := context.Background()

	user, err := service.SignUp(ctx, "Asha@Example.com", "hunter2hunter2", "Asha Rao")
	if err != nil {
		t.Fatalf("signing up: %v", err)
	}
	if user.Email != "asha@example.com" {
		t.Errorf("expected lowercased email, got %q", user.Email)
	}
	if user.PasswordHash == "hunter2hunter2" || user.PasswordHash == "" {
		t.Error("expected a bcrypt hash, not the raw password")
	}

	signedIn, err := service.SignIn(ctx, "asha@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("signing in: %v", err)
	}
	if signedIn.ID != user.ID {
		t.Errorf("expected same user, got %s", signedIn.ID)
	}
}

func TestAuthService_SignUpProvisionsProfile(t *testing.T) {
	service, profileRepo := setupAuthService(t)
	ctx := context.Background()

	user, err := service.SignUp(ctx, "new@example.com", "password123", "New User")
	if err != nil {
		t.Fatalf("signing up: %v", err)
	}

	profile, err := profileRepo.Load(ctx, user.ID)
	if err != nil {
		t.Fatalf("loading profile: %v", err)
	}
	if profile.FullName != "New User" {
		t.Errorf("expected provisioned name, got %q", profile.FullName)
	}
	if profile.DietPreference != models.DietBalanced || profile.CalorieGoal != 2000 {
		t.Errorf("expected default preferences, got %+v", profile)
	}
}

func TestAuthService_SignUpValidation(t *testing.T) {
	service, _ := setupAuthService(t)
	ctx := context.Background()

	if _, err := service.SignUp(ctx, "", "password", "X"); !models.IsValidation(err) {
		t.Errorf("expected validation error for empty email, got %v", err)
	}
	if _, err := service.SignUp(ctx, "a@b.com", "", "X"); !models.IsValidation(err) {
		t.Errorf("expected validation error for empty password, got %v", err)
	}

	if _, err := service.SignUp(ctx, "taken@example.com", "password", "X"); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, err := service.SignUp(ctx, "taken@example.com", "password", "Y"); !models.IsValidation(err) {
		t.Errorf("expected validation error for duplicate email, got %v", err)
	}
}

func TestAuthService_SignInRejectsBadCredentials(t *testing.T) {
	service, _ := setupAuthService(t)
	ctx := context.Background()

	if _, err := service.SignUp(ctx, "who@example.com", "correct-horse", "X"); err != nil {
		t.Fatalf("signing up: %v", err)
	}

	if _, err := service.SignIn(ctx, "who@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := service.SignIn(ctx, "nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthService_SessionRoundTrip(t *testing.T) {
	service, _ := setupAuthService(t)
	ctx := context.Background()

	user, err := service.SignUp(ctx, "session@example.com", "password123", "X")
	if err != nil {
		t.Fatalf("signing up: %v", err)
	}

	recorder := httptest.NewRecorder()
	if err := service.SetSession(recorder, user.ID); err != nil {
		t.Fatalf("setting session: %v", err)
	}

	request := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, cookie := range recorder.Result().Cookies() {
		request.AddCookie(cookie)
	}

	resolved, err := service.GetCurrentUser(request)
	if err != nil {
		t.Fatalf("resolving session: %v", err)
	}
	if resolved.ID != user.ID {
		t.Errorf("expected user %s, got %s", user.ID, resolved.ID)
	}
}

func TestAuthService_MissingSessionIsUnauthenticated(t *testing.T) {
	service, _ := setupAuthService(t)

	request := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if _, err := service.GetCurrentUser(request); err == nil {
		t.Error("expected error without a session cookie")
	}
}

func TestAuthService_OIDCDisabledWithoutIssuer(t *testing.T) {
	service, _ := setupAuthService(t)

	if service.OIDCConfigured() {
		t.Error("expected OIDC to be disabled")
	}
	if url := service.LoginURL("state"); url != "" {
		t.Errorf("expected empty login url, got %q", url)
	}
}
