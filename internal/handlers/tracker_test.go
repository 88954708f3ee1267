package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ADARSH-E404/diet-eco-plan/internal/handlers"
	"github.com/ADARSH-E404/diet-eco-plan/internal/middleware"
	"github.com/ADARSH-E404/diet-eco-plan/internal/models"
	"github.com/ADARSH-E404/diet-eco-plan/internal/repository"
	"github.com/ADARSH-E404/diet-eco-plan/internal/testutil"
	"github.com/go-chi/chi/v5"
)

func requestWithUser(request *http.Request, user models.User) *http.Request {
	ctx := context.WithValue(request.Context(), middleware.UserContextKey, user)
	return request.WithContext(ctx)
}

func formRequest(method, target string, form url.Values) *http.Request {
	request := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return request
}

func setupTracker(t *testing.T) (*chi.Mux, repository.EntryRepository, models.User) {
	t.Helper()
	db := testutil.NewTestDatabase(t)
	userRepo := repository.NewUserRepository(db)
	entryRepo := repository.NewEntryRepository(db)

	user, err := userRepo.Create(context.Background(), models.User{Email: "tracker@example.com"})
	if err != nil {
		t.Fatalf("creating user: %v", err)
	}

	handler := handlers.NewTrackerHandler(entryRepo)
	router := chi.NewRouter()
	router.Get("/tracker", handler.List)
	router.Post("/tracker", handler.Add)
	router.Post("/tracker/{id}/delete", handler.Delete)
	return router, entryRepo, user
}

func listEntries(t *testing.T, router *chi.Mux, user models.User) []models.Entry {
	t.Helper()
	request := requestWithUser(httptest.NewRequest(http.MethodGet, "/tracker", nil), user)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 listing entries, got %d", recorder.Code)
	}

	var body struct {
		Entries []models.Entry `json:"entries"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("decoding list response: %v", err)
	}
	return body.Entries
}

func TestTrackerAddAndList(t *testing.T) {
	router, _, user := setupTracker(t)

	form := url.Values{
		"entry_date": {"2025-05-01"},
		"meal_type":  {"lunch"},
		"food_name":  {"Quinoa Bowl"},
		"calories":   {"480"},
		"quantity":   {"1 bowl"},
	}
	request := requestWithUser(formRequest(http.MethodPost, "/tracker", form), user)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	entries := listEntries(t, router, user)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.FoodName != "Quinoa Bowl" || entry.MealType != models.MealTypeLunch {
		t.Errorf("unexpected entry %+v", entry)
	}
	if entry.Calories == nil || *entry.Calories != 480 {
		t.Errorf("expected 480 calories, got %v", entry.Calories)
	}
}

func TestTrackerAddRejectsEmptyFoodName(t *testing.T) {
	router, _, user := setupTracker(t)

	form := url.Values{
		"entry_date": {"2025-05-01"},
		"meal_type":  {"lunch"},
		"food_name":  {"   "},
	}
	request := requestWithUser(formRequest(http.MethodPost, "/tracker", form), user)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if entries := listEntries(t, router, user); len(entries) != 0 {
		t.Errorf("expected no entries after rejected add, got %d", len(entries))
	}
}

func TestTrackerAddRejectsNonNumericCalories(t *testing.T) {
	router, _, user := setupTracker(t)

	form := url.Values{
		"entry_date": {"2025-05-01"},
		"meal_type":  {"snack"},
		"food_name":  {"Almonds"},
		"calories":   {"a lot"},
	}
	request := requestWithUser(formRequest(http.MethodPost, "/tracker", form), user)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if entries := listEntries(t, router, user); len(entries) != 0 {
		t.Errorf("expected no entries after rejected add, got %d", len(entries))
	}
}

func TestTrackerDelete(t *testing.T) {
	router, entryRepo, user := setupTracker(t)

	entry, err := entryRepo.Create(context.Background(), models.Entry{
		UserID:    user.ID,
		EntryDate: "2025-05-01",
		MealType:  models.MealTypeBreakfast,
		FoodName:  "Oatmeal",
	})
	if err != nil {
		t.Fatalf("creating entry: %v", err)
	}

	request := requestWithUser(httptest.NewRequest(http.MethodPost, "/tracker/"+entry.ID+"/delete", nil), user)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if entries := listEntries(t, router, user); len(entries) != 0 {
		t.Errorf("expected entry to be gone, got %d entries", len(entries))
	}
}
