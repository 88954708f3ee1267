package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/ADARSH-E404/diet-eco-plan/internal/handlers"
	"github.com/ADARSH-E404/diet-eco-plan/internal/models"
	"github.com/ADARSH-E404/diet-eco-plan/internal/services"
	"github.com/go-chi/chi/v5"
)

type groceryResponse struct {
	Items      []models.GroceryItem `json:"items"`
	Categories []string             `json:"categories"`
	Summary    services.ListSummary `json:"summary"`
}

func setupGrocery(t *testing.T) (*chi.Mux, models.User) {
	t.Helper()
	handler := handlers.NewGroceryHandler(services.NewGroceryStore())
	router := chi.NewRouter()
	router.Get("/grocery", handler.List)
	router.Post("/grocery/items", handler.Add)
	router.Post("/grocery/items/{id}/toggle", handler.Toggle)
	router.Post("/grocery/items/{id}/delete", handler.Remove)
	return router, models.User{ID: "user-1", Email: "grocery@example.com"}
}

func groceryDo(t *testing.T, router *chi.Mux, user models.User, request *http.Request) groceryResponse {
	t.Helper()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, requestWithUser(request, user))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var body groceryResponse
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return body
}

func TestGroceryListSeedsDefaults(t *testing.T) {
	router, user := setupGrocery(t)

	body := groceryDo(t, router, user, httptest.NewRequest(http.MethodGet, "/grocery", nil))
	if len(body.Items) != 7 {
		t.Fatalf("expected 7 seeded items, got %d", len(body.Items))
	}
	if len(body.Categories) == 0 {
		t.Error("expected category groupings")
	}
	if body.Summary.TotalPrice <= 0 {
		t.Errorf("expected positive total, got %d", body.Summary.TotalPrice)
	}
}

func TestGroceryAddItem(t *testing.T) {
	router, user := setupGrocery(t)

	form := url.Values{"name": {"Lentils"}}
	request := formRequest(http.MethodPost, "/grocery/items", form)
	body := groceryDo(t, router, user, request)

	if len(body.Items) != 8 {
		t.Fatalf("expected 8 items after add, got %d", len(body.Items))
	}
	last := body.Items[len(body.Items)-1]
	if last.Name != "Lentils" || last.Checked || last.Price != 0 {
		t.Errorf("unexpected appended item %+v", last)
	}
}

func TestGroceryAddBlankNameIsNoOp(t *testing.T) {
	router, user := setupGrocery(t)

	form := url.Values{"name": {"   "}}
	request := formRequest(http.MethodPost, "/grocery/items", form)
	body := groceryDo(t, router, user, request)

	if len(body.Items) != 7 {
		t.Errorf("expected list unchanged, got %d items", len(body.Items))
	}
}

func TestGroceryToggleAndRemove(t *testing.T) {
	router, user := setupGrocery(t)

	body := groceryDo(t, router, user, httptest.NewRequest(http.MethodGet, "/grocery", nil))
	target := body.Items[0]

	body = groceryDo(t, router, user, httptest.NewRequest(http.MethodPost, "/grocery/items/"+target.ID+"/toggle", nil))
	if body.Items[0].Checked == target.Checked {
		t.Error("expected toggle to flip checked state")
	}

	body = groceryDo(t, router, user, httptest.NewRequest(http.MethodPost, "/grocery/items/"+target.ID+"/delete", nil))
	if len(body.Items) != 6 {
		t.Fatalf("expected 6 items after remove, got %d", len(body.Items))
	}
	for _, item := range body.Items {
		if item.ID == target.ID {
			t.Errorf("expected item %s to be removed", target.ID)
		}
	}
}

func TestGroceryListsAreIsolatedPerUser(t *testing.T) {
	router, user := setupGrocery(t)
	other := models.User{ID: "user-2", Email: "other@example.com"}

	form := url.Values{"name": {"Tofu"}}
	groceryDo(t, router, user, formRequest(http.MethodPost, "/grocery/items", form))

	body := groceryDo(t, router, other, httptest.NewRequest(http.MethodGet, "/grocery", nil))
	if len(body.Items) != 7 {
		t.Errorf("expected other user to see only defaults, got %d items", len(body.Items))
	}
}
