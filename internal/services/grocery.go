package services

import (
	"math"
	"strings"
	"sync"

	"github.com/ADARSH-E404/diet-eco-plan/internal/models"
	"github.com/google/uuid"
)

// Pure operations over an ordered grocery list. None of them mutate their
// input; invalid input is a no-op, never an error.

// Categories returns the distinct category values in first-seen order.
func Categories(items []models.GroceryItem) []string {
	seen := make(map[string]bool, len(items))
	var categories []string
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories
}

func TotalPrice(items []models.GroceryItem) int {
	total := 0
	for _, item := range items {
		total += item.Price
	}
	return total
}

func CheckedTotal(items []models.GroceryItem) int {
	total := 0
	for _, item := range items {
		if item.Checked {
			total += item.Price
		}
	}
	return total
}

// SustainabilityRatio is the share of sustainable items as a rounded
// percentage. An empty list scores 0.
func SustainabilityRatio(items []models.GroceryItem) int {
	if len(items) == 0 {
		return 0
	}
	sustainable := 0
	for _, item := range items {
		if item.Sustainable {
			sustainable++
		}
	}
	return int(math.Round(100 * float64(sustainable) / float64(len(items))))
}

// AddItem appends a new unchecked item under category "Other". A blank or
// whitespace-only name returns the list unchanged.
func AddItem(items []models.GroceryItem, name string) []models.GroceryItem {
	if strings.TrimSpace(name) == "" {
		return items
	}
	updated := make([]models.GroceryItem, len(items), len(items)+1)
	copy(updated, items)
	return append(updated, models.GroceryItem{
		ID:       uuid.New().String(),
		Name:     name,
		Category: "Other",
	})
}

// ToggleItem flips the checked flag of the matching item. An unknown id is a
// no-op so stale clicks against a changed list stay harmless.
func ToggleItem(items []models.GroceryItem, id string) []models.GroceryItem {
	updated := make([]models.GroceryItem, len(items))
	copy(updated, items)
	for i := range updated {
		if updated[i].ID == id {
			updated[i].Checked = !updated[i].Checked
			break
		}
	}
	return updated
}

// RemoveItem drops the matching item, preserving order. Unknown ids are a
// no-op.
func RemoveItem(items []models.GroceryItem, id string) []models.GroceryItem {
	updated := make([]models.GroceryItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			updated = append(updated, item)
		}
	}
	return updated
}

// ListSummary is the panel next to the grocery list.
type ListSummary struct {
	TotalItems          int `json:"total_items"`
	CheckedItems        int `json:"checked_items"`
	CheckedTotal        int `json:"checked_total"`
	TotalPrice          int `json:"total_price"`
	SustainabilityScore int `json:"sustainability_score"`
}

func Summarize(items []models.GroceryItem) ListSummary {
	checked := 0
	for _, item := range items {
		if item.Checked {
			checked++
		}
	}
	return ListSummary{
		TotalItems:          len(items),
		CheckedItems:        checked,
		CheckedTotal:        CheckedTotal(items),
		TotalPrice:          TotalPrice(items),
		SustainabilityScore: SustainabilityRatio(items),
	}
}

// DefaultGroceryItems seeds a fresh list. Prices are whole currency units.
func DefaultGroceryItems() []models.GroceryItem {
	return []models.GroceryItem{
		{ID: uuid.New().String(), Name: "Organic Spinach", Category: "Vegetables", Price: 45, Sustainable: true},
		{ID: uuid.New().String(), Name: "Brown Rice", Category: "Grains", Price: 120, Sustainable: true},
		{ID: uuid.New().String(), Name: "Chicken Breast", Category: "Protein", Price: 280, Checked: true},
		{ID: uuid.New().String(), Name: "Greek Yogurt", Category: "Dairy", Price: 85, Sustainable: true},
		{ID: uuid.New().String(), Name: "Avocado", Category: "Vegetables", Price: 60, Sustainable: true},
		{ID: uuid.New().String(), Name: "Quinoa", Category: "Grains", Price: 340, Sustainable: true},
		{ID: uuid.New().String(), Name: "Almonds", Category: "Nuts", Price: 450, Sustainable: true},
	}
}

// GroceryStore keeps one list per user session, in memory only. Lists do not
// survive a restart and are never written to the database.
type GroceryStore struct {
	mu    sync.Mutex
	lists map[string][]models.GroceryItem
}

func NewGroceryStore() *GroceryStore {
	return &GroceryStore{lists: make(map[string][]models.GroceryItem)}
}

// List returns the user's current list, seeding the defaults on first use.
func (store *GroceryStore) List(userID string) []models.GroceryItem {
	store.mu.Lock()
	defer store.mu.Unlock()

	items, ok := store.lists[userID]
	if !ok {
		items = DefaultGroceryItems()
		store.lists[userID] = items
	}
	out := make([]models.GroceryItem, len(items))
	copy(out, items)
	return out
}

// Update applies a pure transform to the user's list under the lock.
func (store *GroceryStore) Update(userID string, transform func([]models.GroceryItem) []models.GroceryItem) []models.GroceryItem {
	store.mu.Lock()
	defer store.mu.Unlock()

	items, ok := store.lists[userID]
	if !ok {
		items = DefaultGroceryItems()
	}
	items = transform(items)
	store.lists[userID] = items

	out := make([]models.GroceryItem, len(items))
	copy(out, items)
	return out
}
