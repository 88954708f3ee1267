package models

import "time"

type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

func ValidMealType(value string) bool {
	switch MealType(value) {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

type DietPreference string

const (
	DietBalanced    DietPreference = "balanced"
	DietLowCarb     DietPreference = "low-carb"
	DietHighProtein DietPreference = "high-protein"
	DietVegetarian  DietPreference = "vegetarian"
	DietVegan       DietPreference = "vegan"
	DietKeto        DietPreference = "keto"
)

func ValidDietPreference(value string) bool {
	switch DietPreference(value) {
	case DietBalanced, DietLowCarb, DietHighProtein, DietVegetarian, DietVegan, DietKeto:
		return true
	}
	return false
}

const DefaultCalorieGoal = 2000

type User struct {
	ID           string
	Email        string
	PasswordHash string
	OIDCSubject  *string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Entry is one logged food item for a date and meal type. Entries are
// immutable after creation; the tracker only adds and deletes them.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	EntryDate string    `json:"entry_date"`
	MealType  MealType  `json:"meal_type"`
	FoodName  string    `json:"food_name"`
	Calories  *int      `json:"calories"`
	Quantity  *string   `json:"quantity"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile is the per-user editable preference record. The row shares its id
// with the owning user and is provisioned at signup.
type Profile struct {
	ID             string         `json:"id"`
	FullName       string         `json:"full_name"`
	Phone          string         `json:"phone"`
	Location       string         `json:"location"`
	DietPreference DietPreference `json:"diet_preference"`
	CalorieGoal    int            `json:"calorie_goal"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// GroceryItem is a shopping-list line. Lists live in memory for the duration
// of a session and are never persisted.
type GroceryItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int    `json:"price"`
	Checked     bool   `json:"checked"`
	Sustainable bool   `json:"sustainable"`
}

// MealSuggestion is a static example meal served by the planner content
// table. All fields are display values.
type MealSuggestion struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Calories    int    `json:"calories"`
	Protein     string `json:"protein"`
	PrepTime    string `json:"prep_time"`
	Sustainable bool   `json:"sustainable"`
	Price       string `json:"price"`
}

type APIToken struct {
	ID              string
	Name            string
	TokenHash       string
	CreatedByUserID string
	ExpiresAt       *time.Time
	CreatedAt       time.Time
}

// ShoppingTip is one sustainable-shopping practice from the guide.
type ShoppingTip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// ImpactStat is one line of the statistics page's sustainable-vs-conventional
// comparison.
type ImpactStat struct {
	Label        string `json:"label"`
	Sustainable  string `json:"sustainable"`
	Conventional string `json:"conventional"`
}

// EcoProduct is a recommended sustainable product from the guide.
type EcoProduct struct {
	Name        string  `json:"name"`
	Price       string  `json:"price"`
	Saving      string  `json:"saving"`
	CO2         string  `json:"co2"`
	Rating      float64 `json:"rating"`
	Sustainable bool    `json:"sustainable"`
}
