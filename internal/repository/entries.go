package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ADARSH-E404/diet-eco-plan/internal/models"
	"github.com/google/uuid"
)

type EntryRepository interface {
	FindAllForUser(ctx context.Context, userID string) ([]models.Entry, error)
	Create(ctx context.Context, entry models.Entry) (models.Entry, error)
	Delete(ctx context.Context, id string, userID string) error
	CountForUser(ctx context.Context, userID string) (int, error)
	CaloriesByDate(ctx context.Context, userID string, date string) (int, error)
	MonthlyCounts(ctx context.Context, userID string) ([]MonthlyCount, error)
	TopFoods(ctx context.Context, userID string, limit int) ([]FoodCount, error)
}

type MonthlyCount struct {
	Month    string `json:"month"`
	Entries  int    `json:"entries"`
	Calories int    `json:"calories"`
}

type FoodCount struct {
	FoodName string `json:"food_name"`
	Count    int    `json:"count"`
}

type SQLiteEntryRepository struct {
	database *sql.DB
}

func NewEntryRepository(database *sql.DB) *SQLiteEntryRepository {
	return &SQLiteEntryRepository{database: database}
}

const entryColumns = "id, user_id, entry_date, meal_type, food_name, calories, quantity, notes, created_at"

func (repository *SQLiteEntryRepository) FindAllForUser(ctx context.Context, userID string) ([]models.Entry, error) {
	rows, err := repository.database.QueryContext(ctx,
		"SELECT "+entryColumns+" FROM daily_entries WHERE user_id = ? ORDER BY entry_date DESC, created_at DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("finding entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var entry models.Entry
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.EntryDate, &entry.MealType, &entry.FoodName,
			&entry.Calories, &entry.Quantity, &entry.Notes, &entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Create validates the entry before any store access, then inserts it with a
// fresh id and creation timestamp. Callers refetch to observe the new row.
func (repository *SQLiteEntryRepository) Create(ctx context.Context, entry models.Entry) (models.Entry, error) {
	if strings.TrimSpace(entry.FoodName) == "" {
		return models.Entry{}, models.NewValidationError("food_name", "food name is required")
	}
	if !models.ValidMealType(string(entry.MealType)) {
		return models.Entry{}, models.NewValidationError("meal_type", "unknown meal type")
	}
	if entry.Calories != nil && *entry.Calories < 0 {
		return models.Entry{}, models.NewValidationError("calories", "calories must not be negative")
	}
	if _, err := time.Parse("2006-01-02", entry.EntryDate); err != nil {
		return models.Entry{}, models.NewValidationError("entry_date", "date must be YYYY-MM-DD")
	}

	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now()

	_, err := repository.database.ExecContext(ctx,
		"INSERT INTO daily_entries ("+entryColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		entry.ID, entry.UserID, entry.EntryDate, entry.MealType, entry.FoodName,
		entry.Calories, entry.Quantity, entry.Notes, entry.CreatedAt,
	)
	if err != nil {
		return models.Entry{}, fmt.Errorf("creating entry: %w", err)
	}
	return entry, nil
}

// Delete is scoped to the owning user; a missing id is not an error.
func (repository *SQLiteEntryRepository) Delete(ctx context.Context, id string, userID string) error {
	_, err := repository.database.ExecContext(ctx,
		"DELETE FROM daily_entries WHERE id = ? AND user_id = ?", id, userID,
	)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	return nil
}

func (repository *SQLiteEntryRepository) CountForUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := repository.database.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM daily_entries WHERE user_id = ?", userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return count, nil
}

func (repository *SQLiteEntryRepository) CaloriesByDate(ctx context.Context, userID string, date string) (int, error) {
	var calories int
	err := repository.database.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(calories), 0) FROM daily_entries WHERE user_id = ? AND entry_date = ?",
		userID, date,
	).Scan(&calories)
	if err != nil {
		return 0, fmt.Errorf("summing calories: %w", err)
	}
	return calories, nil
}

func (repository *SQLiteEntryRepository) MonthlyCounts(ctx context.Context, userID string) ([]MonthlyCount, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT substr(entry_date, 1, 7) AS month, COUNT(*), COALESCE(SUM(calories), 0)
		FROM daily_entries WHERE user_id = ?
		GROUP BY month ORDER BY month`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("aggregating monthly entries: %w", err)
	}
	defer rows.Close()

	var counts []MonthlyCount
	for rows.Next() {
		var count MonthlyCount
		if err := rows.Scan(&count.Month, &count.Entries, &count.Calories); err != nil {
			return nil, fmt.Errorf("scanning monthly count: %w", err)
		}
		counts = append(counts, count)
	}
	return counts, rows.Err()
}

func (repository *SQLiteEntryRepository) TopFoods(ctx context.Context, userID string, limit int) ([]FoodCount, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT food_name, COUNT(*) AS occurrences
		FROM daily_entries WHERE user_id = ?
		GROUP BY food_name ORDER BY occurrences DESC, food_name LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("aggregating top foods: %w", err)
	}
	defer rows.Close()

	var foods []FoodCount
	for rows.Next() {
		var food FoodCount
		if err := rows.Scan(&food.FoodName, &food.Count); err != nil {
			return nil, fmt.Errorf("scanning food count: %w", err)
		}
		foods = append(foods, food)
	}
	return foods, rows.Err()
}
