package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ADARSH-E404/diet-eco-plan/internal/models"
)

type ProfileFields struct {
	FullName       string
	Phone          string
	Location       string
	DietPreference models.DietPreference
	CalorieGoal    int
}

type ProfileRepository interface {
	Load(ctx context.Context, userID string) (models.Profile, error)
	Create(ctx context.Context, profile models.Profile) error
	Save(ctx context.Context, userID string, fields ProfileFields) error
}

type SQLiteProfileRepository struct {
	database *sql.DB
}

func NewProfileRepository(database *sql.DB) *SQLiteProfileRepository {
	return &SQLiteProfileRepository{database: database}
}

// Load returns the user's profile, or neutral defaults when no row exists.
// Absence is not an error.
func (repository *SQLiteProfileRepository) Load(ctx context.Context, userID string) (models.Profile, error) {
	var profile models.Profile
	err := repository.database.QueryRowContext(ctx,
		"SELECT id, full_name, phone, location, diet_preference, calorie_goal, updated_at FROM profiles WHERE id = ?",
		userID,
	).Scan(&profile.ID, &profile.FullName, &profile.Phone, &profile.Location,
		&profile.DietPreference, &profile.CalorieGoal, &profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{
			ID:             userID,
			DietPreference: models.DietBalanced,
			CalorieGoal:    models.DefaultCalorieGoal,
		}, nil
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("loading profile: %w", err)
	}
	return profile, nil
}

func (repository *SQLiteProfileRepository) Create(ctx context.Context, profile models.Profile) error {
	if profile.DietPreference == "" {
		profile.DietPreference = models.DietBalanced
	}
	if profile.CalorieGoal == 0 {
		profile.CalorieGoal = models.DefaultCalorieGoal
	}

	_, err := repository.database.ExecContext(ctx,
		"INSERT INTO profiles (id, full_name, phone, location, diet_preference, calorie_goal, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		profile.ID, profile.FullName, profile.Phone, profile.Location,
		profile.DietPreference, profile.CalorieGoal, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("creating profile: %w", err)
	}
	return nil
}

// Save validates the editable fields and upserts the row, so saving works
// whether or not the profile was provisioned at signup. The calorie goal
// arrives already parsed; the handler owns the text-to-int boundary.
func (repository *SQLiteProfileRepository) Save(ctx context.Context, userID string, fields ProfileFields) error {
	if !models.ValidDietPreference(string(fields.DietPreference)) {
		return models.NewValidationError("diet_preference", "unknown diet preference")
	}
	if fields.CalorieGoal <= 0 {
		return models.NewValidationError("calorie_goal", "calorie goal must be positive")
	}

	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO profiles (id, full_name, phone, location, diet_preference, calorie_goal, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   full_name = excluded.full_name,
		   phone = excluded.phone,
		   location = excluded.location,
		   diet_preference = excluded.diet_preference,
		   calorie_goal = excluded.calorie_goal,
		   updated_at = excluded.updated_at`,
		userID, fields.FullName, fields.Phone, fields.Location, fields.DietPreference,
		fields.CalorieGoal, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}
