package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ADARSH-E404/diet-eco-plan/internal/repository"
)

// StatsService derives read-only aggregates over a user's logged entries for
// the dashboard and statistics views.
type StatsService struct {
	entryRepo   repository.EntryRepository
	profileRepo repository.ProfileRepository
}

func NewStatsService(entryRepo repository.EntryRepository, profileRepo repository.ProfileRepository) *StatsService {
	return &StatsService{entryRepo: entryRepo, profileRepo: profileRepo}
}

type Overview struct {
	EntriesLogged int `json:"entries_logged"`
	TodayCalories int `json:"today_calories"`
	CalorieGoal   int `json:"calorie_goal"`
	GoalProgress  int `json:"goal_progress"`
}

// Overview summarizes today against the profile's calorie goal. Progress is
// capped at 100.
func (service *StatsService) Overview(ctx context.Context, userID string) (Overview, error) {
	count, err := service.entryRepo.CountForUser(ctx, userID)
	if err != nil {
		return Overview{}, fmt.Errorf("counting entries: %w", err)
	}

	today := time.Now().Format("2006-01-02")
	calories, err := service.entryRepo.CaloriesByDate(ctx, userID, today)
	if err != nil {
		return Overview{}, fmt.Errorf("summing today's calories: %w", err)
	}

	profile, err := service.profileRepo.Load(ctx, userID)
	if err != nil {
		return Overview{}, fmt.Errorf("loading profile: %w", err)
	}

	progress := 0
	if profile.CalorieGoal > 0 {
		progress = 100 * calories / profile.CalorieGoal
		if progress > 100 {
			progress = 100
		}
	}

	return Overview{
		EntriesLogged: count,
		TodayCalories: calories,
		CalorieGoal:   profile.CalorieGoal,
		GoalProgress:  progress,
	}, nil
}

func (service *StatsService) Monthly(ctx context.Context, userID string) ([]repository.MonthlyCount, error) {
	counts, err := service.entryRepo.MonthlyCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading monthly counts: %w", err)
	}
	return counts, nil
}

func (service *StatsService) TopFoods(ctx context.Context, userID string, limit int) ([]repository.FoodCount, error) {
	if limit <= 0 {
		limit = 5
	}
	foods, err := service.entryRepo.TopFoods(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("loading top foods: %w", err)
	}
	return foods, nil
}
