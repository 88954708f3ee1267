package repository_test

import (
	"context"
	"testing"

	"github.com/ADARSH-E404/diet-eco-plan/internal/models"
	"github.com/ADARSH-E404/diet-eco-plan/internal/repository"
	"github.com/ADARSH-E404/diet-eco-plan/internal/testutil"
)

func TestProfileRepository_LoadMissingRowReturnsDefaults(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, userRepo, "noprofile@example.com")

	profile, err := profileRepo.Load(ctx, user.ID)
	if err != nil {
		t.Fatalf("expected nil error for missing profile, got %v", err)
	}
	if profile.DietPreference != models.DietBalanced {
		t.Errorf("expected balanced preference, got %q", profile.DietPreference)
	}
	if profile.CalorieGoal != 2000 {
		t.Errorf("expected calorie goal 2000, got %d", profile.CalorieGoal)
	}
	if profile.FullName != "" || profile.Phone != "" || profile.Location != "" {
		t.Errorf("expected empty contact fields, got %+v", profile)
	}
}

func TestProfileRepository_CreateAndLoad(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, userRepo, "profile@example.com")

	if err := profileRepo.Create(ctx, models.Profile{ID: user.ID, FullName: "Asha Rao"}); err != nil {
		t.Fatalf("creating profile: %v", err)
	}

	profile, err := profileRepo.Load(ctx, user.ID)
	if err != nil {
		t.Fatalf("loading profile: %v", err)
	}
	if profile.FullName != "Asha Rao" {
		t.Errorf("expected name 'Asha Rao', got %q", profile.FullName)
	}
	if profile.DietPreference != models.DietBalanced || profile.CalorieGoal != 2000 {
		t.Errorf("expected provisioned defaults, got %+v", profile)
	}
}

func TestProfileRepository_SaveUpdatesFields(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, userRepo, "save@example.com")
	if err := profileRepo.Create(ctx, models.Profile{ID: user.ID}); err != nil {
		t.Fatalf("creating profile: %v", err)
	}

	err := profileRepo.Save(ctx, user.ID, repository.ProfileFields{
		FullName:       "Asha Rao",
		Phone:          "+91 98765 43210",
		Location:       "Bengaluru",
		DietPreference: models.DietVegetarian,
		CalorieGoal:    1800,
	})
	if err != nil {
		t.Fatalf("saving profile: %v", err)
	}

	profile, err := profileRepo.Load(ctx, user.ID)
	if err != nil {
		t.Fatalf("loading profile: %v", err)
	}
	if profile.DietPreference != models.DietVegetarian {
		t.Errorf("expected vegetarian, got %q", profile.DietPreference)
	}
	if profile.CalorieGoal != 1800 {
		t.Errorf("expected goal 1800, got %d", profile.CalorieGoal)
	}
	if profile.Location != "Bengaluru" {
		t.Errorf("expected location saved, got %q", profile.Location)
	}
}

func TestProfileRepository_SaveRejectsBadFields(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, userRepo, "reject@example.com")
	if err := profileRepo.Create(ctx, models.Profile{ID: user.ID}); err != nil {
		t.Fatalf("creating profile: %v", err)
	}

	err := profileRepo.Save(ctx, user.ID, repository.ProfileFields{
		DietPreference: "carnivore",
		CalorieGoal:    1800,
	})
	if !models.IsValidation(err) {
		t.Errorf("expected validation error for diet preference, got %v", err)
	}

	err = profileRepo.Save(ctx, user.ID, repository.ProfileFields{
		DietPreference: models.DietKeto,
		CalorieGoal:    0,
	})
	if !models.IsValidation(err) {
		t.Errorf("expected validation error for calorie goal, got %v", err)
	}
}
