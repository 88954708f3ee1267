package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ADARSH-E404/diet-eco-plan/internal/models"
	"github.com/google/uuid"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByOIDCSubject(ctx context.Context, subject string) (models.User, error)
	Create(ctx context.Context, user models.User) (models.User, error)
	UpdateName(ctx context.Context, id string, name string) error
}

type SQLiteUserRepository struct {
	database *sql.DB
}

func NewUserRepository(database *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{database: database}
}

func (repository *SQLiteUserRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	return repository.findOne(ctx, "id = ?", id)
}

func (repository *SQLiteUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return repository.findOne(ctx, "email = ?", email)
}

func (repository *SQLiteUserRepository) FindByOIDCSubject(ctx context.Context, subject string) (models.User, error) {
	return repository.findOne(ctx, "oidc_subject = ?", subject)
}

func (repository *SQLiteUserRepository) findOne(ctx context.Context, where string, arg string) (models.User, error) {
	var user models.User
	err := repository.database.QueryRowContext(ctx,
		"SELECT id, email, password_hash, oidc_subject, name, created_at, updated_at FROM users WHERE "+where, arg,
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.OIDCSubject, &user.Name, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("finding user: %w", models.ErrNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("finding user: %w", err)
	}
	return user, nil
}

func (repository *SQLiteUserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := repository.database.ExecContext(ctx,
		"INSERT INTO users (id, email, password_hash, oidc_subject, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		user.ID, user.Email, user.PasswordHash, user.OIDCSubject, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

func (repository *SQLiteUserRepository) UpdateName(ctx context.Context, id string, name string) error {
	_, err := repository.database.ExecContext(ctx,
		"UPDATE users SET name = ?, updated_at = ? WHERE id = ?",
		name, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("updating user name: %w", err)
	}
	return nil
}
