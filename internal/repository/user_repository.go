package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/team-pulse-api/internal/models"
)

// UserRepository stores portal profiles keyed by the identity provider's user id.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID returns a profile by identifier or sql.ErrNoRows.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.UserProfile, error) {
	const query = `SELECT id, email, role, team_number, department, existing_skills, created_at, updated_at FROM user_profiles WHERE id = $1 LIMIT 1`
	var profile models.UserProfile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find profile by id: %w", err)
	}
	return &profile, nil
}

// Upsert creates the profile or updates its editable fields.
func (r *UserRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	if profile.ExistingSkills == nil {
		profile.ExistingSkills = []string{}
	}

	const query = `INSERT INTO user_profiles (id, email, role, team_number, department, existing_skills, created_at, updated_at)
VALUES (:id, :email, :role, :team_number, :department, :existing_skills, :created_at, :updated_at)
ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email, role = EXCLUDED.role, team_number = EXCLUDED.team_number,
department = EXCLUDED.department, existing_skills = EXCLUDED.existing_skills, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, profile); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
