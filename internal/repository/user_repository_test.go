package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/team-pulse-api/internal/models"
)

func newUserRepoMock(t *testing.T) (*UserRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return NewUserRepository(sqlxDB), mock, func() { sqlxDB.Close() }
}

func TestUserRepositoryFindByID(t *testing.T) {
	repo, mock, cleanup := newUserRepoMock(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "role", "team_number", "department", "existing_skills", "created_at", "updated_at"}).
		AddRow("user-1", "a@example.com", "MANAGER", 4, "Platform", "{go,sql}", now, now)
	mock.ExpectQuery("SELECT id, email, role, team_number").
		WithArgs("user-1").
		WillReturnRows(rows)

	profile, err := repo.FindByID(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, profile.TeamNumber)
	assert.Equal(t, 4, *profile.TeamNumber)
	assert.Equal(t, models.RoleManager, profile.Role)
	assert.Equal(t, pq.StringArray{"go", "sql"}, profile.ExistingSkills)
}

func TestUserRepositoryFindByIDMissing(t *testing.T) {
	repo, mock, cleanup := newUserRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, email").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUserRepositoryUpsert(t *testing.T) {
	repo, mock, cleanup := newUserRepoMock(t)
	defer cleanup()

	team := 2
	mock.ExpectExec("INSERT INTO user_profiles").
		WithArgs("user-1", "a@example.com", "EMPLOYEE", &team, "Sales", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	profile := &models.UserProfile{ID: "user-1", Email: "a@example.com", Role: models.RoleEmployee, TeamNumber: &team, Department: "Sales"}
	require.NoError(t, repo.Upsert(context.Background(), profile))
	assert.False(t, profile.UpdatedAt.IsZero())
	assert.NotNil(t, profile.ExistingSkills)
	assert.NoError(t, mock.ExpectationsWereMet())
}
