package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/team-pulse-api/internal/dto"
	"github.com/noah-isme/team-pulse-api/internal/models"
	appErrors "github.com/noah-isme/team-pulse-api/pkg/errors"
)

type profileRepoStub struct {
	profiles map[string]*models.UserProfile
	upserted *models.UserProfile
}

func (r *profileRepoStub) FindByID(ctx context.Context, id string) (*models.UserProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *p
	return &clone, nil
}

func (r *profileRepoStub) Upsert(ctx context.Context, profile *models.UserProfile) error {
	r.upserted = profile
	if r.profiles == nil {
		r.profiles = map[string]*models.UserProfile{}
	}
	r.profiles[profile.ID] = profile
	return nil
}

func TestProfileGet(t *testing.T) {
	team := 4
	repo := &profileRepoStub{profiles: map[string]*models.UserProfile{
		"employee-1": {ID: "employee-1", TeamNumber: &team, Department: "Platform"},
	}}
	svc := NewProfileService(repo, nil, nil)

	profile, err := svc.Get(context.Background(), employeeClaims(4))
	require.NoError(t, err)
	assert.Equal(t, "Platform", profile.Department)

	_, err = svc.Get(context.Background(), adminClaims())
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	_, err = svc.Get(context.Background(), nil)
	assert.True(t, errors.Is(err, appErrors.ErrUnauthorized))
}

func TestProfileUpdateCreatesFromClaims(t *testing.T) {
	repo := &profileRepoStub{}
	svc := NewProfileService(repo, nil, nil)
	claims := employeeClaims(4)
	claims.Email = "dev@example.com"
	team := 4

	profile, err := svc.Update(context.Background(), claims, dto.UpdateProfileRequest{
		TeamNumber:     &team,
		Department:     "  Platform ",
		ExistingSkills: []string{"Go", " SQL "},
	})
	require.NoError(t, err)

	assert.Equal(t, "employee-1", repo.upserted.ID)
	assert.Equal(t, "dev@example.com", profile.Email)
	assert.Equal(t, models.RoleEmployee, profile.Role)
	assert.Equal(t, "Platform", profile.Department)
	assert.Equal(t, []string{"Go", "SQL"}, []string(profile.ExistingSkills))
	require.NotNil(t, profile.TeamNumber)
	assert.Equal(t, 4, *profile.TeamNumber)
}

func TestProfileUpdateKeepsTeamWhenOmitted(t *testing.T) {
	team := 2
	repo := &profileRepoStub{profiles: map[string]*models.UserProfile{
		"employee-1": {ID: "employee-1", TeamNumber: &team, ExistingSkills: []string{"Go"}},
	}}
	svc := NewProfileService(repo, nil, nil)

	profile, err := svc.Update(context.Background(), employeeClaims(2), dto.UpdateProfileRequest{Department: "Data"})
	require.NoError(t, err)

	assert.Equal(t, 2, *profile.TeamNumber)
	assert.Equal(t, []string{"Go"}, []string(profile.ExistingSkills))
}

func TestProfileUpdateValidates(t *testing.T) {
	svc := NewProfileService(&profileRepoStub{}, nil, nil)
	bad := 0

	_, err := svc.Update(context.Background(), employeeClaims(2), dto.UpdateProfileRequest{TeamNumber: &bad})

	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Equal(t, "teamNumber", appErrors.FromError(err).Details["field"])
}
