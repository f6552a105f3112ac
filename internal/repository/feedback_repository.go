package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/team-pulse-api/internal/models"
)

var feedbackColumns = []string{
	"id", "user_id", "team_number", "created_at",
	"work_satisfaction", "work_life_balance", "work_support", "inter_department_communication",
	"work_recognition", "tools_satisfaction", "culture_alignment", "career_growth_satisfaction",
	"training_preference", "development_opportunities", "learning_preference", "weakest_skill",
	"recognition_satisfaction", "feedback_frequency", "recommend_company",
	"overall_work_life_balance", "team_working_relationship", "enjoyment_of_work",
	"collaboration_challenges", "work_related_stressors", "support_well_being", "improve_experience",
}

var (
	feedbackSelect = "SELECT " + strings.Join(feedbackColumns, ", ") + " FROM feedback"
	feedbackInsert = buildFeedbackInsert()
)

func buildFeedbackInsert() string {
	placeholders := make([]string, len(feedbackColumns))
	for i := range feedbackColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO feedback (%s) VALUES (%s)", strings.Join(feedbackColumns, ", "), strings.Join(placeholders, ", "))
}

// FeedbackSession is a connection-scoped handle on the feedback store. Callers must Close it.
type FeedbackSession interface {
	Create(ctx context.Context, record *models.FeedbackRecord) error
	ListByTeam(ctx context.Context, teamNumber int) ([]models.FeedbackRecord, error)
	Close() error
}

// FeedbackRepository hands out per-request sessions over the shared pool.
type FeedbackRepository struct {
	db *sqlx.DB
}

// NewFeedbackRepository creates a new instance of FeedbackRepository.
func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Acquire reserves one connection for the lifetime of a request.
func (r *FeedbackRepository) Acquire(ctx context.Context) (FeedbackSession, error) {
	conn, err := r.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire feedback connection: %w", err)
	}
	return &feedbackSession{conn: conn}, nil
}

// Ping checks the store is reachable.
func (r *FeedbackRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type feedbackSession struct {
	conn *sqlx.Conn
}

// Create inserts a new record. Records are never updated afterwards.
func (s *feedbackSession) Create(ctx context.Context, rec *models.FeedbackRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	args := []interface{}{
		rec.ID, rec.UserID, rec.TeamNumber, rec.CreatedAt,
		rec.WorkSatisfaction, rec.WorkLifeBalance, rec.WorkSupport, rec.InterDepartmentCommunication,
		rec.WorkRecognition, rec.ToolsSatisfaction, rec.CultureAlignment, rec.CareerGrowthSatisfaction,
		rec.TrainingPreference, rec.DevelopmentOpportunities, rec.LearningPreference, rec.WeakestSkill,
		rec.RecognitionSatisfaction, rec.FeedbackFrequency, rec.RecommendCompany,
		rec.OverallWorkLifeBalance, rec.TeamWorkingRelationship, rec.EnjoymentOfWork,
		rec.CollaborationChallenges, rec.WorkRelatedStressors, rec.SupportWellBeing, rec.ImproveExperience,
	}
	if _, err := s.conn.ExecContext(ctx, feedbackInsert, args...); err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}
	return nil
}

// ListByTeam returns every record of a team, oldest first. An unknown team yields an empty slice.
func (s *feedbackSession) ListByTeam(ctx context.Context, teamNumber int) ([]models.FeedbackRecord, error) {
	query := feedbackSelect + " WHERE team_number = $1 ORDER BY created_at ASC, id ASC"
	records := []models.FeedbackRecord{}
	if err := s.conn.SelectContext(ctx, &records, query, teamNumber); err != nil {
		return nil, fmt.Errorf("list feedback by team: %w", err)
	}
	return records, nil
}

// Close returns the connection to the pool.
func (s *feedbackSession) Close() error {
	return s.conn.Close()
}
