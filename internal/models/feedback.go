package models

import (
	"time"

	"github.com/noah-isme/team-pulse-api/internal/survey"
)

// FeedbackRecord is one employee's submission for one survey cycle. Records are append-only.
type FeedbackRecord struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"userId"`
	TeamNumber int       `db:"team_number" json:"teamNumber"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`

	WorkSatisfaction             string `db:"work_satisfaction" json:"workSatisfaction"`
	WorkLifeBalance              string `db:"work_life_balance" json:"workLifeBalance"`
	WorkSupport                  string `db:"work_support" json:"workSupport"`
	InterDepartmentCommunication string `db:"inter_department_communication" json:"interDepartmentCommunication"`
	WorkRecognition              string `db:"work_recognition" json:"workRecognition"`
	ToolsSatisfaction            string `db:"tools_satisfaction" json:"toolsSatisfaction"`
	CultureAlignment             string `db:"culture_alignment" json:"cultureAlignment"`
	CareerGrowthSatisfaction     string `db:"career_growth_satisfaction" json:"careerGrowthSatisfaction"`
	TrainingPreference           string `db:"training_preference" json:"trainingPreference"`
	DevelopmentOpportunities     string `db:"development_opportunities" json:"developmentOpportunities"`
	LearningPreference           string `db:"learning_preference" json:"learningPreference"`
	WeakestSkill                 string `db:"weakest_skill" json:"weakestSkill"`
	RecognitionSatisfaction      string `db:"recognition_satisfaction" json:"recognitionSatisfaction"`
	FeedbackFrequency            string `db:"feedback_frequency" json:"feedbackFrequency"`
	RecommendCompany             string `db:"recommend_company" json:"recommendCompany"`

	OverallWorkLifeBalance  string `db:"overall_work_life_balance" json:"overallWorkLifeBalance"`
	TeamWorkingRelationship string `db:"team_working_relationship" json:"teamWorkingRelationship"`
	EnjoymentOfWork         string `db:"enjoyment_of_work" json:"enjoymentOfWork"`
	CollaborationChallenges string `db:"collaboration_challenges" json:"collaborationChallenges"`
	WorkRelatedStressors    string `db:"work_related_stressors" json:"workRelatedStressors"`
	SupportWellBeing        string `db:"support_well_being" json:"supportWellBeing"`
	ImproveExperience       string `db:"improve_experience" json:"improveExperience"`
}

// Answer returns the stored answer for a survey question id, or "" for unknown ids.
func (r *FeedbackRecord) Answer(fieldID string) string {
	switch fieldID {
	case survey.FieldWorkSatisfaction:
		return r.WorkSatisfaction
	case survey.FieldWorkLifeBalance:
		return r.WorkLifeBalance
	case survey.FieldWorkSupport:
		return r.WorkSupport
	case survey.FieldInterDepartmentCommunication:
		return r.InterDepartmentCommunication
	case survey.FieldWorkRecognition:
		return r.WorkRecognition
	case survey.FieldToolsSatisfaction:
		return r.ToolsSatisfaction
	case survey.FieldCultureAlignment:
		return r.CultureAlignment
	case survey.FieldCareerGrowthSatisfaction:
		return r.CareerGrowthSatisfaction
	case survey.FieldTrainingPreference:
		return r.TrainingPreference
	case survey.FieldDevelopmentOpportunities:
		return r.DevelopmentOpportunities
	case survey.FieldLearningPreference:
		return r.LearningPreference
	case survey.FieldWeakestSkill:
		return r.WeakestSkill
	case survey.FieldRecognitionSatisfaction:
		return r.RecognitionSatisfaction
	case survey.FieldFeedbackFrequency:
		return r.FeedbackFrequency
	case survey.FieldRecommendCompany:
		return r.RecommendCompany
	case survey.FieldOverallWorkLifeBalance:
		return r.OverallWorkLifeBalance
	case survey.FieldTeamWorkingRelationship:
		return r.TeamWorkingRelationship
	case survey.FieldEnjoymentOfWork:
		return r.EnjoymentOfWork
	case survey.FieldCollaborationChallenges:
		return r.CollaborationChallenges
	case survey.FieldWorkRelatedStressors:
		return r.WorkRelatedStressors
	case survey.FieldSupportWellBeing:
		return r.SupportWellBeing
	case survey.FieldImproveExperience:
		return r.ImproveExperience
	}
	return ""
}
