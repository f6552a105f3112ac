package dto

import (
	"github.com/noah-isme/team-pulse-api/internal/models"
)

// SubmitFeedbackRequest is the survey form payload. Rating answers must match an option label exactly.
type SubmitFeedbackRequest struct {
	TeamNumber int `json:"teamNumber" validate:"required,gt=0"`

	WorkSatisfaction             string `json:"workSatisfaction" validate:"required,survey_option=workSatisfaction"`
	WorkLifeBalance              string `json:"workLifeBalance" validate:"required,survey_option=workLifeBalance"`
	WorkSupport                  string `json:"workSupport" validate:"required,survey_option=workSupport"`
	InterDepartmentCommunication string `json:"interDepartmentCommunication" validate:"required,survey_option=interDepartmentCommunication"`
	WorkRecognition              string `json:"workRecognition" validate:"required,survey_option=workRecognition"`
	ToolsSatisfaction            string `json:"toolsSatisfaction" validate:"required,survey_option=toolsSatisfaction"`
	CultureAlignment             string `json:"cultureAlignment" validate:"required,survey_option=cultureAlignment"`
	CareerGrowthSatisfaction     string `json:"careerGrowthSatisfaction" validate:"required,survey_option=careerGrowthSatisfaction"`
	TrainingPreference           string `json:"trainingPreference" validate:"required,survey_option=trainingPreference"`
	DevelopmentOpportunities     string `json:"developmentOpportunities" validate:"required,survey_option=developmentOpportunities"`
	LearningPreference           string `json:"learningPreference" validate:"required,survey_option=learningPreference"`
	WeakestSkill                 string `json:"weakestSkill" validate:"required,survey_option=weakestSkill"`
	RecognitionSatisfaction      string `json:"recognitionSatisfaction" validate:"required,survey_option=recognitionSatisfaction"`
	FeedbackFrequency            string `json:"feedbackFrequency" validate:"required,survey_option=feedbackFrequency"`
	RecommendCompany             string `json:"recommendCompany" validate:"required,survey_option=recommendCompany"`

	OverallWorkLifeBalance  string `json:"overallWorkLifeBalance" validate:"max=4000"`
	TeamWorkingRelationship string `json:"teamWorkingRelationship" validate:"max=4000"`
	EnjoymentOfWork         string `json:"enjoymentOfWork" validate:"max=4000"`
	CollaborationChallenges string `json:"collaborationChallenges" validate:"max=4000"`
	WorkRelatedStressors    string `json:"workRelatedStressors" validate:"max=4000"`
	SupportWellBeing        string `json:"supportWellBeing" validate:"max=4000"`
	ImproveExperience       string `json:"improveExperience" validate:"max=4000"`
}

// Record copies the answers into a new record owned by userID.
func (r SubmitFeedbackRequest) Record(userID string) *models.FeedbackRecord {
	return &models.FeedbackRecord{
		UserID:                       userID,
		TeamNumber:                   r.TeamNumber,
		WorkSatisfaction:             r.WorkSatisfaction,
		WorkLifeBalance:              r.WorkLifeBalance,
		WorkSupport:                  r.WorkSupport,
		InterDepartmentCommunication: r.InterDepartmentCommunication,
		WorkRecognition:              r.WorkRecognition,
		ToolsSatisfaction:            r.ToolsSatisfaction,
		CultureAlignment:             r.CultureAlignment,
		CareerGrowthSatisfaction:     r.CareerGrowthSatisfaction,
		TrainingPreference:           r.TrainingPreference,
		DevelopmentOpportunities:     r.DevelopmentOpportunities,
		LearningPreference:           r.LearningPreference,
		WeakestSkill:                 r.WeakestSkill,
		RecognitionSatisfaction:      r.RecognitionSatisfaction,
		FeedbackFrequency:            r.FeedbackFrequency,
		RecommendCompany:             r.RecommendCompany,
		OverallWorkLifeBalance:       r.OverallWorkLifeBalance,
		TeamWorkingRelationship:      r.TeamWorkingRelationship,
		EnjoymentOfWork:              r.EnjoymentOfWork,
		CollaborationChallenges:      r.CollaborationChallenges,
		WorkRelatedStressors:         r.WorkRelatedStressors,
		SupportWellBeing:             r.SupportWellBeing,
		ImproveExperience:            r.ImproveExperience,
	}
}

// SubmitFeedbackResponse returns the id of the stored record.
type SubmitFeedbackResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// TeamRequest selects a team for listing, aggregation and reporting.
type TeamRequest struct {
	TeamNumber int `json:"teamNumber" validate:"required,gt=0"`
}
