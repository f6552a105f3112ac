package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/team-pulse-api/internal/survey"
)

func TestFeedbackRecordAnswerCoversSchema(t *testing.T) {
	rec := &FeedbackRecord{}
	// every question id must resolve to its own column
	seen := map[*string]string{}
	ptrs := map[string]*string{
		survey.FieldWorkSatisfaction:             &rec.WorkSatisfaction,
		survey.FieldWorkLifeBalance:              &rec.WorkLifeBalance,
		survey.FieldWorkSupport:                  &rec.WorkSupport,
		survey.FieldInterDepartmentCommunication: &rec.InterDepartmentCommunication,
		survey.FieldWorkRecognition:              &rec.WorkRecognition,
		survey.FieldToolsSatisfaction:            &rec.ToolsSatisfaction,
		survey.FieldCultureAlignment:             &rec.CultureAlignment,
		survey.FieldCareerGrowthSatisfaction:     &rec.CareerGrowthSatisfaction,
		survey.FieldTrainingPreference:           &rec.TrainingPreference,
		survey.FieldDevelopmentOpportunities:     &rec.DevelopmentOpportunities,
		survey.FieldLearningPreference:           &rec.LearningPreference,
		survey.FieldWeakestSkill:                 &rec.WeakestSkill,
		survey.FieldRecognitionSatisfaction:      &rec.RecognitionSatisfaction,
		survey.FieldFeedbackFrequency:            &rec.FeedbackFrequency,
		survey.FieldRecommendCompany:             &rec.RecommendCompany,
		survey.FieldOverallWorkLifeBalance:       &rec.OverallWorkLifeBalance,
		survey.FieldTeamWorkingRelationship:      &rec.TeamWorkingRelationship,
		survey.FieldEnjoymentOfWork:              &rec.EnjoymentOfWork,
		survey.FieldCollaborationChallenges:      &rec.CollaborationChallenges,
		survey.FieldWorkRelatedStressors:         &rec.WorkRelatedStressors,
		survey.FieldSupportWellBeing:             &rec.SupportWellBeing,
		survey.FieldImproveExperience:            &rec.ImproveExperience,
	}

	for _, q := range survey.Default().Questions() {
		p, ok := ptrs[q.ID]
		if !assert.True(t, ok, q.ID) {
			continue
		}
		*p = "value-" + q.ID
		_, dup := seen[p]
		assert.False(t, dup, q.ID)
		seen[p] = q.ID
	}
	for id := range ptrs {
		assert.Equal(t, "value-"+id, rec.Answer(id))
	}
	assert.Empty(t, rec.Answer("unknown"))
}
