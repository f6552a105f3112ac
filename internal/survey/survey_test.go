package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaShape(t *testing.T) {
	s := Default()

	assert.Len(t, s.RatingQuestions(), 15)
	assert.Len(t, s.OpenEndedQuestions(), 7)
	for _, q := range s.RatingQuestions() {
		assert.GreaterOrEqual(t, len(q.Options), 4, q.ID)
		assert.LessOrEqual(t, len(q.Options), 5, q.ID)
	}
	for _, id := range SentimentFields {
		q, ok := s.Question(id)
		require.True(t, ok)
		assert.Equal(t, KindOpenEnded, q.Kind)
	}
}

func TestIsValidOptionIsExact(t *testing.T) {
	s := Default()

	assert.True(t, s.IsValidOption(FieldWorkSatisfaction, "Neutral"))
	assert.False(t, s.IsValidOption(FieldWorkSatisfaction, "Okay"))
	assert.False(t, s.IsValidOption(FieldWorkSatisfaction, "neutral"))
	assert.False(t, s.IsValidOption(FieldEnjoymentOfWork, "Neutral"))
	assert.False(t, s.IsValidOption("unknown", "Neutral"))
}

func TestNormalizeRange(t *testing.T) {
	n := NewNormalizer(nil, 0)
	s := Default()

	for _, q := range s.RatingQuestions() {
		for _, opt := range q.Options {
			v := n.Normalize(q.ID, opt.Label)
			if q.Kind == KindNominal {
				assert.Equal(t, 0, v, "%s/%s", q.ID, opt.Label)
				continue
			}
			assert.GreaterOrEqual(t, v, 1, "%s/%s", q.ID, opt.Label)
			assert.LessOrEqual(t, v, 5, "%s/%s", q.ID, opt.Label)
		}
	}
}

func TestNormalizeValues(t *testing.T) {
	n := NewNormalizer(nil, 0)

	assert.Equal(t, 5, n.Normalize(FieldWorkSatisfaction, "Very satisfied"))
	assert.Equal(t, 1, n.Normalize(FieldWorkSatisfaction, "Very dissatisfied"))
	assert.Equal(t, 5, n.Normalize(FieldWorkLifeBalance, "Very well balanced"))
	assert.Equal(t, 4, n.Normalize(FieldDevelopmentOpportunities, "Very often"))
	assert.Equal(t, 4, n.Normalize(FieldWorkSatisfaction, "  satisfied "))
	assert.Equal(t, 0, n.Normalize(FieldWorkSatisfaction, "Okay"))
	assert.Equal(t, 0, n.Normalize(FieldWorkSatisfaction, ""))
	assert.Equal(t, 0, n.Normalize("nope", "Neutral"))

	custom := NewNormalizer(nil, -1)
	assert.Equal(t, -1, custom.Normalize(FieldWorkSatisfaction, "Okay"))
}

func TestNPSScore(t *testing.T) {
	v, ok := NPSScore("Extremely likely")
	require.True(t, ok)
	assert.Equal(t, 10, v)

	v, ok = NPSScore("Extremely unlikely")
	require.True(t, ok)
	assert.Equal(t, 0, v)

	_, ok = NPSScore("Maybe")
	assert.False(t, ok)

	assert.Len(t, NPSProjection(), 5)
}

func TestOptionKey(t *testing.T) {
	assert.Equal(t, "TechnicalSkills", OptionKey("Technical skills"))
	assert.Equal(t, "ProblemSolvingAndCriticalThinking", OptionKey("Problem-solving and critical thinking"))
	assert.Equal(t, "HandsOnTrainingWorkshops", OptionKey("Hands-on training/workshops"))
}

func TestLookupDistinguishesUnknown(t *testing.T) {
	n := NewNormalizer(nil, 3)

	v, ok := n.Lookup(FieldRecommendCompany, "Likely")
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = n.Lookup(FieldRecommendCompany, "Perhaps")
	assert.False(t, ok)
	assert.Equal(t, 3, n.Normalize(FieldRecommendCompany, "Perhaps"))

	_, ok = n.Lookup(FieldWeakestSkill, "Technical skills")
	assert.False(t, ok)
}
