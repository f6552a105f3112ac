// Package survey holds the fixed employee feedback questionnaire and the
// label-to-number conventions derived from it.
package survey

import (
	"strings"
	"unicode"
)

// Kind classifies how answers to a question are aggregated.
type Kind string

const (
	// KindOrdinal answers sit on a worst-to-best scale and normalize to 1..N.
	KindOrdinal Kind = "ordinal"
	// KindNominal answers are unordered categories; they are only frequency-counted.
	KindNominal Kind = "nominal"
	// KindOpenEnded answers are free text.
	KindOpenEnded Kind = "open_ended"
)

// Rating question identifiers.
const (
	FieldWorkSatisfaction             = "workSatisfaction"
	FieldWorkLifeBalance              = "workLifeBalance"
	FieldWorkSupport                  = "workSupport"
	FieldInterDepartmentCommunication = "interDepartmentCommunication"
	FieldWorkRecognition              = "workRecognition"
	FieldToolsSatisfaction            = "toolsSatisfaction"
	FieldCultureAlignment             = "cultureAlignment"
	FieldCareerGrowthSatisfaction     = "careerGrowthSatisfaction"
	FieldTrainingPreference           = "trainingPreference"
	FieldDevelopmentOpportunities     = "developmentOpportunities"
	FieldLearningPreference           = "learningPreference"
	FieldWeakestSkill                 = "weakestSkill"
	FieldRecognitionSatisfaction      = "recognitionSatisfaction"
	FieldFeedbackFrequency            = "feedbackFrequency"
	FieldRecommendCompany             = "recommendCompany"
)

// Open-ended question identifiers.
const (
	FieldOverallWorkLifeBalance  = "overallWorkLifeBalance"
	FieldTeamWorkingRelationship = "teamWorkingRelationship"
	FieldEnjoymentOfWork         = "enjoymentOfWork"
	FieldCollaborationChallenges = "collaborationChallenges"
	FieldWorkRelatedStressors    = "workRelatedStressors"
	FieldSupportWellBeing        = "supportWellBeing"
	FieldImproveExperience       = "improveExperience"
)

// SentimentFields are the open-ended answers sent to the sentiment classifier.
var SentimentFields = []string{
	FieldOverallWorkLifeBalance,
	FieldTeamWorkingRelationship,
	FieldEnjoymentOfWork,
}

// ScaleFamily groups ordinal questions sharing the same label set.
type ScaleFamily string

const (
	ScaleSatisfaction  ScaleFamily = "satisfaction"
	ScaleBalance       ScaleFamily = "balance"
	ScaleSupport       ScaleFamily = "support"
	ScaleEffectiveness ScaleFamily = "effectiveness"
	ScaleValued        ScaleFamily = "valued"
	ScaleAlignment     ScaleFamily = "alignment"
	ScaleFrequency     ScaleFamily = "frequency"
	ScaleLikelihood    ScaleFamily = "likelihood"
)

// Option is one selectable answer. Key is a stable CamelCase identifier used in aggregate output.
type Option struct {
	Label string `json:"label"`
	Key   string `json:"key"`
}

// Question describes one survey item. Ordinal options are ordered worst to best;
// nominal options keep their fixed domain order.
type Question struct {
	ID      string      `json:"id"`
	Prompt  string      `json:"prompt"`
	Kind    Kind        `json:"kind"`
	Scale   ScaleFamily `json:"scale,omitempty"`
	Options []Option    `json:"options,omitempty"`
	Title   string      `json:"title"`
}

// Schema is the immutable questionnaire.
type Schema struct {
	questions []Question
	byID      map[string]int
	scales    map[string]RatingScale
}

// worst-to-best label sets per scale family
var scaleLabels = map[ScaleFamily][]string{
	ScaleSatisfaction:  {"Very dissatisfied", "Dissatisfied", "Neutral", "Satisfied", "Very satisfied"},
	ScaleBalance:       {"Poorly balanced", "Not very balanced", "Neutral", "Mostly balanced", "Very well balanced"},
	ScaleSupport:       {"Not supported at all", "Not very supported", "Neutral", "Supported", "Very well supported"},
	ScaleEffectiveness: {"Very ineffective", "Ineffective", "Neutral", "Effective", "Very effective"},
	ScaleValued:        {"Not valued at all", "Not very valued", "Neutral", "Valued", "Extremely valued"},
	ScaleAlignment:     {"Completely misaligned", "Not aligned", "Neutral", "Somewhat aligned", "Very well aligned"},
	ScaleFrequency:     {"Never", "Rarely", "Occasionally", "Very often"},
	ScaleLikelihood:    {"Extremely unlikely", "Unlikely", "Neutral", "Likely", "Extremely likely"},
}

func ordinal(id, title, prompt string, family ScaleFamily) Question {
	return Question{ID: id, Title: title, Prompt: prompt, Kind: KindOrdinal, Scale: family, Options: options(scaleLabels[family]...)}
}

func nominal(id, title, prompt string, labels ...string) Question {
	return Question{ID: id, Title: title, Prompt: prompt, Kind: KindNominal, Options: options(labels...)}
}

func openEnded(id, title, prompt string) Question {
	return Question{ID: id, Title: title, Prompt: prompt, Kind: KindOpenEnded}
}

func options(labels ...string) []Option {
	out := make([]Option, len(labels))
	for i, label := range labels {
		out[i] = Option{Label: label, Key: OptionKey(label)}
	}
	return out
}

var defaultSchema = newSchema([]Question{
	ordinal(FieldWorkSatisfaction, "Work Satisfaction", "How satisfied are you with your current role and responsibilities at the company?", ScaleSatisfaction),
	ordinal(FieldWorkLifeBalance, "Work-Life Balance", "How well do you feel your work-life balance is maintained at the company?", ScaleBalance),
	ordinal(FieldWorkSupport, "Work Support", "How supported do you feel by your manager in your daily tasks and career growth?", ScaleSupport),
	ordinal(FieldInterDepartmentCommunication, "Inter-Department Communication", "How effective is the communication between different departments within the company?", ScaleEffectiveness),
	ordinal(FieldWorkRecognition, "Work Recognition", "How valued do you feel for your contributions to the company?", ScaleValued),
	ordinal(FieldToolsSatisfaction, "Tools Satisfaction", "How satisfied are you with the tools and resources provided to do your job effectively?", ScaleSatisfaction),
	ordinal(FieldCultureAlignment, "Culture Alignment", "How well do you feel the company's culture aligns with your personal values?", ScaleAlignment),
	ordinal(FieldCareerGrowthSatisfaction, "Career Growth Satisfaction", "How satisfied are you with the career growth opportunities available at the company?", ScaleSatisfaction),
	nominal(FieldTrainingPreference, "Training Preference", "Which area would you like more training or development in?",
		"Technical skills", "Leadership and management", "Communication and teamwork", "Time management", "Problem-solving and critical thinking"),
	ordinal(FieldDevelopmentOpportunities, "Development Opportunities", "How often do you have opportunities for professional development and skill-building?", ScaleFrequency),
	nominal(FieldLearningPreference, "Learning Preference", "What is your preferred method of learning new skills?",
		"Hands-on training/workshops", "Online courses", "Reading materials", "Learning from colleagues/mentors", "Self-paced study"),
	nominal(FieldWeakestSkill, "Weakest Skill", "Which skill do you feel is your weakest and would like to improve?",
		"Technical skills", "Leadership skills", "Communication skills", "Problem-solving skills", "Time management skills"),
	ordinal(FieldRecognitionSatisfaction, "Recognition Satisfaction", "How satisfied are you with the recognition and appreciation you receive for your work?", ScaleSatisfaction),
	nominal(FieldFeedbackFrequency, "Feedback Frequency", "How often would you like to receive feedback on your performance?",
		"Weekly", "Monthly", "Quarterly", "Annually", "Only when necessary"),
	ordinal(FieldRecommendCompany, "Recommend Company", "How likely are you to recommend the company as a good place to work?", ScaleLikelihood),

	openEnded(FieldOverallWorkLifeBalance, "Overall Work-Life Balance", "How would you describe your overall work-life balance?"),
	openEnded(FieldTeamWorkingRelationship, "Team Working Relationship", "How would you describe your working relationship with your team?"),
	openEnded(FieldEnjoymentOfWork, "Enjoyment of Work", "What do you enjoy most about your work?"),
	openEnded(FieldCollaborationChallenges, "Collaboration Challenges", "What challenges do you face when collaborating with colleagues?"),
	openEnded(FieldWorkRelatedStressors, "Work-Related Stressors", "What are the main sources of work-related stress for you?"),
	openEnded(FieldSupportWellBeing, "Support for Well-Being", "How could the company better support your well-being?"),
	openEnded(FieldImproveExperience, "Improve Experience", "What would most improve your experience at the company?"),
})

func newSchema(questions []Question) *Schema {
	s := &Schema{
		questions: questions,
		byID:      make(map[string]int, len(questions)),
		scales:    make(map[string]RatingScale),
	}
	for i, q := range questions {
		s.byID[q.ID] = i
		if q.Kind == KindOrdinal {
			s.scales[q.ID] = newRatingScale(q.Options)
		}
	}
	return s
}

// Default returns the questionnaire used by the portal.
func Default() *Schema {
	return defaultSchema
}

// Questions returns every question, rating questions first.
func (s *Schema) Questions() []Question {
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// RatingQuestions returns ordinal and nominal questions in form order.
func (s *Schema) RatingQuestions() []Question {
	out := make([]Question, 0, 15)
	for _, q := range s.questions {
		if q.Kind != KindOpenEnded {
			out = append(out, q)
		}
	}
	return out
}

// OpenEndedQuestions returns the free-text questions in form order.
func (s *Schema) OpenEndedQuestions() []Question {
	out := make([]Question, 0, 7)
	for _, q := range s.questions {
		if q.Kind == KindOpenEnded {
			out = append(out, q)
		}
	}
	return out
}

// Question looks up a question by identifier.
func (s *Schema) Question(id string) (Question, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return Question{}, false
	}
	return s.questions[idx], true
}

// Scale returns the rating scale of an ordinal question.
func (s *Schema) Scale(id string) (RatingScale, bool) {
	scale, ok := s.scales[id]
	return scale, ok
}

// IsValidOption reports whether label is exactly one of the question's options.
func (s *Schema) IsValidOption(id, label string) bool {
	q, ok := s.Question(id)
	if !ok || q.Kind == KindOpenEnded {
		return false
	}
	for _, opt := range q.Options {
		if opt.Label == label {
			return true
		}
	}
	return false
}

// OptionKey turns a label such as "Problem-solving and critical thinking" into
// "ProblemSolvingAndCriticalThinking".
func OptionKey(label string) string {
	var b strings.Builder
	upper := true
	for _, r := range label {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
