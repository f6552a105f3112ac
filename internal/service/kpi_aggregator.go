package service

import (
	"math"
	"sort"
	"strings"

	"github.com/noah-isme/team-pulse-api/internal/models"
	"github.com/noah-isme/team-pulse-api/internal/survey"
)

const defaultWeakSkillThreshold = 0.1

// KPIInputs carries the externally classified figures the aggregator folds in.
type KPIInputs struct {
	// Sentiment holds counts for survey.SentimentFields.
	Sentiment models.TeamSentiment
	// Stress is the classifier tally for workRelatedStressors; negative answers report stress.
	// Nil means the answers were not classified.
	Stress      *models.SentimentCounts
	Suggestions []string
}

// KPIAggregator derives a team's KPI object from its records. It is deterministic.
type KPIAggregator struct {
	schema             *survey.Schema
	normalizer         *survey.Normalizer
	weakSkillThreshold float64
}

// NewKPIAggregator builds an aggregator. Thresholds outside [0,1) fall back to 0.1.
func NewKPIAggregator(schema *survey.Schema, normalizer *survey.Normalizer, weakSkillThreshold float64) *KPIAggregator {
	if schema == nil {
		schema = survey.Default()
	}
	if normalizer == nil {
		normalizer = survey.NewNormalizer(schema, 0)
	}
	if weakSkillThreshold < 0 || weakSkillThreshold >= 1 {
		weakSkillThreshold = defaultWeakSkillThreshold
	}
	return &KPIAggregator{schema: schema, normalizer: normalizer, weakSkillThreshold: weakSkillThreshold}
}

// Aggregate computes every KPI. An empty batch yields zeros and empty collections.
func (a *KPIAggregator) Aggregate(teamNumber int, records []models.FeedbackRecord, in KPIInputs) models.TeamKPI {
	kpi := models.TeamKPI{
		TeamNumber:                          teamNumber,
		ResponseCount:                       len(records),
		AverageWorkSatisfaction:             a.average(records, survey.FieldWorkSatisfaction),
		AverageWorkLifeBalance:              a.average(records, survey.FieldWorkLifeBalance),
		CommonWeakSkillsReportedByEmployees: a.weakSkills(records),
		NetPromoterScore:                    netPromoterScore(records),
		BreakdownOfTrainingPreferences:      a.trainingBreakdown(records),
		SuggestionsForAreasOfImprovement:    []string{},
	}

	kpi.PercentageOfEmployeesReportingWorkRelatedStress = stressPercentage(in.Stress, len(records))

	total := SumSentiment(in.Sentiment, survey.SentimentFields)
	if t := total.Total(); t > 0 {
		pos := percent(total.Positive, t)
		neg := percent(total.Negative, t)
		if pos+neg > 100 {
			neg = round(100-pos, 2)
		}
		kpi.PositiveSentimentPercentage = pos
		kpi.NegativeSentimentPercentage = neg
	}

	if len(in.Suggestions) > 0 {
		kpi.SuggestionsForAreasOfImprovement = append(kpi.SuggestionsForAreasOfImprovement, in.Suggestions...)
	}
	return kpi
}

// average is the one-decimal mean over recognised labels. Unrecognised labels count as the
// normalizer default when that default sits on the scale, otherwise they are skipped.
func (a *KPIAggregator) average(records []models.FeedbackRecord, fieldID string) float64 {
	def := a.normalizer.Default()
	impute := def >= 1 && def <= 5

	sum, n := 0, 0
	for i := range records {
		v, ok := a.normalizer.Lookup(fieldID, records[i].Answer(fieldID))
		if !ok {
			if !impute {
				continue
			}
			v = def
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return round(float64(sum)/float64(n), 1)
}

// optionCounts tallies answers of a nominal question in option order. Matching ignores case.
func (a *KPIAggregator) optionCounts(records []models.FeedbackRecord, fieldID string) ([]survey.Option, []int, int) {
	q, _ := a.schema.Question(fieldID)
	counts := make([]int, len(q.Options))
	total := 0
	for i := range records {
		answer := strings.TrimSpace(records[i].Answer(fieldID))
		for j, opt := range q.Options {
			if strings.EqualFold(opt.Label, answer) {
				counts[j]++
				total++
				break
			}
		}
	}
	return q.Options, counts, total
}

func (a *KPIAggregator) weakSkills(records []models.FeedbackRecord) []string {
	opts, counts, total := a.optionCounts(records, survey.FieldWeakestSkill)
	out := []string{}
	if total == 0 {
		return out
	}

	idx := make([]int, 0, len(opts))
	for i, c := range counts {
		if c > 0 && float64(c)/float64(total) > a.weakSkillThreshold {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(x, y int) bool { return counts[idx[x]] > counts[idx[y]] })
	for _, i := range idx {
		out = append(out, opts[i].Label)
	}
	return out
}

func (a *KPIAggregator) trainingBreakdown(records []models.FeedbackRecord) map[string]float64 {
	opts, counts, total := a.optionCounts(records, survey.FieldTrainingPreference)
	out := make(map[string]float64, len(opts))
	for i, opt := range opts {
		if total == 0 {
			out[opt.Key] = 0
			continue
		}
		out[opt.Key] = percent(counts[i], total)
	}
	return out
}

// netPromoterScore projects recommendCompany onto 0-10 and returns %promoters - %detractors.
func netPromoterScore(records []models.FeedbackRecord) float64 {
	promoters, detractors, n := 0, 0, 0
	for i := range records {
		score, ok := survey.NPSScore(records[i].RecommendCompany)
		if !ok {
			continue
		}
		n++
		switch {
		case score >= 9:
			promoters++
		case score <= 6:
			detractors++
		}
	}
	if n == 0 {
		return 0
	}
	return round(float64(promoters-detractors)/float64(n)*100, 2)
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round(float64(part)/float64(total)*100, 2)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func stressPercentage(stress *models.SentimentCounts, n int) *float64 {
	var pct float64
	if n > 0 {
		if stress == nil {
			return nil
		}
		stressed := stress.Negative
		if stressed > n {
			stressed = n
		}
		if stressed < 0 {
			stressed = 0
		}
		pct = percent(stressed, n)
	}
	return &pct
}
