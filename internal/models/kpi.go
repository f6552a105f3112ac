package models

// TeamKPI is the deterministic aggregate of one team's feedback. Percentages are 0-100.
// The stress percentage is nil when the classifier did not report the stressor answers.
type TeamKPI struct {
	TeamNumber                                      int                `json:"teamNumber"`
	ResponseCount                                   int                `json:"responseCount"`
	AverageWorkSatisfaction                         float64            `json:"AverageWorkSatisfaction"`
	AverageWorkLifeBalance                          float64            `json:"AverageWorkLifeBalance"`
	PercentageOfEmployeesReportingWorkRelatedStress *float64           `json:"PercentageOfEmployeesReportingWorkRelatedStress"`
	CommonWeakSkillsReportedByEmployees             []string           `json:"CommonWeakSkillsReportedByEmployees"`
	NetPromoterScore                                float64            `json:"NetPromoterScore"`
	PositiveSentimentPercentage                     float64            `json:"PositiveSentimentPercentage"`
	NegativeSentimentPercentage                     float64            `json:"NegativeSentimentPercentage"`
	BreakdownOfTrainingPreferences                  map[string]float64 `json:"BreakdownOfTrainingPreferences"`
	SuggestionsForAreasOfImprovement                []string           `json:"SuggestionsForAreasOfImprovement"`
}
