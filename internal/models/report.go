package models

// Manager report keys the generator must return.
const (
	ReportKeySummary               = "summary_of_report"
	ReportKeyPositiveWellbeing     = "positive_points_employee_wellbeing"
	ReportKeyNegativeWellbeing     = "negative_points_employee_wellbeing"
	ReportKeyPositiveWorkEnv       = "positive_points_work_environment"
	ReportKeyNegativeWorkEnv       = "negative_points_work_environment"
	ReportKeyActionableSuggestions = "actionable_suggestions_for_improvement"
)

// RequiredReportKeys lists the keys checked on every generated report, in prompt order.
var RequiredReportKeys = []string{
	ReportKeySummary,
	ReportKeyPositiveWellbeing,
	ReportKeyNegativeWellbeing,
	ReportKeyPositiveWorkEnv,
	ReportKeyNegativeWorkEnv,
	ReportKeyActionableSuggestions,
}

// ManagerReport is a validated narrative report. Raw keeps the normalized JSON text
// returned by the generator.
type ManagerReport struct {
	Summary                 string   `json:"summary_of_report"`
	PositiveWellbeing       []string `json:"positive_points_employee_wellbeing"`
	NegativeWellbeing       []string `json:"negative_points_employee_wellbeing"`
	PositiveWorkEnvironment []string `json:"positive_points_work_environment"`
	NegativeWorkEnvironment []string `json:"negative_points_work_environment"`
	ActionableSuggestions   []string `json:"actionable_suggestions_for_improvement"`
	Raw                     string   `json:"-"`
}
