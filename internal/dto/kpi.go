package dto

// KPIRequest asks for a team's KPI object. IncludeSuggestions defaults to true.
type KPIRequest struct {
	TeamNumber         int   `json:"teamNumber" validate:"required,gt=0"`
	IncludeSuggestions *bool `json:"includeSuggestions,omitempty"`
}

// WantsSuggestions reports whether the narrative suggestions should be generated.
func (r KPIRequest) WantsSuggestions() bool {
	return r.IncludeSuggestions == nil || *r.IncludeSuggestions
}

// ExportFormat selects the KPI export encoding.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// KPIExportQuery binds the export query string.
type KPIExportQuery struct {
	Format string `form:"format" json:"format" validate:"omitempty,oneof=csv pdf"`
}
