package service

import (
	"fmt"
	"strings"

	"github.com/noah-isme/team-pulse-api/internal/models"
	"github.com/noah-isme/team-pulse-api/internal/survey"
)

const (
	reportSystemPrompt = "You are a helpful assistant that summarizes employee feedback and provides recommendations for managers. Reply with one JSON object and nothing else."
	notAnswered        = "N/A"
)

var reportKeyShapes = map[string]string{
	models.ReportKeySummary:               "string, a short narrative overview",
	models.ReportKeyPositiveWellbeing:     "array of strings",
	models.ReportKeyNegativeWellbeing:     "array of strings",
	models.ReportKeyPositiveWorkEnv:       "array of strings",
	models.ReportKeyNegativeWorkEnv:       "array of strings",
	models.ReportKeyActionableSuggestions: "array of strings, concrete actions for the manager",
}

// BuildReportPrompt renders the fixed instruction template over records.
func BuildReportPrompt(schema *survey.Schema, teamNumber int, records []models.FeedbackRecord) string {
	if schema == nil {
		schema = survey.Default()
	}
	var b strings.Builder

	fmt.Fprintf(&b, "Summarize the following %d employee feedback entries for team %d into a manager report.\n\n", len(records), teamNumber)

	b.WriteString("Rating answers use this numeric convention (1 is worst):\n")
	var nominal []string
	for _, q := range schema.RatingQuestions() {
		if q.Kind == survey.KindNominal {
			nominal = append(nominal, q.Title)
			continue
		}
		pairs := make([]string, len(q.Options))
		for i, opt := range q.Options {
			pairs[i] = fmt.Sprintf("%s=%d", opt.Label, i+1)
		}
		fmt.Fprintf(&b, "- %s: %s\n", q.Title, strings.Join(pairs, ", "))
	}
	fmt.Fprintf(&b, "These answers are categories without a numeric order; only count how often each appears: %s.\n\n", strings.Join(nominal, ", "))

	b.WriteString("Feedback entries:\n")
	for i := range records {
		writeFeedbackBlock(&b, schema, i+1, &records[i])
	}

	b.WriteString("\nReturn a JSON object with exactly these keys:\n")
	for _, key := range models.RequiredReportKeys {
		fmt.Fprintf(&b, "- %q: %s\n", key, reportKeyShapes[key])
	}
	return b.String()
}

func writeFeedbackBlock(b *strings.Builder, schema *survey.Schema, n int, rec *models.FeedbackRecord) {
	fmt.Fprintf(b, "Feedback #%d:\n", n)
	for _, q := range schema.Questions() {
		answer := strings.TrimSpace(rec.Answer(q.ID))
		if answer == "" {
			answer = notAnswered
		}
		// keep one line per answer
		answer = strings.Join(strings.Fields(answer), " ")
		fmt.Fprintf(b, "- %s: %s\n", q.Title, answer)
	}
	b.WriteString("\n")
}
