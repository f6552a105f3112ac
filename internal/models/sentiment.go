package models

// SentimentCounts is the classifier's tally for one open-ended field.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Total returns the number of classified answers.
func (c SentimentCounts) Total() int {
	return c.Positive + c.Negative + c.Neutral
}

// TeamSentiment maps open-ended field ids to their counts.
type TeamSentiment map[string]SentimentCounts
