package survey

import "strings"

// RatingScale maps each label of an ordinal question to 1..N, worst to best.
type RatingScale map[string]int

func newRatingScale(opts []Option) RatingScale {
	scale := make(RatingScale, len(opts))
	for i, opt := range opts {
		scale[opt.Label] = i + 1
	}
	return scale
}

// Value returns the scale position of label, matched case-insensitively.
func (s RatingScale) Value(label string) (int, bool) {
	label = strings.TrimSpace(label)
	if v, ok := s[label]; ok {
		return v, true
	}
	for l, v := range s {
		if strings.EqualFold(l, label) {
			return v, true
		}
	}
	return 0, false
}

// Normalizer converts categorical answers to numbers. Unknown, missing and
// nominal answers map to the configured default instead of failing.
type Normalizer struct {
	schema       *Schema
	defaultValue int
}

// NewNormalizer builds a normalizer over schema; nil uses the default questionnaire.
func NewNormalizer(schema *Schema, defaultValue int) *Normalizer {
	if schema == nil {
		schema = Default()
	}
	return &Normalizer{schema: schema, defaultValue: defaultValue}
}

// Default is the value returned for labels outside a field's scale.
func (n *Normalizer) Default() int {
	return n.defaultValue
}

// Normalize maps label on fieldID's scale to 1..5.
func (n *Normalizer) Normalize(fieldID, label string) int {
	if v, ok := n.Lookup(fieldID, label); ok {
		return v
	}
	return n.defaultValue
}

// Lookup is Normalize without the default: ok is false for labels off the field's scale.
func (n *Normalizer) Lookup(fieldID, label string) (int, bool) {
	scale, ok := n.schema.Scale(fieldID)
	if !ok {
		return 0, false
	}
	return scale.Value(label)
}

// npsProjection places the five recommend-company labels on the 0-10 NPS scale.
var npsProjection = map[string]int{
	"Extremely likely":   10,
	"Likely":             8,
	"Neutral":            5,
	"Unlikely":           3,
	"Extremely unlikely": 0,
}

// NPSScore projects a recommend-company label onto 0-10.
func NPSScore(label string) (int, bool) {
	label = strings.TrimSpace(label)
	for l, v := range npsProjection {
		if strings.EqualFold(l, label) {
			return v, true
		}
	}
	return 0, false
}

// NPSProjection returns a copy of the label to 0-10 table.
func NPSProjection() map[string]int {
	out := make(map[string]int, len(npsProjection))
	for k, v := range npsProjection {
		out[k] = v
	}
	return out
}
