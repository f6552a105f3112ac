package service

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/noah-isme/team-pulse-api/internal/models"
	appErrors "github.com/noah-isme/team-pulse-api/pkg/errors"
)

// stripCodeFence removes an optional ```json ... ``` wrapper.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 && !strings.HasPrefix(strings.TrimSpace(text[:nl]), "{") {
		text = text[nl+1:]
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// ParseManagerReport validates generated text and decodes it. Any parse failure or missing
// key is a MALFORMED_REPORT error; partial reports are never returned.
func ParseManagerReport(text string) (*models.ManagerReport, error) {
	body := stripCodeFence(text)
	if !gjson.Valid(body) {
		return nil, appErrors.MalformedReport("response is not valid JSON", nil)
	}
	doc := gjson.Parse(body)
	if !doc.IsObject() {
		return nil, appErrors.MalformedReport("response is not a JSON object", nil)
	}

	for _, key := range models.RequiredReportKeys {
		node := doc.Get(key)
		if !node.Exists() {
			return nil, appErrors.WithDetail(appErrors.MalformedReport("missing key "+key, nil), "missingKey", key)
		}
		wantString := key == models.ReportKeySummary
		if wantString && node.Type != gjson.String {
			return nil, appErrors.WithDetail(appErrors.MalformedReport(key+" must be a string", nil), "invalidKey", key)
		}
		if !wantString && !node.IsArray() {
			return nil, appErrors.WithDetail(appErrors.MalformedReport(key+" must be an array", nil), "invalidKey", key)
		}
	}

	var report models.ManagerReport
	if err := json.Unmarshal([]byte(body), &report); err != nil {
		return nil, appErrors.MalformedReport("report fields have unexpected types", err)
	}
	report.Raw = body
	return &report, nil
}
