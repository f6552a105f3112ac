package service

import (
	"context"
	"sync"

	"github.com/noah-isme/team-pulse-api/internal/models"
	"github.com/noah-isme/team-pulse-api/internal/repository"
	"github.com/noah-isme/team-pulse-api/pkg/llm"
)

type memoryFeedbackStore struct {
	mu         sync.Mutex
	records    []models.FeedbackRecord
	acquireErr error
	createErr  error
	acquired   int
	closed     int
}

func (s *memoryFeedbackStore) Acquire(ctx context.Context) (repository.FeedbackSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.acquireErr != nil {
		return nil, s.acquireErr
	}
	s.acquired++
	return &memorySession{store: s}, nil
}

type memorySession struct {
	store *memoryFeedbackStore
}

func (m *memorySession) Create(ctx context.Context, record *models.FeedbackRecord) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.createErr != nil {
		return m.store.createErr
	}
	if record.ID == "" {
		record.ID = "rec-" + string(rune('a'+len(m.store.records)))
	}
	m.store.records = append(m.store.records, *record)
	return nil
}

func (m *memorySession) ListByTeam(ctx context.Context, teamNumber int) ([]models.FeedbackRecord, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	out := []models.FeedbackRecord{}
	for _, r := range m.store.records {
		if r.TeamNumber == teamNumber {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memorySession) Close() error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.closed++
	return nil
}

type stubTeamClassifier struct {
	mu     sync.Mutex
	result models.TeamSentiment
	err    error
	calls  [][]string
}

func (s *stubTeamClassifier) Classify(ctx context.Context, teamNumber int, fields []string) (models.TeamSentiment, error) {
	s.mu.Lock()
	s.calls = append(s.calls, fields)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubReportGenerator struct {
	mu     sync.Mutex
	report *models.ManagerReport
	err    error
	calls  int
}

func (s *stubReportGenerator) GenerateReport(ctx context.Context, teamNumber int, records []models.FeedbackRecord) (*models.ManagerReport, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

type stubGenerator struct {
	mu   sync.Mutex
	text string
	err  error
	reqs []llm.Request
}

func (s *stubGenerator) Generate(ctx context.Context, req llm.Request) (string, error) {
	s.mu.Lock()
	s.reqs = append(s.reqs, req)
	s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func managerClaims(team int) *models.JWTClaims {
	return &models.JWTClaims{UserID: "manager-1", Role: models.RoleManager, TeamNumber: team}
}

func adminClaims() *models.JWTClaims {
	return &models.JWTClaims{UserID: "admin-1", Role: models.RoleAdmin}
}

func employeeClaims(team int) *models.JWTClaims {
	return &models.JWTClaims{UserID: "employee-1", Role: models.RoleEmployee, TeamNumber: team}
}
