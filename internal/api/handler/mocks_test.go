package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/neuroccm/sleepbetter/internal/domain"
	"github.com/neuroccm/sleepbetter/internal/langfuse"
)

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	createFunc func(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error)
	getFunc    func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	updateFunc func(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error)
}

func (m *MockProfileService) Create(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.Profile{
		ID:           uuid.New(),
		Name:         req.Name,
		TargetHours:  7,
		OptimalHours: 8,
		WakeTime:     6.75,
	}, nil
}

func (m *MockProfileService) Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return &domain.Profile{
		ID:           id,
		Name:         "Alex",
		TargetHours:  7,
		OptimalHours: 8,
		WakeTime:     6.75,
	}, nil
}

func (m *MockProfileService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return &domain.Profile{
		ID:           id,
		Name:         "Alex",
		TargetHours:  7,
		OptimalHours: 8,
		WakeTime:     6.75,
	}, nil
}

// MockEntryService is a mock implementation of EntryService
type MockEntryService struct {
	logFunc     func(ctx context.Context, profileID uuid.UUID, req *domain.LogEntryRequest) (*domain.SleepEntry, error)
	listFunc    func(ctx context.Context, profileID uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error)
	catchupFunc func(ctx context.Context, profileID uuid.UUID) (*domain.CatchupResponse, error)
}

func (m *MockEntryService) Log(ctx context.Context, profileID uuid.UUID, req *domain.LogEntryRequest) (*domain.SleepEntry, error) {
	if m.logFunc != nil {
		return m.logFunc(ctx, profileID, req)
	}
	entry := &domain.SleepEntry{
		ID:        uuid.New(),
		ProfileID: profileID,
		Hours:     7,
	}
	return entry, nil
}

func (m *MockEntryService) List(ctx context.Context, profileID uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, profileID, filter)
	}
	return &domain.EntryListResponse{
		Data:       []domain.EntryResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockEntryService) Catchup(ctx context.Context, profileID uuid.UUID) (*domain.CatchupResponse, error) {
	if m.catchupFunc != nil {
		return m.catchupFunc(ctx, profileID)
	}
	return &domain.CatchupResponse{}, nil
}

// MockDebtService is a mock implementation of DebtService
type MockDebtService struct {
	computeFunc func(ctx context.Context, profileID uuid.UUID, windowDays int) (*domain.DebtReport, error)
	statusFunc  func(ctx context.Context, profileID uuid.UUID) (*domain.StatusReport, error)
}

func (m *MockDebtService) Compute(ctx context.Context, profileID uuid.UUID, windowDays int) (*domain.DebtReport, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, profileID, windowDays)
	}
	return &domain.DebtReport{TargetHours: 7}, nil
}

func (m *MockDebtService) Status(ctx context.Context, profileID uuid.UUID) (*domain.StatusReport, error) {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, profileID)
	}
	return &domain.StatusReport{ProfileName: "Alex"}, nil
}

// MockRecommendationService is a mock implementation of RecommendationService
type MockRecommendationService struct {
	recommendFunc func(ctx context.Context, profileID uuid.UUID) (*domain.TonightRecommendation, error)
}

func (m *MockRecommendationService) RecommendTonight(ctx context.Context, profileID uuid.UUID) (*domain.TonightRecommendation, error) {
	if m.recommendFunc != nil {
		return m.recommendFunc(ctx, profileID)
	}
	return &domain.TonightRecommendation{
		TargetHours: 7,
		Priority:    domain.PriorityLow,
	}, nil
}

// MockPlanService is a mock implementation of PlanService
type MockPlanService struct {
	buildFunc func(ctx context.Context, profileID uuid.UUID, weeks int) (*domain.RecoveryPlan, error)
}

func (m *MockPlanService) BuildPlan(ctx context.Context, profileID uuid.UUID, weeks int) (*domain.RecoveryPlan, error) {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, profileID, weeks)
	}
	return &domain.RecoveryPlan{Weeks: weeks}, nil
}

// MockTrendsService is a mock implementation of TrendsService
type MockTrendsService struct {
	analyzeFunc func(ctx context.Context, profileID uuid.UUID, window string) (*domain.TrendsReport, error)
}

func (m *MockTrendsService) Analyze(ctx context.Context, profileID uuid.UUID, window string) (*domain.TrendsReport, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, profileID, window)
	}
	return &domain.TrendsReport{Window: "all", Trend: domain.TrendUnknown}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, profileID uuid.UUID) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, profileID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, profileID)
	}
	return &domain.InsightsResponse{}, nil
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	enabled bool
	scores  []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return in.ID, nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}
