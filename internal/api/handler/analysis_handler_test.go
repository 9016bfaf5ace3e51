package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/neuroccm/sleepbetter/internal/domain"
)

func newAnalysisHandler(
	debt *MockDebtService,
	rec *MockRecommendationService,
	plan *MockPlanService,
	trends *MockTrendsService,
) *AnalysisHandler {
	if debt == nil {
		debt = &MockDebtService{}
	}
	if rec == nil {
		rec = &MockRecommendationService{}
	}
	if plan == nil {
		plan = &MockPlanService{}
	}
	if trends == nil {
		trends = &MockTrendsService{}
	}
	return NewAnalysisHandler(debt, rec, plan, trends)
}

func analysisRequest(t *testing.T, profileID, path, query string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/v1/profiles/"+profileID+path+query, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("profileId", profileID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestAnalysisHandler_GetDebt(t *testing.T) {
	profileID := uuid.New()

	tests := []struct {
		name           string
		profileID      string
		queryParams    string
		mockService    *MockDebtService
		wantStatusCode int
	}{
		{
			name:        "full history",
			profileID:   profileID.String(),
			queryParams: "",
			mockService: &MockDebtService{
				computeFunc: func(ctx context.Context, pid uuid.UUID, windowDays int) (*domain.DebtReport, error) {
					if windowDays != 0 {
						t.Errorf("expected default window 0, got %d", windowDays)
					}
					return &domain.DebtReport{TargetHours: 7, TotalDebt: 2.5, Nights: 10}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "windowed",
			profileID:   profileID.String(),
			queryParams: "?window_days=30",
			mockService: &MockDebtService{
				computeFunc: func(ctx context.Context, pid uuid.UUID, windowDays int) (*domain.DebtReport, error) {
					if windowDays != 30 {
						t.Errorf("expected window 30, got %d", windowDays)
					}
					return &domain.DebtReport{TargetHours: 7}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid profile ID",
			profileID:      "not-a-uuid",
			queryParams:    "",
			mockService:    &MockDebtService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "window too large",
			profileID:      profileID.String(),
			queryParams:    "?window_days=700",
			mockService:    &MockDebtService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:        "profile not found",
			profileID:   uuid.New().String(),
			queryParams: "",
			mockService: &MockDebtService{
				computeFunc: func(ctx context.Context, pid uuid.UUID, windowDays int) (*domain.DebtReport, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:        "corrupt history entry",
			profileID:   profileID.String(),
			queryParams: "",
			mockService: &MockDebtService{
				computeFunc: func(ctx context.Context, pid uuid.UUID, windowDays int) (*domain.DebtReport, error) {
					return nil, domain.ErrInvalidEntry
				},
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newAnalysisHandler(tt.mockService, nil, nil, nil)
			rec := httptest.NewRecorder()

			handler.GetDebt(rec, analysisRequest(t, tt.profileID, "/sleep/debt", tt.queryParams))

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetDebt() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestAnalysisHandler_GetStatus(t *testing.T) {
	profileID := uuid.New()

	handler := newAnalysisHandler(&MockDebtService{
		statusFunc: func(ctx context.Context, pid uuid.UUID) (*domain.StatusReport, error) {
			return &domain.StatusReport{
				ProfileName: "Alex",
				Nights:      30,
				MeanHours:   6.9,
				CurrentDebt: 3.25,
			}, nil
		},
	}, nil, nil, nil)
	rec := httptest.NewRecorder()

	handler.GetStatus(rec, analysisRequest(t, profileID.String(), "/sleep/status", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("GetStatus() status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp domain.StatusReport
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.CurrentDebt != 3.25 {
		t.Errorf("expected current debt 3.25, got %v", resp.CurrentDebt)
	}
	if resp.Nights != 30 {
		t.Errorf("expected 30 nights, got %d", resp.Nights)
	}
}

func TestAnalysisHandler_GetRecommendation(t *testing.T) {
	profileID := uuid.New()

	tests := []struct {
		name           string
		profileID      string
		mockService    *MockRecommendationService
		wantStatusCode int
	}{
		{
			name:      "recommendation returned",
			profileID: profileID.String(),
			mockService: &MockRecommendationService{
				recommendFunc: func(ctx context.Context, pid uuid.UUID) (*domain.TonightRecommendation, error) {
					return &domain.TonightRecommendation{
						CurrentDebt:  6.0,
						TargetHours:  9.5,
						Priority:     domain.PriorityHigh,
						BedtimeClock: "21:00",
					}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid profile ID",
			profileID:      "not-a-uuid",
			mockService:    &MockRecommendationService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:      "profile not found",
			profileID: uuid.New().String(),
			mockService: &MockRecommendationService{
				recommendFunc: func(ctx context.Context, pid uuid.UUID) (*domain.TonightRecommendation, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newAnalysisHandler(nil, tt.mockService, nil, nil)
			rec := httptest.NewRecorder()

			handler.GetRecommendation(rec, analysisRequest(t, tt.profileID, "/sleep/recommendation", ""))

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetRecommendation() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestAnalysisHandler_GetPlan(t *testing.T) {
	profileID := uuid.New()

	tests := []struct {
		name           string
		profileID      string
		queryParams    string
		mockService    *MockPlanService
		wantStatusCode int
	}{
		{
			name:        "default two week plan",
			profileID:   profileID.String(),
			queryParams: "",
			mockService: &MockPlanService{
				buildFunc: func(ctx context.Context, pid uuid.UUID, weeks int) (*domain.RecoveryPlan, error) {
					if weeks != DefaultPlanWeeks {
						t.Errorf("expected default weeks %d, got %d", DefaultPlanWeeks, weeks)
					}
					return &domain.RecoveryPlan{Weeks: weeks}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "explicit weeks",
			profileID:   profileID.String(),
			queryParams: "?weeks=4",
			mockService: &MockPlanService{
				buildFunc: func(ctx context.Context, pid uuid.UUID, weeks int) (*domain.RecoveryPlan, error) {
					if weeks != 4 {
						t.Errorf("expected 4 weeks, got %d", weeks)
					}
					return &domain.RecoveryPlan{Weeks: weeks}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "invalid duration",
			profileID:   profileID.String(),
			queryParams: "?weeks=0",
			mockService: &MockPlanService{
				buildFunc: func(ctx context.Context, pid uuid.UUID, weeks int) (*domain.RecoveryPlan, error) {
					return nil, domain.ErrInvalidPlanDuration
				},
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:        "profile not found",
			profileID:   uuid.New().String(),
			queryParams: "",
			mockService: &MockPlanService{
				buildFunc: func(ctx context.Context, pid uuid.UUID, weeks int) (*domain.RecoveryPlan, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newAnalysisHandler(nil, nil, tt.mockService, nil)
			rec := httptest.NewRecorder()

			handler.GetPlan(rec, analysisRequest(t, tt.profileID, "/sleep/plan", tt.queryParams))

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetPlan() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestAnalysisHandler_GetTrends(t *testing.T) {
	profileID := uuid.New()

	tests := []struct {
		name           string
		profileID      string
		queryParams    string
		mockService    *MockTrendsService
		wantStatusCode int
	}{
		{
			name:        "default window is all",
			profileID:   profileID.String(),
			queryParams: "",
			mockService: &MockTrendsService{
				analyzeFunc: func(ctx context.Context, pid uuid.UUID, window string) (*domain.TrendsReport, error) {
					if window != "" {
						t.Errorf("expected empty window param, got %q", window)
					}
					return &domain.TrendsReport{Window: "all", Trend: domain.TrendUnknown}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "thirty day window",
			profileID:   profileID.String(),
			queryParams: "?window=30",
			mockService: &MockTrendsService{
				analyzeFunc: func(ctx context.Context, pid uuid.UUID, window string) (*domain.TrendsReport, error) {
					if window != "30" {
						t.Errorf("expected window 30, got %q", window)
					}
					return &domain.TrendsReport{Window: "30", HasData: true, Trend: domain.TrendStable}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "unsupported window",
			profileID:   profileID.String(),
			queryParams: "?window=14",
			mockService: &MockTrendsService{
				analyzeFunc: func(ctx context.Context, pid uuid.UUID, window string) (*domain.TrendsReport, error) {
					return nil, domain.ErrInvalidInput
				},
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:        "profile not found",
			profileID:   uuid.New().String(),
			queryParams: "",
			mockService: &MockTrendsService{
				analyzeFunc: func(ctx context.Context, pid uuid.UUID, window string) (*domain.TrendsReport, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newAnalysisHandler(nil, nil, nil, tt.mockService)
			rec := httptest.NewRecorder()

			handler.GetTrends(rec, analysisRequest(t, tt.profileID, "/sleep/trends", tt.queryParams))

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetTrends() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}
