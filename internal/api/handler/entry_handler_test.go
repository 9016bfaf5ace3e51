package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/neuroccm/sleepbetter/internal/domain"
)

func TestEntryHandler_Log(t *testing.T) {
	profileID := uuid.New()

	tests := []struct {
		name           string
		profileID      string
		body           string
		mockService    *MockEntryService
		wantStatusCode int
	}{
		{
			name:           "log with hours",
			profileID:      profileID.String(),
			body:           `{"date": "2026-01-15", "hours": 6.5}`,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "log with bedtime and waketime",
			profileID:      profileID.String(),
			body:           `{"date": "2026-01-15", "bedtime": 23.5, "waketime": 6.75}`,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid profile ID",
			profileID:      "not-a-uuid",
			body:           `{"date": "2026-01-15", "hours": 6.5}`,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			profileID:      profileID.String(),
			body:           `{invalid}`,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing date",
			profileID:      profileID.String(),
			body:           `{"hours": 6.5}`,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "malformed date",
			profileID:      profileID.String(),
			body:           `{"date": "15/01/2026", "hours": 6.5}`,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "negative hours",
			profileID:      profileID.String(),
			body:           `{"date": "2026-01-15", "hours": -1}`,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "hours above 24",
			profileID:      profileID.String(),
			body:           `{"date": "2026-01-15", "hours": 24.5}`,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "bedtime out of clock range",
			profileID:      profileID.String(),
			body:           `{"date": "2026-01-15", "bedtime": 25.0, "waketime": 6.75}`,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:      "neither hours nor times",
			profileID: profileID.String(),
			body:      `{"date": "2026-01-15"}`,
			mockService: &MockEntryService{
				logFunc: func(ctx context.Context, pid uuid.UUID, req *domain.LogEntryRequest) (*domain.SleepEntry, error) {
					return nil, domain.ErrInvalidInput
				},
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:      "profile not found",
			profileID: uuid.New().String(),
			body:      `{"date": "2026-01-15", "hours": 6.5}`,
			mockService: &MockEntryService{
				logFunc: func(ctx context.Context, pid uuid.UUID, req *domain.LogEntryRequest) (*domain.SleepEntry, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewEntryHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/profiles/"+tt.profileID+"/entries", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("profileId", tt.profileID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			handler.Log(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Log() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestEntryHandler_List(t *testing.T) {
	profileID := uuid.New()

	tests := []struct {
		name           string
		profileID      string
		queryParams    string
		mockService    *MockEntryService
		wantStatusCode int
	}{
		{
			name:        "list all entries",
			profileID:   profileID.String(),
			queryParams: "",
			mockService: &MockEntryService{
				listFunc: func(ctx context.Context, pid uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
					return &domain.EntryListResponse{
						Data: []domain.EntryResponse{
							{ID: uuid.New(), ProfileID: pid, Date: "2026-01-15", Hours: 6.5},
						},
						Pagination: domain.PaginationResponse{HasMore: false},
					}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "list with filters",
			profileID:   profileID.String(),
			queryParams: "?from=2026-01-01&to=2026-01-31&limit=10",
			mockService: &MockEntryService{
				listFunc: func(ctx context.Context, pid uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
					if filter.From == nil || filter.To == nil {
						t.Error("Expected from and to filters to be set")
					}
					if filter.Limit != 10 {
						t.Errorf("Expected limit 10, got %d", filter.Limit)
					}
					return &domain.EntryListResponse{
						Data:       []domain.EntryResponse{},
						Pagination: domain.PaginationResponse{HasMore: false},
					}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid profile ID",
			profileID:      "not-a-uuid",
			queryParams:    "",
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "malformed from date",
			profileID:      profileID.String(),
			queryParams:    "?from=January",
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "non-numeric limit",
			profileID:      profileID.String(),
			queryParams:    "?limit=lots",
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:        "invalid cursor",
			profileID:   profileID.String(),
			queryParams: "?cursor=garbage",
			mockService: &MockEntryService{
				listFunc: func(ctx context.Context, pid uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
					return nil, domain.ErrInvalidInput
				},
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:        "profile not found",
			profileID:   uuid.New().String(),
			queryParams: "",
			mockService: &MockEntryService{
				listFunc: func(ctx context.Context, pid uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewEntryHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodGet, "/v1/profiles/"+tt.profileID+"/entries"+tt.queryParams, nil)
			rec := httptest.NewRecorder()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("profileId", tt.profileID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			handler.List(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("List() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestEntryHandler_Catchup(t *testing.T) {
	profileID := uuid.New()

	handler := NewEntryHandler(&MockEntryService{
		catchupFunc: func(ctx context.Context, pid uuid.UUID) (*domain.CatchupResponse, error) {
			return &domain.CatchupResponse{
				MissingDates: []string{"2026-01-12"},
				CatchupDates: []string{"2026-01-16", "2026-01-17"},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/profiles/"+profileID.String()+"/entries/catchup", nil)
	rec := httptest.NewRecorder()

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("profileId", profileID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	handler.Catchup(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Catchup() status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp domain.CatchupResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.MissingDates) != 1 || resp.MissingDates[0] != "2026-01-12" {
		t.Errorf("unexpected missing dates: %v", resp.MissingDates)
	}
	if len(resp.CatchupDates) != 2 {
		t.Errorf("expected 2 catchup dates, got %v", resp.CatchupDates)
	}
}
