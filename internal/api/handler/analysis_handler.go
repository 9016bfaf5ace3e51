package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/neuroccm/sleepbetter/internal/domain"
	"github.com/neuroccm/sleepbetter/internal/service"
	"github.com/neuroccm/sleepbetter/pkg/problem"
)

// DefaultPlanWeeks is the plan length used when the weeks parameter is
// omitted.
const DefaultPlanWeeks = 2

// AnalysisHandler serves the computed views over a profile's sleep
// history: debt, status, tonight's recommendation, the recovery plan
// and trends.
type AnalysisHandler struct {
	debtService           service.DebtService
	recommendationService service.RecommendationService
	planService           service.PlanService
	trendsService         service.TrendsService
}

func NewAnalysisHandler(
	debtService service.DebtService,
	recommendationService service.RecommendationService,
	planService service.PlanService,
	trendsService service.TrendsService,
) *AnalysisHandler {
	return &AnalysisHandler{
		debtService:           debtService,
		recommendationService: recommendationService,
		planService:           planService,
		trendsService:         trendsService,
	}
}

// GetDebt handles GET /v1/profiles/{profileId}/sleep/debt
// @Summary Get cumulative sleep debt
// @Description Compute the running sleep debt over the logged history. Debt accumulates per night and is floored at zero; surplus sleep pays debt down but never banks credit.
// @Tags analysis
// @Produce json
// @Param profileId path string true "Profile UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param window_days query integer false "Number of days to analyze (0 = full history)" default(0) minimum(0) maximum(365)
// @Success 200 {object} domain.DebtReport "Debt report"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId}/sleep/debt [get]
func (h *AnalysisHandler) GetDebt(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	windowDays := parseIntParam(r, "window_days", 0)
	if windowDays < 0 || windowDays > 365 {
		problem.BadRequest("window_days must be between 0 and 365").Write(w)
		return
	}

	report, err := h.debtService.Compute(r.Context(), profileID, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Profile not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidEntry) {
			problem.BadRequest("History contains an entry with hours outside 0-24").Write(w)
			return
		}
		problem.InternalError("Failed to compute sleep debt").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// GetStatus handles GET /v1/profiles/{profileId}/sleep/status
// @Summary Get sleep status summary
// @Description Summarize the full history and the last seven nights, including the progressive debt tail and catch-up dates.
// @Tags analysis
// @Produce json
// @Param profileId path string true "Profile UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.StatusReport "Status summary"
// @Failure 400 {object} problem.Problem "Invalid profile ID"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId}/sleep/status [get]
func (h *AnalysisHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	report, err := h.debtService.Status(r.Context(), profileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Profile not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute status").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// GetRecommendation handles GET /v1/profiles/{profileId}/sleep/recommendation
// @Summary Get tonight's sleep recommendation
// @Description Recommend tonight's target hours and bedtime based on current debt, with a prioritized advice list.
// @Tags analysis
// @Produce json
// @Param profileId path string true "Profile UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.TonightRecommendation "Tonight's recommendation"
// @Failure 400 {object} problem.Problem "Invalid profile ID"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId}/sleep/recommendation [get]
func (h *AnalysisHandler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	rec, err := h.recommendationService.RecommendTonight(r.Context(), profileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Profile not found").Write(w)
			return
		}
		problem.InternalError("Failed to build recommendation").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

// GetPlan handles GET /v1/profiles/{profileId}/sleep/plan
// @Summary Build a recovery plan
// @Description Build a day-by-day recovery plan that pays current debt down with capped nightly boosts, front-loaded and larger on weekends.
// @Tags analysis
// @Produce json
// @Param profileId path string true "Profile UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param weeks query integer false "Plan length in weeks (1-52)" default(2) minimum(1) maximum(52)
// @Success 200 {object} domain.RecoveryPlan "Recovery plan"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId}/sleep/plan [get]
func (h *AnalysisHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	weeks := parseIntParam(r, "weeks", DefaultPlanWeeks)

	plan, err := h.planService.BuildPlan(r.Context(), profileID, weeks)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Profile not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidPlanDuration) {
			problem.BadRequest("weeks must be between 1 and 52").Write(w)
			return
		}
		problem.InternalError("Failed to build recovery plan").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plan)
}

// GetTrends handles GET /v1/profiles/{profileId}/sleep/trends
// @Summary Analyze sleep trends
// @Description Analyze sleep patterns over a window: per-weekday averages, best and worst nights, trend direction and quality breakdown.
// @Tags analysis
// @Produce json
// @Param profileId path string true "Profile UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param window query string false "Analysis window in days (7, 15, 30, 45, 90, 120, 365) or 'all'" default(all)
// @Success 200 {object} domain.TrendsReport "Trends report"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId}/sleep/trends [get]
func (h *AnalysisHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	window := r.URL.Query().Get("window")

	report, err := h.trendsService.Analyze(r.Context(), profileID, window)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Profile not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("window must be one of 7, 15, 30, 45, 90, 120, 365 or 'all'").Write(w)
			return
		}
		problem.InternalError("Failed to analyze trends").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
