package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/neuroccm/sleepbetter/internal/domain"
	"github.com/neuroccm/sleepbetter/internal/llm"
	"github.com/neuroccm/sleepbetter/internal/repository"
)

const (
	// InsightsWindowDays is the history window the LLM reasons over.
	InsightsWindowDays = 30
	// InsightsPlanWeeks is the projected recovery horizon shown to the LLM.
	InsightsPlanWeeks = 2
)

// InsightsService generates LLM-backed sleep insights.
type InsightsService interface {
	// Generate creates sleep insights for a profile.
	Generate(ctx context.Context, profileID uuid.UUID) (*domain.InsightsResponse, error)
}

type insightsService struct {
	debtService   DebtService
	trendsService TrendsService
	planService   PlanService
	llmClient     llm.InsightsLLM
	profileRepo   repository.ProfileRepository
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	debtService DebtService,
	trendsService TrendsService,
	planService PlanService,
	llmClient llm.InsightsLLM,
	profileRepo repository.ProfileRepository,
) InsightsService {
	return &insightsService{
		debtService:   debtService,
		trendsService: trendsService,
		planService:   planService,
		llmClient:     llmClient,
		profileRepo:   profileRepo,
	}
}

func (s *insightsService) Generate(ctx context.Context, profileID uuid.UUID) (*domain.InsightsResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	debt, err := s.debtService.Compute(ctx, profileID, InsightsWindowDays)
	if err != nil {
		return nil, err
	}

	trends, err := s.trendsService.Analyze(ctx, profileID, "30")
	if err != nil {
		return nil, err
	}

	plan, err := s.planService.BuildPlan(ctx, profileID, InsightsPlanWeeks)
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{
		Profile: profile.ToResponse(),
		Debt:    *debt,
		Trends:  *trends,
		Plan:    *plan,
	}

	llmOutput, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	return &domain.InsightsResponse{
		Debt:     *debt,
		Trends:   *trends,
		Insights: *llmOutput,
	}, nil
}
