package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/neuroccm/sleepbetter/internal/domain"
	"github.com/neuroccm/sleepbetter/internal/repository"
	"github.com/neuroccm/sleepbetter/pkg/clockhour"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// MaxPlanWeeks bounds how far ahead a recovery plan can project.
const MaxPlanWeeks = 52

// PlanService projects multi-week recovery schedules.
type PlanService interface {
	BuildPlan(ctx context.Context, profileID uuid.UUID, weeks int) (*domain.RecoveryPlan, error)
}

type planService struct {
	entryRepo   repository.EntryRepository
	profileRepo repository.ProfileRepository
	cfg         domain.EngineConfig
}

// NewPlanService creates a new PlanService.
func NewPlanService(entryRepo repository.EntryRepository, profileRepo repository.ProfileRepository, cfg domain.EngineConfig) PlanService {
	return &planService{
		entryRepo:   entryRepo,
		profileRepo: profileRepo,
		cfg:         cfg,
	}
}

func (s *planService) BuildPlan(ctx context.Context, profileID uuid.UUID, weeks int) (*domain.RecoveryPlan, error) {
	if weeks <= 0 {
		return nil, domain.ErrInvalidPlanDuration
	}
	if weeks > MaxPlanWeeks {
		return nil, domain.ErrInvalidPlanDuration
	}

	tracer := otel.Tracer("sleepbetter-api/plan")
	ctx, span := tracer.Start(ctx, "PlanService.BuildPlan",
		trace.WithAttributes(
			attribute.String("profile.id", profileID.String()),
			attribute.Int("plan.weeks", weeks),
		),
	)
	defer span.End()

	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	cfg := s.cfg.WithProfile(profile)

	entries, err := s.entryRepo.ListChronological(ctx, profileID, domain.EntryFilter{})
	if err != nil {
		return nil, err
	}

	_, debt, err := computeDebtSeries(entries, cfg.TargetHours)
	if err != nil {
		return nil, err
	}

	inputPayload := map[string]any{
		"profile_id":    profileID.String(),
		"weeks":         weeks,
		"starting_debt": debt,
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	start := dateOnly(time.Now().UTC()).AddDate(0, 0, 1)
	plan := buildRecoveryPlan(debt, weeks, start, cfg)

	if outputJSON, err := json.Marshal(plan); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return plan, nil
}

// buildRecoveryPlan drains debt front-loaded over 7*weeks nights starting at
// start. Weekday nights take at most WeekdayRecoveryCap of recovery, weekend
// nights up to MaxRecoveryPerNight. Once debt hits zero the remaining nights
// fall back to the baseline target; zero starting debt yields a maintenance
// plan.
func buildRecoveryPlan(startingDebt float64, weeks int, start time.Time, cfg domain.EngineConfig) *domain.RecoveryPlan {
	totalDays := 7 * weeks
	plan := &domain.RecoveryPlan{
		StartingDebt: round2(startingDebt),
		Weeks:        weeks,
		Days:         make([]domain.PlanDay, 0, totalDays),
		Milestones:   make([]domain.PlanWeek, 0, weeks),
	}

	remaining := startingDebt
	weekBoost := 0.0

	for i := 1; i <= totalDays; i++ {
		date := start.AddDate(0, 0, i-1)
		dayCap := cfg.WeekdayRecoveryCap
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			dayCap = cfg.MaxRecoveryPerNight
		}

		boost := 0.0
		target := cfg.TargetHours
		if remaining > 0 {
			boost = math.Min(remaining, dayCap)
			remaining -= boost
			target = cfg.OptimalHours + boost
			if remaining <= 0 {
				remaining = 0
				if plan.ClearedOnDay == 0 {
					plan.ClearedOnDay = i
				}
			}
		}
		weekBoost += boost

		bedtime := bedtimeFor(target, cfg)
		plan.Days = append(plan.Days, domain.PlanDay{
			DayIndex:      i,
			Date:          date.Format(domain.DateLayout),
			Weekday:       date.Weekday().String(),
			TargetHours:   round2(target),
			Boost:         round2(boost),
			Bedtime:       round2(bedtime),
			BedtimeClock:  clockhour.Clock(bedtime),
			RemainingDebt: round2(remaining),
		})

		if i%7 == 0 {
			plan.Milestones = append(plan.Milestones, domain.PlanWeek{
				Week:          i / 7,
				TotalBoost:    round2(weekBoost),
				DebtAtWeekEnd: round2(remaining),
			})
			weekBoost = 0
		}
	}

	return plan
}
