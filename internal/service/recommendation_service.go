package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/neuroccm/sleepbetter/internal/domain"
	"github.com/neuroccm/sleepbetter/internal/repository"
	"github.com/neuroccm/sleepbetter/pkg/clockhour"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// bedtimeSpreadLimit is the recent bedtime range above which a
	// consistency recommendation fires.
	bedtimeSpreadLimit = 2.0

	// recoveryProtocolDebt is the debt level that triggers the full
	// recovery protocol advice.
	recoveryProtocolDebt = 10.0
)

// RecommendationService derives tonight's target and bedtime from current
// debt.
type RecommendationService interface {
	RecommendTonight(ctx context.Context, profileID uuid.UUID) (*domain.TonightRecommendation, error)
}

type recommendationService struct {
	entryRepo   repository.EntryRepository
	profileRepo repository.ProfileRepository
	cfg         domain.EngineConfig
}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService(entryRepo repository.EntryRepository, profileRepo repository.ProfileRepository, cfg domain.EngineConfig) RecommendationService {
	return &recommendationService{
		entryRepo:   entryRepo,
		profileRepo: profileRepo,
		cfg:         cfg,
	}
}

func (s *recommendationService) RecommendTonight(ctx context.Context, profileID uuid.UUID) (*domain.TonightRecommendation, error) {
	tracer := otel.Tracer("sleepbetter-api/recommend")
	ctx, span := tracer.Start(ctx, "RecommendationService.RecommendTonight",
		trace.WithAttributes(attribute.String("profile.id", profileID.String())),
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
		"profile_id":   profileID.String(),
		"current_debt": debt,
		"wake_time":    cfg.WakeTime,
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	rec := recommendTonight(debt, entries, cfg)

	if outputJSON, err := json.Marshal(rec); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return rec, nil
}

// recommendTonight applies the recovery policy: when debt exists tonight's
// target is optimal plus a boost capped at MaxRecoveryPerNight; with zero
// debt the baseline target applies, never less.
func recommendTonight(debt float64, entries []domain.SleepEntry, cfg domain.EngineConfig) *domain.TonightRecommendation {
	boost := 0.0
	target := cfg.TargetHours
	if debt > 0 {
		boost = math.Min(cfg.MaxRecoveryPerNight, debt)
		target = cfg.OptimalHours + boost
	}

	bedtime := bedtimeFor(target, cfg)

	rec := &domain.TonightRecommendation{
		CurrentDebt:   round2(debt),
		TargetHours:   round2(target),
		RecoveryBoost: round2(boost),
		Bedtime:       round2(bedtime),
		BedtimeClock:  clockhour.Clock(bedtime),
		WakeTime:      cfg.WakeTime,
		WakeTimeClock: clockhour.Clock(cfg.WakeTime),
		Priority:      classifyDebt(debt, cfg),
	}
	rec.Advice = buildAdvice(rec, entries, cfg)
	return rec
}

// bedtimeFor derives a bedtime from the wake time, budgeting sleep onset
// latency on top of the target, wrapped into [0,24).
func bedtimeFor(targetHours float64, cfg domain.EngineConfig) float64 {
	return clockhour.Wrap(cfg.WakeTime - (targetHours + cfg.SleepOnsetLatency))
}

// classifyDebt is a pure function of debt against the configured thresholds.
func classifyDebt(debt float64, cfg domain.EngineConfig) domain.Priority {
	switch {
	case debt >= cfg.HighDebtThreshold:
		return domain.PriorityHigh
	case debt >= cfg.MediumDebtThreshold:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

// buildAdvice assembles the prioritized advice list for tonight.
func buildAdvice(rec *domain.TonightRecommendation, entries []domain.SleepEntry, cfg domain.EngineConfig) []domain.Recommendation {
	advice := []domain.Recommendation{
		{
			Priority: rec.Priority,
			Category: "duration",
			Message:  fmt.Sprintf("Aim for %s of sleep tonight", clockhour.Duration(rec.TargetHours)),
		},
		{
			Priority: rec.Priority,
			Category: "bedtime",
			Message:  fmt.Sprintf("Be in bed by %s to wake rested at %s", rec.BedtimeClock, rec.WakeTimeClock),
		},
	}

	recent := recentBedtimes(entries, RecentNights)
	if len(recent) >= 3 {
		if spread := bedtimeSpread(recent); spread > bedtimeSpreadLimit {
			advice = append(advice, domain.Recommendation{
				Priority: domain.PriorityMedium,
				Category: "consistency",
				Message:  fmt.Sprintf("Your bedtime has varied by %.1f hours recently; keep it within one hour night to night", spread),
			})
		}
		if avg := mean(recent); avg >= 0.5 && avg <= 12 {
			advice = append(advice, domain.Recommendation{
				Priority: domain.PriorityHigh,
				Category: "circadian",
				Message:  "You are going to bed after midnight on average, which works against your body clock",
			})
		}
	}

	if rec.CurrentDebt > recoveryProtocolDebt {
		advice = append(advice,
			domain.Recommendation{
				Priority: domain.PriorityHigh,
				Category: "recovery",
				Message:  "Your debt is severe; treat sleep as the priority for the next week and keep evenings screen-free",
			},
			domain.Recommendation{
				Priority: domain.PriorityHigh,
				Category: "training",
				Message:  "Reduce hard training load until your debt is back under control",
			},
		)
	}

	advice = append(advice,
		domain.Recommendation{
			Priority: domain.PriorityLow,
			Category: "hygiene",
			Message:  "Keep the bedroom cool, dark and quiet",
		},
		domain.Recommendation{
			Priority: domain.PriorityLow,
			Category: "caffeine",
			Message:  "Avoid caffeine after 14:00",
		},
	)

	return advice
}

// recentBedtimes collects recorded bedtimes from the newest n entries.
func recentBedtimes(entries []domain.SleepEntry, n int) []float64 {
	start := len(entries) - n
	if start < 0 {
		start = 0
	}
	var bedtimes []float64
	for _, e := range entries[start:] {
		if e.Bedtime != nil {
			bedtimes = append(bedtimes, *e.Bedtime)
		}
	}
	return bedtimes
}

// bedtimeSpread measures the range of bedtimes with late-evening times
// shifted below midnight, so 23:30 and 00:30 are one hour apart rather than
// twenty-three.
func bedtimeSpread(bedtimes []float64) float64 {
	shifted := make([]float64, len(bedtimes))
	for i, b := range bedtimes {
		if b > 12 {
			b -= clockhour.HoursPerDay
		}
		shifted[i] = b
	}
	minV, maxV := shifted[0], shifted[0]
	for _, v := range shifted[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return maxV - minV
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
