package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/neuroccm/sleepbetter/internal/domain"
	"github.com/neuroccm/sleepbetter/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// RecentNights is the tail length used for recent averages and the
	// status snapshot.
	RecentNights = 7
)

// DebtService computes cumulative sleep debt from logged nights.
type DebtService interface {
	// Compute calculates the debt series for a profile. windowDays <= 0
	// covers the full history.
	Compute(ctx context.Context, profileID uuid.UUID, windowDays int) (*domain.DebtReport, error)
	// Status summarizes overall history and the recent debt tail.
	Status(ctx context.Context, profileID uuid.UUID) (*domain.StatusReport, error)
}

type debtService struct {
	entryRepo   repository.EntryRepository
	profileRepo repository.ProfileRepository
	cfg         domain.EngineConfig
}

// NewDebtService creates a new DebtService.
func NewDebtService(entryRepo repository.EntryRepository, profileRepo repository.ProfileRepository, cfg domain.EngineConfig) DebtService {
	return &debtService{
		entryRepo:   entryRepo,
		profileRepo: profileRepo,
		cfg:         cfg,
	}
}

func (s *debtService) Compute(ctx context.Context, profileID uuid.UUID, windowDays int) (*domain.DebtReport, error) {
	tracer := otel.Tracer("sleepbetter-api/debt")
	ctx, span := tracer.Start(ctx, "DebtService.Compute",
		trace.WithAttributes(
			attribute.String("profile.id", profileID.String()),
			attribute.Int("window.days", windowDays),
		),
	)
	defer span.End()

	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	cfg := s.cfg.WithProfile(profile)

	inputPayload := map[string]any{
		"profile_id":   profileID.String(),
		"window_days":  windowDays,
		"target_hours": cfg.TargetHours,
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	today := dateOnly(time.Now().UTC())
	filter := domain.EntryFilter{}
	if windowDays > 0 {
		from := today.AddDate(0, 0, -windowDays)
		filter.From = &from
	}

	entries, err := s.entryRepo.ListChronological(ctx, profileID, filter)
	if err != nil {
		return nil, err
	}

	records, total, err := computeDebtSeries(entries, cfg.TargetHours)
	if err != nil {
		return nil, err
	}

	report := &domain.DebtReport{
		TargetHours:  cfg.TargetHours,
		Nights:       len(records),
		Records:      records,
		TotalDebt:    total,
		MissingDates: missingDates(entries),
		CatchupDates: catchupDates(entries, today),
	}

	if outputJSON, err := json.Marshal(report); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return report, nil
}

func (s *debtService) Status(ctx context.Context, profileID uuid.UUID) (*domain.StatusReport, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	cfg := s.cfg.WithProfile(profile)

	entries, err := s.entryRepo.ListChronological(ctx, profileID, domain.EntryFilter{})
	if err != nil {
		return nil, err
	}

	records, total, err := computeDebtSeries(entries, cfg.TargetHours)
	if err != nil {
		return nil, err
	}

	report := &domain.StatusReport{
		ProfileName:  profile.Name,
		Nights:       len(records),
		CurrentDebt:  total,
		CatchupDates: catchupDates(entries, dateOnly(time.Now().UTC())),
	}

	if len(entries) > 0 {
		sum := 0.0
		for _, e := range entries {
			sum += e.Hours
		}
		report.MeanHours = round2(sum / float64(len(entries)))

		tail := records
		if len(tail) > RecentNights {
			tail = tail[len(tail)-RecentNights:]
		}
		recentSum := 0.0
		for _, r := range tail {
			recentSum += r.Hours
		}
		report.RecentMeanHours = round2(recentSum / float64(len(tail)))
		report.Recent = tail
	}

	return report, nil
}

// computeDebtSeries walks entries in chronological order accumulating debt.
// Debt is floored at zero after every night, so a surplus night pays down at
// most the debt that exists; surpluses never build up negative debt.
func computeDebtSeries(entries []domain.SleepEntry, targetHours float64) ([]domain.DebtRecord, float64, error) {
	records := make([]domain.DebtRecord, 0, len(entries))
	debt := 0.0

	for _, e := range entries {
		if e.Hours < 0 || e.Hours > 24 {
			return nil, 0, domain.ErrInvalidEntry
		}
		deficit := targetHours - e.Hours
		debt = math.Max(0, debt+deficit)
		records = append(records, domain.DebtRecord{
			Date:           e.Date.Format(domain.DateLayout),
			Hours:          e.Hours,
			Deficit:        round2(deficit),
			CumulativeDebt: round2(debt),
		})
	}

	return records, round2(debt), nil
}

// missingDates reports interior calendar gaps between consecutive entries.
// Gaps are surfaced, never interpolated.
func missingDates(entries []domain.SleepEntry) []string {
	var missing []string
	for i := 1; i < len(entries); i++ {
		prev := dateOnly(entries[i-1].Date)
		next := dateOnly(entries[i].Date)
		for d := prev.AddDate(0, 0, 1); d.Before(next); d = d.AddDate(0, 0, 1) {
			missing = append(missing, d.Format(domain.DateLayout))
		}
	}
	return missing
}

// catchupDates reports the trailing gap from the last logged night up to
// yesterday, prompting the caller to back-fill.
func catchupDates(entries []domain.SleepEntry, today time.Time) []string {
	if len(entries) == 0 {
		return nil
	}
	last := dateOnly(entries[len(entries)-1].Date)
	yesterday := dateOnly(today).AddDate(0, 0, -1)

	var dates []string
	for d := last.AddDate(0, 0, 1); !d.After(yesterday); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(domain.DateLayout))
	}
	return dates
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
