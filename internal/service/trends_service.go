package service

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/neuroccm/sleepbetter/internal/domain"
	"github.com/neuroccm/sleepbetter/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TrendsService aggregates sleep history over a time window.
type TrendsService interface {
	// Analyze computes window statistics. window is a supported day count
	// or "all"; an empty window yields a no-data report, not an error.
	Analyze(ctx context.Context, profileID uuid.UUID, window string) (*domain.TrendsReport, error)
}

type trendsService struct {
	entryRepo   repository.EntryRepository
	profileRepo repository.ProfileRepository
	cfg         domain.EngineConfig
}

// NewTrendsService creates a new TrendsService.
func NewTrendsService(entryRepo repository.EntryRepository, profileRepo repository.ProfileRepository, cfg domain.EngineConfig) TrendsService {
	return &trendsService{
		entryRepo:   entryRepo,
		profileRepo: profileRepo,
		cfg:         cfg,
	}
}

func (s *trendsService) Analyze(ctx context.Context, profileID uuid.UUID, window string) (*domain.TrendsReport, error) {
	days, err := domain.ParseTrendWindow(window)
	if err != nil {
		return nil, err
	}

	tracer := otel.Tracer("sleepbetter-api/trends")
	ctx, span := tracer.Start(ctx, "TrendsService.Analyze",
		trace.WithAttributes(
			attribute.String("profile.id", profileID.String()),
			attribute.Int("window.days", days),
		),
	)
	defer span.End()

	exists, err := s.profileRepo.Exists(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	label := "all"
	filter := domain.EntryFilter{}
	if days != domain.TrendWindowAll {
		label = strconv.Itoa(days)
		from := dateOnly(time.Now().UTC()).AddDate(0, 0, -days)
		filter.From = &from
	}

	inputPayload := map[string]any{
		"profile_id": profileID.String(),
		"window":     label,
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	entries, err := s.entryRepo.ListChronological(ctx, profileID, filter)
	if err != nil {
		return nil, err
	}

	report := analyzeTrends(entries, label, s.cfg)

	if outputJSON, err := json.Marshal(report); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return report, nil
}

// analyzeTrends computes summary statistics over chronologically sorted
// entries. An empty slice yields a well-defined no-data report.
func analyzeTrends(entries []domain.SleepEntry, window string, cfg domain.EngineConfig) *domain.TrendsReport {
	report := &domain.TrendsReport{
		Window: window,
		Trend:  domain.TrendUnknown,
	}
	if len(entries) == 0 {
		return report
	}

	report.HasData = true
	report.Nights = len(entries)

	hours := make([]float64, len(entries))
	for i, e := range entries {
		hours[i] = e.Hours
	}
	report.MeanHours = round2(mean(hours))

	recent := hours
	if len(recent) > RecentNights {
		recent = recent[len(recent)-RecentNights:]
	}
	report.RecentMeanHours = round2(mean(recent))

	report.Weekdays = weekdayBreakdown(entries)
	report.Best, report.Worst = bestWorstNights(entries)
	report.FirstHalfMean, report.SecondHalfMean, report.Trend = classifyTrend(hours, cfg.TrendStability)
	report.Quality = qualityBreakdown(hours)

	return report
}

// weekdayBreakdown groups entries strictly by calendar weekday, Monday first,
// independent of which week a date falls in. Weekdays with no entries are
// omitted.
func weekdayBreakdown(entries []domain.SleepEntry) []domain.WeekdayStats {
	type bucket struct {
		hours     []float64
		bedtimes  []float64
		waketimes []float64
	}
	buckets := make(map[time.Weekday]*bucket)
	for _, e := range entries {
		wd := e.Date.Weekday()
		b := buckets[wd]
		if b == nil {
			b = &bucket{}
			buckets[wd] = b
		}
		b.hours = append(b.hours, e.Hours)
		if e.Bedtime != nil {
			b.bedtimes = append(b.bedtimes, *e.Bedtime)
		}
		if e.Waketime != nil {
			b.waketimes = append(b.waketimes, *e.Waketime)
		}
	}

	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	var stats []domain.WeekdayStats
	for _, wd := range order {
		b := buckets[wd]
		if b == nil {
			continue
		}
		ws := domain.WeekdayStats{
			Weekday:   wd.String(),
			Nights:    len(b.hours),
			MeanHours: round2(mean(b.hours)),
		}
		if len(b.bedtimes) > 0 {
			m := round2(mean(b.bedtimes))
			ws.MeanBedtime = &m
		}
		if len(b.waketimes) > 0 {
			m := round2(mean(b.waketimes))
			ws.MeanWaketime = &m
		}
		stats = append(stats, ws)
	}
	return stats
}

// bestWorstNights picks the longest and shortest nights; ties go to the most
// recent date.
func bestWorstNights(entries []domain.SleepEntry) (best, worst *domain.NightSummary) {
	if len(entries) == 0 {
		return nil, nil
	}
	bi, wi := 0, 0
	for i, e := range entries {
		if e.Hours >= entries[bi].Hours {
			bi = i
		}
		if e.Hours <= entries[wi].Hours {
			wi = i
		}
	}
	best = &domain.NightSummary{Date: entries[bi].Date.Format(domain.DateLayout), Hours: entries[bi].Hours}
	worst = &domain.NightSummary{Date: entries[wi].Date.Format(domain.DateLayout), Hours: entries[wi].Hours}
	return best, worst
}

// classifyTrend compares the mean of the first half of the window against the
// second half. Differences under the stability threshold count as stable.
func classifyTrend(hours []float64, stability float64) (firstMean, secondMean float64, trend domain.TrendDirection) {
	if len(hours) < 2 {
		return 0, 0, domain.TrendUnknown
	}
	mid := len(hours) / 2
	firstMean = round2(mean(hours[:mid]))
	secondMean = round2(mean(hours[mid:]))

	diff := secondMean - firstMean
	switch {
	case diff > stability:
		trend = domain.TrendImproving
	case diff < -stability:
		trend = domain.TrendDeclining
	default:
		trend = domain.TrendStable
	}
	return firstMean, secondMean, trend
}

func qualityBreakdown(hours []float64) domain.QualityBreakdown {
	var q domain.QualityBreakdown
	for _, h := range hours {
		if h < 7 {
			q.BelowSeven++
		}
		if h < 6 {
			q.BelowSix++
		}
		if h < 5 {
			q.BelowFive++
		}
	}
	return q
}
