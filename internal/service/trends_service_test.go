package service

import (
	"context"
	"errors"
	"testing"

	"github.com/neuroccm/sleepbetter/internal/domain"
)

func TestAnalyzeTrends_NoData(t *testing.T) {
	report := analyzeTrends(nil, "30", domain.DefaultEngineConfig())

	if report.HasData {
		t.Error("HasData = true for empty window")
	}
	if report.Trend != domain.TrendUnknown {
		t.Errorf("Trend = %v, want unknown", report.Trend)
	}
	if report.Nights != 0 {
		t.Errorf("Nights = %d, want 0", report.Nights)
	}
}

func TestAnalyzeTrends_Means(t *testing.T) {
	var entries []domain.SleepEntry
	hours := []float64{6, 6, 6, 6, 8, 8, 8, 8}
	for i, h := range hours {
		entries = append(entries, domain.SleepEntry{
			Date:  mustDate("2026-01-01").AddDate(0, 0, i),
			Hours: h,
		})
	}

	report := analyzeTrends(entries, "30", domain.DefaultEngineConfig())

	if !report.HasData {
		t.Fatal("HasData = false")
	}
	if report.MeanHours != 7.0 {
		t.Errorf("MeanHours = %v, want 7.0", report.MeanHours)
	}
	// Recent mean covers the newest 7 entries: 6,6,6,8,8,8,8
	want := round2((6*3 + 8*4) / 7.0)
	if report.RecentMeanHours != want {
		t.Errorf("RecentMeanHours = %v, want %v", report.RecentMeanHours, want)
	}
}

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name  string
		hours []float64
		want  domain.TrendDirection
	}{
		{"improving", []float64{6, 6, 6, 8, 8, 8}, domain.TrendImproving},
		{"declining", []float64{8, 8, 8, 6, 6, 6}, domain.TrendDeclining},
		{"stable within threshold", []float64{7, 7.1, 7, 7.2}, domain.TrendStable},
		{"single entry", []float64{7}, domain.TrendUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, trend := classifyTrend(tt.hours, 0.25)
			if trend != tt.want {
				t.Errorf("trend = %v, want %v", trend, tt.want)
			}
		})
	}
}

func TestWeekdayBreakdown_GroupsAcrossWeeks(t *testing.T) {
	// Two Mondays three weeks apart plus one Tuesday
	entries := []domain.SleepEntry{
		{Date: mustDate("2026-01-05"), Hours: 6.0},  // Monday
		{Date: mustDate("2026-01-06"), Hours: 8.0},  // Tuesday
		{Date: mustDate("2026-01-26"), Hours: 7.0},  // Monday
	}

	stats := weekdayBreakdown(entries)
	if len(stats) != 2 {
		t.Fatalf("got %d weekday buckets, want 2", len(stats))
	}
	if stats[0].Weekday != "Monday" || stats[0].Nights != 2 || stats[0].MeanHours != 6.5 {
		t.Errorf("Monday stats = %+v", stats[0])
	}
	if stats[1].Weekday != "Tuesday" || stats[1].Nights != 1 || stats[1].MeanHours != 8.0 {
		t.Errorf("Tuesday stats = %+v", stats[1])
	}
}

func TestWeekdayBreakdown_MeanBedtime(t *testing.T) {
	entries := []domain.SleepEntry{
		{Date: mustDate("2026-01-05"), Hours: 7, Bedtime: floatPtr(22.0)},
		{Date: mustDate("2026-01-12"), Hours: 7, Bedtime: floatPtr(23.0)},
	}

	stats := weekdayBreakdown(entries)
	if len(stats) != 1 {
		t.Fatalf("got %d buckets, want 1", len(stats))
	}
	if stats[0].MeanBedtime == nil || *stats[0].MeanBedtime != 22.5 {
		t.Errorf("MeanBedtime = %v, want 22.5", stats[0].MeanBedtime)
	}
	if stats[0].MeanWaketime != nil {
		t.Error("MeanWaketime should be nil with no recorded waketimes")
	}
}

func TestBestWorstNights_TiesGoToMostRecent(t *testing.T) {
	entries := []domain.SleepEntry{
		{Date: mustDate("2026-01-01"), Hours: 8.0},
		{Date: mustDate("2026-01-02"), Hours: 5.0},
		{Date: mustDate("2026-01-03"), Hours: 8.0},
		{Date: mustDate("2026-01-04"), Hours: 5.0},
	}

	best, worst := bestWorstNights(entries)
	if best.Date != "2026-01-03" {
		t.Errorf("best date = %s, want 2026-01-03", best.Date)
	}
	if worst.Date != "2026-01-04" {
		t.Errorf("worst date = %s, want 2026-01-04", worst.Date)
	}
}

func TestQualityBreakdown(t *testing.T) {
	q := qualityBreakdown([]float64{7.5, 6.5, 5.5, 4.5})
	if q.BelowSeven != 3 || q.BelowSix != 2 || q.BelowFive != 1 {
		t.Errorf("quality = %+v, want 3/2/1", q)
	}
}

func TestTrendsService_InvalidWindow(t *testing.T) {
	profileRepo := NewMockProfileRepository()
	profile := seedProfile(profileRepo)

	svc := NewTrendsService(NewMockEntryRepository(), profileRepo, domain.DefaultEngineConfig())
	_, err := svc.Analyze(context.Background(), profile.ID, "14")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestTrendsService_Analyze(t *testing.T) {
	entryRepo := NewMockEntryRepository()
	profileRepo := NewMockProfileRepository()
	profile := seedProfile(profileRepo)

	seedEntry(entryRepo, profile.ID, "2026-01-01", 6.0)
	seedEntry(entryRepo, profile.ID, "2026-01-02", 7.5)

	svc := NewTrendsService(entryRepo, profileRepo, domain.DefaultEngineConfig())
	report, err := svc.Analyze(context.Background(), profile.ID, "all")
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	if report.Window != "all" {
		t.Errorf("Window = %q, want all", report.Window)
	}
	if report.Nights != 2 {
		t.Errorf("Nights = %d, want 2", report.Nights)
	}
	if report.Best.Hours != 7.5 || report.Worst.Hours != 6.0 {
		t.Errorf("best/worst = %v/%v", report.Best.Hours, report.Worst.Hours)
	}
}
