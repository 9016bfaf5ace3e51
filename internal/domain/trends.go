package domain

import (
	"strconv"
	"strings"
)

// TrendDirection classifies how sleep changed across the window.
// @Description Trend classification: improving, declining or stable.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
	TrendUnknown   TrendDirection = "unknown"
)

// TrendWindowAll selects every stored entry regardless of date.
const TrendWindowAll = 0

var trendWindows = map[int]bool{
	7: true, 15: true, 30: true, 45: true, 90: true, 120: true, 365: true,
}

// ParseTrendWindow parses a window query value into a day count.
// "all" (or empty) selects the full history; otherwise the value must be one
// of the supported day counts.
func ParseTrendWindow(s string) (int, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "all" {
		return TrendWindowAll, nil
	}
	days, err := strconv.Atoi(s)
	if err != nil || !trendWindows[days] {
		return 0, ErrInvalidInput
	}
	return days, nil
}

// WeekdayStats aggregates nights falling on one calendar weekday.
// @Description Per-weekday means, independent of week number.
type WeekdayStats struct {
	// Weekday name
	Weekday string `json:"weekday" example:"Monday"`
	// Nights logged on this weekday
	Nights int `json:"nights" example:"4"`
	// Mean hours slept
	MeanHours float64 `json:"mean_hours" example:"6.8"`
	// Mean bedtime as decimal hours, when any bedtimes were recorded
	MeanBedtime *float64 `json:"mean_bedtime,omitempty" example:"23.4"`
	// Mean waketime as decimal hours, when any waketimes were recorded
	MeanWaketime *float64 `json:"mean_waketime,omitempty" example:"6.8"`
}

// NightSummary identifies a single night by date and hours.
// @Description Best or worst night of the window.
type NightSummary struct {
	Date  string  `json:"date" example:"2026-01-12"`
	Hours float64 `json:"hours" example:"8.5"`
}

// QualityBreakdown counts short nights at three thresholds.
// @Description Counts of nights under 7, 6 and 5 hours.
type QualityBreakdown struct {
	BelowSeven int `json:"below_seven" example:"12"`
	BelowSix   int `json:"below_six" example:"5"`
	BelowFive  int `json:"below_five" example:"1"`
}

// TrendsReport is the response for the trends endpoint.
// @Description Aggregated statistics and trend over a time window.
type TrendsReport struct {
	// Requested window: a day count or "all"
	Window string `json:"window" example:"30"`
	// False when no entries fall inside the window
	HasData bool `json:"has_data" example:"true"`
	// Nights inside the window
	Nights int `json:"nights" example:"28"`
	// Mean hours over the window
	MeanHours float64 `json:"mean_hours" example:"6.9"`
	// Mean hours over the most recent seven entries
	RecentMeanHours float64 `json:"recent_mean_hours" example:"6.4"`
	// Per-weekday breakdown, Monday first
	Weekdays []WeekdayStats `json:"weekdays,omitempty"`
	// Longest night; ties go to the most recent date
	Best *NightSummary `json:"best,omitempty"`
	// Shortest night; ties go to the most recent date
	Worst *NightSummary `json:"worst,omitempty"`
	// Mean of the first half of the window
	FirstHalfMean float64 `json:"first_half_mean" example:"6.7"`
	// Mean of the second half of the window
	SecondHalfMean float64 `json:"second_half_mean" example:"7.1"`
	// Trend classification from the half-to-half comparison
	Trend TrendDirection `json:"trend" example:"improving"`
	// Short-night counts
	Quality QualityBreakdown `json:"quality"`
}
