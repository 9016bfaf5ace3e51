package domain

// DebtRecord is the per-night slice of the cumulative debt series.
// @Description One night's contribution to cumulative sleep debt.
type DebtRecord struct {
	// Calendar date of the night
	Date string `json:"date" example:"2026-01-15"`
	// Hours slept that night
	Hours float64 `json:"hours" example:"6.5"`
	// Target minus hours; positive means under-slept
	Deficit float64 `json:"deficit" example:"0.5"`
	// Running debt after this night, floored at zero
	CumulativeDebt float64 `json:"cumulative_debt" example:"2.5"`
}

// DebtReport is the response for the debt endpoint.
// @Description Cumulative sleep debt over the requested window.
type DebtReport struct {
	// Target hours the deficits were computed against
	TargetHours float64 `json:"target_hours" example:"7"`
	// Number of nights in the window
	Nights int `json:"nights" example:"30"`
	// Per-night debt series in chronological order
	Records []DebtRecord `json:"records"`
	// Cumulative debt after the most recent night
	TotalDebt float64 `json:"total_debt" example:"4.5"`
	// Interior calendar gaps between logged nights
	MissingDates []string `json:"missing_dates,omitempty" example:"2026-01-02,2026-01-03"`
	// Trailing gap from the last logged night up to yesterday
	CatchupDates []string `json:"catchup_dates,omitempty" example:"2026-01-20,2026-01-21"`
}

// StatusReport is the response for the status endpoint.
// @Description Snapshot of overall history and the recent debt tail.
type StatusReport struct {
	// Profile display name
	ProfileName string `json:"profile_name" example:"Alex"`
	// Total nights logged
	Nights int `json:"nights" example:"94"`
	// Mean hours over all logged nights
	MeanHours float64 `json:"mean_hours" example:"6.9"`
	// Mean hours over the most recent seven nights
	RecentMeanHours float64 `json:"recent_mean_hours" example:"6.4"`
	// Current cumulative debt
	CurrentDebt float64 `json:"current_debt" example:"4.5"`
	// Debt series for the most recent seven nights
	Recent []DebtRecord `json:"recent"`
	// Dates still waiting to be logged
	CatchupDates []string `json:"catchup_dates,omitempty" example:"2026-01-20"`
}
