package domain

// PlanDay is one night of a recovery plan.
// @Description A single planned night with its target and remaining debt.
type PlanDay struct {
	// 1-based day index within the plan
	DayIndex int `json:"day_index" example:"1"`
	// Calendar date of the night
	Date string `json:"date" example:"2026-01-16"`
	// Weekday name
	Weekday string `json:"weekday" example:"Friday"`
	// Hours to sleep that night
	TargetHours float64 `json:"target_hours" example:"9"`
	// Extra recovery hours applied that night
	Boost float64 `json:"boost" example:"1"`
	// Bedtime as decimal hours in [0,24)
	Bedtime float64 `json:"bedtime" example:"21.5"`
	// Bedtime as HH:MM
	BedtimeClock string `json:"bedtime_clock" example:"21:30"`
	// Debt left after this night
	RemainingDebt float64 `json:"remaining_debt" example:"2"`
}

// PlanWeek is a weekly milestone summary.
// @Description Aggregate recovery applied during one plan week.
type PlanWeek struct {
	// 1-based week number
	Week int `json:"week" example:"1"`
	// Sum of boosts applied during the week
	TotalBoost float64 `json:"total_boost" example:"3"`
	// Debt remaining at the end of the week
	DebtAtWeekEnd float64 `json:"debt_at_week_end" example:"0"`
}

// RecoveryPlan is the response for the plan endpoint.
// @Description Multi-week schedule that drains sleep debt front-loaded.
type RecoveryPlan struct {
	// Debt at the start of the plan
	StartingDebt float64 `json:"starting_debt" example:"3"`
	// Number of plan weeks
	Weeks int `json:"weeks" example:"2"`
	// Ordered nightly plan, 7 days per week
	Days []PlanDay `json:"days"`
	// Weekly milestone summaries
	Milestones []PlanWeek `json:"milestones"`
	// Day index on which debt first reaches zero; 0 if it never does
	ClearedOnDay int `json:"cleared_on_day,omitempty" example:"4"`
}
