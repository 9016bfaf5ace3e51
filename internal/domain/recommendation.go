package domain

// Priority classifies how urgently debt needs paying down.
// @Description Recommendation priority: HIGH, MEDIUM or LOW.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Recommendation is a single piece of prioritized advice.
// @Description One actionable recommendation.
type Recommendation struct {
	// Urgency of this item
	Priority Priority `json:"priority" example:"HIGH"`
	// Advice category
	Category string `json:"category" example:"duration"`
	// Human-readable advice
	Message string `json:"message" example:"Aim for 9.5 hours tonight to start paying down your debt"`
}

// TonightRecommendation is the response for the recommend endpoint.
// @Description Tonight's target duration, bedtime and advice list.
type TonightRecommendation struct {
	// Current cumulative debt in hours
	CurrentDebt float64 `json:"current_debt" example:"4.5"`
	// Hours to sleep tonight
	TargetHours float64 `json:"target_hours" example:"9.5"`
	// Extra recovery hours folded into tonight's target
	RecoveryBoost float64 `json:"recovery_boost" example:"1.5"`
	// Recommended bedtime as decimal hours in [0,24)
	Bedtime float64 `json:"bedtime" example:"22.5"`
	// Recommended bedtime as HH:MM
	BedtimeClock string `json:"bedtime_clock" example:"22:30"`
	// Wake time the bedtime was derived from
	WakeTime float64 `json:"wake_time" example:"6.75"`
	// Wake time as HH:MM
	WakeTimeClock string `json:"wake_time_clock" example:"06:45"`
	// Overall urgency from the current debt level
	Priority Priority `json:"priority" example:"MEDIUM"`
	// Prioritized advice list
	Advice []Recommendation `json:"advice"`
}
