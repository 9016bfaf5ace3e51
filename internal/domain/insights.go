package domain

// LLMInsightsOutput contains the structured output from the LLM.
// @Description LLM-generated sleep insights.
type LLMInsightsOutput struct {
	// Summary of sleep patterns (2-3 sentences)
	Summary string `json:"summary" example:"Your debt has been climbing for two weeks..."`
	// Observations about patterns (3-6 items)
	Observations []string `json:"observations" example:"[\"Weekend nights average 1.2 hours more than weekdays\"]"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance" example:"[\"Move bedtime to 22:30 for the next four nights\"]"`
}

// InsightsContext is the context object sent to the LLM.
// @Description Context data for LLM insights generation.
type InsightsContext struct {
	Profile ProfileResponse `json:"profile"`
	Debt    DebtReport      `json:"debt"`
	Trends  TrendsReport    `json:"trends"`
	Plan    RecoveryPlan    `json:"plan"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Complete sleep insights response.
type InsightsResponse struct {
	// Debt report the insights were generated from
	Debt DebtReport `json:"debt"`
	// Trend analysis the insights were generated from
	Trends TrendsReport `json:"trends"`
	// LLM-generated insights
	Insights LLMInsightsOutput `json:"insights"`
	// Trace ID for feedback (optional, only present when Langfuse is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}
