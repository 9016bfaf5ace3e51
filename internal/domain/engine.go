package domain

// EngineConfig carries the policy constants of the debt, recommendation and
// planning computations. Callers pass an explicit config so tests can vary the
// policy without shared state; DefaultEngineConfig matches the product
// defaults.
type EngineConfig struct {
	// Minimum recommended nightly sleep in hours
	TargetHours float64
	// Recovery-oriented nightly target in hours
	OptimalHours float64
	// Wake time as decimal hours from midnight
	WakeTime float64
	// Hard cap on extra recovery sleep in a single night
	MaxRecoveryPerNight float64
	// Cap on extra recovery sleep on weekday nights
	WeekdayRecoveryCap float64
	// Time needed to fall asleep, added when deriving bedtime
	SleepOnsetLatency float64
	// Debt at or above this is classified HIGH
	HighDebtThreshold float64
	// Debt at or above this is classified MEDIUM
	MediumDebtThreshold float64
	// Half-to-half mean difference below this counts as a stable trend
	TrendStability float64
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		TargetHours:         7.0,
		OptimalHours:        8.0,
		WakeTime:            6.75,
		MaxRecoveryPerNight: 1.5,
		WeekdayRecoveryCap:  1.0,
		SleepOnsetLatency:   0.25,
		HighDebtThreshold:   5.0,
		MediumDebtThreshold: 2.0,
		TrendStability:      0.25,
	}
}

// WithProfile overlays a profile's personal targets onto the config.
func (c EngineConfig) WithProfile(p *Profile) EngineConfig {
	if p == nil {
		return c
	}
	if p.TargetHours > 0 {
		c.TargetHours = p.TargetHours
	}
	if p.OptimalHours > 0 {
		c.OptimalHours = p.OptimalHours
	}
	if p.WakeTime > 0 {
		c.WakeTime = p.WakeTime
	}
	return c
}
