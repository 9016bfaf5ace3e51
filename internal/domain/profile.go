package domain

import (
	"time"

	"github.com/google/uuid"
)

// Acceptable wake time window (clock hours).
const (
	WakeTimeMin = 4.0
	WakeTimeMax = 10.0
)

type Profile struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string     `gorm:"type:varchar(120);not null" json:"name"`
	Birthdate    *time.Time `gorm:"type:date" json:"birthdate,omitempty"`
	TargetHours  float64    `gorm:"not null;default:7" json:"target_hours"`
	OptimalHours float64    `gorm:"not null;default:8" json:"optimal_hours"`
	WakeTime     float64    `gorm:"not null;default:6.75" json:"wake_time"`
	Notes        string     `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// Age returns the profile's age in whole years as of the given day,
// accounting for whether the birthday has occurred yet this year.
// Returns -1 when no birthdate is set.
func (p *Profile) Age(today time.Time) int {
	if p.Birthdate == nil {
		return -1
	}
	b := *p.Birthdate
	age := today.Year() - b.Year()
	if today.Month() < b.Month() || (today.Month() == b.Month() && today.Day() < b.Day()) {
		age--
	}
	return age
}

// AgeBand maps an inclusive age range to recommended sleep targets.
type AgeBand struct {
	MinAge       int
	MaxAge       int
	TargetHours  float64
	OptimalHours float64
}

var ageBands = []AgeBand{
	{6, 13, 9.0, 11.0},
	{14, 17, 8.0, 10.0},
	{18, 25, 7.0, 9.0},
	{26, 120, 7.0, 8.0},
}

// TargetsForAge looks up the recommended target and optimal hours for an age.
// ok is false when the age falls outside every band.
func TargetsForAge(age int) (target, optimal float64, ok bool) {
	for _, b := range ageBands {
		if age >= b.MinAge && age <= b.MaxAge {
			return b.TargetHours, b.OptimalHours, true
		}
	}
	return 0, 0, false
}

// CreateProfileRequest is the request body for creating a profile.
// @Description Request payload for creating a sleeper profile. When a
// @Description birthdate is given and targets are omitted, age-appropriate
// @Description targets are applied from the built-in band table.
type CreateProfileRequest struct {
	// Display name
	Name string `json:"name" validate:"required,max=120" example:"Alex"`
	// Birthdate in YYYY-MM-DD format
	Birthdate *string `json:"birthdate,omitempty" validate:"omitempty,sleepdate" example:"1994-03-12"`
	// Minimum nightly sleep target in hours
	TargetHours *float64 `json:"target_hours,omitempty" validate:"omitempty,gte=4,lte=12" example:"7"`
	// Recovery-oriented nightly target in hours
	OptimalHours *float64 `json:"optimal_hours,omitempty" validate:"omitempty,gte=4,lte=14" example:"8"`
	// Usual wake time as decimal hours, between 4:00 and 10:00
	WakeTime *float64 `json:"wake_time,omitempty" validate:"omitempty,wakewindow" example:"6.75"`
	// Free-form notes
	Notes string `json:"notes,omitempty" validate:"max=2000" example:"training for a marathon"`
}

// UpdateProfileRequest is the request body for updating a profile.
// @Description Partial update; only provided fields change.
type UpdateProfileRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,max=120"`
	Birthdate    *string  `json:"birthdate,omitempty" validate:"omitempty,sleepdate"`
	TargetHours  *float64 `json:"target_hours,omitempty" validate:"omitempty,gte=4,lte=12"`
	OptimalHours *float64 `json:"optimal_hours,omitempty" validate:"omitempty,gte=4,lte=14"`
	WakeTime     *float64 `json:"wake_time,omitempty" validate:"omitempty,wakewindow"`
	Notes        *string  `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// ProfileResponse is the response body for profile endpoints.
// @Description Sleeper profile with targets and wake time.
type ProfileResponse struct {
	ID           uuid.UUID `json:"id" example:"660e8400-e29b-41d4-a716-446655440001"`
	Name         string    `json:"name" example:"Alex"`
	Birthdate    *string   `json:"birthdate,omitempty" example:"1994-03-12"`
	Age          *int      `json:"age,omitempty" example:"32"`
	TargetHours  float64   `json:"target_hours" example:"7"`
	OptimalHours float64   `json:"optimal_hours" example:"8"`
	WakeTime     float64   `json:"wake_time" example:"6.75"`
	Notes        string    `json:"notes,omitempty" example:"training for a marathon"`
	CreatedAt    time.Time `json:"created_at" example:"2026-01-10T09:00:00Z"`
	UpdatedAt    time.Time `json:"updated_at" example:"2026-01-10T09:00:00Z"`
}

func (p *Profile) ToResponse() ProfileResponse {
	resp := ProfileResponse{
		ID:           p.ID,
		Name:         p.Name,
		TargetHours:  p.TargetHours,
		OptimalHours: p.OptimalHours,
		WakeTime:     p.WakeTime,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.Birthdate != nil {
		b := p.Birthdate.Format(DateLayout)
		resp.Birthdate = &b
		age := p.Age(time.Now().UTC())
		resp.Age = &age
	}
	return resp
}
