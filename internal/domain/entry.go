package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used across the API.
const DateLayout = "2006-01-02"

type SleepEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_entries_profile_date" json:"profile_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_entries_profile_date" json:"date"`
	Hours     float64   `gorm:"not null" json:"hours"`
	Bedtime   *float64  `json:"bedtime,omitempty"`
	Waketime  *float64  `json:"waketime,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepEntry) TableName() string {
	return "sleep_entries"
}

// LogEntryRequest is the request body for logging a night of sleep.
// @Description Request payload for recording one night. Logging the same date
// @Description again overwrites the previous record (last write wins).
type LogEntryRequest struct {
	// Calendar date of the night in YYYY-MM-DD format
	Date string `json:"date" validate:"required,sleepdate" example:"2026-01-15"`
	// Hours slept; may be omitted when bedtime and waketime are both given
	Hours *float64 `json:"hours,omitempty" validate:"omitempty,gte=0,lte=24" example:"6.5"`
	// Time went to bed as decimal hours from midnight
	Bedtime *float64 `json:"bedtime,omitempty" validate:"omitempty,clockhour" example:"23.5"`
	// Time woke up as decimal hours from midnight
	Waketime *float64 `json:"waketime,omitempty" validate:"omitempty,clockhour" example:"6.75"`
}

// EntryResponse is the response body for sleep entry endpoints.
// @Description A single recorded night of sleep.
type EntryResponse struct {
	// Unique entry identifier
	ID uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Owner profile ID
	ProfileID uuid.UUID `json:"profile_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	// Calendar date of the night
	Date string `json:"date" example:"2026-01-15"`
	// Hours slept
	Hours float64 `json:"hours" example:"6.5"`
	// Bedtime as decimal hours, if recorded
	Bedtime *float64 `json:"bedtime,omitempty" example:"23.5"`
	// Waketime as decimal hours, if recorded
	Waketime *float64 `json:"waketime,omitempty" example:"6.75"`
	// Record creation timestamp
	CreatedAt time.Time `json:"created_at" example:"2026-01-16T07:05:00Z"`
	// Last overwrite timestamp
	UpdatedAt time.Time `json:"updated_at" example:"2026-01-16T07:05:00Z"`
}

func (e *SleepEntry) ToResponse() EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		ProfileID: e.ProfileID,
		Date:      e.Date.Format(DateLayout),
		Hours:     e.Hours,
		Bedtime:   e.Bedtime,
		Waketime:  e.Waketime,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// EntryListResponse is the response body for listing sleep entries.
// @Description Paginated list of sleep entries.
type EntryListResponse struct {
	// Array of sleep entries
	Data []EntryResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// CatchupResponse lists dates with no entry yet.
// @Description Dates between the last logged night and yesterday, plus any
// @Description interior gaps, that still need to be logged.
type CatchupResponse struct {
	// Interior gaps between logged nights
	MissingDates []string `json:"missing_dates" example:"2026-01-02,2026-01-03"`
	// Trailing gap from the last logged night up to yesterday
	CatchupDates []string `json:"catchup_dates" example:"2026-01-20,2026-01-21"`
}

// EntryFilter contains filter parameters for listing sleep entries
type EntryFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
