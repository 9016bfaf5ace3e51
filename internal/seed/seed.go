package seed

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neuroccm/sleepbetter/internal/domain"
	"github.com/neuroccm/sleepbetter/pkg/clockhour"
)

const (
	seededDays = 30
	// Fixed source so repeated runs produce the same sample history.
	seedSource = 42
)

// Run seeds the database with a sample profile and a 30-day sleep history.
// Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Profile{}, &domain.SleepEntry{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	profile := domain.Profile{
		ID:           uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Name:         "Sample Sleeper",
		TargetHours:  7,
		OptimalHours: 8,
		WakeTime:     6.75,
		Notes:        "seeded sample profile",
	}
	if err := db.Where("id = ?", profile.ID).FirstOrCreate(&profile).Error; err != nil {
		return fmt.Errorf("failed to create profile %s: %w", profile.ID, err)
	}

	rng := rand.New(rand.NewSource(seedSource))
	if err := seedEntriesForProfile(db, profile, rng); err != nil {
		return err
	}

	log.Println("seed completed")
	return nil
}

// seedEntriesForProfile writes one night per day for the past seededDays.
// The distribution mixes mostly-ordinary nights with occasional short late
// nights and a few long early ones: 15% at 5-6h, 10% at 8-8.5h, the rest
// at 6.5-7.8h.
func seedEntriesForProfile(db *gorm.DB, profile domain.Profile, rng *rand.Rand) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	for i := seededDays; i >= 1; i-- {
		date := today.AddDate(0, 0, -i)

		var hours, bedtime float64
		switch roll := rng.Float64(); {
		case roll < 0.15:
			// Short night, late bedtime
			hours = 5.0 + rng.Float64()
			bedtime = clockhour.Wrap(0.5 + rng.Float64()*1.5)
		case roll < 0.25:
			// Long recovery night, early bedtime
			hours = 8.0 + rng.Float64()*0.5
			bedtime = 21.5 + rng.Float64()
		default:
			hours = 6.5 + rng.Float64()*1.3
			bedtime = 22.5 + rng.Float64()*1.5
		}
		hours = math.Round(hours*100) / 100
		bedtime = math.Round(bedtime*100) / 100
		waketime := math.Round(clockhour.Wrap(bedtime+hours)*100) / 100

		entry := domain.SleepEntry{
			ProfileID: profile.ID,
			Date:      date,
			Hours:     hours,
			Bedtime:   &bedtime,
			Waketime:  &waketime,
		}

		err := db.Where("profile_id = ? AND date = ?", profile.ID, date).
			FirstOrCreate(&entry).Error
		if err != nil {
			return fmt.Errorf("failed to create entry for %s: %w", date.Format(domain.DateLayout), err)
		}
	}
	return nil
}
