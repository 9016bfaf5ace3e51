// Package clockhour implements decimal-hour clock arithmetic. Times of day
// are represented as fractional hours from midnight (6.75 = 06:45) and
// durations as fractional hours (7.5 = 7h30m), matching the persisted
// entry format.
package clockhour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HoursPerDay is the wrap modulus for clock times.
const HoursPerDay = 24.0

// Wrap normalizes a decimal-hour clock value into [0, 24).
// Negative values wrap to the previous day's clock position.
func Wrap(h float64) float64 {
	h = math.Mod(h, HoursPerDay)
	if h < 0 {
		h += HoursPerDay
	}
	return h
}

// IsClock reports whether h is a valid time of day in [0, 24).
func IsClock(h float64) bool {
	return h >= 0 && h < HoursPerDay
}

// Clock formats a decimal-hour time of day as HH:MM, wrapping first.
func Clock(h float64) string {
	h = Wrap(h)
	hh := int(h)
	mm := int(math.Round((h - float64(hh)) * 60))
	if mm == 60 {
		hh = (hh + 1) % 24
		mm = 0
	}
	return fmt.Sprintf("%02d:%02d", hh, mm)
}

// Duration formats a decimal-hour duration as h:mm (7.5 -> "7:30").
func Duration(h float64) string {
	neg := h < 0
	h = math.Abs(h)
	hh := int(h)
	mm := int(math.Round((h - float64(hh)) * 60))
	if mm == 60 {
		hh++
		mm = 0
	}
	if neg {
		return fmt.Sprintf("-%d:%02d", hh, mm)
	}
	return fmt.Sprintf("%d:%02d", hh, mm)
}

// ParseClock parses an HH:MM string into decimal hours from midnight.
func ParseClock(s string) (float64, error) {
	h, err := parseColon(s)
	if err != nil {
		return 0, err
	}
	if !IsClock(h) {
		return 0, fmt.Errorf("clock time %q out of range [0,24)", s)
	}
	return h, nil
}

// ParseDuration parses either h:mm ("7:30") or a plain decimal ("7.5")
// into decimal hours.
func ParseDuration(s string) (float64, error) {
	if strings.Contains(s, ":") {
		return parseColon(s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return v, nil
}

// Between returns the wrap-aware span from bedtime to waketime: the plain
// difference when waking the same day, plus 24h when sleep crosses midnight.
func Between(bedtime, waketime float64) float64 {
	d := waketime - bedtime
	if d < 0 {
		d += HoursPerDay
	}
	return d
}

func parseColon(s string) (float64, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid h:mm value %q", s)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid minutes in %q", s)
	}
	sign := 1.0
	if hh < 0 {
		sign = -1.0
		hh = -hh
	}
	return sign * (float64(hh) + float64(mm)/60), nil
}
