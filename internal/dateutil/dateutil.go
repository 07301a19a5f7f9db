// Package dateutil implements timezone-normalized calendar-date arithmetic
// on YYYY-MM-DD strings. All arithmetic runs on UTC midnight instants so day
// addition is never affected by DST or the host's local clock.
package dateutil

import (
	"fmt"
	"math"
	"time"

	"duoscale/internal/domain"
)

const isoLayout = "2006-01-02"

var weekdayLabels = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// ParseISO parses a strict YYYY-MM-DD string into a UTC midnight instant.
func ParseISO(date string) (time.Time, error) {
	t, err := time.ParseInLocation(isoLayout, date, time.UTC)
	if err != nil || t.Format(isoLayout) != date {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, date)
	}
	return t, nil
}

// DateIn returns the calendar date of the given instant as observed in loc.
func DateIn(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(isoLayout)
}

// Today returns the current calendar date as observed in loc.
func Today(loc *time.Location) string {
	return DateIn(time.Now(), loc)
}

// AddDays shifts an ISO date by n whole days, crossing month and year
// boundaries. Negative n subtracts.
func AddDays(date string, n int) (string, error) {
	t, err := ParseISO(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(isoLayout), nil
}

// DateRange builds the inclusive ascending sequence of length dates ending
// at end. length must be at least 1.
func DateRange(end string, length int) ([]string, error) {
	if length < 1 {
		return nil, fmt.Errorf("date range length must be positive, got %d", length)
	}
	t, err := ParseISO(end)
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, length)
	for i := length - 1; i >= 0; i-- {
		dates = append(dates, t.AddDate(0, 0, -i).Format(isoLayout))
	}
	return dates, nil
}

// WeekdayLabel returns the Korean day-of-week label (일..토, Sunday-first).
func WeekdayLabel(date string) (string, error) {
	t, err := ParseISO(date)
	if err != nil {
		return "", err
	}
	return weekdayLabels[int(t.Weekday())], nil
}

// FormatWithWeekday renders "2025-01-03 (금)". Malformed dates are returned
// untouched so rendering never fails.
func FormatWithWeekday(date string) string {
	label, err := WeekdayLabel(date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s (%s)", date, label)
}

// Round1 rounds to one decimal place, half away from zero. Callers apply it
// to final results only, never to intermediate sums.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FormatDelta renders a signed delta to one decimal place, or "기록 없음"
// when the value is absent. Positive values carry an explicit plus sign.
func FormatDelta(delta *float64) string {
	if delta == nil {
		return "기록 없음"
	}
	rounded := Round1(*delta)
	sign := ""
	if rounded > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1fkg", sign, rounded)
}
