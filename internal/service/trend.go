package service

import (
	"math"

	"duoscale/internal/dateutil"
	"duoscale/internal/domain"
)

// Swing is the largest absolute day-over-day change inside a recent window.
type Swing struct {
	Date      string  `json:"date"`
	Magnitude float64 `json:"magnitude"`
}

// Delta returns round(weight(refDate) - weight(refDate-daysBack), 1), or nil
// when either date has no record. refDate is assumed to be a validated ISO
// date; positive means heavier now.
func Delta(series []domain.SeriesPoint, refDate string, daysBack int) *float64 {
	past, err := dateutil.AddDays(refDate, -daysBack)
	if err != nil {
		return nil
	}

	var current, previous *float64
	for i := range series {
		switch series[i].Date {
		case refDate:
			current = &series[i].WeightKg
		case past:
			previous = &series[i].WeightKg
		}
	}
	if current == nil || previous == nil {
		return nil
	}
	d := dateutil.Round1(*current - *previous)
	return &d
}

// TrendOverLast compares the last point against the point n positions back,
// clamped to the first point when the series is shorter. Nil on an empty
// series.
func TrendOverLast(series []domain.SeriesPoint, n int) *float64 {
	if len(series) == 0 {
		return nil
	}
	base := len(series) - 1 - n
	if base < 0 {
		base = 0
	}
	d := dateutil.Round1(series[len(series)-1].WeightKg - series[base].WeightKg)
	return &d
}

// MaxRecentSwing scans the last window adjacent-day pairs for the largest
// absolute day-over-day change. Ties go to the latest date. Nil when fewer
// than two points are available.
func MaxRecentSwing(series []domain.SeriesPoint, window int) *Swing {
	if len(series) < 2 || window < 1 {
		return nil
	}
	first := len(series) - window
	if first < 1 {
		first = 1
	}

	var best *Swing
	for i := first; i < len(series); i++ {
		mag := math.Abs(series[i].WeightKg - series[i-1].WeightKg)
		if best == nil || mag >= best.Magnitude {
			best = &Swing{Date: series[i].Date, Magnitude: mag}
		}
	}
	best.Magnitude = dateutil.Round1(best.Magnitude)
	return best
}

// MinPoint returns the lightest point, ties broken by earliest date.
func MinPoint(series []domain.SeriesPoint) *domain.SeriesPoint {
	if len(series) == 0 {
		return nil
	}
	min := series[0]
	for _, p := range series[1:] {
		if p.WeightKg < min.WeightKg {
			min = p
		}
	}
	return &min
}
