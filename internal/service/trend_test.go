package service

import (
	"testing"

	"duoscale/internal/domain"
)

func point(date string, kg float64) domain.SeriesPoint {
	return domain.SeriesPoint{Date: date, WeightKg: kg}
}

func TestDeltaDayAndWeek(t *testing.T) {
	series := []domain.SeriesPoint{
		point("2025-01-01", 70.0),
		point("2025-01-07", 69.0),
		point("2025-01-08", 69.0),
	}

	vsYesterday := Delta(series, "2025-01-08", 1)
	if vsYesterday == nil || *vsYesterday != 0.0 {
		t.Fatalf("vs yesterday: expected 0.0, got %v", vsYesterday)
	}

	vsWeek := Delta(series, "2025-01-08", 7)
	if vsWeek == nil || *vsWeek != -1.0 {
		t.Fatalf("vs week: expected -1.0, got %v", vsWeek)
	}
}

func TestDeltaAbsentEndpoints(t *testing.T) {
	series := []domain.SeriesPoint{
		point("2025-01-05", 70.0),
		point("2025-01-08", 69.5),
	}

	// Past endpoint missing.
	if got := Delta(series, "2025-01-08", 1); got != nil {
		t.Fatalf("expected absent when past endpoint missing, got %v", got)
	}
	// Reference endpoint missing.
	if got := Delta(series, "2025-01-09", 1); got != nil {
		t.Fatalf("expected absent when reference missing, got %v", got)
	}
	// Empty series.
	if got := Delta(nil, "2025-01-08", 1); got != nil {
		t.Fatalf("expected absent on empty series, got %v", got)
	}
}

func TestDeltaMatchesDirectSubtraction(t *testing.T) {
	series := []domain.SeriesPoint{
		point("2025-01-01", 71.37),
		point("2025-01-04", 70.02),
	}
	got := Delta(series, "2025-01-04", 3)
	if got == nil || *got != -1.4 {
		t.Fatalf("expected round(70.02-71.37) = -1.4, got %v", got)
	}
}

func TestTrendOverLastClampsToStart(t *testing.T) {
	series := []domain.SeriesPoint{
		point("2025-01-01", 70.0),
		point("2025-01-03", 69.0),
		point("2025-01-05", 68.5),
	}

	// Series shorter than n: compare last against first.
	got := TrendOverLast(series, 14)
	if got == nil || *got != -1.5 {
		t.Fatalf("expected -1.5, got %v", got)
	}

	// Exact offset.
	got = TrendOverLast(series, 1)
	if got == nil || *got != -0.5 {
		t.Fatalf("expected -0.5, got %v", got)
	}

	if got := TrendOverLast(nil, 14); got != nil {
		t.Fatalf("expected absent on empty series, got %v", got)
	}

	single := []domain.SeriesPoint{point("2025-01-01", 70.0)}
	got = TrendOverLast(single, 14)
	if got == nil || *got != 0.0 {
		t.Fatalf("expected 0.0 on single point, got %v", got)
	}
}

func TestMaxRecentSwing(t *testing.T) {
	series := []domain.SeriesPoint{
		point("2025-01-01", 70.0),
		point("2025-01-02", 71.5), // +1.5
		point("2025-01-03", 71.0), // -0.5
		point("2025-01-04", 69.5), // -1.5, ties with 01-02 -> latest wins
	}

	swing := MaxRecentSwing(series, 7)
	if swing == nil {
		t.Fatal("expected a swing")
	}
	if swing.Date != "2025-01-04" || swing.Magnitude != 1.5 {
		t.Fatalf("expected 2025-01-04 / 1.5, got %+v", swing)
	}

	// Window restricts the scanned pairs.
	swing = MaxRecentSwing(series, 1)
	if swing == nil || swing.Date != "2025-01-04" {
		t.Fatalf("expected last pair only, got %+v", swing)
	}

	if got := MaxRecentSwing(series[:1], 7); got != nil {
		t.Fatalf("expected absent below 2 points, got %+v", got)
	}
}

func TestMinPoint(t *testing.T) {
	if got := MinPoint(nil); got != nil {
		t.Fatalf("expected absent on empty series, got %+v", got)
	}

	series := []domain.SeriesPoint{
		point("2025-01-01", 70.0),
		point("2025-01-02", 68.5),
		point("2025-01-03", 69.0),
	}
	got := MinPoint(series)
	if got == nil || got.Date != "2025-01-02" || got.WeightKg != 68.5 {
		t.Fatalf("unexpected min point: %+v", got)
	}

	// Tie broken by earliest date.
	tied := []domain.SeriesPoint{
		point("2025-01-01", 68.5),
		point("2025-01-02", 68.5),
	}
	got = MinPoint(tied)
	if got == nil || got.Date != "2025-01-01" {
		t.Fatalf("expected earliest tie winner, got %+v", got)
	}
}
