package service

import (
	"sort"

	"duoscale/internal/domain"
)

// ProjectSeries filters records to one person and an inclusive date window
// and returns the ascending series. Fixed-width ISO dates make lexicographic
// comparison equivalent to chronological order. Gaps stay gaps; nothing is
// interpolated. If the store ever yields two records for the same date, the
// later one in input order wins.
func ProjectSeries(records []domain.WeighIn, person domain.Person, start, end string) []domain.SeriesPoint {
	byDate := make(map[string]domain.SeriesPoint)
	for _, r := range records {
		if r.Person != person || r.Date < start || r.Date > end {
			continue
		}
		byDate[r.Date] = domain.SeriesPoint{Date: r.Date, WeightKg: r.WeightKg, Drank: r.Drank}
	}

	series := make([]domain.SeriesPoint, 0, len(byDate))
	for _, p := range byDate {
		series = append(series, p)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series
}
