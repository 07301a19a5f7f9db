package service

import (
	"duoscale/internal/dateutil"
	"duoscale/internal/domain"
)

// BuildChartPoints merges both members' records into one point per calendar
// date over the inclusive range ending at today. Dates without a record keep
// a nil weight so the chart can show gaps instead of fake zeros.
func BuildChartPoints(records []domain.WeighIn, today string, rangeDays int) ([]domain.ChartPoint, error) {
	dates, err := dateutil.DateRange(today, rangeDays)
	if err != nil {
		return nil, err
	}

	type cell struct {
		weight float64
		drank  bool
	}
	byKey := make(map[domain.Person]map[string]cell)
	byKey[domain.PersonMe] = make(map[string]cell)
	byKey[domain.PersonPartner] = make(map[string]cell)
	for _, r := range records {
		if m, ok := byKey[r.Person]; ok {
			m[r.Date] = cell{weight: r.WeightKg, drank: r.Drank}
		}
	}

	points := make([]domain.ChartPoint, 0, len(dates))
	for _, date := range dates {
		p := domain.ChartPoint{Date: date}
		if c, ok := byKey[domain.PersonMe][date]; ok {
			w := c.weight
			p.Me = &w
			p.MeDrank = c.drank
		}
		if c, ok := byKey[domain.PersonPartner][date]; ok {
			w := c.weight
			p.Partner = &w
			p.PartnerDrank = c.drank
		}
		points = append(points, p)
	}
	return points, nil
}
