package service

import (
	"fmt"
	"sort"

	"duoscale/internal/domain"
)

// BuildAlcoholMonth collects the drank-flagged dates of one YYYY-MM month
// for both members, with per-member day counts.
func BuildAlcoholMonth(records []domain.WeighIn, month string) (domain.AlcoholMonth, error) {
	if len(month) != 7 || month[4] != '-' {
		return domain.AlcoholMonth{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, month)
	}

	byDate := make(map[string]*domain.AlcoholDay)
	out := domain.AlcoholMonth{Month: month}
	for _, r := range records {
		if !r.Drank || len(r.Date) < 7 || r.Date[:7] != month {
			continue
		}
		day, ok := byDate[r.Date]
		if !ok {
			day = &domain.AlcoholDay{Date: r.Date}
			byDate[r.Date] = day
		}
		switch r.Person {
		case domain.PersonMe:
			if !day.Me {
				out.MeDays++
			}
			day.Me = true
		case domain.PersonPartner:
			if !day.Partner {
				out.PartnerDays++
			}
			day.Partner = true
		}
	}

	out.Days = make([]domain.AlcoholDay, 0, len(byDate))
	for _, d := range byDate {
		out.Days = append(out.Days, *d)
	}
	sort.Slice(out.Days, func(i, j int) bool { return out.Days[i].Date < out.Days[j].Date })
	return out, nil
}
