package domain

// DeltaPair holds the day-over-day and week-over-week deltas for one person.
// Nil means the endpoint date had no record, which is different from 0.0.
type DeltaPair struct {
	VsYesterday *float64 `json:"vs_yesterday"`
	VsWeek      *float64 `json:"vs_week"`
}

// UserSeries is one person's series labeled for the summary consumer.
type UserSeries struct {
	Label  Person        `json:"label"`
	Series []SeriesPoint `json:"series"`
}

// SummaryDeltas groups both members' delta pairs.
type SummaryDeltas struct {
	Me      DeltaPair `json:"me"`
	Partner DeltaPair `json:"partner"`
}

// Summary is the structured snapshot handed to either answer path. It is
// built fresh per request and never mutated afterwards.
type Summary struct {
	RangeDays    int           `json:"range_days"`
	Today        string        `json:"today"`
	MeLabel      string        `json:"me_label"`
	PartnerLabel string        `json:"partner_label"`
	Users        []UserSeries  `json:"users"`
	Deltas       SummaryDeltas `json:"deltas"`
}

// UserSeriesFor returns the series stored under the given label, or nil.
func (s *Summary) UserSeriesFor(label Person) []SeriesPoint {
	for _, u := range s.Users {
		if u.Label == label {
			return u.Series
		}
	}
	return nil
}

// DeltasFor returns the delta pair for the given label.
func (s *Summary) DeltasFor(label Person) DeltaPair {
	if label == PersonPartner {
		return s.Deltas.Partner
	}
	return s.Deltas.Me
}

// LabelFor returns the display name for the given label.
func (s *Summary) LabelFor(label Person) string {
	if label == PersonPartner {
		return s.PartnerLabel
	}
	return s.MeLabel
}
