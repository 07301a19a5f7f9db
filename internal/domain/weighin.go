package domain

// Person identifies one of the two household members.
type Person string

const (
	PersonMe      Person = "me"
	PersonPartner Person = "partner"
)

// WeighIn is one stored weight record. The store guarantees at most one
// record per (person, date).
type WeighIn struct {
	Date     string  `json:"date"`
	Person   Person  `json:"person"`
	WeightKg float64 `json:"weight_kg"`
	Drank    bool    `json:"drank"`
}

// SeriesPoint is the per-person projection of a WeighIn inside a window.
type SeriesPoint struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"kg"`
	Drank    bool    `json:"drank,omitempty"`
}

// HouseholdMember maps a person slot to its display name.
type HouseholdMember struct {
	Person      Person `json:"person"`
	DisplayName string `json:"display_name"`
}

// ChartPoint merges both members' records for one calendar date.
// Nil weight means no record that day.
type ChartPoint struct {
	Date         string   `json:"date"`
	Me           *float64 `json:"me"`
	Partner      *float64 `json:"partner"`
	MeDrank      bool     `json:"me_drank"`
	PartnerDrank bool     `json:"partner_drank"`
}
