package domain

// Profile holds one member's goal settings. Both fields are optional.
type Profile struct {
	Person        Person   `json:"person"`
	GoalKg        *float64 `json:"goal_kg"`
	DietStartDate string   `json:"diet_start_date,omitempty"`
}

// GoalStatus is the rendered view of a profile against the latest weight.
type GoalStatus struct {
	Person        Person   `json:"person"`
	GoalKg        *float64 `json:"goal_kg"`
	DietStartDate string   `json:"diet_start_date,omitempty"`
	CurrentKg     *float64 `json:"current_kg"`
	Message       string   `json:"message"`
	DDayMessage   string   `json:"dday_message"`
}

// AlcoholDay marks which members drank on one date.
type AlcoholDay struct {
	Date    string `json:"date"`
	Me      bool   `json:"me"`
	Partner bool   `json:"partner"`
}

// AlcoholMonth is the per-month drinking view for both members.
type AlcoholMonth struct {
	Month       string       `json:"month"`
	MeDays      int          `json:"me_days"`
	PartnerDays int          `json:"partner_days"`
	Days        []AlcoholDay `json:"days"`
}
