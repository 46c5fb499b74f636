package activities

// Activity is one logged exercise session.
type Activity struct {
	ID       string  `json:"id"`
	Activity string  `json:"activity"`
	Duration int     `json:"duration"` // minutes
	Distance float64 `json:"distance"` // kilometers
	Calories int     `json:"calories"`
	Date     string  `json:"date"` // YYYY-MM-DD
	Notes    string  `json:"notes"`
}
