package analytics

import (
	"fmt"

	"github.com/2beens/fittracker/internal/activities"
)

type Totals struct {
	Count           int     `json:"count"`
	DurationMinutes int     `json:"durationMinutes"`
	DistanceKm      float64 `json:"distanceKm"`
	Calories        int     `json:"calories"`
}

func ComputeTotals(list []activities.Activity) Totals {
	t := Totals{Count: len(list)}
	for _, a := range list {
		t.DurationMinutes += a.Duration
		t.DistanceKm += a.Distance
		t.Calories += a.Calories
	}
	return t
}

// DurationHoursLabel renders the total duration in hours, one decimal.
func (t Totals) DurationHoursLabel() string {
	return fmt.Sprintf("%.1fh", float64(t.DurationMinutes)/60)
}

func (t Totals) DistanceLabel() string {
	return fmt.Sprintf("%.2fkm", t.DistanceKm)
}
