package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/2beens/fittracker/internal/activities"
	"github.com/2beens/fittracker/internal/clock"
)

const weekWindowDays = 7

type Goals struct {
	DurationMinutes int     `json:"durationMinutes" toml:"duration_minutes"`
	DistanceKm      float64 `json:"distanceKm" toml:"distance_km"`
	Calories        int     `json:"calories" toml:"calories"`
}

// DefaultGoals are the weekly targets used unless configured otherwise.
func DefaultGoals() Goals {
	return Goals{
		DurationMinutes: 150,
		DistanceKm:      20,
		Calories:        2000,
	}
}

func (g Goals) Validate() error {
	if g.DurationMinutes <= 0 || g.Calories <= 0 ||
		g.DistanceKm <= 0 || math.IsNaN(g.DistanceKm) || math.IsInf(g.DistanceKm, 0) {
		return fmt.Errorf("weekly goals must be positive: %+v", g)
	}
	return nil
}

type WeeklyProgress struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Goals Goals  `json:"goals"`

	DurationMinutes int     `json:"durationMinutes"`
	DistanceKm      float64 `json:"distanceKm"`
	Calories        int     `json:"calories"`

	DurationPercentage float64 `json:"durationPercentage"`
	DistancePercentage float64 `json:"distancePercentage"`
	CaloriesPercentage float64 `json:"caloriesPercentage"`

	DurationLabel string `json:"durationLabel"`
	DistanceLabel string `json:"distanceLabel"`
	CaloriesLabel string `json:"caloriesLabel"`
}

// ComputeWeeklyProgress sums the records dated within the last seven days,
// today included. Dates are compared as calendar days in now's location;
// records with unparseable dates are left out.
func ComputeWeeklyProgress(list []activities.Activity, now time.Time, goals Goals) WeeklyProgress {
	today := clock.Midnight(now)
	from := today.AddDate(0, 0, -weekWindowDays)

	p := WeeklyProgress{
		From:  from.Format(clock.DateLayout),
		To:    today.Format(clock.DateLayout),
		Goals: goals,
	}

	for _, a := range list {
		date, err := time.ParseInLocation(clock.DateLayout, a.Date, now.Location())
		if err != nil {
			continue
		}
		if date.Before(from) || date.After(today) {
			continue
		}
		p.DurationMinutes += a.Duration
		p.DistanceKm += a.Distance
		p.Calories += a.Calories
	}

	p.DurationPercentage = percentage(float64(p.DurationMinutes), float64(goals.DurationMinutes))
	p.DistancePercentage = percentage(p.DistanceKm, goals.DistanceKm)
	p.CaloriesPercentage = percentage(float64(p.Calories), float64(goals.Calories))

	p.DurationLabel = fmt.Sprintf("%d/%d min", p.DurationMinutes, goals.DurationMinutes)
	p.DistanceLabel = fmt.Sprintf("%.2f/%g km", p.DistanceKm, goals.DistanceKm)
	p.CaloriesLabel = fmt.Sprintf("%d/%d kcal", p.Calories, goals.Calories)

	return p
}

// percentage of goal reached, capped at 100. A non-positive goal counts as met.
func percentage(sum, goal float64) float64 {
	if goal <= 0 {
		return 100
	}
	return math.Min(100, sum/goal*100)
}
