package analytics

import "github.com/2beens/fittracker/internal/activities"

// BreakdownDatasetLabel names the duration series of the per-type chart.
const BreakdownDatasetLabel = "Activity Duration (minutes)"

type TypeDuration struct {
	Activity        string `json:"activity"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ComputeBreakdown sums duration per activity label.
// Labels keep the order in which they first appear in list.
func ComputeBreakdown(list []activities.Activity) []TypeDuration {
	breakdown := make([]TypeDuration, 0)
	index := make(map[string]int)
	for _, a := range list {
		i, ok := index[a.Activity]
		if !ok {
			i = len(breakdown)
			index[a.Activity] = i
			breakdown = append(breakdown, TypeDuration{Activity: a.Activity})
		}
		breakdown[i].DurationMinutes += a.Duration
	}
	return breakdown
}
