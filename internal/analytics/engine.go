package analytics

import (
	"context"

	"github.com/2beens/fittracker/internal/activities"
	"github.com/2beens/fittracker/internal/clock"
	"github.com/2beens/fittracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analytics_mocks_test.go -package=analytics_test

type activitiesSource interface {
	List(ctx context.Context) []activities.Activity
}

type TotalsView struct {
	Totals
	DurationLabel string `json:"durationLabel"`
	DistanceLabel string `json:"distanceLabel"`
}

type Summary struct {
	Totals       TotalsView     `json:"totals"`
	Breakdown    []TypeDuration `json:"breakdown"`
	DatasetLabel string         `json:"datasetLabel"`
	Weekly       WeeklyProgress `json:"weekly"`
}

type Engine struct {
	source activitiesSource
	clock  clock.Clock
	goals  Goals
}

func NewEngine(source activitiesSource, clk clock.Clock, goals Goals) *Engine {
	return &Engine{
		source: source,
		clock:  clk,
		goals:  goals,
	}
}

func (e *Engine) Goals() Goals {
	return e.goals
}

// Summary computes every analytics view over the full activity log.
func (e *Engine) Summary(ctx context.Context) Summary {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.summary")
	defer span.End()

	return e.SummaryOf(ctx, e.source.List(ctx))
}

// SummaryOf computes the views over an already loaded list.
func (e *Engine) SummaryOf(ctx context.Context, list []activities.Activity) Summary {
	_, span := tracing.GlobalTracer.Start(ctx, "analytics.summaryOf")
	defer span.End()
	span.SetAttributes(attribute.Int("activities.count", len(list)))

	totals := ComputeTotals(list)
	return Summary{
		Totals: TotalsView{
			Totals:        totals,
			DurationLabel: totals.DurationHoursLabel(),
			DistanceLabel: totals.DistanceLabel(),
		},
		Breakdown:    ComputeBreakdown(list),
		DatasetLabel: BreakdownDatasetLabel,
		Weekly:       ComputeWeeklyProgress(list, e.clock.Now(), e.goals),
	}
}
