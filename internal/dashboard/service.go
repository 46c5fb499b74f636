package dashboard

import (
	"context"

	"github.com/2beens/fittracker/internal/activities"
	"github.com/2beens/fittracker/internal/analytics"
	"github.com/2beens/fittracker/internal/profile"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/internal/water"

	"go.opentelemetry.io/otel/attribute"
)

const EmptyMessage = "No activities logged yet. Add one to get started!"

//go:generate mockgen -source=$GOFILE -destination=dashboard_mocks_test.go -package=dashboard_test

type activitiesRepo interface {
	List(ctx context.Context) []activities.Activity
	Search(ctx context.Context, term string) []activities.Activity
}

type profileRepo interface {
	Get(ctx context.Context) profile.Profile
}

type waterCounter interface {
	Intake(ctx context.Context) (water.Intake, error)
}

// Snapshot is everything the presentation layer draws after a change.
type Snapshot struct {
	Activities   []activities.Activity `json:"activities"`
	SearchTerm   string                `json:"searchTerm,omitempty"`
	EmptyMessage string                `json:"emptyMessage,omitempty"`
	Analytics    analytics.Summary     `json:"analytics"`
	Profile      profile.Profile       `json:"profile"`
	BMI          profile.View          `json:"bmi"`
	Water        water.Intake          `json:"water"`
}

type Service struct {
	activities activitiesRepo
	engine     *analytics.Engine
	profile    profileRepo
	water      waterCounter
}

func NewService(
	activitiesRepo activitiesRepo,
	engine *analytics.Engine,
	profileRepo profileRepo,
	waterCounter waterCounter,
) *Service {
	return &Service{
		activities: activitiesRepo,
		engine:     engine,
		profile:    profileRepo,
		water:      waterCounter,
	}
}

// Snapshot applies the search term to the activity list only;
// analytics always cover the whole log.
func (s *Service) Snapshot(ctx context.Context, searchTerm string) (_ Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.snapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("search.term", searchTerm))

	intake, err := s.water.Intake(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	list := s.activities.Search(ctx, searchTerm)
	p := s.profile.Get(ctx)

	snapshot := Snapshot{
		Activities: list,
		SearchTerm: searchTerm,
		Analytics:  s.engine.SummaryOf(ctx, s.activities.List(ctx)),
		Profile:    p,
		BMI:        profile.ViewOf(p),
		Water:      intake,
	}
	if len(list) == 0 {
		snapshot.EmptyMessage = EmptyMessage
	}
	return snapshot, nil
}
