package water

import (
	"context"
	"sync"

	"github.com/2beens/fittracker/internal/clock"
	"github.com/2beens/fittracker/internal/storage"
	"github.com/2beens/fittracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// Intake is the glass count for one calendar day.
type Intake struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type persister interface {
	Load(ctx context.Context, key string, dst any) bool
	Save(ctx context.Context, key string, value any) error
}

// Counter tracks today's water intake. Every access first rolls a stale
// record over to {today, 0} and persists the result.
type Counter struct {
	mutex     sync.Mutex
	persister persister
	clock     clock.Clock
	intake    Intake
}

func NewCounter(ctx context.Context, persister persister, clk clock.Clock) *Counter {
	c := &Counter{
		persister: persister,
		clock:     clk,
		intake: Intake{
			Date: clock.Today(clk),
		},
	}

	var stored Intake
	if persister.Load(ctx, storage.KeyWaterIntake, &stored) && stored.Count >= 0 {
		c.intake = stored
	}
	return c
}

func (c *Counter) Intake(ctx context.Context) (Intake, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if err := c.apply(ctx, "get", 0); err != nil {
		return Intake{}, err
	}
	return c.intake, nil
}

func (c *Counter) Get(ctx context.Context) (int, error) {
	intake, err := c.Intake(ctx)
	return intake.Count, err
}

func (c *Counter) Increment(ctx context.Context) (int, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if err := c.apply(ctx, "increment", 1); err != nil {
		return 0, err
	}
	return c.intake.Count, nil
}

// Decrement never goes below zero.
func (c *Counter) Decrement(ctx context.Context) (int, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if err := c.apply(ctx, "decrement", -1); err != nil {
		return 0, err
	}
	return c.intake.Count, nil
}

func (c *Counter) apply(ctx context.Context, op string, delta int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "counter.water."+op)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	next := c.intake
	today := clock.Today(c.clock)
	if next.Date != today {
		span.SetAttributes(attribute.String("water.rollover.from", next.Date))
		next = Intake{Date: today}
	}

	next.Count += delta
	if next.Count < 0 {
		next.Count = 0
	}

	if err := c.persister.Save(ctx, storage.KeyWaterIntake, next); err != nil {
		return err
	}
	c.intake = next
	span.SetAttributes(attribute.Int("water.count", next.Count))
	return nil
}
