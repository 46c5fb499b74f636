package activities

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/2beens/fittracker/internal/clock"
	"github.com/2beens/fittracker/internal/storage"
	"github.com/2beens/fittracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrActivityNotFound = errors.New("activity not found")

type persister interface {
	Load(ctx context.Context, key string, dst any) bool
	Save(ctx context.Context, key string, value any) error
}

var _ persister = (*storage.Adapter)(nil)

// Repo is the ordered activity log. Insertion order is display order.
// Every mutation writes the full collection back to the store.
type Repo struct {
	mutex     sync.Mutex
	persister persister
	clock     clock.Clock
	list      []Activity
	lastID    int64
}

// NewRepo loads the stored activities; absent or malformed data gives an empty log.
func NewRepo(ctx context.Context, persister persister, clk clock.Clock) *Repo {
	r := &Repo{
		persister: persister,
		clock:     clk,
		list:      make([]Activity, 0),
	}

	var stored []Activity
	if persister.Load(ctx, storage.KeyActivities, &stored) && stored != nil {
		r.list = stored
	}

	for _, a := range r.list {
		if id, err := strconv.ParseInt(a.ID, 10, 64); err == nil && id > r.lastID {
			r.lastID = id
		}
	}

	log.Debugf("activities repo loaded %d activities", len(r.list))
	return r
}

// nextID is the current unix time in millis, bumped past the last issued id if needed.
func (r *Repo) nextID() string {
	id := r.clock.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return strconv.FormatInt(id, 10)
}

func (r *Repo) indexOf(id string) int {
	for i := range r.list {
		if r.list[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *Repo) save(ctx context.Context) error {
	return r.persister.Save(ctx, storage.KeyActivities, r.list)
}

func (r *Repo) Add(ctx context.Context, fields Fields) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	activity, err := ParseFields(fields, clock.Today(r.clock))
	if err != nil {
		return nil, err
	}

	prevLastID := r.lastID
	activity.ID = r.nextID()
	r.list = append(r.list, activity)

	if err := r.save(ctx); err != nil {
		r.list = r.list[:len(r.list)-1]
		r.lastID = prevLastID
		return nil, err
	}

	span.SetAttributes(attribute.String("activity.id", activity.ID))
	return &activity, nil
}

// Update replaces the activity with the given id, keeping its position.
func (r *Repo) Update(ctx context.Context, id string, fields Fields) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("activity.id", id))

	r.mutex.Lock()
	defer r.mutex.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrActivityNotFound
	}

	activity, err := ParseFields(fields, clock.Today(r.clock))
	if err != nil {
		return nil, err
	}
	activity.ID = id

	prev := r.list[i]
	r.list[i] = activity
	if err := r.save(ctx); err != nil {
		r.list[i] = prev
		return nil, err
	}

	return &activity, nil
}

// Upsert is the form submit: an empty id adds a new activity, otherwise the existing one is updated.
func (r *Repo) Upsert(ctx context.Context, id string, fields Fields) (_ *Activity, created bool, err error) {
	if strings.TrimSpace(id) == "" {
		activity, err := r.Add(ctx, fields)
		return activity, err == nil, err
	}
	activity, err := r.Update(ctx, id, fields)
	return activity, false, err
}

func (r *Repo) Remove(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.remove")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("activity.id", id))

	r.mutex.Lock()
	defer r.mutex.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrActivityNotFound
	}

	prev := r.list
	updated := make([]Activity, 0, len(r.list)-1)
	updated = append(updated, r.list[:i]...)
	updated = append(updated, r.list[i+1:]...)
	r.list = updated

	if err := r.save(ctx); err != nil {
		r.list = prev
		return fmt.Errorf("remove %s: %w", id, err)
	}
	return nil
}

func (r *Repo) Get(_ context.Context, id string) (*Activity, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrActivityNotFound
	}
	activity := r.list[i]
	return &activity, nil
}

// List returns a copy of all activities in insertion order.
func (r *Repo) List(_ context.Context) []Activity {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	list := make([]Activity, len(r.list))
	copy(list, r.list)
	return list
}

// Search matches term case-insensitively against the activity label or notes.
// An empty term matches everything.
func (r *Repo) Search(ctx context.Context, term string) []Activity {
	all := r.List(ctx)
	if term == "" {
		return all
	}

	term = strings.ToLower(term)
	found := make([]Activity, 0, len(all))
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Activity), term) ||
			(a.Notes != "" && strings.Contains(strings.ToLower(a.Notes), term)) {
			found = append(found, a)
		}
	}
	return found
}

func (r *Repo) Count() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.list)
}
