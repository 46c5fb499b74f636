package profile

import (
	"context"
	"sync"

	"github.com/2beens/fittracker/internal/storage"
	"github.com/2beens/fittracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

type persister interface {
	Load(ctx context.Context, key string, dst any) bool
	Save(ctx context.Context, key string, value any) error
}

type Repo struct {
	mutex     sync.Mutex
	persister persister
	profile   Profile
}

func NewRepo(ctx context.Context, persister persister) *Repo {
	r := &Repo{
		persister: persister,
	}

	var stored Profile
	if persister.Load(ctx, storage.KeyUserProfile, &stored) {
		if err := stored.Validate(); err != nil {
			log.Warnf("stored profile ignored: %s", err)
		} else {
			r.profile = stored
		}
	}
	return r
}

func (r *Repo) Get(_ context.Context) Profile {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.profile
}

// Save overwrites the whole profile.
func (r *Repo) Save(ctx context.Context, p Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := p.Validate(); err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if err := r.persister.Save(ctx, storage.KeyUserProfile, p); err != nil {
		return err
	}
	r.profile = p
	return nil
}

func (r *Repo) SaveFields(ctx context.Context, f Fields) (Profile, error) {
	p, err := ParseFields(f)
	if err != nil {
		return Profile{}, err
	}
	if err := r.Save(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}
