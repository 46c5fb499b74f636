package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/fittracker/internal/kvstore"

	log "github.com/sirupsen/logrus"
)

// keys under which each domain collection lives in the medium
const (
	KeyActivities  = "activities"
	KeyUserProfile = "userProfile"
	KeyWaterIntake = "waterIntake"
)

// Adapter serializes domain values to JSON text in a kvstore.Store.
type Adapter struct {
	store kvstore.Store
}

func NewAdapter(store kvstore.Store) *Adapter {
	return &Adapter{
		store: store,
	}
}

// Load decodes the value stored under key into dst.
// It returns false, leaving dst untouched, if the value is absent, malformed,
// or cannot be read; so dst should hold the caller's default before the call.
func (a *Adapter) Load(ctx context.Context, key string, dst any) bool {
	text, found, err := a.store.Get(ctx, key)
	if err != nil {
		log.Errorf("storage load [%s]: %s", key, err)
		return false
	}
	if !found || text == "" || text == "null" {
		return false
	}

	// decode into a fresh value first, so a partial decode never leaks into dst
	if err := decodeInto(text, dst); err != nil {
		log.Warnf("storage load [%s], malformed data, using default: %s", key, err)
		return false
	}
	return true
}

func (a *Adapter) Save(ctx context.Context, key string, value any) error {
	content, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := a.store.Set(ctx, key, string(content)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
