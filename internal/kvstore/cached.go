package kvstore

import (
	"context"
	"errors"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const DefaultCacheTTL = time.Hour

var _ Store = (*CachedStore)(nil)

// CachedStore is a read-through, write-through cache in front of a remote Store.
type CachedStore struct {
	next  Store
	cache *freecache.Cache
	ttl   int // seconds
}

func NewCachedStore(next Store, cacheSizeMB int, ttl time.Duration) *CachedStore {
	megabyte := 1024 * 1024
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{
		next:  next,
		cache: freecache.NewCache(cacheSizeMB * megabyte),
		ttl:   int(ttl.Seconds()),
	}
}

func (s *CachedStore) Get(ctx context.Context, key string) (string, bool, error) {
	if cached, err := s.cache.Get([]byte(key)); err == nil {
		log.Tracef("kv cache hit: %s", key)
		return string(cached), true, nil
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Warnf("kv cache get %s: %s", key, err)
	}

	value, found, err := s.next.Get(ctx, key)
	if err != nil || !found {
		return value, found, err
	}

	if err := s.cache.Set([]byte(key), []byte(value), s.ttl); err != nil {
		log.Warnf("kv cache set %s: %s", key, err)
	}
	return value, true, nil
}

func (s *CachedStore) Set(ctx context.Context, key, value string) error {
	if err := s.next.Set(ctx, key, value); err != nil {
		s.cache.Del([]byte(key))
		return err
	}
	if err := s.cache.Set([]byte(key), []byte(value), s.ttl); err != nil {
		// an entry too large for the cache must not leave the previous value behind
		s.cache.Del([]byte(key))
		log.Warnf("kv cache set %s: %s", key, err)
	}
	return nil
}
