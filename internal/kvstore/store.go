package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrUnknownBackend = errors.New("unknown store backend")

// Store is the key-value medium every domain collection is persisted in.
type Store interface {
	// Get returns the text stored under key. found is false if nothing was ever set.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Params struct {
	Backend string

	FilePath string

	RedisClient *redis.Client
	RedisPrefix string

	DBPool *pgxpool.Pool

	// CacheSizeMB > 0 wraps the backend in a CachedStore.
	CacheSizeMB int
	CacheTTL    time.Duration
}

func New(ctx context.Context, params Params) (Store, error) {
	var store Store
	switch strings.ToLower(params.Backend) {
	case "", BackendMemory:
		store = NewMemoryStore()
	case BackendFile:
		fileStore, err := NewFileStore(params.FilePath)
		if err != nil {
			return nil, fmt.Errorf("file store: %w", err)
		}
		store = fileStore
	case BackendRedis:
		if params.RedisClient == nil {
			return nil, errors.New("redis store: nil redis client")
		}
		store = NewRedisStore(params.RedisClient, params.RedisPrefix)
	case BackendPostgres:
		if params.DBPool == nil {
			return nil, errors.New("postgres store: nil db pool")
		}
		pgStore := NewPostgresStore(params.DBPool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("postgres store schema: %w", err)
		}
		store = pgStore
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, params.Backend)
	}

	if params.CacheSizeMB > 0 {
		log.Debugf("kv store [%s] wrapped in %d MB cache", params.Backend, params.CacheSizeMB)
		store = NewCachedStore(store, params.CacheSizeMB, params.CacheTTL)
	}

	return store, nil
}
