package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"

	"github.com/2beens/fittracker/internal/activities"
	"github.com/2beens/fittracker/internal/analytics"
	"github.com/2beens/fittracker/internal/clock"
	"github.com/2beens/fittracker/internal/config"
	"github.com/2beens/fittracker/internal/dashboard"
	"github.com/2beens/fittracker/internal/db"
	"github.com/2beens/fittracker/internal/kvstore"
	"github.com/2beens/fittracker/internal/middleware"
	"github.com/2beens/fittracker/internal/misc"
	"github.com/2beens/fittracker/internal/profile"
	"github.com/2beens/fittracker/internal/storage"
	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/internal/water"
	"github.com/2beens/fittracker/pkg"
)

const writesRateLimitKey = "fittracker:writes"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	config            *config.Config
	secrets           config.Secrets
	versionInfo       string

	store       kvstore.Store
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	activitiesRepo *activities.Repo
	profileRepo    *profile.Repo
	waterCounter   *water.Counter
	engine         *analytics.Engine
	dashboard      *dashboard.Service

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	Secrets     config.Secrets
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	if cfg.RequireWriteToken && params.Secrets.APITokenHash == "" {
		return nil, errors.New("write token required, but no token hash set")
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.StoreBackend == kvstore.BackendRedis {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.Secrets.RedisPassword,
			DB:       0, // use default DB
		})

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	}

	var (
		dbPool         *pgxpool.Pool
		poolCollectors []prometheus.Collector
	)
	if cfg.StoreBackend == kvstore.BackendPostgres {
		dbPool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBUser:         cfg.PostgresUser,
			DBPassword:     params.Secrets.PostgresPassword,
			TracingEnabled: params.Secrets.HoneycombEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}
		poolCollectors = append(poolCollectors, pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
	}

	promRegistry := metrics.SetupPrometheus(poolCollectors...)
	metricsManager := metrics.NewManager("fittracker", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.Secrets.HoneycombEnabled, "fittracker", rdb)
	if err != nil {
		return nil, err
	}

	dataFile := cfg.DataFile
	if dataFile == "" {
		dataFile = pkg.DefaultDataFile("data.json")
	}
	store, err := kvstore.New(ctx, kvstore.Params{
		Backend:     cfg.StoreBackend,
		FilePath:    dataFile,
		RedisClient: rdb,
		RedisPrefix: cfg.RedisPrefix,
		DBPool:      dbPool,
		CacheSizeMB: cfg.CacheSizeMB,
		CacheTTL:    cfg.CacheTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("new kv store: %w", err)
	}

	clk := clock.Real(loc)
	adapter := storage.NewAdapter(store)
	activitiesRepo := activities.NewRepo(ctx, adapter, clk)
	profileRepo := profile.NewRepo(ctx, adapter)
	waterCounter := water.NewCounter(ctx, adapter, clk)
	engine := analytics.NewEngine(activitiesRepo, clk, cfg.Goals)

	metricsManager.GaugeActivities.Set(float64(activitiesRepo.Count()))

	return &Server{
		config:      cfg,
		secrets:     params.Secrets,
		versionInfo: params.VersionInfo,

		store:       store,
		dbPool:      dbPool,
		redisClient: rdb,

		activitiesRepo: activitiesRepo,
		profileRepo:    profileRepo,
		waterCounter:   waterCounter,
		engine:         engine,
		dashboard:      dashboard.NewService(activitiesRepo, engine, profileRepo, waterCounter),

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	activities.NewHandler(s.activitiesRepo, s.metricsManager).SetupRoutes(r)
	analytics.NewHandler(s.engine).SetupRoutes(r)
	profile.NewHandler(s.profileRepo, s.metricsManager).SetupRoutes(r)
	water.NewHandler(s.waterCounter, s.metricsManager).SetupRoutes(r)
	dashboard.NewHandler(s.dashboard).SetupRoutes(r)
	misc.NewHandler(s.store, s.config.StoreBackend, s.versionInfo).SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		middleware.NewBcryptTokenChecker(s.secrets.APITokenHash),
		s.config.RequireWriteToken,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	if s.redisClient != nil && s.config.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			writesRateLimitKey,
			s.config.RateLimitPerMin,
			s.metricsManager,
		))
	}
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

// GracefulShutdown stops both listeners and releases the store connections.
func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	var err error
	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if shErr := s.httpServer.Shutdown(ctx); shErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown http server: %w", shErr))
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if shErr := s.metricsHttpServer.Shutdown(ctx); shErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown metrics server: %w", shErr))
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if rErr := s.redisClient.Close(); rErr != nil {
			err = multierr.Append(err, fmt.Errorf("close redis client: %w", rErr))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	return err
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
