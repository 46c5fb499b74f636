package misc

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/fittracker/internal/storage"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=misc_mocks_test.go -package=misc_test

type storeProbe interface {
	Get(ctx context.Context, key string) (string, bool, error)
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Backend string `json:"backend"`
	Uptime  string `json:"uptime"`
}

type Handler struct {
	store       storeProbe
	backend     string
	versionInfo string
	startedAt   time.Time
}

func NewHandler(store storeProbe, backend, versionInfo string) *Handler {
	return &Handler{
		store:       store,
		backend:     backend,
		versionInfo: versionInfo,
		startedAt:   time.Now(),
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/health", handler.HandleHealth).Methods("GET").Name("health")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

// HandleHealth reads one key from the store; a failing medium makes the service unavailable.
func (handler *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	resp := HealthResponse{
		Status:  "ok",
		Version: handler.versionInfo,
		Backend: handler.backend,
		Uptime:  time.Since(handler.startedAt).Truncate(time.Second).String(),
	}
	status := http.StatusOK

	if _, _, err := handler.store.Get(ctx, storage.KeyWaterIntake); err != nil {
		log.Errorf("health check, store [%s] read: %s", handler.backend, err)
		span.SetStatus(codes.Error, "store-unavailable")
		resp.Status = "store unavailable"
		status = http.StatusServiceUnavailable
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal health response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
