package water

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=water_mocks_test.go -package=water_test

type intakeCounter interface {
	Intake(ctx context.Context) (Intake, error)
	Increment(ctx context.Context) (int, error)
	Decrement(ctx context.Context) (int, error)
}

type Handler struct {
	counter intakeCounter
	metrics *metrics.Manager
}

func NewHandler(counter intakeCounter, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		counter: counter,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/water", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-water")
	r.HandleFunc("/water/increment", handler.HandleIncrement).Methods("POST", "OPTIONS").Name("increment-water")
	r.HandleFunc("/water/decrement", handler.HandleDecrement).Methods("POST", "OPTIONS").Name("decrement-water")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	intake, err := handler.counter.Intake(r.Context())
	if err != nil {
		log.Errorf("get water intake: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	handler.writeJSON(w, intake)
}

func (handler *Handler) HandleIncrement(w http.ResponseWriter, r *http.Request) {
	handler.change(w, r, "increment", handler.counter.Increment)
}

func (handler *Handler) HandleDecrement(w http.ResponseWriter, r *http.Request) {
	handler.change(w, r, "decrement", handler.counter.Decrement)
}

func (handler *Handler) change(
	w http.ResponseWriter,
	r *http.Request,
	direction string,
	op func(ctx context.Context) (int, error),
) {
	if _, err := op(r.Context()); err != nil {
		log.Errorf("%s water intake: %s", direction, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	handler.metrics.CounterWaterChanges.WithLabelValues(direction).Inc()

	intake, err := handler.counter.Intake(r.Context())
	if err != nil {
		log.Errorf("get water intake: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	handler.writeJSON(w, intake)
}

func (handler *Handler) writeJSON(w http.ResponseWriter, intake Intake) {
	respJson, err := json.Marshal(intake)
	if err != nil {
		log.Errorf("failed to marshal water intake: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
