package activities

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=activities_mocks_test.go -package=activities_test

type activitiesRepo interface {
	Upsert(ctx context.Context, id string, fields Fields) (_ *Activity, created bool, err error)
	Update(ctx context.Context, id string, fields Fields) (*Activity, error)
	Remove(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*Activity, error)
	Search(ctx context.Context, term string) []Activity
	Count() int
}

type SubmitRequest struct {
	ID string `json:"id"`
	Fields
}

type ListResponse struct {
	Activities []Activity `json:"activities"`
	Total      int        `json:"total"`
}

type DeleteResponse struct {
	DeletedID string `json:"deletedId"`
}

type Handler struct {
	repo    activitiesRepo
	metrics *metrics.Manager
}

func NewHandler(repo activitiesRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/activities", handler.HandleSubmit).Methods("POST", "OPTIONS").Name("submit-activity")
	r.HandleFunc("/activities", handler.HandleList).Methods("GET", "OPTIONS").Name("list-activities")
	r.HandleFunc("/activities/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-activity")
	r.HandleFunc("/activities/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-activity")
	r.HandleFunc("/activities/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-activity")
}

// HandleSubmit adds a new activity, or updates one if the body carries an existing id.
func (handler *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.submit")
	defer span.End()

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("submit activity, unmarshal json params: %s", err)
		http.Error(w, "submit activity failed, invalid json", http.StatusBadRequest)
		return
	}

	activity, created, err := handler.repo.Upsert(ctx, req.ID, req.Fields)
	if err != nil {
		handler.writeRepoError(w, "submit", req.ID, err)
		return
	}

	status := http.StatusOK
	op := "update"
	if created {
		status = http.StatusCreated
		op = "add"
	}
	handler.recordMutation(op)

	log.Debugf("activity %s [%s]: %s", op, activity.ID, activity.Activity)
	handler.writeJSON(w, activity, status)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.update")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var fields Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Tracef("update activity, unmarshal json params: %s", err)
		http.Error(w, "update activity failed, invalid json", http.StatusBadRequest)
		return
	}

	activity, err := handler.repo.Update(ctx, id, fields)
	if err != nil {
		handler.writeRepoError(w, "update", id, err)
		return
	}

	handler.recordMutation("update")
	handler.writeJSON(w, activity, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	activity, err := handler.repo.Get(ctx, id)
	if err != nil {
		handler.writeRepoError(w, "get", id, err)
		return
	}

	handler.writeJSON(w, activity, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.list")
	defer span.End()

	found := handler.repo.Search(ctx, r.URL.Query().Get("q"))
	handler.writeJSON(w, ListResponse{
		Activities: found,
		Total:      len(found),
	}, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Remove(ctx, id); err != nil {
		handler.writeRepoError(w, "delete", id, err)
		return
	}

	handler.recordMutation("remove")
	log.Debugf("activity %s deleted", id)
	handler.writeJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) recordMutation(op string) {
	handler.metrics.CounterActivityMutations.WithLabelValues(op).Inc()
	handler.metrics.GaugeActivities.Set(float64(handler.repo.Count()))
}

func (handler *Handler) writeRepoError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, ErrInvalidFields):
		handler.metrics.CounterValidationErrors.Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrActivityNotFound):
		log.Debugf("%s activity [%s]: not found", op, id)
		http.Error(w, "activity not found", http.StatusNotFound)
	default:
		log.Errorf("failed to %s activity [%s]: %s", op, id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (handler *Handler) writeJSON(w http.ResponseWriter, value any, status int) {
	respJson, err := json.Marshal(value)
	if err != nil {
		log.Errorf("failed to marshal activities response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}
