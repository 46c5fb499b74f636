package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=profile_mocks_test.go -package=profile_test

type profileRepo interface {
	Get(ctx context.Context) Profile
	SaveFields(ctx context.Context, f Fields) (Profile, error)
}

type Handler struct {
	repo    profileRepo
	metrics *metrics.Manager
}

func NewHandler(repo profileRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/profile", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile", handler.HandleSave).Methods("PUT", "OPTIONS").Name("save-profile")
	r.HandleFunc("/profile/bmi", handler.HandleBMI).Methods("GET", "OPTIONS").Name("profile-bmi")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	handler.writeJSON(w, handler.repo.Get(r.Context()), http.StatusOK)
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var fields Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Tracef("save profile, unmarshal json params: %s", err)
		http.Error(w, "save profile failed, invalid json", http.StatusBadRequest)
		return
	}

	p, err := handler.repo.SaveFields(r.Context(), fields)
	if err != nil {
		if errors.Is(err, ErrInvalidProfile) {
			handler.metrics.CounterValidationErrors.Inc()
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to save profile: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterProfileSaves.Inc()
	handler.writeJSON(w, p, http.StatusOK)
}

func (handler *Handler) HandleBMI(w http.ResponseWriter, r *http.Request) {
	handler.writeJSON(w, ViewOf(handler.repo.Get(r.Context())), http.StatusOK)
}

func (handler *Handler) writeJSON(w http.ResponseWriter, value any, status int) {
	respJson, err := json.Marshal(value)
	if err != nil {
		log.Errorf("failed to marshal profile response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}
