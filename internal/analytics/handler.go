package analytics

import (
	"encoding/json"
	"net/http"

	"github.com/2beens/fittracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{
		engine: engine,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/analytics", handler.HandleSummary).Methods("GET", "OPTIONS").Name("analytics-summary")
	r.HandleFunc("/analytics/goals", handler.HandleGoals).Methods("GET", "OPTIONS").Name("analytics-goals")
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary := handler.engine.Summary(r.Context())
	respJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal analytics summary: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleGoals(w http.ResponseWriter, _ *http.Request) {
	respJson, err := json.Marshal(handler.engine.Goals())
	if err != nil {
		log.Errorf("marshal goals: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
