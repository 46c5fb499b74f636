package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/2beens/fittracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/dashboard", handler.HandleSnapshot).Methods("GET", "OPTIONS").Name("dashboard")
}

func (handler *Handler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := handler.service.Snapshot(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		log.Errorf("dashboard snapshot: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(snapshot)
	if err != nil {
		log.Errorf("marshal dashboard snapshot: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
