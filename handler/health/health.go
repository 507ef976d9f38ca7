package health

import (
	"encoding/json"
	"net/http"

	"github.com/mager/decadal/dataset"
	"go.uber.org/zap"
)

// HealthHandler reports whether the server and the working table are ready.
type HealthHandler struct {
	log *zap.SugaredLogger
	ds  *dataset.Dataset
}

func (*HealthHandler) Pattern() string {
	return "/health"
}

// NewHealthHandler builds a new HealthHandler.
func NewHealthHandler(log *zap.SugaredLogger, ds *dataset.Dataset) *HealthHandler {
	return &HealthHandler{
		log: log,
		ds:  ds,
	}
}

type Response struct {
	Server  bool `json:"server"`
	Dataset bool `json:"dataset"`
	Tracks  int  `json:"tracks"`
}

// Health check
// @Summary Health check
// @Description Report server and dataset readiness
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.log.Info("health check")

	var resp Response
	resp.Server = true

	// The working table is loaded once at startup; an empty table means
	// the source file held no post-1960 rows.
	if h.ds != nil && h.ds.Len() > 0 {
		resp.Dataset = true
		resp.Tracks = h.ds.Len()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
