package decades

import (
	"encoding/json"
	"net/http"

	"github.com/mager/decadal/dataset"
	"go.uber.org/zap"
)

// DecadesHandler lists the decades available to the filter controls.
type DecadesHandler struct {
	log *zap.SugaredLogger
	ds  *dataset.Dataset
}

func (*DecadesHandler) Pattern() string {
	return "/decades"
}

// NewDecadesHandler builds a new DecadesHandler.
func NewDecadesHandler(log *zap.SugaredLogger, ds *dataset.Dataset) *DecadesHandler {
	return &DecadesHandler{
		log: log,
		ds:  ds,
	}
}

type Response struct {
	Decades []int `json:"decades"`
}

// List decades
// @Summary List decades
// @Description List the distinct decades of the working table, ascending
// @Produce json
// @Success 200 {object} Response
// @Router /decades [get]
func (h *DecadesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := Response{Decades: h.ds.Decades()}

	h.log.Infow("list decades", "count", len(resp.Decades))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
