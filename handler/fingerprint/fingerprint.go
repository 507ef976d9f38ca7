package fingerprint

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mager/decadal/analysis"
	"github.com/mager/decadal/dataset"
	"github.com/mager/decadal/decadal"
	"github.com/mager/decadal/util"
	"go.uber.org/zap"
)

// FingerprintHandler serves the radar chart: the normalized feature
// fingerprint of one decade.
type FingerprintHandler struct {
	log *zap.SugaredLogger
	ds  *dataset.Dataset
}

func (*FingerprintHandler) Pattern() string {
	return "/charts/fingerprint"
}

// NewFingerprintHandler builds a new FingerprintHandler.
func NewFingerprintHandler(log *zap.SugaredLogger, ds *dataset.Dataset) *FingerprintHandler {
	return &FingerprintHandler{
		log: log,
		ds:  ds,
	}
}

type Response struct {
	Decade int             `json:"decade"`
	Axes   []analysis.Axis `json:"axes"`
}

// Get decade fingerprint
// @Summary Get decade fingerprint
// @Description Min-max normalized means of the five fingerprint features for one decade
// @Produce json
// @Success 200 {object} Response
// @Router /charts/fingerprint [get]
// @Param decade query int false "Decade; defaults to the latest decade present"
func (h *FingerprintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var decade int
	if q.Has("decade") {
		var err error
		decade, err = strconv.Atoi(q.Get("decade"))
		if err != nil {
			util.WriteError(w, http.StatusBadRequest, "decade must be an integer")
			return
		}
	} else if all := h.ds.Decades(); len(all) > 0 {
		decade = all[len(all)-1]
	}

	h.log.Infow("fingerprint chart", "decade", decade)

	resp := Response{
		Decade: decade,
		Axes:   analysis.Fingerprint(h.ds.Tracks(), decade, decadal.FingerprintFeatures),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
