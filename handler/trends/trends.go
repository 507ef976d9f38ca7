package trends

import (
	"encoding/json"
	"net/http"

	"github.com/mager/decadal/analysis"
	"github.com/mager/decadal/dataset"
	"github.com/mager/decadal/decadal"
	"github.com/mager/decadal/util"
	"go.uber.org/zap"
)

// TrendsHandler serves the line chart: yearly means of the trend features
// over the selected decades.
type TrendsHandler struct {
	log *zap.SugaredLogger
	ds  *dataset.Dataset
}

func (*TrendsHandler) Pattern() string {
	return "/charts/trends"
}

// NewTrendsHandler builds a new TrendsHandler.
func NewTrendsHandler(log *zap.SugaredLogger, ds *dataset.Dataset) *TrendsHandler {
	return &TrendsHandler{
		log: log,
		ds:  ds,
	}
}

type Response struct {
	Decades []int                `json:"decades"`
	Years   []analysis.YearPoint `json:"years"`
}

// Get yearly feature trends
// @Summary Get yearly feature trends
// @Description Mean danceability, energy, valence, and acousticness per year over the selected decades
// @Produce json
// @Success 200 {object} Response
// @Router /charts/trends [get]
// @Param decades query string false "Comma-separated decades; omit for all"
func (h *TrendsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// An absent parameter means the default selection (every decade); an
	// empty one is an empty selection, which charts nothing.
	selected := h.ds.Decades()
	if q.Has("decades") {
		parsed, err := util.ParseIntList(q.Get("decades"))
		if err != nil {
			util.WriteError(w, http.StatusBadRequest, "decades must be a comma-separated list of integers")
			return
		}
		selected = parsed
	}

	filtered := analysis.Filter(h.ds.Tracks(), selected)

	h.log.Infow("trend chart", "decades", selected, "tracks", len(filtered))

	resp := Response{
		Decades: selected,
		Years:   analysis.YearlyMeans(filtered, decadal.TrendFeatures),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
