package correlation

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mager/decadal/analysis"
	"github.com/mager/decadal/dataset"
	"github.com/mager/decadal/decadal"
	"github.com/mager/decadal/util"
	"go.uber.org/zap"
)

// CorrelationHandler serves the scatter chart: a capped, seeded sample of
// two features over the selected decades.
type CorrelationHandler struct {
	log *zap.SugaredLogger
	ds  *dataset.Dataset
}

func (*CorrelationHandler) Pattern() string {
	return "/charts/correlation"
}

// NewCorrelationHandler builds a new CorrelationHandler.
func NewCorrelationHandler(log *zap.SugaredLogger, ds *dataset.Dataset) *CorrelationHandler {
	return &CorrelationHandler{
		log: log,
		ds:  ds,
	}
}

type Point struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Decade int     `json:"decade"`
	Name   string  `json:"name"`
}

type Response struct {
	X      string  `json:"x"`
	Y      string  `json:"y"`
	Points []Point `json:"points"`
}

// Get feature correlation
// @Summary Get feature correlation
// @Description Scatter sample of two features over the selected decades, capped at 2000 points
// @Produce json
// @Success 200 {object} Response
// @Router /charts/correlation [get]
// @Param x query string false "X-axis feature, default danceability"
// @Param y query string false "Y-axis feature, default energy"
// @Param decades query string false "Comma-separated decades; omit for all"
func (h *CorrelationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	x := q.Get("x")
	if x == "" {
		x = "danceability"
	}
	y := q.Get("y")
	if y == "" {
		y = "energy"
	}
	if !decadal.IsCorrelationFeature(x) {
		util.WriteError(w, http.StatusBadRequest, fmt.Sprintf("unknown feature %q", x))
		return
	}
	if !decadal.IsCorrelationFeature(y) {
		util.WriteError(w, http.StatusBadRequest, fmt.Sprintf("unknown feature %q", y))
		return
	}

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
	sampled := analysis.Sample(filtered, analysis.DefaultSampleSize, analysis.SampleSeed)

	h.log.Infow("correlation chart", "x", x, "y", y, "decades", selected, "points", len(sampled))

	points := make([]Point, 0, len(sampled))
	for _, t := range sampled {
		xv, _ := decadal.FeatureValue(t, x)
		yv, _ := decadal.FeatureValue(t, y)
		points = append(points, Point{X: xv, Y: yv, Decade: t.Decade, Name: t.Name})
	}

	resp := Response{X: x, Y: y, Points: points}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
