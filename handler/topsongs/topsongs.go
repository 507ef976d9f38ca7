package topsongs

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mager/decadal/analysis"
	"github.com/mager/decadal/dataset"
	"github.com/mager/decadal/util"
	"go.uber.org/zap"
)

// TopSongsHandler serves the ranked list of a decade's most popular tracks.
type TopSongsHandler struct {
	log *zap.SugaredLogger
	ds  *dataset.Dataset
}

func (*TopSongsHandler) Pattern() string {
	return "/charts/top-songs"
}

// NewTopSongsHandler builds a new TopSongsHandler.
func NewTopSongsHandler(log *zap.SugaredLogger, ds *dataset.Dataset) *TopSongsHandler {
	return &TopSongsHandler{
		log: log,
		ds:  ds,
	}
}

type Response struct {
	Decade int             `json:"decade"`
	Songs  []analysis.Song `json:"songs"`
}

// Get top songs
// @Summary Get top songs
// @Description The decade's most popular tracks with display-cleaned artist names
// @Produce json
// @Success 200 {object} Response
// @Router /charts/top-songs [get]
// @Param decade query int false "Decade; defaults to the latest decade present"
// @Param n query int false "List length, default 5"
func (h *TopSongsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	n := analysis.DefaultTopN
	if q.Has("n") {
		var err error
		n, err = strconv.Atoi(q.Get("n"))
		if err != nil || n < 1 {
			util.WriteError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
	}

	h.log.Infow("top songs", "decade", decade, "n", n)

	resp := Response{
		Decade: decade,
		Songs:  analysis.TopSongs(h.ds.Tracks(), decade, n),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
