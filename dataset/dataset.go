package dataset

import (
	"fmt"
	"math"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/mager/decadal/config"
	"github.com/mager/decadal/decadal"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// MinDecade is the cutoff for the working table; older tracks are dropped
// during load.
const MinDecade = 1960

// DataSourceError means the input file is missing or unreadable.
type DataSourceError struct {
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("dataset: read %s: %v", e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// SchemaError means a required column is absent or a cell could not be
// parsed. Row is -1 when the whole column is missing.
type SchemaError struct {
	Column string
	Row    int
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("dataset: column %q: %s", e.Column, e.Reason)
	}
	return fmt.Sprintf("dataset: column %q row %d: %s", e.Column, e.Row, e.Reason)
}

var requiredColumns = []string{
	"name", "artists", "year", "popularity",
	"danceability", "energy", "valence", "acousticness",
	"speechiness", "loudness", "tempo",
}

var columnTypes = map[string]series.Type{
	"name":         series.String,
	"artists":      series.String,
	"year":         series.Int,
	"popularity":   series.Int,
	"danceability": series.Float,
	"energy":       series.Float,
	"valence":      series.Float,
	"acousticness": series.Float,
	"speechiness":  series.Float,
	"loudness":     series.Float,
	"tempo":        series.Float,
}

// Dataset is the immutable working table. It is loaded once per process
// and shared read-only by every handler; callers must not mutate the
// slice returned by Tracks.
type Dataset struct {
	tracks  []decadal.Track
	decades []int
}

// New builds a Dataset from already-derived tracks. Load uses it; tests
// use it to build small fixture tables.
func New(tracks []decadal.Track) *Dataset {
	seen := make(map[int]bool)
	for _, t := range tracks {
		seen[t.Decade] = true
	}
	decades := maps.Keys(seen)
	slices.Sort(decades)
	return &Dataset{tracks: tracks, decades: decades}
}

// Tracks returns every track of the working table in source order.
func (d *Dataset) Tracks() []decadal.Track { return d.tracks }

// Decades returns the distinct decades present, ascending.
func (d *Dataset) Decades() []int { return d.decades }

// Len returns the number of tracks in the working table.
func (d *Dataset) Len() int { return len(d.tracks) }

// Load reads the track CSV at path, derives the decade of every row, and
// drops rows older than MinDecade. It returns a *DataSourceError when the
// file cannot be read and a *SchemaError when a required column is absent
// or a cell cannot be parsed; a malformed cell fails the whole load so the
// aggregators only ever see clean numbers.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataSourceError{Path: path, Err: err}
	}
	defer f.Close()

	df := dataframe.ReadCSV(f, dataframe.WithTypes(columnTypes))
	if df.Err != nil {
		return nil, &DataSourceError{Path: path, Err: df.Err}
	}

	present := make(map[string]bool, df.Ncol())
	for _, n := range df.Names() {
		present[n] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return nil, &SchemaError{Column: col, Row: -1, Reason: "required column missing"}
		}
	}

	nameCol := df.Col("name")
	artistsCol := df.Col("artists")
	yearCol := df.Col("year")
	popCol := df.Col("popularity")
	floatCols := make(map[string]series.Series, len(columnTypes))
	for col, typ := range columnTypes {
		if typ == series.Float {
			floatCols[col] = df.Col(col)
		}
	}

	tracks := make([]decadal.Track, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		year, err := yearCol.Elem(i).Int()
		if err != nil {
			return nil, &SchemaError{Column: "year", Row: i, Reason: "not an integer"}
		}
		decade := (year / 10) * 10
		if decade < MinDecade {
			continue
		}

		pop, err := popCol.Elem(i).Int()
		if err != nil {
			return nil, &SchemaError{Column: "popularity", Row: i, Reason: "not an integer"}
		}

		t := decadal.Track{
			Name:       nameCol.Elem(i).String(),
			Artists:    artistsCol.Elem(i).String(),
			Year:       year,
			Decade:     decade,
			Popularity: pop,
		}

		features := make(map[string]float64, len(floatCols))
		for col, s := range floatCols {
			v := s.Elem(i).Float()
			if math.IsNaN(v) {
				return nil, &SchemaError{Column: col, Row: i, Reason: "not a number"}
			}
			features[col] = v
		}
		t.Danceability = features["danceability"]
		t.Energy = features["energy"]
		t.Valence = features["valence"]
		t.Acousticness = features["acousticness"]
		t.Speechiness = features["speechiness"]
		t.Loudness = features["loudness"]
		t.Tempo = features["tempo"]

		tracks = append(tracks, t)
	}

	return New(tracks), nil
}

// ProvideDataset loads the working table once at startup and hands the
// immutable result to the rest of the app.
func ProvideDataset(logger *zap.SugaredLogger, cfg config.Config) (*Dataset, error) {
	ds, err := Load(cfg.DataPath)
	if err != nil {
		logger.Errorw("failed to load dataset", "path", cfg.DataPath, "error", err)
		return nil, err
	}

	logger.Infow("dataset loaded", "path", cfg.DataPath, "tracks", ds.Len(), "decades", ds.Decades())
	return ds, nil
}

var Options = ProvideDataset
