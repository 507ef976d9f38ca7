package decadal

import "golang.org/x/exp/slices"

// Track is one row of the working table: a single song with its release
// metadata and its audio features. Tracks are immutable after load.
type Track struct {
	// Name is the track title.
	Name string `json:"name"`
	// Artists is the raw artist list exactly as stored in the source file,
	// e.g. "['The Beatles']". Use analysis.CleanArtists for display.
	Artists string `json:"artists"`
	// Year is the release year.
	Year int `json:"year"`
	// Decade is derived at load time: (year / 10) * 10.
	// Example: 1967 -> 1960
	Decade int `json:"decade"`
	// Popularity scores the track from 0 to 100.
	Popularity int `json:"popularity"`

	// Danceability describes how suitable a track is for dancing.
	// A value of 0.0 is least danceable and 1.0 is most danceable.
	// Example: 0.585
	Danceability float64 `json:"danceability"`
	// Energy is a perceptual measure of intensity and activity from 0.0 to 1.0.
	// Energetic tracks feel fast, loud, and noisy.
	// Example: 0.842
	Energy float64 `json:"energy"`
	// Valence describes the musical positiveness conveyed by a track, from
	// 0.0 (sad, angry) to 1.0 (happy, euphoric).
	// Example: 0.428
	Valence float64 `json:"valence"`
	// Acousticness is a confidence measure from 0.0 to 1.0 of whether the
	// track is acoustic.
	// Example: 0.00242
	Acousticness float64 `json:"acousticness"`
	// Speechiness detects the presence of spoken words, from 0.0 to 1.0.
	// Values above 0.66 describe tracks made entirely of spoken words.
	// Example: 0.0556
	Speechiness float64 `json:"speechiness"`
	// Loudness is the overall loudness of a track in decibels (dB).
	// Values typically range between -60 and 0 db.
	// Example: -5.883
	Loudness float64 `json:"loudness"`
	// Tempo is the overall estimated tempo of a track in beats per minute.
	// Example: 118.211
	Tempo float64 `json:"tempo"`
}

// Feature catalogs for the three chart surfaces. The orders are fixed:
// they are the series order of the trend chart, the axis order of the
// radar chart, and the selectable axes of the scatter chart.
var (
	TrendFeatures       = []string{"danceability", "energy", "valence", "acousticness"}
	FingerprintFeatures = []string{"danceability", "energy", "valence", "acousticness", "speechiness"}
	CorrelationFeatures = []string{"danceability", "energy", "valence", "acousticness", "loudness", "tempo", "popularity"}
)

var featureAccessors = map[string]func(Track) float64{
	"danceability": func(t Track) float64 { return t.Danceability },
	"energy":       func(t Track) float64 { return t.Energy },
	"valence":      func(t Track) float64 { return t.Valence },
	"acousticness": func(t Track) float64 { return t.Acousticness },
	"speechiness":  func(t Track) float64 { return t.Speechiness },
	"loudness":     func(t Track) float64 { return t.Loudness },
	"tempo":        func(t Track) float64 { return t.Tempo },
	"popularity":   func(t Track) float64 { return float64(t.Popularity) },
}

// FeatureValue returns the value of the named feature for t. The second
// return value is false when the name is not a known feature.
func FeatureValue(t Track, name string) (float64, bool) {
	get, ok := featureAccessors[name]
	if !ok {
		return 0, false
	}
	return get(t), true
}

// IsCorrelationFeature reports whether name can be used as a scatter axis.
func IsCorrelationFeature(name string) bool {
	return slices.Contains(CorrelationFeatures, name)
}
