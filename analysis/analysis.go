package analysis

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/mager/decadal/decadal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	// DefaultTopN is the length of the top-songs list.
	DefaultTopN = 5
	// DefaultSampleSize caps the scatter payload.
	DefaultSampleSize = 2000
	// SampleSeed fixes the scatter sample so repeated queries over the same
	// table and filter return the same rows.
	SampleSeed = 42
)

// Filter returns the tracks whose decade is in decades, preserving source
// order. An empty selection selects nothing.
func Filter(tracks []decadal.Track, decades []int) []decadal.Track {
	want := make(map[int]bool, len(decades))
	for _, d := range decades {
		want[d] = true
	}

	out := make([]decadal.Track, 0)
	for _, t := range tracks {
		if want[t.Decade] {
			out = append(out, t)
		}
	}
	return out
}

// Decades returns the distinct decades present in tracks, ascending.
func Decades(tracks []decadal.Track) []int {
	seen := make(map[int]bool)
	for _, t := range tracks {
		seen[t.Decade] = true
	}

	out := maps.Keys(seen)
	slices.Sort(out)
	return out
}

// YearPoint is one year of the trend chart.
type YearPoint struct {
	Year  int                `json:"year"`
	Means map[string]float64 `json:"means"`
}

// YearlyMeans groups tracks by year and averages the named features over
// each year's records. Years with no records are simply absent; the result
// is ascending by year.
func YearlyMeans(tracks []decadal.Track, features []string) []YearPoint {
	type group struct {
		sums map[string]float64
		n    int
	}

	byYear := make(map[int]*group)
	for _, t := range tracks {
		g := byYear[t.Year]
		if g == nil {
			g = &group{sums: make(map[string]float64, len(features))}
			byYear[t.Year] = g
		}
		for _, f := range features {
			v, ok := decadal.FeatureValue(t, f)
			if !ok {
				continue
			}
			g.sums[f] += v
		}
		g.n++
	}

	years := maps.Keys(byYear)
	slices.Sort(years)

	out := make([]YearPoint, 0, len(years))
	for _, y := range years {
		g := byYear[y]
		means := make(map[string]float64, len(features))
		for _, f := range features {
			means[f] = g.sums[f] / float64(g.n)
		}
		out = append(out, YearPoint{Year: y, Means: means})
	}
	return out
}

// Axis is one spoke of the radar chart.
type Axis struct {
	Feature string  `json:"feature"`
	Value   float64 `json:"value"`
}

// Fingerprint computes the decade's mean of each named feature and min-max
// normalizes the resulting vector, returning axes in catalog order. When
// every mean is equal the range is zero and the whole vector maps to zero.
// An empty decade slice yields no axes.
func Fingerprint(tracks []decadal.Track, decade int, features []string) []Axis {
	slice := Filter(tracks, []int{decade})
	if len(slice) == 0 {
		return []Axis{}
	}

	means := make([]float64, len(features))
	for i, f := range features {
		var sum float64
		for _, t := range slice {
			v, ok := decadal.FeatureValue(t, f)
			if !ok {
				continue
			}
			sum += v
		}
		means[i] = sum / float64(len(slice))
	}

	min, max := means[0], means[0]
	for _, m := range means[1:] {
		if m < min {
			min = m
		}
		if m > max {
			max = m
		}
	}

	out := make([]Axis, 0, len(features))
	span := max - min
	for i, f := range features {
		var v float64
		if span > 0 {
			v = (means[i] - min) / span
		}
		out = append(out, Axis{Feature: f, Value: v})
	}
	return out
}

// Song is one entry of the top-songs list, with a display-ready artist
// string.
type Song struct {
	Name       string `json:"name"`
	Artists    string `json:"artists"`
	Popularity int    `json:"popularity"`
}

// TopSongs returns the decade's n most popular tracks, most popular first.
// Ties keep source-table order.
func TopSongs(tracks []decadal.Track, decade, n int) []Song {
	slice := Filter(tracks, []int{decade})
	sort.SliceStable(slice, func(i, j int) bool {
		return slice[i].Popularity > slice[j].Popularity
	})

	if n > len(slice) {
		n = len(slice)
	}
	if n < 0 {
		n = 0
	}

	out := make([]Song, 0, n)
	for _, t := range slice[:n] {
		out = append(out, Song{
			Name:       t.Name,
			Artists:    CleanArtists(t.Artists),
			Popularity: t.Popularity,
		})
	}
	return out
}

// CleanArtists turns the stored list form "['A', 'B']" into "A, B":
// bracket characters are trimmed from the two ends and every single quote
// is removed. Internal separators are untouched.
func CleanArtists(s string) string {
	return strings.ReplaceAll(strings.Trim(s, "[]"), "'", "")
}

// Sample returns tracks unchanged when it holds at most maxSize rows.
// Larger inputs are sampled uniformly without replacement down to exactly
// maxSize rows using the given seed; the picked rows come back in source
// order, and the same seed always picks the same rows.
func Sample(tracks []decadal.Track, maxSize int, seed int64) []decadal.Track {
	if len(tracks) <= maxSize {
		return tracks
	}

	r := rand.New(rand.NewSource(seed))
	idx := r.Perm(len(tracks))[:maxSize]
	slices.Sort(idx)

	out := make([]decadal.Track, 0, maxSize)
	for _, i := range idx {
		out = append(out, tracks[i])
	}
	return out
}
