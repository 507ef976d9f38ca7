package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const header = "name,artists,year,popularity,danceability,energy,valence,acousticness,speechiness,loudness,tempo"

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.csv")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDerivesDecades(t *testing.T) {
	path := writeCSV(t,
		header,
		`Old One,"['A']",1959,10,0.1,0.2,0.3,0.4,0.05,-10.0,100.0`,
		`Sixties,"['B']",1965,20,0.5,0.6,0.7,0.2,0.05,-7.5,120.0`,
		`Millennium,"['C']",2000,30,0.8,0.9,0.4,0.1,0.05,-5.0,128.0`,
	)

	ds, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if ds.Len() != 2 {
		t.Fatalf("got %d tracks, want 2 (pre-1960 rows excluded)", ds.Len())
	}

	tracks := ds.Tracks()
	if tracks[0].Name != "Sixties" || tracks[0].Decade != 1960 {
		t.Errorf("got %q decade %d, want Sixties in 1960", tracks[0].Name, tracks[0].Decade)
	}
	if tracks[1].Name != "Millennium" || tracks[1].Decade != 2000 {
		t.Errorf("got %q decade %d, want Millennium in 2000", tracks[1].Name, tracks[1].Decade)
	}

	if got, want := ds.Decades(), []int{1960, 2000}; !reflect.DeepEqual(got, want) {
		t.Errorf("decades = %v, want %v", got, want)
	}
}

func TestLoadParsesFields(t *testing.T) {
	path := writeCSV(t,
		header,
		`Hey Jude,"['The Beatles']",1968,80,0.386,0.607,0.532,0.012,0.032,-7.7,147.207`,
	)

	ds, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Len() != 1 {
		t.Fatalf("got %d tracks, want 1", ds.Len())
	}

	tr := ds.Tracks()[0]
	if tr.Artists != "['The Beatles']" {
		t.Errorf("artists = %q, want raw list form preserved", tr.Artists)
	}
	if tr.Year != 1968 || tr.Popularity != 80 {
		t.Errorf("year/popularity = %d/%d, want 1968/80", tr.Year, tr.Popularity)
	}
	if tr.Danceability != 0.386 || tr.Loudness != -7.7 || tr.Tempo != 147.207 {
		t.Errorf("unexpected feature values: %+v", tr)
	}
}

func TestLoadIdempotent(t *testing.T) {
	path := writeCSV(t,
		header,
		`Sixties,"['B']",1965,20,0.5,0.6,0.7,0.2,0.05,-7.5,120.0`,
		`Millennium,"['C']",2000,30,0.8,0.9,0.4,0.1,0.05,-5.0,128.0`,
	)

	first, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first.Tracks(), second.Tracks()) {
		t.Error("two loads of the same source differ")
	}
	if !reflect.DeepEqual(first.Decades(), second.Decades()) {
		t.Error("two loads of the same source derive different decades")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))

	var dsErr *DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("got %v, want *DataSourceError", err)
	}
}

func TestLoadMissingColumn(t *testing.T) {
	path := writeCSV(t,
		"name,artists,year,popularity,danceability,energy,acousticness,speechiness,loudness,tempo",
		`Sixties,"['B']",1965,20,0.5,0.6,0.2,0.05,-7.5,120.0`,
	)

	_, err := Load(path)

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("got %v, want *SchemaError", err)
	}
	if schemaErr.Column != "valence" {
		t.Errorf("column = %q, want valence", schemaErr.Column)
	}
}

func TestLoadMalformedCell(t *testing.T) {
	path := writeCSV(t,
		header,
		`Sixties,"['B']",not-a-year,20,0.5,0.6,0.7,0.2,0.05,-7.5,120.0`,
	)

	_, err := Load(path)

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("got %v, want *SchemaError", err)
	}
	if schemaErr.Column != "year" {
		t.Errorf("column = %q, want year", schemaErr.Column)
	}
}
