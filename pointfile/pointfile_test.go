package pointfile

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"github.com/paulmach/orb"
)

func TestSaveLoad(t *testing.T) {
	points := []orb.Point{{0.1, 0.2}, {3.5, -1.25}, {1e6, -1e6}}
	meta := Metadata{
		MinDist:     0.05,
		Seed:        42,
		DateCreated: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	if err := Save(&buf, points, meta); err != nil {
		t.Fatal(err)
	}

	got, gotMeta, err := Load(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, points) {
		t.Errorf("expected points %v, got %v", points, got)
	}
	if gotMeta.MinDist != meta.MinDist || gotMeta.Seed != meta.Seed {
		t.Errorf("expected metadata %+v, got %+v", meta, gotMeta)
	}
	if !gotMeta.DateCreated.Equal(meta.DateCreated) {
		t.Errorf("expected creation time %v, got %v", meta.DateCreated, gotMeta.DateCreated)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	if _, _, err := Load(bytes.NewReader([]byte("not a points file at all"))); err == nil {
		t.Error("expected an error for garbage input")
	}
}
