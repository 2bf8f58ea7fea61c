package geo

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"

	"github.com/rotblauer/pluscodes/olc"
)

func TestBoundContains(t *testing.T) {
	area, err := olc.Decode("8FVC9G8F+6X")
	if err != nil {
		t.Fatal(err)
	}
	if !Contains(area, orb.Point{8.524997, 47.365590}) {
		t.Error("Expected the encoded point inside its own cell")
	}
	if Contains(area, orb.Point{8.6, 47.4}) {
		t.Error("Expected a distant point outside the cell")
	}
}

func TestPolygonClosed(t *testing.T) {
	area, err := olc.Decode("7FG49Q00+")
	if err != nil {
		t.Fatal(err)
	}
	poly := Polygon(area)
	if len(poly) != 1 {
		t.Fatalf("Expected 1 ring, but got %d", len(poly))
	}
	ring := poly[0]
	if !ring.Closed() {
		t.Error("Expected a closed ring")
	}
}

func TestPointCode(t *testing.T) {
	code, err := PointCode(orb.Point{8.524997, 47.365590}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if code != "8FVC9G8F+6X" {
		t.Errorf("Expected %q, but got %q", "8FVC9G8F+6X", code)
	}
}

func TestFeature(t *testing.T) {
	f, err := Feature("8fvc9g8f+6x")
	if err != nil {
		t.Fatal(err)
	}
	if f.Properties["code"] != "8FVC9G8F+6X" {
		t.Errorf("Expected canonical code property, but got %v", f.Properties["code"])
	}
	if f.Properties["code_length"] != 10 {
		t.Errorf("Expected code_length 10, but got %v", f.Properties["code_length"])
	}
	if _, err := Feature("9G8F+6X"); !errors.Is(err, olc.ErrFullCodeExpected) {
		t.Errorf("Expected ErrFullCodeExpected, but got %v", err)
	}
}

func TestCovering(t *testing.T) {
	area, err := olc.Decode("8FVC9G8F+")
	if err != nil {
		t.Fatal(err)
	}
	cells := Covering(area, 8)
	if len(cells) == 0 || len(cells) > 8 {
		t.Fatalf("Expected 1..8 cells, but got %d", len(cells))
	}
	center := CenterCellID(area)
	contained := false
	for _, c := range cells {
		if c.Contains(center) {
			contained = true
			break
		}
	}
	if !contained {
		t.Error("Expected the covering to contain the area center")
	}
}
