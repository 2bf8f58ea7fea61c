package geo

import (
	"github.com/golang/geo/s2"

	"github.com/rotblauer/pluscodes/olc"
)

// Rect returns the code area as an s2.Rect.
func Rect(a olc.CodeArea) s2.Rect {
	r := s2.RectFromLatLng(s2.LatLngFromDegrees(a.LatLo, a.LngLo))
	return r.AddPoint(s2.LatLngFromDegrees(a.LatHi, a.LngHi))
}

// Covering returns at most maxCells s2 cells covering the code area,
// for handing plus codes to s2-indexed stores.
func Covering(a olc.CodeArea, maxCells int) s2.CellUnion {
	rc := &s2.RegionCoverer{MaxLevel: 30, MaxCells: maxCells}
	return rc.Covering(Rect(a))
}

// CenterCellID returns the leaf cell at the center of the code area.
func CenterCellID(a olc.CodeArea) s2.CellID {
	lat, lng := a.Center()
	return s2.CellIDFromLatLng(s2.LatLngFromDegrees(lat, lng))
}
