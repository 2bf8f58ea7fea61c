// Package geo bridges plus code areas to orb geometries and GeoJSON.
package geo

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/rotblauer/pluscodes/olc"
)

// Bound returns the code area as an orb.Bound. Points are lng/lat
// ordered, per orb convention.
func Bound(a olc.CodeArea) orb.Bound {
	return orb.Bound{
		Min: orb.Point{a.LngLo, a.LatLo},
		Max: orb.Point{a.LngHi, a.LatHi},
	}
}

// Polygon returns the code area as a closed rectangle.
func Polygon(a olc.CodeArea) orb.Polygon {
	return Bound(a).ToPolygon()
}

// Contains reports whether the point lies within the code area.
func Contains(a olc.CodeArea, pt orb.Point) bool {
	return Bound(a).Contains(pt)
}

// PointCode encodes an orb.Point at the given length.
func PointCode(pt orb.Point, codeLen int) (string, error) {
	return olc.Encode(pt.Lat(), pt.Lon(), codeLen)
}

// Feature decodes a full code into a GeoJSON polygon feature, with
// the canonical code, its length, and its center as properties.
func Feature(code string) (*geojson.Feature, error) {
	area, err := olc.Decode(code)
	if err != nil {
		return nil, err
	}
	lat, lng := area.Center()
	f := geojson.NewFeature(Polygon(area))
	f.Properties["code"] = strings.ToUpper(code)
	f.Properties["code_length"] = area.CodeLength
	f.Properties["center"] = []float64{lng, lat}
	return f, nil
}
