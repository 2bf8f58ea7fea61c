// Package olc encodes and decodes Open Location Codes ("plus codes"):
// short alphanumeric codes standing for rectangular areas on the
// surface of the earth.
//
// A full code like 8FVC9G8F+6X is self-sufficient. A short code like
// 9G8F+6X has had its leading digits removed and needs a reference
// location to recover them.
//
// Everything in this package is a pure function over its arguments.
// There is no shared state, so all functions are safe for concurrent
// use.
package olc

import "math"

// Alphabet is the ordered base-20 digit set. A character's index is
// its digit value. Vowels and easily-confused glyphs are excluded,
// but only the cardinality and ordering matter to the algorithms.
const Alphabet = "23456789CFGHJMPQRVWX"

const (
	// Separator is inserted after the eighth digit of a full code.
	Separator = byte('+')
	// Padding fills a full code out to the separator position when
	// it carries fewer than eight leading digits.
	Padding = byte('0')

	sepPos          = 8
	encBase         = 20
	pairCodeLen     = 10
	maxDigitCount   = 15
	minTrimmableLen = 6

	gridRows = 5
	gridCols = 4

	latMax = 90
	lngMax = 180
)

// Fixed-point precision factors. The finest code digit corresponds to
// one integer unit, so digit extraction is exact across all 15 digits.
const (
	// pairPrecision is units per degree after the five digit pairs:
	// the last pair resolves 0.000125 degrees, 1/8000.
	pairPrecision int64 = 8000 // 20^3

	gridLatFullValue int64 = 3125 // 5^5
	gridLngFullValue int64 = 1024 // 4^5

	finalLatPrecision = pairPrecision * gridLatFullValue // 25_000_000
	finalLngPrecision = pairPrecision * gridLngFullValue // 8_192_000
)

// pairResolutions are the per-pair-digit resolutions in degrees, from
// the first (coarsest) pair to the fifth.
var pairResolutions = [...]float64{20.0, 1.0, 0.05, 0.0025, 0.000125}

// DefaultCodeLength is the standard ten-digit pair code, roughly a
// 14x14 meter area.
const DefaultCodeLength = pairCodeLen

// CodeArea is the bounding rectangle a code decodes to, in degrees.
type CodeArea struct {
	LatLo float64 `json:"lat_lo"`
	LngLo float64 `json:"lng_lo"`
	LatHi float64 `json:"lat_hi"`
	LngHi float64 `json:"lng_hi"`
	// CodeLength is the number of significant digits that produced
	// this area, 2..15.
	CodeLength int `json:"code_length"`
}

// Center returns the midpoint of the area, clamped so that cells
// touching the poles or the antimeridian never report a center
// outside [-90,90] x [-180,180].
func (a CodeArea) Center() (lat, lng float64) {
	lat = math.Min(a.LatLo+(a.LatHi-a.LatLo)/2, latMax)
	lng = math.Min(a.LngLo+(a.LngHi-a.LngLo)/2, lngMax)
	return lat, lng
}

// ClipLatitude clamps lat to [-90, 90].
func ClipLatitude(lat float64) float64 {
	return math.Min(latMax, math.Max(-latMax, lat))
}

// NormalizeLongitude reduces lng into [-180, 180). Longitude is
// circular, so arbitrarily large inputs wrap around.
func NormalizeLongitude(lng float64) float64 {
	for lng < -lngMax {
		lng += 2 * lngMax
	}
	for lng >= lngMax {
		lng -= 2 * lngMax
	}
	return lng
}
