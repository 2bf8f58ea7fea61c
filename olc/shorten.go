package olc

import (
	"math"
	"strings"
)

// Shorten removes as many leading digits from a full code as the
// reference location safely allows. The caller must be able to
// recover the result with RecoverNearest from anywhere the 0.3x
// resolution margin covers.
func Shorten(code string, lat, lng float64) (string, error) {
	if !Full(code) {
		return "", ErrFullCodeExpected
	}
	if strings.IndexByte(code, Padding) >= 0 {
		return "", ErrCannotShortenPaddedCodes
	}
	area, err := Decode(code)
	if err != nil {
		return "", err
	}
	if area.CodeLength < minTrimmableLen {
		return "", ErrCodeLengthTooSmall
	}

	lat = ClipLatitude(lat)
	lng = NormalizeLongitude(lng)
	centerLat, centerLng := area.Center()
	codeRange := math.Max(math.Abs(centerLat-lat), math.Abs(centerLng-lng))

	code = strings.ToUpper(code)
	// Search finest to coarsest, so the largest trimmable prefix
	// (shortest result) wins. The 0.3 margin is authoritative from
	// the upstream Open Location Code specification.
	for i := len(pairResolutions) - 2; i >= 0; i-- {
		if codeRange < pairResolutions[i]*0.3 {
			return code[(i+1)*2:], nil
		}
	}
	return code, nil
}

// RecoverNearest expands a short code into the full code whose area
// lies nearest the reference location. Full codes pass through,
// uppercased.
func RecoverNearest(code string, refLat, refLng float64) (string, error) {
	if Full(code) {
		return strings.ToUpper(code), nil
	}
	if !Short(code) {
		return "", ErrInvalidCode
	}

	refLat = ClipLatitude(refLat)
	refLng = NormalizeLongitude(refLng)
	code = strings.ToUpper(code)

	prefixLen := strings.IndexByte(code, Separator)
	paddingLen := sepPos - prefixLen
	resolution := math.Pow(encBase, float64(2-paddingLen/2))
	halfRes := resolution / 2

	refCode, err := Encode(refLat, refLng, DefaultCodeLength)
	if err != nil {
		return "", err
	}
	area, err := Decode(refCode[:paddingLen] + code)
	if err != nil {
		return "", err
	}

	// Nudge the candidate toward the reference point, one resolution
	// step per axis at most. Latitude only moves while it stays on
	// the globe; longitude wraps, so it moves unconditionally.
	centerLat, centerLng := area.Center()
	if refLat+halfRes < centerLat && centerLat-resolution >= -latMax {
		centerLat -= resolution
	} else if refLat-halfRes > centerLat && centerLat+resolution <= latMax {
		centerLat += resolution
	}
	if refLng+halfRes < centerLng {
		centerLng -= resolution
	} else if refLng-halfRes > centerLng {
		centerLng += resolution
	}

	return Encode(centerLat, centerLng, area.CodeLength)
}
