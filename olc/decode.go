package olc

import (
	"strings"
	"unicode"

	"github.com/rotblauer/pluscodes/common"
)

// Decode converts a full code to the area it stands for. Short codes
// must be recovered with RecoverNearest first.
func Decode(code string) (CodeArea, error) {
	if !Valid(code) {
		return CodeArea{}, ErrInvalidCode
	}
	if !Full(code) {
		return CodeArea{}, ErrFullCodeExpected
	}
	clean := strings.Map(func(r rune) rune {
		if r == rune(Separator) || r == rune(Padding) {
			return -1
		}
		return unicode.ToUpper(r)
	}, code)
	if len(clean) > maxDigitCount {
		clean = clean[:maxDigitCount]
	}

	// Pair section: accumulate from the minimum of each range in
	// pair-precision units.
	normalLat := -latMax * pairPrecision
	normalLng := -lngMax * pairPrecision
	pairDigits := len(clean)
	if pairDigits > pairCodeLen {
		pairDigits = pairCodeLen
	}
	pv := pairFirstPlaceValue // 20^4
	for i := 0; i < pairDigits-1; i += 2 {
		normalLat += int64(digitValue(clean[i])) * pv
		normalLng += int64(digitValue(clean[i+1])) * pv
		if i < pairDigits-2 {
			pv /= encBase
		}
	}
	latPrecision := float64(pv) / float64(pairPrecision)
	lngPrecision := float64(pv) / float64(pairPrecision)

	// Grid section: each digit is a row/column refinement, in
	// final-precision units.
	var gridLat, gridLng int64
	if len(clean) > pairCodeLen {
		rowPV := gridLatFirstPlaceValue // 5^4
		colPV := gridLngFirstPlaceValue // 4^4
		for i := pairCodeLen; i < len(clean); i++ {
			d := int64(digitValue(clean[i]))
			gridLat += (d / gridCols) * rowPV
			gridLng += (d % gridCols) * colPV
			if i < len(clean)-1 {
				rowPV /= gridRows
				colPV /= gridCols
			}
		}
		latPrecision = float64(rowPV) / float64(finalLatPrecision)
		lngPrecision = float64(colPV) / float64(finalLngPrecision)
	}

	// Round away float drift beyond the 14th decimal.
	lat := common.DecimalToFixed(
		float64(normalLat)/float64(pairPrecision)+float64(gridLat)/float64(finalLatPrecision), 14)
	lng := common.DecimalToFixed(
		float64(normalLng)/float64(pairPrecision)+float64(gridLng)/float64(finalLngPrecision), 14)

	return CodeArea{
		LatLo:      lat,
		LngLo:      lng,
		LatHi:      lat + latPrecision,
		LngHi:      lng + lngPrecision,
		CodeLength: len(clean),
	}, nil
}

const (
	pairFirstPlaceValue    int64 = 160000 // 20^4
	gridLatFirstPlaceValue int64 = 625    // 5^4
	gridLngFirstPlaceValue int64 = 256    // 4^4
)
