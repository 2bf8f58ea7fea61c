package olc

import (
	"math"
	"strings"
)

// Encode returns the code of the given length for a location. The
// location is clamped (latitude) and wrapped (longitude) into range,
// so Encode never fails on out-of-range coordinates, only on an
// unsupported codeLen.
func Encode(lat, lng float64, codeLen int) (string, error) {
	latVal, lngVal := LocationToIntegers(lat, lng)
	return EncodeIntegers(latVal, lngVal, codeLen)
}

// LocationToIntegers converts a location to non-negative fixed-point
// integers, one unit per finest code digit. Latitude is clamped into
// [0, 2*90*finalLatPrecision); longitude is reduced modulo
// 2*180*finalLngPrecision.
func LocationToIntegers(lat, lng float64) (int64, int64) {
	latVal := int64(math.Floor(lat * float64(finalLatPrecision)))
	latVal += latMax * finalLatPrecision
	if latVal < 0 {
		latVal = 0
	} else if latVal >= 2*latMax*finalLatPrecision {
		// The north pole lands in the northernmost cell, not past it.
		latVal = 2*latMax*finalLatPrecision - 1
	}

	lngVal := int64(math.Floor(lng * float64(finalLngPrecision)))
	lngVal += lngMax * finalLngPrecision
	lngVal %= 2 * lngMax * finalLngPrecision
	if lngVal < 0 {
		lngVal += 2 * lngMax * finalLngPrecision
	}
	return latVal, lngVal
}

// EncodeIntegers builds a code of the given length from fixed-point
// integers as produced by LocationToIntegers. Lengths above 15 are
// clamped; lengths below 2, or odd lengths below the separator
// position, are rejected.
func EncodeIntegers(latVal, lngVal int64, codeLen int) (string, error) {
	if codeLen < 2 || (codeLen < pairCodeLen && codeLen%2 == 1) {
		return "", ErrInvalidCodeLength
	}
	if codeLen > maxDigitCount {
		codeLen = maxDigitCount
	}

	var digits [maxDigitCount]byte
	if codeLen > pairCodeLen {
		// Grid digits first, least significant outward. This also
		// reduces latVal/lngVal to their pair-stage remainders.
		for i := maxDigitCount - 1; i >= pairCodeLen; i-- {
			ndx := (latVal%gridRows)*gridCols + lngVal%gridCols
			digits[i] = Alphabet[ndx]
			latVal /= gridRows
			lngVal /= gridCols
		}
	} else {
		latVal /= gridLatFullValue
		lngVal /= gridLngFullValue
	}

	// Five pairs, each a latitude digit then a longitude digit.
	for i := pairCodeLen/2 - 1; i >= 0; i-- {
		digits[i*2] = Alphabet[latVal%encBase]
		digits[i*2+1] = Alphabet[lngVal%encBase]
		latVal /= encBase
		lngVal /= encBase
	}

	if codeLen >= sepPos {
		return string(digits[:sepPos]) + string(Separator) + string(digits[sepPos:codeLen]), nil
	}
	return string(digits[:codeLen]) +
		strings.Repeat(string(Padding), sepPos-codeLen) +
		string(Separator), nil
}
