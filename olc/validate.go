package olc

import (
	"strings"
	"unicode"
)

// Valid reports whether code is a well-formed full or short code.
// Case is insignificant.
func Valid(code string) bool {
	// The separator alone is not a code.
	if len(code) < 2 {
		return false
	}
	sep := strings.IndexByte(code, Separator)
	if strings.Count(code, string(Separator)) != 1 || sep > sepPos || sep%2 == 1 {
		return false
	}
	if pad := strings.IndexByte(code, Padding); pad >= 0 {
		// Short codes cannot be padded.
		if sep < sepPos {
			return false
		}
		// A code never starts with padding.
		if pad == 0 {
			return false
		}
		// A padded code ends at the separator. This also rejects
		// padding characters turning up after the separator.
		if len(code) != sep+1 {
			return false
		}
		run := code[pad:sep]
		if len(run)%2 == 1 || strings.Count(run, string(Padding)) != len(run) {
			return false
		}
	} else if len(code)-sep-1 == 1 {
		// A lone digit after the separator is invalid.
		return false
	}
	for _, r := range code {
		if r == rune(Separator) || r == rune(Padding) {
			continue
		}
		if !strings.ContainsRune(Alphabet, unicode.ToUpper(r)) {
			return false
		}
	}
	return true
}

// Short reports whether code is a valid short code, i.e. one with
// leading digits removed.
func Short(code string) bool {
	if !Valid(code) {
		return false
	}
	return strings.IndexByte(code, Separator) < sepPos
}

// Full reports whether code is a valid full code. Beyond Valid, the
// leading digit pair must be feasible: latitude spans only 180 of the
// 400 degrees two base-20 symbols can express, and longitude 360.
func Full(code string) bool {
	if !Valid(code) || Short(code) {
		return false
	}
	if digitValue(code[0])*encBase >= 2*latMax {
		return false
	}
	if len(code) > 1 && digitValue(code[1])*encBase >= 2*lngMax {
		return false
	}
	return true
}

// digitValue returns the alphabet index of c, case-insensitively.
// Returns -1 for characters outside the alphabet.
func digitValue(c byte) int {
	return strings.IndexRune(Alphabet, unicode.ToUpper(rune(c)))
}
