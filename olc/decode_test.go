package olc

import (
	"errors"
	"testing"

	"github.com/rotblauer/pluscodes/common"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		code                       string
		codeLen                    int
		latLo, lngLo, latHi, lngHi float64
	}{
		{"8FVC9G8F+6X", 10, 47.3655, 8.524875, 47.365625, 8.525},
		{"8FVC9G8F+6XQ", 11, 47.365575, 8.52496875, 47.3656, 8.525},
		{"8fvc9g8f+6xq", 11, 47.365575, 8.52496875, 47.3656, 8.525},
		{"7FG49Q00+", 6, 20.35, 2.75, 20.4, 2.8},
		{"8F000000+", 2, 30, 0, 50, 20},
		{"22220000+", 4, -90, -180, -89, -179},
	}
	const tol = 1e-10
	for _, c := range cases {
		area, err := Decode(c.code)
		if err != nil {
			t.Errorf("Decode(%q): unexpected error: %v", c.code, err)
			continue
		}
		if area.CodeLength != c.codeLen {
			t.Errorf("Decode(%q): Expected code length %d, but got %d", c.code, c.codeLen, area.CodeLength)
		}
		for _, v := range []struct {
			name      string
			got, want float64
		}{
			{"LatLo", area.LatLo, c.latLo},
			{"LngLo", area.LngLo, c.lngLo},
			{"LatHi", area.LatHi, c.latHi},
			{"LngHi", area.LngHi, c.lngHi},
		} {
			if !common.Approx(v.got, v.want, tol) {
				t.Errorf("Decode(%q).%s: Expected %v, but got %v", c.code, v.name, v.want, v.got)
			}
		}
	}
}

func TestDecodeCenter(t *testing.T) {
	area, err := Decode("8FVC9G8F+6X")
	if err != nil {
		t.Fatal(err)
	}
	lat, lng := area.Center()
	const tol = 1e-10
	if !common.Approx(lat, 47.3655625, tol) {
		t.Errorf("center latitude: Expected 47.3655625, but got %v", lat)
	}
	if !common.Approx(lng, 8.5249375, tol) {
		t.Errorf("center longitude: Expected 8.5249375, but got %v", lng)
	}
}

// Cells touching the north pole or antimeridian clamp their center.
func TestDecodeCenterClamped(t *testing.T) {
	code, err := Encode(90, 180, 10)
	if err != nil {
		t.Fatal(err)
	}
	area, err := Decode(code)
	if err != nil {
		t.Fatal(err)
	}
	lat, lng := area.Center()
	if lat > latMax || lng > lngMax {
		t.Errorf("Expected clamped center, but got (%v, %v)", lat, lng)
	}
	if !common.Approx(area.LatHi, latMax, 1e-10) {
		t.Errorf("Expected LatHi %v, but got %v", float64(latMax), area.LatHi)
	}
}

func TestDecodeMaxDigits(t *testing.T) {
	code, err := Encode(47.365590123, 8.524997456, 15)
	if err != nil {
		t.Fatal(err)
	}
	area, err := Decode(code)
	if err != nil {
		t.Fatal(err)
	}
	if area.CodeLength != maxDigitCount {
		t.Errorf("Expected code length %d, but got %d", maxDigitCount, area.CodeLength)
	}
	// Finest grid cell: 1/finalLatPrecision by 1/finalLngPrecision.
	if !common.Approx(area.LatHi-area.LatLo, 1/float64(finalLatPrecision), 1e-12) {
		t.Errorf("Expected latitude resolution %v, but got %v",
			1/float64(finalLatPrecision), area.LatHi-area.LatLo)
	}
	if !common.Approx(area.LngHi-area.LngLo, 1/float64(finalLngPrecision), 1e-12) {
		t.Errorf("Expected longitude resolution %v, but got %v",
			1/float64(finalLngPrecision), area.LngHi-area.LngLo)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		code string
		want error
	}{
		{"", ErrInvalidCode},
		{"8FVC9G8F6X", ErrInvalidCode},
		{"8FVC9G8F+6", ErrInvalidCode},
		{"9G8F+6X", ErrFullCodeExpected},
		{"+6X", ErrFullCodeExpected},
		{"X2X2X2X2+", ErrFullCodeExpected},
	}
	for _, c := range cases {
		if _, err := Decode(c.code); !errors.Is(err, c.want) {
			t.Errorf("Decode(%q): Expected %v, but got %v", c.code, c.want, err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Decode("8FVC9G8F+6XQ")
	}
}
