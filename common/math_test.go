package common

import "testing"

func TestDecimalToFixed(t *testing.T) {
	cases := []struct {
		num       float64
		precision int
		want      float64
	}{
		{2.0000000000000004, 14, 2},
		{0.3333333333333333, 4, 0.3333},
		{1.5, 0, 2},
		{-1.5, 0, -2},
	}
	for _, c := range cases {
		got := DecimalToFixed(c.num, c.precision)
		if got != c.want {
			t.Errorf("DecimalToFixed(%v, %d): Expected %v, but got %v", c.num, c.precision, c.want, got)
		}
	}
}

func TestApprox(t *testing.T) {
	if !Approx(1.0, 1.0+1e-12, 1e-10) {
		t.Error("Expected approx equal within tolerance")
	}
	if Approx(1.0, 1.1, 1e-10) {
		t.Error("Expected not approx equal")
	}
}
