package fixedwidth

import "testing"

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		v    float64
		prec int
		want string
	}{
		{100, 3, "100.000"},
		{50, 0, "50"},
		{-1.2345, 4, "-1.2345"},
		{3, 2, "3.00"},
		{0, 2, "0.00"},
		{-0.0001, 4, "-0.0001"},
		{2.5, 2, "2.50"},
	}
	for _, tc := range tests {
		if got := formatFixed(tc.v, tc.prec); got != tc.want {
			t.Errorf("formatFixed(%v, %d) = %q, want %q", tc.v, tc.prec, got, tc.want)
		}
	}
}

func TestFormatDaysSupply(t *testing.T) {
	tests := []struct {
		v    int64
		want string
	}{
		{0, "0"},
		{10, "10"},
		{999999, "999999"},
		{1000000, "1E+06"},
		{1500000, "1.5E+06"},
		{2000000, "2E+06"},
		{123456789, "1.23457E+08"},
	}
	for _, tc := range tests {
		if got := formatDaysSupply(tc.v); got != tc.want {
			t.Errorf("formatDaysSupply(%d) = %q, want %q", tc.v, got, tc.want)
		}
	}
}
