package timeutil

import (
	"errors"
	"math"
	"testing"
)

func TestDeltaT(t *testing.T) {
	cases := []struct {
		name string
		djd  float64
		want float64
	}{
		{"historical start", -102146.5, 119.51}, // 1620-05-01
		{"after 948", -346701.5, 1820.325},      // 0950-10-01
		{"modern", 44020.5, 93.81},              // 2020-07-10
		{"after 2100", 109582.5, 407.2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, _ := DeltaT(c.djd)
			if math.Abs(got-c.want) > 0.1 {
				t.Errorf("DeltaT(%v) = %v, want %v", c.djd, got, c.want)
			}
		})
	}
}

func TestDeltaTTableEdges(t *testing.T) {
	cases := []struct {
		djd  float64
		want float64
	}{
		{-102267.5, 121.0}, // 1620-01-01, first table entry
		{36523.5, 63.8},    // 1999-12-31, last table interval
	}
	for _, c := range cases {
		got, err := DeltaT(c.djd)
		if err != nil {
			t.Fatalf("DeltaT(%v): %v", c.djd, err)
		}
		if math.Abs(got-c.want) > 0.1 {
			t.Errorf("DeltaT(%v) = %v, want %v", c.djd, got, c.want)
		}
	}
}

func TestDeltaTRangeAdvisory(t *testing.T) {
	// Outside [948, 2100] the value is an extrapolation and comes with
	// an advisory error.
	if _, err := DeltaT(109582.5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("year 2200: want ErrOutOfRange, got %v", err)
	}
	if _, err := DeltaT(44020.5); err != nil {
		t.Errorf("year 2020: want nil error, got %v", err)
	}
}
