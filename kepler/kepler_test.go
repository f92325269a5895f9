package kepler

import (
	"errors"
	"math"
	"testing"
)

func TestEccentricAnomaly(t *testing.T) {
	cases := []struct{ m, s, want float64 }{
		{3.5208387374141448, 0.016718, 3.5147440476661806},
		{0.763009079752865, 0.965, 1.7176273861066755},
	}
	for _, c := range cases {
		got, err := EccentricAnomaly(c.s, c.m)
		if err != nil {
			t.Fatalf("EccentricAnomaly(%v, %v): %v", c.s, c.m, err)
		}
		if math.Abs(got-c.want) > 1e-4 {
			t.Errorf("EccentricAnomaly(%v, %v) = %v, want %v", c.s, c.m, got, c.want)
		}
	}
}

func TestTrueAnomaly(t *testing.T) {
	cases := []struct{ s, ea, want float64 }{
		{0.016718, 3.5147440476661806, -2.774497552017826},
		{0.965, 1.7176273861066755, 2.9122563898777387},
	}
	for _, c := range cases {
		if got := TrueAnomaly(c.s, c.ea); math.Abs(got-c.want) > 1e-4 {
			t.Errorf("TrueAnomaly(%v, %v) = %v, want %v", c.s, c.ea, got, c.want)
		}
	}
}

func TestSolveConvergesAcrossEccentricities(t *testing.T) {
	// Kepler's equation must hold at the returned solution for any
	// reasonable elliptical orbit.
	for _, s := range []float64{0, 0.1, 0.3, 0.5, 0.7, 0.9} {
		for m := 0.0; m < 2*math.Pi; m += math.Pi / 6 {
			ea, err := EccentricAnomaly(s, m)
			if err != nil {
				t.Fatalf("s=%v m=%v: %v", s, m, err)
			}
			if resid := ea - s*math.Sin(ea) - m; math.Abs(resid) > 1e-6 {
				t.Errorf("s=%v m=%v: residual %v", s, m, resid)
			}
		}
	}
}

func TestSolveIterationCap(t *testing.T) {
	_, err := Solve(0.965, 0.763009079752865, 1e-7, 1)
	if !errors.Is(err, ErrNotConverging) {
		t.Errorf("want ErrNotConverging, got %v", err)
	}
}
