package nutation

import (
	"math"
	"testing"

	"github.com/thurmanmarka/astrokit/timeutil"
)

func TestCalc(t *testing.T) {
	cases := []struct {
		djd        float64
		dpsi, deps float64
	}{
		{-15804.5, -0.00127601021242336, 0.00256293723137559},  // 1856 Sep 23
		{36524.5, -0.00387728730373955, -0.00159919822661103},  // 2000 Jan 1
		{28805.69, -9.195562346652888e-4, -2.635113483663831e-3}, // 1978 Nov 17
		{32541.5, 0.0023055555555555555, 0.0022944444444444444},  // 1989 Feb 4
		{36525.0, -0.003877777777777778, -0.0016},                // 2000 Jan 1.5
		{34810.5, 0.0026472222222222223, -0.002013888888888889},  // 1995 Apr 23
		{23772.5, -0.0042774118548615766, 0.000425},              // 1965 Feb 1
	}
	for _, c := range cases {
		nut := Calc(c.djd / timeutil.DaysPerCent)
		if math.Abs(nut.DPsi-c.dpsi) > 1e-4 {
			t.Errorf("djd %v: DPsi = %v, want %v", c.djd, nut.DPsi, c.dpsi)
		}
		if math.Abs(nut.DEps-c.deps) > 1e-4 {
			t.Errorf("djd %v: DEps = %v, want %v", c.djd, nut.DEps, c.deps)
		}
	}
}

func TestMeanObliquity(t *testing.T) {
	cases := []struct{ djd, want float64 }{
		{29120.5, 23.441917}, // 1979-09-24.0
		{36524.5, 23.439278}, // 2000-01-01.0
	}
	for _, c := range cases {
		got, err := MeanObliquity(c.djd)
		if err != nil {
			t.Fatalf("MeanObliquity(%v): %v", c.djd, err)
		}
		if math.Abs(got-c.want) > 1e-4 {
			t.Errorf("MeanObliquity(%v) = %v, want %v", c.djd, got, c.want)
		}
	}
}

func TestTrueObliquity(t *testing.T) {
	got := Obliquity(31875.5, 9.443/3600) // 1987-04-10.0
	if math.Abs(got-23.4435694) > 1e-4 {
		t.Errorf("Obliquity = %v, want 23.4435694", got)
	}
}
