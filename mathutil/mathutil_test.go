package mathutil

import (
	"math"
	"testing"
)

func TestFrac(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{-23456789.9, -0.9},
		{-10.7, -0.7},
		{0.0, 0.0},
		{10.7, 0.7},
		{23456789.9, 0.9},
	}
	for _, c := range cases {
		if got := Frac(c.in); math.Abs(got-c.want) > 1e-6 {
			t.Errorf("Frac(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFrac360(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{65.08828950998063, 31.7842235930254},
		{65.08518145432647, 30.6653235575305},
		{870.1176191104912, 42.3428797768338},
		{862.7609301843507, 273.934866366267},
		{3.496869604337422, 178.873057561472},
	}
	for _, c := range cases {
		if got := Frac360(c.in); math.Abs(got-c.want) > 1e-6 {
			t.Errorf("Frac360(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPolynomeShort(t *testing.T) {
	got := Polynome(10.0, 1.0, 2.0, 3.0)
	if math.Abs(got-321.0) > 1e-6 {
		t.Errorf("Polynome = %v, want 321.0", got)
	}
}

func TestPolynomeLong(t *testing.T) {
	got := Polynome(
		-0.127296372347707,
		0.409092804222329,
		-0.0226937890431606,
		-7.51461205719781e-06,
		0.0096926375195824,
		-0.00024909726935408,
		-0.00121043431762618,
		-0.000189319742473274,
		3.4518734094999e-05,
		0.000135117572925228,
		2.80707121362421e-05,
		1.18779351871836e-05,
	)
	if math.Abs(got-0.411961500152426) > 1e-6 {
		t.Errorf("Polynome = %v, want 0.411961500152426", got)
	}
}

func TestDms(t *testing.T) {
	cases := []struct {
		in   float64
		d, m int
		s    float64
	}{
		{-37.583333, -37, 34, 59.9999},
		{55.75, 55, 45, 0.0},
		{-0.166667, 0, -10, 0.0},
		{-0.002778, 0, 0, -10.0},
		{0.0029355, 0, 0, 10.5678},
		{0, 0, 0, 0.0},
	}
	for _, c := range cases {
		d, m, s := Dms(c.in)
		if d != c.d || m != c.m || math.Abs(s-c.s) > 1e-2 {
			t.Errorf("Dms(%v) = (%d, %d, %v), want (%d, %d, %v)", c.in, d, m, s, c.d, c.m, c.s)
		}
	}
}

func TestDdd(t *testing.T) {
	cases := []struct {
		d, m int
		s    float64
		want float64
	}{
		{-37, 35, 0.0, -37.583333},
		{55, 45, 0.0, 55.75},
		{0, -10, 0.0, -0.166667},
		{0, 0, -10.0, -0.002778},
		{0, 0, 10.5678, 0.0029355},
		{0, 0, 0.0, 0},
	}
	for _, c := range cases {
		if got := Ddd(c.d, c.m, c.s); math.Abs(got-c.want) > 1e-2 {
			t.Errorf("Ddd(%d, %d, %v) = %v, want %v", c.d, c.m, c.s, got, c.want)
		}
	}
}

func TestZdms(t *testing.T) {
	z, d, m, s := Zdms(320.25) // Aquarius, 20:15
	if z != 10 || d != 20 || m != 15 || s != 0 {
		t.Errorf("Zdms(320.25) = (%d, %d, %d, %v), want (10, 20, 15, 0)", z, d, m, s)
	}
}

func TestReduceDeg(t *testing.T) {
	arg := []float64{-700, 0, 345, 700, 360, 324070.45}
	exp := []float64{20, 0, 345, 340, 0, 70.45}
	for i, a := range arg {
		if got := ReduceDeg(a); math.Abs(got-exp[i]) > 1e-6 {
			t.Errorf("ReduceDeg(%v) = %v, want %v", a, got, exp[i])
		}
	}
}

func TestReduceRad(t *testing.T) {
	arg := []float64{12.89, -12.89, 0.0, 10.0, math.Pi, Pi2}
	exp := []float64{0.323629385640829, 5.95955592153876, 0.0, 3.71681469282041, math.Pi, 0.0}
	for i, a := range arg {
		if got := ReduceRad(a); math.Abs(got-exp[i]) > 1e-6 {
			t.Errorf("ReduceRad(%v) = %v, want %v", a, got, exp[i])
		}
	}
}

func TestShortestArcDeg(t *testing.T) {
	cases := []struct{ a, b, want float64 }{
		{10.0, 270.0, 100.0},
		{350.0, 20.0, 30.0},
		{10.0, 20.0, 10.0},
	}
	for _, c := range cases {
		if got := ShortestArcDeg(c.a, c.b); math.Abs(got-c.want) > 1e-6 {
			t.Errorf("ShortestArcDeg(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestShortestArcRad(t *testing.T) {
	got := ShortestArcRad(0.17453292519943295, 4.71238898038469)
	if math.Abs(got-1.7453292519943295) > 1e-6 {
		t.Errorf("ShortestArcRad = %v, want 1.7453292519943295", got)
	}
}

func TestDiffAngle(t *testing.T) {
	cases := []struct{ a, b, want float64 }{
		{75, 10, -65},
		{10, 75, 65},
		{280, 30, 110},
		{30, 280, -110},
	}
	for _, c := range cases {
		if got := DiffAngle(c.a, c.b); math.Abs(got-c.want) > 1e-6 {
			t.Errorf("DiffAngle(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
