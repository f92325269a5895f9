package coords

import (
	"math"
	"testing"
)

const delta = 1e-4

func TestEquToEcl(t *testing.T) {
	cases := []struct{ alpha, dec, eps, lambda, beta float64 }{
		{216.7375, 32.351389, 23.445745, 200.318517, 43.787175},
		{0.022917, -87.203333, 23.438719, 277.001739, -66.405486},
	}
	for _, c := range cases {
		lambda, beta := EquToEcl(c.alpha, c.dec, c.eps)
		if math.Abs(lambda-c.lambda) > delta {
			t.Errorf("EquToEcl(%v, %v) lambda = %v, want %v", c.alpha, c.dec, lambda, c.lambda)
		}
		if math.Abs(beta-c.beta) > delta {
			t.Errorf("EquToEcl(%v, %v) beta = %v, want %v", c.alpha, c.dec, beta, c.beta)
		}
	}
}

func TestEclToEqu(t *testing.T) {
	cases := []struct{ lambda, beta, eps, alpha, dec float64 }{
		{200.318517, 43.787175, 23.445745, 216.7375, 32.351389},
		{277.001739, -66.405486, 23.438719, 0.022917, -87.203333},
	}
	for _, c := range cases {
		alpha, dec := EclToEqu(c.lambda, c.beta, c.eps)
		if math.Abs(alpha-c.alpha) > delta {
			t.Errorf("EclToEqu(%v, %v) alpha = %v, want %v", c.lambda, c.beta, alpha, c.alpha)
		}
		if math.Abs(dec-c.dec) > delta {
			t.Errorf("EclToEqu(%v, %v) delta = %v, want %v", c.lambda, c.beta, dec, c.dec)
		}
	}
}

func TestEquToHor(t *testing.T) {
	cases := []struct{ haHours, dec, phi, az, alt float64 }{
		{8.622222, 14.398611, 51.25, 310.259333, -10.972444},
		{23.316667, -43.0, -20.520278, 161.388611, 65.935028},
	}
	for _, c := range cases {
		az, alt := EquToHor(c.haHours*15, c.dec, c.phi)
		if math.Abs(az-c.az) > delta {
			t.Errorf("EquToHor(%v, %v, %v) az = %v, want %v", c.haHours, c.dec, c.phi, az, c.az)
		}
		if math.Abs(alt-c.alt) > delta {
			t.Errorf("EquToHor(%v, %v, %v) alt = %v, want %v", c.haHours, c.dec, c.phi, alt, c.alt)
		}
	}
}

func TestHorToEqu(t *testing.T) {
	cases := []struct{ az, alt, phi, haHours, dec float64 }{
		{310.259333, -10.972444, 51.25, 8.622222, 14.398611},
		{161.388611, 65.935028, -20.520278, 23.316667, -43.0},
	}
	for _, c := range cases {
		ha, dec := HorToEqu(c.az, c.alt, c.phi)
		if math.Abs(ha/15-c.haHours) > delta {
			t.Errorf("HorToEqu(%v, %v, %v) ha = %v, want %v", c.az, c.alt, c.phi, ha/15, c.haHours)
		}
		if math.Abs(dec-c.dec) > delta {
			t.Errorf("HorToEqu(%v, %v, %v) dec = %v, want %v", c.az, c.alt, c.phi, dec, c.dec)
		}
	}
}

func TestEclPole(t *testing.T) {
	// At the ecliptic pole the longitude is undefined; the transform
	// must stay finite and pin the azimuthal coordinate to zero.
	alpha, dec := EclToEqu(123.456, 90, 23.44)
	if alpha != 0 {
		t.Errorf("alpha at pole = %v, want 0", alpha)
	}
	if math.Abs(dec-(90-23.44)) > delta {
		t.Errorf("delta at pole = %v, want %v", dec, 90-23.44)
	}
}

func TestZenith(t *testing.T) {
	// Object at the zenith: altitude 90, azimuth undefined but finite.
	az, alt := EquToHor(0, 51.25, 51.25)
	if math.IsNaN(az) || math.IsNaN(alt) {
		t.Fatalf("NaN at zenith: az=%v alt=%v", az, alt)
	}
	if math.Abs(alt-90) > delta {
		t.Errorf("alt at zenith = %v, want 90", alt)
	}
}

func TestRoundTrip(t *testing.T) {
	const eps = 23.439
	for _, c := range []struct{ lambda, beta float64 }{
		{0.5, 0}, {123.4, 5.6}, {359.9, -5.6}, {270, 66},
	} {
		alpha, dec := EclToEqu(c.lambda, c.beta, eps)
		lambda, beta := EquToEcl(alpha, dec, eps)
		if math.Abs(lambda-c.lambda) > delta || math.Abs(beta-c.beta) > delta {
			t.Errorf("round trip (%v, %v) -> (%v, %v)", c.lambda, c.beta, lambda, beta)
		}
	}
}
