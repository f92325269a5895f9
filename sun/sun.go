// Package sun computes the position of the Sun and the times of
// solstices and equinoxes.
//
// Based on the theory from P. Duffett-Smith, "Astronomy with Your
// Personal Computer", with perturbations from Venus, Jupiter and the
// Moon. Accuracy is a few arc-seconds over the 20th and 21st centuries.
package sun

import (
	"fmt"
	"math"

	"github.com/thurmanmarka/astrokit/kepler"
	"github.com/thurmanmarka/astrokit/mathutil"
	"github.com/thurmanmarka/astrokit/nutation"
	"github.com/thurmanmarka/astrokit/timeutil"
)

// Aberration of light, arc-degrees.
const aberration = 5.69e-3

// MeanLongitude returns the mean longitude of the Sun, in arc-degrees.
// t is Julian centuries since 1900 January 0.5.
func MeanLongitude(t float64) float64 {
	return mathutil.ReduceDeg(2.7969668e2 + 3.025e-4*t*t + mathutil.Frac360(1.000021359e2*t))
}

// MeanAnomaly returns the mean anomaly of the Sun, in arc-degrees.
// t is Julian centuries since 1900 January 0.5.
func MeanAnomaly(t float64) float64 {
	return mathutil.ReduceDeg(3.5847583e2 - (1.5e-4+3.3e-6*t)*t*t + mathutil.Frac360(9.999736042e1*t))
}

func pert(t, a, b float64) float64 {
	return rad(a + mathutil.Frac360(b*t))
}

// TrueGeocentric returns the true geocentric longitude of the Sun for
// the mean equinox of date (degrees) and the Sun-Earth distance (AU).
// t is Julian centuries since 1900 January 0.5; ms is the Sun's mean
// anomaly in degrees, normally MeanAnomaly(t), accepted as an argument
// so that a caller holding it already can avoid recomputing it.
func TrueGeocentric(t, ms float64) (mathutil.Polar, error) {
	ls := MeanLongitude(t)
	ma := rad(ms)
	s := mathutil.Polynome(t, 1.675104e-2, -4.18e-5, -1.26e-7) // eccentricity
	ea, err := kepler.EccentricAnomaly(s, ma-mathutil.Pi2*math.Floor(ma/mathutil.Pi2))
	if err != nil {
		return mathutil.Polar{}, fmt.Errorf("sun: %w", err)
	}
	nu := kepler.TrueAnomaly(s, ea)
	t2 := t * t

	a := pert(t, 153.23, 6.255209472e1)              // Venus
	b := pert(t, 216.57, 1.251041894e2)              // Venus, 2:1
	c := pert(t, 312.69, 9.156766028e1)              // Jupiter
	d := pert(t, 350.74-1.44e-3*t2, 1.236853095e3)   // Moon
	h := pert(t, 353.4, 1.831353208e2)               // Jupiter, long period
	e := rad(231.19 + 20.2*t)                        // inequality of long period

	// corrections in orbital longitude and radius-vector
	dl := 1.34e-3*math.Cos(a) +
		1.54e-3*math.Cos(b) +
		2e-3*math.Cos(c) +
		1.79e-3*math.Sin(d) +
		1.78e-3*math.Sin(e)
	dr := 5.43e-6*math.Sin(a) +
		1.575e-5*math.Sin(b) +
		1.627e-5*math.Sin(c) +
		3.076e-5*math.Cos(d) +
		9.27e-6*math.Sin(h)

	lsn := mathutil.ReduceDeg(deg(nu) + ls - ms + dl)
	rsn := 1.0000002*(1-s*math.Cos(ea)) + dr
	return mathutil.Polar{Phi: lsn, Rho: rsn}, nil
}

// Apparent returns the apparent longitude of the Sun (degrees) and its
// distance from Earth (AU) for a given DJD, accounting for nutation,
// aberration and, unless ignoreLightTravel is set, light-travel time.
func Apparent(djd float64, ignoreLightTravel bool) (mathutil.Polar, error) {
	t := djd / timeutil.DaysPerCent
	dpsi := nutation.Calc(t).DPsi
	return apparentWithNutation(t, dpsi, ignoreLightTravel)
}

func apparentWithNutation(t, dpsi float64, ignoreLightTravel bool) (mathutil.Polar, error) {
	tgeo, err := TrueGeocentric(t, MeanAnomaly(t))
	if err != nil {
		return mathutil.Polar{}, err
	}
	lambda := tgeo.Phi + dpsi
	lambda -= aberration

	if !ignoreLightTravel {
		dt := 1.365 * tgeo.Rho // light-travel time, seconds
		lambda -= dt * 15 / 3600
	}
	return mathutil.Polar{Phi: lambda, Rho: tgeo.Rho}, nil
}

func rad(x float64) float64 { return x * math.Pi / 180 }
func deg(x float64) float64 { return x * 180 / math.Pi }
