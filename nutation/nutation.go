// Package nutation computes the effects of nutation on the ecliptic
// longitude and on the obliquity of the ecliptic, and the obliquity
// itself, to an accuracy of about 1 arc-second.
package nutation

import (
	"math"

	"github.com/thurmanmarka/astrokit/mathutil"
	"github.com/thurmanmarka/astrokit/timeutil"
)

// Nutation holds nutation in longitude (DPsi) and in obliquity (DEps),
// both in arc-degrees.
type Nutation struct {
	DPsi float64
	DEps float64
}

// Calc returns the nutation for a given instant. t is the number of
// Julian centuries elapsed since 1900 January 0.5 (djd / 36525).
func Calc(t float64) Nutation {
	t2 := t * t

	ls := rad(2.796967e2 + 3.030e-4*t2 + mathutil.Frac360(1.000021358e2*t))
	ms := rad(3.584758e2 - 1.500e-4*t2 + mathutil.Frac360(9.999736056e1*t))
	ld := rad(2.704342e2 - 1.133e-3*t2 + mathutil.Frac360(1.336855231e3*t))
	md := rad(2.961046e2 + 9.192e-3*t2 + mathutil.Frac360(1.325552359e3*t))
	nm := rad(2.591833e2 + 2.078e-3*t2 - mathutil.Frac360(5.372616667*t))
	tls := ls + ls
	tld := ld + ld
	tnm := nm + nm

	dpsi := (-17.2327-1.737e-2*t)*math.Sin(nm) +
		(-1.2729-1.3e-4*t)*math.Sin(tls) +
		2.088e-1*math.Sin(tnm) -
		2.037e-1*math.Sin(tld) +
		(1.261e-1-3.1e-4*t)*math.Sin(ms) +
		6.75e-2*math.Sin(md) -
		(4.97e-2-1.2e-4*t)*math.Sin(tls+ms) -
		3.42e-2*math.Sin(tld-nm) -
		2.61e-2*math.Sin(tld+md) +
		2.14e-2*math.Sin(tls-ms) -
		1.49e-2*math.Sin(tls-tld+md) +
		1.24e-2*math.Sin(tls-nm) +
		1.14e-2*math.Sin(tld-md)

	deps := (9.21+9.1e-4*t)*math.Cos(nm) +
		(5.522e-1-2.9e-4*t)*math.Cos(tls) -
		9.04e-2*math.Cos(tnm) +
		8.84e-2*math.Cos(tld) +
		2.16e-2*math.Cos(tls+ms) +
		1.83e-2*math.Cos(tld-nm) +
		1.13e-2*math.Cos(tld+md) -
		9.3e-3*math.Cos(tls-ms) -
		6.6e-3*math.Cos(tls-nm)

	return Nutation{DPsi: dpsi / 3600, DEps: deps / 3600}
}

// MeanObliquity returns the mean obliquity of the ecliptic, in degrees,
// for a given DJD. The polynomial fit degrades far from the 20th
// century; outside roughly [-8000, +12000] the returned error wraps
// timeutil.ErrOutOfRange while the value is still usable.
func MeanObliquity(djd float64) (float64, error) {
	t := djd / timeutil.DaysPerCent
	c := (((-0.00181*t)+0.0059)*t + 46.845) * t
	eps := 23.45229444 - c/3600
	if t < -100 || t > 100 {
		return eps, timeutil.ErrOutOfRange
	}
	return eps, nil
}

// Obliquity returns the true obliquity of the ecliptic, in degrees:
// the mean obliquity corrected by the nutation in obliquity deps
// (arc-degrees).
func Obliquity(djd, deps float64) float64 {
	eps, _ := MeanObliquity(djd)
	return eps + deps
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}
