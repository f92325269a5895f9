// Package mathutil holds the small numeric helpers shared by every solver:
// polynomial evaluation, circular range reduction, sexagesimal conversion
// and a couple of angle-distance utilities.
package mathutil

import "math"

// Pi2 is a full circle in radians.
const Pi2 = 2 * math.Pi

// Polynome evaluates a1 + a2*t + a3*t^2 + ... by Horner's scheme.
// t is typically Julian centuries since the epoch 1900 January 0.5.
func Polynome(t float64, terms ...float64) float64 {
	x := 0.0
	for i := len(terms) - 1; i >= 0; i-- {
		x = x*t + terms[i]
	}
	return x
}

// ToRange reduces x to the half-open interval [0, r).
func ToRange(x, r float64) float64 {
	a := math.Mod(x, r)
	if a < 0 {
		a += r
	}
	return a
}

// ReduceDeg reduces arc-degrees to [0, 360).
func ReduceDeg(x float64) float64 {
	return ToRange(x, 360)
}

// ReduceRad reduces radians to [0, 2π).
func ReduceRad(x float64) float64 {
	return ToRange(x, Pi2)
}

// Frac returns the fractional part of x, keeping the sign of the argument.
func Frac(x float64) float64 {
	_, f := math.Modf(x)
	return f
}

// Frac360 scales the fractional part of a circle count to arc-degrees.
// Used with polynomial mean elements for better accuracy: the integer
// number of full turns is discarded before scaling. Keeps the sign of x.
func Frac360(x float64) float64 {
	return Frac(x) * 360.0
}

// Ddd converts sexagesimal degrees (or hours), minutes and seconds to a
// decimal value. If any component is negative the result is negative.
//
//	Ddd(-55, 45, 0) = -55.75
//	Ddd(0, -45, 0)  = -0.75
func Ddd(d, m int, s float64) float64 {
	x := math.Abs(float64(d)) + math.Abs(float64(m))/60 + math.Abs(s)/3600
	if d < 0 || m < 0 || s < 0 {
		return -x
	}
	return x
}

// Dms converts decimal degrees (or hours) to sexagesimal parts.
// For negative input only the first non-zero component carries the sign.
func Dms(x float64) (d, m int, s float64) {
	i, f := math.Modf(math.Abs(x))
	d = int(i)
	i, f = math.Modf(f * 60)
	m = int(i)
	s = f * 60

	if x < 0 {
		switch {
		case d != 0:
			d = -d
		case m != 0:
			m = -m
		default:
			s = -s
		}
	}
	return d, m, s
}

// Zdms breaks decimal degrees into zodiac sign number (0 = Aries,
// 11 = Pisces), degrees within the sign, minutes and seconds.
func Zdms(x float64) (z, d, m int, s float64) {
	d, m, s = Dms(x)
	z = d / 30
	d = d % 30
	return z, d, m, s
}

// ShortestArcDeg returns the shortest angular distance between two points
// on a circle, in arc-degrees.
func ShortestArcDeg(a, b float64) float64 {
	x := math.Abs(a - b)
	if x > 180 {
		return 360 - x
	}
	return x
}

// ShortestArcRad returns the shortest angular distance between two points
// on a circle, in radians.
func ShortestArcRad(a, b float64) float64 {
	x := math.Abs(a - b)
	if x > math.Pi {
		return Pi2 - x
	}
	return x
}

// DiffAngle returns the signed angle b - a accounting for the wrap at 0,
// so 359° and 1° compare as 2° apart. Inputs should be in [0, 360);
// the result is in (-180, 180].
func DiffAngle(a, b float64) float64 {
	var x float64
	if b < a {
		x = b + 360 - a
	} else {
		x = b - a
	}
	if x > 180 {
		x -= 360
	}
	return x
}

// Polar holds a point in polar coordinates.
type Polar struct {
	Phi float64 // angular coordinate
	Rho float64 // radial coordinate
}
