// Package coords transforms between ecliptic, equatorial and horizontal
// celestial coordinates. All angles are in degrees.
//
// Azimuth follows the classical Duffett-Smith convention: measured
// westward from the South, not from the North.
package coords

import (
	"math"

	"github.com/thurmanmarka/astrokit/mathutil"
)

// Direction of the conversion between the ecliptic and the equator.
// The two transforms share one routine which differs only in the sign
// of the obliquity terms.
const (
	equToEcl = 1.0
	eclToEqu = -1.0
)

func equecl(x, y, e, k float64) (a, b float64) {
	sinE := math.Sin(e)
	cosE := math.Cos(e)
	sinX := math.Sin(x)

	// At the pole of the target frame the azimuthal coordinate is
	// undefined; pin it to zero instead of feeding Inf into atan2.
	if math.Abs(math.Cos(y)) < 1e-12 {
		return 0, math.Asin(math.Sin(y) * cosE)
	}

	a = math.Atan2(sinX*cosE+k*math.Tan(y)*sinE, math.Cos(x))
	b = math.Asin(math.Sin(y)*cosE - k*math.Cos(y)*sinE*sinX)
	return mathutil.ReduceRad(a), b
}

// equhor converts between azimuth/altitude and hour-angle/declination.
// The equations are symmetrical in the two coordinate pairs, so the
// same routine serves both directions (Duffett-Smith, p.35).
func equhor(x, y, phi float64) (p, q float64) {
	sx, cx := math.Sincos(x)
	sy, cy := math.Sincos(y)
	sphi, cphi := math.Sincos(phi)

	sq := sy*sphi + cy*cphi*cx
	if sq > 1 {
		sq = 1
	} else if sq < -1 {
		sq = -1
	}
	q = math.Asin(sq)

	den := cphi * math.Cos(q)
	if math.Abs(den) < 1e-12 {
		// Observer at a pole, or the object at the zenith: the
		// azimuthal coordinate is undefined.
		return 0, q
	}
	cp := (sy - sphi*sq) / den
	if cp > 1 {
		cp = 1
	} else if cp < -1 {
		cp = -1
	}
	p = math.Acos(cp)
	if sx > 0 {
		p = mathutil.Pi2 - p
	}
	return p, q
}

// EclToEqu converts ecliptic longitude and latitude to right ascension
// and declination, given the obliquity of the ecliptic eps. The right
// ascension is returned in degrees, normalized to [0, 360).
func EclToEqu(lambda, beta, eps float64) (alpha, delta float64) {
	a, b := equecl(rad(lambda), rad(beta), rad(eps), eclToEqu)
	return deg(a), deg(b)
}

// EquToEcl converts right ascension and declination to ecliptic
// longitude and latitude, given the obliquity of the ecliptic eps.
// The longitude is returned in degrees, normalized to [0, 360).
func EquToEcl(alpha, delta, eps float64) (lambda, beta float64) {
	a, b := equecl(rad(alpha), rad(delta), rad(eps), equToEcl)
	return deg(a), deg(b)
}

// EquToHor converts the local hour angle (h = LST - RA, degrees,
// westward) and declination to azimuth and altitude for an observer at
// geographic latitude phi. Azimuth is measured westward from the South.
func EquToHor(h, delta, phi float64) (az, alt float64) {
	p, q := equhor(rad(h), rad(delta), rad(phi))
	return deg(p), deg(q)
}

// HorToEqu converts azimuth (degrees, westward from the South) and
// altitude to the local hour angle and declination for an observer at
// geographic latitude phi.
func HorToEqu(az, alt, phi float64) (h, delta float64) {
	p, q := equhor(rad(az), rad(alt), rad(phi))
	return deg(p), deg(q)
}

func rad(x float64) float64 { return x * math.Pi / 180 }
func deg(x float64) float64 { return x * 180 / math.Pi }
