// Package moon computes the position of the Moon, the lunar node and
// the times of New Moons, Full Moons and quarters.
//
// The position series is the truncated Brown theory as given by
// P. Duffett-Smith, "Astronomy with Your Personal Computer"; accuracy
// is about 10 arc-seconds in longitude and 3 in latitude.
package moon

import (
	"math"

	"github.com/thurmanmarka/astrokit/mathutil"
	"github.com/thurmanmarka/astrokit/nutation"
	"github.com/thurmanmarka/astrokit/timeutil"
)

// Position holds the Moon's geocentric ecliptic coordinates along with
// the quantities needed by rise/set and phase computations.
type Position struct {
	Lng      float64 // ecliptic longitude, degrees
	Lat      float64 // ecliptic latitude, degrees
	Delta    float64 // distance from Earth, AU
	Parallax float64 // equatorial horizontal parallax, degrees
	Motion   float64 // daily angular speed, degrees
}

// Periods of the fundamental arguments, days.
var periods = [6]float64{
	27.32158213,  // mean longitude
	365.2596407,  // Sun's mean anomaly
	27.55455094,  // mean anomaly
	29.53058868,  // mean elongation
	27.21222039,  // argument of latitude
	6798.363307,  // longitude of the ascending node
}

// TruePosition returns the true geocentric position of the Moon for a
// given DJD.
func TruePosition(djd float64) Position {
	t := djd / timeutil.DaysPerCent
	t2 := t * t

	var m [6]float64
	for i, p := range periods {
		m[i] = 360 * mathutil.Frac(djd/p)
	}

	ld := 270.434164 + m[0] - (1.133e-3-1.9e-6*t)*t2 // Moon's mean longitude
	ms := 358.475833 + m[1] - (1.5e-4+3.3e-6*t)*t2   // mean anomaly of the Sun
	md := 296.104608 + m[2] + (9.192e-3+1.44e-5*t)*t2 // mean anomaly
	de := 350.737486 + m[3] - (1.436e-3-1.9e-6*t)*t2 // mean elongation
	f := 11.250889 + m[4] - (3.211e-3+3e-7*t)*t2     // argument of latitude
	n := 259.183275 - m[5] + (2.078e-3+2.2e-5*t)*t2  // longitude of the ascending node

	a := rad(51.2 + 20.2*t)
	sa := math.Sin(a)
	sn := math.Sin(rad(n))
	b := 346.56 + (132.87-9.1731e-3*t)*t
	sb := 3.964e-3 * math.Sin(rad(b))
	c := rad(n + 275.05 - 2.3*t)
	sc := math.Sin(c)
	ld += 2.33e-4*sa + sb + 1.964e-3*sn
	ms -= 1.778e-3 * sa
	md += 8.17e-4*sa + sb + 2.541e-3*sn
	f += sb - 2.4691e-2*sn - 4.328e-3*sc
	de += 2.011e-3*sa + sb + 1.964e-3*sn
	e := 1 - (2.495e-3+7.52e-6*t)*t
	e2 := e * e

	msr := rad(ms)
	nr := rad(n)
	der := rad(de)
	fr := rad(f)
	mdr := rad(md)

	de2 := der + der
	de3 := de2 + der
	de4 := de2 + de2
	md2 := mdr + mdr
	md3 := md2 + mdr
	ms2 := msr + msr
	f2 := fr + fr
	f3 := f2 + fr

	// ecliptic longitude
	l := 6.28875*math.Sin(mdr) +
		1.274018*math.Sin(de2-mdr) +
		6.58309e-1*math.Sin(de2) +
		2.13616e-1*math.Sin(md2) -
		e*1.85596e-1*math.Sin(msr) -
		1.14336e-1*math.Sin(f2) +
		5.8793e-2*math.Sin(2*(der-mdr)) +
		5.7212e-2*e*math.Sin(de2-msr-mdr) +
		5.332e-2*math.Sin(de2+mdr) +
		4.5874e-2*e*math.Sin(de2-msr) +
		4.1024e-2*e*math.Sin(mdr-msr) -
		3.4718e-2*math.Sin(der) -
		e*3.0465e-2*math.Sin(msr+mdr) +
		1.5326e-2*math.Sin(2*(der-fr)) -
		1.2528e-2*math.Sin(f2+mdr) -
		1.098e-2*math.Sin(f2-mdr) +
		1.0674e-2*math.Sin(de4-mdr) +
		1.0034e-2*math.Sin(md3) +
		8.548e-3*math.Sin(de4-md2) -
		e*7.91e-3*math.Sin(msr-mdr+de2) -
		e*6.783e-3*math.Sin(de2+msr) +
		5.162e-3*math.Sin(mdr-der) +
		e*5e-3*math.Sin(msr+der) +
		3.862e-3*math.Sin(de4) +
		e*4.049e-3*math.Sin(mdr-msr+de2) +
		3.996e-3*math.Sin(2*(mdr+der)) +
		3.665e-3*math.Sin(de2-md3) +
		e*2.695e-3*math.Sin(md2-msr) +
		2.602e-3*math.Sin(mdr-2*(fr+der)) +
		e*2.396e-3*math.Sin(2*(der-mdr)-msr) -
		2.349e-3*math.Sin(mdr+der) +
		e2*2.249e-3*math.Sin(2*(der-msr)) -
		e*2.125e-3*math.Sin(md2+msr) -
		e2*2.079e-3*math.Sin(ms2) +
		e2*2.059e-3*math.Sin(2*(der-msr)-mdr) -
		1.773e-3*math.Sin(mdr+2*(der-fr)) -
		1.595e-3*math.Sin(2*(fr+der)) +
		e*1.22e-3*math.Sin(de4-msr-mdr) -
		1.11e-3*math.Sin(2*(mdr+fr)) +
		8.92e-4*math.Sin(mdr-de3) -
		e*8.11e-4*math.Sin(msr+mdr+de2) +
		e*7.61e-4*math.Sin(de4-msr-md2) +
		e2*7.04e-4*math.Sin(mdr-2*(msr+der)) +
		e*6.93e-4*math.Sin(msr-2*(mdr-der)) +
		e*5.98e-4*math.Sin(2*(der-fr)-msr) +
		5.5e-4*math.Sin(mdr+de4) +
		5.38e-4*math.Sin(4*mdr) +
		e*5.21e-4*math.Sin(de4-msr) +
		4.86e-4*math.Sin(md2-der) +
		e2*7.17e-4*math.Sin(mdr-ms2)

	lng := mathutil.ReduceDeg(ld + l)

	// ecliptic latitude
	g := 5.128189*math.Sin(fr) +
		0.280606*math.Sin(mdr+fr) +
		0.277693*math.Sin(mdr-fr) +
		0.173238*math.Sin(de2-fr) +
		0.055413*math.Sin(de2+fr-mdr) +
		0.046272*math.Sin(de2-fr-mdr) +
		0.032573*math.Sin(de2+fr) +
		0.017198*math.Sin(md2+fr) +
		0.009267*math.Sin(de2+mdr-fr) +
		0.008823*math.Sin(md2-fr) +
		e*0.008247*math.Sin(de2-msr-fr) +
		0.004323*math.Sin(2*(der-mdr)-fr) +
		0.0042*math.Sin(de2+fr+mdr) +
		e*0.003372*math.Sin(fr-msr-de2) +
		e*0.002472*math.Sin(de2+fr-msr-mdr) +
		e*0.002222*math.Sin(de2+fr-msr) +
		e*0.002072*math.Sin(de2-fr-msr-mdr) +
		e*0.001877*math.Sin(fr-msr+mdr) +
		0.001828*math.Sin(de4-fr-mdr) -
		e*0.001803*math.Sin(fr+msr) -
		0.00175*math.Sin(f3) +
		e*0.00157*math.Sin(mdr-msr-fr) -
		0.001487*math.Sin(fr+der) -
		e*0.001481*math.Sin(fr+msr+mdr) +
		e*0.001417*math.Sin(fr-msr-mdr) +
		e*0.00135*math.Sin(fr-msr) +
		0.00133*math.Sin(fr-der) +
		0.001106*math.Sin(fr+md3) +
		0.00102*math.Sin(de4-fr) +
		0.000833*math.Sin(fr+de4-mdr) +
		0.000781*math.Sin(mdr-f3) +
		0.00067*math.Sin(fr+de4-md2) +
		0.000606*math.Sin(de2-f3) +
		0.000597*math.Sin(2*(der+mdr)-fr) +
		e*0.000492*math.Sin(de2+mdr-msr-fr) +
		0.00045*math.Sin(2*(mdr-der)-fr) +
		0.000439*math.Sin(md3-fr) +
		0.000423*math.Sin(fr+2*(der+mdr)) +
		0.000422*math.Sin(de2-fr-md3) -
		e*0.000367*math.Sin(msr+fr+de2-mdr) -
		e*0.000353*math.Sin(msr+fr+de2) +
		0.000331*math.Sin(fr+de4) +
		e*0.000317*math.Sin(de2+fr-msr+mdr) +
		e2*0.000306*math.Sin(2*(der-msr)-fr) -
		0.000283*math.Sin(mdr+f3)

	w1 := 0.0004664 * math.Cos(nr)
	w2 := 0.0000754 * math.Cos(c)
	lat := g * (1 - w1 - w2)

	// equatorial horizontal parallax
	hp := 0.950724 +
		0.051818*math.Cos(mdr) +
		0.009531*math.Cos(de2-mdr) +
		0.007843*math.Cos(de2) +
		0.002824*math.Cos(md2) +
		0.000857*math.Cos(de2+mdr) +
		e*0.000533*math.Cos(de2-msr) +
		e*0.000401*math.Cos(de2-mdr-msr) +
		e*0.00032*math.Cos(mdr-msr) -
		0.000271*math.Cos(der) -
		e*0.000264*math.Cos(msr+mdr) -
		0.000198*math.Cos(f2-mdr) +
		0.000173*math.Cos(md3) +
		0.000167*math.Cos(de4-mdr) -
		e*0.000111*math.Cos(msr) +
		0.000103*math.Cos(de4-md2) -
		0.000084*math.Cos(md2-de2) -
		e*0.000083*math.Cos(de2+msr) +
		0.000079*math.Cos(de2+md2) +
		0.000072*math.Cos(de4) +
		e*0.000064*math.Cos(de2-msr+mdr) -
		e*0.000063*math.Cos(de2+msr-mdr) +
		e*0.000041*math.Cos(msr+der) +
		e*0.000035*math.Cos(md2-msr) -
		0.000033*math.Cos(md3-de2) -
		0.00003*math.Cos(mdr+der) -
		0.000029*math.Cos(2*(fr-der)) -
		e*0.000029*math.Cos(md2+msr) +
		e2*0.000026*math.Cos(2*(der-msr)) -
		0.000023*math.Cos(2*(fr-der)+mdr) +
		e*0.000019*math.Cos(de4-msr-mdr)

	// daily angular speed
	dm := 13.176397 +
		1.434006*math.Cos(mdr) +
		0.280135*math.Cos(de2) +
		0.251632*math.Cos(de2-mdr) +
		0.097420*math.Cos(md2) -
		0.052799*math.Cos(f2) +
		0.034848*math.Cos(de2+mdr) +
		0.018732*math.Cos(de2-msr) +
		0.010316*math.Cos(de2-msr-mdr) +
		0.008649*math.Cos(msr-mdr) -
		0.008642*math.Cos(f2+mdr) -
		0.007471*math.Cos(msr+mdr) -
		0.007387*math.Cos(der) +
		0.006864*math.Cos(md2+mdr) +
		0.006650*math.Cos(de4-mdr) +
		0.003523*math.Cos(de2+md2) +
		0.003377*math.Cos(de4-md2) +
		0.003287*math.Cos(de4) -
		0.003193*math.Cos(msr) -
		0.003003*math.Cos(de2+msr) +
		0.002577*math.Cos(mdr-msr+de2) -
		0.002567*math.Cos(f2-mdr) -
		0.001794*math.Cos(de2-md2) -
		0.001716*math.Cos(mdr-f2-de2) -
		0.001698*math.Cos(de2+msr-mdr) -
		0.001415*math.Cos(de2+f2) +
		0.001183*math.Cos(md2-msr) +
		0.001150*math.Cos(der+msr) -
		0.001035*math.Cos(der+mdr) -
		0.001019*math.Cos(f2+md2) -
		0.001006*math.Cos(msr+md2)

	return Position{
		Lng:      lng,
		Lat:      lat,
		Delta:    8.794 / (hp * 3600),
		Parallax: hp,
		Motion:   dm,
	}
}

// Apparent returns the apparent position of the Moon for a given DJD,
// the true position corrected for nutation in longitude.
func Apparent(djd float64) Position {
	pos := TruePosition(djd)
	pos.Lng += nutation.Calc(djd / timeutil.DaysPerCent).DPsi
	return pos
}

// Mean orbit polynomials referred to the epoch 2000.0.
var (
	nodeTerms = []float64{125.0445479, -1934.1362891, 0.0020754, 1.0 / 467441, 1.0 / 60616000}
	elonTerms = []float64{297.8501921, 445267.1114034, -0.0018819, 1.0 / 545868, -(1.0 / 113065000)}
	anomTerms = []float64{134.9633964, 477198.8675055, 0.0087414, 1.0 / 69699, -(1.0 / 14712000)}
	latTerms  = []float64{93.272095, 483202.0175233, -0.0036539, -(1.0 / 3526000), 1.0 / 863310000}
	sunTerms  = []float64{357.5291092, 35999.0502909, -0.0001536, 1.0 / 24490000}
)

func assemble(t float64, terms []float64) float64 {
	return rad(mathutil.ReduceDeg(mathutil.Polynome(t, terms...)))
}

// MeanNode returns the longitude of the mean ascending lunar node, in
// degrees, for a given DJD.
func MeanNode(djd float64) float64 {
	t := (djd - 36525) / 36525 // centuries since epoch 2000.0
	return mathutil.ReduceDeg(mathutil.Polynome(t, nodeTerms...))
}

// TrueNode returns the longitude of the true ascending lunar node, in
// degrees, referred to the true equinox of date.
func TrueNode(djd float64) float64 {
	t := (djd - 36525) / 36525
	mn := mathutil.Polynome(t, nodeTerms...)
	d := assemble(t, elonTerms)
	m := assemble(t, anomTerms)
	f := assemble(t, latTerms)
	ms := assemble(t, sunTerms)
	return mathutil.ReduceDeg(mn -
		1.4979*math.Sin(2*(d-f)) -
		0.1500*math.Sin(ms) -
		0.1226*math.Sin(2*d) +
		0.1176*math.Sin(2*f) -
		0.0801*math.Sin(2*(m-f)))
}

func rad(x float64) float64 { return x * math.Pi / 180 }
