package planets

import (
	"math"

	"github.com/thurmanmarka/astrokit/mathutil"
	"github.com/thurmanmarka/astrokit/timeutil"
)

// Terms is a polynomial of time yielding an orbital element in
// arc-degrees. The argument is centuries since the epoch 1900.0.
type Terms []float64

// Assemble evaluates the element for a given moment.
func (tm Terms) Assemble(t float64) float64 {
	return mathutil.ReduceDeg(mathutil.Polynome(t, tm...))
}

// MLTerms is the mean longitude, a special case of Terms: the element
// grows by 360 degrees for every revolution about the Sun, so to
// preserve accuracy the integer rotations are removed from the second
// term before the others are added.
type MLTerms Terms

// Assemble evaluates the mean longitude for a given moment.
func (tm MLTerms) Assemble(t float64) float64 {
	b := mathutil.Frac360(tm[1] * t)
	var c, d float64
	if len(tm) > 2 {
		c = tm[2]
	}
	if len(tm) > 3 {
		d = tm[3]
	}
	return mathutil.ReduceDeg(tm[0] + b + (d*t+c)*t*t)
}

// Elements holds the osculating elements of a planetary orbit as
// polynomials of time.
type Elements struct {
	MeanLongitude MLTerms
	Perihelion    Terms
	Eccentricity  Terms
	Inclination   Terms
	MeanNode      Terms
	MajorSemiaxis float64
}

// DailyMotion returns the mean daily motion, arc-degrees per day.
func (e Elements) DailyMotion() float64 {
	var c, d float64
	if len(e.MeanLongitude) > 2 {
		c = e.MeanLongitude[2]
	}
	if len(e.MeanLongitude) > 3 {
		d = e.MeanLongitude[3]
	}
	return e.MeanLongitude[1]*9.856263e-3 + (c+d)/timeutil.DaysPerCent
}

// MeanAnomaly returns the mean anomaly in arc-degrees for a given
// moment, t in centuries since 1900.0.
func (e Elements) MeanAnomaly(t float64) float64 {
	return mathutil.ReduceDeg(e.MeanLongitude.Assemble(t) - e.Perihelion.Assemble(t))
}

// OrbitInstance holds an orbit instantiated for a given moment of
// time. All angular values are in radians.
type OrbitInstance struct {
	Perihelion    float64 // argument of perihelion
	Eccentricity  float64
	MeanNode      float64 // mean ascending node
	Inclination   float64
	MajorSemiaxis float64 // AU
	MeanAnomaly   float64
	DailyMotion   float64
}

// Instantiate builds the orbit for a given moment, t in centuries
// since the epoch 1900.0.
func (e Elements) Instantiate(t float64) OrbitInstance {
	return OrbitInstance{
		Perihelion:    rad(e.Perihelion.Assemble(t)),
		Eccentricity:  e.Eccentricity.Assemble(t),
		MeanNode:      rad(e.MeanNode.Assemble(t)),
		Inclination:   rad(e.Inclination.Assemble(t)),
		MajorSemiaxis: e.MajorSemiaxis,
		MeanAnomaly:   rad(e.MeanAnomaly(t)),
		DailyMotion:   rad(e.DailyMotion()),
	}
}

func rad(x float64) float64 { return x * math.Pi / 180 }
func deg(x float64) float64 { return x * 180 / math.Pi }
