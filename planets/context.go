package planets

import (
	"fmt"

	"github.com/thurmanmarka/astrokit/mathutil"
	"github.com/thurmanmarka/astrokit/nutation"
	"github.com/thurmanmarka/astrokit/sun"
	"github.com/thurmanmarka/astrokit/timeutil"
)

// Context provides information that is outside of a single planet's
// scope, yet required to calculate its position. For instance, Mercury
// perturbations need the mean anomalies of Venus and Jupiter. Building
// the context once and reusing it for all eight planets avoids
// recomputing the shared Sun and nutation terms.
//
// A Context is immutable after creation and safe for concurrent use.
type Context struct {
	T              float64           // Julian centuries since 1900 January 0.5
	SunMeanAnomaly float64           // mean anomaly of the Sun, radians
	SunGeo         mathutil.Polar    // true geocentric longitude (degrees) and distance (AU) of the Sun
	Obliquity      float64           // true obliquity of the ecliptic, degrees
	Nutation       nutation.Nutation // nutation in longitude and obliquity
	Apparent       bool              // calculate apparent positions

	// auxiliary Sun-related arguments of the perturbation series
	auxSun [6]float64
	orbits [numPlanets]OrbitInstance
}

// NewContext builds the context for a given moment. djd is the number
// of Julian days since 1900 January 0.5; apparent requests positions
// corrected for nutation and aberration.
func NewContext(djd float64, apparent bool) (*Context, error) {
	t := djd / timeutil.DaysPerCent
	ms := sun.MeanAnomaly(t)
	sg, err := sun.TrueGeocentric(t, ms)
	if err != nil {
		return nil, fmt.Errorf("planets: %w", err)
	}
	nut := nutation.Calc(t)

	ctx := &Context{
		T:              t,
		SunMeanAnomaly: rad(ms),
		SunGeo:         sg,
		Obliquity:      nutation.Obliquity(djd, nut.DEps),
		Nutation:       nut,
		Apparent:       apparent,
	}
	ctx.auxSun[0] = t/5 + 0.1
	ctx.auxSun[1] = mathutil.ReduceRad(4.14473 + 5.29691e1*t)
	ctx.auxSun[2] = mathutil.ReduceRad(4.641118 + 2.132991e1*t)
	ctx.auxSun[3] = mathutil.ReduceRad(4.250177 + 7.478172*t)
	ctx.auxSun[4] = 5*ctx.auxSun[2] - 2*ctx.auxSun[1]
	ctx.auxSun[5] = 2*ctx.auxSun[1] - 6*ctx.auxSun[2] + 3*ctx.auxSun[3]

	for id := Mercury; id <= Pluto; id++ {
		ctx.orbits[id] = ForID(id).Orbit.Instantiate(t)
	}
	return ctx, nil
}

// OrbitInstance returns the orbit of a planet instantiated for the
// context instant.
func (c *Context) OrbitInstance(id ID) OrbitInstance {
	return c.orbits[id]
}

// MeanAnomaly returns the mean anomaly of a planet in radians, dt days
// before the context instant. Non-zero dt is the light-travel
// correction of the second pass of a position calculation.
func (c *Context) MeanAnomaly(id ID, dt float64) float64 {
	ma := c.orbits[id].MeanAnomaly
	if dt != 0 {
		ma -= rad(dt * ForID(id).Orbit.DailyMotion())
	}
	return ma
}
