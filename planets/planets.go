// Package planets computes geocentric ecliptic positions of the eight
// planets, Mercury through Pluto.
//
// The orbits are osculating elements from P. Duffett-Smith, "Astronomy
// with Your Personal Computer", corrected by the major planetary
// perturbations and the light-travel time. The accuracy is about one
// arc-minute for the inner planets and a few arc-minutes for the rest,
// which is adequate over the 20th and 21st centuries. Pluto's elements
// carry no perturbation theory and degrade quickly outside 1885-2099.
package planets

import (
	"fmt"
	"math"

	"github.com/thurmanmarka/astrokit/kepler"
	"github.com/thurmanmarka/astrokit/mathutil"
)

// ID identifies a planet.
type ID int

const (
	Mercury ID = iota
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

const numPlanets = 8

func (id ID) String() string {
	if id < Mercury || id > Pluto {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return planets[id].Name
}

// All returns the identifiers of all supported planets, in order of
// the mean distance from the Sun.
func All() []ID {
	ids := make([]ID, numPlanets)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Planet holds the static description of a planet: its orbital
// elements and the perturbation series.
type Planet struct {
	ID      ID
	Name    string
	IsInner bool
	Orbit   Elements
	pert    pertFunc
}

// ForID returns the planet with the given identifier.
func ForID(id ID) *Planet {
	return &planets[id]
}

// EclipticPosition is the geocentric ecliptic position of a planet.
type EclipticPosition struct {
	Lambda float64 // geocentric ecliptic longitude, arc-degrees
	Beta   float64 // geocentric ecliptic latitude, arc-degrees
	Delta  float64 // distance from the Earth, AU
}

// helioRecord holds intermediate parameters of the heliocentric orbit.
type helioRecord struct {
	ll   float64 // longitude relative to the Earth, radians
	rpd  float64 // radius-vector projected on the ecliptic, AU
	lpd  float64 // heliocentric longitude, radians
	spsi float64 // sine of the heliocentric latitude
	cpsi float64 // cosine of the heliocentric latitude
	rho  float64 // Earth-planet distance, AU
}

// Light-travel time between the Earth and a planet, days per AU.
const lightTravelRate = 5.775518e-3

// heliocentric solves the perturbed orbit. ma is the planet's mean
// anomaly, re the Sun-Earth distance in AU, lg the longitude of the
// Earth in radians.
func heliocentric(oi OrbitInstance, ma, re, lg float64, p PertRecord) (helioRecord, error) {
	s := oi.Eccentricity + p.DS
	ma = mathutil.ReduceRad(ma + p.DM)
	ea, err := kepler.EccentricAnomaly(s, ma)
	if err != nil {
		return helioRecord{}, err
	}
	nu := kepler.TrueAnomaly(s, ea)

	rp := (oi.MajorSemiaxis+p.DA)*(1-s*s)/(1+s*math.Cos(nu)) + p.DR
	lp := nu + oi.Perihelion + (p.DML - p.DM) // orbital longitude
	lo := lp - oi.MeanNode
	sinLo := math.Sin(lo)
	spsi := sinLo * math.Sin(oi.Inclination)
	y := sinLo * math.Cos(oi.Inclination)
	psi := math.Asin(spsi) + p.DHL // heliocentric latitude
	lpd := math.Atan2(y, math.Cos(lo)) + oi.MeanNode + rad(p.DL)
	cpsi := math.Cos(psi)
	ll := lpd - lg
	rho := math.Sqrt(re*re + rp*rp - 2*re*rp*cpsi*math.Cos(ll))

	return helioRecord{
		ll:   ll,
		rpd:  rp * cpsi,
		lpd:  lpd,
		spsi: math.Sin(psi),
		cpsi: cpsi,
		rho:  rho,
	}, nil
}

// correctedHelio runs the heliocentric calculation twice: the first
// pass neglects the light-travel time, the second uses the travel time
// of the approximate distance found on the first. The reported
// distance is the uncorrected one, the distance at which we see the
// planet now.
func (p *Planet) correctedHelio(ctx *Context, oi OrbitInstance, lg, rg float64) (helioRecord, error) {
	h, err := heliocentric(oi, ctx.MeanAnomaly(p.ID, 0), rg, lg, p.pert(ctx, 0))
	if err != nil {
		return helioRecord{}, err
	}
	rho := h.rho
	dt := rho * lightTravelRate
	h, err = heliocentric(oi, ctx.MeanAnomaly(p.ID, dt), rg, lg, p.pert(ctx, dt))
	if err != nil {
		return helioRecord{}, err
	}
	h.rho = rho
	return h, nil
}

// GeocentricPosition returns the geocentric ecliptic position of the
// planet for the context instant. With ctx.Apparent set, the position
// is corrected for nutation and aberration.
func (p *Planet) GeocentricPosition(ctx *Context) (EclipticPosition, error) {
	lg := rad(ctx.SunGeo.Phi) + math.Pi // longitude of the Earth
	rsn := ctx.SunGeo.Rho               // Sun-Earth distance
	oi := ctx.OrbitInstance(p.ID)

	h, err := p.correctedHelio(ctx, oi, lg, rsn)
	if err != nil {
		return EclipticPosition{}, fmt.Errorf("%s: %w", p.Name, err)
	}

	sll := math.Sin(h.ll)
	cll := math.Cos(h.ll)
	var lam float64
	if p.IsInner {
		lam = math.Atan2(-h.rpd*sll, rsn-h.rpd*cll) + lg + math.Pi
	} else {
		lam = math.Atan2(rsn*sll, h.rpd-rsn*cll) + h.lpd
	}
	lam = mathutil.ReduceRad(lam)
	bet := math.Atan(h.rpd * h.spsi * math.Sin(lam-h.lpd) / (h.cpsi * rsn * sll))

	if ctx.Apparent {
		lam += rad(ctx.Nutation.DPsi)
		a := lg - lam // aberration
		lam -= 9.9387e-5 * math.Cos(a) / math.Cos(bet)
		lam = mathutil.ReduceRad(lam)
		bet -= 9.9387e-5 * math.Sin(a) * math.Sin(bet)
	}

	return EclipticPosition{Lambda: deg(lam), Beta: deg(bet), Delta: h.rho}, nil
}

var planets = [numPlanets]Planet{
	{
		ID:      Mercury,
		Name:    "Mercury",
		IsInner: true,
		Orbit: Elements{
			MeanLongitude: MLTerms{178.179078, 415.2057519, 3.011e-4},
			Perihelion:    Terms{75.899697, 1.5554889, 2.947e-4},
			Eccentricity:  Terms{2.0561421e-1, 2.046e-5, -3e-8},
			Inclination:   Terms{7.002881, 1.8608e-3, -1.83e-5},
			MeanNode:      Terms{47.145944, 1.1852083, 1.739e-4},
			MajorSemiaxis: 3.870986e-1,
		},
	},
	{
		ID:      Venus,
		Name:    "Venus",
		IsInner: true,
		Orbit: Elements{
			MeanLongitude: MLTerms{342.767053, 162.5533664, 3.097e-4},
			Perihelion:    Terms{130.163833, 1.4080361, -9.764e-4},
			Eccentricity:  Terms{6.82069e-3, -4.774e-5, 9.1e-8},
			Inclination:   Terms{3.393631, 1.0058e-3, -1e-6},
			MeanNode:      Terms{75.779647, 8.9985e-1, 4.1e-4},
			MajorSemiaxis: 7.233316e-1,
		},
	},
	{
		ID:   Mars,
		Name: "Mars",
		Orbit: Elements{
			MeanLongitude: MLTerms{293.737334, 53.17137642, 3.107e-4},
			Perihelion:    Terms{3.34218203e2, 1.8407584, 1.299e-4, -1.19e-6},
			Eccentricity:  Terms{9.33129e-2, 9.2064e-5, -7.7e-8},
			Inclination:   Terms{1.850333, -6.75e-4, 1.26e-5},
			MeanNode:      Terms{48.786442, 7.709917e-1, -1.4e-6, -5.33e-6},
			MajorSemiaxis: 1.5236883,
		},
	},
	{
		ID:   Jupiter,
		Name: "Jupiter",
		Orbit: Elements{
			MeanLongitude: MLTerms{238.049257, 8.434172183, 3.347e-4, -1.65e-6},
			Perihelion:    Terms{1.2720972e1, 1.6099617, 1.05627e-3, -3.43e-6},
			Eccentricity:  Terms{4.833475e-2, 1.6418e-4, -4.676e-7, -1.7e-9},
			Inclination:   Terms{1.308736, -5.6961e-3, 3.9e-6},
			MeanNode:      Terms{99.443414, 1.01053, 3.5222e-4, -8.51e-6},
			MajorSemiaxis: 5.202561,
		},
	},
	{
		ID:   Saturn,
		Name: "Saturn",
		Orbit: Elements{
			MeanLongitude: MLTerms{266.564377, 3.398638567, 3.245e-4, -5.8e-6},
			Perihelion:    Terms{9.1098214e1, 1.9584158, 8.2636e-4, 4.61e-6},
			Eccentricity:  Terms{5.589232e-2, -3.455e-4, -7.28e-7, 7.4e-10},
			Inclination:   Terms{2.492519, -3.9189e-3, -1.549e-5, 4e-8},
			MeanNode:      Terms{112.790414, 8.731951e-1, -1.5218e-4, -5.31e-6},
			MajorSemiaxis: 9.554747,
		},
	},
	{
		ID:   Uranus,
		Name: "Uranus",
		Orbit: Elements{
			MeanLongitude: MLTerms{244.19747, 1.194065406, 3.16e-4, -6e-7},
			Perihelion:    Terms{1.71548692e2, 1.4844328, 2.372e-4, -6.1e-7},
			Eccentricity:  Terms{4.63444e-2, -2.658e-5, 7.7e-8},
			Inclination:   Terms{7.72464e-1, 6.253e-4, 3.95e-5},
			MeanNode:      Terms{73.477111, 4.986678e-1, 1.3117e-3},
			MajorSemiaxis: 19.21814,
		},
	},
	{
		ID:   Neptune,
		Name: "Neptune",
		Orbit: Elements{
			MeanLongitude: MLTerms{84.457994, 6.107942056e-1, 3.205e-4, -6e-7},
			Perihelion:    Terms{4.6727364e1, 1.4245744, 3.9082e-4, -6.05e-7},
			Eccentricity:  Terms{8.99704e-3, 6.33e-6, -2e-9},
			Inclination:   Terms{1.779242, -9.5436e-3, -9.1e-6},
			MeanNode:      Terms{130.681389, 1.098935, 2.4987e-4, -4.718e-6},
			MajorSemiaxis: 30.10957,
		},
	},
	{
		ID:   Pluto,
		Name: "Pluto",
		Orbit: Elements{
			MeanLongitude: MLTerms{95.3113544, 3.980332167e-1},
			Perihelion:    Terms{224.017},
			Eccentricity:  Terms{2.5515e-1},
			Inclination:   Terms{17.1329},
			MeanNode:      Terms{110.191},
			MajorSemiaxis: 39.8151,
		},
	},
}

// The perturbation series read the planets table back through the
// Context, so storing them in the composite literal above would make
// package initialization cyclic.
func init() {
	planets[Mercury].pert = pertMercury
	planets[Venus].pert = pertVenus
	planets[Mars].pert = pertMars
	planets[Jupiter].pert = pertJupiter
	planets[Saturn].pert = pertSaturn
	planets[Uranus].pert = pertUranus
	planets[Neptune].pert = pertNeptune
	planets[Pluto].pert = pertPluto
}
