package astrokit

import (
	"math"
	"time"

	"github.com/thurmanmarka/astrokit/mathutil"
	"github.com/thurmanmarka/astrokit/moon"
	"github.com/thurmanmarka/astrokit/sun"
	"github.com/thurmanmarka/astrokit/timeutil"
)

// MoonPhase describes the illuminated fraction and qualitative phase
// of the Moon at a given instant.
type MoonPhase struct {
	Time       time.Time // the instant this phase is evaluated at
	Fraction   float64   // illuminated fraction [0..1], 0=new, 1=full
	Elongation float64   // Sun-Moon angular separation in degrees [0..180]
	Waxing     bool      // true if illumination is increasing
	Name       string    // e.g. "New Moon", "Waxing Crescent", ...
}

// MoonPhaseAt computes the Moon's illuminated fraction and qualitative
// phase at the given time. Phase is a global property, independent of
// the observer's location, so the time zone only tags the result.
func MoonPhaseAt(t time.Time) (MoonPhase, error) {
	djd := timeutil.FromTime(t)

	s, err := sun.Apparent(djd, false)
	if err != nil {
		return MoonPhase{}, err
	}
	m := moon.Apparent(djd)

	// Angular separation psi between the Sun and the Moon:
	// cos psi = cos(beta) * cos(lambda_moon - lambda_sun)
	beta := rad(m.Lat)
	dLng := rad(m.Lng - s.Phi)
	cosPsi := math.Cos(beta) * math.Cos(dLng)
	if cosPsi > 1 {
		cosPsi = 1
	} else if cosPsi < -1 {
		cosPsi = -1
	}

	fraction := 0.5 * (1 - cosPsi)
	elong := math.Acos(cosPsi) * 180 / math.Pi

	// Waxing when the Moon is east of the Sun.
	sep := mathutil.ReduceDeg(m.Lng - s.Phi)
	waxing := sep < 180

	return MoonPhase{
		Time:       t,
		Fraction:   fraction,
		Elongation: elong,
		Waxing:     waxing,
		Name:       classifyMoonPhaseName(fraction, waxing),
	}, nil
}

func classifyMoonPhaseName(f float64, waxing bool) string {
	const (
		eps        = 0.01 // near 0 or 1
		quarterTol = 0.05 // fraction window around 0.5
	)

	switch {
	case f < eps:
		return "New Moon"
	case f > 1-eps:
		return "Full Moon"
	case math.Abs(f-0.5) < quarterTol:
		if waxing {
			return "First Quarter"
		}
		return "Last Quarter"
	case f < 0.5:
		if waxing {
			return "Waxing Crescent"
		}
		return "Waning Crescent"
	default:
		if waxing {
			return "Waxing Gibbous"
		}
		return "Waning Gibbous"
	}
}

func rad(x float64) float64 { return x * math.Pi / 180 }
