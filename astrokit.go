// Package astrokit computes positions of the Sun, the Moon and the
// planets, and the everyday events derived from them: rise and set,
// twilight, seasons and lunar phases.
//
// The root package is a time.Time-level convenience layer over the
// solver packages (timeutil, sun, moon, planets, coords and friends),
// which work in Julian days and plain degrees. Public angles at this
// level use the soniakeys/unit types.
package astrokit

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/astrokit/coords"
	"github.com/thurmanmarka/astrokit/mathutil"
	"github.com/thurmanmarka/astrokit/moon"
	"github.com/thurmanmarka/astrokit/nutation"
	"github.com/thurmanmarka/astrokit/planets"
	"github.com/thurmanmarka/astrokit/sun"
	"github.com/thurmanmarka/astrokit/timeutil"
)

// Body represents a celestial body.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

func (b Body) String() string {
	switch b {
	case Sun:
		return "Sun"
	case Moon:
		return "Moon"
	default:
		if id, ok := b.planetID(); ok {
			return id.String()
		}
		return fmt.Sprintf("Body(%d)", int(b))
	}
}

// planetID maps a Body to its planets package identifier.
func (b Body) planetID() (planets.ID, bool) {
	if b < Mercury || b > Pluto {
		return 0, false
	}
	return planets.ID(b - Mercury), true
}

// ParseBody converts a case-insensitive body name to a Body.
func ParseBody(name string) (Body, error) {
	for b := Sun; b <= Pluto; b++ {
		if strings.EqualFold(name, b.String()) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown body %q", name)
}

// EclipticPosition is an apparent geocentric position on the ecliptic.
type EclipticPosition struct {
	Lng   unit.Angle // ecliptic longitude
	Lat   unit.Angle // ecliptic latitude
	Delta float64    // distance from the Earth, AU
}

// EquatorialPosition is an apparent geocentric equatorial position.
type EquatorialPosition struct {
	RA    unit.RA    // right ascension
	Dec   unit.Angle // declination
	Delta float64    // distance from the Earth, AU
}

// eclipticDeg computes the apparent position of a body in plain
// degrees. The fourth value is the equatorial horizontal parallax,
// degrees; it is zero for every body except the Moon, where it feeds
// the rise/set target altitude.
func eclipticDeg(b Body, djd float64) (lng, lat, delta, parallax float64, err error) {
	switch b {
	case Sun:
		var p mathutil.Polar
		p, err = sun.Apparent(djd, false)
		if err != nil {
			return
		}
		return p.Phi, 0, p.Rho, 0, nil
	case Moon:
		pos := moon.Apparent(djd)
		return pos.Lng, pos.Lat, pos.Delta, pos.Parallax, nil
	default:
		id, ok := b.planetID()
		if !ok {
			err = fmt.Errorf("unknown body %v", b)
			return
		}
		var ctx *planets.Context
		ctx, err = planets.NewContext(djd, true)
		if err != nil {
			return
		}
		var pos planets.EclipticPosition
		pos, err = planets.ForID(id).GeocentricPosition(ctx)
		if err != nil {
			return
		}
		return pos.Lambda, pos.Beta, pos.Delta, 0, nil
	}
}

// PositionAt returns the apparent geocentric ecliptic position of a
// body at the given time.
func PositionAt(b Body, t time.Time) (EclipticPosition, error) {
	lng, lat, delta, _, err := eclipticDeg(b, timeutil.FromTime(t))
	if err != nil {
		return EclipticPosition{}, err
	}
	return EclipticPosition{
		Lng:   unit.AngleFromDeg(lng),
		Lat:   unit.AngleFromDeg(lat),
		Delta: delta,
	}, nil
}

// EquatorialAt returns the apparent geocentric equatorial position of a
// body at the given time, referred to the true equinox of date.
func EquatorialAt(b Body, t time.Time) (EquatorialPosition, error) {
	ra, dec, delta, err := equatorialDeg(b, timeutil.FromTime(t))
	if err != nil {
		return EquatorialPosition{}, err
	}
	return EquatorialPosition{
		RA:    unit.RAFromDeg(ra),
		Dec:   unit.AngleFromDeg(dec),
		Delta: delta,
	}, nil
}

func equatorialDeg(b Body, djd float64) (ra, dec, delta float64, err error) {
	lng, lat, delta, _, err := eclipticDeg(b, djd)
	if err != nil {
		return 0, 0, 0, err
	}
	ra, dec = eclToEquOfDate(djd, lng, lat)
	return ra, dec, delta, nil
}

// eclToEquOfDate converts ecliptic degrees to equatorial degrees
// referred to the true equinox of date.
func eclToEquOfDate(djd, lng, lat float64) (ra, dec float64) {
	eps := nutation.Obliquity(djd, nutation.Calc(djd/timeutil.DaysPerCent).DEps)
	return coords.EclToEqu(lng, lat, eps)
}

// ApparentSidereal returns the local apparent sidereal time: the mean
// sidereal time corrected by the equation of the equinoxes. lon is the
// geographic longitude, east positive.
func ApparentSidereal(t time.Time, lon unit.Angle) unit.Time {
	djd := timeutil.FromTime(t)
	mean := timeutil.DJDToSidereal(djd, -lon.Deg())
	nut := nutation.Calc(djd / timeutil.DaysPerCent)
	eps := nutation.Obliquity(djd, nut.DEps)
	eqeq := nut.DPsi * math.Cos(eps*math.Pi/180) / 15 // hours
	return unit.TimeFromHour(mathutil.ToRange(mean+eqeq, 24))
}

// Season returns the time of a solstice or an equinox of the given
// year.
func Season(year int, kind sun.EventKind) (time.Time, error) {
	evt, err := sun.SolEqu(year, kind)
	if err != nil {
		return time.Time{}, err
	}
	return timeutil.ToTime(evt.DJD), nil
}

// QuarterTime returns the instant of the given lunar quarter closest
// to a time.
func QuarterTime(q moon.Quarter, around time.Time) (time.Time, error) {
	utc := around.UTC()
	day := float64(utc.Day()) + float64(utc.Hour())/24
	evt, err := moon.TruePhase(q, utc.Year(), int(utc.Month()), day)
	if err != nil {
		return time.Time{}, err
	}
	return timeutil.ToTime(evt.DJD), nil
}
