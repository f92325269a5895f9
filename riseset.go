package astrokit

import (
	"errors"
	"fmt"
	"time"

	"github.com/thurmanmarka/astrokit/coords"
	"github.com/thurmanmarka/astrokit/timeutil"
)

// Coordinates represent an observer's location.
type Coordinates struct {
	Lat       float64 // degrees, north positive
	Lon       float64 // degrees, east positive (west negative, e.g. -105 for 105°W)
	Elevation float64 // meters above sea level (reserved for future use)
}

// RiseSet holds rise and set times of a body on a given date.
type RiseSet struct {
	Rise time.Time
	Set  time.Time
}

// TwilightKind identifies the type of twilight based on the Sun's
// altitude below the horizon.
type TwilightKind int

const (
	// TwilightCivil corresponds to the Sun's center at -6 degrees altitude.
	TwilightCivil TwilightKind = iota

	// TwilightNautical corresponds to the Sun's center at -12 degrees altitude.
	TwilightNautical

	// TwilightAstronomical corresponds to the Sun's center at -18 degrees altitude.
	TwilightAstronomical
)

// PhaseWindow represents a continuous time interval where the Sun's
// altitude stays within a particular range (e.g. golden hour).
type PhaseWindow struct {
	Start time.Time
	End   time.Time
}

// DaylightPhases holds the morning and evening windows for a given
// phase (e.g. golden hour or blue hour).
type DaylightPhases struct {
	Morning PhaseWindow
	Evening PhaseWindow

	// HasMorning / HasEvening indicate whether the corresponding window
	// exists on this date at this location (high latitudes can be weird).
	HasMorning bool
	HasEvening bool
}

// ErrNoRiseNoSet is returned when a body does not rise or set on that
// date at that location.
var ErrNoRiseNoSet = errors.New("body does not rise or set on this date")

// Standard rise/set target altitudes, accounting for refraction and,
// for the Sun, the apparent semi-diameter.
const (
	sunRiseSetAlt    = -0.8333
	planetRiseSetAlt = -0.5667
)

// deficit returns the altitude of the body above its rise/set target
// altitude, degrees. The target accounts for refraction and, for the
// Moon, parallax and semi-diameter at the instant.
func deficit(b Body, loc Coordinates, t time.Time) (float64, error) {
	djd := timeutil.FromTime(t)
	lng, lat, _, parallax, err := eclipticDeg(b, djd)
	if err != nil {
		return 0, err
	}
	ra, dec := eclToEquOfDate(djd, lng, lat)
	lst := timeutil.DJDToSidereal(djd, -loc.Lon)
	_, alt := coords.EquToHor(lst*15-ra, dec, loc.Lat)

	var target float64
	switch b {
	case Sun:
		target = sunRiseSetAlt
	case Moon:
		target = 0.7275*parallax - 0.566
	default:
		target = planetRiseSetAlt
	}
	return alt - target, nil
}

// sunAltitude returns the Sun's altitude above a given reference
// altitude, for the twilight and daylight-phase solvers.
func sunAltitude(loc Coordinates, t time.Time, refAlt float64) (float64, error) {
	djd := timeutil.FromTime(t)
	lng, _, _, _, err := eclipticDeg(Sun, djd)
	if err != nil {
		return 0, err
	}
	ra, dec := eclToEquOfDate(djd, lng, 0)
	lst := timeutil.DJDToSidereal(djd, -loc.Lon)
	_, alt := coords.EquToHor(lst*15-ra, dec, loc.Lat)
	return alt - refAlt, nil
}

type crossDir int

const (
	crossUp crossDir = iota
	crossDown
)

// findCrossing searches [start, end] for a time where f crosses zero in
// the given direction, by sampling for a sign change and bisecting the
// bracket. f reports the altitude deficit at a time; a non-nil error
// from it aborts the search.
func findCrossing(f func(time.Time) (float64, error), start, end time.Time, dir crossDir, steps int, tol time.Duration) (time.Time, bool, error) {
	if !start.Before(end) {
		return time.Time{}, false, nil
	}
	if steps < 2 {
		steps = 2
	}
	interval := end.Sub(start) / time.Duration(steps-1)

	prevT := start
	prevV, err := f(prevT)
	if err != nil {
		return time.Time{}, false, err
	}

	for i := 1; i < steps; i++ {
		t := start.Add(time.Duration(i) * interval)
		v, err := f(t)
		if err != nil {
			return time.Time{}, false, err
		}
		if hasCrossing(prevV, v, dir) {
			return bisect(f, prevT, t, prevV, dir, tol)
		}
		prevT, prevV = t, v
	}
	return time.Time{}, false, nil
}

func hasCrossing(v1, v2 float64, dir crossDir) bool {
	switch dir {
	case crossUp:
		return v1 < 0 && v2 >= 0
	case crossDown:
		return v1 > 0 && v2 <= 0
	default:
		return v1*v2 <= 0
	}
}

func bisect(f func(time.Time) (float64, error), a, b time.Time, va float64, dir crossDir, tol time.Duration) (time.Time, bool, error) {
	for b.Sub(a) > tol {
		mid := a.Add(b.Sub(a) / 2)
		vm, err := f(mid)
		if err != nil {
			return time.Time{}, false, err
		}
		if hasCrossing(va, vm, dir) {
			b = mid
		} else {
			a = mid
			va = vm
		}
	}
	return a.Add(b.Sub(a) / 2), true, nil
}

// Sampling parameters of the daily event searches. Ten-minute steps
// are fine enough not to skip the Moon's fast-moving crossings.
const (
	daySteps = 145
	dayTol   = time.Second
)

// localDay returns the local midnight starting the calendar date of t
// and the next local midnight. On DST transition days the interval is
// 23 or 25 hours.
func localDay(date time.Time) (start, end time.Time) {
	y, m, d := date.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	return start, time.Date(y, m, d+1, 0, 0, 0, 0, date.Location())
}

// RiseSetFor returns rise and set times for the given body and
// location on the local calendar date of date. The date's time zone is
// used for the returned times. If the body neither rises nor sets on
// that date (polar day or night), ErrNoRiseNoSet is returned.
func RiseSetFor(b Body, loc Coordinates, date time.Time) (RiseSet, error) {
	if b < Sun || b > Pluto {
		return RiseSet{}, fmt.Errorf("unknown body %v", b)
	}
	start, end := localDay(date)
	f := func(t time.Time) (float64, error) {
		return deficit(b, loc, t)
	}

	rise, okRise, err := findCrossing(f, start, end, crossUp, daySteps, dayTol)
	if err != nil {
		return RiseSet{}, err
	}
	set, okSet, err := findCrossing(f, start, end, crossDown, daySteps, dayTol)
	if err != nil {
		return RiseSet{}, err
	}
	if !okRise && !okSet {
		return RiseSet{}, ErrNoRiseNoSet
	}

	var rs RiseSet
	if okRise {
		rs.Rise = rise.In(date.Location())
	}
	if okSet {
		rs.Set = set.In(date.Location())
	}
	return rs, nil
}

// DaylightHours calculates the duration of daylight, in hours, between
// sunrise and sunset at the given location and date. If the Sun does
// not rise or set on that date, it returns 0 and ErrNoRiseNoSet.
func DaylightHours(loc Coordinates, date time.Time) (float64, error) {
	rs, err := RiseSetFor(Sun, loc, date)
	if err != nil {
		return 0, err
	}
	if rs.Rise.IsZero() || rs.Set.IsZero() {
		return 0, ErrNoRiseNoSet
	}
	return rs.Set.Sub(rs.Rise).Hours(), nil
}

// sunCrossings finds the times the Sun's altitude crosses refAlt on
// the local date: morning is the upward crossing, evening the
// downward one.
func sunCrossings(loc Coordinates, date time.Time, refAlt float64) (morning, evening time.Time, okM, okE bool, err error) {
	start, end := localDay(date)
	f := func(t time.Time) (float64, error) {
		return sunAltitude(loc, t, refAlt)
	}
	morning, okM, err = findCrossing(f, start, end, crossUp, daySteps, dayTol)
	if err != nil {
		return
	}
	evening, okE, err = findCrossing(f, start, end, crossDown, daySteps, dayTol)
	return
}

// TwilightFor computes twilight times (dawn and dusk) of the given
// kind for a location and local calendar date. The returned RiseSet
// uses Rise as the dawn time (upward crossing of the twilight
// altitude) and Set as the dusk time (downward crossing).
func TwilightFor(loc Coordinates, date time.Time, kind TwilightKind) (RiseSet, error) {
	var targetAlt float64
	switch kind {
	case TwilightCivil:
		targetAlt = -6
	case TwilightNautical:
		targetAlt = -12
	case TwilightAstronomical:
		targetAlt = -18
	default:
		return RiseSet{}, fmt.Errorf("unknown TwilightKind: %d", kind)
	}

	dawn, dusk, okDawn, okDusk, err := sunCrossings(loc, date, targetAlt)
	if err != nil {
		return RiseSet{}, err
	}
	if !okDawn && !okDusk {
		return RiseSet{}, ErrNoRiseNoSet
	}

	var rs RiseSet
	if okDawn {
		rs.Rise = dawn.In(date.Location())
	}
	if okDusk {
		rs.Set = dusk.In(date.Location())
	}
	return rs, nil
}

// altitudeBand builds the morning and evening windows where the Sun's
// altitude passes between lowAlt and highAlt.
func altitudeBand(loc Coordinates, date time.Time, lowAlt, highAlt float64) (DaylightPhases, error) {
	locTZ := date.Location()

	mLow, eLow, okMLow, okELow, err := sunCrossings(loc, date, lowAlt)
	if err != nil {
		return DaylightPhases{}, err
	}
	mHigh, eHigh, okMHigh, okEHigh, err := sunCrossings(loc, date, highAlt)
	if err != nil {
		return DaylightPhases{}, err
	}

	var phases DaylightPhases

	// Morning: Sun climbing from lowAlt to highAlt.
	if okMLow && okMHigh {
		start, end := mLow.In(locTZ), mHigh.In(locTZ)
		if end.After(start) {
			phases.Morning = PhaseWindow{Start: start, End: end}
			phases.HasMorning = true
		}
	}

	// Evening: Sun descending from highAlt to lowAlt.
	if okEHigh && okELow {
		start, end := eHigh.In(locTZ), eLow.In(locTZ)
		if end.After(start) {
			phases.Evening = PhaseWindow{Start: start, End: end}
			phases.HasEvening = true
		}
	}

	if !phases.HasMorning && !phases.HasEvening {
		return DaylightPhases{}, ErrNoRiseNoSet
	}
	return phases, nil
}

// GoldenHourFor computes the golden hour intervals for the given local
// calendar date and location: the periods when the Sun's center
// altitude is between -4 and +6 degrees.
func GoldenHourFor(loc Coordinates, date time.Time) (DaylightPhases, error) {
	return altitudeBand(loc, date, -4, 6)
}

// BlueHourFor computes the blue hour intervals for the given local
// calendar date and location: the periods when the Sun's center
// altitude is between -6 and -4 degrees.
func BlueHourFor(loc Coordinates, date time.Time) (DaylightPhases, error) {
	return altitudeBand(loc, date, -6, -4)
}
