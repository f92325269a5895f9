package moon

import (
	"fmt"
	"math"

	"github.com/thurmanmarka/astrokit/kepler"
	"github.com/thurmanmarka/astrokit/mathutil"
	"github.com/thurmanmarka/astrokit/sun"
	"github.com/thurmanmarka/astrokit/timeutil"
)

// Quarter identifies a principal lunar phase.
type Quarter int

const (
	NewMoon Quarter = iota
	FirstQuarter
	FullMoon
	LastQuarter
)

func (q Quarter) String() string {
	switch q {
	case NewMoon:
		return "New Moon"
	case FirstQuarter:
		return "First Quarter"
	case FullMoon:
		return "Full Moon"
	case LastQuarter:
		return "Last Quarter"
	default:
		return fmt.Sprintf("Quarter(%d)", int(q))
	}
}

// coeff is the fraction of a lunation at which the quarter occurs.
func (q Quarter) coeff() float64 {
	return float64(q) * 0.25
}

// Elongation is the Sun-Moon angular distance at the quarter, degrees.
func (q Quarter) Elongation() float64 {
	return q.coeff() * 360
}

func quarterDelta(q Quarter, t, ms, mm, f float64) float64 {
	tms := ms + ms
	tmm := mm + mm
	tf := f + f

	if q == NewMoon || q == FullMoon {
		return (1.734e-1-3.93e-4*t)*math.Sin(ms) +
			2.1e-3*math.Sin(tms) -
			4.068e-1*math.Sin(mm) +
			1.61e-2*math.Sin(tmm) -
			4e-4*math.Sin(mm+tmm) +
			1.04e-2*math.Sin(tf) -
			5.1e-3*math.Sin(ms+mm) -
			7.4e-3*math.Sin(ms-mm) +
			4e-4*math.Sin(tf+ms) -
			4e-4*math.Sin(tf-ms) -
			6e-4*math.Sin(tf+mm) +
			1e-3*math.Sin(tf-mm) +
			5e-4*math.Sin(ms+tmm)
	}

	delta := (0.1721-0.0004*t)*math.Sin(ms) +
		0.0021*math.Sin(tms) -
		0.6280*math.Sin(mm) +
		0.0089*math.Sin(tmm) -
		0.0004*math.Sin(tmm+mm) +
		0.0079*math.Sin(tf) -
		0.0119*math.Sin(ms+mm) -
		0.0047*math.Sin(ms-mm) +
		0.0003*math.Sin(tf+ms) -
		0.0004*math.Sin(tf-ms) -
		0.0006*math.Sin(tf+mm) +
		0.0021*math.Sin(tf-mm) +
		0.0003*math.Sin(ms+tmm) +
		0.0004*math.Sin(ms-tmm) -
		0.0003*math.Sin(tms+mm)
	w := 0.0028 - 0.0004*math.Cos(ms) + 0.0003*math.Cos(ms)
	if q == LastQuarter {
		w = -w
	}
	return delta + w
}

// Closest returns the DJD of the given quarter closest to a calendar
// date, from the mean lunation series. The result is typically within
// a couple of minutes of the true event; see TruePhase for a refined
// instant.
func Closest(q Quarter, year, month int, day float64) float64 {
	n := 365.0
	if timeutil.IsLeapYear(year) {
		n = 366
	}
	y := float64(year) + float64(timeutil.DayOfYear(year, month, day))/n
	k := math.Round((y-1900)*12.3685) + q.coeff()
	t := k / 1236.85
	t2 := t * t
	t3 := t2 * t

	arg := func(a, b, c, d float64) float64 {
		return rad(mathutil.ReduceDeg(a + b*k + c*t2 + d*t3))
	}

	c := rad(166.56 + (132.87-9.173e-3*t)*t)
	j := 0.75933 + 29.53058868*k + 0.0001178*t2 - 1.55e-7*t3 + 3.3e-4*math.Sin(c) // mean phase

	ms := arg(359.2242, 29.105356080, -0.0000333, -0.00000347)
	mm := arg(306.0253, 385.81691806, 0.0107306, 0.00001236)
	f := arg(21.2964, 390.67050646, -0.0016528, -0.00000239)

	return j + quarterDelta(q, t, ms, mm, f)
}

// PhaseEvent holds a refined quarter instant.
type PhaseEvent struct {
	Quarter  Quarter
	DJD      float64 // time of the event, Julian days since 1900 Jan 0.5
	Residual float64 // remaining elongation offset, degrees
}

// Iteration parameters of the phase refinement.
const (
	phaseDelta   = 1e-4 // degrees of elongation
	phaseMaxIter = 50
)

// Rate at which the Sun's apparent longitude advances, degrees per day.
const sunDailyMotion = 0.9856

// TruePhase finds the exact instant of the given quarter closest to a
// calendar date. Starting from the mean lunation estimate, it iterates
// on the apparent Sun-Moon elongation using the Moon's computed daily
// motion until the elongation is within 1e-4 degrees of the quarter
// angle. On cap overrun the error wraps kepler.ErrNotConverging and the
// last approximation is still returned.
func TruePhase(q Quarter, year, month int, day float64) (PhaseEvent, error) {
	dj := Closest(q, year, month, day)
	target := q.Elongation()

	var diff float64
	for i := 0; i < phaseMaxIter; i++ {
		s, err := sun.Apparent(dj, true)
		if err != nil {
			return PhaseEvent{}, err
		}
		m := Apparent(dj)
		elong := mathutil.ReduceDeg(m.Lng - s.Phi)
		diff = mathutil.DiffAngle(target, elong)
		if math.Abs(diff) < phaseDelta {
			return PhaseEvent{Quarter: q, DJD: dj, Residual: diff}, nil
		}
		dj -= diff / (m.Motion - sunDailyMotion)
	}
	return PhaseEvent{Quarter: q, DJD: dj, Residual: diff},
		fmt.Errorf("%s near %d-%02d: %w", q, year, month, kepler.ErrNotConverging)
}
