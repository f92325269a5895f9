package sun

import (
	"fmt"
	"math"

	"github.com/thurmanmarka/astrokit/kepler"
	"github.com/thurmanmarka/astrokit/mathutil"
)

// EventKind identifies a solstice or equinox.
type EventKind int

const (
	MarchEquinox EventKind = iota
	JuneSolstice
	SeptemberEquinox
	DecemberSolstice
)

func (k EventKind) String() string {
	switch k {
	case MarchEquinox:
		return "March equinox"
	case JuneSolstice:
		return "June solstice"
	case SeptemberEquinox:
		return "September equinox"
	case DecemberSolstice:
		return "December solstice"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event holds the circumstances of a solstice or equinox.
type Event struct {
	DJD      float64 // time of the event, Julian days since 1900 Jan 0.5
	SunLng   float64 // apparent longitude of the Sun at the event, degrees
	Residual float64 // angular distance from the exact target, degrees
}

// Iteration parameters of the solstice/equinox search.
const (
	solEquDelta   = 1e-6
	solEquMaxIter = 50
)

// SolEqu finds the circumstances of a solstice or equinox event in a
// given year: the instant when the Sun's apparent longitude reaches
// k * 90 degrees. The search starts from a polynomial estimate and
// iterates until the longitude is within 1e-6 degrees of the target;
// if that fails within the iteration cap the error wraps
// kepler.ErrNotConverging and the last approximation is returned.
func SolEqu(year int, kind EventKind) (Event, error) {
	k := int(kind)
	k90 := float64(k * 90)
	dj := (float64(year)+float64(k)/4.0)*365.2422 - 693878.7

	var x, arc float64
	for i := 0; i < solEquMaxIter; i++ {
		sg, err := Apparent(dj, true)
		if err != nil {
			return Event{}, err
		}
		x = sg.Phi
		dj += 58.0 * math.Sin(rad(k90-x))
		arc = mathutil.ShortestArcDeg(k90, x)
		if arc < solEquDelta {
			return Event{DJD: dj, SunLng: x, Residual: arc}, nil
		}
	}
	return Event{DJD: dj, SunLng: x, Residual: arc},
		fmt.Errorf("%s %d: %w", kind, year, kepler.ErrNotConverging)
}
