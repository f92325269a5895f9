// Package kepler solves Kepler's equation for elliptical orbits.
package kepler

import (
	"errors"
	"fmt"
	"math"
)

// DefaultDelta is the default convergence tolerance, radians.
const DefaultDelta = 1e-7

// DefaultMaxIter is the default cap on Newton iterations.
const DefaultMaxIter = 50

// ErrNotConverging is returned when the iteration fails to reach the
// requested tolerance within the iteration cap.
var ErrNotConverging = errors.New("iteration did not converge")

// Solve finds the eccentric anomaly for eccentricity s (< 1) and mean
// anomaly m (radians) by Newton's method, stopping when the equation
// residual falls below delta (radians). At most maxIter iterations
// are attempted; on overrun the last approximation is returned along
// with an error wrapping ErrNotConverging.
func Solve(s, m, delta float64, maxIter int) (float64, error) {
	ea := m
	for i := 0; i < maxIter; i++ {
		dla := ea - s*math.Sin(ea) - m
		if math.Abs(dla) < delta {
			return ea, nil
		}
		ea -= dla / (1 - s*math.Cos(ea))
	}
	return ea, fmt.Errorf("%w after %d iterations (s=%v, m=%v)", ErrNotConverging, maxIter, s, m)
}

// EccentricAnomaly solves Kepler's equation with the default tolerance
// and iteration cap.
func EccentricAnomaly(s, m float64) (float64, error) {
	return Solve(s, m, DefaultDelta, DefaultMaxIter)
}

// TrueAnomaly converts an eccentric anomaly ea (radians) to the true
// anomaly for eccentricity s.
func TrueAnomaly(s, ea float64) float64 {
	return 2 * math.Atan(math.Sqrt((1+s)/(1-s))*math.Tan(ea/2))
}
