package timeutil

import (
	"errors"
	"math"
)

// ErrOutOfRange marks a result computed outside the range where the
// underlying model is considered reliable. The returned value is still
// usable as an extrapolation.
var ErrOutOfRange = errors.New("argument outside the reliable range")

// Observed and predicted Delta-T values for 1620-2000 at two-year
// intervals, seconds (Meeus, "Astronomical Algorithms", table 10.A,
// extended to 2000).
var deltaTTable = [...]float64{
	121, 112, 103, 95, 88, 82, 77, 72, 68, 63,
	60, 56, 53, 51, 48, 46, 44, 42, 40, 38,
	35, 33, 31, 29, 26, 24, 22, 20, 18, 16,
	14, 12, 11, 10, 9, 8, 7, 7, 7, 7,
	7, 7, 8, 8, 9, 9, 9, 9, 9, 10,
	10, 10, 10, 10, 10, 10, 10, 11, 11, 11,
	11, 11, 12, 12, 12, 12, 13, 13, 13, 14,
	14, 14, 14, 15, 15, 15, 15, 15, 16, 16,
	16, 16, 16, 16, 16, 16, 15, 15, 14, 13,
	13.1, 12.5, 12.2, 12.0, 12.0, 12.0, 12.0, 12.0, 12.0, 11.9,
	11.6, 11.0, 10.2, 9.2, 8.2, 7.1, 6.2, 5.6, 5.4, 5.3,
	5.4, 5.6, 5.9, 6.2, 6.5, 6.8, 7.1, 7.3, 7.5, 7.6,
	7.7, 7.3, 6.2, 5.2, 2.7, 1.4, -1.2, -2.8, -3.8, -4.8,
	-5.5, -5.3, -5.6, -5.7, -5.9, -6.0, -6.3, -6.5, -6.2, -4.7,
	-2.8, -0.1, 2.6, 5.3, 7.7, 10.4, 13.3, 16.0, 18.2, 20.2,
	21.1, 22.4, 23.5, 23.8, 24.3, 24.0, 23.9, 23.9, 23.7, 24.0,
	24.3, 25.3, 26.2, 27.3, 28.2, 29.1, 30.0, 30.7, 31.4, 32.2,
	33.1, 34.0, 35.0, 36.5, 38.3, 40.2, 42.2, 44.5, 46.5, 48.5,
	50.5, 52.2, 53.8, 54.9, 55.8, 56.9, 58.3, 60.0, 61.6, 63.0,
	63.8,
}

const (
	deltaTTableStart = 1620
	deltaTTableStep  = 2
	deltaTTableEnd   = deltaTTableStart + deltaTTableStep*(len(deltaTTable)-1)
)

// DeltaT returns the difference between Dynamical and Universal time,
// TDT - UT, in seconds, for a given DJD. Within 1620-2000 the value is
// interpolated from observations; outside, polynomial fits are used.
//
// For years outside [948, 2100] the returned error wraps ErrOutOfRange
// to flag that the model is an extrapolation there; the value is still
// returned and the error may be ignored.
func DeltaT(djd float64) (float64, error) {
	cd := JulianToCivil(djd)
	year := cd.Year

	var err error
	if year < 948 || year > 2100 {
		err = ErrOutOfRange
	}

	if year >= deltaTTableStart && year < deltaTTableEnd {
		days := 365.0
		if IsLeapYear(year) {
			days = 366
		}
		ye := float64(year) + float64(DayOfYear(year, cd.Month, cd.Day)-1)/days
		k := (ye - deltaTTableStart) / deltaTTableStep
		i := int(math.Floor(k))
		if i < 0 {
			i = 0
		} else if i > len(deltaTTable)-2 {
			i = len(deltaTTable) - 2
		}
		f := k - float64(i)
		return deltaTTable[i] + f*(deltaTTable[i+1]-deltaTTable[i]), err
	}

	t := float64(year-2000) / 100
	switch {
	case year < 948:
		return 2177 + 497*t + 44.1*t*t, err
	case year < 2100 && year >= deltaTTableEnd:
		return 102 + 102*t + 25.3*t*t + 0.37*float64(year-2100), err
	default: // 948 .. 1620 and 2100 onwards
		return 102 + 102*t + 25.3*t*t, err
	}
}
