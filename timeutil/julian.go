// Package timeutil converts between civil dates and astronomical day
// numbers, and provides sidereal time and the Delta-T correction.
//
// The day number used throughout is the DJD: days elapsed since mean UT
// noon of 1900 January 0 (1899 December 31.5). For better precision
// around the 20th century this epoch is preferable to the standard
// Julian date; the two differ by the constant DJDToJD:
//
//	jd = djd + DJDToJD
//
// Years are counted astronomically: year 0 is 1 BC, year -1 is 2 BC.
// Dates before 1582 October 15 are interpreted in the Julian calendar,
// later dates in the Gregorian calendar.
package timeutil

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/thurmanmarka/astrokit/mathutil"
)

const (
	// DJDToJD is the difference in days between the DJD epoch and the
	// standard Julian date epoch.
	DJDToJD = 2415020

	// DaysPerCent is the number of days in a Julian century.
	DaysPerCent = 36525
)

// ErrInvalidDate is returned for calendar dates that do not exist:
// month out of range, day out of range for the month, or a date
// removed by the Gregorian calendar reform (1582 October 5-14).
var ErrInvalidDate = errors.New("invalid calendar date")

// CivilDate is a calendar date. Day carries the time of day as its
// fractional part; day 0 is allowed and denotes the last day of the
// previous month (so {1900, 1, 0.5} is the DJD epoch itself).
type CivilDate struct {
	Year  int     // astronomical numbering, 0 = 1 BC
	Month int     // 1 - 12
	Day   float64 // with hours as fractional part
}

// Gregorian calendar introduction date.
const (
	gregYear  = 1582
	gregMonth = 10
	gregDay   = 15
)

// afterGregorian reports whether the date falls on or after the
// introduction of the Gregorian calendar.
func afterGregorian(year, month int, day float64) bool {
	if year != gregYear {
		return year > gregYear
	}
	if month != gregMonth {
		return month > gregMonth
	}
	return day >= gregDay
}

// monthLength returns the number of days in a month, honouring the
// calendar in force at the time (Julian leap rule before the reform).
func monthLength(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		leap := year%4 == 0
		if year > gregYear {
			leap = IsLeapYear(year)
		}
		if leap {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// CivilToJulian converts a calendar date to the number of Julian days
// elapsed since 1900 January 0.5. The date is validated: month must be
// in 1..12, day in [0, monthLength+1), and dates removed by the
// Gregorian reform (1582 October 5-14) are rejected.
func CivilToJulian(d CivilDate) (float64, error) {
	if d.Month < 1 || d.Month > 12 {
		return 0, fmt.Errorf("%w: month %d", ErrInvalidDate, d.Month)
	}
	if d.Day < 0 || d.Day >= float64(monthLength(d.Year, d.Month)+1) {
		return 0, fmt.Errorf("%w: day %v of month %d", ErrInvalidDate, d.Day, d.Month)
	}
	if d.Year == gregYear && d.Month == gregMonth && d.Day >= 5 && d.Day < 15 {
		return 0, fmt.Errorf("%w: %v October 1582 was dropped by the calendar reform", ErrInvalidDate, d.Day)
	}
	return julDay(d.Year, d.Month, d.Day), nil
}

// julDay is the conversion core, without validation.
func julDay(year, month int, day float64) float64 {
	y := year
	m := month
	if month < 3 {
		m += 12
		y--
	}

	var b float64
	if afterGregorian(year, month, day) {
		a := math.Trunc(float64(y) / 100)
		b = 2 - a + math.Trunc(a/4)
	}

	f := 365.25 * float64(y)
	if y < 0 {
		f -= 0.75
	}
	c := math.Trunc(f) - 694025
	e := math.Trunc(30.6001 * float64(m+1))
	return b + c + e + day - 0.5
}

// JulianToCivil converts a DJD back to a calendar date.
func JulianToCivil(djd float64) CivilDate {
	d := djd + 0.5
	i, f := math.Modf(d)

	if i > -115860 { // 1582 October 15 and later
		a := math.Floor(i/36524.25+9.9835726e-1) + 14
		i += 1 + a - math.Floor(a/4)
	}

	b := math.Floor(i/365.25 + 8.02601e-1)
	c := i - math.Floor(365.25*b+7.50001e-1) + 416
	g := math.Floor(c / 30.6001)
	da := c - math.Floor(30.6001*g) + f
	mo := int(g) - 1
	if g > 13.5 {
		mo = int(g) - 13
	}
	ye := int(b) + 1899
	if mo < 3 {
		ye++
	}

	return CivilDate{Year: ye, Month: mo, Day: da}
}

// DJDMidnight returns the DJD of the preceding Greenwich midnight.
func DJDMidnight(djd float64) float64 {
	f := math.Floor(djd)
	if math.Abs(djd-f) >= 0.5 {
		return f + 0.5
	}
	return f - 0.5
}

// Weekday returns the day of the week for a given DJD.
func Weekday(djd float64) time.Weekday {
	d0 := DJDMidnight(djd)
	j0 := d0 + DJDToJD
	return time.Weekday(int(mathutil.ToRange(j0+1.5, 7)))
}

// IsLeapYear reports whether a year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DayOfYear returns the ordinal number of a Gregorian date within its
// year (1 .. 366).
func DayOfYear(year, month int, day float64) int {
	k := 2
	if IsLeapYear(year) {
		k = 1
	}
	a := math.Floor(275 * float64(month) / 9)
	b := math.Floor(float64(k) * (float64(month) + 9) / 12.0)
	return int(a-b+math.Floor(day)) - 30
}

// DJDZero returns the DJD of January 0.0 of a given year, that is,
// Greenwich midnight ending the previous civil year.
func DJDZero(year int) float64 {
	y := float64(year - 1)
	a := math.Trunc(y / 100)
	return math.Trunc(365.25*y) - a + math.Trunc(a/4) - 693595.5
}

// FromTime converts a time.Time to DJD. The instant is taken in UTC.
// time.Time uses the proleptic Gregorian calendar, so results for dates
// before the 1582 reform differ from CivilToJulian on a Julian-calendar
// date.
func FromTime(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()
	h := float64(u.Hour()) +
		float64(u.Minute())/60 +
		float64(u.Second())/3600 +
		float64(u.Nanosecond())/(3600*1e9)
	return julDay(year, int(month), float64(day)+h/24)
}

// ToTime converts a DJD to a time.Time in UTC. Useful for the Gregorian
// era; see FromTime for the calendar caveat.
func ToTime(djd float64) time.Time {
	d := JulianToCivil(djd)
	day, f := math.Modf(d.Day)
	ho, mi, se := mathutil.Dms(f * 24)
	s, sf := math.Modf(se)
	ns := sf * 1e9
	return time.Date(d.Year, time.Month(d.Month), int(day), ho, mi, int(s), int(ns), time.UTC)
}
