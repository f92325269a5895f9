package timeutil

import "github.com/thurmanmarka/astrokit/mathutil"

// Ratio of the mean solar day to the sidereal day.
const sidRate = 0.9972695677

// Sidereal times within about 4 minutes either side of midnight occur
// twice on the same calendar date; conversions landing in that window
// are flagged as ambiguous.
const ambigDelta = 6.552e-2

// tnaught returns the sidereal time at Greenwich midnight, in hours.
func tnaught(djd float64) float64 {
	year := JulianToCivil(djd).Year
	dj0 := julDay(year, 1, 0)
	t := dj0 / 36525
	return 6.57098e-2*(djd-dj0) -
		(24 - (6.6460656 + (5.1262e-2+t*2.581e-5)*t) -
			2400*(t-float64(year-1900)/100))
}

// DJDToSidereal converts civil time to local mean sidereal time, in
// hours. lng is the geographic longitude in degrees, negative eastwards
// (the classical navigation convention).
func DJDToSidereal(djd, lng float64) float64 {
	djm := DJDMidnight(djd)
	utc := (djd - djm) * 24
	t0 := tnaught(djm)
	gst := utc/sidRate + t0
	return mathutil.ToRange(gst-lng/15, 24)
}

// SiderealToUTC converts local mean sidereal time, in hours, to UTC
// hours on the calendar date containing djd. lng is the geographic
// longitude in degrees, negative eastwards.
//
// The ambiguous flag is true when the result falls in the roughly
// 4-minute window after midnight that occurs twice on the same date; in
// that case the caller must resolve the ambiguity by other means.
func SiderealToUTC(lst, djd, lng float64) (utc float64, ambiguous bool) {
	djm := DJDMidnight(djd)
	t0 := mathutil.ToRange(tnaught(djm), 24)
	gst := lst + lng/15
	utc = mathutil.ToRange(gst-t0, 24) * sidRate
	return utc, utc < ambigDelta
}
