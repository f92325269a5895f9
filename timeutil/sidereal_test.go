package timeutil

import (
	"math"
	"testing"
)

var siderealCases = []struct {
	djd       float64
	lst       float64
	utc       float64
	ambiguous bool
}{
	{30923.851053, 7.072111, 8.425278, false},  // 1984-08-31.4
	{683.498611, 3.525306, 23.966667, true},    // 1901-11-15.0
	{682.501389, 3.526444, 0.033333, true},     // 1901-11-14.0
	{29332.108931, 4.668119, 14.614353, false}, // 1980-04-22.6
}

func TestDJDToSidereal(t *testing.T) {
	for _, c := range siderealCases {
		got := DJDToSidereal(c.djd, 0)
		if math.Abs(got-c.lst) > 1e-4 {
			t.Errorf("DJDToSidereal(%v) = %v, want %v", c.djd, got, c.lst)
		}
	}
}

func TestSiderealToUTC(t *testing.T) {
	for _, c := range siderealCases {
		utc, ambiguous := SiderealToUTC(c.lst, c.djd, 0)
		if ambiguous != c.ambiguous {
			t.Errorf("SiderealToUTC(%v, %v) ambiguous = %v, want %v", c.lst, c.djd, ambiguous, c.ambiguous)
			continue
		}
		if !ambiguous && math.Abs(utc-c.utc) > 1e-4 {
			t.Errorf("SiderealToUTC(%v, %v) = %v, want %v", c.lst, c.djd, utc, c.utc)
		}
	}
}

func TestSiderealLongitude(t *testing.T) {
	// 15 degrees of longitude is one hour of sidereal time; the
	// longitude is counted west-positive here.
	djd := 30923.851053
	g := DJDToSidereal(djd, 0)
	w := DJDToSidereal(djd, 15)
	diff := math.Mod(g-w+24, 24)
	if math.Abs(diff-1) > 1e-9 {
		t.Errorf("15 deg west should lag GST by 1h, got %v", diff)
	}
}
