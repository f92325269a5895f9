package astrokit

import (
	"testing"
	"time"
)

func TestMoonPhaseAtFull(t *testing.T) {
	// Full moon of 2025 May 12, 16:56 UTC.
	tm := time.Date(2025, 5, 12, 16, 56, 0, 0, time.UTC)
	phase, err := MoonPhaseAt(tm)
	if err != nil {
		t.Fatal(err)
	}
	if phase.Fraction < 0.99 {
		t.Errorf("Fraction = %v, want close to 1", phase.Fraction)
	}
	if phase.Elongation < 170 {
		t.Errorf("Elongation = %v, want close to 180", phase.Elongation)
	}
	if phase.Name != "Full Moon" {
		t.Errorf("Name = %q", phase.Name)
	}
}

func TestMoonPhaseAtNew(t *testing.T) {
	// New moon of 2024 April 8, 18:21 UTC (total solar eclipse).
	tm := time.Date(2024, 4, 8, 18, 21, 0, 0, time.UTC)
	phase, err := MoonPhaseAt(tm)
	if err != nil {
		t.Fatal(err)
	}
	if phase.Fraction > 0.01 {
		t.Errorf("Fraction = %v, want close to 0", phase.Fraction)
	}
	if phase.Name != "New Moon" {
		t.Errorf("Name = %q", phase.Name)
	}
}

func TestMoonPhaseAtFirstQuarter(t *testing.T) {
	// First quarter of 2024 April 15, 19:13 UTC.
	tm := time.Date(2024, 4, 15, 19, 13, 0, 0, time.UTC)
	phase, err := MoonPhaseAt(tm)
	if err != nil {
		t.Fatal(err)
	}
	if !phase.Waxing {
		t.Error("want waxing")
	}
	if phase.Name != "First Quarter" {
		t.Errorf("Name = %q (fraction %v)", phase.Name, phase.Fraction)
	}
}

func TestMoonPhaseAtWaningGibbous(t *testing.T) {
	// Four days past the full moon of 2024 April 23.
	tm := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)
	phase, err := MoonPhaseAt(tm)
	if err != nil {
		t.Fatal(err)
	}
	if phase.Waxing {
		t.Error("want waning")
	}
	if phase.Fraction < 0.55 || phase.Fraction > 0.97 {
		t.Errorf("Fraction = %v, want gibbous range", phase.Fraction)
	}
	if phase.Name != "Waning Gibbous" {
		t.Errorf("Name = %q", phase.Name)
	}
}

func TestMoonPhaseKeepsTime(t *testing.T) {
	loc := time.FixedZone("MST", -7*3600)
	tm := time.Date(2025, 5, 12, 0, 0, 0, 0, loc)
	phase, err := MoonPhaseAt(tm)
	if err != nil {
		t.Fatal(err)
	}
	if !phase.Time.Equal(tm) {
		t.Errorf("Time = %v, want %v", phase.Time, tm)
	}
}
