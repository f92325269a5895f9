package planets

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// 1984 January 21, DJD 30700.5.
const (
	testDJD = 30700.5
	testT   = 0.8405338809034908
)

func TestTermsAssemble(t *testing.T) {
	got := Terms{75.899697, 1.5554889, 0.0002947}.Assemble(testT)
	want := 77.2073463265456
	if math.Abs(got-want) > 1e-11 {
		t.Errorf("Assemble = %v, want %v", got, want)
	}
}

func TestMLTermsAssemble(t *testing.T) {
	got := MLTerms{178.179078, 415.2057519, 0.0003011}.Assemble(testT)
	want := 176.2000171915306
	if math.Abs(got-want) > 1e-11 {
		t.Errorf("Assemble = %v, want %v", got, want)
	}
}

func TestInstantiate(t *testing.T) {
	got := ForID(Mercury).Orbit.Instantiate(testT)
	want := OrbitInstance{
		Perihelion:    1.34752240012577,
		Eccentricity:  0.20563138612828713,
		MeanNode:      0.8402412010285969,
		Inclination:   0.12225040301524157,
		MajorSemiaxis: 0.3870986,
		MeanAnomaly:   1.7277480419370512,
		DailyMotion:   0.07142545459475612,
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-11)); diff != "" {
		t.Errorf("orbit instance mismatch (-want +got):\n%s", diff)
	}
}

func TestHeliocentric(t *testing.T) {
	oi := OrbitInstance{
		Perihelion:    1.34752240012577,
		Eccentricity:  0.20563138612828713,
		MeanNode:      0.8402412010285969,
		Inclination:   0.12225040301524157,
		MajorSemiaxis: 0.3870986,
		MeanAnomaly:   1.7277480419370512,
		DailyMotion:   0.07142545459475612,
	}
	pert := PertRecord{DL: -0.001369031774972449, DR: -0.000013447032242762032}
	h, err := heliocentric(oi, 1.7277480419370512, 0.9839698373786032, 8.379862816965847, pert)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name      string
		got, want float64
	}{
		{"ll", h.ll, -4.920247322912694},
		{"rpd", h.rpd, 0.4136118768849629},
		{"lpd", h.lpd, 3.459615494053153},
		{"spsi", h.spsi, 0.06116731001819705},
		{"cpsi", h.cpsi, 0.9981275270150292},
		{"rho", h.rho, 0.9858704400566043},
	}
	for _, c := range cases {
		if math.Abs(c.got-c.want) > 1e-11 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestNewContext(t *testing.T) {
	ctx, err := NewContext(testDJD, true)
	if err != nil {
		t.Fatal(err)
	}
	const delta = 1e-11
	if math.Abs(ctx.T-testT) > delta {
		t.Errorf("T = %v, want %v", ctx.T, testT)
	}
	if math.Abs(ctx.SunGeo.Phi-300.1307723107521) > delta {
		t.Errorf("SunGeo.Phi = %v", ctx.SunGeo.Phi)
	}
	if math.Abs(ctx.SunGeo.Rho-0.9839698373786032) > delta {
		t.Errorf("SunGeo.Rho = %v", ctx.SunGeo.Rho)
	}
	wantMS := 16.89671827974547 * math.Pi / 180
	if math.Abs(ctx.SunMeanAnomaly-wantMS) > delta {
		t.Errorf("SunMeanAnomaly = %v, want %v", ctx.SunMeanAnomaly, wantMS)
	}
	if math.Abs(ctx.Nutation.DPsi - -0.004176852920102668) > 1e-11 {
		t.Errorf("Nutation.DPsi = %v", ctx.Nutation.DPsi)
	}
	if math.Abs(ctx.Nutation.DEps-0.0006849657311651972) > 1e-11 {
		t.Errorf("Nutation.DEps = %v", ctx.Nutation.DEps)
	}
	if math.Abs(ctx.Obliquity-23.442041099302447) > 1e-11 {
		t.Errorf("Obliquity = %v", ctx.Obliquity)
	}
}

func TestContextMeanAnomalies(t *testing.T) {
	ctx, err := NewContext(testDJD, true)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		id   ID
		want float64
	}{
		{Mercury, 1.7277480419370512},
		{Venus, 1.3753354318768864},
		{Mars, 3.616595436914378},
		{Jupiter, 4.469600429159891},
		{Saturn, 2.133162332104278},
		{Uranus, 1.2691334849854374},
		{Neptune, 3.863368991888066},
		{Pluto, 6.138953042601936},
	}
	for _, c := range cases {
		if got := ctx.MeanAnomaly(c.id, 0); math.Abs(got-c.want) > 1e-11 {
			t.Errorf("%v: MeanAnomaly = %v, want %v", c.id, got, c.want)
		}
	}
}

func TestGeocentricPosition(t *testing.T) {
	ctx, err := NewContext(testDJD, false)
	if err != nil {
		t.Fatal(err)
	}
	const delta = 1e-4
	cases := []struct {
		id                 ID
		lambda, beta, dist float64
	}{
		{Mercury, 275.88530, 1.47425, 0.98587},
		{Venus, 264.15699, 1.42582, 1.22905},
		{Mars, 214.98173, 1.67762, 1.41366},
		{Jupiter, 270.30024, 0.29758, 6.10966},
		{Saturn, 225.37862, 2.33550, 10.04942},
		{Uranus, 252.17354, 0.05160, 19.63393},
		{Neptune, 270.07638, 1.16314, 31.11160},
		{Pluto, 212.07989, 16.88244, 29.86118},
	}
	for _, c := range cases {
		pos, err := ForID(c.id).GeocentricPosition(ctx)
		if err != nil {
			t.Fatalf("%v: %v", c.id, err)
		}
		if math.Abs(pos.Lambda-c.lambda) > delta {
			t.Errorf("%v: Lambda = %v, want %v", c.id, pos.Lambda, c.lambda)
		}
		if math.Abs(pos.Beta-c.beta) > delta {
			t.Errorf("%v: Beta = %v, want %v", c.id, pos.Beta, c.beta)
		}
		if math.Abs(pos.Delta-c.dist) > delta {
			t.Errorf("%v: Delta = %v, want %v", c.id, pos.Delta, c.dist)
		}
	}
}

func TestPerturbationsWired(t *testing.T) {
	for _, id := range All() {
		if ForID(id).pert == nil {
			t.Errorf("%v has no perturbation function", id)
		}
	}
}

func TestAll(t *testing.T) {
	ids := All()
	if len(ids) != numPlanets {
		t.Fatalf("len = %d", len(ids))
	}
	if ids[0] != Mercury || ids[numPlanets-1] != Pluto {
		t.Errorf("unexpected order: %v", ids)
	}
}
