package planetary

import (
	"io"
	"math"
	"testing"
	"time"

	"log/slog"

	"github.com/VivXwan/astrology-app/internal/domain"
	"github.com/VivXwan/astrology-app/internal/ports/ephemeris"
)

// fakeEngine deterministic ephemeris stub with tropical longitudes per body.
type fakeEngine struct {
	ayanamsa  float64
	ascendant float64
	bodies    map[ephemeris.Body]ephemeris.BodyPosition
}

func (f *fakeEngine) JulianDay(year, month, day int, hourUT float64) float64 {
	return float64(year*10000+month*100+day) + hourUT/24
}

func (f *fakeEngine) Ayanamsa(jd float64, mode domain.AyanamsaMode) (float64, error) {
	return f.ayanamsa, nil
}

func (f *fakeEngine) Houses(jd, latitude, longitude float64) (*ephemeris.HousePositions, error) {
	pos := &ephemeris.HousePositions{
		Ascendant: f.ascendant,
		Midheaven: math.Mod(f.ascendant+270, 360),
	}
	for i := range pos.Cusps {
		pos.Cusps[i] = math.Mod(f.ascendant+float64(i)*30, 360)
	}
	return pos, nil
}

func (f *fakeEngine) Body(jd float64, body ephemeris.Body) (*ephemeris.BodyPosition, error) {
	pos, ok := f.bodies[body]
	if !ok {
		pos = ephemeris.BodyPosition{Longitude: 15 * float64(body), LongitudeSpeed: 1}
	}
	return &pos, nil
}

func (f *fakeEngine) Close() error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(eng *fakeEngine) *Service {
	return New(eng, testLogger())
}

func TestNatalContainsAllBodies(t *testing.T) {
	svc := newService(&fakeEngine{ayanamsa: 24, ascendant: 100})

	k, err := svc.Natal(2448000.5, 28.6, 77.2, domain.AyanamsaTrueChitra)
	if err != nil {
		t.Fatalf("Natal: %v", err)
	}

	if len(k.Planets) != 10 {
		t.Fatalf("got %d bodies, want 10", len(k.Planets))
	}
	for _, name := range domain.ChartBodies {
		pos, ok := k.Planets[name]
		if !ok {
			t.Fatalf("missing body %s", name)
		}
		if pos.Longitude < 0 || pos.Longitude >= 360 {
			t.Errorf("%s longitude %f outside [0, 360)", name, pos.Longitude)
		}
		if pos.Pada < 1 || pos.Pada > 4 {
			t.Errorf("%s pada %d outside [1, 4]", name, pos.Pada)
		}
	}
}

func TestAyanamsaAppliedToWholeChart(t *testing.T) {
	eng := &fakeEngine{
		ayanamsa:  24,
		ascendant: 100,
		bodies: map[ephemeris.Body]ephemeris.BodyPosition{
			ephemeris.Sun: {Longitude: 50, LongitudeSpeed: 1},
		},
	}
	svc := newService(eng)

	k, err := svc.Natal(2448000.5, 28.6, 77.2, domain.AyanamsaLahiri)
	if err != nil {
		t.Fatalf("Natal: %v", err)
	}

	if got := k.Planets[domain.Sun].Longitude; math.Abs(got-26) > 1e-9 {
		t.Errorf("Sun sidereal longitude = %f, want 26", got)
	}
	if got := k.Ascendant.Longitude; math.Abs(got-76) > 1e-9 {
		t.Errorf("sidereal ascendant = %f, want 76", got)
	}
	for i, cusp := range k.HouseCusps {
		want := domain.Norm360(100 + float64(i)*30 - 24)
		if math.Abs(cusp-want) > 1e-9 {
			t.Errorf("house cusp %d = %f, want %f", i+1, cusp, want)
		}
	}
	if k.Ayanamsa != 24 {
		t.Errorf("Ayanamsa = %f, want 24", k.Ayanamsa)
	}
	if k.AyanamsaType != string(domain.AyanamsaLahiri) {
		t.Errorf("AyanamsaType = %q, want %q", k.AyanamsaType, domain.AyanamsaLahiri)
	}
}

func TestKetuOppositeRahu(t *testing.T) {
	eng := &fakeEngine{
		ayanamsa:  20,
		ascendant: 10,
		bodies: map[ephemeris.Body]ephemeris.BodyPosition{
			ephemeris.TrueNode: {Longitude: 300, LongitudeSpeed: -0.05},
		},
	}
	svc := newService(eng)

	k, err := svc.Natal(2448000.5, 28.6, 77.2, domain.AyanamsaTrueChitra)
	if err != nil {
		t.Fatalf("Natal: %v", err)
	}

	rahu := k.Planets[domain.Rahu]
	ketu := k.Planets[domain.Ketu]

	want := domain.Norm360(rahu.Longitude + 180)
	if math.Abs(ketu.Longitude-want) > 1e-9 {
		t.Errorf("Ketu longitude = %f, want %f (Rahu + 180)", ketu.Longitude, want)
	}
	if !rahu.Retrograde {
		t.Error("Rahu with negative speed should be retrograde")
	}
	if !ketu.Retrograde {
		t.Error("Ketu must always be retrograde")
	}
}

func TestLagnaNeverRetrograde(t *testing.T) {
	svc := newService(&fakeEngine{ayanamsa: 24, ascendant: 350})

	k, err := svc.Natal(2448000.5, 28.6, 77.2, domain.AyanamsaTrueChitra)
	if err != nil {
		t.Fatalf("Natal: %v", err)
	}

	lagna := k.Planets[domain.Lagna]
	if lagna.Retrograde {
		t.Error("Lagna must never be retrograde")
	}
	if lagna.House != 1 {
		t.Errorf("Lagna house = %d, want 1", lagna.House)
	}
}

func TestHousesRelativeToLagnaSign(t *testing.T) {
	// Sidereal ascendant 76 -> Gemini (sign 2). Sun at sidereal 26 -> Aries (sign 0).
	eng := &fakeEngine{
		ayanamsa:  24,
		ascendant: 100,
		bodies: map[ephemeris.Body]ephemeris.BodyPosition{
			ephemeris.Sun: {Longitude: 50, LongitudeSpeed: 1},
		},
	}
	svc := newService(eng)

	k, err := svc.Natal(2448000.5, 28.6, 77.2, domain.AyanamsaTrueChitra)
	if err != nil {
		t.Fatalf("Natal: %v", err)
	}

	// Aries is 11 signs ahead of Gemini counting from the ascendant: house 11.
	if got := k.Planets[domain.Sun].House; got != 11 {
		t.Errorf("Sun house = %d, want 11", got)
	}
}

func TestNakshatraAndPadaBoundaries(t *testing.T) {
	tests := []struct {
		name         string
		siderealLon  float64
		wantNakIdx   int
		wantPada     int
		wantSignIdx  int
	}{
		{"zero point", 0, 0, 1, 0},
		{"end of first pada", 3.3, 0, 1, 0},
		{"start of second pada", 3.34, 0, 2, 0},
		{"second nakshatra", 13.4, 1, 1, 0},
		{"last nakshatra", 359.9, 26, 4, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := &fakeEngine{
				ayanamsa:  0,
				ascendant: 10,
				bodies: map[ephemeris.Body]ephemeris.BodyPosition{
					ephemeris.Moon: {Longitude: tt.siderealLon, LongitudeSpeed: 13},
				},
			}
			k, err := newService(eng).Natal(2448000.5, 28.6, 77.2, domain.AyanamsaTrueChitra)
			if err != nil {
				t.Fatalf("Natal: %v", err)
			}
			moon := k.Planets[domain.Moon]
			if moon.NakshatraIndex != tt.wantNakIdx {
				t.Errorf("nakshatra index = %d, want %d", moon.NakshatraIndex, tt.wantNakIdx)
			}
			if moon.Pada != tt.wantPada {
				t.Errorf("pada = %d, want %d", moon.Pada, tt.wantPada)
			}
			if moon.SignIndex != tt.wantSignIdx {
				t.Errorf("sign index = %d, want %d", moon.SignIndex, tt.wantSignIdx)
			}
		})
	}
}

func TestKundaliAtSetsTransitDate(t *testing.T) {
	svc := newService(&fakeEngine{ayanamsa: 24, ascendant: 100})

	at := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
	k, err := svc.KundaliAt(at, 28.6, 77.2, domain.AyanamsaTrueChitra)
	if err != nil {
		t.Fatalf("KundaliAt: %v", err)
	}
	if k.TransitDate != "2024-03-15 18:30:00" {
		t.Errorf("TransitDate = %q, want %q", k.TransitDate, "2024-03-15 18:30:00")
	}
}
