package dasha

import (
	"io"
	"math"
	"testing"
	"time"

	"log/slog"

	"github.com/VivXwan/astrology-app/internal/domain"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)), 8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc
}

var testBirthDate = time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)

// depth returns the nesting depth below a period (0 for a leaf).
func depth(p *domain.DashaPeriod) int {
	if len(p.SubPeriods) == 0 {
		return 0
	}
	max := 0
	for _, child := range p.SubPeriods {
		if d := depth(child); d > max {
			max = d
		}
	}
	return max + 1
}

func TestTimelineStartsWithNakshatraLord(t *testing.T) {
	svc := newTestService(t)

	// Moon at 85.5° sits in Punarvasu (index 6), ruled by Jupiter.
	timeline, err := svc.Timeline(testBirthDate, 85.5, 1)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if len(timeline) != 9 {
		t.Fatalf("got %d mahadashas, want 9", len(timeline))
	}

	first := timeline[0]
	if first.Planet != domain.Jupiter {
		t.Errorf("first mahadasha = %s, want %s", first.Planet, domain.Jupiter)
	}
	if first.DurationYears != 16 {
		t.Errorf("first mahadasha years = %f, want 16", first.DurationYears)
	}
	if first.Level != domain.DashaLevelNames[0] {
		t.Errorf("first level = %s, want %s", first.Level, domain.DashaLevelNames[0])
	}

	// 5.5° into the nakshatra: 6.6 of 16 years already elapsed at birth,
	// so the first period starts about 2410.6 days before the birth date.
	wantStart := testBirthDate.Add(-time.Duration(6.6 * 365.2422 * 24 * float64(time.Hour)))
	if gap := first.StartDate.Sub(wantStart); gap > time.Minute || gap < -time.Minute {
		t.Errorf("first mahadasha start = %v, want %v", first.StartDate.Time, wantStart)
	}
}

func TestTimelineCoversFullCycle(t *testing.T) {
	svc := newTestService(t)

	timeline, err := svc.Timeline(testBirthDate, 123.456, 1)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}

	total := 0.0
	for _, p := range timeline {
		total += p.DurationYears
	}
	if math.Abs(total-domain.VimshottariTotalYears) > 1e-6 {
		t.Errorf("total years = %f, want %f", total, float64(domain.VimshottariTotalYears))
	}

	// Periods must be contiguous.
	for i := 1; i < len(timeline); i++ {
		if !timeline[i].StartDate.Equal(timeline[i-1].EndDate.Time) {
			t.Errorf("period %d starts at %v, previous ends at %v",
				i, timeline[i].StartDate.Time, timeline[i-1].EndDate.Time)
		}
	}
}

func TestSubPeriodsSumToParent(t *testing.T) {
	svc := newTestService(t)

	timeline, err := svc.Timeline(testBirthDate, 85.5, 2)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}

	for _, maha := range timeline {
		if len(maha.SubPeriods) != 9 {
			t.Fatalf("%s has %d antardashas, want 9", maha.Planet, len(maha.SubPeriods))
		}

		// The first antardasha is ruled by the mahadasha lord itself.
		if maha.SubPeriods[0].Planet != maha.Planet {
			t.Errorf("%s first antardasha = %s, want %s",
				maha.Planet, maha.SubPeriods[0].Planet, maha.Planet)
		}

		sum := 0.0
		for _, sub := range maha.SubPeriods {
			sum += sub.DurationYears
			if sub.Level != domain.DashaLevelNames[1] {
				t.Errorf("antardasha level = %s, want %s", sub.Level, domain.DashaLevelNames[1])
			}
		}
		if math.Abs(sum-maha.DurationYears) > 1e-9 {
			t.Errorf("%s antardashas sum to %f years, parent has %f",
				maha.Planet, sum, maha.DurationYears)
		}
	}
}

func TestLevelNormalization(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		wantDepth int
	}{
		{"zero falls back to default", 0, 2},
		{"negative falls back to default", -3, 2},
		{"above maximum falls back to default", 7, 2},
		{"level one", 1, 1},
		{"maximum depth", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			timeline, err := svc.Timeline(testBirthDate, 85.5, tt.level)
			if err != nil {
				t.Fatalf("Timeline: %v", err)
			}
			if got := depth(timeline[0]); got != tt.wantDepth {
				t.Errorf("depth = %d, want %d", got, tt.wantDepth)
			}
		})
	}
}

func TestTimelineMemoized(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Timeline(testBirthDate, 85.5, 2)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	second, err := svc.Timeline(testBirthDate, 85.5, 2)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}

	// The memoized slice is shared, not recomputed.
	if first[0] != second[0] {
		t.Error("expected cached timeline to share periods with the first computation")
	}

	// A different level is a different cache entry.
	third, err := svc.Timeline(testBirthDate, 85.5, 3)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if first[0] == third[0] {
		t.Error("different levels must not share cache entries")
	}
}

func TestMoonLongitudeValidation(t *testing.T) {
	svc := newTestService(t)

	for _, lon := range []float64{-0.001, 360, 400} {
		if _, err := svc.Timeline(testBirthDate, lon, 1); err == nil {
			t.Errorf("longitude %f: expected error, got nil", lon)
		}
	}

	// Upper edge just below 360 maps to Revati and is valid.
	if _, err := svc.Timeline(testBirthDate, 359.999999, 1); err != nil {
		t.Errorf("longitude 359.999999: %v", err)
	}
}
