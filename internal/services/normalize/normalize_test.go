package normalize

import (
	"testing"

	"github.com/VivXwan/astrology-app/internal/domain"
)

func birth(year, month, day int, hour, minute, second float64) domain.BirthInput {
	return domain.BirthInput{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second,
		Latitude: 28.6139, Longitude: 77.2090,
	}
}

func TestSanitizeShiftsToUTC(t *testing.T) {
	tests := []struct {
		name     string
		birth    domain.BirthInput
		tzOffset float64
		wantDate [3]int     // year, month, day
		wantTime [3]float64 // hour, minute, second
	}{
		{
			name:     "positive offset moves time back",
			birth:    birth(1990, 6, 15, 10, 30, 0),
			tzOffset: 5.5,
			wantDate: [3]int{1990, 6, 15},
			wantTime: [3]float64{5, 0, 0},
		},
		{
			name:     "offset crosses day boundary backwards",
			birth:    birth(2000, 1, 1, 2, 0, 0),
			tzOffset: 5.5,
			wantDate: [3]int{1999, 12, 31},
			wantTime: [3]float64{20, 30, 0},
		},
		{
			name:     "negative offset moves time forward across day",
			birth:    birth(1999, 12, 31, 22, 0, 0),
			tzOffset: -5,
			wantDate: [3]int{2000, 1, 1},
			wantTime: [3]float64{3, 0, 0},
		},
		{
			name:     "zero offset keeps civil time",
			birth:    birth(1985, 3, 21, 12, 15, 30),
			tzOffset: 0,
			wantDate: [3]int{1985, 3, 21},
			wantTime: [3]float64{12, 15, 30},
		},
		{
			name:     "45 minute offset",
			birth:    birth(1990, 6, 15, 1, 0, 0),
			tzOffset: 5.75,
			wantDate: [3]int{1990, 6, 14},
			wantTime: [3]float64{19, 15, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Sanitize(tt.birth, tt.tzOffset)
			if err != nil {
				t.Fatalf("Sanitize: %v", err)
			}
			utc := res.UTC
			if utc.Year != tt.wantDate[0] || utc.Month != tt.wantDate[1] || utc.Day != tt.wantDate[2] {
				t.Errorf("date = %d-%02d-%02d, want %d-%02d-%02d",
					utc.Year, utc.Month, utc.Day, tt.wantDate[0], tt.wantDate[1], tt.wantDate[2])
			}
			if utc.Hour != tt.wantTime[0] || utc.Minute != tt.wantTime[1] || utc.Second != tt.wantTime[2] {
				t.Errorf("time = %v:%v:%v, want %v:%v:%v",
					utc.Hour, utc.Minute, utc.Second, tt.wantTime[0], tt.wantTime[1], tt.wantTime[2])
			}
		})
	}
}

func TestSanitizeTruncatesFractionalTime(t *testing.T) {
	b := birth(1990, 6, 15, 10.9, 30.7, 45.2)
	res, err := Sanitize(b, 0)
	if err != nil {
		t.Fatalf("Sanitize: %v", err)
	}
	// Fractional parts are dropped to whole units before conversion.
	if res.UTC.Hour != 10 || res.UTC.Minute != 30 || res.UTC.Second != 45 {
		t.Errorf("UTC time = %v:%v:%v, want 10:30:45", res.UTC.Hour, res.UTC.Minute, res.UTC.Second)
	}
}

func TestSanitizeKeepsOriginal(t *testing.T) {
	b := birth(1990, 6, 15, 10, 30, 0)
	res, err := Sanitize(b, 5.5)
	if err != nil {
		t.Fatalf("Sanitize: %v", err)
	}
	if res.Original.Hour != 10 || res.Original.Minute != 30 {
		t.Errorf("original time mutated: %v:%v", res.Original.Hour, res.Original.Minute)
	}
	if res.TzOffset != 5.5 {
		t.Errorf("TzOffset = %v, want 5.5", res.TzOffset)
	}
}

func TestSanitizeValidation(t *testing.T) {
	tests := []struct {
		name     string
		birth    domain.BirthInput
		tzOffset float64
	}{
		{"offset above range", birth(1990, 6, 15, 10, 0, 0), 14.5},
		{"offset below range", birth(1990, 6, 15, 10, 0, 0), -12.5},
		{"invalid calendar date", birth(1990, 2, 31, 10, 0, 0), 0},
		{"month out of range", birth(1990, 13, 1, 10, 0, 0), 0},
		{"hour out of range", birth(1990, 6, 15, 24, 0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sanitize(tt.birth, tt.tzOffset)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !domain.IsValidationError(err) {
				t.Errorf("expected ValidationError, got %T: %v", err, err)
			}
		})
	}
}

func TestSanitizeLeapDay(t *testing.T) {
	if _, err := Sanitize(birth(2000, 2, 29, 0, 0, 0), 0); err != nil {
		t.Errorf("2000-02-29 should be valid: %v", err)
	}
	if _, err := Sanitize(birth(1900, 2, 29, 0, 0, 0), 0); err == nil {
		t.Error("1900-02-29 should be rejected")
	}
}
