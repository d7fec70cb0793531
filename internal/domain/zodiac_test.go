package domain

import "testing"

func TestParseAyanamsaMode(t *testing.T) {
	tests := []struct {
		in   string
		want AyanamsaMode
	}{
		{"lahiri", AyanamsaLahiri},
		{"LAHIRI", AyanamsaLahiri},
		{"raman", AyanamsaRaman},
		{"krishnamurti", AyanamsaKrishnamurti},
		{"true_chitra", AyanamsaTrueChitra},
		{"", AyanamsaTrueChitra},
		{"bogus", AyanamsaTrueChitra},
	}

	for _, tt := range tests {
		if got := ParseAyanamsaMode(tt.in); got != tt.want {
			t.Errorf("ParseAyanamsaMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestNorm360(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{360, 0},
		{361.5, 1.5},
		{-1, 359},
		{-360, 0},
		{725, 5},
	}

	for _, tt := range tests {
		if got := Norm360(tt.in); got != tt.want {
			t.Errorf("Norm360(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestFormatDMS(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, `0° 0' 0"`},
		{13.0827, `13° 4' 57"`},
		{29.999, `29° 59' 56"`},
	}

	for _, tt := range tests {
		if got := FormatDMS(tt.in); got != tt.want {
			t.Errorf("FormatDMS(%f) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestBirthInputValidateRounds(t *testing.T) {
	b := BirthInput{
		Year: 1990, Month: 5, Day: 15,
		Hour: 12.345678, Minute: 30, Second: 0,
		Latitude: 13.08270001, Longitude: 80.27069999,
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if b.Hour != 12.35 {
		t.Errorf("Hour = %v, want 12.35", b.Hour)
	}
	if b.Latitude != 13.0827 {
		t.Errorf("Latitude = %v, want 13.0827", b.Latitude)
	}
	if b.Longitude != 80.2707 {
		t.Errorf("Longitude = %v, want 80.2707", b.Longitude)
	}
}

// Rounding happens before the range checks: a value that only crosses the
// limit after rounding must still be rejected.
func TestBirthInputValidateRoundsBeforeRangeCheck(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BirthInput)
		wantErr bool
	}{
		{"hour 23.999 rounds to 24", func(b *BirthInput) { b.Hour = 23.999 }, true},
		{"hour 23.989 rounds to 23.99", func(b *BirthInput) { b.Hour = 23.989 }, false},
		{"minute 59.999 rounds to 60", func(b *BirthInput) { b.Minute = 59.999 }, true},
		{"second 59.999 rounds to 60", func(b *BirthInput) { b.Second = 59.999 }, true},
		{"latitude 90.0000001 rounds to 90", func(b *BirthInput) { b.Latitude = 90.0000001 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BirthInput{
				Year: 1990, Month: 5, Day: 15,
				Hour: 12, Minute: 30, Second: 0,
				Latitude: 13.0827, Longitude: 80.2707,
			}
			tt.mutate(&b)

			err := b.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("Validate accepted out-of-range value after rounding")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate rejected in-range value: %v", err)
			}
		})
	}
}
