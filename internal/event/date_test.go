package event

import (
	"testing"
	"time"
)

func TestParseDayDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
		ok    bool
	}{
		{"01/03/2024", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"31/12/2025", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), true},
		{" 15/06/2024 ", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"2024-03-01", time.Time{}, false},
		{"32/01/2024", time.Time{}, false},
		{"01/13/2024", time.Time{}, false},
		{"TBC", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDayDate(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseDayDate(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseDayDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseInstant(t *testing.T) {
	utc9 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{"2024-03-01T09:00:00Z", utc9, false},
		{"2024-03-01T09:00:00+00:00", utc9, false},
		{"2024-03-01T10:00:00+01:00", utc9, false},
		{"2024-03-01T09:00:00", utc9, false}, // no offset: assumed UTC
		{"2024-03-01T09:00", utc9, false},
		{"01/03/2024", time.Time{}, true},
		{"not a timestamp", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInstant(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInstant(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseInstant(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("ParseInstant(%q) location = %v, want UTC", tt.input, got.Location())
			}
		})
	}
}

func TestParseInstant_EquivalentOffsets(t *testing.T) {
	// Z and +00:00 must normalize to the identical instant.
	a, err := ParseInstant("2024-03-01T09:00:00Z")
	if err != nil {
		t.Fatalf("parsing Z form: %v", err)
	}
	b, err := ParseInstant("2024-03-01T09:00:00+00:00")
	if err != nil {
		t.Fatalf("parsing offset form: %v", err)
	}
	if !a.Equal(b) {
		t.Errorf("Z form %v != offset form %v", a, b)
	}
}
