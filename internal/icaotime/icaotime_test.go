package icaotime

import (
	"testing"
	"time"
)

var now = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		field     Field
		want      time.Time
		wantNil   bool
		permanent bool
	}{
		{"start", "2501151200", Start, time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), false, false},
		{"end", "2501151800", End, time.Date(2025, 1, 15, 18, 0, 0, 0, time.UTC), false, false},
		{"surrounding space", "  2512312359 ", End, time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC), false, false},
		{"leap day", "2402290000", Start, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), false, false},
		{"far future shifts back", "9901010000", Start, time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC), false, false},
		{"within window stays", "7501010000", Start, time.Date(2075, 1, 1, 0, 0, 0, 0, time.UTC), false, false},
		{"month 13", "2513010000", Start, time.Time{}, true, false},
		{"feb 30", "2502300000", Start, time.Time{}, true, false},
		{"hour 24", "2501152400", Start, time.Time{}, true, false},
		{"minute 60", "2501151260", Start, time.Time{}, true, false},
		{"month zero", "2500150000", Start, time.Time{}, true, false},
		{"too short", "250115120", Start, time.Time{}, true, false},
		{"too long", "25011512000", Start, time.Time{}, true, false},
		{"letters", "25O1151200", Start, time.Time{}, true, false},
		{"empty", "", Start, time.Time{}, true, false},
		{"estimated suffix", "2501151200EST", End, time.Time{}, true, false},
		{"perm on start", "PERM", Start, time.Time{}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.value, tt.field, now)
			if got.Permanent != tt.permanent {
				t.Errorf("Permanent = %t, want %t", got.Permanent, tt.permanent)
			}
			if tt.wantNil {
				if got.Time != nil {
					t.Errorf("Parse(%q) = %v, want nil", tt.value, got.Time)
				}
				return
			}
			if got.Time == nil {
				t.Fatalf("Parse(%q) = nil, want %v", tt.value, tt.want)
			}
			if !got.Time.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.value, got.Time, tt.want)
			}
		})
	}
}

func TestParsePermanent(t *testing.T) {
	for _, v := range []string{"PERM", "perm", " Permanent "} {
		got := Parse(v, End, now)
		if !got.Permanent {
			t.Errorf("Parse(%q).Permanent = false", v)
			continue
		}
		if got.Time == nil {
			t.Fatalf("Parse(%q).Time = nil", v)
		}
		want := now.AddDate(10, 0, 0)
		if diff := got.Time.Sub(want); diff < -24*time.Hour || diff > 24*time.Hour {
			t.Errorf("Parse(%q).Time = %v, want about %v", v, got.Time, want)
		}
	}
}

func TestParseCenturyBoundary(t *testing.T) {
	late := time.Date(2098, 6, 1, 0, 0, 0, 0, time.UTC)
	got := Parse("0101010000", Start, late)
	if got.Time == nil || got.Time.Year() != 2101 {
		t.Errorf("Parse near century end = %v, want year 2101", got.Time)
	}
}
