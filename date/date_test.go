package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestOf(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	// late evening in Tokyo is still the same calendar day there.
	on := time.Date(2025, time.March, 3, 23, 59, 0, 0, loc)
	if got, want := Of(on), New(2025, time.March, 3); got != want {
		t.Errorf("Of(%v) = %v want %v", on, got, want)
	}
}

func TestAddSub(t *testing.T) {
	d := New(2025, time.March, 1)
	tests := []struct {
		days int
		want Date
	}{
		{0, New(2025, time.March, 1)},
		{-1, New(2025, time.February, 28)},
		{-30, New(2025, time.January, 30)},
		{-150, New(2024, time.October, 2)},
	}
	for _, tt := range tests {
		got := d.Add(tt.days)
		if got != tt.want {
			t.Errorf("%v.Add(%d) = %v want %v", d, tt.days, got, tt.want)
		}
		if n := got.Sub(d); n != tt.days {
			t.Errorf("%v.Sub(%v) = %d want %d", got, d, n, tt.days)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2025-07-01", New(2025, time.July, 1)},
		{"2025-7-1", New(2025, time.July, 1)},
		{" 2024-12-31 ", New(2024, time.December, 31)},
		{"-30d", Today().Add(-30)},
		{"+1w", Today().Add(7)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v want %v", tt.in, got, tt.want)
		}
	}

	if _, err := Parse("yesterday"); err == nil {
		t.Errorf("Parse(%q) expected an error", "yesterday")
	}
}

func TestJSON(t *testing.T) {
	d := New(2025, time.October, 17)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal(%v) failed: %v", d, err)
	}
	if string(b) != `"2025-10-17"` {
		t.Errorf("json.Marshal(%v) = %s want %q", d, b, "2025-10-17")
	}
	var got Date
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("json.Unmarshal(%s) failed: %v", b, err)
	}
	if got != d {
		t.Errorf("json.Unmarshal(%s) = %v want %v", b, got, d)
	}
}
