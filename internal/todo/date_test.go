package todo

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateStrict(t *testing.T) {
	valid := []string{"2024-01-10", "2024-02-29", "1999-12-31", " 2024-01-10 "}
	for _, raw := range valid {
		if _, err := ParseDate(raw); err != nil {
			t.Errorf("ParseDate(%q): %v", raw, err)
		}
	}

	invalid := []string{"", "2024-1-10", "2024-01-1", "24-01-10", "2023-02-29", "2024-04-31", "2024-13-01", "2024/01/10", "2024-01-10T00:00"}
	for _, raw := range invalid {
		if _, err := ParseDate(raw); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q): got %v, want ErrInvalidDate", raw, err)
		}
	}
}

func TestDateComparisons(t *testing.T) {
	ref := MustParseDate("2024-01-10")

	tests := []struct {
		deadline string
		upcoming bool
		before   bool
	}{
		{"2024-01-09", false, true},
		{"2024-01-10", false, false},
		{"2024-01-11", true, false},
		{"2024-01-15", true, false},
		{"2024-01-16", true, false},
		{"2024-01-17", false, false},
	}
	for _, tt := range tests {
		d := MustParseDate(tt.deadline)
		if got := d.Within(ref); got != tt.upcoming {
			t.Errorf("%s within 7 days of %s: got %t, want %t", tt.deadline, ref, got, tt.upcoming)
		}
		if got := d.Before(ref); got != tt.before {
			t.Errorf("%s before %s: got %t, want %t", tt.deadline, ref, got, tt.before)
		}
	}

	start := MustParseDate("2024-01-01")
	end := MustParseDate("2024-01-31")
	for raw, want := range map[string]bool{
		"2024-01-01": false,
		"2024-01-02": true,
		"2024-01-30": true,
		"2024-01-31": false,
	} {
		if got := MustParseDate(raw).Between(start, end); got != want {
			t.Errorf("%s between: got %t, want %t", raw, got, want)
		}
	}
}

func TestDateOfDropsClock(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	d := DateOf(time.Date(2024, 3, 5, 23, 59, 0, 0, loc))
	if d.String() != "2024-03-05" {
		t.Errorf("got %s, want 2024-03-05", d)
	}
	if !d.AddDays(1).Equal(MustParseDate("2024-03-06")) {
		t.Errorf("AddDays(1): got %s", d.AddDays(1))
	}
}

func TestPriorityRank(t *testing.T) {
	tests := map[Priority]int{
		PriorityHigh: 1,
		PriorityMed:  2,
		PriorityLow:  3,
		PriorityNone: 4,
		"XX":         4,
	}
	for p, want := range tests {
		if got := p.Rank(); got != want {
			t.Errorf("%q.Rank(): got %d, want %d", p, got, want)
		}
	}
	if PriorityNone.String() != "none" {
		t.Errorf("unset priority renders as %q", PriorityNone.String())
	}
}
