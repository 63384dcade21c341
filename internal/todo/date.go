package todo

import (
	"strings"
	"time"
)

const (
	dateLayout   = "2006-01-02"
	upcomingDays = 7
)

// Date is a calendar day without time of day or zone.
type Date struct {
	t time.Time
}

// ParseDate parses a strict yyyy-MM-dd date. Days that do not exist in the
// month (2023-02-29, 2024-04-31) are rejected rather than rolled over.
func ParseDate(raw string) (Date, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) != len(dateLayout) {
		return Date{}, ErrInvalidDate
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: parsed}, nil
}

// MustParseDate is ParseDate for literals known to be valid.
func MustParseDate(raw string) Date {
	d, err := ParseDate(raw)
	if err != nil {
		panic("todo: invalid date literal " + raw)
	}
	return d
}

// DateOf truncates t to its calendar day in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

// AddDays returns the date n calendar days later.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Between reports start < d < end.
func (d Date) Between(start, end Date) bool {
	return d.After(start) && d.Before(end)
}

// Within reports whether d falls strictly after ref and strictly before ref+7 days.
func (d Date) Within(ref Date) bool {
	return d.Between(ref, ref.AddDays(upcomingDays))
}
