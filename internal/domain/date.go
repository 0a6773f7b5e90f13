package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the ISO-8601 calendar date format used on the wire, in CSV
// files and in storage.
const DateLayout = "2006-01-02"

// Date is a calendar day without a time of day or zone.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a yyyy-MM-dd string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	return d.UnmarshalText([]byte(s))
}

// Value stores dates as yyyy-MM-dd text so range comparisons in SQL are
// plain string comparisons.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Period is an inclusive date range.
type Period struct {
	Start Date
	End   Date
}

// ParsePeriod parses both bounds and rejects a start that falls after the end.
// Every failure wraps ErrInvalidInput.
func ParsePeriod(start, end string) (Period, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Period{}, fmt.Errorf("%w: invalid start date %q: %v", ErrInvalidInput, start, err)
	}
	e, err := ParseDate(end)
	if err != nil {
		return Period{}, fmt.Errorf("%w: invalid end date %q: %v", ErrInvalidInput, end, err)
	}
	if s.After(e.Time) {
		return Period{}, fmt.Errorf("%w: start date must be before or equal to end date", ErrInvalidInput)
	}
	return Period{Start: s, End: e}, nil
}
