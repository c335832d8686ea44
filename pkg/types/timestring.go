package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeFormat is the canonical wire format for TimeString values.
const timeFormat = "15:04"

var (
	// ErrInvalidTimeString is returned when a string does not match HH:MM.
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")
)

// TimeString represents a time-of-day value in "HH:MM" format (e.g. "08:00").
// It is used for slot labels: lexicographic order matches chronological order
// thanks to zero-padding, but all comparisons go through parsing anyway.
type TimeString string

// NewTimeString creates a TimeString from a time.Time, truncating seconds.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString parses and validates a TimeString from a raw string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value matches the HH:MM format.
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero returns true when the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the raw "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// parse returns the value as a time.Time on the zero date.
func (t TimeString) parse() (time.Time, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed, nil
}

// Hour returns the hour component (0-23). Invalid values yield -1.
func (t TimeString) Hour() int {
	parsed, err := t.parse()
	if err != nil {
		return -1
	}
	return parsed.Hour()
}

// Minute returns the minute component (0-59). Invalid values yield -1.
func (t TimeString) Minute() int {
	parsed, err := t.parse()
	if err != nil {
		return -1
	}
	return parsed.Minute()
}

// minutes returns the value as minutes since midnight.
func (t TimeString) minutes() (int, error) {
	parsed, err := t.parse()
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Invalid values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.minutes()
	if err != nil {
		return false
	}
	b, err := other.minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// AddMinutes returns a new TimeString shifted forward by m minutes.
// The result wraps around midnight, mirroring time.Time arithmetic.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	parsed, err := t.parse()
	if err != nil {
		return "", err
	}
	return TimeString(parsed.Add(time.Duration(m) * time.Minute).Format(timeFormat)), nil
}

// Value implements driver.Valuer for database storage.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner.
func (t *TimeString) Scan(src interface{}) error {
	if src == nil {
		*t = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
	return nil
}
