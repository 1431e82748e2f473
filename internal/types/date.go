package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without a time component.
type Date time.Time

// NewDate returns a new Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf truncates a time to its calendar day.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a string in RFC3339 full-date format.
//
// Full RFC3339 timestamps are accepted too, the time of day is dropped.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err == nil {
		return DateOf(t), nil
	}

	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("could not parse date %q, use YYYY-MM-DD", s)
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format(dateLayout)
}

// Month returns the period the date falls in.
func (d Date) Month() Month {
	return MonthOf(time.Time(d))
}

// Day returns the day of the month.
func (d Date) Day() int {
	return time.Time(d).Day()
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Compare returns -1 if d is before e, +1 if it is after e and 0 if they are equal.
func (d Date) Compare(e Date) int {
	return time.Time(d).Compare(time.Time(e))
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan reads the date from the database.
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		if v == "" {
			*d = Date{}
			return nil
		}
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
	case []byte:
		return d.Scan(string(v))
	case time.Time:
		*d = DateOf(v)
	case nil:
		*d = Date{}
	default:
		return fmt.Errorf("cannot scan %T into a date", value)
	}

	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "text"
}
