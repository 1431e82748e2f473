// Package types implements the calendar types shared by all allotment components.
package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidMonth is returned for any period key not in canonical YYYY-MM format.
var ErrInvalidMonth = errors.New("the period must be in YYYY-MM format with a month between 01 and 12")

var monthPattern = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])$`)

// Month is a month in a specific year. It is the period key used to
// correlate locks, snapshots, income and transactions.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs. The time's location is
// used to determine year and month, the result is always in UTC.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a canonical "YYYY-MM" string and returns the Month value it represents.
//
// Anything else, including "2025-3" or "2025-03-01", is rejected with ErrInvalidMonth.
func ParseMonth(s string) (Month, error) {
	if !monthPattern.MatchString(s) {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}

	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}

	return MonthOf(t), nil
}

// IsValidMonth reports if s is a canonical period key.
func IsValidMonth(s string) bool {
	_, err := ParseMonth(s)
	return err == nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Only the canonical YYYY-MM format is accepted.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	month, err := ParseMonth(value)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// Scan reads the period key from the database.
func (m *Month) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		month, err := ParseMonth(v)
		if err != nil {
			return err
		}
		*m = month
	case []byte:
		return m.Scan(string(v))
	case time.Time:
		*m = MonthOf(v)
	case nil:
		*m = Month{}
	default:
		return fmt.Errorf("cannot scan %T into a month", value)
	}

	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	return m.String(), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Month) GormDataType() string {
	return "text"
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}

// LastDay returns the number of the last calendar day of the month.
func (m Month) LastDay() int {
	year, month, _ := time.Time(m).Date()
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Day returns the date for the given day of the month. Days past the end
// of the month are clamped to its last day, days below 1 to the first.
func (m Month) Day(day int) Date {
	day = max(1, min(day, m.LastDay()))

	year, month, _ := time.Time(m).Date()
	return NewDate(year, month, day)
}
