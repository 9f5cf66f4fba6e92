package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateOnly is a calendar date (year-month-day) with no time zone attached.
// It maps to a DATE column and must round-trip as the exact same
// YYYY-MM-DD string regardless of server time zone, so formatting uses
// the calendar components directly instead of going through a time.Time
// instant.
type DateOnly struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDateOnly parses a YYYY-MM-DD string.
func ParseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return DateOnly{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	y, m, d := t.Date()
	return DateOnly{Year: y, Month: m, Day: d}, nil
}

// IsZero reports whether the date is unset.
func (d DateOnly) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d DateOnly) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Value implements driver.Valuer. Dates are written as YYYY-MM-DD strings,
// which both Postgres DATE columns and SQLite accept.
func (d DateOnly) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan implements sql.Scanner. Drivers hand back DATE columns as either
// time.Time or text depending on the dialect; malformed values scan as
// the zero date rather than failing the whole row.
func (d *DateOnly) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = DateOnly{}
		return nil
	case time.Time:
		y, m, day := v.Date()
		*d = DateOnly{Year: y, Month: m, Day: day}
		return nil
	case string:
		parsed, err := ParseDateOnly(v)
		if err != nil {
			*d = DateOnly{}
			return nil
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", value)
	}
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*d = DateOnly{}
		return nil
	}
	parsed, err := ParseDateOnly(*s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// StringList stores an ordered list of strings as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// JSONMap stores free-form structured annotations as a JSON column.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONMap", value)
	}
	if len(data) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(data, m)
}
