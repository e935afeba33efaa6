package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout is the wire format for calendar dates: "2006-01-02".
const dateLayout = "2006-01-02"

// Date is a calendar date without time-of-day semantics.
//
// On the wire it is a bare "YYYY-MM-DD" JSON string; a JSON null (or an
// absent field) decodes to the zero Date and is usually carried as a nil
// *Date. In the database it maps to a DATE column.
type Date struct {
	time.Time
}

// NewDate constructs a Date for the given calendar day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// String returns the date formatted as "YYYY-MM-DD".
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON serialises the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON parses a "YYYY-MM-DD" JSON string or JSON null.
// Full RFC 3339 timestamps are also accepted; only the calendar date is kept.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(*s)
	if err == nil {
		*d = parsed
		return nil
	}

	t, rfcErr := time.Parse(time.RFC3339, *s)
	if rfcErr != nil {
		return err
	}
	*d = Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
	return nil
}

// Value implements driver.Valuer so a Date can be bound directly as a SQL
// query argument.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner for reading DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = Date{Time: v}
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
