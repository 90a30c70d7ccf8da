// Package calendar holds day-granularity dates for bookings and occupancy.
//
// A Date is a pure (year, month, day) triple. It never carries a wall clock or a
// zone, so converting between "a booking night" and "a point in time" only happens
// at the edges through Today and StartOfDay with the hotel location.
package calendar

import (
	"database/sql/driver"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

const Layout = "2006-01-02"

type Date struct {
	civil.Date
}

// New builds a Date; out of range values are normalised the way time.Date does.
func New(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	return Date{civil.DateOf(t)}
}

// Today returns the current date as seen in loc.
func Today(loc *time.Location) Date {
	return DateOf(time.Now().In(loc))
}

func Parse(value string) (Date, error) {
	d, err := civil.ParseDate(value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}

	return Date{d}, nil
}

func (d Date) IsZero() bool {
	return d.Date == civil.Date{}
}

func (d Date) AddDays(n int) Date {
	return Date{d.Date.AddDays(n)}
}

// DaysSince returns the signed number of days from other to d.
func (d Date) DaysSince(other Date) int {
	return d.Date.DaysSince(other.Date)
}

func (d Date) Before(other Date) bool {
	return d.Date.Before(other.Date)
}

func (d Date) After(other Date) bool {
	return d.Date.After(other.Date)
}

func (d Date) Equal(other Date) bool {
	return d.Date == other.Date
}

// StartOfDay is midnight of d in loc.
func (d Date) StartOfDay(loc *time.Location) time.Time {
	return d.In(loc)
}

// Compact renders the date as YYYYMMDD.
func (d Date) Compact() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// Scan implements sql.Scanner for DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}

		return nil
	case time.Time:
		*d = Date{civil.Date{Year: v.Year(), Month: v.Month(), Day: v.Day()}}

		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("calendar: cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(value string) error {
	if len(value) > len(Layout) {
		value = value[:len(Layout)]
	}

	parsed, err := Parse(value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// Value implements driver.Valuer, writing the date as YYYY-MM-DD.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}

	return d.String(), nil
}

// MonthWindow returns the half-open window covering the given month.
func MonthWindow(year int, month time.Month) (Range, error) {
	if month < time.January || month > time.December {
		return Range{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}

	if year < 1 || year > 9999 {
		return Range{}, fmt.Errorf("year must be between 1 and 9999, got %d", year)
	}

	start := New(year, month, 1)

	return Range{Start: start, End: New(year, month+1, 1)}, nil
}
