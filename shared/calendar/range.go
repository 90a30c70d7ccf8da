package calendar

import (
	"errors"
	"iter"
)

var ErrInvalidRange = errors.New("check-in date must be before check-out date")

// Range is the half-open interval [Start, End). End itself is not part of it,
// which lets one stay end on the morning the next one starts.
type Range struct {
	Start Date
	End   Date
}

func NewRange(start, end Date) (Range, error) {
	r := Range{Start: start, End: end}
	if !r.Valid() {
		return Range{}, ErrInvalidRange
	}

	return r, nil
}

// ParseRange parses two YYYY-MM-DD values into a non-empty range.
func ParseRange(start, end string) (Range, error) {
	s, err := Parse(start)
	if err != nil {
		return Range{}, err
	}

	e, err := Parse(end)
	if err != nil {
		return Range{}, err
	}

	return NewRange(s, e)
}

func (r Range) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && r.Start.Before(r.End)
}

// Overlaps reports whether [a,b) and [c,d) share at least one day: a < d && b > c.
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

func (r Range) Contains(day Date) bool {
	return !day.Before(r.Start) && day.Before(r.End)
}

// Nights is the number of nights in the range, never less than one.
func (r Range) Nights() int {
	return max(1, r.End.DaysSince(r.Start))
}

// Intersect clips r to window. The result may be empty (not Valid).
func (r Range) Intersect(window Range) Range {
	out := r
	if window.Start.After(out.Start) {
		out.Start = window.Start
	}

	if window.End.Before(out.End) {
		out.End = window.End
	}

	return out
}

// Days yields every day in [Start, End).
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.Start; d.Before(r.End); d = d.AddDays(1) {
			if !yield(d) {
				return
			}
		}
	}
}
