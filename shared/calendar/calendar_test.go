package calendar_test

import (
	"encoding/json"
	"slices"
	"testing"
	"time"

	"frontdesk/shared/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := calendar.Parse("2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, calendar.New(2024, time.May, 10), d)

	_, err = calendar.Parse("10/05/2024")
	assert.Error(t, err)

	_, err = calendar.Parse("2024-02-30")
	assert.Error(t, err)
}

func TestDate_Arithmetic(t *testing.T) {
	d := calendar.New(2024, time.February, 28)

	assert.Equal(t, calendar.New(2024, time.February, 29), d.AddDays(1))
	assert.Equal(t, calendar.New(2024, time.March, 1), d.AddDays(2))
	assert.Equal(t, 2, d.AddDays(2).DaysSince(d))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
	assert.True(t, d.Equal(calendar.New(2024, time.February, 28)))
	assert.Equal(t, "20240228", d.Compact())
}

func TestDateOf_UsesLocationOfTime(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*60*60)
	instant := time.Date(2024, time.May, 9, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, calendar.New(2024, time.May, 9), calendar.DateOf(instant))
	assert.Equal(t, calendar.New(2024, time.May, 10), calendar.DateOf(instant.In(bangkok)))
}

func TestDate_StartOfDay(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*60*60)
	start := calendar.New(2024, time.May, 10).StartOfDay(bangkok)

	assert.Equal(t, time.Date(2024, time.May, 9, 17, 0, 0, 0, time.UTC), start.UTC())
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    calendar.Date
		wantErr bool
	}{
		{name: "time", src: time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC), want: calendar.New(2024, time.May, 10)},
		{name: "string", src: "2024-05-10", want: calendar.New(2024, time.May, 10)},
		{name: "bytes with time part", src: []byte("2024-05-10T00:00:00Z"), want: calendar.New(2024, time.May, 10)},
		{name: "nil", src: nil, want: calendar.Date{}},
		{name: "unsupported", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d calendar.Date
			err := d.Scan(tt.src)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestDate_Value(t *testing.T) {
	v, err := calendar.New(2024, time.May, 10).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-05-10", v)

	v, err = calendar.Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		CheckIn calendar.Date `json:"check_in_date"`
	}

	out, err := json.Marshal(payload{CheckIn: calendar.New(2024, time.June, 1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"check_in_date":"2024-06-01"}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"check_in_date":"2024-06-02"}`), &in))
	assert.Equal(t, calendar.New(2024, time.June, 2), in.CheckIn)
}

func TestMonthWindow(t *testing.T) {
	w, err := calendar.MonthWindow(2024, time.December)
	require.NoError(t, err)
	assert.Equal(t, calendar.New(2024, time.December, 1), w.Start)
	assert.Equal(t, calendar.New(2025, time.January, 1), w.End)

	_, err = calendar.MonthWindow(2024, 13)
	assert.Error(t, err)

	_, err = calendar.MonthWindow(0, time.May)
	assert.Error(t, err)
}

func TestRange_Overlaps(t *testing.T) {
	may := func(day int) calendar.Date { return calendar.New(2024, time.May, day) }
	r := func(a, b int) calendar.Range { return calendar.Range{Start: may(a), End: may(b)} }

	tests := []struct {
		name string
		a, b calendar.Range
		want bool
	}{
		{name: "same range", a: r(2, 4), b: r(2, 4), want: true},
		{name: "partial overlap", a: r(2, 4), b: r(3, 6), want: true},
		{name: "contained", a: r(1, 10), b: r(3, 4), want: true},
		{name: "checkout equals next check-in", a: r(2, 4), b: r(4, 6), want: false},
		{name: "check-in equals previous checkout", a: r(4, 6), b: r(2, 4), want: false},
		{name: "disjoint", a: r(1, 2), b: r(5, 6), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestNewRange_RejectsEmptyAndInverted(t *testing.T) {
	day := calendar.New(2024, time.June, 1)

	_, err := calendar.NewRange(day, day)
	assert.ErrorIs(t, err, calendar.ErrInvalidRange)

	_, err = calendar.NewRange(day.AddDays(1), day)
	assert.ErrorIs(t, err, calendar.ErrInvalidRange)

	_, err = calendar.ParseRange("2024-06-01", "2024-06-01")
	assert.ErrorIs(t, err, calendar.ErrInvalidRange)

	_, err = calendar.ParseRange("2024-06-01", "soon")
	assert.Error(t, err)

	r, err := calendar.ParseRange("2024-06-01", "2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, 2, r.Nights())
}

func TestRange_DaysAndContains(t *testing.T) {
	r := calendar.Range{Start: calendar.New(2024, time.May, 10), End: calendar.New(2024, time.May, 13)}

	days := slices.Collect(r.Days())
	assert.Equal(t, []calendar.Date{
		calendar.New(2024, time.May, 10),
		calendar.New(2024, time.May, 11),
		calendar.New(2024, time.May, 12),
	}, days)

	assert.True(t, r.Contains(calendar.New(2024, time.May, 10)))
	assert.False(t, r.Contains(calendar.New(2024, time.May, 13)))
}

func TestRange_Intersect(t *testing.T) {
	stay := calendar.Range{Start: calendar.New(2024, time.April, 29), End: calendar.New(2024, time.May, 3)}
	window, err := calendar.MonthWindow(2024, time.May)
	require.NoError(t, err)

	clipped := stay.Intersect(window)
	assert.Equal(t, calendar.New(2024, time.May, 1), clipped.Start)
	assert.Equal(t, calendar.New(2024, time.May, 3), clipped.End)

	outside := calendar.Range{Start: calendar.New(2024, time.June, 2), End: calendar.New(2024, time.June, 4)}
	assert.False(t, outside.Intersect(window).Valid())
}
