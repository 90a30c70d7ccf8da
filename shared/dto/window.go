package dto

import (
	"net/http"
	"strconv"
	"time"

	"frontdesk/shared/calendar"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
)

// WindowParams selects a half-open date window either as start+end or as a calendar month.
type WindowParams struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Year  string `json:"year"`
	Month string `json:"month"`
}

func (w *WindowParams) FromRequest(r *http.Request) {
	query := r.URL.Query()

	w.Start = query.Get(constant.RequestParamStart)
	w.End = query.Get(constant.RequestParamEnd)
	w.Year = query.Get(constant.RequestParamYear)
	w.Month = query.Get(constant.RequestParamMonth)
}

// IsEmpty reports whether no window parameter was given at all.
func (w WindowParams) IsEmpty() bool {
	return w.Start == constant.Empty && w.End == constant.Empty && w.Year == constant.Empty && w.Month == constant.Empty
}

// Range resolves the window. start+end wins over year+month.
func (w WindowParams) Range() (calendar.Range, error) {
	switch {
	case w.Start != constant.Empty || w.End != constant.Empty:
		window, err := calendar.ParseRange(w.Start, w.End)
		if err != nil {
			return calendar.Range{}, failure.BadRequest(err) //nolint:wrapcheck
		}

		return window, nil
	case w.Year != constant.Empty && w.Month != constant.Empty:
		year, err := strconv.Atoi(w.Year)
		if err != nil {
			return calendar.Range{}, failure.BadRequestFromString("year must be a number") //nolint:wrapcheck
		}

		month, err := strconv.Atoi(w.Month)
		if err != nil {
			return calendar.Range{}, failure.BadRequestFromString("month must be a number") //nolint:wrapcheck
		}

		window, err := calendar.MonthWindow(year, time.Month(month))
		if err != nil {
			return calendar.Range{}, failure.BadRequest(err) //nolint:wrapcheck
		}

		return window, nil
	default:
		return calendar.Range{}, failure.BadRequestFromString("start and end, or year and month, are required") //nolint:wrapcheck
	}
}
