package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"net/http"
	"strings"

	"frontdesk/shared/constant"
	"frontdesk/shared/failure"

	"github.com/lib/pq"
)

// Constraint names declared in migrations/postgres. They give a translated
// error a message staff can act on.
const (
	ConstraintBookingsNoOverlap = "bookings_no_overlap"
	ConstraintBookingsPkey      = "bookings_pkey"
	ConstraintBookingsDates     = "bookings_dates_check"
	ConstraintBookingsRoom      = "bookings_room_id_fkey"
	ConstraintBookingsCustomer  = "bookings_customer_id_fkey"
	ConstraintCustomersPhone    = "customers_phone_key"
	ConstraintCleaningRoom      = "cleaning_statuses_room_id_fkey"
)

var constraintMessages = map[string]string{
	ConstraintBookingsNoOverlap: "room is already booked for the selected dates",
	ConstraintBookingsPkey:      "booking id already exists, please retry",
	ConstraintBookingsDates:     "check-in date must be before check-out date",
	ConstraintBookingsRoom:      "room not found",
	ConstraintBookingsCustomer:  "customer not found",
	ConstraintCustomersPhone:    "a customer with this phone number already exists",
	ConstraintCleaningRoom:      "room not found",
}

// TranslateError maps driver and store errors onto failure kinds. A *failure.Failure
// passes through untouched, anything unrecognised is returned as is.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return failure.Wrap(http.StatusNotFound, "record not found", err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return translatePqError(pqErr, err)
	}

	if isConnectionError(err) {
		return failure.Unavailable(err)
	}

	return err
}

func translatePqError(pqErr *pq.Error, err error) error {
	code := string(pqErr.Code)

	switch code {
	case constant.PqErrorCodeUniqueViolation, constant.PqErrorCodeExclusionViolation:
		return failure.Wrap(http.StatusConflict, constraintMessage(pqErr, "record already exists"), err)
	case constant.PqErrorCodeFkViolation:
		return failure.Wrap(http.StatusNotFound, constraintMessage(pqErr, "referenced record not found"), err)
	case constant.PqErrorCodeCheckViolation:
		return failure.Wrap(http.StatusBadRequest, constraintMessage(pqErr, "invalid value"), err)
	case constant.PqErrorCodeNotNullViolation:
		return failure.Wrap(http.StatusBadRequest, pqErr.Column+" is required", err)
	}

	switch {
	case strings.HasPrefix(code, constant.PqErrorClassConnection),
		strings.HasPrefix(code, constant.PqErrorClassResources),
		strings.HasPrefix(code, constant.PqErrorClassOperatorAction):
		return failure.Unavailable(err)
	}

	return err
}

func constraintMessage(pqErr *pq.Error, fallback string) string {
	if msg, ok := constraintMessages[pqErr.Constraint]; ok {
		return msg
	}

	return fallback
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var opErr *net.OpError

	return errors.As(err, &opErr)
}
