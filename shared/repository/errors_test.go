package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"frontdesk/shared/failure"
	"frontdesk/shared/repository"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "failure passes through",
			err:     failure.BadRequestFromString("no rooms selected"),
			code:    http.StatusBadRequest,
			message: "no rooms selected",
		},
		{
			name:    "no rows",
			err:     fmt.Errorf("get booking: %w", sql.ErrNoRows),
			code:    http.StatusNotFound,
			message: "record not found",
		},
		{
			name:    "overlapping booking",
			err:     &pq.Error{Code: "23P01", Constraint: repository.ConstraintBookingsNoOverlap},
			code:    http.StatusConflict,
			message: "room is already booked for the selected dates",
		},
		{
			name:    "duplicate booking id",
			err:     &pq.Error{Code: "23505", Constraint: repository.ConstraintBookingsPkey},
			code:    http.StatusConflict,
			message: "booking id already exists, please retry",
		},
		{
			name:    "unknown unique constraint",
			err:     &pq.Error{Code: "23505", Constraint: "something_key"},
			code:    http.StatusConflict,
			message: "record already exists",
		},
		{
			name:    "missing room",
			err:     &pq.Error{Code: "23503", Constraint: repository.ConstraintBookingsRoom},
			code:    http.StatusNotFound,
			message: "room not found",
		},
		{
			name:    "inverted dates",
			err:     fmt.Errorf("insert booking: %w", &pq.Error{Code: "23514", Constraint: repository.ConstraintBookingsDates}),
			code:    http.StatusBadRequest,
			message: "check-in date must be before check-out date",
		},
		{
			name:    "not null",
			err:     &pq.Error{Code: "23502", Column: "phone"},
			code:    http.StatusBadRequest,
			message: "phone is required",
		},
		{
			name: "admin shutdown",
			err:  &pq.Error{Code: "57P01"},
			code: http.StatusServiceUnavailable,
		},
		{
			name: "connection failure class",
			err:  &pq.Error{Code: "08006"},
			code: http.StatusServiceUnavailable,
		},
		{
			name: "too many connections",
			err:  &pq.Error{Code: "53300"},
			code: http.StatusServiceUnavailable,
		},
		{
			name: "bad connection",
			err:  driver.ErrBadConn,
			code: http.StatusServiceUnavailable,
		},
		{
			name: "connection done",
			err:  fmt.Errorf("commit: %w", sql.ErrConnDone),
			code: http.StatusServiceUnavailable,
		},
		{
			name: "deadline",
			err:  context.DeadlineExceeded,
			code: http.StatusServiceUnavailable,
		},
		{
			name: "dial error",
			err:  &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			code: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repository.TranslateError(tt.err)

			assert.Equal(t, tt.code, failure.GetCode(err))

			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

func TestTranslateError_KeepsCause(t *testing.T) {
	cause := &pq.Error{Code: "23P01", Constraint: repository.ConstraintBookingsNoOverlap}

	err := repository.TranslateError(cause)

	var pqErr *pq.Error
	assert.ErrorAs(t, err, &pqErr)
	assert.True(t, failure.IsConflict(err))
}

func TestTranslateError_Passthrough(t *testing.T) {
	assert.NoError(t, repository.TranslateError(nil))

	plain := errors.New("syntax error")
	assert.Equal(t, plain, repository.TranslateError(plain))

	syntax := &pq.Error{Code: "42601"}
	assert.Equal(t, syntax, repository.TranslateError(syntax))
}
