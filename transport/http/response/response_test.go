package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]any{"booking_id": "SRH-20240601-0001"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"booking_id":"SRH-20240601-0001"}}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "conflict keeps its message",
			err:      failure.Conflict("room 102 is not available from 2024-06-01 to 2024-06-03"),
			wantCode: http.StatusConflict,
			wantBody: `{"error":"room 102 is not available from 2024-06-01 to 2024-06-03"}`,
		},
		{
			name:     "unavailable is retryable",
			err:      failure.Unavailable(nil),
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"error":"store unavailable, please retry"}`,
		},
		{
			name:     "plain error is hidden",
			err:      errors.New("pq: relation \"bookings\" does not exist"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestCannedResponses(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithRequestLimitExceeded(rec)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	response.WithPreparingShutdown(rec)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, rec.Body.String())
}
