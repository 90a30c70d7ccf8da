package booking_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/booking/model/dto"
	serviceMocks "frontdesk/internal/domains/booking/service/mocks"
	customerDto "frontdesk/internal/domains/customer/model/dto"
	"frontdesk/internal/handlers/booking"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *serviceMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockBooking(ctrl)

	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

const createBody = `{
	"customer": {"customer_name": "Somchai", "phone": "0812345678"},
	"room_ids": [1, 2],
	"check_in_date": "2024-06-01",
	"check_out_date": "2024-06-03",
	"status": "Deposit",
	"price_per_night": 1200,
	"deposit": 500
}`

func TestHandler_CreateBooking(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *serviceMocks.MockBooking)
		wantCode  int
		wantBody  string
	}{
		{
			name: "created",
			body: createBody,
			setupMock: func(svc *serviceMocks.MockBooking) {
				svc.EXPECT().Create(gomock.Any(), dto.CreateBookingRequest{
					Customer:      customerDto.CustomerRequest{CustomerName: "Somchai", Phone: "0812345678"},
					RoomIDs:       []int64{1, 2},
					CheckInDate:   "2024-06-01",
					CheckOutDate:  "2024-06-03",
					Status:        "Deposit",
					PricePerNight: 1200,
					Deposit:       500,
				}).Return([]dto.BookingResponse{
					{BookingID: "SRH-20240520-0041", RoomID: 1},
					{BookingID: "SRH-20240520-0042", RoomID: 2},
				}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `SRH-20240520-0042`,
		},
		{
			name:      "invalid status never reaches the service",
			body:      strings.Replace(createBody, `"Deposit"`, `"Maybe"`, 1),
			setupMock: func(_ *serviceMocks.MockBooking) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed json",
			body:      `{"room_ids": [1,`,
			setupMock: func(_ *serviceMocks.MockBooking) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  "failed to decode request body",
		},
		{
			name: "room taken",
			body: createBody,
			setupMock: func(svc *serviceMocks.MockBooking) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, failure.Conflict("room 102 is not available from 2024-06-01 to 2024-06-03"))
			},
			wantCode: http.StatusConflict,
			wantBody: "room 102 is not available",
		},
		{
			name: "store unavailable",
			body: createBody,
			setupMock: func(svc *serviceMocks.MockBooking) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, failure.Unavailable(nil))
			},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_GetBookings_PassesWindow(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().List(gomock.Any(), gDto.WindowParams{Year: "2024", Month: "5"}).
		Return(dto.GetBookingsResponse{Start: "2024-05-01", End: "2024-06-01", Bookings: []dto.BookingResponse{}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings?year=2024&month=5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"start":"2024-05-01","end":"2024-06-01","bookings":[],"total_data":0}}`, rec.Body.String())
}

func TestHandler_GetBookingByID(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), "SRH-20240520-0041").Return(dto.BookingResponse{}, failure.NotFound("booking not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/SRH-20240520-0041", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"booking not found"}`, rec.Body.String())
}

func TestHandler_UpdateBooking(t *testing.T) {
	router, svc := newRouter(t)

	body := `{
		"customer": {"customer_name": "Somchai", "phone": "0812345678"},
		"room_id": 2,
		"check_in_date": "2024-06-02",
		"check_out_date": "2024-06-04",
		"status": "Paid",
		"price_per_night": 1200
	}`

	svc.EXPECT().Update(gomock.Any(), "SRH-20240520-0041", gomock.Any()).
		DoAndReturn(func(_ any, _ string, req dto.UpdateBookingRequest) (dto.BookingResponse, error) {
			assert.Equal(t, int64(2), req.RoomID)
			assert.Equal(t, "Paid", req.Status)

			return dto.BookingResponse{BookingID: "SRH-20240520-0041", RoomID: 2, Nights: 2}, nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/bookings/SRH-20240520-0041", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"nights":2`)
}

func TestHandler_DeleteBooking(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(svc *serviceMocks.MockBooking)
		wantCode  int
		wantBody  string
	}{
		{
			name: "deleted",
			setupMock: func(svc *serviceMocks.MockBooking) {
				svc.EXPECT().Delete(gomock.Any(), "SRH-20240520-0041").Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"data":{"success":true}}`,
		},
		{
			name: "missing",
			setupMock: func(svc *serviceMocks.MockBooking) {
				svc.EXPECT().Delete(gomock.Any(), "SRH-20240520-0041").Return(failure.NotFound("booking not found"))
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"booking not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/bookings/SRH-20240520-0041", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
