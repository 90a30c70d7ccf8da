package room_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/room/model/dto"
	serviceMocks "frontdesk/internal/domains/room/service/mocks"
	"frontdesk/internal/handlers/room"
	"frontdesk/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *serviceMocks.MockRoom) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockRoom(ctrl)

	handler := room.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestHandler_GetRooms(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().List(gomock.Any()).Return(dto.GetRoomsResponse{
		Rooms:     []dto.RoomResponse{{RoomID: 1, RoomNumber: "101", RoomType: "Deluxe", BedType: "King", Floor: 1}},
		TotalData: 1,
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"rooms":[{"room_id":1,"room_number":"101","room_type":"Deluxe","bed_type":"King","floor":1}],"total_data":1}}`, rec.Body.String())
}

func TestHandler_GetRoomByID(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		setupMock func(svc *serviceMocks.MockRoom)
		wantCode  int
	}{
		{
			name: "found",
			path: "/rooms/3",
			setupMock: func(svc *serviceMocks.MockRoom) {
				svc.EXPECT().Get(gomock.Any(), int64(3)).Return(dto.RoomResponse{RoomID: 3, RoomNumber: "103"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "not a number",
			path:      "/rooms/abc",
			setupMock: func(_ *serviceMocks.MockRoom) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "missing",
			path: "/rooms/99",
			setupMock: func(svc *serviceMocks.MockRoom) {
				svc.EXPECT().Get(gomock.Any(), int64(99)).Return(dto.RoomResponse{}, failure.NotFound("room not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetAvailableRooms(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Available(gomock.Any(), dto.AvailableRoomsRequest{
		CheckIn:          "2024-06-01",
		CheckOut:         "2024-06-03",
		ExcludeBookingID: "SRH-20240520-0041",
	}).Return(dto.AvailableRoomsResponse{
		CheckIn:         "2024-06-01",
		CheckOut:        "2024-06-03",
		Rooms:           []dto.RoomResponse{{RoomID: 2, RoomNumber: "102"}},
		OccupiedRoomIDs: []int64{1},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/rooms/available?check_in=2024-06-01&check_out=2024-06-03&exclude_booking_id=SRH-20240520-0041", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"occupied_room_ids":[1]`)
}

func TestHandler_GetStatusBoard(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		setupMock func(svc *serviceMocks.MockRoom)
		wantCode  int
	}{
		{
			name:  "sorted by type",
			query: "?date=2024-05-04&sort_by=room_type",
			setupMock: func(svc *serviceMocks.MockRoom) {
				svc.EXPECT().StatusBoard(gomock.Any(), dto.StatusBoardRequest{Date: "2024-05-04", SortBy: "room_type"}).
					Return(dto.StatusBoardResponse{Date: "2024-05-04"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "bad date",
			query:     "?date=04/05/2024",
			setupMock: func(_ *serviceMocks.MockRoom) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "unknown sort column",
			query:     "?sort_by=price",
			setupMock: func(_ *serviceMocks.MockRoom) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/status"+tt.query, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_RefreshCache(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().RefreshCache(gomock.Any()).Return(errors.New("redis: connection refused"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/rooms/cache", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
