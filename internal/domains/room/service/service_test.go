package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	roomMocks "frontdesk/internal/domains/room/mocks"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/calendar"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var hotelRooms = []model.Room{
	{RoomID: 3, RoomNumber: "110", RoomType: model.TypeRiverView, BedType: model.BedTwin, Floor: 1},
	{RoomID: 1, RoomNumber: "101", RoomType: model.TypeStandardView, BedType: model.BedDouble, Floor: 1},
	{RoomID: 2, RoomNumber: "102", RoomType: model.TypeRiverView, BedType: model.BedDouble, Floor: 1},
	{RoomID: 4, RoomNumber: "9", RoomType: model.TypeCottage, BedType: model.BedDouble, Floor: 0},
}

type fixture struct {
	repo     *roomMocks.MockRoom
	bookings *bookingMocks.MockBooking
	cache    *cacheMocks.MockRedisCache
	svc      service.Room
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:     roomMocks.NewMockRoom(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, f.bookings, cfg, f.cache, mocks.NewOtel())

	return f
}

// expectRoomsFromStore simulates a cache miss followed by a read from the store.
func (f fixture) expectRoomsFromStore() {
	f.cache.EXPECT().Get(gomock.Any(), "room:list", gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(append([]model.Room(nil), hotelRooms...), nil)
	f.cache.EXPECT().Save(gomock.Any(), "room:list", gomock.Any(), 3600).Return(nil).AnyTimes()
}

func may(day int) calendar.Date {
	return calendar.New(2024, time.May, day)
}

func roomNumbers(rooms []dto.RoomResponse) []string {
	numbers := make([]string, len(rooms))
	for i, room := range rooms {
		numbers[i] = room.RoomNumber
	}

	return numbers
}

func TestRoomService_List(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   bool
		want      []string
	}{
		{
			name:      "cache miss reads the store in room number order",
			setupMock: func(f fixture) { f.expectRoomsFromStore() },
			want:      []string{"9", "101", "102", "110"},
		},
		{
			name: "cache hit",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "room:list", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
					*value.(*[]model.Room) = []model.Room{{RoomID: 1, RoomNumber: "101"}}

					return nil
				})
			},
			want: []string{"101"},
		},
		{
			name: "store error",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.List(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, roomNumbers(res.Rooms))
			assert.Equal(t, len(tt.want), res.TotalData)
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        int64
		setupMock func(f fixture)
		wantCode  func(error) bool
	}{
		{
			name: "found",
			id:   1,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotelRooms[1], nil)
			},
		},
		{
			name: "not found",
			id:   42,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantCode: failure.IsNotFound,
		},
		{
			name: "store unavailable",
			id:   1,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, failure.Unavailable(errors.New("connection refused")))
			},
			wantCode: failure.IsRetryable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), tt.id)

			if tt.wantCode != nil {
				require.Error(t, err)
				assert.True(t, tt.wantCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "101", res.RoomNumber)
		})
	}
}

func TestRoomService_Available(t *testing.T) {
	existing := []bookingModel.Booking{
		{BookingID: "SRH-20240401-0001", RoomID: 1, CheckInDate: may(2), CheckOutDate: may(4)},
	}

	tests := []struct {
		name         string
		req          dto.AvailableRoomsRequest
		setupMock    func(f fixture)
		wantRooms    []string
		wantOccupied []int64
	}{
		{
			name: "overlapping booking occupies its room",
			req:  dto.AvailableRoomsRequest{CheckIn: "2024-05-03", CheckOut: "2024-05-06"},
			setupMock: func(f fixture) {
				f.expectRoomsFromStore()
				f.bookings.EXPECT().ListOverlapping(gomock.Any(), calendar.Range{Start: may(3), End: may(6)}).Return(existing, nil)
			},
			wantRooms:    []string{"9", "102", "110"},
			wantOccupied: []int64{1},
		},
		{
			name: "check-in on the previous checkout day is free",
			req:  dto.AvailableRoomsRequest{CheckIn: "2024-05-04", CheckOut: "2024-05-06"},
			setupMock: func(f fixture) {
				f.expectRoomsFromStore()
				f.bookings.EXPECT().ListOverlapping(gomock.Any(), gomock.Any()).Return(existing, nil)
			},
			wantRooms:    []string{"9", "101", "102", "110"},
			wantOccupied: []int64{},
		},
		{
			name: "booking being edited is ignored",
			req:  dto.AvailableRoomsRequest{CheckIn: "2024-05-03", CheckOut: "2024-05-06", ExcludeBookingID: "SRH-20240401-0001"},
			setupMock: func(f fixture) {
				f.expectRoomsFromStore()
				f.bookings.EXPECT().ListOverlapping(gomock.Any(), gomock.Any()).Return(existing, nil)
			},
			wantRooms:    []string{"9", "101", "102", "110"},
			wantOccupied: []int64{},
		},
		{
			name: "malformed dates leave nothing available",
			req:  dto.AvailableRoomsRequest{CheckIn: "tomorrow", CheckOut: "2024-05-06"},
			setupMock: func(f fixture) {
				f.expectRoomsFromStore()
			},
			wantRooms:    []string{},
			wantOccupied: []int64{1, 2, 3, 4},
		},
		{
			name: "inverted range leaves nothing available",
			req:  dto.AvailableRoomsRequest{CheckIn: "2024-05-06", CheckOut: "2024-05-06"},
			setupMock: func(f fixture) {
				f.expectRoomsFromStore()
			},
			wantRooms:    []string{},
			wantOccupied: []int64{1, 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Available(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantRooms, roomNumbers(res.Rooms))
			assert.Equal(t, tt.wantOccupied, res.OccupiedRoomIDs)
			assert.Equal(t, tt.req.CheckIn, res.CheckIn)
		})
	}
}

func TestRoomService_Available_StoreError(t *testing.T) {
	f := newFixture(t)
	f.expectRoomsFromStore()
	f.bookings.EXPECT().ListOverlapping(gomock.Any(), gomock.Any()).Return(nil, failure.Unavailable(errors.New("timeout")))

	_, err := f.svc.Available(context.Background(), dto.AvailableRoomsRequest{CheckIn: "2024-05-03", CheckOut: "2024-05-06"})
	require.Error(t, err)
	assert.True(t, failure.IsRetryable(err))
}

func TestRoomService_StatusBoard(t *testing.T) {
	detail := func(id string, roomID int64, in, out int) bookingModel.BookingDetail {
		return bookingModel.BookingDetail{
			Booking:      bookingModel.Booking{BookingID: id, RoomID: roomID, CheckInDate: may(in), CheckOutDate: may(out)},
			CustomerName: "Guest " + id,
		}
	}

	f := newFixture(t)
	f.expectRoomsFromStore()
	f.bookings.EXPECT().ListDetails(gomock.Any(), calendar.Range{Start: may(4), End: may(5)}).Return([]bookingModel.BookingDetail{
		detail("A", 1, 2, 4),
		detail("B", 1, 4, 6),
		detail("C", 2, 3, 7),
		detail("D", 3, 4, 5),
	}, nil)

	res, err := f.svc.StatusBoard(context.Background(), dto.StatusBoardRequest{Date: "2024-05-04", SortBy: dto.SortByRoomType})
	require.NoError(t, err)

	assert.Equal(t, "2024-05-04", res.Date)
	require.Len(t, res.Rooms, 4)

	got := map[string]string{}
	order := []string{}

	for _, room := range res.Rooms {
		got[room.Room.RoomNumber] = room.Status
		order = append(order, room.Room.RoomNumber)
	}

	assert.Equal(t, map[string]string{"101": "Turnover", "102": "Occupied", "110": "CheckIn", "9": "Vacant"}, got)
	assert.Equal(t, []string{"9", "102", "110", "101"}, order)
	assert.Len(t, res.Rooms[3].Bookings, 2)
}

func TestRoomService_StatusBoard_InvalidDate(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.StatusBoard(context.Background(), dto.StatusBoardRequest{Date: "04/05/2024"})
	require.Error(t, err)
	assert.True(t, failure.IsBadRequest(err))
}

func TestRoomService_RefreshCache(t *testing.T) {
	f := newFixture(t)
	f.cache.EXPECT().Clear(gomock.Any(), "room:*").Return(nil)

	assert.NoError(t, f.svc.RefreshCache(context.Background()))
}
