package dto

import (
	"net/http"

	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
)

const (
	SortByRoomNumber = "room_number"
	SortByRoomType   = "room_type"
	SortByBedType    = "bed_type"

	paramCheckIn          = "check_in"
	paramCheckOut         = "check_out"
	paramExcludeBookingID = "exclude_booking_id"
)

type RoomResponse struct {
	RoomID     int64  `json:"room_id"`
	RoomNumber string `json:"room_number"`
	RoomType   string `json:"room_type"`
	BedType    string `json:"bed_type"`
	Floor      int    `json:"floor"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.BedType = model.BedType
	r.Floor = model.Floor
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.TotalData = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type AvailableRoomsRequest struct {
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	ExcludeBookingID string `json:"exclude_booking_id"`
}

func (a *AvailableRoomsRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	a.CheckIn = query.Get(paramCheckIn)
	a.CheckOut = query.Get(paramCheckOut)
	a.ExcludeBookingID = query.Get(paramExcludeBookingID)
}

type AvailableRoomsResponse struct {
	CheckIn         string         `json:"check_in"`
	CheckOut        string         `json:"check_out"`
	Rooms           []RoomResponse `json:"rooms"`
	OccupiedRoomIDs []int64        `json:"occupied_room_ids"`
}

type StatusBoardRequest struct {
	Date   string `json:"date"    validate:"omitempty,date"`
	SortBy string `json:"sort_by" validate:"omitempty,oneof=room_number room_type bed_type"`
}

func (s *StatusBoardRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	s.Date = query.Get(constant.RequestParamDate)
	s.SortBy = query.Get(constant.RequestParamSortBy)
}

type BookingSummary struct {
	BookingID    string `json:"booking_id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Status       string `json:"status"`
}

func (b *BookingSummary) FromModel(model bookingModel.BookingDetail) {
	b.BookingID = model.BookingID
	b.CustomerName = model.CustomerName
	b.Phone = model.Phone
	b.CheckInDate = model.CheckInDate.String()
	b.CheckOutDate = model.CheckOutDate.String()
	b.Status = model.Status
}

type RoomStatusResponse struct {
	Room     RoomResponse     `json:"room"`
	Status   string           `json:"status"`
	Bookings []BookingSummary `json:"bookings"`
}

type StatusBoardResponse struct {
	Date  string               `json:"date"`
	Rooms []RoomStatusResponse `json:"rooms"`
}
