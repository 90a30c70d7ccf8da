package dto

import (
	"fmt"

	"frontdesk/internal/domains/booking/model"
	customerModel "frontdesk/internal/domains/customer/model"
	customerDto "frontdesk/internal/domains/customer/model/dto"
	roomModel "frontdesk/internal/domains/room/model"
	roomDto "frontdesk/internal/domains/room/model/dto"
	"frontdesk/shared/calendar"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateBookingRequest struct {
	Customer      customerDto.CustomerRequest `json:"customer"`
	RoomIDs       []int64                     `json:"room_ids"        validate:"omitempty,dive,gt=0"`
	CheckInDate   string                      `json:"check_in_date"   validate:"required,date"`
	CheckOutDate  string                      `json:"check_out_date"  validate:"required,date"`
	Status        string                      `json:"status"          validate:"required,oneof=Paid Deposit Unpaid"`
	PricePerNight float64                     `json:"price_per_night" validate:"gte=0"`
	Deposit       float64                     `json:"deposit"         validate:"gte=0"`
}

// Stay checks what the tags cannot express and returns the requested stay.
func (c *CreateBookingRequest) Stay() (calendar.Range, error) {
	if len(c.RoomIDs) == 0 {
		return calendar.Range{}, failure.BadRequestFromString("no rooms selected") //nolint:wrapcheck
	}

	seen := make(map[int64]struct{}, len(c.RoomIDs))
	for _, roomID := range c.RoomIDs {
		if _, ok := seen[roomID]; ok {
			return calendar.Range{}, failure.BadRequestFromString(fmt.Sprintf("room %d selected more than once", roomID)) //nolint:wrapcheck
		}

		seen[roomID] = struct{}{}
	}

	return parseStay(c.CheckInDate, c.CheckOutDate)
}

// ToModels builds one booking per selected room. Ids are assigned by the store.
func (c *CreateBookingRequest) ToModels(stay calendar.Range, user string) []model.Booking {
	now := timezone.Now()
	bookings := make([]model.Booking, len(c.RoomIDs))

	for i, roomID := range c.RoomIDs {
		bookings[i] = model.Booking{
			RoomID:        roomID,
			CheckInDate:   stay.Start,
			CheckOutDate:  stay.End,
			Status:        c.Status,
			PricePerNight: c.PricePerNight,
			Deposit:       c.Deposit,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return bookings
}

type UpdateBookingRequest struct {
	Customer      customerDto.CustomerRequest `json:"customer"`
	RoomID        int64                       `json:"room_id"         validate:"required,gt=0"`
	CheckInDate   string                      `json:"check_in_date"   validate:"required,date"`
	CheckOutDate  string                      `json:"check_out_date"  validate:"required,date"`
	Status        string                      `json:"status"          validate:"required,oneof=Paid Deposit Unpaid"`
	PricePerNight float64                     `json:"price_per_night" validate:"gte=0"`
	Deposit       float64                     `json:"deposit"         validate:"gte=0"`
}

func (u *UpdateBookingRequest) Stay() (calendar.Range, error) {
	return parseStay(u.CheckInDate, u.CheckOutDate)
}

func (u *UpdateBookingRequest) ToModel(stay calendar.Range, user string) model.Booking {
	return model.Booking{
		RoomID:        u.RoomID,
		CheckInDate:   stay.Start,
		CheckOutDate:  stay.End,
		Status:        u.Status,
		PricePerNight: u.PricePerNight,
		Deposit:       u.Deposit,
		Metadata: gModel.Metadata{
			ModifiedAt: timezone.Now(),
			ModifiedBy: user,
		},
	}
}

func parseStay(checkIn, checkOut string) (calendar.Range, error) {
	stay, err := calendar.ParseRange(checkIn, checkOut)
	if err != nil {
		return calendar.Range{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	return stay, nil
}

type BookingResponse struct {
	BookingID     string                        `json:"booking_id"`
	CustomerID    int64                         `json:"customer_id"`
	RoomID        int64                         `json:"room_id"`
	CheckInDate   string                        `json:"check_in_date"`
	CheckOutDate  string                        `json:"check_out_date"`
	Status        string                        `json:"status"`
	PricePerNight float64                       `json:"price_per_night"`
	Deposit       float64                       `json:"deposit"`
	Nights        int                           `json:"nights"`
	TotalPrice    float64                       `json:"total_price"`
	Customer      *customerDto.CustomerResponse `json:"customer,omitempty"`
	Room          *roomDto.RoomResponse         `json:"room,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.BookingID = model.BookingID
	r.CustomerID = model.CustomerID
	r.RoomID = model.RoomID
	r.CheckInDate = model.CheckInDate.String()
	r.CheckOutDate = model.CheckOutDate.String()
	r.Status = model.Status
	r.PricePerNight = model.PricePerNight
	r.Deposit = model.Deposit
	r.Nights = model.Nights()
	r.TotalPrice = model.TotalPrice()
	r.Metadata.FromModel(model.Metadata)
}

// WithParties attaches the customer and room projections.
func (r *BookingResponse) WithParties(customer customerModel.Customer, room roomModel.Room) {
	r.Customer = &customerDto.CustomerResponse{}
	r.Customer.FromModel(customer)

	r.Room = &roomDto.RoomResponse{}
	r.Room.FromModel(room)
}

func (r *BookingResponse) FromDetail(detail model.BookingDetail) {
	r.FromModel(detail.Booking)
	r.WithParties(
		customerModel.Customer{
			CustomerID:   detail.CustomerID,
			CustomerName: detail.CustomerName,
			Phone:        detail.Phone,
			Email:        detail.Email,
			Address:      detail.Address,
			TaxID:        detail.TaxID,
		},
		roomModel.Room{
			RoomID:     detail.RoomID,
			RoomNumber: detail.RoomNumber,
			RoomType:   detail.RoomType,
			BedType:    detail.BedType,
			Floor:      detail.Floor,
		},
	)
}

type GetBookingsResponse struct {
	Start     string            `json:"start"`
	End       string            `json:"end"`
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromDetails(window calendar.Range, details []model.BookingDetail) {
	r.Start = window.Start.String()
	r.End = window.End.String()
	r.TotalData = len(details)

	r.Bookings = make([]BookingResponse, len(details))
	for i, detail := range details {
		r.Bookings[i].FromDetail(detail)
	}
}

type DeleteBookingResponse struct {
	Success bool `json:"success"`
}
