package model

import (
	"frontdesk/shared/calendar"
	"frontdesk/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "booking_id"
	FieldCustomerID    = "customer_id"
	FieldRoomID        = "room_id"
	FieldCheckInDate   = "check_in_date"
	FieldCheckOutDate  = "check_out_date"
	FieldStatus        = "status"
	FieldPricePerNight = "price_per_night"
	FieldDeposit       = "deposit"

	// SequenceName is the store-owned counter behind booking ids.
	SequenceName = "booking_number_seq"
)

const (
	StatusPaid    = "Paid"
	StatusDeposit = "Deposit"
	StatusUnpaid  = "Unpaid"
)

type Booking struct {
	BookingID     string        `db:"booking_id"`
	CustomerID    int64         `db:"customer_id"`
	RoomID        int64         `db:"room_id"`
	CheckInDate   calendar.Date `db:"check_in_date"`
	CheckOutDate  calendar.Date `db:"check_out_date"`
	Status        string        `db:"status"`
	PricePerNight float64       `db:"price_per_night"`
	Deposit       float64       `db:"deposit"`
	model.Metadata
}

func (b Booking) GetBookingID() string {
	return b.BookingID
}

func (b Booking) GetRoomID() int64 {
	return b.RoomID
}

func (b Booking) Stay() calendar.Range {
	return calendar.Range{Start: b.CheckInDate, End: b.CheckOutDate}
}

func (b Booking) Nights() int {
	return b.Stay().Nights()
}

func (b Booking) TotalPrice() float64 {
	return b.PricePerNight * float64(b.Nights())
}

// BookingDetail is a booking joined with its customer and room.
type BookingDetail struct {
	Booking
	CustomerName string `db:"customer_name" table:"customers"`
	Phone        string `db:"phone"         table:"customers"`
	Email        string `db:"email"         table:"customers"`
	Address      string `db:"address"       table:"customers"`
	TaxID        string `db:"tax_id"        table:"customers"`
	RoomNumber   string `db:"room_number"   table:"rooms"`
	RoomType     string `db:"room_type"     table:"rooms"`
	BedType      string `db:"bed_type"      table:"rooms"`
	Floor        int    `db:"floor"         table:"rooms"`
}

func (BookingDetail) GetJoinQuery() string {
	return "JOIN customers ON customers.customer_id = bookings.customer_id JOIN rooms ON rooms.room_id = bookings.room_id"
}
