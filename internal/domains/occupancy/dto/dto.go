package dto

import (
	"cmp"
	"maps"
	"math"
	"net/http"
	"slices"

	bookingModel "frontdesk/internal/domains/booking/model"
	bookingDto "frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/occupancy"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/calendar"
	"frontdesk/shared/constant"
)

type OccupancyResponse struct {
	Start      string         `json:"start"`
	End        string         `json:"end"`
	TotalRooms int            `json:"total_rooms"`
	Days       map[string]int `json:"days"`
}

func (r *OccupancyResponse) FromCounts(window calendar.Range, counts map[calendar.Date]int, totalRooms int) {
	r.Start = window.Start.String()
	r.End = window.End.String()
	r.TotalRooms = totalRooms

	r.Days = make(map[string]int, len(counts))
	for day, count := range counts {
		r.Days[day.String()] = count
	}
}

type DailyRequest struct {
	Date string `json:"date" validate:"omitempty,date"`
}

func (d *DailyRequest) FromRequest(r *http.Request) {
	d.Date = r.URL.Query().Get(constant.RequestParamDate)
}

type DailyResponse struct {
	Date       string                       `json:"date"`
	TotalRooms int                          `json:"total_rooms"`
	Occupied   int                          `json:"occupied"`
	CheckIns   []bookingDto.BookingResponse `json:"check_ins"`
	CheckOuts  []bookingDto.BookingResponse `json:"check_outs"`
	Staying    []bookingDto.BookingResponse `json:"staying"`
}

func (r *DailyResponse) FromSummary(day calendar.Date, summary occupancy.DaySummary[bookingModel.BookingDetail], totalRooms int) {
	r.Date = day.String()
	r.TotalRooms = totalRooms
	r.Occupied = len(summary.Staying)
	r.CheckIns = fromDetails(summary.CheckIns)
	r.CheckOuts = fromDetails(summary.CheckOuts)
	r.Staying = fromDetails(summary.Staying)
}

type RoomNights struct {
	RoomID     int64  `json:"room_id"`
	RoomNumber string `json:"room_number"`
	RoomType   string `json:"room_type"`
	Nights     int    `json:"nights"`
}

type RoomTypeNights struct {
	RoomType string `json:"room_type"`
	Rooms    int    `json:"rooms"`
	Nights   int    `json:"nights"`
}

type StatisticsResponse struct {
	Start           string           `json:"start"`
	End             string           `json:"end"`
	TotalRooms      int              `json:"total_rooms"`
	AvailableNights int              `json:"available_nights"`
	BookedNights    int              `json:"booked_nights"`
	OccupancyRate   float64          `json:"occupancy_rate"`
	ByRoom          []RoomNights     `json:"by_room"`
	ByRoomType      []RoomTypeNights `json:"by_room_type"`
}

// FromRoomNights builds the statistics page. Rooms are ranked by booked nights,
// busiest first. The rate is a percentage rounded to two decimals.
func (r *StatisticsResponse) FromRoomNights(window calendar.Range, rooms []roomModel.Room, nights map[int64]int) {
	r.Start = window.Start.String()
	r.End = window.End.String()
	r.TotalRooms = len(rooms)
	r.AvailableNights = len(rooms) * window.End.DaysSince(window.Start)
	r.BookedNights = 0
	r.ByRoom = make([]RoomNights, 0, len(rooms))

	byType := make(map[string]*RoomTypeNights)

	for _, room := range rooms {
		booked := nights[room.RoomID]
		r.BookedNights += booked

		r.ByRoom = append(r.ByRoom, RoomNights{
			RoomID:     room.RoomID,
			RoomNumber: room.RoomNumber,
			RoomType:   room.RoomType,
			Nights:     booked,
		})

		group, ok := byType[room.RoomType]
		if !ok {
			group = &RoomTypeNights{RoomType: room.RoomType}
			byType[room.RoomType] = group
		}

		group.Rooms++
		group.Nights += booked
	}

	slices.SortStableFunc(r.ByRoom, func(a, b RoomNights) int {
		return cmp.Or(cmp.Compare(b.Nights, a.Nights), cmp.Compare(a.RoomID, b.RoomID))
	})

	r.ByRoomType = make([]RoomTypeNights, 0, len(byType))
	for _, roomType := range slices.Sorted(maps.Keys(byType)) {
		r.ByRoomType = append(r.ByRoomType, *byType[roomType])
	}

	slices.SortStableFunc(r.ByRoomType, func(a, b RoomTypeNights) int {
		return cmp.Compare(b.Nights, a.Nights)
	})

	r.OccupancyRate = 0
	if r.AvailableNights > 0 {
		r.OccupancyRate = math.Round(float64(r.BookedNights)/float64(r.AvailableNights)*10000) / 100
	}
}

func fromDetails(details []bookingModel.BookingDetail) []bookingDto.BookingResponse {
	res := make([]bookingDto.BookingResponse, len(details))
	for i, detail := range details {
		res[i].FromDetail(detail)
	}

	return res
}
