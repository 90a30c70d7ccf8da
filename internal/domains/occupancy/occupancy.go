// Package occupancy holds the pure interval logic shared by availability checks,
// the booking write path, calendar aggregation and housekeeping.
//
// Every function works on a snapshot of bookings and never touches the store.
// Stays are half-open ranges: a guest checking out on day D does not occupy D.
package occupancy

import (
	"slices"

	"frontdesk/shared/calendar"
)

type Occupant interface {
	GetBookingID() string
	GetRoomID() int64
	Stay() calendar.Range
}

type RoomState string

const (
	RoomVacant   RoomState = "Vacant"
	RoomOccupied RoomState = "Occupied"
	RoomCheckIn  RoomState = "CheckIn"
	RoomCheckOut RoomState = "CheckOut"
	RoomTurnover RoomState = "Turnover"
)

type DaySummary[O Occupant] struct {
	CheckIns  []O
	CheckOuts []O
	Staying   []O
}

// FindOccupiedRooms returns the rooms holding at least one booking that overlaps
// [checkIn, checkOut). The booking named by excludeBookingID is ignored so an edited
// booking does not collide with itself.
//
// An empty or inverted range marks every room in allRooms as occupied.
func FindOccupiedRooms[O Occupant](bookings []O, checkIn, checkOut calendar.Date, excludeBookingID string, allRooms []int64) map[int64]struct{} {
	requested := calendar.Range{Start: checkIn, End: checkOut}
	if !requested.Valid() {
		return allOccupied(allRooms)
	}

	occupied := make(map[int64]struct{})

	for _, booking := range bookings {
		if excludeBookingID != "" && booking.GetBookingID() == excludeBookingID {
			continue
		}

		if booking.Stay().Overlaps(requested) {
			occupied[booking.GetRoomID()] = struct{}{}
		}
	}

	return occupied
}

// ParseAndFindOccupied is FindOccupiedRooms for raw YYYY-MM-DD input. Dates that
// do not parse mark every room as occupied.
func ParseAndFindOccupied[O Occupant](bookings []O, checkIn, checkOut, excludeBookingID string, allRooms []int64) map[int64]struct{} {
	requested, err := calendar.ParseRange(checkIn, checkOut)
	if err != nil {
		return allOccupied(allRooms)
	}

	return FindOccupiedRooms(bookings, requested.Start, requested.End, excludeBookingID, allRooms)
}

// AvailableRooms returns allRooms minus occupied, keeping the order of allRooms.
func AvailableRooms(allRooms []int64, occupied map[int64]struct{}) []int64 {
	available := make([]int64, 0, len(allRooms))

	for _, roomID := range allRooms {
		if _, ok := occupied[roomID]; !ok {
			available = append(available, roomID)
		}
	}

	return available
}

// RoomsOccupiedOn lists the rooms whose stay covers day, ascending.
func RoomsOccupiedOn[O Occupant](bookings []O, day calendar.Date) []int64 {
	occupied := FindOccupiedRooms(bookings, day, day.AddDays(1), "", nil)

	roomIDs := make([]int64, 0, len(occupied))
	for roomID := range occupied {
		roomIDs = append(roomIDs, roomID)
	}

	slices.Sort(roomIDs)

	return roomIDs
}

// OccupancyByDay counts occupied rooms per day inside [windowStart, windowEnd).
// Days without any booking are absent from the map.
func OccupancyByDay[O Occupant](bookings []O, windowStart, windowEnd calendar.Date) map[calendar.Date]int {
	window := calendar.Range{Start: windowStart, End: windowEnd}
	counts := make(map[calendar.Date]int)

	if !window.Valid() {
		return counts
	}

	for _, booking := range bookings {
		stay := booking.Stay().Intersect(window)
		if !stay.Valid() {
			continue
		}

		for day := range stay.Days() {
			counts[day]++
		}
	}

	return counts
}

// BookingsOnDay partitions bookings into arrivals, departures and guests staying
// the night of day. Under same-day turnover a room shows up in more than one list.
func BookingsOnDay[O Occupant](bookings []O, day calendar.Date) DaySummary[O] {
	var summary DaySummary[O]

	for _, booking := range bookings {
		stay := booking.Stay()

		if stay.Start.Equal(day) {
			summary.CheckIns = append(summary.CheckIns, booking)
		}

		if stay.End.Equal(day) {
			summary.CheckOuts = append(summary.CheckOuts, booking)
		}

		if stay.Contains(day) {
			summary.Staying = append(summary.Staying, booking)
		}
	}

	return summary
}

// ClassifyRoom derives the front-desk state of one room on day together with the
// bookings that produced it.
func ClassifyRoom[O Occupant](bookings []O, roomID int64, day calendar.Date) (RoomState, []O) {
	var (
		involved                   []O
		arriving, leaving, staying bool
	)

	for _, booking := range bookings {
		if booking.GetRoomID() != roomID {
			continue
		}

		stay := booking.Stay()

		switch {
		case stay.Start.Equal(day):
			arriving = true
		case stay.End.Equal(day):
			leaving = true
		case stay.Contains(day):
			staying = true
		default:
			continue
		}

		involved = append(involved, booking)
	}

	switch {
	case arriving && leaving:
		return RoomTurnover, involved
	case arriving:
		return RoomCheckIn, involved
	case leaving && !staying:
		return RoomCheckOut, involved
	case staying:
		return RoomOccupied, involved
	default:
		return RoomVacant, involved
	}
}

// RoomNights sums, per room, the nights of each stay that fall inside window.
func RoomNights[O Occupant](bookings []O, window calendar.Range) map[int64]int {
	nights := make(map[int64]int)

	if !window.Valid() {
		return nights
	}

	for _, booking := range bookings {
		stay := booking.Stay().Intersect(window)
		if !stay.Valid() {
			continue
		}

		nights[booking.GetRoomID()] += stay.End.DaysSince(stay.Start)
	}

	return nights
}

func allOccupied(allRooms []int64) map[int64]struct{} {
	occupied := make(map[int64]struct{}, len(allRooms))
	for _, roomID := range allRooms {
		occupied[roomID] = struct{}{}
	}

	return occupied
}
