package service

import (
	"cmp"
	"slices"

	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortRooms orders rooms by sortBy, falling back to the room number. Room numbers
// compare numerically where they contain digits, so "2" sorts before "10" and
// "A2" before "A10".
func sortRooms(rooms []model.Room, sortBy string) {
	// A Collator keeps internal buffers and must not be shared between goroutines.
	collator := collate.New(language.Und, collate.Numeric)

	byNumber := func(a, b model.Room) int {
		return collator.CompareString(a.RoomNumber, b.RoomNumber)
	}

	slices.SortStableFunc(rooms, func(a, b model.Room) int {
		switch sortBy {
		case dto.SortByRoomType:
			return cmp.Or(cmp.Compare(a.RoomType, b.RoomType), byNumber(a, b))
		case dto.SortByBedType:
			return cmp.Or(cmp.Compare(a.BedType, b.BedType), byNumber(a, b))
		default:
			return byNumber(a, b)
		}
	})
}
