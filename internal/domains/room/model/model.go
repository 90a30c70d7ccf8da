package model

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "room_id"
	FieldRoomNumber = "room_number"
	FieldRoomType   = "room_type"
	FieldBedType    = "bed_type"
	FieldFloor      = "floor"
)

const (
	TypeRiverView    = "River view"
	TypeStandardView = "Standard view"
	TypeCottage      = "Cottage"

	BedDouble = "Double bed"
	BedTwin   = "Twin bed"
)

// Room is seeded reference data. Nothing in the service writes to it.
type Room struct {
	RoomID     int64  `db:"room_id"`
	RoomNumber string `db:"room_number"`
	RoomType   string `db:"room_type"`
	BedType    string `db:"bed_type"`
	Floor      int    `db:"floor"`
}

func IDs(rooms []Room) []int64 {
	ids := make([]int64, len(rooms))
	for i, room := range rooms {
		ids[i] = room.RoomID
	}

	return ids
}
