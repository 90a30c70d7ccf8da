package model

import (
	"time"

	"frontdesk/shared/calendar"
)

const (
	TableName  = "cleaning_statuses"
	EntityName = "cleaning_status"

	FieldID          = "cleaning_status_id"
	FieldRoomID      = "room_id"
	FieldStatus      = "status"
	FieldLastUpdated = "last_updated"
)

const (
	StatusClean         = "Clean"
	StatusNeedsCleaning = "Needs Cleaning"
)

type CleaningStatus struct {
	CleaningStatusID int64     `db:"cleaning_status_id"`
	RoomID           int64     `db:"room_id"`
	Status           string    `db:"status"`
	LastUpdated      time.Time `db:"last_updated"`
	RoomNumber       string    `db:"room_number"        table:"rooms"`
}

func (CleaningStatus) GetJoinQuery() string {
	return "JOIN rooms ON rooms.room_id = cleaning_statuses.room_id"
}

// ShouldReset reports whether the daily reset flips this room to Needs Cleaning.
// It fires only for an occupied room that is Clean and was last touched before today,
// so a room a housekeeper marked Clean earlier today is left alone.
func (c CleaningStatus) ShouldReset(occupiedToday bool, today calendar.Date, loc *time.Location) bool {
	if !occupiedToday || c.Status != StatusClean {
		return false
	}

	return calendar.DateOf(c.LastUpdated.In(loc)).Before(today)
}

func IsValidStatus(status string) bool {
	return status == StatusClean || status == StatusNeedsCleaning
}
