package dto

import (
	"time"

	"frontdesk/internal/domains/cleaning/model"
)

type CleaningStatusResponse struct {
	CleaningStatusID int64      `json:"cleaning_status_id"`
	RoomID           int64      `json:"room_id"`
	RoomNumber       string     `json:"room_number"`
	Status           string     `json:"status"`
	LastUpdated      *time.Time `json:"last_updated"`
}

// FromModel maps a stored status. A room that was never updated reports a null last_updated.
func (r *CleaningStatusResponse) FromModel(m model.CleaningStatus) {
	r.CleaningStatusID = m.CleaningStatusID
	r.RoomID = m.RoomID
	r.RoomNumber = m.RoomNumber
	r.Status = m.Status
	r.LastUpdated = nil

	if m.LastUpdated.Unix() > 0 {
		lastUpdated := m.LastUpdated
		r.LastUpdated = &lastUpdated
	}
}

type GetCleaningStatusesResponse struct {
	Statuses []CleaningStatusResponse `json:"statuses"`
	Reset    []int64                  `json:"reset_room_ids"`
}

func (r *GetCleaningStatusesResponse) FromModels(statuses []model.CleaningStatus, reset []int64) {
	r.Statuses = make([]CleaningStatusResponse, len(statuses))
	for i, status := range statuses {
		r.Statuses[i].FromModel(status)
	}

	r.Reset = reset
	if r.Reset == nil {
		r.Reset = []int64{}
	}
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof='Clean' 'Needs Cleaning'"`
}
