package dto

import (
	"hotel/internal/domains/room/model"
)

type RoomFilter struct {
	AvailableOnly bool
}

// UpdateRoomRequest replaces any subset of the three flags.
type UpdateRoomRequest struct {
	Occupied      *bool `json:"occupied"`
	NeedsCleaning *bool `json:"needsCleaning"`
	CheckedOut    *bool `json:"checkedOut"`
}

func (u *UpdateRoomRequest) ToPatch() model.Patch {
	return model.Patch{
		Occupied:      u.Occupied,
		NeedsCleaning: u.NeedsCleaning,
		CheckedOut:    u.CheckedOut,
	}
}

// SetFlagRequest overwrites a single flag.
type SetFlagRequest struct {
	Flag  string `json:"flag"  validate:"required,oneof=occupied needsCleaning checkedOut"`
	Value *bool  `json:"value" validate:"required"`
}

type RoomResponse struct {
	ID            int          `json:"id"`
	Type          string       `json:"type"`
	Price         float64      `json:"price"`
	Description   string       `json:"description"`
	Image         string       `json:"image"`
	Occupied      bool         `json:"occupied"`
	NeedsCleaning bool         `json:"needsCleaning"`
	CheckedOut    bool         `json:"checkedOut"`
	Status        model.Status `json:"status"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.Type = room.Type
	r.Price = room.Price
	r.Description = room.Description
	r.Image = room.Image
	r.Occupied = room.Occupied
	r.NeedsCleaning = room.NeedsCleaning
	r.CheckedOut = room.CheckedOut
	r.Status = room.Status()
}

func FromModels(rooms []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		res[i].FromModel(room)
	}

	return res
}
