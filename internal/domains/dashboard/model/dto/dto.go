package dto

import (
	bookingDto "hotel/internal/domains/booking/model/dto"
	roomModel "hotel/internal/domains/room/model"
)

// RoomCounts tallies rooms per raw flag. A room with several flags set counts once per flag;
// Available counts rooms whose derived status is available.
type RoomCounts struct {
	Total         int `json:"total"`
	Available     int `json:"available"`
	Occupied      int `json:"occupied"`
	NeedsCleaning int `json:"needsCleaning"`
	CheckedOut    int `json:"checkedOut"`
}

func (c *RoomCounts) Add(room roomModel.Room) {
	c.Total++

	if room.Available() {
		c.Available++
	}

	if room.Occupied {
		c.Occupied++
	}

	if room.NeedsCleaning {
		c.NeedsCleaning++
	}

	if room.CheckedOut {
		c.CheckedOut++
	}
}

type SummaryResponse struct {
	Rooms          RoomCounts                   `json:"rooms"`
	RecentBookings []bookingDto.BookingResponse `json:"recentBookings"`
}
