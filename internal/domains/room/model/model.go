package model

import (
	"fmt"
	"time"
)

const (
	EntityName = "room"
	BlobName   = "rooms.json"

	EventTypeStatusUpdated = "room.status.updated"
)

// Status is the single label shown for a room, derived from its flags.
type Status string

const (
	StatusOccupied      Status = "occupied"
	StatusNeedsCleaning Status = "needs_cleaning"
	StatusCheckedOut    Status = "checked_out"
	StatusAvailable     Status = "available"
)

// Flag names one of the three independent room flags, spelled as in the stored document.
type Flag string

const (
	FlagOccupied      Flag = "occupied"
	FlagNeedsCleaning Flag = "needsCleaning"
	FlagCheckedOut    Flag = "checkedOut"
)

var ErrUnknownFlag = fmt.Errorf("flag must be one of %s, %s, %s", FlagOccupied, FlagNeedsCleaning, FlagCheckedOut)

type Room struct {
	ID            int     `json:"id"`
	Type          string  `json:"type"`
	Price         float64 `json:"price"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	Occupied      bool    `json:"occupied"`
	NeedsCleaning bool    `json:"needsCleaning"`
	CheckedOut    bool    `json:"checkedOut"`
}

// Status picks a label by priority: occupied, needs cleaning, checked out, available.
func (r Room) Status() Status {
	switch {
	case r.Occupied:
		return StatusOccupied
	case r.NeedsCleaning:
		return StatusNeedsCleaning
	case r.CheckedOut:
		return StatusCheckedOut
	default:
		return StatusAvailable
	}
}

func (r Room) Available() bool {
	return r.Status() == StatusAvailable
}

// SetFlag overwrites exactly one flag.
func (r *Room) SetFlag(flag Flag, value bool) error {
	switch flag {
	case FlagOccupied:
		r.Occupied = value
	case FlagNeedsCleaning:
		r.NeedsCleaning = value
	case FlagCheckedOut:
		r.CheckedOut = value
	default:
		return ErrUnknownFlag
	}

	return nil
}

// Reset clears all three flags.
func (r *Room) Reset() {
	r.Occupied = false
	r.NeedsCleaning = false
	r.CheckedOut = false
}

// Patch holds a partial flag update. Nil fields are left untouched.
type Patch struct {
	Occupied      *bool
	NeedsCleaning *bool
	CheckedOut    *bool
}

func (p Patch) Apply(r *Room) {
	if p.Occupied != nil {
		r.Occupied = *p.Occupied
	}

	if p.NeedsCleaning != nil {
		r.NeedsCleaning = *p.NeedsCleaning
	}

	if p.CheckedOut != nil {
		r.CheckedOut = *p.CheckedOut
	}
}

func (p Patch) Empty() bool {
	return p.Occupied == nil && p.NeedsCleaning == nil && p.CheckedOut == nil
}

// StatusUpdatedEvent is published after any change to a room's flags.
type StatusUpdatedEvent struct {
	Type          string    `json:"type"`
	RoomID        int       `json:"roomId"`
	Status        Status    `json:"status"`
	Occupied      bool      `json:"occupied"`
	NeedsCleaning bool      `json:"needsCleaning"`
	CheckedOut    bool      `json:"checkedOut"`
	Cause         string    `json:"cause"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewStatusUpdatedEvent(room Room, cause string, at time.Time) StatusUpdatedEvent {
	return StatusUpdatedEvent{
		Type:          EventTypeStatusUpdated,
		RoomID:        room.ID,
		Status:        room.Status(),
		Occupied:      room.Occupied,
		NeedsCleaning: room.NeedsCleaning,
		CheckedOut:    room.CheckedOut,
		Cause:         cause,
		UpdatedAt:     at,
	}
}

const (
	standardDescription = "Kamar standard yang nyaman dengan fasilitas modern"
	deluxeDescription   = "Kamar deluxe mewah dengan fasilitas premium dan pemandangan kota"
)

// SeedRooms is the initial inventory written when no room collection exists.
func SeedRooms() []Room {
	return []Room{
		{ID: 1, Type: "Standard", Price: 100, Description: standardDescription, Image: "/images/standard-room.jpg"},
		{ID: 2, Type: "Standard", Price: 100, Description: standardDescription, Image: "/images/standard-room.jpg"},
		{ID: 3, Type: "Deluxe", Price: 200, Description: deluxeDescription, Image: "/images/deluxe-room.jpg"},
		{ID: 4, Type: "Deluxe", Price: 200, Description: deluxeDescription, Image: "/images/deluxe-room.jpg"},
	}
}
