package model

import (
	"math"
	"time"
)

const (
	EntityName = "booking"
	BlobName   = "bookings.json"

	StatusConfirmed = "confirmed"

	EventTypeConfirmed = "booking.confirmed"
)

const day = 24 * time.Hour

type Booking struct {
	ID          string    `json:"id"`
	RoomID      int       `json:"roomId"`
	RoomType    string    `json:"roomType"`
	CheckIn     string    `json:"checkIn"`
	CheckOut    string    `json:"checkOut"`
	Nights      int       `json:"nights"`
	TotalCost   float64   `json:"totalCost"`
	GuestName   string    `json:"guestName"`
	GuestEmail  string    `json:"guestEmail"`
	GuestPhone  string    `json:"guestPhone"`
	BookingDate time.Time `json:"bookingDate"`
	Status      string    `json:"status"`
}

// Nights counts started days between check-in and check-out. It is zero or negative when
// check-out is not after check-in. Both ends are compared by wall clock so a daylight saving
// shift inside the stay does not add or drop a night.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(float64(wallClock(checkOut).Sub(wallClock(checkIn))) / float64(day)))
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// TotalCost prices a stay at the nightly rate.
func TotalCost(nights int, price float64) float64 {
	return float64(nights) * price
}

type ConfirmedEvent struct {
	Type      string  `json:"type"`
	BookingID string  `json:"bookingId"`
	RoomID    int     `json:"roomId"`
	RoomType  string  `json:"roomType"`
	CheckIn   string  `json:"checkIn"`
	CheckOut  string  `json:"checkOut"`
	Nights    int     `json:"nights"`
	TotalCost float64 `json:"totalCost"`
	BookedAt  string  `json:"bookedAt"`
}

func NewConfirmedEvent(booking Booking) ConfirmedEvent {
	return ConfirmedEvent{
		Type:      EventTypeConfirmed,
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		RoomType:  booking.RoomType,
		CheckIn:   booking.CheckIn,
		CheckOut:  booking.CheckOut,
		Nights:    booking.Nights,
		TotalCost: booking.TotalCost,
		BookedAt:  booking.BookingDate.Format(time.RFC3339),
	}
}
