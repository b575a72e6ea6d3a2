package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hotel/internal/domains/booking/model"
	"strconv"
	"strings"
	"time"
)

// RoomRef accepts a room id sent either as a JSON number or as a numeric string, as HTML forms do.
type RoomRef int

func (r *RoomRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("roomId: %w", err)
		}

		id, err := strconv.Atoi(strings.TrimSpace(str))
		if err != nil {
			return fmt.Errorf("roomId must be a number: %w", err)
		}

		*r = RoomRef(id)

		return nil
	}

	var id int
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("roomId must be a number: %w", err)
	}

	*r = RoomRef(id)

	return nil
}

// CreateBookingRequest carries guest contact fields as opaque text.
type CreateBookingRequest struct {
	RoomID     RoomRef `json:"roomId"     validate:"required,gt=0"`
	CheckIn    string  `json:"checkIn"    validate:"required,isodate"`
	CheckOut   string  `json:"checkOut"   validate:"required,isodate"`
	GuestName  string  `json:"guestName"  validate:"max=200"`
	GuestEmail string  `json:"guestEmail" validate:"max=200"`
	GuestPhone string  `json:"guestPhone" validate:"max=50"`
}

type BookingResponse struct {
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

func (b *BookingResponse) FromModel(booking model.Booking) {
	b.ID = booking.ID
	b.RoomID = booking.RoomID
	b.RoomType = booking.RoomType
	b.CheckIn = booking.CheckIn
	b.CheckOut = booking.CheckOut
	b.Nights = booking.Nights
	b.TotalCost = booking.TotalCost
	b.GuestName = booking.GuestName
	b.GuestEmail = booking.GuestEmail
	b.GuestPhone = booking.GuestPhone
	b.BookingDate = booking.BookingDate
	b.Status = booking.Status
}

func FromModels(bookings []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		res[i].FromModel(booking)
	}

	return res
}
