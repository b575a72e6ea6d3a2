package model_test

import (
	"hotel/internal/domains/booking/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
	}{
		{name: "one night", checkIn: date(2024, 1, 1, 0), checkOut: date(2024, 1, 2, 0), expected: 1},
		{name: "two nights", checkIn: date(2024, 1, 1, 0), checkOut: date(2024, 1, 3, 0), expected: 2},
		{name: "across month end", checkIn: date(2024, 1, 30, 0), checkOut: date(2024, 2, 2, 0), expected: 3},
		{name: "partial day rounds up", checkIn: date(2024, 1, 1, 14), checkOut: date(2024, 1, 2, 16), expected: 2},
		{name: "same day", checkIn: date(2024, 1, 1, 0), checkOut: date(2024, 1, 1, 0), expected: 0},
		{name: "reversed", checkIn: date(2024, 1, 3, 0), checkOut: date(2024, 1, 1, 0), expected: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestNightsAcrossDaylightSavingShift(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// clocks go back on 2024-10-27, the stay is 25 hours long
	checkIn := time.Date(2024, 10, 27, 0, 0, 0, 0, london)
	checkOut := time.Date(2024, 10, 28, 0, 0, 0, 0, london)
	assert.Equal(t, 1, model.Nights(checkIn, checkOut))

	// clocks go forward on 2024-03-31, the stay is 23 hours long
	checkIn = time.Date(2024, 3, 31, 0, 0, 0, 0, london)
	checkOut = time.Date(2024, 4, 1, 0, 0, 0, 0, london)
	assert.Equal(t, 1, model.Nights(checkIn, checkOut))
}

func TestTotalCost(t *testing.T) {
	for n := 1; n <= 30; n++ {
		assert.Equal(t, float64(n)*100, model.TotalCost(n, 100))
		assert.Equal(t, float64(n)*200, model.TotalCost(n, 200))
	}
}

func TestNewConfirmedEvent(t *testing.T) {
	booking := model.Booking{
		ID:          "b1",
		RoomID:      1,
		RoomType:    "Standard",
		Nights:      2,
		TotalCost:   200,
		BookingDate: date(2024, 1, 1, 9),
		Status:      model.StatusConfirmed,
	}

	event := model.NewConfirmedEvent(booking)

	assert.Equal(t, model.EventTypeConfirmed, event.Type)
	assert.Equal(t, "b1", event.BookingID)
	assert.Equal(t, "2024-01-01T09:00:00Z", event.BookedAt)
}
