package service_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel/mocks"
	"hotel/infras/storage"
	bookingDto "hotel/internal/domains/booking/model/dto"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	"hotel/internal/domains/dashboard/service"
	roomMocks "hotel/internal/domains/room/mocks"
	roomModel "hotel/internal/domains/room/model"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/shared/failure"
	"hotel/shared/session"
)

func TestDashboardService_SummaryRequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.New(roomMocks.NewMockRoom(ctrl), nil, mocks.NewOtel())

	_, err := svc.Summary(context.Background())

	assert.True(t, failure.Is(err, http.StatusUnauthorized))
}

func TestDashboardService_Summary(t *testing.T) {
	cfg := &config.Config{}
	ctx := context.Background()
	blob := storage.NewFile(t.TempDir(), mocks.NewOtel())

	roomRepo := roomRepository.New(cfg, blob, mocks.NewOtel())
	_, err := roomRepo.Seed(ctx, roomModel.SeedRooms())
	require.NoError(t, err)

	bookings := bookingService.New(bookingRepository.New(cfg, blob, mocks.NewOtel()), roomRepo, cfg, kafka.New(cfg), mocks.NewOtel())

	for i := range 12 {
		_, err = bookings.Create(ctx, bookingDto.CreateBookingRequest{
			RoomID:   1,
			CheckIn:  fmt.Sprintf("2024-02-%02d", i+1),
			CheckOut: fmt.Sprintf("2024-02-%02d", i+2),
		})
		require.NoError(t, err)
	}

	_, err = roomRepo.Update(ctx, 2, func(room *roomModel.Room) error {
		room.NeedsCleaning = true

		return nil
	})
	require.NoError(t, err)

	svc := service.New(roomRepo, bookings, mocks.NewOtel())

	admin := session.WithSession(ctx, &session.Session{ID: "s1", IsAdmin: true})

	res, err := svc.Summary(admin)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Rooms.Total)
	assert.Equal(t, 1, res.Rooms.Occupied)
	assert.Equal(t, 1, res.Rooms.NeedsCleaning)
	assert.Equal(t, 2, res.Rooms.Available)
	require.Len(t, res.RecentBookings, 10)
	assert.False(t, res.RecentBookings[0].BookingDate.Before(res.RecentBookings[9].BookingDate))
	assert.Equal(t, "2024-02-12", res.RecentBookings[0].CheckIn)
}
