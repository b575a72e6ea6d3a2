package service

import (
	"context"

	"hotel/infras/otel"
	bookingService "hotel/internal/domains/booking/service"
	"hotel/internal/domains/dashboard/model/dto"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/session"
)

type Dashboard interface {
	Summary(ctx context.Context) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	roomRepo roomRepository.Room
	bookings bookingService.Booking
	otel     otel.Otel
}

func New(roomRepo roomRepository.Room, bookings bookingService.Booking, otel otel.Otel) Dashboard {
	return &serviceImpl{
		roomRepo: roomRepo,
		bookings: bookings,
		otel:     otel,
	}
}

// Summary counts rooms by flag and lists the most recent bookings, newest first.
func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = session.RequireAdmin(ctx); err != nil {
		return res, err //nolint:wrapcheck
	}

	for _, room := range s.roomRepo.List(ctx) {
		res.Rooms.Add(room)
	}

	res.RecentBookings, err = s.bookings.GetAll(ctx, gDto.QueryParams{
		Limit:   constant.DefaultValueRecentBookings,
		SortDir: gDto.SortDirDesc,
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return res, nil
}
