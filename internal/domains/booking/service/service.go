package service

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/session"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const causeBookingCreated = "booking.created"

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) ([]dto.BookingResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepository.Room
	cfg      *config.Config
	kafka    kafka.Client
	otel     otel.Otel

	// mu covers the booking append and the room update as one step.
	mu sync.Mutex
}

func New(repo repository.Booking, roomRepo roomRepository.Room, cfg *config.Config, kafka kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		kafka:    kafka,
		otel:     otel,
	}
}

// Create books a room for the requested stay and marks it occupied. If the room cannot be
// marked, the appended booking is removed again before the error is returned.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	roomID := int(req.RoomID)
	scope.SetAttribute("room_id", roomID)

	checkIn, err := timezone.ParseDate(req.CheckIn)
	if err != nil {
		return res, failure.BadRequestFromString("checkIn must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	checkOut, err := timezone.ParseDate(req.CheckOut)
	if err != nil {
		return res, failure.BadRequestFromString("checkOut must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.roomRepo.Get(ctx, roomID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	nights := model.Nights(checkIn, checkOut)
	if nights <= 0 {
		return res, failure.BadRequestFromString("checkOut must be after checkIn") //nolint:wrapcheck
	}

	booking := model.Booking{
		ID:          uuid.NewString(),
		RoomID:      room.ID,
		RoomType:    room.Type,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Nights:      nights,
		TotalCost:   model.TotalCost(nights, room.Price),
		GuestName:   req.GuestName,
		GuestEmail:  req.GuestEmail,
		GuestPhone:  req.GuestPhone,
		BookingDate: timezone.Now(),
		Status:      model.StatusConfirmed,
	}

	if err = s.repo.Append(ctx, booking); err != nil {
		log.Error().Err(err).Int("room_id", roomID).Msg("failed to append booking")

		return res, err //nolint:wrapcheck
	}

	room, err = s.roomRepo.Update(ctx, roomID, func(r *roomModel.Room) error {
		r.Occupied = true

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int("room_id", roomID).Str("booking_id", booking.ID).Msg("failed to mark room occupied")
		s.rollback(ctx, booking.ID)
		scope.AddEvent("booking.rolled_back")

		return res, err //nolint:wrapcheck
	}

	scope.SetAttributes(map[string]any{
		"booking_id":     booking.ID,
		"booking.nights": nights,
	})

	log.Info().Str("booking_id", booking.ID).Int("room_id", roomID).Int("nights", nights).Msg("booking confirmed")

	s.publish(ctx, booking, room)

	res.FromModel(booking)

	return res, nil
}

// rollback removes a booking whose room update failed. It runs even if the request was cancelled.
func (s *serviceImpl) rollback(ctx context.Context, bookingID string) {
	if err := s.repo.Remove(context.WithoutCancel(ctx), bookingID); err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to roll back booking, booking has no occupied room")

		return
	}

	log.Warn().Str("booking_id", bookingID).Msg("booking rolled back")
}

// GetAll lists bookings in insertion order unless a sort direction over bookingDate is requested.
// A zero limit returns everything.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = session.RequireAdmin(ctx); err != nil {
		return nil, err //nolint:wrapcheck
	}

	bookings := s.repo.List(ctx)

	if params.SortDir != constant.Empty {
		slices.SortStableFunc(bookings, func(a, b model.Booking) int {
			if params.Descending() {
				return b.BookingDate.Compare(a.BookingDate)
			}

			return a.BookingDate.Compare(b.BookingDate)
		})
	}

	if params.Limit > 0 {
		bookings = bookings[:min(params.Limit, len(bookings))]
	}

	scope.SetAttribute("booking.count", len(bookings))

	return dto.FromModels(bookings), nil
}

// publish is best effort; both writes are already persisted.
func (s *serviceImpl) publish(ctx context.Context, booking model.Booking, room roomModel.Room) {
	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Booking, kafka.Message{
		Key:   booking.ID,
		Value: model.NewConfirmedEvent(booking),
	})
	if err != nil {
		log.Warn().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking event")
	}

	err = s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Room, kafka.Message{
		Key:   strconv.Itoa(room.ID),
		Value: roomModel.NewStatusUpdatedEvent(room, causeBookingCreated, booking.BookingDate),
	})
	if err != nil {
		log.Warn().Err(err).Int("room_id", room.ID).Msg("failed to publish room status event")
	}
}

