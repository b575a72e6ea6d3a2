package service

import (
	"context"
	"fmt"
	"strconv"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/session"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	causeAdminUpdate = "admin.update"
	causeAdminFlag   = "admin.flag"
	causeAdminReset  = "admin.reset"
)

type Room interface {
	Seed(ctx context.Context) error
	GetAll(ctx context.Context, filter dto.RoomFilter) ([]dto.RoomResponse, error)
	GetAllAdmin(ctx context.Context) ([]dto.RoomResponse, error)
	Get(ctx context.Context, id int) (dto.RoomResponse, error)
	UpdateFlags(ctx context.Context, id int, req dto.UpdateRoomRequest) (dto.RoomResponse, error)
	SetFlag(ctx context.Context, id int, req dto.SetFlagRequest) (dto.RoomResponse, error)
	Reset(ctx context.Context, id int) (dto.RoomResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, kafka kafka.Client, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		kafka: kafka,
		otel:  otel,
	}
}

// Seed writes the initial inventory when the room collection does not exist yet.
func (s *serviceImpl) Seed(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Seed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.cfg.App.SeedRooms {
		log.Debug().Msg("room seeding disabled")

		return nil
	}

	seeded, err := s.repo.Seed(ctx, model.SeedRooms())
	if err != nil {
		log.Error().Err(err).Msg("failed to seed rooms")

		return fmt.Errorf("failed to seed rooms: %w", err)
	}

	scope.SetAttribute("room.seeded", seeded)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, filter dto.RoomFilter) ([]dto.RoomResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()

	rooms := s.repo.List(ctx)

	if filter.AvailableOnly {
		available := make([]model.Room, 0, len(rooms))
		for _, room := range rooms {
			if room.Available() {
				available = append(available, room)
			}
		}

		rooms = available
	}

	scope.SetAttribute("room.count", len(rooms))

	return dto.FromModels(rooms), nil
}

func (s *serviceImpl) GetAllAdmin(ctx context.Context) ([]dto.RoomResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAllAdmin")
	defer scope.End()

	if err := session.RequireAdmin(ctx); err != nil {
		scope.TraceError(err)

		return nil, err //nolint:wrapcheck
	}

	return dto.FromModels(s.repo.List(ctx)), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) UpdateFlags(ctx context.Context, id int, req dto.UpdateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.UpdateFlags")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = session.RequireAdmin(ctx); err != nil {
		return res, err //nolint:wrapcheck
	}

	patch := req.ToPatch()
	if patch.Empty() {
		return res, failure.BadRequestFromString("at least one of occupied, needsCleaning, checkedOut is required") //nolint:wrapcheck
	}

	return s.update(ctx, id, causeAdminUpdate, func(room *model.Room) error {
		patch.Apply(room)

		return nil
	})
}

func (s *serviceImpl) SetFlag(ctx context.Context, id int, req dto.SetFlagRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.SetFlag")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = session.RequireAdmin(ctx); err != nil {
		return res, err //nolint:wrapcheck
	}

	if req.Value == nil {
		return res, failure.BadRequestFromString("value is required") //nolint:wrapcheck
	}

	flag := model.Flag(req.Flag)
	if err = (&model.Room{}).SetFlag(flag, *req.Value); err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	scope.SetAttributes(map[string]any{
		"room.flag":  req.Flag,
		"room.value": *req.Value,
	})

	return s.update(ctx, id, causeAdminFlag, func(room *model.Room) error {
		return room.SetFlag(flag, *req.Value)
	})
}

func (s *serviceImpl) Reset(ctx context.Context, id int) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Reset")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = session.RequireAdmin(ctx); err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.update(ctx, id, causeAdminReset, func(room *model.Room) error {
		room.Reset()

		return nil
	})
}

func (s *serviceImpl) update(ctx context.Context, id int, cause string, mutate func(room *model.Room) error) (res dto.RoomResponse, err error) {
	room, err := s.repo.Update(ctx, id, mutate)
	if err != nil {
		log.Error().Err(err).Int("room_id", id).Str("cause", cause).Msg("failed to update room")

		return res, err //nolint:wrapcheck
	}

	log.Info().Int("room_id", id).Str("status", string(room.Status())).Str("cause", cause).Msg("room updated")

	s.publishStatus(ctx, room, cause)

	res.FromModel(room)

	return res, nil
}

// publishStatus is best effort; the room change is already persisted.
func (s *serviceImpl) publishStatus(ctx context.Context, room model.Room, cause string) {
	event := model.NewStatusUpdatedEvent(room, cause, timezone.Now())

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Room, kafka.Message{
		Key:   strconv.Itoa(room.ID),
		Value: event,
	})
	if err != nil {
		log.Warn().Err(err).Int("room_id", room.ID).Msg("failed to publish room status event")
	}
}
