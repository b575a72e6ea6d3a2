package room

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/rooms", handler.GetRooms)
}

// AdminRouter expects the admin session gate to be installed on router.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/admin/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAdminRooms)
		routerGroup.Put("/{id}", handler.UpdateRoom)
		routerGroup.Patch("/{id}/flags", handler.SetRoomFlag)
		routerGroup.Post("/{id}/reset", handler.ResetRoom)
	})
}

func roomID(r *http.Request) (int, error) {
	id := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if id == nil || *id <= 0 {
		return 0, failure.BadRequestFromString("room id must be a positive number") //nolint:wrapcheck
	}

	return *id, nil
}

// GetRooms lists rooms with their derived status.
// @Summary List rooms
// @Description List every room, or only rooms whose status is available.
// @Tags Room
// @Produce json
// @Param available query bool false "Only available rooms"
// @Success 200 {object} response.Data[[]dto.RoomResponse] "Rooms"
// @Failure 500 {object} response.Error
// @Router /api/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	filter := dto.RoomFilter{}
	if available := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamAvailable)); available != nil {
		filter.AvailableOnly = *available
	}

	rooms, err := handler.service.GetAll(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetAdminRooms lists every room for the dashboard.
// @Summary List rooms (admin)
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[[]dto.RoomResponse] "Rooms"
// @Failure 401 {object} response.Error
// @Router /api/admin/rooms [get]
// @Security SessionAuth
func (handler *Handler) GetAdminRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdminRooms")
	defer scope.End()

	rooms, err := handler.service.GetAllAdmin(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// UpdateRoom replaces any subset of a room's flags.
// @Summary Update room flags
// @Description Set occupied, needsCleaning and checkedOut; omitted fields keep their value.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Flags"
// @Success 200 {object} response.Data[dto.RoomResponse] "Updated room"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /api/admin/rooms/{id} [put]
// @Security SessionAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id, err := roomID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomRequest{}
	if err = validator.Validate(http.MaxBytesReader(w, r.Body, constant.RequestMaxBodyBytes), &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.UpdateFlags(ctx, id, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room flags updated")

	response.WithJSON(w, http.StatusOK, room)
}

// SetRoomFlag overwrites exactly one flag.
// @Summary Set one room flag
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body dto.SetFlagRequest true "Flag and value"
// @Success 200 {object} response.Data[dto.RoomResponse] "Updated room"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /api/admin/rooms/{id}/flags [patch]
// @Security SessionAuth
func (handler *Handler) SetRoomFlag(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetRoomFlag")
	defer scope.End()

	id, err := roomID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.SetFlagRequest{}
	if err = validator.Validate(http.MaxBytesReader(w, r.Body, constant.RequestMaxBodyBytes), &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.SetFlag(ctx, id, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room flag set")

	response.WithJSON(w, http.StatusOK, room)
}

// ResetRoom clears all flags of a room.
// @Summary Reset room
// @Tags Admin
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Updated room"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /api/admin/rooms/{id}/reset [post]
// @Security SessionAuth
func (handler *Handler) ResetRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetRoom")
	defer scope.End()

	id, err := roomID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	room, err := handler.service.Reset(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room reset")

	response.WithJSON(w, http.StatusOK, room)
}
