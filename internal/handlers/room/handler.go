package room

import (
	"net/http"
	"strconv"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

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
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/available", handler.GetAvailableRooms)
		routerGroup.Get("/status", handler.GetStatusBoard)
		routerGroup.Delete("/cache", handler.RefreshCache)
		routerGroup.Get("/{id}", handler.GetRoomByID)
	})
}

// GetRooms lists every room in natural room number order.
// @Summary Get all rooms
// @Description Retrieve the room inventory ordered by room number.
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 500 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	rooms, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil || id <= 0 {
		err = failure.BadRequestFromString("room id must be a positive number")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("room_id", id).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// GetAvailableRooms lists rooms free for a stay.
// @Summary Get available rooms
// @Description Rooms with no booking overlapping [check_in, check_out). A malformed or empty
// @Description range is answered with every room marked occupied.
// @Tags Room
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param exclude_booking_id query string false "Booking to ignore, used when editing a booking"
// @Success 200 {object} response.Data[dto.AvailableRoomsResponse] "Available rooms"
// @Failure 500 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/rooms/available [get]
// @Security BearerAuth
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	req := dto.AvailableRoomsRequest{}
	req.FromRequest(r)

	rooms, err := handler.service.Available(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("check_in", req.CheckIn).Str("check_out", req.CheckOut).Msg("failed to get available rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetStatusBoard shows what every room looks like on a given day.
// @Summary Get room status board
// @Tags Room
// @Produce json
// @Param date query string false "Day to inspect (YYYY-MM-DD), defaults to today"
// @Param sort_by query string false "room_number, room_type or bed_type"
// @Success 200 {object} response.Data[dto.StatusBoardResponse] "Room status board"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/status [get]
// @Security BearerAuth
func (handler *Handler) GetStatusBoard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatusBoard")
	defer scope.End()

	req := dto.StatusBoardRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	board, err := handler.service.StatusBoard(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room status board")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, board)
}

// RefreshCache drops the cached room list.
// @Summary Refresh room cache
// @Tags Room
// @Produce json
// @Success 200 {object} response.Message "Room cache cleared"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/cache [delete]
// @Security BearerAuth
func (handler *Handler) RefreshCache(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshCache")
	defer scope.End()

	if err := handler.service.RefreshCache(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh room cache")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room cache cleared by user " + user)

	response.WithMessage(w, http.StatusOK, "Room cache cleared")
}
