package cleaning

import (
	"net/http"
	"strconv"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/cleaning/model/dto"
	"frontdesk/internal/domains/cleaning/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Cleaning
	otel    otel.Otel
}

func New(service service.Cleaning, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cleaning-statuses", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCleaningStatuses)
		routerGroup.Put("/{room_id}", handler.SetCleaningStatus)
	})
}

// GetCleaningStatuses lists the cleaning status of every room.
// @Summary Get cleaning statuses
// @Description Rooms occupied today that were last cleaned before today are flipped to
// @Description Needs Cleaning first. Their ids are returned in reset_room_ids.
// @Tags Cleaning
// @Produce json
// @Success 200 {object} response.Data[dto.GetCleaningStatusesResponse] "Cleaning statuses"
// @Failure 500 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/cleaning-statuses [get]
// @Security BearerAuth
func (handler *Handler) GetCleaningStatuses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCleaningStatuses")
	defer scope.End()

	statuses, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cleaning statuses")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, statuses)
}

// SetCleaningStatus marks a room Clean or Needs Cleaning.
// @Summary Set cleaning status
// @Tags Cleaning
// @Accept json
// @Produce json
// @Param room_id path int true "Room ID"
// @Param request body dto.SetStatusRequest true "Set Status Request"
// @Success 200 {object} response.Data[dto.CleaningStatusResponse] "Updated cleaning status"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cleaning-statuses/{room_id} [put]
// @Security BearerAuth
func (handler *Handler) SetCleaningStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetCleaningStatus")
	defer scope.End()

	roomID, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamRoomID), 10, 64)
	if err != nil || roomID <= 0 {
		err = failure.BadRequestFromString("room id must be a positive number")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.SetStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	status, err := handler.service.SetStatus(ctx, roomID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("room_id", roomID).Msg("failed to set cleaning status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room " + strconv.FormatInt(roomID, 10) + " marked " + req.Status + " by user " + user)

	response.WithJSON(w, http.StatusOK, status)
}
