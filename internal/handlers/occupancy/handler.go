package occupancy

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/occupancy/dto"
	"frontdesk/internal/domains/occupancy/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Occupancy
	otel    otel.Otel
}

func New(service service.Occupancy, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/occupancy", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetOccupancy)
		routerGroup.Get("/daily", handler.GetDaily)
		routerGroup.Get("/statistics", handler.GetStatistics)
	})
}

// GetOccupancy counts occupied rooms for every day of a window.
// @Summary Get occupancy by day
// @Description Days without any occupied room are left out. Pass start and end, or year and month.
// @Tags Occupancy
// @Produce json
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end, exclusive (YYYY-MM-DD)"
// @Param year query int false "Calendar year"
// @Param month query int false "Calendar month (1-12)"
// @Success 200 {object} response.Data[dto.OccupancyResponse] "Occupied rooms per day"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/occupancy [get]
// @Security BearerAuth
func (handler *Handler) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupancy")
	defer scope.End()

	params := gDto.WindowParams{}
	params.FromRequest(r)

	occupancy, err := handler.service.ByDay(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupancy")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, occupancy)
}

// GetDaily lists arrivals, departures and in-house guests for one day.
// @Summary Get daily occupancy
// @Tags Occupancy
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.DailyResponse] "Daily summary"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/occupancy/daily [get]
// @Security BearerAuth
func (handler *Handler) GetDaily(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDaily")
	defer scope.End()

	req := dto.DailyRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	daily, err := handler.service.Daily(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", req.Date).Msg("failed to get daily occupancy")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, daily)
}

// GetStatistics reports booked room nights per room and room type.
// @Summary Get occupancy statistics
// @Tags Occupancy
// @Produce json
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end, exclusive (YYYY-MM-DD)"
// @Param year query int false "Calendar year"
// @Param month query int false "Calendar month (1-12)"
// @Success 200 {object} response.Data[dto.StatisticsResponse] "Room night statistics"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/occupancy/statistics [get]
// @Security BearerAuth
func (handler *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatistics")
	defer scope.End()

	params := gDto.WindowParams{}
	params.FromRequest(r)

	stats, err := handler.service.Statistics(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupancy statistics")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}
