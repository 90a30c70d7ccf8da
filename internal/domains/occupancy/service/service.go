package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/occupancy"
	"frontdesk/internal/domains/occupancy/dto"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared/calendar"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Occupancy interface {
	ByDay(ctx context.Context, params gDto.WindowParams) (dto.OccupancyResponse, error)
	Daily(ctx context.Context, req dto.DailyRequest) (dto.DailyResponse, error)
	Statistics(ctx context.Context, params gDto.WindowParams) (dto.StatisticsResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	roomRepo    roomRepo.Room
	cfg         *config.Config
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, roomRepo roomRepo.Room, cfg *config.Config, otel otel.Otel) Occupancy {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		cfg:         cfg,
		otel:        otel,
	}
}

// ByDay counts occupied rooms for every night in the window, the current hotel
// month when no window is given. Bookings are read fresh on every call.
func (s *serviceImpl) ByDay(ctx context.Context, params gDto.WindowParams) (res dto.OccupancyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".occupancy.ByDay")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	window, err := resolveWindow(params)
	if err != nil {
		return res, err
	}

	bookings, err := s.bookingRepo.ListOverlapping(ctx, window)
	if err != nil {
		log.Error().Err(err).Str("start", window.Start.String()).Str("end", window.End.String()).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to get occupancy: %w", err)
	}

	totalRooms, err := s.roomRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to get occupancy: %w", err)
	}

	res.FromCounts(window, occupancy.OccupancyByDay(bookings, window.Start, window.End), totalRooms)

	return res, nil
}

// Daily lists arrivals, departures and staying guests for one day, today by default.
func (s *serviceImpl) Daily(ctx context.Context, req dto.DailyRequest) (res dto.DailyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".occupancy.Daily")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day := timezone.Today()

	if req.Date != constant.Empty {
		day, err = calendar.Parse(req.Date)
		if err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}
	}

	details, err := s.bookingRepo.ListDetails(ctx, calendar.Range{Start: day, End: day.AddDays(1)})
	if err != nil {
		log.Error().Err(err).Str("date", day.String()).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to get daily summary: %w", err)
	}

	totalRooms, err := s.roomRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to get daily summary: %w", err)
	}

	res.FromSummary(day, occupancy.BookingsOnDay(details, day), totalRooms)

	return res, nil
}

func (s *serviceImpl) Statistics(ctx context.Context, params gDto.WindowParams) (res dto.StatisticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".occupancy.Statistics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	window, err := params.Range()
	if err != nil {
		return res, err
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get statistics: %w", err)
	}

	bookings, err := s.bookingRepo.ListOverlapping(ctx, window)
	if err != nil {
		log.Error().Err(err).Str("start", window.Start.String()).Str("end", window.End.String()).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to get statistics: %w", err)
	}

	res.FromRoomNights(window, rooms, occupancy.RoomNights(bookings, window))

	return res, nil
}

func resolveWindow(params gDto.WindowParams) (calendar.Range, error) {
	if !params.IsEmpty() {
		return params.Range() //nolint:wrapcheck
	}

	today := timezone.Today()

	return calendar.MonthWindow(today.Year, today.Month) //nolint:wrapcheck
}
