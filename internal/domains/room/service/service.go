package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"frontdesk/config"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/occupancy"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/calendar"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheRoom     = "room"
	cacheRoomList = "list"
)

type Room interface {
	List(ctx context.Context) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id int64) (dto.RoomResponse, error)
	Available(ctx context.Context, req dto.AvailableRoomsRequest) (dto.AvailableRoomsResponse, error)
	StatusBoard(ctx context.Context, req dto.StatusBoardRequest) (dto.StatusBoardResponse, error)
	RefreshCache(ctx context.Context) error
}

type serviceImpl struct {
	repo        repository.Room
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Room, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.rooms(ctx)
	if err != nil {
		return res, err
	}

	res.FromModels(rooms)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("room_id", id).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.RoomID == 0 {
		return res, failure.NotFound(fmt.Sprintf("room %d not found", id)) // nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

// Available lists the rooms free for the requested stay. Dates that are missing,
// malformed or not in order leave no room available instead of failing.
func (s *serviceImpl) Available(ctx context.Context, req dto.AvailableRoomsRequest) (res dto.AvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Available")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.rooms(ctx)
	if err != nil {
		return res, err
	}

	allRooms := model.IDs(rooms)
	res.CheckIn = req.CheckIn
	res.CheckOut = req.CheckOut

	var occupied map[int64]struct{}

	requested, err := calendar.ParseRange(req.CheckIn, req.CheckOut)
	if err != nil {
		log.Warn().Err(err).Str("check_in", req.CheckIn).Str("check_out", req.CheckOut).Msg("unusable stay, treating every room as occupied")

		occupied = occupancy.ParseAndFindOccupied[bookingModel.Booking](nil, req.CheckIn, req.CheckOut, req.ExcludeBookingID, allRooms)
	} else {
		existing, err := s.bookingRepo.ListOverlapping(ctx, requested)
		if err != nil {
			log.Error().Err(err).Msg("failed to list overlapping bookings")

			return res, fmt.Errorf("failed to check availability: %w", err)
		}

		occupied = occupancy.FindOccupiedRooms(existing, requested.Start, requested.End, req.ExcludeBookingID, allRooms)
	}

	res.Rooms = make([]dto.RoomResponse, 0, len(rooms))
	res.OccupiedRoomIDs = make([]int64, 0, len(occupied))

	for _, room := range rooms {
		if _, ok := occupied[room.RoomID]; ok {
			res.OccupiedRoomIDs = append(res.OccupiedRoomIDs, room.RoomID)

			continue
		}

		var roomRes dto.RoomResponse
		roomRes.FromModel(room)
		res.Rooms = append(res.Rooms, roomRes)
	}

	slices.Sort(res.OccupiedRoomIDs)

	return res, nil
}

func (s *serviceImpl) StatusBoard(ctx context.Context, req dto.StatusBoardRequest) (res dto.StatusBoardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.StatusBoard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day := timezone.Today()

	if req.Date != constant.Empty {
		day, err = calendar.Parse(req.Date)
		if err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}
	}

	rooms, err := s.rooms(ctx)
	if err != nil {
		return res, err
	}

	rooms = slices.Clone(rooms)
	sortRooms(rooms, req.SortBy)

	details, err := s.bookingRepo.ListDetails(ctx, calendar.Range{Start: day, End: day.AddDays(1)})
	if err != nil {
		log.Error().Err(err).Str("date", day.String()).Msg("failed to list bookings for status board")

		return res, fmt.Errorf("failed to build room status board: %w", err)
	}

	res.Date = day.String()
	res.Rooms = make([]dto.RoomStatusResponse, len(rooms))

	for i, room := range rooms {
		state, involved := occupancy.ClassifyRoom(details, room.RoomID, day)

		res.Rooms[i].Room.FromModel(room)
		res.Rooms[i].Status = string(state)
		res.Rooms[i].Bookings = make([]dto.BookingSummary, len(involved))

		for j, detail := range involved {
			res.Rooms[i].Bookings[j].FromModel(detail)
		}
	}

	return res, nil
}

// RefreshCache drops the cached room list so rooms seeded out of band show up.
func (s *serviceImpl) RefreshCache(ctx context.Context) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.RefreshCache")
	defer scope.End()

	select {
	case <-shared.InvalidateCaches(ctx, s.cache, cacheRoom):
		log.Info().Msg("room cache invalidated")

		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to invalidate room cache: %w", ctx.Err())
	}
}

// rooms returns every room in room-number order, from cache when possible.
func (s *serviceImpl) rooms(ctx context.Context) ([]model.Room, error) {
	cacheKey := shared.BuildCacheKey(cacheRoom, cacheRoomList)

	var rooms []model.Room

	if err := s.cache.Get(ctx, cacheKey, &rooms); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return rooms, nil
	}

	rooms, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	sortRooms(rooms, dto.SortByRoomNumber)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, rooms, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return rooms, nil
}
