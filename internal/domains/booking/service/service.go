package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/occupancy"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared/calendar"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/event"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) ([]dto.BookingResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	List(ctx context.Context, params gDto.WindowParams) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	publisher event.Publisher
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, publisher event.Publisher, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		publisher: publisher,
		cfg:       cfg,
		otel:      otel,
	}
}

// Create books every selected room for the same stay and customer. The rooms are
// checked against existing bookings first. The store still rejects an overlap that
// slips in between the check and the insert.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	stay, err := req.Stay()
	if err != nil {
		return nil, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rooms, err := s.roomsByID(ctx, req.RoomIDs)
	if err != nil {
		return nil, err
	}

	if err = s.ensureAvailable(ctx, stay, "", rooms, req.RoomIDs); err != nil {
		return nil, err
	}

	customer := req.Customer.ToModel(user)

	created, err := s.repo.CreateBookings(ctx, customer, req.ToModels(stay, user), timezone.Today())
	if err != nil {
		log.Error().Err(err).Msg("failed to create bookings")

		return nil, fmt.Errorf("failed to create bookings: %w", err)
	}

	res = make([]dto.BookingResponse, len(created))

	for i, booking := range created {
		customer.CustomerID = booking.CustomerID

		res[i].FromModel(booking)
		res[i].WithParties(customer, rooms[booking.RoomID])

		event.PublishAsync(ctx, s.publisher, s.otel, event.BookingCreated, booking.BookingID, res[i])
	}

	log.Info().Int("rooms", len(created)).Str("check_in", stay.Start.String()).Msg("bookings created")

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	stay, err := req.Stay()
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	// A removed booking must surface as NotFound, not as a clash with whoever holds the room now.
	if _, err = s.repo.GetDetail(ctx, id); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking to update")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	rooms, err := s.roomsByID(ctx, []int64{req.RoomID})
	if err != nil {
		return res, err
	}

	if err = s.ensureAvailable(ctx, stay, id, rooms, []int64{req.RoomID}); err != nil {
		return res, err
	}

	if err = s.repo.UpdateBooking(ctx, id, req.Customer.ToModel(user), req.ToModel(stay, user)); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	detail, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to read back updated booking")

		return res, fmt.Errorf("failed to get updated booking: %w", err)
	}

	res.FromDetail(detail)

	event.PublishAsync(ctx, s.publisher, s.otel, event.BookingUpdated, id, res)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	event.PublishAsync(ctx, s.publisher, s.otel, event.BookingDeleted, id, map[string]string{model.FieldID: id})

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	detail, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	res.FromDetail(detail)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, params gDto.WindowParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	window, err := params.Range()
	if err != nil {
		return res, err
	}

	details, err := s.repo.ListDetails(ctx, window)
	if err != nil {
		log.Error().Err(err).Str("start", window.Start.String()).Str("end", window.End.String()).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	res.FromDetails(window, details)

	return res, nil
}

// roomsByID loads the requested rooms and fails with NotFound naming the first unknown id.
func (s *serviceImpl) roomsByID(ctx context.Context, roomIDs []int64) (map[int64]roomModel.Room, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: roomModel.FieldID, Value: roomIDs, Operator: gDto.FilterOperatorIn, Table: roomModel.TableName},
		},
	}

	found, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	rooms := make(map[int64]roomModel.Room, len(found))
	for _, room := range found {
		rooms[room.RoomID] = room
	}

	for _, roomID := range roomIDs {
		if _, ok := rooms[roomID]; !ok {
			return nil, failure.NotFound(fmt.Sprintf("room %d not found", roomID)) // nolint:wrapcheck
		}
	}

	return rooms, nil
}

// ensureAvailable fails with Conflict naming every requested room that already holds
// an overlapping booking other than excludeBookingID.
func (s *serviceImpl) ensureAvailable(ctx context.Context, stay calendar.Range, excludeBookingID string, rooms map[int64]roomModel.Room, roomIDs []int64) error {
	existing, err := s.repo.ListOverlapping(ctx, stay)
	if err != nil {
		log.Error().Err(err).Msg("failed to list overlapping bookings")

		return fmt.Errorf("failed to check availability: %w", err)
	}

	occupied := occupancy.FindOccupiedRooms(existing, stay.Start, stay.End, excludeBookingID, roomIDs)

	var taken []string

	for _, roomID := range roomIDs {
		if _, ok := occupied[roomID]; ok {
			taken = append(taken, rooms[roomID].RoomNumber)
		}
	}

	if len(taken) > 0 {
		return failure.Conflict(fmt.Sprintf("room %s is not available from %s to %s", strings.Join(taken, ", "), stay.Start, stay.End)) // nolint:wrapcheck
	}

	return nil
}
