package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/telegram"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/cleaning/model"
	"frontdesk/internal/domains/cleaning/model/dto"
	"frontdesk/internal/domains/cleaning/repository"
	"frontdesk/internal/domains/occupancy"
	"frontdesk/shared/calendar"
	"frontdesk/shared/constant"
	"frontdesk/shared/event"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const notifyTimeout = 10 * time.Second

type Cleaning interface {
	List(ctx context.Context) (dto.GetCleaningStatusesResponse, error)
	SetStatus(ctx context.Context, roomID int64, req dto.SetStatusRequest) (dto.CleaningStatusResponse, error)
}

type serviceImpl struct {
	repo        repository.Cleaning
	bookingRepo bookingRepo.Booking
	notifier    telegram.Notifier
	publisher   event.Publisher
	cfg         *config.Config
	otel        otel.Otel
}

func New(repo repository.Cleaning, bookingRepo bookingRepo.Booking, notifier telegram.Notifier, publisher event.Publisher, cfg *config.Config, otel otel.Otel) Cleaning {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		notifier:    notifier,
		publisher:   publisher,
		cfg:         cfg,
		otel:        otel,
	}
}

// List refreshes the daily reset and returns one status per room. Rooms occupied
// today that are Clean and were not touched today flip to Needs Cleaning. Calling it
// again on the same day changes nothing.
func (s *serviceImpl) List(ctx context.Context) (res dto.GetCleaningStatusesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".cleaning.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	inserted, err := s.repo.EnsureDefaults(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to create default cleaning statuses")

		return res, fmt.Errorf("failed to list cleaning statuses: %w", err)
	}

	if inserted > 0 {
		log.Info().Int64("rooms", inserted).Msg("created default cleaning statuses")
	}

	today := timezone.Today()

	bookings, err := s.bookingRepo.ListOverlapping(ctx, calendar.Range{Start: today, End: today.AddDays(1)})
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings for today")

		return res, fmt.Errorf("failed to list cleaning statuses: %w", err)
	}

	occupied := occupancy.RoomsOccupiedOn(bookings, today)

	statuses, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list cleaning statuses")

		return res, fmt.Errorf("failed to list cleaning statuses: %w", err)
	}

	loc := timezone.GetLocation()
	candidates := []int64{}

	for _, status := range statuses {
		if status.ShouldReset(slices.Contains(occupied, status.RoomID), today, loc) {
			candidates = append(candidates, status.RoomID)
		}
	}

	now := timezone.Now()

	flipped, err := s.repo.ResetOccupied(ctx, candidates, timezone.StartOfToday(), now)
	if err != nil {
		log.Error().Err(err).Ints64("room_ids", candidates).Msg("failed to reset cleaning statuses")

		return res, fmt.Errorf("failed to list cleaning statuses: %w", err)
	}

	if len(flipped) > 0 {
		statuses = applyReset(statuses, flipped, now)
		s.announce(ctx, statuses, flipped, today)
	}

	res.FromModels(statuses, flipped)

	return res, nil
}

// SetStatus records a housekeeping update. It always wins over the daily reset.
func (s *serviceImpl) SetStatus(ctx context.Context, roomID int64, req dto.SetStatusRequest) (res dto.CleaningStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".cleaning.SetStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !model.IsValidStatus(req.Status) {
		return res, failure.BadRequestFromString(fmt.Sprintf("status must be %q or %q", model.StatusClean, model.StatusNeedsCleaning)) // nolint:wrapcheck
	}

	updated, err := s.repo.SetStatus(ctx, roomID, req.Status, timezone.Now())
	if err != nil {
		log.Error().Err(err).Int64("room_id", roomID).Msg("failed to set cleaning status")

		return res, fmt.Errorf("failed to set cleaning status: %w", err)
	}

	res.FromModel(updated)

	event.PublishAsync(ctx, s.publisher, s.otel, event.CleaningStatusChange, fmt.Sprint(roomID), res)

	return res, nil
}

func (s *serviceImpl) announce(ctx context.Context, statuses []model.CleaningStatus, flipped []int64, today calendar.Date) {
	numbers := make([]string, 0, len(flipped))

	for _, status := range statuses {
		if slices.Contains(flipped, status.RoomID) {
			numbers = append(numbers, status.RoomNumber)
		}
	}

	for _, roomID := range flipped {
		event.PublishAsync(ctx, s.publisher, s.otel, event.CleaningStatusChange, fmt.Sprint(roomID), map[string]any{
			"room_id": roomID,
			"status":  model.StatusNeedsCleaning,
			"date":    today.String(),
		})
	}

	text := fmt.Sprintf("Rooms needing cleaning on %s: %s", today, strings.Join(numbers, ", "))
	c := context.WithoutCancel(ctx)

	go func() {
		c, cancel := context.WithTimeout(c, notifyTimeout)
		defer cancel()

		if err := s.notifier.Notify(c, text); err != nil {
			log.Error().Err(err).Msg("failed to notify housekeeping")
		}
	}()
}

func applyReset(statuses []model.CleaningStatus, flipped []int64, now time.Time) []model.CleaningStatus {
	for i := range statuses {
		if slices.Contains(flipped, statuses[i].RoomID) {
			statuses[i].Status = model.StatusNeedsCleaning
			statuses[i].LastUpdated = now
		}
	}

	return statuses
}
