package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/cleaning/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"

	"github.com/lib/pq"
)

const (
	// A missing row is created as Clean with an epoch timestamp, meaning "never updated".
	ensureDefaultsQuery = `INSERT INTO cleaning_statuses (room_id, status, last_updated)
SELECT rooms.room_id, '` + model.StatusClean + `', to_timestamp(0) FROM rooms
ON CONFLICT (room_id) DO NOTHING`

	// The status and date guard make the reset a compare-and-set: a concurrent refresh
	// or a same-day manual update wins and the row is skipped.
	resetOccupiedQuery = `UPDATE cleaning_statuses SET status = '` + model.StatusNeedsCleaning + `', last_updated = $1
WHERE room_id = ANY($2) AND status = '` + model.StatusClean + `' AND last_updated < $3
RETURNING room_id`

	setStatusQuery = `INSERT INTO cleaning_statuses (room_id, status, last_updated) VALUES ($1, $2, $3)
ON CONFLICT (room_id) DO UPDATE SET status = EXCLUDED.status, last_updated = EXCLUDED.last_updated
RETURNING cleaning_status_id, room_id, status, last_updated,
	(SELECT room_number FROM rooms WHERE rooms.room_id = cleaning_statuses.room_id) AS room_number`
)

type Cleaning interface {
	EnsureDefaults(ctx context.Context) (int64, error)
	ResetOccupied(ctx context.Context, roomIDs []int64, startOfToday, now time.Time) ([]int64, error)
	List(ctx context.Context) ([]model.CleaningStatus, error)
	SetStatus(ctx context.Context, roomID int64, status string, now time.Time) (model.CleaningStatus, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.CleaningStatus]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Cleaning {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CleaningStatus](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// EnsureDefaults creates a Clean row for every room that has none yet.
func (r *repositoryImpl) EnsureDefaults(ctx context.Context) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cleaning.EnsureDefaults")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, ensureDefaultsQuery)

	result, err := r.db.Write.ExecContext(ctx, ensureDefaultsQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to create default cleaning statuses: %w", gRepo.TranslateError(err))
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted cleaning statuses: %w", err)
	}

	return inserted, nil
}

// ResetOccupied flips the given rooms to Needs Cleaning unless they are already
// flipped or were updated on or after startOfToday. It returns the rooms it flipped.
func (r *repositoryImpl) ResetOccupied(ctx context.Context, roomIDs []int64, startOfToday, now time.Time) ([]int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cleaning.ResetOccupied")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, resetOccupiedQuery)
	scope.SetAttribute("room_ids", roomIDs)

	flipped := []int64{}

	if len(roomIDs) == 0 {
		return flipped, nil
	}

	err := r.db.Write.SelectContext(ctx, &flipped, resetOccupiedQuery, now, pq.Array(roomIDs), startOfToday)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to reset cleaning statuses: %w", gRepo.TranslateError(err))
	}

	return flipped, nil
}

func (r *repositoryImpl) List(ctx context.Context) ([]model.CleaningStatus, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cleaning.List")
	defer scope.End()

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldRoomID,
		SortDir: gDto.SortDirAsc,
	}

	return r.GetAll(ctx, params, gDto.FilterGroup{}) //nolint:wrapcheck
}

// SetStatus stores a manual status. An unknown room fails with NotFound through the
// room foreign key.
func (r *repositoryImpl) SetStatus(ctx context.Context, roomID int64, status string, now time.Time) (model.CleaningStatus, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cleaning.SetStatus")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, setStatusQuery)

	var updated model.CleaningStatus

	err := r.db.Write.GetContext(ctx, &updated, setStatusQuery, roomID, status, now)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return updated, fmt.Errorf("failed to set cleaning status: %w", gRepo.TranslateError(err))
	}

	return updated, nil
}
