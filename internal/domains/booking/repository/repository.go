package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/booking/model"
	customerModel "frontdesk/internal/domains/customer/model"
	customerRepo "frontdesk/internal/domains/customer/repository"
	"frontdesk/shared/calendar"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	nextSequenceQuery = "SELECT nextval('" + model.SequenceName + "')"
	lockBookingQuery  = "SELECT customer_id FROM bookings WHERE booking_id = $1 FOR UPDATE"
	deleteQuery       = "DELETE FROM bookings WHERE booking_id = $1 RETURNING booking_id"

	defaultIDPrefix = "SRH"

	argWindowStart = "window_start"
	argWindowEnd   = "window_end"
)

var errBookingNotFound = failure.NotFound("booking not found")

type Booking interface {
	NextSequenceTx(ctx context.Context, tx *sqlx.Tx) (int64, error)
	CreateBookings(ctx context.Context, customer customerModel.Customer, bookings []model.Booking, createdOn calendar.Date) ([]model.Booking, error)
	UpdateBooking(ctx context.Context, bookingID string, customer customerModel.Customer, booking model.Booking) error
	Delete(ctx context.Context, bookingID string) error
	GetDetail(ctx context.Context, bookingID string) (model.BookingDetail, error)
	ListDetails(ctx context.Context, window calendar.Range) ([]model.BookingDetail, error)
	ListOverlapping(ctx context.Context, window calendar.Range) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	details  gRepo.Repository[model.BookingDetail]
	customer customerRepo.Customer
	db       *postgres.Connection
	idPrefix string
	otel     otel.Otel
}

func New(db *postgres.Connection, cfg *config.Config, customer customerRepo.Customer, otel otel.Otel) Booking {
	prefix := cfg.Booking.IDPrefix
	if prefix == constant.Empty {
		prefix = defaultIDPrefix
	}

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:    gRepo.NewRepository[model.BookingDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
		customer:   customer,
		db:         db,
		idPrefix:   prefix,
		otel:       otel,
	}
}

// FormatID renders a booking id as PREFIX-YYYYMMDD-NNNN.
func FormatID(prefix string, createdOn calendar.Date, sequence int64) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, createdOn.Compact(), sequence)
}

// NextSequenceTx takes the next value of the store counter. Every caller gets a
// distinct value, even when its transaction later rolls back.
func (r *repositoryImpl) NextSequenceTx(ctx context.Context, tx *sqlx.Tx) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.NextSequenceTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, nextSequenceQuery)

	var sequence int64
	if err := tx.GetContext(ctx, &sequence, nextSequenceQuery); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to take booking sequence: %w", gRepo.TranslateError(err))
	}

	return sequence, nil
}

// CreateBookings stores the customer and one booking per entry in a single
// transaction. Either every booking is persisted or none is.
func (r *repositoryImpl) CreateBookings(ctx context.Context, customer customerModel.Customer, bookings []model.Booking, createdOn calendar.Date) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateBookings")
	defer scope.End()

	created := make([]model.Booking, 0, len(bookings))

	err := r.db.Transact(ctx, func(tx *sqlx.Tx) error {
		customerID, err := r.customer.UpsertByPhoneTx(ctx, tx, customer)
		if err != nil {
			return err
		}

		for _, booking := range bookings {
			sequence, err := r.NextSequenceTx(ctx, tx)
			if err != nil {
				return err
			}

			booking.BookingID = FormatID(r.idPrefix, createdOn, sequence)
			booking.CustomerID = customerID

			if err := r.InsertTx(ctx, tx, booking); err != nil {
				return fmt.Errorf("room %d: %w", booking.RoomID, err)
			}

			created = append(created, booking)
		}

		return nil
	})
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to create bookings: %w", err)
	}

	return created, nil
}

// UpdateBooking locks the booking row, then rewrites its customer and the booking
// itself. The booking id never changes.
func (r *repositoryImpl) UpdateBooking(ctx context.Context, bookingID string, customer customerModel.Customer, booking model.Booking) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateBooking")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, lockBookingQuery)

	err := r.db.Transact(ctx, func(tx *sqlx.Tx) error {
		var customerID int64

		err := tx.GetContext(ctx, &customerID, lockBookingQuery, bookingID)
		if errors.Is(err, sql.ErrNoRows) {
			return errBookingNotFound
		}

		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to lock booking: %w", gRepo.TranslateError(err))
		}

		if err := r.customer.UpdateTx(ctx, tx, customerID, customer); err != nil {
			return err
		}

		fields := map[string]any{
			model.FieldRoomID:        booking.RoomID,
			model.FieldCheckInDate:   booking.CheckInDate,
			model.FieldCheckOutDate:  booking.CheckOutDate,
			model.FieldStatus:        booking.Status,
			model.FieldPricePerNight: booking.PricePerNight,
			model.FieldDeposit:       booking.Deposit,
			constant.FieldModifiedAt: booking.ModifiedAt,
			constant.FieldModifiedBy: booking.ModifiedBy,
		}

		return r.UpdateTx(ctx, tx, fields, byID(bookingID)) //nolint:wrapcheck
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to update booking: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, bookingID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Delete")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, deleteQuery)

	var deleted string

	err := r.db.Write.GetContext(ctx, &deleted, deleteQuery, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return errBookingNotFound
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete booking: %w", gRepo.TranslateError(err))
	}

	return nil
}

func (r *repositoryImpl) GetDetail(ctx context.Context, bookingID string) (model.BookingDetail, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetDetail")
	defer scope.End()

	detail, err := r.details.Get(ctx, byID(bookingID))
	if err != nil {
		return detail, err //nolint:wrapcheck
	}

	if detail.BookingID == constant.Empty {
		return detail, errBookingNotFound
	}

	return detail, nil
}

// ListDetails returns the joined bookings touching window, including those that
// check out on its first day, ordered by check-in date.
func (r *repositoryImpl) ListDetails(ctx context.Context, window calendar.Range) ([]model.BookingDetail, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListDetails")
	defer scope.End()

	filter := windowFilter(window, gDto.FilterOperatorGreaterEq)
	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldCheckInDate,
		SortDir: gDto.SortDirAsc,
	}

	return r.details.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// ListOverlapping returns the bookings whose stay shares at least one night with window.
func (r *repositoryImpl) ListOverlapping(ctx context.Context, window calendar.Range) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListOverlapping")
	defer scope.End()

	return r.GetAll(ctx, gDto.QueryParams{}, windowFilter(window, gDto.FilterOperatorGreater)) //nolint:wrapcheck
}

func windowFilter(window calendar.Range, checkOutOperator string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCheckInDate,
				ArgName:  argWindowEnd,
				Value:    window.End,
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCheckOutDate,
				ArgName:  argWindowStart,
				Value:    window.Start,
				Operator: checkOutOperator,
				Table:    model.TableName,
			},
		},
	}
}

func byID(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: bookingID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}
