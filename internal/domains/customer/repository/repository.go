package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/customer/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

const upsertByPhoneQuery = `INSERT INTO customers (customer_name, phone, email, address, tax_id, created_at, modified_at, created_by, modified_by)
VALUES (:customer_name, :phone, :email, :address, :tax_id, :created_at, :modified_at, :created_by, :modified_by)
ON CONFLICT (phone) DO UPDATE SET
	customer_name = EXCLUDED.customer_name,
	email = EXCLUDED.email,
	address = EXCLUDED.address,
	tax_id = EXCLUDED.tax_id,
	modified_at = EXCLUDED.modified_at,
	modified_by = EXCLUDED.modified_by
RETURNING customer_id`

type Customer interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Customer, error)
	UpsertByPhoneTx(ctx context.Context, tx *sqlx.Tx, customer model.Customer) (int64, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, customerID int64, customer model.Customer) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpsertByPhoneTx inserts the customer or, when the phone number is already known,
// overwrites its contact fields. It is a single statement so two bookings for the same
// new phone number cannot both insert.
func (r *repositoryImpl) UpsertByPhoneTx(ctx context.Context, tx *sqlx.Tx, customer model.Customer) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.UpsertByPhoneTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, upsertByPhoneQuery)

	query, args, err := sqlx.Named(upsertByPhoneQuery, customer)
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to bind customer upsert: %w", err)
	}

	var customerID int64

	err = tx.QueryRowxContext(ctx, tx.Rebind(query), args...).Scan(&customerID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to upsert customer: %w", gRepo.TranslateError(err))
	}

	return customerID, nil
}

func (r *repositoryImpl) UpdateTx(ctx context.Context, tx *sqlx.Tx, customerID int64, customer model.Customer) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.UpdateTx")
	defer scope.End()

	fields := map[string]any{
		model.FieldCustomerName:  customer.CustomerName,
		model.FieldPhone:         customer.Phone,
		model.FieldEmail:         customer.Email,
		model.FieldAddress:       customer.Address,
		model.FieldTaxID:         customer.TaxID,
		constant.FieldModifiedAt: customer.ModifiedAt,
		constant.FieldModifiedBy: customer.ModifiedBy,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: customerID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	return r.Repository.UpdateTx(ctx, tx, fields, filter) //nolint:wrapcheck
}
