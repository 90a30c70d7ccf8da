package repository_test

import (
	"context"
	"testing"

	"frontdesk/infras/otel/mocks"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/customer/model"
	"frontdesk/internal/domains/customer/repository"
	"frontdesk/shared/failure"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) (repository.Customer, sqlmock.Sqlmock, *sqlx.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel()), mock, sqlxDB
}

func TestUpsertByPhoneTx(t *testing.T) {
	customer := model.Customer{CustomerName: "Somchai", Phone: "0812345678", Email: "somchai@example.com"}

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr func(error) bool
	}{
		{
			name: "returns the id of the new or existing customer",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO customers .* ON CONFLICT \(phone\) DO UPDATE SET .* RETURNING customer_id`).
					WithArgs("Somchai", "0812345678", "somchai@example.com", "", "", sqlmock.AnyArg(), sqlmock.AnyArg(), "", "").
					WillReturnRows(sqlmock.NewRows([]string{"customer_id"}).AddRow(12))
			},
			wantID: 12,
		},
		{
			name: "missing name is a validation error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO customers").
					WillReturnError(&pq.Error{Code: "23502", Column: "customer_name"})
			},
			wantErr: failure.IsBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepository(t)

			mock.ExpectBegin()
			tt.setup(mock)
			mock.ExpectRollback()

			tx, err := db.Beginx()
			require.NoError(t, err)

			id, err := repo.UpsertByPhoneTx(context.Background(), tx, customer)
			require.NoError(t, tx.Rollback())

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), err.Error())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateTx_ScopedToOneCustomer(t *testing.T) {
	repo, mock, db := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE customers SET .* WHERE \(customers.customer_id = \$\d+\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	require.NoError(t, repo.UpdateTx(context.Background(), tx, 12, model.Customer{CustomerName: "Somchai", Phone: "0899999999"}))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
