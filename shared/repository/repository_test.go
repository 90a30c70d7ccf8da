package repository_test

import (
	"context"
	"errors"
	"net"
	"testing"

	"frontdesk/infras/otel/mocks"
	"frontdesk/infras/postgres"
	"frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guest struct {
	ID         int64  `db:"guest_id"`
	Name       string `db:"name"`
	RoomNumber string `column:"number" db:"room_number" table:"rooms"`
}

func (guest) GetJoinQuery() string {
	return "JOIN rooms ON rooms.room_id = guests.room_id"
}

func newGuests(t *testing.T) (repository.Repository[guest], sqlmock.Sqlmock, *sqlx.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return repository.NewRepository[guest]("guest", "guests", "guest_id", conn, mocks.NewOtel()), mock, sqlxDB
}

func byGuestID(id int64) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "guest_id", Value: id, Operator: dto.FilterOperatorEq, Table: "guests"},
		},
	}
}

func TestRepository_Get(t *testing.T) {
	columns := []string{"guest_id", "name", "room_number"}

	tests := []struct {
		name    string
		columns []string
		setup   func(mock sqlmock.Sqlmock)
		want    guest
		wantErr func(t *testing.T, err error)
	}{
		{
			name: "joins the owning table and aliases foreign columns",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(`SELECT guests\.guest_id, guests\.name, rooms\.number AS room_number FROM guests JOIN rooms ON rooms\.room_id = guests\.room_id +WHERE \(guests\.guest_id = \$1\)`).
					ExpectQuery().
					WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows(columns).AddRow(7, "Ann", "101"))
			},
			want: guest{ID: 7, Name: "Ann", RoomNumber: "101"},
		},
		{
			name:    "selects only the requested columns",
			columns: []string{"name"},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(`SELECT guests\.name FROM guests`).
					ExpectQuery().
					WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Ann"))
			},
			want: guest{Name: "Ann"},
		},
		{
			name: "no match is the zero value",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(`SELECT .* FROM guests`).
					ExpectQuery().
					WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows(columns))
			},
			want: guest{},
		},
		{
			name: "lost connection is retryable",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(`SELECT .* FROM guests`).
					WillReturnError(&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")})
			},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, failure.IsRetryable(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := newGuests(t)
			tt.setup(mock)

			got, err := repo.Get(context.Background(), byGuestID(7), tt.columns...)
			if tt.wantErr != nil {
				require.Error(t, err)
				tt.wantErr(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetAll(t *testing.T) {
	t.Run("pages and sorts", func(t *testing.T) {
		repo, mock, _ := newGuests(t)

		mock.ExpectPrepare(`FROM guests JOIN rooms .* ORDER BY name ASC LIMIT \$1 OFFSET \$2`).
			ExpectQuery().
			WithArgs(10, 10).
			WillReturnRows(sqlmock.NewRows([]string{"guest_id", "name", "room_number"}).
				AddRow(11, "Bo", "102").
				AddRow(12, "Cy", "103"))

		got, err := repo.GetAll(context.Background(), dto.QueryParams{Page: 2, Limit: 10, SortBy: "name", SortDir: dto.SortDirAsc}, dto.FilterGroup{})
		require.NoError(t, err)
		assert.Equal(t, []guest{{ID: 11, Name: "Bo", RoomNumber: "102"}, {ID: 12, Name: "Cy", RoomNumber: "103"}}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("limit without page", func(t *testing.T) {
		repo, mock, _ := newGuests(t)

		mock.ExpectPrepare(`FROM guests JOIN rooms .* LIMIT \$1`).
			ExpectQuery().
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"guest_id", "name", "room_number"}))

		got, err := repo.GetAll(context.Background(), dto.QueryParams{Limit: 5}, dto.FilterGroup{})
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Count(t *testing.T) {
	repo, mock, _ := newGuests(t)

	mock.ExpectPrepare(`SELECT COUNT\(guests\.guest_id\) FROM guests JOIN rooms`).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	got, err := repo.Count(context.Background(), dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InsertTx(t *testing.T) {
	repo, mock, db := newGuests(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO guests \(guest_id, name\) VALUES \(\$1, \$2\)`).
		WithArgs(int64(1), "Ann").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	require.NoError(t, repo.InsertTx(context.Background(), tx, guest{ID: 1, Name: "Ann", RoomNumber: "101"}))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateTx(t *testing.T) {
	t.Run("sets columns on the matching rows", func(t *testing.T) {
		repo, mock, db := newGuests(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE guests SET name = \$1 +WHERE \(guests\.guest_id = \$2\)`).
			WithArgs("Bo", int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Beginx()
		require.NoError(t, err)

		require.NoError(t, repo.UpdateTx(context.Background(), tx, map[string]any{"name": "Bo"}, byGuestID(1)))
		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("refuses an empty filter", func(t *testing.T) {
		repo, mock, db := newGuests(t)

		mock.ExpectBegin()
		mock.ExpectRollback()

		tx, err := db.Beginx()
		require.NoError(t, err)

		err = repo.UpdateTx(context.Background(), tx, map[string]any{"name": "Bo"}, dto.FilterGroup{})
		require.Error(t, err)
		require.NoError(t, tx.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
