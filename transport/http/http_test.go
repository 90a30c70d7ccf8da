package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"frontdesk/config"
	jwtMocks "frontdesk/infras/jwt/mocks"
	"frontdesk/infras/otel/mocks"
	"frontdesk/infras/postgres"
	"frontdesk/permissions"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) *HTTP {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvProduction

	ctrl := gomock.NewController(t)
	ot := mocks.NewOtel()

	return New(
		cfg,
		router.New(router.DomainHandlers{}),
		middleware.NewAppMiddleware(ot, cfg, nil),
		middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), ot, permissions.Get(), cfg),
		nil,
		ot,
	)
}

func TestHealth_FollowsServerState(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))

	server.setState(ServerStateInGracePeriod)

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"SERVER UNHEALTHY"}`, rec.Body.String())
}

func TestCleanupPeriod_RejectsNewRequests(t *testing.T) {
	server := newServer(t)
	server.setup()
	server.setState(ServerStateInCleanupPeriod)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, rec.Body.String())
}

func TestV1_RequiresAuth(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRelease_ClosesDatabasePools(t *testing.T) {
	readDB, readMock, err := sqlmock.New()
	require.NoError(t, err)

	writeDB, writeMock, err := sqlmock.New()
	require.NoError(t, err)

	readMock.ExpectClose()
	writeMock.ExpectClose()

	server := newServer(t)
	server.DB = &postgres.Connection{
		Read:  sqlx.NewDb(readDB, "postgres"),
		Write: sqlx.NewDb(writeDB, "postgres"),
	}

	server.release(context.Background())

	assert.NoError(t, readMock.ExpectationsWereMet())
	assert.NoError(t, writeMock.ExpectationsWereMet())
}
