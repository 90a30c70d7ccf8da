package cleaning_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/cleaning/model/dto"
	serviceMocks "frontdesk/internal/domains/cleaning/service/mocks"
	"frontdesk/internal/handlers/cleaning"
	"frontdesk/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *serviceMocks.MockCleaning) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockCleaning(ctrl)

	handler := cleaning.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestHandler_GetCleaningStatuses(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().List(gomock.Any()).Return(dto.GetCleaningStatusesResponse{
		Statuses: []dto.CleaningStatusResponse{
			{CleaningStatusID: 1, RoomID: 1, RoomNumber: "101", Status: "Needs Cleaning"},
		},
		Reset: []int64{1},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cleaning-statuses", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"statuses":[{"cleaning_status_id":1,"room_id":1,"room_number":"101","status":"Needs Cleaning","last_updated":null}],"reset_room_ids":[1]}}`, rec.Body.String())
}

func TestHandler_SetCleaningStatus(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		body      string
		setupMock func(svc *serviceMocks.MockCleaning)
		wantCode  int
	}{
		{
			name: "marked clean",
			path: "/cleaning-statuses/2",
			body: `{"status":"Clean"}`,
			setupMock: func(svc *serviceMocks.MockCleaning) {
				svc.EXPECT().SetStatus(gomock.Any(), int64(2), dto.SetStatusRequest{Status: "Clean"}).
					Return(dto.CleaningStatusResponse{RoomID: 2, Status: "Clean"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "unknown status",
			path:      "/cleaning-statuses/2",
			body:      `{"status":"Dirty"}`,
			setupMock: func(_ *serviceMocks.MockCleaning) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "bad room id",
			path:      "/cleaning-statuses/0",
			body:      `{"status":"Clean"}`,
			setupMock: func(_ *serviceMocks.MockCleaning) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room does not exist",
			path: "/cleaning-statuses/42",
			body: `{"status":"Needs Cleaning"}`,
			setupMock: func(svc *serviceMocks.MockCleaning) {
				svc.EXPECT().SetStatus(gomock.Any(), int64(42), dto.SetStatusRequest{Status: "Needs Cleaning"}).
					Return(dto.CleaningStatusResponse{}, failure.NotFound("room not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
