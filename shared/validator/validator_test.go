package validator_test

import (
	"strings"
	"testing"

	"frontdesk/shared/failure"
	"frontdesk/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guestRequest struct {
	Name     string  `json:"name"      validate:"required,notblank"`
	Email    string  `json:"email"     validate:"omitempty,email"`
	RoomIDs  []int64 `json:"room_ids"  validate:"required,min=1,unique,dive,gt=0"`
	CheckIn  string  `json:"check_in"  validate:"required,date"`
	Status   string  `json:"status"    validate:"required,oneof=Paid Deposit Unpaid"`
	Discount float64 `json:"discount"  validate:"gte=0,lte=100"`
}

func validGuest() *guestRequest {
	return &guestRequest{
		Name:    "Somchai",
		Email:   "somchai@example.com",
		RoomIDs: []int64{1, 2},
		CheckIn: "2024-05-02",
		Status:  "Paid",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(g *guestRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(*guestRequest) {}},
		{name: "missing name", mutate: func(g *guestRequest) { g.Name = "" }, wantErr: "Name is required"},
		{name: "whitespace name", mutate: func(g *guestRequest) { g.Name = "  \t " }, wantErr: "Name must not be blank"},
		{name: "invalid email", mutate: func(g *guestRequest) { g.Email = "nope" }, wantErr: "Email must be a valid email address"},
		{name: "no rooms", mutate: func(g *guestRequest) { g.RoomIDs = []int64{} }, wantErr: "RoomIDs must be greater than or equal to 1"},
		{name: "duplicate rooms", mutate: func(g *guestRequest) { g.RoomIDs = []int64{3, 3} }, wantErr: "RoomIDs must not contain duplicates"},
		{name: "zero room id", mutate: func(g *guestRequest) { g.RoomIDs = []int64{0} }, wantErr: "must be greater than 0"},
		{name: "malformed date", mutate: func(g *guestRequest) { g.CheckIn = "02/05/2024" }, wantErr: "CheckIn must be a date in YYYY-MM-DD format"},
		{name: "impossible date", mutate: func(g *guestRequest) { g.CheckIn = "2024-02-30" }, wantErr: "CheckIn must be a date in YYYY-MM-DD format"},
		{name: "unknown status", mutate: func(g *guestRequest) { g.Status = "Refunded" }, wantErr: "Status must be one of Paid Deposit Unpaid"},
		{name: "out of range", mutate: func(g *guestRequest) { g.Discount = 150 }, wantErr: "Discount must be less than or equal to 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validGuest()
			tt.mutate(data)

			err := validator.ValidateStruct(data)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, failure.IsBadRequest(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   any
		tag     string
		wantErr bool
	}{
		{name: "required string", field: "101", tag: "required"},
		{name: "empty required string", field: "", tag: "required", wantErr: true},
		{name: "valid date", field: "2024-06-01", tag: "date"},
		{name: "invalid date", field: "June 1st", tag: "date", wantErr: true},
		{name: "non string date", field: 20240601, tag: "date", wantErr: true},
		{name: "empty tag on zero value", field: "", tag: "empty"},
		{name: "empty tag on value", field: "x", tag: "empty", wantErr: true},
		{name: "valid oneof", field: "Clean", tag: "oneof='Clean' 'Needs Cleaning'"},
		{name: "invalid oneof", field: "Dirty", tag: "oneof='Clean' 'Needs Cleaning'", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		jsonBody string
		wantErr  bool
	}{
		{
			name:     "valid body",
			jsonBody: `{"name":"Somchai","room_ids":[1],"check_in":"2024-05-02","status":"Unpaid"}`,
		},
		{
			name:     "fails validation",
			jsonBody: `{"name":"Somchai","room_ids":[],"check_in":"2024-05-02","status":"Unpaid"}`,
			wantErr:  true,
		},
		{
			name:     "malformed json",
			jsonBody: `{"name":"Somchai","room_ids":}`,
			wantErr:  true,
		},
		{
			name:     "empty object",
			jsonBody: `{}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data guestRequest

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, failure.IsBadRequest(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
