package permissions_test

import (
	"testing"

	"frontdesk/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_LoadsEmbeddedTable(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints)

	for _, endpoint := range data.Endpoints {
		assert.NotEmpty(t, endpoint.Permissions, "%s %s has no roles", endpoint.Method, endpoint.Path)
	}
}

func TestAllows(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name   string
		path   string
		method string
		role   string
		want   bool
	}{
		{name: "manager clears room cache", path: "/v1/rooms/cache", method: "DELETE", role: "manager", want: true},
		{name: "front desk cannot clear room cache", path: "/v1/rooms/cache", method: "DELETE", role: "frontdesk", want: false},
		{name: "front desk creates bookings", path: "/v1/bookings", method: "POST", role: "frontdesk", want: true},
		{name: "housekeeping cannot create bookings", path: "/v1/bookings", method: "POST", role: "housekeeping", want: false},
		{name: "housekeeping cannot delete bookings", path: "/v1/bookings/{id}", method: "DELETE", role: "housekeeping", want: false},
		{name: "housekeeping sets cleaning status", path: "/v1/cleaning-statuses/{room_id}", method: "PUT", role: "housekeeping", want: true},
		{name: "unknown role", path: "/v1/cleaning-statuses", method: "GET", role: "guest", want: false},
		{name: "unlisted endpoint is open", path: "/v1/unlisted", method: "GET", role: "housekeeping", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, data.Allows(tt.path, tt.method, tt.role))
		})
	}
}

func TestParse(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"skip":true,"endpoints":[{"path":"/v1/rooms","method":"GET","permissions":["manager"]}]}`))
	require.NoError(t, err)
	assert.True(t, data.Allows("/v1/rooms", "GET", "housekeeping"))

	_, err = permissions.Parse([]byte(`{`))
	assert.Error(t, err)
}
