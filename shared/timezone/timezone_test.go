package timezone_test

import (
	"testing"
	"time"

	"frontdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimezoneInit(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestToAppTime(t *testing.T) {
	appTime := timezone.ToAppTime(time.Now().UTC())

	assert.Equal(t, timezone.GetLocation(), appTime.Location())
}

func TestFormatAndParse(t *testing.T) {
	formatted := timezone.Format(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), "2006-01-02 15:04:05 MST")
	assert.NotEmpty(t, formatted)

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, timezone.GetLocation(), parsed.Location())
}

func TestToday(t *testing.T) {
	today := timezone.Today()
	start := timezone.StartOfToday()

	assert.False(t, today.IsZero())
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.False(t, start.After(timezone.Now()))
}
