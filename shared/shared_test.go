package shared_test

import (
	"context"
	"errors"
	"testing"

	"frontdesk/shared"
	"frontdesk/shared/cache/mocks"
	"frontdesk/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("SRH-20240502-0001", "booking_id", "bookings")

	require.Len(t, result.Filters, 1)
	assert.Equal(t, dto.Filter{
		Field:    "booking_id",
		Value:    "SRH-20240502-0001",
		Operator: dto.FilterOperatorEq,
		Table:    "bookings",
	}, result.Filters[0])

	where, args := result.GetWhereClause()
	assert.Equal(t, "(bookings.booking_id = :booking_id)", where)
	assert.Equal(t, map[string]any{"booking_id": "SRH-20240502-0001"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "rooms", shared.BuildCacheKey("rooms"))
	assert.Equal(t, "rooms:list", shared.BuildCacheKey("rooms", "list"))
	assert.Equal(t, "rooms:detail:12", shared.BuildCacheKey("rooms", "detail", 12))
	assert.Equal(t, "rooms:list", shared.BuildCacheKey("rooms", "", "list"))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	redisCache.EXPECT().Clear(gomock.Any(), "rooms:*").DoAndReturn(func(ctx context.Context, _ string) error {
		assert.NoError(t, ctx.Err())

		return nil
	})
	redisCache.EXPECT().Clear(gomock.Any(), "room_status:*").Return(errors.New("redis down"))

	<-shared.InvalidateCaches(ctx, redisCache, "rooms", "room_status")
}
