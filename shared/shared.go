package shared

import (
	"context"
	"fmt"
	"strings"

	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the prefix and parts with ":", e.g. "rooms:list".
func BuildCacheKey(prefix string, parts ...any) string {
	keys := make([]string, 0, len(parts)+1)
	keys = append(keys, prefix)

	for _, part := range parts {
		value := fmt.Sprint(part)
		if value == "" {
			continue
		}

		keys = append(keys, value)
	}

	return strings.Join(keys, cacheKeySeparator)
}

// InvalidateCaches clears every key under the given prefixes without blocking the caller.
// The returned channel is closed once all prefixes were processed.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefixes ...string) <-chan struct{} {
	done := make(chan struct{})
	ctx = context.WithoutCancel(ctx)

	go func() {
		defer close(done)

		for _, prefix := range prefixes {
			if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
				log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
			}
		}
	}()

	return done
}
