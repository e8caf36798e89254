// Redis mirror of station occupancy for external dashboards.
package station

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"netzone/internal/types"
)

const (
	statusHashKey = "stations:status"
	// Occupancy detail keys expire on their own in case a mirror update
	// is ever missed (sessions resolve well within a day).
	detailTTL = 24 * time.Hour
)

// Cache mirrors occupancy into Redis. It is strictly best-effort: the
// registry stays the source of truth and callers log (never propagate)
// mirror failures.
type Cache struct {
	redis *redis.Client
}

func NewCache(redis *redis.Client) *Cache {
	return &Cache{redis: redis}
}

// SetStatus records the station's current status, and for occupied
// stations, who is on it and since when.
func (c *Cache) SetStatus(ctx context.Context, st Station) error {
	pipe := c.redis.Pipeline()
	pipe.HSet(ctx, statusHashKey, string(st.ID), string(st.Status))
	key := detailKey(st.ID)
	if st.Status == StatusOccupied && st.Occupancy != nil {
		pipe.HSet(ctx, key,
			"customer", st.Occupancy.Customer.String(),
			"started_at", st.Occupancy.StartedAt.UTC().Format(time.RFC3339),
			"prepaid", st.Occupancy.Prepaid,
		)
		pipe.Expire(ctx, key, detailTTL)
	} else {
		pipe.Del(ctx, key)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func detailKey(id types.ID) string {
	return fmt.Sprintf("stations:%s:occupancy", string(id))
}
