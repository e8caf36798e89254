// Tariff rate table: per-zone hourly rates plus the night window.
package tariff

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid tariff config")

// Config is the venue-wide rate table. Rates are VND per hour; the night
// window is [NightStartHour, NightEndHour) on a 24-hour clock and wraps
// past midnight when the start hour is greater than the end hour
// (22 → 6 spans midnight).
type Config struct {
	StandardRate   int64 `json:"standard_rate"`
	VIPRate        int64 `json:"vip_rate"`
	NightRate      int64 `json:"night_rate"`
	NightStartHour int   `json:"night_start_hour"`
	NightEndHour   int   `json:"night_end_hour"`
}

// Validate rejects bad rate tables at the configuration boundary so the
// calculator never has to.
func (c Config) Validate() error {
	if c.StandardRate <= 0 || c.VIPRate <= 0 || c.NightRate <= 0 {
		return fmt.Errorf("%w: rates must be positive", ErrInvalidConfig)
	}
	for _, h := range []int{c.NightStartHour, c.NightEndHour} {
		if h < 0 || h > 23 {
			return fmt.Errorf("%w: night hours must be between 0 and 23", ErrInvalidConfig)
		}
	}
	return nil
}

// IsNightHour reports whether hour falls inside the night window.
func (c Config) IsNightHour(hour int) bool {
	if c.NightStartHour > c.NightEndHour {
		return hour >= c.NightStartHour || hour < c.NightEndHour
	}
	return hour >= c.NightStartHour && hour < c.NightEndHour
}
