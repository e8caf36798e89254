package tariff

import (
	"math"
	"time"

	"netzone/internal/modules/station"
)

// Charge prices an occupancy interval. It is pure: any number of readers
// may call it at any frequency (live display polls it), and it never
// fails — negative elapsed time saturates to zero.
//
// The night-rate decision is a snapshot taken at the instant of
// calculation from now's hour; it is not integrated over the portion of
// the session that actually fell inside the window. A session running
// 21:00→23:00 is billed entirely at the night rate because it is priced
// at 23:00. Callers that poll before settlement therefore see the rate
// flip as the clock crosses the window boundary.
func Charge(zone station.Zone, startedAt, now time.Time, cfg Config) int64 {
	elapsed := now.Sub(startedAt)
	if elapsed < 0 {
		elapsed = 0
	}

	// Only VIP is priced apart; streaming machines bill at the
	// standard rate.
	rate := cfg.StandardRate
	if zone == station.ZoneVIP {
		rate = cfg.VIPRate
	}
	if cfg.IsNightHour(now.Hour()) {
		rate = cfg.NightRate
	}

	return int64(math.Floor(elapsed.Hours() * float64(rate)))
}
