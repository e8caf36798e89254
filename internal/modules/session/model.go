// Session and payment records produced by the billing state machine.
package session

import (
	"fmt"
	"time"

	"netzone/internal/types"
)

// Session is one billed occupancy interval, live only while its station
// is occupied. StartedAt is immutable after creation; the charge is
// always recomputed on demand from it, never accrued in the background.
type Session struct {
	StationID types.ID
	Customer  types.CustomerRef
	StartedAt time.Time
	Prepaid   int64
}

// Payment is the append-only record of one settlement.
type Payment struct {
	ID        types.ID
	StationID types.ID
	Customer  types.CustomerRef
	Amount    types.Money
	Duration  time.Duration
	CreatedAt time.Time
}

// Settlement reconciles the final charge against the prepaid deposit.
// Change > 0 is a refund due ("tiền thừa"); Change < 0 is the amount the
// customer still owes. The UI labels the two signs distinctly.
type Settlement struct {
	Payment Payment
	Prepaid int64
	Change  int64
}

// LiveCharge is a read-only view of a running session, recomputed from
// scratch on every poll.
type LiveCharge struct {
	StationID types.ID
	Elapsed   time.Duration
	Amount    int64
}

// FormatDuration renders an elapsed interval as HH:MM:SS for receipts
// and the live grid.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
