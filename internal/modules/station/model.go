// Station catalog model: zones, hardware specs, occupancy state.
package station

import (
	"time"

	"netzone/internal/types"
)

type Zone string

const (
	ZoneStandard Zone = "standard"
	ZoneVIP      Zone = "vip"
	ZoneStream   Zone = "stream"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusOccupied  Status = "occupied"
)

// Specs is display-only hardware information; billing never reads it.
type Specs struct {
	CPU     string
	GPU     string
	RAM     string
	Monitor string
}

// Occupancy exists for a station exactly while it is Occupied. StartedAt
// is set once at session start and never mutated; Prepaid is fixed at
// start (no mid-session top-ups).
type Occupancy struct {
	Customer  types.CustomerRef
	StartedAt time.Time
	Prepaid   int64
}

type Station struct {
	ID        types.ID
	Name      string
	Zone      Zone
	Specs     Specs
	Status    Status
	Occupancy *Occupancy
}

// ValidZone reports whether z names a known pricing zone.
func ValidZone(z Zone) bool {
	switch z {
	case ZoneStandard, ZoneVIP, ZoneStream:
		return true
	}
	return false
}
