// In-memory station registry. It enforces the two occupancy transition
// guards (no double start, no double settlement); all billing math lives
// in the session and tariff modules.
package station

import (
	"errors"
	"sync"

	"netzone/internal/types"
)

var (
	ErrNotFound     = errors.New("station not found")
	ErrInvalidState = errors.New("invalid station state transition")
)

// Registry owns all terminal occupancy state. Each station carries its
// own lock so transitions on the same station are mutually exclusive
// while different stations proceed in parallel.
type Registry struct {
	mu       sync.RWMutex
	stations map[types.ID]*entry
	order    []types.ID
}

type entry struct {
	mu sync.Mutex
	st Station
}

func NewRegistry(catalog []Station) *Registry {
	r := &Registry{stations: make(map[types.ID]*entry, len(catalog))}
	for _, st := range catalog {
		st.Status = StatusAvailable
		st.Occupancy = nil
		r.stations[st.ID] = &entry{st: st}
		r.order = append(r.order, st.ID)
	}
	return r
}

func (r *Registry) lookup(id types.ID) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.stations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

// Get returns a snapshot of one station.
func (r *Registry) Get(id types.ID) (Station, error) {
	e, err := r.lookup(id)
	if err != nil {
		return Station{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(&e.st), nil
}

// List returns snapshots in catalog order, optionally filtered by zone.
// An empty zone means all stations.
func (r *Registry) List(zone Zone) []Station {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Station, 0, len(r.order))
	for _, id := range r.order {
		e := r.stations[id]
		e.mu.Lock()
		st := snapshot(&e.st)
		e.mu.Unlock()
		if zone != "" && st.Zone != zone {
			continue
		}
		out = append(out, st)
	}
	return out
}

// SetOccupied transitions Available → Occupied. It fails with
// ErrInvalidState if the station is already occupied.
func (r *Registry) SetOccupied(id types.ID, occ Occupancy) (Station, error) {
	e, err := r.lookup(id)
	if err != nil {
		return Station{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.st.Status != StatusAvailable {
		return Station{}, ErrInvalidState
	}
	e.st.Status = StatusOccupied
	e.st.Occupancy = &occ
	return snapshot(&e.st), nil
}

// SetAvailable transitions Occupied → Available, discarding the
// occupancy. It fails with ErrInvalidState if the station is already
// available, so a racing duplicate settlement observes the error instead
// of a second transition.
//
// When settle is non-nil it runs under the station's lock with a
// snapshot of the occupied station; if it returns an error the station
// stays Occupied untouched. This is what makes settlement atomic: the
// charge computation and ledger write happen inside the same critical
// section that flips the status.
func (r *Registry) SetAvailable(id types.ID, settle func(Station) error) (Station, error) {
	e, err := r.lookup(id)
	if err != nil {
		return Station{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.st.Status != StatusOccupied {
		return Station{}, ErrInvalidState
	}
	if settle != nil {
		if err := settle(snapshot(&e.st)); err != nil {
			return Station{}, err
		}
	}
	e.st.Status = StatusAvailable
	e.st.Occupancy = nil
	return snapshot(&e.st), nil
}

// snapshot copies the station so callers never alias registry-owned
// state. Caller must hold the entry lock.
func snapshot(st *Station) Station {
	out := *st
	if st.Occupancy != nil {
		occ := *st.Occupancy
		out.Occupancy = &occ
	}
	return out
}
