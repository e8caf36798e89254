package station

import (
	"errors"
	"testing"
	"time"

	"netzone/internal/types"
)

func testRegistry() *Registry {
	return NewRegistry([]Station{
		{ID: "pc-01", Name: "Máy 1", Zone: ZoneVIP},
		{ID: "pc-02", Name: "Máy 2", Zone: ZoneStandard},
		{ID: "pc-03", Name: "Máy 3", Zone: ZoneStream},
	})
}

func occupy(t *testing.T, r *Registry, id types.ID) Station {
	t.Helper()
	st, err := r.SetOccupied(id, Occupancy{
		Customer:  types.WalkIn(),
		StartedAt: time.Now(),
		Prepaid:   50_000,
	})
	if err != nil {
		t.Fatalf("occupy %s: %v", id, err)
	}
	return st
}

func TestRegistryGetUnknown(t *testing.T) {
	r := testRegistry()
	if _, err := r.Get("pc-99"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := r.SetOccupied("pc-99", Occupancy{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("SetOccupied unknown: expected ErrNotFound, got %v", err)
	}
	if _, err := r.SetAvailable("pc-99", nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("SetAvailable unknown: expected ErrNotFound, got %v", err)
	}
}

func TestRegistryTransitionGuards(t *testing.T) {
	r := testRegistry()

	st := occupy(t, r, "pc-01")
	if st.Status != StatusOccupied || st.Occupancy == nil {
		t.Fatalf("unexpected state after occupy: %+v", st)
	}

	// Double start is rejected.
	if _, err := r.SetOccupied("pc-01", Occupancy{}); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("double occupy: expected ErrInvalidState, got %v", err)
	}

	st, err := r.SetAvailable("pc-01", nil)
	if err != nil {
		t.Fatalf("release: %v", err)
	}
	if st.Status != StatusAvailable || st.Occupancy != nil {
		t.Fatalf("unexpected state after release: %+v", st)
	}

	// Double settlement is rejected.
	if _, err := r.SetAvailable("pc-01", nil); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("double release: expected ErrInvalidState, got %v", err)
	}
}

// A failing settle callback must leave the station occupied.
func TestRegistrySettleFailureKeepsOccupied(t *testing.T) {
	r := testRegistry()
	occupy(t, r, "pc-02")

	boom := errors.New("ledger down")
	if _, err := r.SetAvailable("pc-02", func(Station) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected callback error, got %v", err)
	}

	st, err := r.Get("pc-02")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if st.Status != StatusOccupied || st.Occupancy == nil {
		t.Fatalf("station mutated on failed settle: %+v", st)
	}
}

func TestRegistrySettleSeesOccupancy(t *testing.T) {
	r := testRegistry()
	started := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	if _, err := r.SetOccupied("pc-03", Occupancy{
		Customer:  types.KnownCustomer("cust-1"),
		StartedAt: started,
		Prepaid:   80_000,
	}); err != nil {
		t.Fatalf("occupy: %v", err)
	}

	var seen Station
	if _, err := r.SetAvailable("pc-03", func(st Station) error {
		seen = st
		return nil
	}); err != nil {
		t.Fatalf("release: %v", err)
	}
	if seen.Occupancy == nil {
		t.Fatal("settle callback got no occupancy")
	}
	if !seen.Occupancy.StartedAt.Equal(started) || seen.Occupancy.Prepaid != 80_000 {
		t.Fatalf("settle callback got wrong occupancy: %+v", seen.Occupancy)
	}
	if id, ok := seen.Occupancy.Customer.Known(); !ok || id != "cust-1" {
		t.Fatalf("settle callback got wrong customer: %v", seen.Occupancy.Customer)
	}
}

func TestRegistryList(t *testing.T) {
	r := testRegistry()
	occupy(t, r, "pc-02")

	all := r.List("")
	if len(all) != 3 {
		t.Fatalf("expected 3 stations, got %d", len(all))
	}
	// Catalog order is preserved.
	if all[0].ID != "pc-01" || all[2].ID != "pc-03" {
		t.Fatalf("unexpected order: %v, %v", all[0].ID, all[2].ID)
	}

	vip := r.List(ZoneVIP)
	if len(vip) != 1 || vip[0].ID != "pc-01" {
		t.Fatalf("unexpected vip list: %+v", vip)
	}
}

// Snapshots must not alias registry state.
func TestRegistrySnapshotIsolation(t *testing.T) {
	r := testRegistry()
	occupy(t, r, "pc-01")

	st, _ := r.Get("pc-01")
	st.Occupancy.Prepaid = 999_999

	again, _ := r.Get("pc-01")
	if again.Occupancy.Prepaid != 50_000 {
		t.Fatalf("registry state mutated through snapshot: %d", again.Occupancy.Prepaid)
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	if len(catalog) != 30 {
		t.Fatalf("expected 30 stations, got %d", len(catalog))
	}
	counts := map[Zone]int{}
	for _, st := range catalog {
		counts[st.Zone]++
	}
	if counts[ZoneVIP] != 10 || counts[ZoneStandard] != 10 || counts[ZoneStream] != 10 {
		t.Fatalf("unexpected zone split: %v", counts)
	}
}
