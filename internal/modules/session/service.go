// Session service owns the start → occupied → settle lifecycle and
// delegates pricing to the tariff calculator.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"netzone/internal/modules/station"
	"netzone/internal/modules/tariff"
	"netzone/internal/types"
)

var ErrValidation = errors.New("no customer or prepaid amount")

// Ledger receives every Payment exactly once per settlement. An append
// failure aborts the settlement and leaves the station occupied.
type Ledger interface {
	Append(ctx context.Context, p *Payment) error
}

// Publisher fans settlement and session events out to whatever is
// listening (display, persistence). Delivery is best-effort.
type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// StatusCache mirrors occupancy for external dashboards; also
// best-effort.
type StatusCache interface {
	SetStatus(ctx context.Context, st station.Station) error
}

type Service struct {
	registry *station.Registry
	rates    *tariff.Holder
	ledger   Ledger
	pub      Publisher
	cache    StatusCache
	log      *zap.Logger
	now      func() time.Time
}

func NewService(registry *station.Registry, rates *tariff.Holder, ledger Ledger, pub Publisher, cache StatusCache, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		registry: registry,
		rates:    rates,
		ledger:   ledger,
		pub:      pub,
		cache:    cache,
		log:      log,
		now:      time.Now,
	}
}

type StartCommand struct {
	StationID types.ID
	Customer  types.CustomerRef
	Prepaid   int64
}

// Start opens a session on an available station. A session must be
// anchored by a known customer or a positive prepaid deposit; prepaid
// funds are collected out-of-band and tracked locally, the customer's
// account balance is not debited here.
func (s *Service) Start(ctx context.Context, cmd StartCommand) (station.Station, error) {
	if cmd.Prepaid < 0 {
		return station.Station{}, ErrValidation
	}
	if cmd.Customer.IsWalkIn() && cmd.Prepaid == 0 {
		return station.Station{}, ErrValidation
	}

	st, err := s.registry.SetOccupied(cmd.StationID, station.Occupancy{
		Customer:  cmd.Customer,
		StartedAt: s.now(),
		Prepaid:   cmd.Prepaid,
	})
	if err != nil {
		return station.Station{}, err
	}

	s.mirror(ctx, st)
	if s.pub != nil {
		_ = s.pub.PublishJSON(ctx, "session.started", map[string]any{
			"station_id": st.ID,
			"customer":   st.Occupancy.Customer.String(),
			"started_at": st.Occupancy.StartedAt.UTC().Format(time.RFC3339),
			"prepaid":    st.Occupancy.Prepaid,
		})
	}
	return st, nil
}

// Current returns the running session on a station, or
// station.ErrInvalidState if it is not occupied.
func (s *Service) Current(stationID types.ID) (Session, error) {
	st, err := s.registry.Get(stationID)
	if err != nil {
		return Session{}, err
	}
	if st.Status != station.StatusOccupied || st.Occupancy == nil {
		return Session{}, station.ErrInvalidState
	}
	return Session{
		StationID: st.ID,
		Customer:  st.Occupancy.Customer,
		StartedAt: st.Occupancy.StartedAt,
		Prepaid:   st.Occupancy.Prepaid,
	}, nil
}

// LiveCharge prices a running session as of now without touching any
// state. Callers choose their own refresh cadence.
func (s *Service) LiveCharge(stationID types.ID, now time.Time) (LiveCharge, error) {
	st, err := s.registry.Get(stationID)
	if err != nil {
		return LiveCharge{}, err
	}
	if st.Status != station.StatusOccupied || st.Occupancy == nil {
		return LiveCharge{}, station.ErrInvalidState
	}
	elapsed := now.Sub(st.Occupancy.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	return LiveCharge{
		StationID: st.ID,
		Elapsed:   elapsed,
		Amount:    tariff.Charge(st.Zone, st.Occupancy.StartedAt, now, s.rates.Current()),
	}, nil
}

// Settle finalizes the session: price the elapsed time, append the
// payment, reconcile against the deposit, and free the station. The
// whole sequence runs under the station's lock, so a racing duplicate
// stop observes ErrInvalidState rather than a second Payment.
func (s *Service) Settle(ctx context.Context, stationID types.ID) (Settlement, error) {
	var out Settlement
	st, err := s.registry.SetAvailable(stationID, func(st station.Station) error {
		now := s.now()
		occ := st.Occupancy
		amount := tariff.Charge(st.Zone, occ.StartedAt, now, s.rates.Current())
		elapsed := now.Sub(occ.StartedAt)
		if elapsed < 0 {
			elapsed = 0
		}

		p := Payment{
			ID:        types.ID(uuid.NewString()),
			StationID: st.ID,
			Customer:  occ.Customer,
			Amount:    types.VND(amount),
			Duration:  elapsed,
			CreatedAt: now,
		}
		if s.ledger != nil {
			if err := s.ledger.Append(ctx, &p); err != nil {
				return err
			}
		}
		out = Settlement{Payment: p, Prepaid: occ.Prepaid, Change: occ.Prepaid - amount}
		return nil
	})
	if err != nil {
		return Settlement{}, err
	}

	s.mirror(ctx, st)
	if s.pub != nil {
		_ = s.pub.PublishJSON(ctx, "payment.settled", map[string]any{
			"payment_id": out.Payment.ID,
			"station_id": out.Payment.StationID,
			"customer":   out.Payment.Customer.String(),
			"amount":     out.Payment.Amount.Amount,
			"currency":   out.Payment.Amount.Currency,
			"duration":   FormatDuration(out.Payment.Duration),
			"change":     out.Change,
		})
	}
	return out, nil
}

// List returns stations in catalog order with live charge attached to
// the occupied ones. Zone may be empty for all zones.
func (s *Service) List(zone station.Zone, now time.Time) []StationView {
	stations := s.registry.List(zone)
	out := make([]StationView, 0, len(stations))
	cfg := s.rates.Current()
	for _, st := range stations {
		v := StationView{Station: st}
		if st.Status == station.StatusOccupied && st.Occupancy != nil {
			elapsed := now.Sub(st.Occupancy.StartedAt)
			if elapsed < 0 {
				elapsed = 0
			}
			v.Live = &LiveCharge{
				StationID: st.ID,
				Elapsed:   elapsed,
				Amount:    tariff.Charge(st.Zone, st.Occupancy.StartedAt, now, cfg),
			}
		}
		out = append(out, v)
	}
	return out
}

// StationView pairs a station snapshot with its live charge, if any.
type StationView struct {
	Station station.Station
	Live    *LiveCharge
}

func (s *Service) mirror(ctx context.Context, st station.Station) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetStatus(ctx, st); err != nil {
		s.log.Warn("station status mirror failed",
			zap.String("station_id", string(st.ID)),
			zap.Error(err),
		)
	}
}
