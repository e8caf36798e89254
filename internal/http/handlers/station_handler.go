// Station handlers: the live grid plus start/stop/charge per terminal.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"netzone/internal/modules/session"
	"netzone/internal/modules/station"
	"netzone/internal/types"
)

type StationHandler struct {
	sessions *session.Service
}

func NewStationHandler(sessions *session.Service) *StationHandler {
	return &StationHandler{sessions: sessions}
}

type stationView struct {
	ID       types.ID     `json:"id"`
	Name     string       `json:"name"`
	Zone     station.Zone `json:"zone"`
	Status   string       `json:"status"`
	CPU      string       `json:"cpu"`
	GPU      string       `json:"gpu"`
	RAM      string       `json:"ram"`
	Monitor  string       `json:"monitor"`
	Customer string       `json:"customer,omitempty"`
	Elapsed  string       `json:"elapsed,omitempty"`
	Amount   *int64       `json:"amount,omitempty"`
	Prepaid  *int64       `json:"prepaid,omitempty"`
}

func toStationView(v session.StationView) stationView {
	out := stationView{
		ID:      v.Station.ID,
		Name:    v.Station.Name,
		Zone:    v.Station.Zone,
		Status:  string(v.Station.Status),
		CPU:     v.Station.Specs.CPU,
		GPU:     v.Station.Specs.GPU,
		RAM:     v.Station.Specs.RAM,
		Monitor: v.Station.Specs.Monitor,
	}
	if occ := v.Station.Occupancy; occ != nil {
		out.Customer = occ.Customer.String()
		prepaid := occ.Prepaid
		out.Prepaid = &prepaid
	}
	if v.Live != nil {
		out.Elapsed = session.FormatDuration(v.Live.Elapsed)
		amount := v.Live.Amount
		out.Amount = &amount
	}
	return out
}

// List renders every station with live elapsed time and charge for the
// occupied ones. ?zone= filters to one pricing zone.
func (h *StationHandler) List(c *gin.Context) {
	zone := station.Zone(c.Query("zone"))
	if zone != "" && !station.ValidZone(zone) {
		writeError(c, http.StatusBadRequest, "unknown zone")
		return
	}
	views := h.sessions.List(zone, time.Now())
	out := make([]stationView, 0, len(views))
	for _, v := range views {
		out = append(out, toStationView(v))
	}
	c.JSON(http.StatusOK, gin.H{"stations": out})
}

type startReq struct {
	CustomerID string `json:"customer_id"`
	Prepaid    int64  `json:"prepaid_amount"`
}

func (h *StationHandler) Start(c *gin.Context) {
	var req startReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	customer := types.WalkIn()
	if req.CustomerID != "" {
		customer = types.KnownCustomer(types.ID(req.CustomerID))
	}
	st, err := h.sessions.Start(c.Request.Context(), session.StartCommand{
		StationID: types.ID(c.Param("id")),
		Customer:  customer,
		Prepaid:   req.Prepaid,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"station_id": st.ID,
		"status":     string(st.Status),
		"customer":   st.Occupancy.Customer.String(),
		"started_at": st.Occupancy.StartedAt.UTC().Format(time.RFC3339),
		"prepaid":    st.Occupancy.Prepaid,
	})
}

func (h *StationHandler) Stop(c *gin.Context) {
	settlement, err := h.sessions.Settle(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	p := settlement.Payment
	c.JSON(http.StatusOK, gin.H{
		"payment_id": p.ID,
		"station_id": p.StationID,
		"customer":   p.Customer.String(),
		"amount":     p.Amount.Amount,
		"currency":   p.Amount.Currency,
		"duration":   session.FormatDuration(p.Duration),
		"prepaid":    settlement.Prepaid,
		"change":     settlement.Change,
	})
}

// Charge returns the live amount for one occupied station, computed as
// of the request instant.
func (h *StationHandler) Charge(c *gin.Context) {
	id := types.ID(c.Param("id"))
	sess, err := h.sessions.Current(id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	live, err := h.sessions.LiveCharge(id, time.Now())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"station_id": live.StationID,
		"customer":   sess.Customer.String(),
		"started_at": sess.StartedAt.UTC().Format(time.RFC3339),
		"prepaid":    sess.Prepaid,
		"elapsed":    session.FormatDuration(live.Elapsed),
		"amount":     live.Amount,
	})
}
