package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"netzone/internal/modules/session"
	"netzone/internal/modules/station"
	"netzone/internal/modules/tariff"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := station.NewRegistry([]station.Station{
		{ID: "pc-01", Name: "Máy 1", Zone: station.ZoneVIP},
		{ID: "pc-02", Name: "Máy 2", Zone: station.ZoneStandard},
	})
	rates := tariff.NewHolder(tariff.Config{
		StandardRate:   20_000,
		VIPRate:        30_000,
		NightRate:      25_000,
		NightStartHour: 22,
		NightEndHour:   6,
	})
	sessions := session.NewService(registry, rates, nil, nil, nil, nil)

	r := gin.New()
	h := NewStationHandler(sessions)
	r.GET("/api/stations", h.List)
	r.POST("/api/stations/:id/start", h.Start)
	r.POST("/api/stations/:id/stop", h.Stop)
	r.GET("/api/stations/:id/charge", h.Charge)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStartStopFlow(t *testing.T) {
	r := testRouter(t)

	w := do(r, http.MethodPost, "/api/stations/pc-01/start", `{"prepaid_amount": 50000}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("start: status %d, body %s", w.Code, w.Body.String())
	}

	// Double start conflicts.
	w = do(r, http.MethodPost, "/api/stations/pc-01/start", `{"customer_id": "cust-1"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("double start: status %d", w.Code)
	}

	w = do(r, http.MethodGet, "/api/stations/pc-01/charge", "")
	if w.Code != http.StatusOK {
		t.Fatalf("charge: status %d, body %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/api/stations/pc-01/stop", "")
	if w.Code != http.StatusOK {
		t.Fatalf("stop: status %d, body %s", w.Code, w.Body.String())
	}
	var settled struct {
		Amount  int64 `json:"amount"`
		Prepaid int64 `json:"prepaid"`
		Change  int64 `json:"change"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &settled); err != nil {
		t.Fatalf("decode stop response: %v", err)
	}
	if settled.Prepaid != 50_000 {
		t.Fatalf("prepaid = %d", settled.Prepaid)
	}
	if settled.Change != settled.Prepaid-settled.Amount {
		t.Fatalf("change %d does not reconcile with amount %d", settled.Change, settled.Amount)
	}

	// Double stop conflicts.
	w = do(r, http.MethodPost, "/api/stations/pc-01/stop", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("double stop: status %d", w.Code)
	}
}

func TestStartValidation(t *testing.T) {
	r := testRouter(t)

	// No customer and no prepaid anchor.
	w := do(r, http.MethodPost, "/api/stations/pc-01/start", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unanchored start: status %d", w.Code)
	}

	// Unknown station.
	w = do(r, http.MethodPost, "/api/stations/pc-99/start", `{"customer_id": "cust-1"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown station: status %d", w.Code)
	}
}

func TestListFiltersZone(t *testing.T) {
	r := testRouter(t)

	w := do(r, http.MethodGet, "/api/stations?zone=vip", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var resp struct {
		Stations []struct {
			ID   string `json:"id"`
			Zone string `json:"zone"`
		} `json:"stations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(resp.Stations) != 1 || resp.Stations[0].ID != "pc-01" {
		t.Fatalf("unexpected stations: %+v", resp.Stations)
	}

	w = do(r, http.MethodGet, "/api/stations?zone=bogus", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bogus zone: status %d", w.Code)
	}
}
