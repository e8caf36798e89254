// Tariff handlers for the admin settings page.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"netzone/internal/modules/tariff"
)

type TariffHandler struct {
	rates *tariff.Holder
	store *tariff.Store
}

// NewTariffHandler takes the live holder and, optionally, the pg store
// used to persist admin changes across restarts.
func NewTariffHandler(rates *tariff.Holder, store *tariff.Store) *TariffHandler {
	return &TariffHandler{rates: rates, store: store}
}

func (h *TariffHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.rates.Current())
}

// Update validates and swaps the rate table, then persists it. Running
// sessions pick up the new rates at their next charge computation.
func (h *TariffHandler) Update(c *gin.Context) {
	var cfg tariff.Config
	if err := c.ShouldBindJSON(&cfg); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.rates.Update(cfg); err != nil {
		writeDomainError(c, err)
		return
	}
	if h.store != nil {
		if err := h.store.Save(c.Request.Context(), cfg); err != nil {
			writeError(c, http.StatusInternalServerError, "failed to persist tariff")
			return
		}
	}
	c.JSON(http.StatusOK, h.rates.Current())
}
