// Payment feed handler for the reports page.
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"netzone/internal/modules/session"
)

type PaymentHandler struct {
	payments *session.Store
}

func NewPaymentHandler(store *session.Store) *PaymentHandler {
	return &PaymentHandler{payments: store}
}

type paymentView struct {
	ID        string `json:"id"`
	StationID string `json:"station_id"`
	Customer  string `json:"customer"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Duration  string `json:"duration"`
	CreatedAt string `json:"created_at"`
}

// Recent lists the newest settlements first.
func (h *PaymentHandler) Recent(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 500 {
		limit = 50
	}
	payments, err := h.payments.Recent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "failed to load payments")
		return
	}
	out := make([]paymentView, 0, len(payments))
	for _, p := range payments {
		out = append(out, paymentView{
			ID:        string(p.ID),
			StationID: string(p.StationID),
			Customer:  p.Customer.String(),
			Amount:    p.Amount.Amount,
			Currency:  p.Amount.Currency,
			Duration:  session.FormatDuration(p.Duration),
			CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, gin.H{"payments": out})
}
