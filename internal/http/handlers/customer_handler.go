// Customer handlers: account lookup, search, and top-ups.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"netzone/internal/modules/loyalty"
	"netzone/internal/types"
)

type CustomerHandler struct {
	loyalty *loyalty.Service
}

func NewCustomerHandler(svc *loyalty.Service) *CustomerHandler {
	return &CustomerHandler{loyalty: svc}
}

type accountView struct {
	ID         types.ID `json:"id"`
	Username   string   `json:"username"`
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email"`
	Balance    int64    `json:"balance"`
	Points     int64    `json:"points"`
	TotalSpent int64    `json:"total_spent"`
	Membership string   `json:"membership"`
}

func toAccountView(a loyalty.Account) accountView {
	return accountView{
		ID:         a.ID,
		Username:   a.Username,
		Name:       a.Name,
		Phone:      a.Phone,
		Email:      a.Email,
		Balance:    a.Balance,
		Points:     a.Points,
		TotalSpent: a.TotalSpent,
		Membership: a.Membership,
	}
}

// Search matches accounts by name or phone for the start-session dialog.
func (h *CustomerHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	accounts, err := h.loyalty.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]accountView, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountView(a))
	}
	c.JSON(http.StatusOK, gin.H{"customers": out})
}

func (h *CustomerHandler) Get(c *gin.Context) {
	a, err := h.loyalty.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAccountView(a))
}

type topUpReq struct {
	Amount int64 `json:"amount"`
}

func (h *CustomerHandler) TopUp(c *gin.Context) {
	var req topUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	result, err := h.loyalty.TopUp(c.Request.Context(), types.ID(c.Param("id")), req.Amount)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"account_id":     result.AccountID,
		"amount":         result.Amount,
		"bonus_percent":  result.BonusPercent,
		"bonus_amount":   result.BonusAmount,
		"total_credited": result.TotalCredited,
		"points_earned":  result.PointsEarned,
	})
}
