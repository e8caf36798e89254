// Customer account model and the top-up bonus ladder.
package loyalty

import (
	"errors"

	"netzone/internal/types"
)

var (
	ErrNotFound   = errors.New("account not found")
	ErrValidation = errors.New("top-up amount must be positive")
)

// Account mirrors the collaborator-owned customer record. The core reads
// identity and balance for display and issues deltas; it does not own
// the authoritative store. Membership is informational here — its
// promotion rule is applied externally from TotalSpent and Points.
type Account struct {
	ID         types.ID
	Username   string
	Name       string
	Phone      string
	Email      string
	Balance    int64
	Points     int64
	TotalSpent int64
	Membership string
}

// TopUpResult describes one deposit: the bonus ladder applied, the total
// credited to the balance, and the loyalty points earned.
type TopUpResult struct {
	AccountID     types.ID
	Amount        int64
	BonusPercent  int64
	BonusAmount   int64
	TotalCredited int64
	PointsEarned  int64
}

// bonusPercent picks the highest applicable tier; tiers do not stack.
func bonusPercent(amount int64) int64 {
	switch {
	case amount >= 500_000:
		return 20
	case amount >= 200_000:
		return 10
	case amount >= 100_000:
		return 5
	default:
		return 0
	}
}

// ComputeTopUp evaluates the ladder for a deposit. Pure; amount must
// already be validated positive. Points are earned on the deposited
// amount only, never on the bonus, and the bonus is floored.
func ComputeTopUp(accountID types.ID, amount int64) TopUpResult {
	pct := bonusPercent(amount)
	bonus := amount * pct / 100
	return TopUpResult{
		AccountID:     accountID,
		Amount:        amount,
		BonusPercent:  pct,
		BonusAmount:   bonus,
		TotalCredited: amount + bonus,
		PointsEarned:  amount / 1000,
	}
}
