// Top-up service: ladder evaluation plus account delta application.
package loyalty

import (
	"context"

	"netzone/internal/types"
)

// Accounts is the collaborator account store. ApplyTopUp must apply all
// three deltas atomically and return ErrNotFound for unknown accounts.
type Accounts interface {
	Get(ctx context.Context, id types.ID) (Account, error)
	Search(ctx context.Context, query string, limit int) ([]Account, error)
	ApplyTopUp(ctx context.Context, id types.ID, credited, points, spent int64) (Account, error)
}

// Publisher mirrors the session module's event fan-out; best-effort.
type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type Service struct {
	accounts Accounts
	pub      Publisher
}

func NewService(accounts Accounts, pub Publisher) *Service {
	return &Service{accounts: accounts, pub: pub}
}

// TopUp credits a deposit to an account. Balance grows by amount plus
// bonus, points by amount/1000, total spent by the raw amount (the bonus
// is a gift, not spend). No state changes on any failure path.
func (s *Service) TopUp(ctx context.Context, accountID types.ID, amount int64) (TopUpResult, error) {
	if amount <= 0 {
		return TopUpResult{}, ErrValidation
	}
	result := ComputeTopUp(accountID, amount)

	if _, err := s.accounts.ApplyTopUp(ctx, accountID, result.TotalCredited, result.PointsEarned, result.Amount); err != nil {
		return TopUpResult{}, err
	}

	if s.pub != nil {
		_ = s.pub.PublishJSON(ctx, "account.topped_up", map[string]any{
			"account_id":     result.AccountID,
			"amount":         result.Amount,
			"bonus_percent":  result.BonusPercent,
			"bonus_amount":   result.BonusAmount,
			"total_credited": result.TotalCredited,
			"points_earned":  result.PointsEarned,
		})
	}
	return result, nil
}

// Get looks up one account for display.
func (s *Service) Get(ctx context.Context, id types.ID) (Account, error) {
	return s.accounts.Get(ctx, id)
}

// Search finds accounts by name or phone for the start-session dialog.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]Account, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.accounts.Search(ctx, query, limit)
}
