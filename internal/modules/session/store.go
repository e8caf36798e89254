// Payment ledger backed by PostgreSQL. Rows are append-only.
package session

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"netzone/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Append(ctx context.Context, p *Payment) error {
	var customerID *string
	if id, ok := p.Customer.Known(); ok {
		v := string(id)
		customerID = &v
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO payments (
			id, station_id, customer_id, amount, currency, duration_seconds, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		string(p.ID),
		string(p.StationID),
		customerID,
		p.Amount.Amount,
		p.Amount.Currency,
		int64(p.Duration.Seconds()),
		p.CreatedAt,
	)
	return err
}

// Recent returns the newest payments first, for the payments feed.
func (s *Store) Recent(ctx context.Context, limit int) ([]Payment, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, station_id, customer_id, amount, currency, duration_seconds, created_at
		FROM payments
		ORDER BY created_at DESC
		LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Payment
	for rows.Next() {
		var p Payment
		var customerID sql.NullString
		var seconds int64
		if err := rows.Scan(&p.ID, &p.StationID, &customerID, &p.Amount.Amount, &p.Amount.Currency, &seconds, &p.CreatedAt); err != nil {
			return nil, err
		}
		if customerID.Valid {
			p.Customer = types.KnownCustomer(types.ID(customerID.String))
		} else {
			p.Customer = types.WalkIn()
		}
		p.Duration = time.Duration(seconds) * time.Second
		out = append(out, p)
	}
	return out, rows.Err()
}
