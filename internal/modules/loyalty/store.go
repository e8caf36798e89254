// Account store backed by PostgreSQL.
package loyalty

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"netzone/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const accountColumns = `id, username, name, phone, email, balance, points, total_spent, membership`

func (s *Store) Get(ctx context.Context, id types.ID) (Account, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM customers
		WHERE id = $1`, string(id),
	)
	return scanAccount(row)
}

func (s *Store) Search(ctx context.Context, query string, limit int) ([]Account, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+accountColumns+`
		FROM customers
		WHERE name ILIKE '%' || $1 || '%' OR phone LIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2`, query, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ApplyTopUp applies all three deltas in a single UPDATE so a top-up is
// atomic from the collaborator's point of view.
func (s *Store) ApplyTopUp(ctx context.Context, id types.ID, credited, points, spent int64) (Account, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE customers
		SET balance = balance + $1,
		    points = points + $2,
		    total_spent = total_spent + $3
		WHERE id = $4
		RETURNING `+accountColumns,
		credited, points, spent, string(id),
	)
	return scanAccount(row)
}

func scanAccount(row pgx.Row) (Account, error) {
	var a Account
	err := row.Scan(&a.ID, &a.Username, &a.Name, &a.Phone, &a.Email, &a.Balance, &a.Points, &a.TotalSpent, &a.Membership)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrNotFound
	}
	if err != nil {
		return Account{}, err
	}
	return a, nil
}
