// Tariff store persists the single rate-table row in PostgreSQL.
package tariff

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Load reads the persisted rate table. ok is false when no row has been
// saved yet, in which case callers fall back to configured defaults.
func (s *Store) Load(ctx context.Context) (Config, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT standard_rate, vip_rate, night_rate, night_start_hour, night_end_hour
		FROM tariff_config
		WHERE id = 1`,
	)
	var cfg Config
	err := row.Scan(&cfg.StandardRate, &cfg.VIPRate, &cfg.NightRate, &cfg.NightStartHour, &cfg.NightEndHour)
	if errors.Is(err, pgx.ErrNoRows) {
		return Config{}, false, nil
	}
	if err != nil {
		return Config{}, false, err
	}
	return cfg, true, nil
}

// Save upserts the rate table. Callers validate before saving.
func (s *Store) Save(ctx context.Context, cfg Config) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO tariff_config (id, standard_rate, vip_rate, night_rate, night_start_hour, night_end_hour)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			standard_rate = EXCLUDED.standard_rate,
			vip_rate = EXCLUDED.vip_rate,
			night_rate = EXCLUDED.night_rate,
			night_start_hour = EXCLUDED.night_start_hour,
			night_end_hour = EXCLUDED.night_end_hour`,
		cfg.StandardRate, cfg.VIPRate, cfg.NightRate, cfg.NightStartHour, cfg.NightEndHour,
	)
	return err
}
