package storage

import (
	"database/sql"
	"fmt"
	"time"

	"market-watch/src/logger"
	"market-watch/src/models"

	_ "github.com/lib/pq"
)

// -----------------------------------------------------------------------------

// PostgresQuoteCache is the shared-cache variant: several watchers on one
// network can point at the same Postgres instance and split the rate budget.
type PostgresQuoteCache struct {
	Config *models.MConfig
	DB     *sql.DB
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewPostgresQuoteCache(cfg *models.MConfig, log *logger.Logger) (*PostgresQuoteCache, error) {
	return &PostgresQuoteCache{
		Config: cfg,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

func (d *PostgresQuoteCache) Initialize() error {
	db, err := sql.Open("postgres", d.Config.Cache.DBConnectionString)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}
	d.DB = db

	query := `
		CREATE TABLE IF NOT EXISTS quote_cache (
			symbol TEXT PRIMARY KEY,
			price DOUBLE PRECISION,
			change DOUBLE PRECISION,
			change_percent DOUBLE PRECISION,
			volume BIGINT,
			as_of BIGINT,
			note TEXT,
			expires_at BIGINT,
			created_at BIGINT
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create quote_cache: %w", err)
	}

	d.Logger.Info("Postgres quote cache initialized")
	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresQuoteCache) GetQuote(symbol string, allowStale bool) (models.MStockSnapshot, bool, error) {
	row := d.DB.QueryRow(`
		SELECT price, change, change_percent, volume, as_of, note, expires_at
		FROM quote_cache WHERE symbol = $1`, symbol)

	var s models.MStockSnapshot
	var asOf, expiresAt int64
	s.Symbol = symbol

	err := row.Scan(&s.Price, &s.Change, &s.ChangePercent, &s.Volume, &asOf, &s.Note, &expiresAt)
	if err == sql.ErrNoRows {
		return models.MStockSnapshot{}, false, nil
	}
	if err != nil {
		return models.MStockSnapshot{}, false, err
	}

	if !allowStale && time.Now().Unix() > expiresAt {
		return models.MStockSnapshot{}, false, nil
	}

	s.AsOf = time.Unix(asOf, 0).UTC()
	return s, true, nil
}

// -----------------------------------------------------------------------------

func (d *PostgresQuoteCache) PutQuote(snapshot models.MStockSnapshot) error {
	now := time.Now().Unix()
	ttl := int64(d.Config.Cache.QuoteTTLSeconds)

	_, err := d.DB.Exec(`
		INSERT INTO quote_cache
			(symbol, price, change, change_percent, volume, as_of, note, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (symbol) DO UPDATE SET
			price = EXCLUDED.price,
			change = EXCLUDED.change,
			change_percent = EXCLUDED.change_percent,
			volume = EXCLUDED.volume,
			as_of = EXCLUDED.as_of,
			note = EXCLUDED.note,
			expires_at = EXCLUDED.expires_at,
			created_at = EXCLUDED.created_at`,
		snapshot.Symbol, snapshot.Price, snapshot.Change, snapshot.ChangePercent,
		snapshot.Volume, snapshot.AsOf.Unix(), snapshot.Note, now+ttl, now)
	return err
}

// -----------------------------------------------------------------------------

func (d *PostgresQuoteCache) CleanupExpired() error {
	grace := int64(d.Config.Cache.QuoteTTLSeconds * staleGraceFactor)
	_, err := d.DB.Exec(`DELETE FROM quote_cache WHERE expires_at < $1`,
		time.Now().Unix()-grace)
	return err
}

// -----------------------------------------------------------------------------

func (d *PostgresQuoteCache) Close() error {
	if d.DB == nil {
		return nil
	}
	return d.DB.Close()
}
