package storage

import (
	"database/sql"
	"fmt"
	"time"

	"market-watch/src/logger"
	"market-watch/src/models"

	_ "modernc.org/sqlite"
)

// -----------------------------------------------------------------------------

// Expired entries are kept around for a while as rate-limit fallbacks; only
// entries stale beyond this multiple of the TTL are actually removed.
const staleGraceFactor = 10

// -----------------------------------------------------------------------------

type SQLiteQuoteCache struct {
	Config *models.MConfig
	DB     *sql.DB
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewSQLiteQuoteCache(cfg *models.MConfig, log *logger.Logger) (*SQLiteQuoteCache, error) {
	return &SQLiteQuoteCache{
		Config: cfg,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteQuoteCache) Initialize() error {
	db, err := sql.Open("sqlite", d.Config.Cache.DBPath)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}
	d.DB = db

	// PRAGMA optimizations
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		d.Logger.Warning("Failed to set WAL mode: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL;"); err != nil {
		d.Logger.Warning("Failed to set synchronous mode: %v", err)
	}

	query := `
		CREATE TABLE IF NOT EXISTS quote_cache (
			symbol TEXT PRIMARY KEY,
			price REAL,
			change REAL,
			change_percent REAL,
			volume INTEGER,
			as_of INTEGER,
			note TEXT,
			expires_at INTEGER,
			created_at INTEGER
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create quote_cache: %w", err)
	}

	d.Logger.Info("SQLite quote cache ready at %s", d.Config.Cache.DBPath)
	return nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteQuoteCache) GetQuote(symbol string, allowStale bool) (models.MStockSnapshot, bool, error) {
	row := d.DB.QueryRow(`
		SELECT price, change, change_percent, volume, as_of, note, expires_at
		FROM quote_cache WHERE symbol = ?`, symbol)

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

func (d *SQLiteQuoteCache) PutQuote(snapshot models.MStockSnapshot) error {
	now := time.Now().Unix()
	ttl := int64(d.Config.Cache.QuoteTTLSeconds)

	_, err := d.DB.Exec(`
		INSERT INTO quote_cache
			(symbol, price, change, change_percent, volume, as_of, note, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(symbol) DO UPDATE SET
			price = excluded.price,
			change = excluded.change,
			change_percent = excluded.change_percent,
			volume = excluded.volume,
			as_of = excluded.as_of,
			note = excluded.note,
			expires_at = excluded.expires_at,
			created_at = excluded.created_at`,
		snapshot.Symbol, snapshot.Price, snapshot.Change, snapshot.ChangePercent,
		snapshot.Volume, snapshot.AsOf.Unix(), snapshot.Note, now+ttl, now)
	return err
}

// -----------------------------------------------------------------------------

func (d *SQLiteQuoteCache) CleanupExpired() error {
	grace := int64(d.Config.Cache.QuoteTTLSeconds * staleGraceFactor)
	_, err := d.DB.Exec(`DELETE FROM quote_cache WHERE expires_at < ?`,
		time.Now().Unix()-grace)
	return err
}

// -----------------------------------------------------------------------------

func (d *SQLiteQuoteCache) Close() error {
	if d.DB == nil {
		return nil
	}
	return d.DB.Close()
}
