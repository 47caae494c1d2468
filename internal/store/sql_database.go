package store

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/MKhiriev/server-env-config/internal/config"
	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// SQLPoolSettings are the database/sql pool limits derived from a
// [config.Database]. database/sql has no minimum pool size, so
// MinConnections becomes the number of idle connections kept around.
type SQLPoolSettings struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
}

// NewSQLPoolSettings derives the database/sql pool limits from cfg.
func NewSQLPoolSettings(cfg config.Database) (SQLPoolSettings, error) {
	if err := checkPoolSize(cfg); err != nil {
		return SQLPoolSettings{}, err
	}

	return SQLPoolSettings{
		MaxOpenConns:    clampInt(cfg.MaxConnections),
		MaxIdleConns:    clampInt(cfg.MinConnections),
		ConnMaxIdleTime: cfg.IdleTimeout,
	}, nil
}

// ApplyPoolSettings configures the connection pool of an already opened
// *sql.DB from cfg and returns the applied limits. db is left untouched on
// error.
func ApplyPoolSettings(db *sql.DB, cfg config.Database) (SQLPoolSettings, error) {
	settings, err := NewSQLPoolSettings(cfg)
	if err != nil {
		return SQLPoolSettings{}, err
	}

	db.SetMaxOpenConns(settings.MaxOpenConns)
	db.SetMaxIdleConns(settings.MaxIdleConns)
	db.SetConnMaxIdleTime(settings.ConnMaxIdleTime)

	return settings, nil
}

// OpenSQL returns a *sql.DB backed by the pgx driver with the pool limits of
// cfg applied. Connections are opened lazily, so no I/O happens here.
func OpenSQL(cfg config.Database) (*sql.DB, SQLPoolSettings, error) {
	if _, err := pgx.ParseConfig(cfg.URL); err != nil {
		return nil, SQLPoolSettings{}, fmt.Errorf("%w: %w", ErrParsingDatabaseURL, err)
	}

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, SQLPoolSettings{}, fmt.Errorf("error opening database: %w", err)
	}

	settings, err := ApplyPoolSettings(db, cfg)
	if err != nil {
		_ = db.Close()
		return nil, SQLPoolSettings{}, err
	}

	return db, settings, nil
}

func clampInt(n uint32) int {
	if uint64(n) > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
