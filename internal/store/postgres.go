// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/server-env-config/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPoolConfig translates cfg into a pgx pool configuration. It only parses
// the connection string; no connection is opened.
//
// MinConnections, MaxConnections and IdleTimeout map onto the pool fields of
// the same meaning, AcquireTimeout bounds each connection attempt, and
// TestBeforeAcquire installs a ping before a connection is handed out.
func NewPoolConfig(cfg config.Database) (*pgxpool.Config, error) {
	if err := checkPoolSize(cfg); err != nil {
		return nil, err
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingDatabaseURL, err)
	}

	poolCfg.MinConns = clampInt32(cfg.MinConnections)
	poolCfg.MaxConns = clampInt32(cfg.MaxConnections)
	poolCfg.MaxConnIdleTime = cfg.IdleTimeout
	poolCfg.ConnConfig.ConnectTimeout = cfg.AcquireTimeout
	if cfg.TestBeforeAcquire {
		poolCfg.BeforeAcquire = pingBeforeAcquire
	}

	return poolCfg, nil
}

func pingBeforeAcquire(ctx context.Context, conn *pgx.Conn) bool {
	return conn.Ping(ctx) == nil
}

func checkPoolSize(cfg config.Database) error {
	if cfg.MaxConnections == 0 {
		return fmt.Errorf("%w: %s must be greater than 0", ErrInvalidPoolSize, config.EnvMaxConnections)
	}
	if cfg.MinConnections > cfg.MaxConnections {
		return fmt.Errorf("%w: %s (%d) is greater than %s (%d)", ErrInvalidPoolSize,
			config.EnvMinConnections, cfg.MinConnections, config.EnvMaxConnections, cfg.MaxConnections)
	}
	return nil
}

func clampInt32(n uint32) int32 {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(n)
}
