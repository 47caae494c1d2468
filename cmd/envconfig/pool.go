package main

import (
	"fmt"

	"github.com/MKhiriev/server-env-config/internal/config"
	"github.com/MKhiriev/server-env-config/internal/store"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Pool drivers accepted by the pool command.
const (
	driverPgx = "pgx"
	driverSQL = "sql"
)

// pgxPoolView is the pool command output for the pgx driver.
type pgxPoolView struct {
	Host              string          `yaml:"host"`
	Port              uint16          `yaml:"port"`
	Database          string          `yaml:"database"`
	User              string          `yaml:"user"`
	MinConns          int32           `yaml:"min_conns"`
	MaxConns          int32           `yaml:"max_conns"`
	MaxConnIdleTime   config.Duration `yaml:"max_conn_idle_time"`
	ConnectTimeout    config.Duration `yaml:"connect_timeout"`
	TestBeforeAcquire bool            `yaml:"test_before_acquire"`
}

// sqlPoolView is the pool command output for the database/sql driver.
type sqlPoolView struct {
	MaxOpenConns    int             `yaml:"max_open_conns"`
	MaxIdleConns    int             `yaml:"max_idle_conns"`
	ConnMaxIdleTime config.Duration `yaml:"conn_max_idle_time"`
}

func newPoolCmd(opts *options) *cobra.Command {
	var driver string

	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Print the database pool settings derived from the configuration",
		Long: `Print the database pool settings derived from the configuration.

Only the connection string is parsed; no connection is opened.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			var view any
			switch driver {
			case driverPgx:
				if view, err = pgxPool(cfg.DB); err != nil {
					return err
				}
			case driverSQL:
				if view, err = sqlPool(cfg.DB); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown driver %q, want %s or %s", driver, driverPgx, driverSQL)
			}

			data, err := yaml.Marshal(view)
			if err != nil {
				return fmt.Errorf("error encoding pool settings: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&driver, "driver", driverPgx, "pool implementation (pgx or sql)")

	return cmd
}

func pgxPool(db config.Database) (pgxPoolView, error) {
	poolCfg, err := store.NewPoolConfig(db)
	if err != nil {
		return pgxPoolView{}, err
	}

	conn := poolCfg.ConnConfig
	return pgxPoolView{
		Host:              conn.Host,
		Port:              conn.Port,
		Database:          conn.Database,
		User:              conn.User,
		MinConns:          poolCfg.MinConns,
		MaxConns:          poolCfg.MaxConns,
		MaxConnIdleTime:   config.Duration(poolCfg.MaxConnIdleTime),
		ConnectTimeout:    config.Duration(conn.ConnectTimeout),
		TestBeforeAcquire: poolCfg.BeforeAcquire != nil,
	}, nil
}

func sqlPool(db config.Database) (sqlPoolView, error) {
	sqlDB, settings, err := store.OpenSQL(db)
	if err != nil {
		return sqlPoolView{}, err
	}
	defer sqlDB.Close()

	return sqlPoolView{
		MaxOpenConns:    sqlDB.Stats().MaxOpenConnections,
		MaxIdleConns:    settings.MaxIdleConns,
		ConnMaxIdleTime: config.Duration(settings.ConnMaxIdleTime),
	}, nil
}
