package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectConfig tunes the connection pool. Zero values keep the pgxpool defaults.
type ConnectConfig struct {
	MaxConns        int32
	MaxConnLifetime time.Duration
	PingTimeout     time.Duration
}

func DefaultConnectConfig() ConnectConfig {
	return ConnectConfig{
		MaxConns:        10,
		MaxConnLifetime: 30 * time.Minute,
		PingTimeout:     5 * time.Second,
	}
}

func Connect(ctx context.Context, dsn string, config ConnectConfig) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing Postgres DSN: %w", err)
	}
	if config.MaxConns > 0 {
		pcfg.MaxConns = config.MaxConns
	}
	if config.MaxConnLifetime > 0 {
		pcfg.MaxConnLifetime = config.MaxConnLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to Postgres DB: %w", err)
	}

	pingCtx := ctx
	if config.PingTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, config.PingTimeout)
		defer cancel()
	}
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("checking Postgres DB connection: %w", err)
	}

	return pool, nil
}
