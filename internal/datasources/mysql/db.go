package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

const driverParamStr string = "?parseTime=true"

// ConnectConfig tunes the connection pool.
type ConnectConfig struct {
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

func DefaultConnectConfig() ConnectConfig {
	return ConnectConfig{
		MaxOpenConns:    10,
		ConnMaxLifetime: 5 * time.Minute,
	}
}

func Connect(ctx context.Context, uri string, config ConnectConfig) (*sql.DB, error) {
	db, err := sql.Open("mysql", uri+driverParamStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL DB: %w", err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxOpenConns)
	db.SetConnMaxLifetime(config.ConnMaxLifetime)

	err = db.PingContext(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("checking MySQL DB connection: %w", err)
	}

	return db, nil
}
