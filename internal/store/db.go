// Package store persists match records in Postgres or in memory.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"go.uber.org/zap"
)

// Options controls the connection pool.
type Options struct {
	MaxOpenConns    int           `mapstructure:"max-open-conns"`
	MaxIdleConns    int           `mapstructure:"max-idle-conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn-max-lifetime"`
	PingTimeout     time.Duration `mapstructure:"ping-timeout"`
}

// DefaultOptions suits a short-lived CLI process.
func DefaultOptions() Options {
	return Options{
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Hour,
		PingTimeout:     5 * time.Second,
	}
}

var (
	openDB = sql.Open

	errEmptyURL = errors.New("database url is empty")
)

// Connect opens the database and verifies it answers a ping within opts.PingTimeout.
func Connect(ctx context.Context, databaseURL string, opts Options, log *zap.Logger) (*sql.DB, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, errEmptyURL
	}
	if log == nil {
		log = zap.NewNop()
	}

	db, err := openDB("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	opts = withDefaults(opts)
	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxLifetime(opts.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, opts.PingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	stats := db.Stats()
	log.Debug("database connected",
		zap.Int("max_open", stats.MaxOpenConnections),
		zap.Int("open", stats.OpenConnections),
		zap.Duration("ping_timeout", opts.PingTimeout),
	)
	return db, nil
}

func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.MaxOpenConns <= 0 {
		opts.MaxOpenConns = def.MaxOpenConns
	}
	if opts.MaxIdleConns <= 0 {
		opts.MaxIdleConns = def.MaxIdleConns
	}
	if opts.ConnMaxLifetime <= 0 {
		opts.ConnMaxLifetime = def.ConnMaxLifetime
	}
	if opts.PingTimeout <= 0 {
		opts.PingTimeout = def.PingTimeout
	}
	return opts
}
