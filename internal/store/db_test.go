package store

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func withMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	prev := openDB
	openDB = func(driver, dsn string) (*sql.DB, error) { return db, nil }
	t.Cleanup(func() {
		openDB = prev
		_ = db.Close()
	})
	return mock
}

func TestConnect(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectPing()

	db, err := Connect(context.Background(), "postgres://localhost/ravyz", Options{MaxOpenConns: 7}, nil)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if got := db.Stats().MaxOpenConnections; got != 7 {
		t.Fatalf("expected MaxOpenConnections=7, got %d", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestConnectPingFailure(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectClose()

	if _, err := Connect(context.Background(), "postgres://localhost/ravyz", DefaultOptions(), nil); err == nil {
		t.Fatalf("expected ping error")
	}
}

func TestConnectEmptyURL(t *testing.T) {
	if _, err := Connect(context.Background(), "  ", DefaultOptions(), nil); !errors.Is(err, errEmptyURL) {
		t.Fatalf("expected errEmptyURL, got %v", err)
	}
}

func TestWithDefaults(t *testing.T) {
	t.Parallel()

	opts := withDefaults(Options{MaxIdleConns: 9})
	if opts.MaxIdleConns != 9 {
		t.Fatalf("expected explicit value to be kept, got %d", opts.MaxIdleConns)
	}
	if opts.MaxOpenConns != 4 || opts.PingTimeout != 5*time.Second || opts.ConnMaxLifetime != time.Hour {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) == 0 {
		t.Fatalf("expected embedded migrations")
	}

	if err := RunMigrations(context.Background(), nil); err != nil {
		t.Fatalf("expected nil database to be a no-op, got %v", err)
	}
}
