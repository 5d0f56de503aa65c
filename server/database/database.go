package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/topi314/gomigrate"
	"github.com/topi314/gomigrate/drivers/sqlite"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

func New(cfg Config) (*Database, error) {
	// sqlx does not know the modernc driver name; sqlite understands $N
	// placeholders natively.
	sqlx.BindDriver("sqlite", sqlx.DOLLAR)

	dbx, err := sqlx.Connect("sqlite", cfg.DataSourceName())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// modernc sqlite serializes writes per connection; a single connection
	// avoids SQLITE_BUSY between concurrent requests.
	dbx.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = gomigrate.Migrate(ctx, dbx, sqlite.New, migrations); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db := &Database{
		db: dbx,
	}

	go db.cleanupSessions()

	return db, nil
}

type Database struct {
	db *sqlx.DB
}

func (d *Database) Close() error {
	if err := d.db.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

func (d *Database) cleanupSessions() {
	for {
		d.doCleanupSessions()
		time.Sleep(1 * time.Hour)
	}
}

func (d *Database) doCleanupSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := d.DeleteExpiredSessions(ctx); err != nil {
		slog.Error("failed to cleanup expired sessions", slog.Any("err", err))
	}
}

type Config struct {
	Path string `toml:"path"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n Path: %s", c.Path)
}

func (c Config) DataSourceName() string {
	return filepath.Clean(c.Path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
}
