// Package database provides the PostgreSQL client, embedded migrations,
// RLS-scoped transactions, trigram search and advisory-lock primitives.
package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
	"github.com/labdex/labdex/ent"
)

//go:embed migrations
var migrationsFS embed.FS

// Client wraps the Ent client and the underlying connection pools.
//
// Two pools exist by design:
//   - the app pool (no BYPASSRLS) carries every tenant-scoped operation and
//     must be used through WithUserTx so app.current_user_id is bound;
//   - the admin pool (BYPASSRLS) carries catalog maintenance, review queues
//     and the session sweep.
//
// The embedded Ent client runs on the admin pool: Ent pools connections
// freely and cannot guarantee the session-local RLS setting, so it is only
// safe for operations that legitimately bypass row-level policy.
type Client struct {
	*ent.Client
	app   *stdsql.DB
	admin *stdsql.DB
	cfg   Config
}

// DB returns the app-role pool for direct queries and health checks.
func (c *Client) DB() *stdsql.DB { return c.app }

// AdminDB returns the admin-role pool (BYPASSRLS).
func (c *Client) AdminDB() *stdsql.DB { return c.admin }

// DSN returns the app-role connection string (used by the NOTIFY listener,
// which needs its own dedicated pgx connection).
func (c *Client) DSN() string { return c.cfg.DSN() }

// NewClientFromPools wraps existing pools (useful for testing).
func NewClientFromPools(entClient *ent.Client, app, admin *stdsql.DB) *Client {
	return &Client{Client: entClient, app: app, admin: admin}
}

// NewClient opens both pools, runs migrations on the admin pool, and
// returns the wrapped client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	app, err := openPool(ctx, cfg.DSN(), cfg)
	if err != nil {
		return nil, fmt.Errorf("open app pool: %w", err)
	}

	admin, err := openPool(ctx, cfg.AdminDSN(), cfg)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("open admin pool: %w", err)
	}

	if err := runMigrations(admin, cfg); err != nil {
		_ = app.Close()
		_ = admin.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, admin)
	entClient := ent.NewClient(ent.Driver(drv))

	return &Client{Client: entClient, app: app, admin: admin, cfg: cfg}, nil
}

// Close closes the Ent client and both pools.
func (c *Client) Close() error {
	var errs []string
	if c.Client != nil {
		if err := c.Client.Close(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if c.app != nil {
		if err := c.app.Close(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func openPool(ctx context.Context, dsn string, cfg Config) (*stdsql.DB, error) {
	db, err := stdsql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// runMigrations applies embedded SQL migrations via golang-migrate.
// Migrations are embedded into the binary so production deployments carry
// them without external files. RLS policies, triggers and trigram indexes
// live here because Ent cannot express them.
func runMigrations(db *stdsql.DB, cfg Config) error {
	hasMigrations, err := hasEmbeddedMigrations()
	if err != nil {
		return fmt.Errorf("check embedded migrations: %w", err)
	}
	if !hasMigrations {
		return fmt.Errorf("no embedded migration files found: binary may be built incorrectly")
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create postgres driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, cfg.Database, driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Close only the source driver. m.Close() would also close the database
	// driver, which calls db.Close() on the shared pool.
	if err := sourceDriver.Close(); err != nil {
		return fmt.Errorf("close migration source: %w", err)
	}

	return nil
}

func hasEmbeddedMigrations() (bool, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read embedded migrations: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			return true, nil
		}
	}
	return false, nil
}
