// Package database provides integration-test infrastructure: a shared
// PostgreSQL testcontainer started once per package, and per-test databases
// carrying the full migration set with the app/admin role split.
package database

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/labdex/labdex/pkg/database"
)

// Role credentials used inside the throwaway container.
const (
	appRole   = "labdex_app"
	appPass   = "app-secret"
	adminRole = "labdex_admin"
	adminPass = "admin-secret"
)

var (
	containerOnce sync.Once
	containerErr  error

	pgHost  string
	pgPort  int
	superDB *stdsql.DB // superuser pool on the maintenance database
)

// Setup starts the shared container on first use, creates a fresh database
// owned by the admin role, runs migrations through database.NewClient, and
// grants the app role its runtime privileges. The database is dropped on
// test cleanup. Tests are skipped when no container runtime is available.
func Setup(t *testing.T) *database.Client {
	t.Helper()
	ctx := context.Background()

	startSharedContainer(t)

	dbName := uniqueDBName(t)
	_, err := superDB.ExecContext(ctx,
		fmt.Sprintf("CREATE DATABASE %s OWNER %s", dbName, adminRole))
	require.NoError(t, err)
	t.Logf("created test database %s", dbName)

	cfg := database.Config{
		Host:            pgHost,
		Port:            pgPort,
		User:            appRole,
		Password:        appPass,
		AdminUser:       adminRole,
		AdminPass:       adminPass,
		Database:        dbName,
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}

	client, err := database.NewClient(ctx, cfg)
	require.NoError(t, err)

	// Migrations ran as the admin role, so it owns every object. The app
	// role gets DML only; DDL stays with the owner.
	_, err = client.AdminDB().ExecContext(ctx,
		fmt.Sprintf("GRANT USAGE ON SCHEMA public TO %s", appRole))
	require.NoError(t, err)
	_, err = client.AdminDB().ExecContext(ctx,
		fmt.Sprintf("GRANT SELECT, INSERT, UPDATE, DELETE ON ALL TABLES IN SCHEMA public TO %s", appRole))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()
		_, err := superDB.ExecContext(context.Background(),
			fmt.Sprintf("DROP DATABASE IF EXISTS %s WITH (FORCE)", dbName))
		if err != nil {
			t.Logf("warning: failed to drop database %s: %v", dbName, err)
		}
	})

	return client
}

// CreateUser inserts a user row through the admin pool and returns its id.
func CreateUser(t *testing.T, client *database.Client, id string) string {
	t.Helper()
	_, err := client.AdminDB().ExecContext(context.Background(), `
		INSERT INTO users (id, display_name, email)
		VALUES ($1, $2, $3)`,
		id, "Test "+id, id+"@example.com")
	require.NoError(t, err)
	return id
}

// CreatePatient inserts a patient within the user's RLS scope.
func CreatePatient(t *testing.T, client *database.Client, userID, patientID, name string) string {
	t.Helper()
	err := client.WithUserTx(context.Background(), userID, func(tx *stdsql.Tx) error {
		_, err := tx.ExecContext(context.Background(), `
			INSERT INTO patients (id, user_id, display_name, name_normalized)
			VALUES ($1, $2, $3, $4)`,
			patientID, userID, name, strings.ToLower(name))
		return err
	})
	require.NoError(t, err)
	return patientID
}

// startSharedContainer brings up one postgres container for the whole
// package and creates the two runtime roles. Both pieces happen exactly
// once; every caller after the first reuses the container.
func startSharedContainer(t *testing.T) {
	t.Helper()
	containerOnce.Do(func() {
		ctx := context.Background()

		pgContainer, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("postgres"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		if err != nil {
			containerErr = fmt.Errorf("start postgres container: %w", err)
			return
		}

		connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			containerErr = fmt.Errorf("container connection string: %w", err)
			return
		}

		u, err := url.Parse(connStr)
		if err != nil {
			containerErr = fmt.Errorf("parse connection string: %w", err)
			return
		}
		pgHost = u.Hostname()
		pgPort, err = strconv.Atoi(u.Port())
		if err != nil {
			containerErr = fmt.Errorf("parse container port: %w", err)
			return
		}

		superDB, err = stdsql.Open("pgx", connStr)
		if err != nil {
			containerErr = fmt.Errorf("open superuser pool: %w", err)
			return
		}

		for _, stmt := range []string{
			fmt.Sprintf("CREATE ROLE %s LOGIN PASSWORD '%s' NOBYPASSRLS", appRole, appPass),
			fmt.Sprintf("CREATE ROLE %s LOGIN PASSWORD '%s' BYPASSRLS", adminRole, adminPass),
		} {
			if _, err := superDB.ExecContext(ctx, stmt); err != nil {
				containerErr = fmt.Errorf("create role: %w", err)
				return
			}
		}
	})

	if containerErr != nil {
		t.Skipf("PostgreSQL container unavailable: %v", containerErr)
	}
}

// uniqueDBName builds a PostgreSQL-safe database name from the test name.
func uniqueDBName(t *testing.T) string {
	t.Helper()
	name := strings.ToLower(t.Name())
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("generate database name suffix: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}
