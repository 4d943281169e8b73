package database_test

import (
	"context"
	"net/url"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/fdahk/Tjlogs/internal/config"
	"github.com/fdahk/Tjlogs/internal/infrastructure/database"
)

func migrationsDir() string {
	_, currentFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(currentFile), "..", "..", "..", "migrations")
}

func TestPostgres_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("tjlogs_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgContainer.Terminate(context.Background()) })

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	t.Run("migrations apply once and are idempotent", func(t *testing.T) {
		require.NoError(t, database.Migrate(connStr, migrationsDir()))
		require.NoError(t, database.Migrate(connStr, migrationsDir()))
	})

	t.Run("pool connects from config", func(t *testing.T) {
		u, err := url.Parse(connStr)
		require.NoError(t, err)
		port, err := strconv.Atoi(u.Port())
		require.NoError(t, err)
		password, _ := u.User.Password()

		pool, err := database.NewPostgres(ctx, config.DatabaseConfig{
			Host:              u.Hostname(),
			Port:              port,
			User:              u.User.Username(),
			Password:          password,
			Name:              "tjlogs_test",
			SSLMode:           "disable",
			MaxConns:          4,
			MinConns:          1,
			MaxConnLifetime:   time.Minute,
			MaxConnIdleTime:   time.Minute,
			HealthCheckPeriod: time.Minute,
		})
		require.NoError(t, err)
		defer pool.Close()

		assert.EqualValues(t, 4, pool.Config().MaxConns)

		var exists bool
		err = pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'articles')`).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("unreachable database fails fast", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		_, err := database.NewPostgres(ctx, config.DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     1,
			User:     "nobody",
			Name:     "none",
			SSLMode:  "disable",
			MaxConns: 1,
		})
		assert.Error(t, err)
	})
}

func TestMigrate_MissingDirectory(t *testing.T) {
	err := database.Migrate("postgres://u:p@127.0.0.1:1/db?sslmode=disable", filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
