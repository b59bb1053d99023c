package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/commute-heatmap/internal/domain"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// setupTestDB connects to a local PostgreSQL or skips the test
func setupTestDB(t *testing.T) *DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5432"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "commute_test"),
		getEnv("TEST_DB_SSLMODE", "disable"),
	)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Skipf("PostgreSQL not available for integration tests: %v", err)
	}

	return NewDBForTest(db, zap.NewNop())
}

func TestGeocodeCacheRepository_Postgres(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo, err := NewGeocodeCacheRepository(db)
	require.NoError(t, err)

	ctx := context.Background()
	t.Cleanup(func() {
		db.ExecContext(ctx, `DELETE FROM geocode_cache`)
	})

	address := "425 Market St, San Francisco, CA"
	result := &domain.GeocodeResult{
		Lat:              37.7914,
		Lng:              -122.3982,
		FormattedAddress: "425 Market St, San Francisco, CA 94105, USA",
	}

	t.Run("MissReturnsNil", func(t *testing.T) {
		got, err := repo.Get(ctx, "never cached address")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, address, result, time.Minute))

		got, err := repo.Get(ctx, address)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, result.Lat, got.Lat)
		assert.Equal(t, result.Lng, got.Lng)
		assert.Equal(t, result.FormattedAddress, got.FormattedAddress)
	})

	t.Run("UpsertOverwrites", func(t *testing.T) {
		updated := &domain.GeocodeResult{Lat: 1, Lng: 2, FormattedAddress: "updated"}
		require.NoError(t, repo.Set(ctx, address, updated, time.Minute))

		got, err := repo.Get(ctx, address)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "updated", got.FormattedAddress)
	})

	t.Run("ExpiredEntryIsMiss", func(t *testing.T) {
		expired := "1 Expired Way, San Francisco, CA"
		require.NoError(t, repo.Set(ctx, expired, result, -time.Second))

		got, err := repo.Get(ctx, expired)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("DeleteMany", func(t *testing.T) {
		first := "1 First St, San Francisco, CA"
		second := "2 Second St, San Francisco, CA"
		require.NoError(t, repo.Set(ctx, first, result, time.Minute))
		require.NoError(t, repo.Set(ctx, second, result, time.Minute))

		require.NoError(t, repo.Delete(ctx, first, second))

		got, err := repo.Get(ctx, first)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = repo.Get(ctx, second)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
