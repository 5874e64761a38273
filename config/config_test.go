package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "DB_DRIVER", "DB_PATH", "LOG_LEVEL", "RATE_LIMIT", "RATE_WINDOW", "SHUTDOWN_TIMEOUT", "CORS_ORIGIN"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "tailor_shop.db", cfg.DBPath)
	assert.Equal(t, 50, cfg.RateLimit)
	assert.Equal(t, time.Second, cfg.RateWindow)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PATH", "/var/lib/tailor/shop.db")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("RATE_WINDOW", "2s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/var/lib/tailor/shop.db", cfg.DBPath)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, 2*time.Second, cfg.RateWindow)
}

func TestLoadRejectsBadNumber(t *testing.T) {
	t.Setenv("RATE_LIMIT", "many")

	_, err := Load()
	assert.Error(t, err)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "shop.db?_foreign_keys=0", SQLiteDSN("shop.db"))
	assert.Equal(t, "shop.db?cache=shared&_foreign_keys=0", SQLiteDSN("shop.db?cache=shared"))
	assert.Equal(t, "shop.db?_fk=1", SQLiteDSN("shop.db?_fk=1"))
}

func TestInitDBSQLiteAndClose(t *testing.T) {
	db, err := InitDB(&Config{AppEnv: "test", DBDriver: DriverSQLite, DBPath: filepath.Join(t.TempDir(), "shop.db")})
	require.NoError(t, err)
	require.NoError(t, db.Exec("SELECT 1").Error)
	require.NoError(t, CloseDB(db))
}

func TestInitDBRejectsUnknownDriver(t *testing.T) {
	_, err := InitDB(&Config{DBDriver: "oracle"})
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")

	_, err = InitDB(&Config{DBDriver: DriverMySQL})
	assert.ErrorContains(t, err, "MYSQL_DSN")
}
