package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_SCHEMA", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "public", cfg.DB.Schema)
}

func TestLoad_EnvFile(t *testing.T) {
	// godotenv never overrides variables that are already set.
	unsetenv(t, "PORT")
	unsetenv(t, "DB_DATABASE")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\nDB_DATABASE=cards\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "cards", cfg.DB.Name)
	assert.Contains(t, cfg.DB.DSN(), "/cards?")
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "http")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadClientConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[server]\nurl = \"http://notes.local:9000\"\ntimeout = \"3s\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadClientConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://notes.local:9000", cfg.Server.URL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout())
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadClientConfig_MissingFile(t *testing.T) {
	cfg, err := LoadClientConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, defaultServerURL, cfg.Server.URL)
	assert.Equal(t, defaultClientTimeout, cfg.RequestTimeout())
}

func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestDatabaseDSN_EscapesCredentials(t *testing.T) {
	db := Database{
		Host:     "db",
		Port:     "5432",
		User:     "app",
		Password: "p@ss/w#rd:1",
		Name:     "notecards",
		Schema:   "public",
	}

	parsed, err := pgx.ParseConfig(db.DSN())
	require.NoError(t, err)
	assert.Equal(t, "db", parsed.Host)
	assert.Equal(t, uint16(5432), parsed.Port)
	assert.Equal(t, "app", parsed.User)
	assert.Equal(t, "p@ss/w#rd:1", parsed.Password)
	assert.Equal(t, "notecards", parsed.Database)
	assert.Equal(t, "public", parsed.RuntimeParams["search_path"])
}

func TestValidate_RequiresJWTSecret(t *testing.T) {
	unsetenv(t, "JWT_SECRET")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingJWTSecret)

	cfg.JWTSecret = "s3cret"
	assert.NoError(t, cfg.Validate())
}
