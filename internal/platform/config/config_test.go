package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves the test into dir so relative config paths resolve there.
func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))

	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// TestLoad_DefaultValues tests that hardcoded defaults are applied correctly.
// This test doesn't depend on YAML files - it only tests the defaults() function.
func TestLoad_DefaultValues(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "quote-service", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Empty(t, cfg.Server.StaticDir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.Origins)
	assert.Equal(t, DefaultEnrichConcurrency, cfg.Quotes.EnrichConcurrency)
	require.NoError(t, cfg.Validate())
}

// TestLoad_DatabaseDefaults tests the connection pool defaults.
func TestLoad_DatabaseDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultDatabaseDriver, cfg.Database.Driver)
	assert.Equal(t, DefaultDatabaseDSN, cfg.Database.DSN)
	assert.Equal(t, DefaultDatabaseMaxOpenConns, cfg.Database.MaxOpenConns)
	assert.Equal(t, DefaultDatabaseMaxIdleConns, cfg.Database.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 10*time.Minute, cfg.Database.ConnMaxIdleTime)
	assert.True(t, cfg.Database.Migrate)
	assert.Empty(t, cfg.Database.SeedFile)
}

// TestLoad_EnvVarOverrides tests that environment variables override defaults.
func TestLoad_EnvVarOverrides(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

// TestLoad_EnvVarUnderscoreKeys tests keys whose names contain underscores.
func TestLoad_EnvVarUnderscoreKeys(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("APP_DATABASE_SEED_FILE", "/data/seed.yaml")
	t.Setenv("APP_DATABASE_MAX_OPEN_CONNS", "40")
	t.Setenv("APP_SERVER_STATIC_DIR", "/srv/frontend")
	t.Setenv("APP_LOG_FILE_MAX_BACKUPS", "7")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/data/seed.yaml", cfg.Database.SeedFile)
	assert.Equal(t, 40, cfg.Database.MaxOpenConns)
	assert.Equal(t, "/srv/frontend", cfg.Server.StaticDir)
	assert.Equal(t, 7, cfg.Log.File.MaxBackups)
}

// TestLoad_CORSOriginsFromEnv tests comma-separated origin lists.
func TestLoad_CORSOriginsFromEnv(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("APP_CORS_ORIGINS", "https://quotes.example.com,https://admin.example.com")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://quotes.example.com", "https://admin.example.com"}, cfg.CORS.Origins)
}

// TestLoad_DurationParsing tests that duration strings are parsed correctly.
func TestLoad_DurationParsing(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 12*time.Hour, cfg.CORS.MaxAge)
}

// TestLoad_ProfileLayering tests base and profile files over defaults.
func TestLoad_ProfileLayering(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, filepath.Join(dir, "configs", "base.yaml"), `
app:
  name: quotes-base
database:
  driver: mysql
`)
	writeFile(t, filepath.Join(dir, "configs", "local.yaml"), `
database:
  driver: sqlite
  dsn: file:quotes.db
`)

	cfg, err := Load("local")
	require.NoError(t, err)

	assert.Equal(t, "quotes-base", cfg.App.Name)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file:quotes.db", cfg.Database.DSN)
}

// TestLoad_DotEnv tests that a .env file feeds APP_ variables without
// overriding the real environment.
func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, filepath.Join(dir, ".env"), "APP_APP_VERSION=from-dotenv\nAPP_SERVER_HOST=10.0.0.1\n")
	t.Setenv("APP_SERVER_HOST", "127.0.0.1")

	// godotenv writes straight into the process environment.
	t.Cleanup(func() { _ = os.Unsetenv("APP_APP_VERSION") })

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.App.Version)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
}

// TestLoad_InvalidYAML tests that a malformed file is reported.
func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, filepath.Join(dir, "configs", "base.yaml"), "server: [unclosed")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading base config")
}

// TestLoad_NonExistentProfile tests that a missing profile file doesn't cause errors.
func TestLoad_NonExistentProfile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "quote-service", cfg.App.Name)
}

// TestLoad_BoolEnvVar tests that boolean environment variables are parsed correctly.
func TestLoad_BoolEnvVar(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("APP_TELEMETRY_ENABLED", "true")
	t.Setenv("APP_DATABASE_MIGRATE", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Telemetry.Enabled)
	assert.False(t, cfg.Database.Migrate)
}

// TestLoad_LogFileDefaults tests that log file defaults are set correctly.
func TestLoad_LogFileDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "./logs/app.log", cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.True(t, cfg.Log.File.Compress)
}

// TestLoad_TelemetryDefaults tests that telemetry defaults are set correctly.
func TestLoad_TelemetryDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "quote-service", cfg.Telemetry.ServiceName)
	assert.Equal(t, 1.0, cfg.Telemetry.SamplingRate)
}

// TestDefaults tests that the defaults map contains expected values.
func TestDefaults(t *testing.T) {
	d := defaults()

	assert.Equal(t, "quote-service", d["app.name"])
	assert.Equal(t, "local", d["app.environment"])
	assert.Equal(t, DefaultServerPort, d["server.port"])
	assert.Equal(t, DefaultDatabaseDriver, d["database.driver"])
	assert.Equal(t, DefaultDatabaseMaxOpenConns, d["database.max_open_conns"])
	assert.Equal(t, "5m", d["database.conn_max_lifetime"])
}

func TestEnvKeyMapper(t *testing.T) {
	mapper := envKeyMapper(defaults())

	tests := []struct {
		env      string
		expected string
	}{
		{"APP_SERVER_PORT", "server.port"},
		{"APP_SERVER_READ_TIMEOUT", "server.read_timeout"},
		{"APP_DATABASE_CONN_MAX_IDLE_TIME", "database.conn_max_idle_time"},
		{"APP_LOG_FILE_PATH", "log.file.path"},
		{"APP_UNKNOWN_NESTED_KEY", "unknown.nested.key"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapper(tt.env))
		})
	}
}

func TestEnvValueMapper(t *testing.T) {
	mapper := envValueMapper(defaults())

	tests := []struct {
		name      string
		env       string
		value     string
		wantKey   string
		wantValue any
	}{
		{name: "scalar", env: "APP_SERVER_PORT", value: "9090", wantKey: "server.port", wantValue: "9090"},
		{name: "scalar with comma", env: "APP_DATABASE_DSN", value: "a=1,b=2", wantKey: "database.dsn", wantValue: "a=1,b=2"},
		{name: "single origin", env: "APP_CORS_ORIGINS", value: "https://quotes.example.com", wantKey: "cors.origins", wantValue: []string{"https://quotes.example.com"}},
		{name: "origins with spaces", env: "APP_CORS_ORIGINS", value: " https://a.example.com , https://b.example.com ", wantKey: "cors.origins", wantValue: []string{"https://a.example.com", "https://b.example.com"}},
		{name: "blank entries dropped", env: "APP_CORS_ORIGINS", value: "https://a.example.com,,", wantKey: "cors.origins", wantValue: []string{"https://a.example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value := mapper(tt.env, tt.value)

			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestLoad_CORSOriginsFromEnvPassValidation(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("APP_CORS_ORIGINS", "https://quotes.example.com, https://admin.example.com")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.False(t, cfg.CORS.AllowAll())
	assert.Len(t, cfg.CORS.Origins, 2)
}

func TestLoadSeedFile(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		quotes, err := LoadSeedFile("")
		require.NoError(t, err)
		assert.Empty(t, quotes)
	})

	t.Run("entries", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		writeFile(t, path, `
quotes:
  - text: "The unexamined life is not worth living."
    author: Socrates
  - text: "Well begun is half done."
    author: Aristotle
`)

		quotes, err := LoadSeedFile(path)
		require.NoError(t, err)

		assert.Equal(t, []SeedQuote{
			{Text: "The unexamined life is not worth living.", Author: "Socrates"},
			{Text: "Well begun is half done.", Author: "Aristotle"},
		}, quotes)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeedFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading seed file")
	})
}
