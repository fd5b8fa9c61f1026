package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml or .env is found
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.InDelta(t, 20, cfg.Server.RateLimit, 0.001)
	assert.Equal(t, 40, cfg.Server.RateBurst)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.Solve.EchoWhenComplete)
	assert.Equal(t, "en", cfg.Solve.Locale)
	assert.Equal(t, "table", cfg.Batch.Format)
	assert.Equal(t, 4, cfg.Batch.Concurrency)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
log:
  level: debug
  format: console
server:
  port: 9090
  allowed_origins:
    - https://calc.example.com
solve:
  echo_when_complete: false
  locale: de
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://calc.example.com"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.Solve.EchoWhenComplete)
	assert.Equal(t, "de", cfg.Solve.Locale)
	// Defaults still apply for unset values
	assert.Equal(t, 40, cfg.Server.RateBurst)
	assert.Equal(t, "table", cfg.Batch.Format)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
log:
  level: debug
batch:
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("FORMULA_LOG_LEVEL", "warn")
	t.Setenv("FORMULA_BATCH_FORMAT", "table")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "table", cfg.Batch.Format)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chdirTemp(t)

	t.Setenv("FORMULA_SERVER_PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FORMULA_SERVER_RATE_BURST=7\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("FORMULA_SERVER_RATE_BURST") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Server.RateBurst)
}

func TestLoadDotEnvDoesNotOverrideEnv(t *testing.T) {
	dir := chdirTemp(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FORMULA_SOLVE_LOCALE=fr\n"), 0644))
	t.Setenv("FORMULA_SOLVE_LOCALE", "de")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Solve.Locale)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

// validDefaults returns a Config with all defaults populated for validation tests.
func validDefaults() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	cfg.Server.Port = 8080
	cfg.Server.RateLimit = 20
	cfg.Server.RateBurst = 40
	cfg.Solve.Locale = "en"
	cfg.Batch.Format = "table"
	cfg.Batch.Concurrency = 4
	return cfg
}

func TestValidate_AllModes(t *testing.T) {
	cfg := validDefaults()
	for _, mode := range []string{"solve", "interactive", "batch", "serve"} {
		assert.NoError(t, cfg.Validate(mode), mode)
	}
}

func TestValidate_Logging(t *testing.T) {
	cfg := validDefaults()
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"

	err := cfg.Validate("solve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level loud is not a valid level")
	assert.Contains(t, err.Error(), "log.format must be json or console")
}

func TestValidate_Locale(t *testing.T) {
	cfg := validDefaults()
	cfg.Solve.Locale = "not a tag!"

	err := cfg.Validate("interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "solve.locale")

	cfg.Solve.Locale = "de-CH"
	tag, err := cfg.Solve.Language()
	require.NoError(t, err)
	assert.Equal(t, language.MustParse("de-CH"), tag)
}

func TestValidateServe_InvalidPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 0

	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.port must be > 0")

	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate("serve"))

	// Port is only checked when serving.
	assert.NoError(t, cfg.Validate("solve"))
}

func TestValidateServe_RateLimit(t *testing.T) {
	cfg := validDefaults()

	cfg.Server.RateLimit = -1
	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.rate_limit must be >= 0")

	cfg.Server.RateLimit = 5
	cfg.Server.RateBurst = 0
	err = cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.rate_burst")

	// Zero disables limiting, so burst is irrelevant.
	cfg.Server.RateLimit = 0
	assert.NoError(t, cfg.Validate("serve"))
}

func TestValidateBatch_Format(t *testing.T) {
	cfg := validDefaults()
	cfg.Batch.Format = "yaml"

	err := cfg.Validate("batch")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "batch.format must be table or json")

	cfg.Batch.Format = "json"
	cfg.Batch.Concurrency = 0
	err = cfg.Validate("batch")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "batch.concurrency must be >= 1")
}

func TestValidateUnknownMode(t *testing.T) {
	cfg := validDefaults()
	err := cfg.Validate("unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}
