package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory, so that no .env file is loaded.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "Balanced", cfg.DefaultModel)
	assert.Equal(t, "KRW10K", cfg.Unit)
	assert.Empty(t, cfg.Currency)
	assert.False(t, cfg.Compare.IncludeModelOnly)
	assert.False(t, cfg.Report.RepeatHeader)
	assert.Equal(t, "localhost:8080", cfg.Address())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFiles_NoFiles(t *testing.T) {
	isolate(t)
	cfg, err := LoadFromFiles()
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadFromFiles_ValidTOML(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "afc.toml", `
currency = "KRW"
default_model = "Growth"
catalog_file = "models.toml"

[compare]
include_model_only = true

[report]
file = "out.pdf"
repeat_header = true

[server]
port = 9090
host = "0.0.0.0"

[logging]
level = "debug"
pretty = false
`)

	cfg, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "KRW", cfg.Currency)
	assert.Equal(t, "KRW10K", cfg.Unit, "default kept")
	assert.Equal(t, "Growth", cfg.DefaultModel)
	assert.Equal(t, "models.toml", cfg.CatalogFile)
	assert.True(t, cfg.Compare.IncludeModelOnly)
	assert.Equal(t, ReportConfig{File: "out.pdf", RepeatHeader: true}, cfg.Report)
	assert.Equal(t, "0.0.0.0:9090", cfg.Address())
	assert.Equal(t, LoggingConfig{Level: "debug", Pretty: false}, cfg.Logging)
}

func TestLoadFromFiles_LaterFilesOverride(t *testing.T) {
	dir := isolate(t)
	base := writeFile(t, dir, "base.toml", "default_model = \"Growth\"\nunit = \"EUR\"\n")
	local := writeFile(t, dir, "local.toml", "default_model = \"Income\"\n")

	cfg, err := LoadFromFiles(base, "", local)
	require.NoError(t, err)
	assert.Equal(t, "Income", cfg.DefaultModel)
	assert.Equal(t, "EUR", cfg.Unit)
}

func TestLoadFromFiles_Errors(t *testing.T) {
	dir := isolate(t)

	_, err := LoadFromFiles(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadFromFiles(writeFile(t, dir, "bad.toml", "server = [\n"))
	assert.Error(t, err)

	_, err = LoadFromFiles(writeFile(t, dir, "port.toml", "[server]\nport = 70000\n"))
	assert.Error(t, err)
}

func TestLoadFromFiles_EnvOverrides(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "afc.toml", "default_model = \"Growth\"\n[server]\nport = 9090\n")

	t.Setenv("AFC_DEFAULT_MODEL", "Income")
	t.Setenv("AFC_SERVER_PORT", "7070")
	t.Setenv("AFC_COMPARE_INCLUDE_MODEL_ONLY", "true")
	t.Setenv("AFC_LOG_PRETTY", "false")
	t.Setenv("AFC_REPORT_REPEAT_HEADER", "not a bool")

	cfg, err := LoadFromFiles(path)
	require.NoError(t, err)
	assert.Equal(t, "Income", cfg.DefaultModel)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.True(t, cfg.Compare.IncludeModelOnly)
	assert.False(t, cfg.Logging.Pretty)
	assert.False(t, cfg.Report.RepeatHeader, "invalid values are ignored")
}

func TestLoadFromFiles_DotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, ".env", "AFC_CURRENCY=USD\nAFC_UNIT=USD1K\n")
	// the actual environment wins over the .env file.
	t.Setenv("AFC_UNIT", "USD")
	// variables loaded from .env are not cleaned up by t.Setenv.
	t.Cleanup(func() { os.Unsetenv("AFC_CURRENCY") })

	cfg, err := LoadFromFiles()
	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, "USD", cfg.Unit)
}

func TestLoggerConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Logging = LoggingConfig{Level: "warn", Pretty: false}

	lc := cfg.LoggerConfig()
	assert.Equal(t, "warn", lc.Level)
	assert.False(t, lc.Pretty)
}
