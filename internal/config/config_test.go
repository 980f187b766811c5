package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := newIn(t.TempDir())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "inventory.json", cfg.DataFile)
	assert.Equal(t, "localhost:8080", cfg.HTTPAddr)
	assert.True(t, cfg.Autoload)
	assert.False(t, cfg.Autosave)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INVENTORY_DATA_FILE", "/tmp/stock.json")
	t.Setenv("INVENTORY_HTTP_ADDR", ":9090")
	t.Setenv("INVENTORY_AUTOSAVE", "true")
	t.Setenv("INVENTORY_RATE_LIMIT_BURST", "3")

	cfg, err := Load(newIn(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/stock.json", cfg.DataFile)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.True(t, cfg.Autosave)
	assert.Equal(t, 3, cfg.RateLimitBurst)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "data_file: shop.json\nlog_level: debug\nautoload: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inventory.yaml"), []byte(content), 0o644))

	v := newIn(dir)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "shop.json", cfg.DataFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Autoload)
}

func TestBindFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("data-file", "inventory.json", "")
	flags.String("log-level", "info", "")
	require.NoError(t, flags.Parse([]string{"--data-file", "flag.json"}))

	v := newIn(t.TempDir())
	require.NoError(t, BindFlags(v, flags))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "flag.json", cfg.DataFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("INVENTORY_RATE_LIMIT_RPS", "0")
	_, err := Load(newIn(t.TempDir()))
	assert.Error(t, err)
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inventory.yaml"), []byte("data_file: [unclosed"), 0o644))

	_, err := Load(newIn(dir))
	assert.Error(t, err)
}
