package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadClean(t *testing.T) Config {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	// Run from an empty directory so a developer's config.yaml cannot
	// leak into the test.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	c, err := Load()
	require.NoError(t, err)
	return c
}

func TestLoad_Defaults(t *testing.T) {
	c := loadClean(t)

	assert.Equal(t, "127.0.0.1:8080", c.Listen)
	assert.Equal(t, "quickcart.db", c.Store.Path)
	assert.Equal(t, "Satya General Store", c.Store.Name)
	assert.Equal(t, "919876543210", c.Store.WhatsAppNumber)
	assert.Empty(t, c.Seed.Dir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("QUICKCART_LISTEN", ":9090")
	t.Setenv("QUICKCART_STORE_PATH", "/tmp/qc.db")
	t.Setenv("QUICKCART_STORE_NAME", "Test Store")

	c := loadClean(t)

	assert.Equal(t, ":9090", c.Listen)
	assert.Equal(t, "/tmp/qc.db", c.Store.Path)
	assert.Equal(t, "Test Store", c.Store.Name)
}
