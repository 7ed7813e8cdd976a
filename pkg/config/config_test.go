package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/limbo/ecosaver/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedGetters(t *testing.T) {
	cfg := &config.Config{}
	t.Setenv("ECO_INT", "42")
	t.Setenv("ECO_BAD_INT", "forty two")
	t.Setenv("ECO_BOOL", "true")
	t.Setenv("ECO_DURATION", "45s")
	t.Setenv("ECO_BAD_DURATION", "45")

	assert.Equal(t, 42, cfg.GetInt("ECO_INT", 7))
	assert.Equal(t, 7, cfg.GetInt("ECO_BAD_INT", 7))
	assert.Equal(t, 7, cfg.GetInt("ECO_UNSET", 7))
	assert.True(t, cfg.GetBool("ECO_BOOL", false))
	assert.True(t, cfg.GetBool("ECO_UNSET", true))
	assert.Equal(t, 45*time.Second, cfg.GetDuration("ECO_DURATION", time.Second))
	assert.Equal(t, time.Second, cfg.GetDuration("ECO_BAD_DURATION", time.Second))
	assert.Equal(t, "42", cfg.GetString("ECO_INT"))
}

func TestLoad(t *testing.T) {
	t.Run("file loaded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("ECO_LOADED_ADDR=:9090\n"), 0o600))
		t.Setenv("ECO_LOADED_ADDR", "")
		os.Unsetenv("ECO_LOADED_ADDR")
		require.NoError(t, config.Load(path))
		assert.Equal(t, ":9090", os.Getenv("ECO_LOADED_ADDR"))
	})
	t.Run("process env wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("ECO_OVERRIDDEN=file\n"), 0o600))
		t.Setenv("ECO_OVERRIDDEN", "process")
		require.NoError(t, config.Load(path))
		assert.Equal(t, "process", os.Getenv("ECO_OVERRIDDEN"))
	})
	t.Run("missing file tolerated", func(t *testing.T) {
		assert.NoError(t, config.Load(filepath.Join(t.TempDir(), "absent.env")))
	})
}
