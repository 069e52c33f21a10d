package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TODOKEEPER_ADDR", "TODOKEEPER_TOKEN_FILE", "CONFIG"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "token", filepath.Base(c.TokenFile))
	assert.Equal(t, ".todokeeper", filepath.Base(filepath.Dir(c.TokenFile)))
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	clearEnv(t)
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cli"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_EnvOverridesFlags(t *testing.T) {
	clearEnv(t)
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cli", "-a", "flag:1", "-f", "/tmp/flag-token"}

	t.Setenv("TODOKEEPER_ADDR", "env:2")

	cfg := LoadConfig()
	assert.Equal(t, "env:2", cfg.ServerEndpointAddr)
	assert.Equal(t, "/tmp/flag-token", cfg.TokenFile)
}
