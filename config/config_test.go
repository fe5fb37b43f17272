package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  serviceName: schoolhub-test
  log:
    level: info
http:
  port: 9090
secretKey:
  access: from-file
auth:
  bcryptCost: 6
  tokenTTL: 30m
identity:
  centuryCutoff: 30
`

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "from-env")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "schoolhub-test", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, 6, cfg.BcryptCostOrDefault())
	assert.Equal(t, 30*time.Minute, cfg.TokenTTLOrDefault())
	assert.Equal(t, 30, cfg.CenturyCutoff())
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("missing")
	assert.ErrorContains(t, err, "config file missing.yaml not found")
}

func TestConfigDefaults(t *testing.T) {
	var cfg *Config
	assert.Equal(t, defaultBcryptCost, cfg.BcryptCostOrDefault())
	assert.Equal(t, defaultTokenTTL, cfg.TokenTTLOrDefault())
	assert.Equal(t, CenturyCutoffDisabled, cfg.CenturyCutoff())

	cfg = &Config{Auth: &AuthConfig{}}
	assert.Equal(t, 10, cfg.BcryptCostOrDefault())
	assert.Equal(t, time.Hour, cfg.TokenTTLOrDefault())
}
