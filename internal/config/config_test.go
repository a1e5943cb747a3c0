package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REVIEWER_PASSWORD_HASH", "$2a$12$abcdefghijklmnopqrstuv")
}

// TestLoadConfig_Defaults: a missing file still yields a complete
// config from defaults plus required env values.
func TestLoadConfig_Defaults(t *testing.T) {
	validEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(20240101), cfg.Generator.Seed)
	assert.Equal(t, 5, cfg.Generator.SuppressionThreshold)
	assert.Equal(t, "reviewer", cfg.Reviewer.Username)
	assert.Equal(t, "json", cfg.Logging.Format)
}

// TestLoadConfig_EnvOverride: environment variables win over defaults
// and file values.
func TestLoadConfig_EnvOverride(t *testing.T) {
	validEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("GENERATOR_SEED", "99")
	t.Setenv("GENERATOR_SUPPRESSION_THRESHOLD", "3")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, int64(99), cfg.Generator.Seed)
	assert.Equal(t, 3, cfg.Generator.SuppressionThreshold)
}

// TestLoadConfig_FileValues: yaml values are read when the file exists.
func TestLoadConfig_FileValues(t *testing.T) {
	validEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: \"7070\"\ngenerator:\n  seed: 123\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, int64(123), cfg.Generator.Seed)
}

// TestLoadConfig_RequiresSecret: a missing JWT secret is fatal.
func TestLoadConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("REVIEWER_PASSWORD_HASH", "hash")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestLoadConfig_ThresholdLowerBound: thresholds below 1 are rejected.
func TestLoadConfig_ThresholdLowerBound(t *testing.T) {
	validEnv(t)
	t.Setenv("GENERATOR_SUPPRESSION_THRESHOLD", "0")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestLoadConfig_SeedRange: seeds outside unsigned 32-bit range are
// rejected.
func TestLoadConfig_SeedRange(t *testing.T) {
	validEnv(t)
	t.Setenv("GENERATOR_SEED", "-1")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
