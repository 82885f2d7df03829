package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"api_key": "test-key",
		"database_url": "postgres://localhost/verifier",
		"field_threshold": 70,
		"resolver": "scored",
		"collision_policy": "keep_all",
		"port": 8080
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "postgres://localhost/verifier", cfg.DatabaseURL)
	assert.Equal(t, 70, cfg.FieldThreshold)
	assert.Equal(t, "scored", cfg.Resolver)
	assert.Equal(t, "keep_all", cfg.CollisionPolicy)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := writeConfigFile(t, `{not json`)
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "empty config is valid", cfg: Config{}},
		{name: "valid thresholds", cfg: Config{FieldThreshold: 60, VerdictThreshold: 80}},
		{name: "field threshold over 100", cfg: Config{FieldThreshold: 101}, wantErr: true},
		{name: "negative verdict threshold", cfg: Config{VerdictThreshold: -1}, wantErr: true},
		{name: "known resolver", cfg: Config{Resolver: "alias"}},
		{name: "unknown resolver", cfg: Config{Resolver: "fuzzy"}, wantErr: true},
		{name: "known collision policy", cfg: Config{CollisionPolicy: "keep_first"}},
		{name: "unknown collision policy", cfg: Config{CollisionPolicy: "merge"}, wantErr: true},
		{name: "unknown model tier", cfg: Config{Model: "mega"}, wantErr: true},
		{name: "port out of range", cfg: Config{Port: 70000}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "from-file", FieldThreshold: 75}
	defaults := Config{
		APIKey:           "default-key",
		Model:            "standard",
		Port:             8080,
		FieldThreshold:   60,
		VerdictThreshold: 60,
		Resolver:         "alias",
		CollisionPolicy:  "keep_last",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "from-file", merged.APIKey, "set fields win over defaults")
	assert.Equal(t, 75, merged.FieldThreshold)
	assert.Equal(t, "standard", merged.Model)
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, 60, merged.VerdictThreshold)
	assert.Equal(t, "alias", merged.Resolver)
	assert.Equal(t, "keep_last", merged.CollisionPolicy)
}

func TestMergeWithDefaultsZeroThresholdIsUnset(t *testing.T) {
	// An explicit 0 in the config file reads as "unset": the defaults apply.
	cfg := Config{FieldThreshold: 0, VerdictThreshold: 0}
	defaults := Config{FieldThreshold: 60, VerdictThreshold: 60}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 60, merged.FieldThreshold)
	assert.Equal(t, 60, merged.VerdictThreshold)
}
