package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/identity-verifier/internal/reconcile"
)

func TestLoadSettingsDefaults(t *testing.T) {
	cfg, err := loadSettings("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "standard", cfg.Model)
	assert.Equal(t, reconcile.DefaultThreshold, cfg.FieldThreshold)
	assert.Equal(t, reconcile.DefaultThreshold, cfg.VerdictThreshold)
	assert.Equal(t, "alias", cfg.Resolver)
	assert.Equal(t, "keep_last", cfg.CollisionPolicy)
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"field_threshold": 75,
		"resolver": "scored",
		"collision_policy": "keep_all"
	}`), 0o644))

	cfg, err := loadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, 75, cfg.FieldThreshold)
	assert.Equal(t, "scored", cfg.Resolver)
	assert.Equal(t, "keep_all", cfg.CollisionPolicy)
	assert.Equal(t, 8080, cfg.Port, "unset fields keep defaults")
}

func TestLoadSettingsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"resolver": "psychic"}`), 0o644))

	_, err := loadSettings(path)
	assert.Error(t, err)
}

func TestEngineOptions(t *testing.T) {
	cfg, err := loadSettings("")
	require.NoError(t, err)

	opts, err := engineOptions(cfg)
	require.NoError(t, err)

	assert.IsType(t, reconcile.AliasResolver{}, opts.Resolver)
	assert.Equal(t, reconcile.KeepLast, opts.Collision)
	assert.Equal(t, reconcile.DefaultThreshold, opts.FieldThreshold)

	cfg.Resolver = "scored"
	cfg.CollisionPolicy = "keep_first"
	opts, err = engineOptions(cfg)
	require.NoError(t, err)
	assert.IsType(t, reconcile.ScoredResolver{}, opts.Resolver)
	assert.Equal(t, reconcile.KeepFirst, opts.Collision)
}
