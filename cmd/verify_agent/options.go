package main

import (
	"fmt"

	"github.com/jonathan/identity-verifier/internal/config"
	"github.com/jonathan/identity-verifier/internal/reconcile"
)

// defaultConfig holds the baseline settings applied under any config file or
// flag overrides.
var defaultConfig = config.Config{
	Model:            "standard",
	Port:             8080,
	FieldThreshold:   reconcile.DefaultThreshold,
	VerdictThreshold: reconcile.DefaultThreshold,
	Resolver:         "alias",
	CollisionPolicy:  "keep_last",
}

// loadSettings loads an optional config file, merges it over the defaults
// and validates the result.
func loadSettings(path string) (config.Config, error) {
	cfg := config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	merged := cfg.MergeWithDefaults(defaultConfig)
	if err := merged.Validate(); err != nil {
		return merged, err
	}
	return merged, nil
}

// engineOptions translates validated settings into reconciliation engine
// options.
func engineOptions(cfg config.Config) (reconcile.Options, error) {
	opts := reconcile.Options{
		FieldThreshold:   cfg.FieldThreshold,
		VerdictThreshold: cfg.VerdictThreshold,
	}

	switch cfg.Resolver {
	case "", "alias":
		opts.Resolver = reconcile.AliasResolver{}
	case "scored":
		opts.Resolver = reconcile.ScoredResolver{}
	default:
		return opts, fmt.Errorf("unknown resolver strategy: %s", cfg.Resolver)
	}

	switch cfg.CollisionPolicy {
	case "", "keep_last":
		opts.Collision = reconcile.KeepLast
	case "keep_first":
		opts.Collision = reconcile.KeepFirst
	case "keep_all":
		opts.Collision = reconcile.KeepAll
	default:
		return opts, fmt.Errorf("unknown collision policy: %s", cfg.CollisionPolicy)
	}

	return opts, nil
}
