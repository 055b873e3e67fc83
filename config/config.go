// Copyright © 2026 Tapboard contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON keyboard configuration with defaults.
// Usage: Loaded at startup; Watch reloads on file changes.

package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// Config holds the user-tunable keyboard settings.
type Config struct {
	Theme               string `json:"theme"`
	Layout              string `json:"layout"`
	HapticsEnabled      bool   `json:"haptics_enabled"`
	CalloutMinVisibleMs int    `json:"callout_min_visible_ms"`
	LexiconPath         string `json:"lexicon_path"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Theme:               "default",
		Layout:              "qwerty",
		HapticsEnabled:      true,
		CalloutMinVisibleMs: 50,
		LexiconPath:         "",
	}
}

// Load reads path, applying defaults for missing keys. A missing file
// is not an error; it yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Config: %s not found, using defaults", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	applyDefaults(&cfg)
	return cfg, nil
}

// Save writes cfg to path as indented JSON.
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Theme == "" {
		cfg.Theme = def.Theme
	}
	if cfg.Layout == "" {
		cfg.Layout = def.Layout
	}
	if cfg.CalloutMinVisibleMs <= 0 {
		cfg.CalloutMinVisibleMs = def.CalloutMinVisibleMs
	}
}
