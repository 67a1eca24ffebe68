// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads game settings from an optional YAML file and
// environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds window and runtime settings.
type Config struct {
	// Window dimensions in pixels.
	Width  int `yaml:"width" env:"TICTACTOE_WIDTH" env-default:"300"`
	Height int `yaml:"height" env:"TICTACTOE_HEIGHT" env-default:"300"`

	// Title is the initial window title, replaced by the game as turns
	// progress.
	Title string `yaml:"title" env:"TICTACTOE_TITLE" env-default:"tic tac toe: cross turn"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`

	// SpriteSheet is an optional path to a PNG sprite sheet that replaces
	// the generated one. Empty means generate.
	SpriteSheet string `yaml:"sprite-sheet" env:"TICTACTOE_SPRITE_SHEET" env-default:""`
}

// Load reads configuration from path (when non-empty and the file exists)
// and then applies environment overrides. A missing file is not an error;
// the defaults and environment are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, config); err != nil {
				return nil, fmt.Errorf("unable to load config file: %w", err)
			}
			return config, nil
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}
	return config, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}
