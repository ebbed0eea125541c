package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorMode selects when the board is drawn with ANSI colors.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type Config struct {
	Display struct {
		Color       string `yaml:"color"`
		ClearScreen bool   `yaml:"clear_screen"`
		Pause       bool   `yaml:"pause"`
	} `yaml:"display"`
	Game struct {
		Seed int64 `yaml:"seed"`
	} `yaml:"game"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	cfg := Config{}
	cfg.Display.Color = string(ColorAuto)
	cfg.Display.ClearScreen = true
	cfg.Display.Pause = true
	return cfg
}

// Load reads YAML config from path over the defaults. An empty path means defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if _, err := ParseColorMode(cfg.Display.Color); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ColorMode returns the parsed display.color setting.
func (c Config) ColorMode() ColorMode {
	mode, err := ParseColorMode(c.Display.Color)
	if err != nil {
		return ColorAuto
	}
	return mode
}

// ParseColorMode accepts auto|always|never; empty means auto.
func ParseColorMode(raw string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (expected auto|always|never)", raw)
	}
}
