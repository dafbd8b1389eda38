// Package config loads game settings from an optional YAML file, an
// optional .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"cyberharvest/pkg/game/state"
)

const (
	DefaultAssets   = "assets"
	DefaultTickRate = 60
	DefaultTitle    = "CyberHarvest: Data Breach"
)

// Window holds the ebiten window settings.
type Window struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Title  string  `yaml:"title"`
	Scale  float64 `yaml:"scale"`
}

// Log holds the logger settings.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the full game configuration.
type Config struct {
	Assets    string `yaml:"assets"`
	TickRate  int    `yaml:"tick_rate"`
	Language  string `yaml:"language"`
	StartRoom string `yaml:"start_room"`
	Debug     bool   `yaml:"debug"`
	Window    Window `yaml:"window"`
	Log       Log    `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Assets:    DefaultAssets,
		TickRate:  DefaultTickRate,
		Language:  "en",
		StartRoom: state.Intro.String(),
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  DefaultTitle,
			Scale:  1,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults. A missing file is not an error; the
// defaults and environment are used instead. A ".env" file in the working
// directory is loaded first when present.
func Load(path string) (Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("loading .env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CYBERHARVEST_ASSETS"); v != "" {
		c.Assets = v
	}
	if v := os.Getenv("CYBERHARVEST_LANG"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("CYBERHARVEST_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = strings.ToLower(v)
	}
}

// Validate checks the values that would otherwise break the game loop.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, ok := state.ParseRoom(c.StartRoom); !ok {
		return fmt.Errorf("unknown start_room %q", c.StartRoom)
	}
	return nil
}

// Room returns the configured start room.
func (c Config) Room() state.RoomKind {
	room, _ := state.ParseRoom(c.StartRoom)
	return room
}
