package config

import (
	"time"

	"github.com/COMOCO0102/Game-plan/engine"
	"github.com/COMOCO0102/Game-plan/input"
)

type Config struct {
	Grid       GridConfig       `yaml:"grid" mapstructure:"grid"`
	Countdown  CountdownConfig  `yaml:"countdown" mapstructure:"countdown"`
	Difficulty DifficultyConfig `yaml:"difficulty" mapstructure:"difficulty"`
	Keys       KeysConfig       `yaml:"keys" mapstructure:"keys"`
	Audio      AudioConfig      `yaml:"audio" mapstructure:"audio"`
	Seed       uint64           `yaml:"seed" mapstructure:"seed"` // 0 = time based
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

type GridConfig struct {
	Size        int     `yaml:"size" mapstructure:"size" validate:"min=2,max=40"`
	WallDensity float64 `yaml:"wall_density" mapstructure:"wall_density" validate:"min=0,max=0.9"`
}

type CountdownConfig struct {
	Seconds  int           `yaml:"seconds" mapstructure:"seconds" validate:"min=1,max=600"`
	Interval time.Duration `yaml:"interval" mapstructure:"interval" validate:"min=1ms"`
}

type DifficultyConfig struct {
	Level int `yaml:"level" mapstructure:"level" validate:"min=0,max=4"` // 0 = prompt every restart
}

type KeysConfig struct {
	Up    string `yaml:"up" mapstructure:"up" validate:"required"`
	Down  string `yaml:"down" mapstructure:"down" validate:"required"`
	Left  string `yaml:"left" mapstructure:"left" validate:"required"`
	Right string `yaml:"right" mapstructure:"right" validate:"required"`
	Wall  string `yaml:"wall" mapstructure:"wall" validate:"required"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

type LogConfig struct {
	File       string `yaml:"file" mapstructure:"file"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size" validate:"min=0"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups" validate:"min=0"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age" validate:"min=0"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level" validate:"oneof=debug info warn error"`
	Console    bool   `yaml:"console" mapstructure:"console"` // stderr output, off while the TUI owns the terminal
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}

// Settings returns the per-episode game parameters
func (c Config) Settings() engine.Settings {
	return engine.Settings{
		GridSize:          c.Grid.Size,
		WallDensity:       c.Grid.WallDensity,
		Countdown:         c.Countdown.Seconds,
		CountdownInterval: c.Countdown.Interval,
		Level:             c.Difficulty.Level,
	}
}

// Bindings parses the configured key names
func (c Config) Bindings() (input.Bindings, error) {
	return input.ParseBindings(c.Keys.Up, c.Keys.Down, c.Keys.Left, c.Keys.Right, c.Keys.Wall)
}
