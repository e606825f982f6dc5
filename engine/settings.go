package engine

import (
	"time"

	"github.com/COMOCO0102/Game-plan/constants"
)

// Settings are the per-episode game parameters, read again on every restart
type Settings struct {
	GridSize          int
	WallDensity       float64
	Countdown         int           // seconds in the trapped race
	CountdownInterval time.Duration // length of one countdown second
	Level             int           // fixed difficulty; 0 prompts every restart
}

// DefaultSettings returns the classic 10×10 game
func DefaultSettings() Settings {
	return Settings{
		GridSize:          constants.GridSize,
		WallDensity:       constants.WallDensity,
		Countdown:         constants.MaxCountdown,
		CountdownInterval: constants.CountdownInterval,
	}
}

// SettingsProvider supplies the current settings
type SettingsProvider func() Settings

// StaticSettings returns a provider that always yields s
func StaticSettings(s Settings) SettingsProvider {
	return func() Settings { return s }
}
