package constants

import "time"

// Grid Constants
const (
	// GridSize is the default side length of the square board
	GridSize = 10

	// MinGridSize is the smallest board that still has a distinct interior edge
	MinGridSize = 2

	// MaxGridSize bounds the board so it fits a regular terminal
	MaxGridSize = 40

	// WallDensity is the probability of a cell starting blocked
	WallDensity = 0.2
)

// Countdown Constants
const (
	// MaxCountdown is the number of seconds the player has once the adversary is trapped
	MaxCountdown = 10

	// CountdownInterval is the period of one countdown step
	CountdownInterval = time.Second
)

// Difficulty Constants
const (
	// DefaultDifficulty is used whenever the selection is missing or invalid
	DefaultDifficulty = 1

	// MinDifficulty and MaxDifficulty bound the valid levels
	MinDifficulty = 1
	MaxDifficulty = 4
)

// DifficultyPresets maps a difficulty level to the adversary tick period
var DifficultyPresets = map[int]time.Duration{
	1: 1000 * time.Millisecond,
	2: 500 * time.Millisecond,
	3: 100 * time.Millisecond,
	4: 10 * time.Millisecond,
}

// DifficultyTick returns the adversary tick period for a level, falling back to the default level
func DifficultyTick(level int) time.Duration {
	if d, ok := DifficultyPresets[level]; ok {
		return d
	}
	return DifficultyPresets[DefaultDifficulty]
}
