package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/COMOCO0102/Game-plan/constants"
)

// Difficulty is the resolved adversary speed for an episode
type Difficulty struct {
	Level   int
	Tick    time.Duration
	Valid   bool   // false when the input fell back to the default
	Message string // confirmation shown to the player
}

// DifficultyPrompt is the text shown when asking for a level
const DifficultyPrompt = "====== GOAL ======\n" +
	"Move the red cell with W/A/S/D. Press SPACE to leave a wall on the cell you just left.\n" +
	"The blue cell is trapped once walls close off every direction it could move.\n" +
	"After trapping it, touch all four edges (top, bottom, left, right) before the countdown ends to win!\n" +
	"==================\n\n" +
	"Choose a difficulty (1, 2, 3 or 4):\n" +
	"1: easiest (1000ms)\n" +
	"2: normal (500ms)\n" +
	"3: hard (100ms)\n" +
	"4: extreme (10ms)"

// ParseDifficulty resolves the raw prompt answer; anything but 1..4 falls back to level 1
func ParseDifficulty(input string) Difficulty {
	level, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || level < constants.MinDifficulty || level > constants.MaxDifficulty {
		tick := constants.DifficultyTick(constants.DefaultDifficulty)
		return Difficulty{
			Level:   constants.DefaultDifficulty,
			Tick:    tick,
			Valid:   false,
			Message: fmt.Sprintf("Invalid or missing input, using default difficulty %d (%dms).", constants.DefaultDifficulty, tick.Milliseconds()),
		}
	}
	return DifficultyForLevel(level)
}

// DifficultyForLevel returns the preset for a valid level, the default preset otherwise
func DifficultyForLevel(level int) Difficulty {
	if _, ok := constants.DifficultyPresets[level]; !ok {
		return ParseDifficulty("")
	}
	tick := constants.DifficultyTick(level)
	msg := fmt.Sprintf("Difficulty %d (%dms) selected.", level, tick.Milliseconds())
	if level == constants.MaxDifficulty {
		msg = fmt.Sprintf("Difficulty %d (%dms) selected - good luck!", level, tick.Milliseconds())
	}
	return Difficulty{
		Level:   level,
		Tick:    tick,
		Valid:   true,
		Message: msg,
	}
}
