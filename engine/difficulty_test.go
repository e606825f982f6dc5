package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input string
		level int
		tick  time.Duration
		valid bool
	}{
		{"1", 1, 1000 * time.Millisecond, true},
		{"2", 2, 500 * time.Millisecond, true},
		{" 3 ", 3, 100 * time.Millisecond, true},
		{"4", 4, 10 * time.Millisecond, true},
		{"xyz", 1, 1000 * time.Millisecond, false},
		{"", 1, 1000 * time.Millisecond, false},
		{"0", 1, 1000 * time.Millisecond, false},
		{"5", 1, 1000 * time.Millisecond, false},
		{"-2", 1, 1000 * time.Millisecond, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			d := ParseDifficulty(tc.input)
			assert.Equal(t, tc.level, d.Level)
			assert.Equal(t, tc.tick, d.Tick)
			assert.Equal(t, tc.valid, d.Valid)
			assert.NotEmpty(t, d.Message)
		})
	}
}

func TestDifficultyMessages(t *testing.T) {
	assert.Equal(t, "Difficulty 1 (1000ms) selected.", ParseDifficulty("1").Message)
	assert.Equal(t, "Difficulty 4 (10ms) selected - good luck!", ParseDifficulty("4").Message)
	assert.Contains(t, ParseDifficulty("xyz").Message, "default difficulty 1 (1000ms)")
}

func TestDifficultyForLevel(t *testing.T) {
	assert.Equal(t, ParseDifficulty("2"), DifficultyForLevel(2))
	assert.False(t, DifficultyForLevel(9).Valid)
	assert.Equal(t, time.Second, DifficultyForLevel(9).Tick)
}
