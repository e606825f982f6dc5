package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/COMOCO0102/Game-plan/board"
	"github.com/COMOCO0102/Game-plan/constants"
	"github.com/COMOCO0102/Game-plan/engine"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y, from, to int) string {
	var sb strings.Builder
	for x := from; x < to; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func fg(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	f, _, _ := style.Decompose()
	return f
}

func testSnapshot() engine.Snapshot {
	cells := make([]board.CellState, 9)
	cells[0] = board.Adversary
	cells[1] = board.Blocked
	cells[3] = board.Blocked
	cells[8] = board.Player
	return engine.Snapshot{
		Size:       3,
		Cells:      cells,
		Player:     8,
		Adversary:  0,
		Phase:      engine.PhaseTrapped,
		Countdown:  7,
		Touched:    engine.BoundaryTouchSet{Bottom: true, Right: true},
		Difficulty: engine.Difficulty{Level: 2, Tick: 500 * time.Millisecond},
		Episode:    4,
		Status:     engine.CountdownStatus(7),
	}
}

func TestRenderCells(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)
	snap := testSnapshot()

	r.RenderFrame(snap, nil)

	for pos, state := range snap.Cells {
		x, y := CellOrigin(3, pos)
		ch, _, _, _ := screen.GetContent(x, y)
		assert.Equal(t, Glyph(state), ch, "pos %d", pos)
	}

	px, py := CellOrigin(3, 8)
	assert.Equal(t, RgbPlayer, fg(screen, px, py))
	ax, ay := CellOrigin(3, 0)
	assert.Equal(t, RgbAdversaryTrapped, fg(screen, ax, ay))
}

func TestRenderFrameHighlightsTouchedEdges(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)

	r.RenderFrame(testSnapshot(), nil)

	left, top, right, bottom := FrameBounds(3)
	assert.Equal(t, RgbFrameRace, fg(screen, left+1, top))
	assert.Equal(t, RgbFrameTouched, fg(screen, left+1, bottom))
	assert.Equal(t, RgbFrameRace, fg(screen, left, top+1))
	assert.Equal(t, RgbFrameTouched, fg(screen, right, top+1))

	ch, _, _, _ := screen.GetContent(left, top)
	assert.Equal(t, frameTopLeft, ch)
}

func TestRenderStatus(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)

	r.RenderFrame(testSnapshot(), nil)

	_, _, _, bottom := FrameBounds(3)
	assert.Contains(t, rowText(screen, bottom+1, 0, 40), "Countdown: 7 s")
	assert.Contains(t, rowText(screen, bottom+2, 0, 60), "Level 2 (500ms)  Episode 4  Edges 2/4")
}

func TestCellOriginLayout(t *testing.T) {
	left, _, right, _ := FrameBounds(constants.GridSize)
	firstX, firstY := CellOrigin(constants.GridSize, 0)
	lastX, lastY := CellOrigin(constants.GridSize, constants.GridSize*constants.GridSize-1)

	assert.Equal(t, firstX-left, right-lastX, "board is centred inside the frame")
	assert.Equal(t, constants.BoardOffsetY, firstY)
	assert.Equal(t, constants.BoardOffsetY+constants.GridSize-1, lastY)
}

func TestRenderModal(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)

	r.RenderFrame(testSnapshot(), &Modal{Text: "Choose a difficulty", Prompt: true, Input: "3"})

	var found bool
	for y := 0; y < 24; y++ {
		line := rowText(screen, y, 0, 80)
		if strings.Contains(line, "> 3_") {
			found = true
		}
	}
	assert.True(t, found, "prompt input line is drawn")
}

func TestWrapText(t *testing.T) {
	lines := WrapText("one two three four\n\nfive", 9)
	assert.Equal(t, []string{"one two", "three", "four", "", "five"}, lines)

	for _, l := range WrapText(engine.DifficultyPrompt, 40) {
		assert.LessOrEqual(t, len([]rune(l)), 40)
	}
}
