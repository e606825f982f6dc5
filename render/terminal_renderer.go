package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/COMOCO0102/Game-plan/board"
	"github.com/COMOCO0102/Game-plan/constants"
	"github.com/COMOCO0102/Game-plan/engine"
)

// Frame glyphs
const (
	frameHorizontal  = '─'
	frameVertical    = '│'
	frameTopLeft     = '┌'
	frameTopRight    = '┐'
	frameBottomLeft  = '└'
	frameBottomRight = '┘'
)

const modalMaxWidth = 60

// Modal is a blocking alert or prompt drawn over the board
type Modal struct {
	Text   string
	Input  string // current prompt answer
	Prompt bool   // show an input line
}

// TerminalRenderer draws session snapshots on a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// CellOrigin returns the screen position of the glyph for board position pos
func CellOrigin(size, pos int) (x, y int) {
	row, col := pos/size, pos%size
	return constants.BoardOffsetX + col*constants.CellWidth + 1, constants.BoardOffsetY + row
}

// FrameBounds returns the screen columns and rows of the boundary frame
func FrameBounds(size int) (left, top, right, bottom int) {
	left = constants.BoardOffsetX - 1
	top = constants.BoardOffsetY - 1
	right = constants.BoardOffsetX + size*constants.CellWidth + 1
	bottom = constants.BoardOffsetY + size
	return left, top, right, bottom
}

// Glyph returns the rune drawn for a cell state
func Glyph(state board.CellState) rune {
	switch state {
	case board.Blocked:
		return constants.GlyphBlocked
	case board.Player:
		return constants.GlyphPlayer
	case board.Adversary:
		return constants.GlyphAdversary
	default:
		return constants.GlyphEmpty
	}
}

// RenderFrame draws the whole screen; modal may be nil
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot, modal *Modal) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(bg)
	r.screen.Clear()

	if snap.Size > 0 {
		r.drawFrame(snap)
		r.drawCells(snap)
		r.drawStatus(snap)
	}
	if modal != nil {
		r.drawModal(modal)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawFrame(snap engine.Snapshot) {
	left, top, right, bottom := FrameBounds(snap.Size)
	corner := FrameStyle(false, snap.Phase)

	topStyle := FrameStyle(snap.Touched.Top, snap.Phase)
	bottomStyle := FrameStyle(snap.Touched.Bottom, snap.Phase)
	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, frameHorizontal, nil, topStyle)
		r.screen.SetContent(x, bottom, frameHorizontal, nil, bottomStyle)
	}

	leftStyle := FrameStyle(snap.Touched.Left, snap.Phase)
	rightStyle := FrameStyle(snap.Touched.Right, snap.Phase)
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, frameVertical, nil, leftStyle)
		r.screen.SetContent(right, y, frameVertical, nil, rightStyle)
	}

	r.screen.SetContent(left, top, frameTopLeft, nil, corner)
	r.screen.SetContent(right, top, frameTopRight, nil, corner)
	r.screen.SetContent(left, bottom, frameBottomLeft, nil, corner)
	r.screen.SetContent(right, bottom, frameBottomRight, nil, corner)
}

func (r *TerminalRenderer) drawCells(snap engine.Snapshot) {
	for pos, state := range snap.Cells {
		x, y := CellOrigin(snap.Size, pos)
		r.screen.SetContent(x, y, Glyph(state), nil, CellStyle(state, snap.Phase))
	}
}

func (r *TerminalRenderer) drawStatus(snap engine.Snapshot) {
	_, _, _, bottom := FrameBounds(snap.Size)
	x := constants.BoardOffsetX - 1
	y := bottom + 1

	status := snap.Status
	if status == "" {
		status = "Trap the blue cell with walls"
	}
	drawText(r.screen, x, y, " "+status+" ", StatusStyle(snap.Phase))

	hint := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusHint)
	info := fmt.Sprintf("Level %d (%dms)  Episode %d  Edges %d/4",
		snap.Difficulty.Level, snap.Difficulty.Tick.Milliseconds(), snap.Episode, snap.Touched.Count())
	drawText(r.screen, x, y+1, info, hint)
	drawText(r.screen, x, y+2, "w/a/s/d move  space wall  esc quit", hint)
}

func (r *TerminalRenderer) drawModal(m *Modal) {
	width, height := r.screen.Size()

	textWidth := min(modalMaxWidth, width-2*constants.ModalPadding-2)
	if textWidth < 10 {
		textWidth = 10
	}
	lines := WrapText(m.Text, textWidth)
	if m.Prompt {
		lines = append(lines, "", "> "+m.Input+"_")
	} else {
		lines = append(lines, "", "[press enter]")
	}

	boxWidth := 0
	for _, l := range lines {
		boxWidth = max(boxWidth, len([]rune(l)))
	}
	boxWidth += 2*constants.ModalPadding + 2
	boxHeight := len(lines) + 2

	x0 := max((width-boxWidth)/2, 0)
	y0 := max((height-boxHeight)/2, 0)

	fill := tcell.StyleDefault.Background(RgbModalBg).Foreground(RgbModalText)
	border := fill.Foreground(RgbModalBorder)
	for y := y0; y < y0+boxHeight; y++ {
		for x := x0; x < x0+boxWidth; x++ {
			ch, style := ' ', fill
			switch {
			case y == y0 || y == y0+boxHeight-1:
				ch, style = frameHorizontal, border
			case x == x0 || x == x0+boxWidth-1:
				ch, style = frameVertical, border
			}
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
	r.screen.SetContent(x0, y0, frameTopLeft, nil, border)
	r.screen.SetContent(x0+boxWidth-1, y0, frameTopRight, nil, border)
	r.screen.SetContent(x0, y0+boxHeight-1, frameBottomLeft, nil, border)
	r.screen.SetContent(x0+boxWidth-1, y0+boxHeight-1, frameBottomRight, nil, border)

	inputStyle := fill.Foreground(RgbModalInput).Bold(true)
	for i, l := range lines {
		style := fill
		if m.Prompt && i == len(lines)-1 {
			style = inputStyle
		}
		drawText(r.screen, x0+1+constants.ModalPadding, y0+1+i, l, style)
	}
}

// WrapText breaks text into lines of at most width runes, keeping explicit newlines
func WrapText(text string, width int) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, w := range words {
			switch {
			case line == "":
				line = w
			case len([]rune(line))+1+len([]rune(w)) <= width:
				line += " " + w
			default:
				out = append(out, line)
				line = w
			}
		}
		out = append(out, line)
	}
	return out
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
