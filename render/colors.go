package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/COMOCO0102/Game-plan/board"
	"github.com/COMOCO0102/Game-plan/engine"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbEmpty      = tcell.NewRGBColor(70, 72, 90)    // Dim dot
	RgbWall       = tcell.NewRGBColor(150, 150, 160) // Light slate
	RgbPlayer     = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbAdversary  = tcell.NewRGBColor(100, 150, 255) // Normal Blue

	// Adversary tint once enclosed
	RgbAdversaryTrapped = tcell.NewRGBColor(60, 100, 200) // Dark Blue

	// Boundary frame
	RgbFrame        = tcell.NewRGBColor(90, 90, 110) // Muted gray
	RgbFrameTouched = tcell.NewRGBColor(50, 255, 50) // Bright Green
	RgbFrameRace    = tcell.NewRGBColor(255, 165, 0) // Orange while the race runs

	// Status line
	RgbStatusText  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusHint  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbStatusWon   = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbStatusLost  = tcell.NewRGBColor(255, 0, 0)     // Error Red
	RgbCountdownBg = tcell.NewRGBColor(200, 50, 50)   // Red countdown badge

	// Modal
	RgbModalBg     = tcell.NewRGBColor(40, 42, 60)    // Raised panel
	RgbModalBorder = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbModalText   = tcell.NewRGBColor(255, 255, 255) // White
	RgbModalInput  = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
)

// CellStyle returns the glyph style for a board cell
func CellStyle(state board.CellState, phase engine.GamePhase) tcell.Style {
	base := tcell.StyleDefault.Background(RgbBackground)
	switch state {
	case board.Blocked:
		return base.Foreground(RgbWall)
	case board.Player:
		return base.Foreground(RgbPlayer).Bold(true)
	case board.Adversary:
		if phase != engine.PhaseRoaming {
			return base.Foreground(RgbAdversaryTrapped).Bold(true)
		}
		return base.Foreground(RgbAdversary).Bold(true)
	default:
		return base.Foreground(RgbEmpty)
	}
}

// FrameStyle returns the style of one boundary side
func FrameStyle(touched bool, phase engine.GamePhase) tcell.Style {
	base := tcell.StyleDefault.Background(RgbBackground)
	switch {
	case touched:
		return base.Foreground(RgbFrameTouched).Bold(true)
	case phase == engine.PhaseTrapped:
		return base.Foreground(RgbFrameRace)
	default:
		return base.Foreground(RgbFrame)
	}
}

// StatusStyle returns the style for the status text in phase
func StatusStyle(phase engine.GamePhase) tcell.Style {
	base := tcell.StyleDefault.Background(RgbBackground)
	switch phase {
	case engine.PhaseTrapped:
		return base.Foreground(RgbStatusText).Background(RgbCountdownBg).Bold(true)
	case engine.PhaseWon:
		return base.Foreground(RgbStatusWon).Bold(true)
	case engine.PhaseLost:
		return base.Foreground(RgbStatusLost).Bold(true)
	default:
		return base.Foreground(RgbStatusText)
	}
}
