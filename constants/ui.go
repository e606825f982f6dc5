package constants

// UI Layout Constants
const (
	// CellWidth is the number of terminal columns used per grid cell
	CellWidth = 2

	// BoardOffsetX and BoardOffsetY place the board frame on screen
	BoardOffsetX = 2
	BoardOffsetY = 1

	// ModalPadding is the inner horizontal padding of alert/prompt boxes
	ModalPadding = 2
)

// Input Constants
const (
	// IntentQueueSize is the buffered capacity between the event poller and the session
	IntentQueueSize = 64
)

// Cell glyphs (each drawn CellWidth wide)
const (
	GlyphEmpty     = '·'
	GlyphBlocked   = '█'
	GlyphPlayer    = '●'
	GlyphAdversary = '◆'
)
