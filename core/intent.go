package core

// IntentType identifies what a key press asks the game to do
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentMove
	IntentPlaceWall
	IntentQuit
)

// Intent is a resolved player action, independent of the key that produced it
type Intent struct {
	Type      IntentType
	Direction Direction // IntentMove only
}

// String returns a short description used in logs
func (i Intent) String() string {
	switch i.Type {
	case IntentMove:
		return "move " + i.Direction.String()
	case IntentPlaceWall:
		return "place wall"
	case IntentQuit:
		return "quit"
	default:
		return "none"
	}
}
