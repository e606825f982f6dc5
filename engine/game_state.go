package engine

// GamePhase is the stage of a single game
type GamePhase uint8

const (
	PhaseRoaming GamePhase = iota // adversary wanders, player builds walls
	PhaseTrapped                  // adversary enclosed, boundary race running
	PhaseWon
	PhaseLost
)

// String returns the phase name
func (p GamePhase) String() string {
	switch p {
	case PhaseRoaming:
		return "Roaming"
	case PhaseTrapped:
		return "Trapped"
	case PhaseWon:
		return "Won"
	case PhaseLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the phase only ends through a restart
func (p GamePhase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// validTransitions lists forward moves; Won/Lost only leave through Reset
var validTransitions = map[GamePhase][]GamePhase{
	PhaseRoaming: {PhaseTrapped},
	PhaseTrapped: {PhaseWon, PhaseLost},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to GamePhase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// BoundaryTouchSet records which grid edges the player has occupied during the trapped race
type BoundaryTouchSet struct {
	Top    bool
	Bottom bool
	Left   bool
	Right  bool
}

// Reset clears all four flags
func (b *BoundaryTouchSet) Reset() {
	*b = BoundaryTouchSet{}
}

// Touch sets the flags for every edge the cell (row, col) lies on.
// Flags only go from false to true; returns true if any flag changed.
func (b *BoundaryTouchSet) Touch(row, col, size int) bool {
	changed := false
	mark := func(flag *bool, hit bool) {
		if hit && !*flag {
			*flag = true
			changed = true
		}
	}
	mark(&b.Top, row == 0)
	mark(&b.Bottom, row == size-1)
	mark(&b.Left, col == 0)
	mark(&b.Right, col == size-1)
	return changed
}

// All reports whether every edge has been touched
func (b BoundaryTouchSet) All() bool {
	return b.Top && b.Bottom && b.Left && b.Right
}

// Count returns the number of touched edges
func (b BoundaryTouchSet) Count() int {
	n := 0
	for _, v := range [4]bool{b.Top, b.Bottom, b.Left, b.Right} {
		if v {
			n++
		}
	}
	return n
}

// GameState is the phase machine of one episode: phase, boundary flags and countdown.
// It is owned by a single Session goroutine and needs no locking.
type GameState struct {
	phase     GamePhase
	touched   BoundaryTouchSet
	countdown int
}

// Phase returns the current phase
func (gs *GameState) Phase() GamePhase {
	return gs.phase
}

// Touched returns a copy of the boundary flags
func (gs *GameState) Touched() BoundaryTouchSet {
	return gs.touched
}

// Countdown returns the remaining trapped-race seconds
func (gs *GameState) Countdown() int {
	return gs.countdown
}

// TransitionPhase attempts to transition to a new phase with validation
// Returns true if transition succeeded, false if transition is invalid
func (gs *GameState) TransitionPhase(to GamePhase) bool {
	if !CanTransition(gs.phase, to) {
		return false
	}
	gs.phase = to
	return true
}

// EnterTrapped moves Roaming to Trapped, clearing the boundary flags and arming the countdown.
// Returns false without touching anything when the episode is already past Roaming.
func (gs *GameState) EnterTrapped(countdown int) bool {
	if !gs.TransitionPhase(PhaseTrapped) {
		return false
	}
	gs.touched.Reset()
	gs.countdown = countdown
	return true
}

// TouchBoundary records the player's cell while trapped; no-op in any other phase
func (gs *GameState) TouchBoundary(row, col, size int) bool {
	if gs.phase != PhaseTrapped {
		return false
	}
	return gs.touched.Touch(row, col, size)
}

// TickCountdown decrements the countdown while trapped and returns the remaining seconds
func (gs *GameState) TickCountdown() int {
	if gs.phase == PhaseTrapped && gs.countdown > 0 {
		gs.countdown--
	}
	return gs.countdown
}

// Reset returns the machine to a fresh Roaming episode
func (gs *GameState) Reset() {
	*gs = GameState{}
}
