package engine

import (
	"testing"
)

// TestGameStateInitialization verifies a zero GameState is a fresh roaming episode
func TestGameStateInitialization(t *testing.T) {
	var gs GameState

	if gs.Phase() != PhaseRoaming {
		t.Errorf("Expected initial phase Roaming, got %v", gs.Phase())
	}
	if gs.Countdown() != 0 {
		t.Errorf("Expected initial countdown 0, got %d", gs.Countdown())
	}
	if gs.Touched().Count() != 0 {
		t.Errorf("Expected no touched edges, got %d", gs.Touched().Count())
	}
}

// TestPhaseTransitions checks the transition table
func TestPhaseTransitions(t *testing.T) {
	tests := []struct {
		from, to GamePhase
		valid    bool
	}{
		{PhaseRoaming, PhaseTrapped, true},
		{PhaseRoaming, PhaseWon, false},
		{PhaseRoaming, PhaseLost, false},
		{PhaseTrapped, PhaseWon, true},
		{PhaseTrapped, PhaseLost, true},
		{PhaseTrapped, PhaseRoaming, false},
		{PhaseTrapped, PhaseTrapped, false},
		{PhaseWon, PhaseRoaming, false},
		{PhaseWon, PhaseLost, false},
		{PhaseLost, PhaseRoaming, false},
		{PhaseLost, PhaseWon, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.valid {
			t.Errorf("CanTransition(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.valid)
		}
	}
}

// TestEnterTrappedIsGuarded verifies a second entry in the same episode changes nothing
func TestEnterTrappedIsGuarded(t *testing.T) {
	var gs GameState

	if !gs.EnterTrapped(10) {
		t.Fatal("Expected first EnterTrapped to succeed")
	}
	gs.TouchBoundary(0, 3, 10)
	gs.TickCountdown()

	if gs.EnterTrapped(10) {
		t.Error("Expected second EnterTrapped to be rejected")
	}
	if !gs.Touched().Top {
		t.Error("Second EnterTrapped must not reset the flags")
	}
	if gs.Countdown() != 9 {
		t.Errorf("Second EnterTrapped must not reset the countdown, got %d", gs.Countdown())
	}
}

// TestTouchBoundary verifies edge detection and monotonic flags
func TestTouchBoundary(t *testing.T) {
	var gs GameState

	if gs.TouchBoundary(0, 0, 10) {
		t.Error("Touches while roaming must be ignored")
	}
	gs.EnterTrapped(10)
	if gs.Touched().Count() != 0 {
		t.Fatalf("Expected flags cleared on entry, got %+v", gs.Touched())
	}

	if !gs.TouchBoundary(0, 0, 10) {
		t.Error("Expected corner to change flags")
	}
	touched := gs.Touched()
	if !touched.Top || !touched.Left || touched.Bottom || touched.Right {
		t.Errorf("Expected Top and Left only, got %+v", touched)
	}

	if gs.TouchBoundary(5, 5, 10) {
		t.Error("Interior cell must not change flags")
	}
	if gs.TouchBoundary(0, 4, 10) {
		t.Error("Repeated edge must not report a change")
	}
	if gs.Touched() != touched {
		t.Error("Flags must never go back to false")
	}

	gs.TouchBoundary(9, 9, 10)
	if !gs.Touched().All() {
		t.Errorf("Expected all edges, got %+v", gs.Touched())
	}
}

// TestTickCountdown verifies the countdown only runs while trapped and stops at zero
func TestTickCountdown(t *testing.T) {
	var gs GameState

	if gs.TickCountdown() != 0 {
		t.Error("Countdown must not move while roaming")
	}

	gs.EnterTrapped(3)
	for want := 2; want >= 0; want-- {
		if got := gs.TickCountdown(); got != want {
			t.Errorf("TickCountdown() = %d, want %d", got, want)
		}
	}
	if got := gs.TickCountdown(); got != 0 {
		t.Errorf("Countdown must stop at zero, got %d", got)
	}

	gs.TransitionPhase(PhaseLost)
	gs.Reset()
	if gs.Phase() != PhaseRoaming || gs.Countdown() != 0 || gs.Touched().Count() != 0 {
		t.Errorf("Reset did not restore a fresh episode: %+v", gs)
	}
}

func TestPhaseString(t *testing.T) {
	names := map[GamePhase]string{
		PhaseRoaming: "Roaming",
		PhaseTrapped: "Trapped",
		PhaseWon:     "Won",
		PhaseLost:    "Lost",
		GamePhase(9): "Unknown",
	}
	for phase, want := range names {
		if phase.String() != want {
			t.Errorf("%d.String() = %q, want %q", phase, phase.String(), want)
		}
	}
	if PhaseTrapped.Terminal() || !PhaseWon.Terminal() || !PhaseLost.Terminal() {
		t.Error("Only Won and Lost are terminal")
	}
}
