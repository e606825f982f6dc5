package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/COMOCO0102/Game-plan/board"
	"github.com/COMOCO0102/Game-plan/core"
)

// Session owns one running game: the board, both controllers, the phase machine and its timers.
// All methods must be called from the goroutine running Run.
type Session struct {
	id       uuid.UUID
	episode  int
	settings SettingsProvider
	current  Settings

	ui        UserInteraction
	logger    *zap.Logger
	newTicker TickerFactory
	rng       *rand.Rand
	handlers  []EventHandler

	board      *board.Board
	player     *PlayerController
	adversary  int
	state      GameState
	difficulty Difficulty
	status     string

	adversaryTimer *ScheduledTimer
	countdownTimer *ScheduledTimer
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithLogger sets the session logger
func WithLogger(logger *zap.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTickerFactory replaces the time.Ticker based factory
func WithTickerFactory(factory TickerFactory) SessionOption {
	return func(s *Session) {
		if factory != nil {
			s.newTicker = factory
		}
	}
}

// WithRand sets the random source for board generation and adversary moves
func WithRand(rng *rand.Rand) SessionOption {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithEventHandler registers an event consumer
func WithEventHandler(h EventHandler) SessionOption {
	return func(s *Session) {
		if h != nil {
			s.handlers = append(s.handlers, h)
		}
	}
}

// NewSession creates a session; the first episode starts on Restart or Run
func NewSession(ui UserInteraction, settings SettingsProvider, opts ...SessionOption) *Session {
	if settings == nil {
		settings = StaticSettings(DefaultSettings())
	}
	s := &Session{
		id:        uuid.New(),
		settings:  settings,
		ui:        ui,
		logger:    zap.NewNop(),
		newTicker: NewRealTicker,
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
		adversary: board.NoPosition,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session", s.id.String()))
	return s
}

// ID returns the session identifier
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Episode returns the number of started episodes
func (s *Session) Episode() int {
	return s.episode
}

// Phase returns the current phase
func (s *Session) Phase() GamePhase {
	return s.state.Phase()
}

// Run starts the first episode if needed and processes intents and timer ticks until
// the context ends, a quit intent arrives or the intent channel closes.
func (s *Session) Run(ctx context.Context, intents <-chan core.Intent) error {
	if s.board == nil {
		if err := s.Restart(); err != nil {
			return err
		}
	}
	defer s.stopTimers()

	for {
		var err error
		select {
		case <-ctx.Done():
			return ctx.Err()

		case intent, ok := <-intents:
			if !ok || intent.Type == core.IntentQuit {
				s.logger.Info("session ended", zap.Int("episode", s.episode))
				return nil
			}
			err = s.HandleIntent(intent)

		case <-s.adversaryTimer.C():
			err = s.AdversaryTick()

		case <-s.countdownTimer.C():
			err = s.CountdownTick()
		}
		if err != nil {
			return err
		}
	}
}

// HandleIntent applies one player intent
func (s *Session) HandleIntent(intent core.Intent) error {
	switch intent.Type {
	case core.IntentMove:
		return s.Move(intent.Direction)
	case core.IntentPlaceWall:
		return s.PlaceWall()
	default:
		return nil
	}
}

// Restart discards the current episode and starts a new one with fresh settings,
// a newly chosen difficulty and a newly generated board.
func (s *Session) Restart() error {
	s.stopTimers()
	s.current = s.settings()

	difficulty, err := s.chooseDifficulty()
	if err != nil {
		return err
	}

	layout, err := board.Generate(s.current.GridSize, s.current.WallDensity, s.rng)
	if err != nil {
		return fmt.Errorf("generate board: %w", err)
	}

	s.board = layout.Board
	s.player = NewPlayerController(layout.Board, layout.Player)
	s.adversary = layout.Adversary
	s.difficulty = difficulty
	s.state.Reset()
	s.status = ""
	s.episode++

	s.adversaryTimer = Schedule(s.newTicker, difficulty.Tick)

	s.logger.Info("episode started",
		zap.Int("episode", s.episode),
		zap.Int("level", difficulty.Level),
		zap.Duration("tick", difficulty.Tick),
		zap.Int("size", s.current.GridSize),
		zap.Int("walls", s.board.Count(board.Blocked)),
	)
	s.emit(EventRestart, board.NoPosition, fmt.Sprintf("episode %d", s.episode))
	s.emit(EventDifficultySelected, board.NoPosition, difficulty.Message)
	s.render()
	return nil
}

// chooseDifficulty prompts unless a fixed level is configured
func (s *Session) chooseDifficulty() (Difficulty, error) {
	if s.current.Level != 0 {
		return DifficultyForLevel(s.current.Level), nil
	}
	answer, err := s.ui.PromptDifficulty(DifficultyPrompt)
	if err != nil {
		return Difficulty{}, fmt.Errorf("difficulty prompt: %w", err)
	}
	difficulty := ParseDifficulty(answer)
	if !difficulty.Valid {
		s.logger.Warn("invalid difficulty input", zap.String("input", answer))
	}
	if err := s.ui.Alert(difficulty.Message); err != nil {
		return Difficulty{}, fmt.Errorf("difficulty alert: %w", err)
	}
	return difficulty, nil
}

// Move handles a directional request. While trapped the boundary flags follow
// the player's position after the request, moved or not.
func (s *Session) Move(dir core.Direction) error {
	if s.board == nil || s.state.Phase().Terminal() {
		return nil
	}

	if s.player.Move(dir) {
		s.emit(EventPlayerMoved, s.player.Position(), dir.String())
	} else {
		s.emit(EventMoveRejected, s.player.Position(), dir.String())
	}

	if s.state.Phase() == PhaseTrapped {
		row, col := s.board.RowCol(s.player.Position())
		if s.state.TouchBoundary(row, col, s.board.Size()) {
			touched := s.state.Touched()
			s.logger.Debug("boundary touched",
				zap.Int("episode", s.episode),
				zap.Int("edges", touched.Count()),
			)
			s.emit(EventBoundaryTouched, s.player.Position(), "")
		}
		if s.state.Touched().All() {
			return s.win()
		}
	}

	s.render()
	return nil
}

// PlaceWall turns the player's previous cell into a wall
func (s *Session) PlaceWall() error {
	if s.board == nil || s.state.Phase().Terminal() {
		return nil
	}

	wall := s.player.LastPosition()
	if !s.player.PlaceWall(s.adversary) {
		return nil
	}
	s.emit(EventWallPlaced, wall, "")

	if IsTrapped(s.board, s.adversary) {
		// last position stays set on this path
		return s.enterTrapped()
	}

	s.player.ClearLastPosition()
	s.render()
	return nil
}

// AdversaryTick moves the adversary at most one step while roaming
func (s *Session) AdversaryTick() error {
	if s.board == nil || s.state.Phase() != PhaseRoaming {
		return nil
	}

	if IsTrapped(s.board, s.adversary) {
		return s.enterTrapped()
	}

	next, ok := ChooseMove(LegalMoves(s.board, s.adversary), s.rng)
	if !ok {
		if IsTrapped(s.board, s.adversary) {
			return s.enterTrapped()
		}
		return nil
	}

	_ = s.board.Place(s.adversary, board.Empty)
	_ = s.board.Place(next, board.Adversary)
	s.adversary = next
	s.emit(EventAdversaryMoved, next, "")
	s.render()
	return nil
}

// CountdownTick advances the boundary race by one second
func (s *Session) CountdownTick() error {
	if s.state.Phase() != PhaseTrapped {
		return nil
	}

	remaining := s.state.TickCountdown()
	s.status = CountdownStatus(remaining)
	s.emit(EventCountdown, board.NoPosition, s.status)

	if remaining == 0 && !s.state.Touched().All() {
		return s.lose()
	}

	s.render()
	return nil
}

// enterTrapped starts the boundary race once per episode
func (s *Session) enterTrapped() error {
	seconds := s.current.Countdown
	if !s.state.EnterTrapped(seconds) {
		return nil
	}

	s.status = CountdownStatus(seconds)
	s.logger.Info("adversary trapped",
		zap.Int("episode", s.episode),
		zap.Int("position", s.adversary),
		zap.Int("countdown", seconds),
	)
	s.emit(EventTrapped, s.adversary, "")
	s.render()

	if err := s.ui.Alert(TrappedMessage(seconds)); err != nil {
		return fmt.Errorf("trapped alert: %w", err)
	}

	s.countdownTimer.Cancel()
	s.countdownTimer = Schedule(s.newTicker, s.current.CountdownInterval)
	return nil
}

func (s *Session) win() error {
	if !s.state.TransitionPhase(PhaseWon) {
		return nil
	}
	s.stopTimers()
	s.status = StatusWon

	s.logger.Info("episode won",
		zap.Int("episode", s.episode),
		zap.Int("countdown", s.state.Countdown()),
	)
	s.emit(EventWon, s.player.Position(), WinMessage)
	s.render()

	if err := s.ui.Alert(WinMessage); err != nil {
		return fmt.Errorf("win alert: %w", err)
	}
	return s.Restart()
}

func (s *Session) lose() error {
	if !s.state.TransitionPhase(PhaseLost) {
		return nil
	}
	s.stopTimers()
	s.status = StatusLost

	touched := s.state.Touched()
	s.logger.Info("episode lost",
		zap.Int("episode", s.episode),
		zap.Int("edges", touched.Count()),
	)
	msg := LossMessage(s.current.Countdown)
	s.emit(EventLost, s.player.Position(), msg)
	s.render()

	if err := s.ui.Alert(msg); err != nil {
		return fmt.Errorf("loss alert: %w", err)
	}
	return s.Restart()
}

func (s *Session) stopTimers() {
	s.adversaryTimer.Cancel()
	s.countdownTimer.Cancel()
	s.adversaryTimer = nil
	s.countdownTimer = nil
}

// Snapshot returns a copy of the session state for rendering
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:  s.id,
		Episode:    s.episode,
		Player:     board.NoPosition,
		Adversary:  s.adversary,
		Phase:      s.state.Phase(),
		Countdown:  s.state.Countdown(),
		Touched:    s.state.Touched(),
		Difficulty: s.difficulty,
		Status:     s.status,
	}
	if s.board != nil {
		snap.Size = s.board.Size()
		snap.Cells = s.board.Cells()
		snap.Player = s.player.Position()
	}
	return snap
}

func (s *Session) render() {
	s.ui.Render(s.Snapshot())
}

func (s *Session) emit(typ EventType, pos int, msg string) {
	if len(s.handlers) == 0 {
		return
	}
	ev := Event{
		Type:      typ,
		SessionID: s.id,
		Episode:   s.episode,
		Phase:     s.state.Phase(),
		Countdown: s.state.Countdown(),
		Position:  pos,
		Message:   msg,
	}
	for _, h := range s.handlers {
		h.HandleEvent(ev)
	}
}
