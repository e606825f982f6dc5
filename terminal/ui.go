// Package terminal runs the game in a tcell screen: it pumps key events into
// session intents and implements the blocking alert and difficulty prompt.
package terminal

import (
	"errors"
	"fmt"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/COMOCO0102/Game-plan/constants"
	"github.com/COMOCO0102/Game-plan/core"
	"github.com/COMOCO0102/Game-plan/engine"
	"github.com/COMOCO0102/Game-plan/input"
	"github.com/COMOCO0102/Game-plan/render"
)

// ErrClosed is returned by blocking calls once the screen is gone or the player quit
var ErrClosed = errors.New("terminal closed")

// UI is the tcell implementation of engine.UserInteraction
type UI struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	keys     *input.KeyTable
	logger   *zap.Logger

	intents   chan core.Intent
	modalKeys chan *tcell.EventKey

	mu    sync.Mutex
	snap  engine.Snapshot
	modal *render.Modal

	done      chan struct{}
	closeOnce sync.Once
	finiOnce  sync.Once
}

// New initializes screen and returns a UI; Start begins event polling
func New(screen tcell.Screen, keys *input.KeyTable, logger *zap.Logger) (*UI, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	core.SetCrashTerminal(screen)

	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &UI{
		screen:    screen,
		renderer:  render.NewTerminalRenderer(screen),
		keys:      keys,
		logger:    logger,
		intents:   make(chan core.Intent, constants.IntentQueueSize),
		modalKeys: make(chan *tcell.EventKey, constants.IntentQueueSize),
		done:      make(chan struct{}),
	}, nil
}

// Intents returns the channel of resolved player intents
func (u *UI) Intents() <-chan core.Intent {
	return u.intents
}

// Done is closed when the screen stops delivering events or the player quits from a modal
func (u *UI) Done() <-chan struct{} {
	return u.done
}

// Start launches the event pump
func (u *UI) Start() {
	core.Go(u.pump)
}

// Close restores the terminal; safe to call repeatedly
func (u *UI) Close() {
	u.finiOnce.Do(func() {
		u.screen.Fini()
	})
	u.stop()
}

func (u *UI) stop() {
	u.closeOnce.Do(func() {
		close(u.done)
	})
}

func (u *UI) pump() {
	defer u.stop()
	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			u.screen.Sync()
			u.redraw()
		case *tcell.EventKey:
			u.dispatchKey(ev)
		}
	}
}

// dispatchKey routes a key to the open modal, or resolves it into an intent
func (u *UI) dispatchKey(ev *tcell.EventKey) {
	u.mu.Lock()
	modalOpen := u.modal != nil
	u.mu.Unlock()

	if modalOpen {
		select {
		case u.modalKeys <- ev:
		default:
		}
		return
	}

	intent := u.keys.Resolve(ev)
	if intent.Type == core.IntentNone {
		return
	}
	select {
	case u.intents <- intent:
	default:
		u.logger.Warn("intent queue full, dropping", zap.Stringer("intent", intent))
	}
}

// Render implements engine.UserInteraction
func (u *UI) Render(snap engine.Snapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.snap = snap
	u.renderer.RenderFrame(u.snap, u.modal)
}

func (u *UI) redraw() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.renderer.RenderFrame(u.snap, u.modal)
}

// Alert shows message until Enter, Space or Esc
func (u *UI) Alert(message string) error {
	_, err := u.runModal(&render.Modal{Text: message})
	return err
}

// PromptDifficulty shows prompt and returns the typed answer; Esc answers empty
func (u *UI) PromptDifficulty(prompt string) (string, error) {
	return u.runModal(&render.Modal{Text: prompt, Prompt: true})
}

func (u *UI) runModal(m *render.Modal) (string, error) {
	select {
	case <-u.done:
		return "", ErrClosed
	default:
	}

	u.drainModalKeys()
	u.setModal(m)
	defer u.setModal(nil)

	for {
		select {
		case <-u.done:
			return "", ErrClosed
		case ev := <-u.modalKeys:
			u.mu.Lock()
			answer, closed, quit := applyModalKey(m, ev)
			u.mu.Unlock()
			if quit {
				u.logger.Info("quit from modal")
				u.stop()
				return "", ErrClosed
			}
			if closed {
				return answer, nil
			}
			u.redraw()
		}
	}
}

// applyModalKey edits m for one key; closed reports the modal is answered
func applyModalKey(m *render.Modal, ev *tcell.EventKey) (answer string, closed, quit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return "", false, true
	case tcell.KeyEnter:
		return m.Input, true, false
	case tcell.KeyEscape:
		return "", true, false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if r := []rune(m.Input); m.Prompt && len(r) > 0 {
			m.Input = string(r[:len(r)-1])
		}
	case tcell.KeyRune:
		if !m.Prompt {
			if ev.Rune() == ' ' {
				return "", true, false
			}
			return "", false, false
		}
		if unicode.IsPrint(ev.Rune()) && len([]rune(m.Input)) < 16 {
			m.Input += string(ev.Rune())
		}
	}
	return "", false, false
}

func (u *UI) setModal(m *render.Modal) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.modal = m
	u.renderer.RenderFrame(u.snap, u.modal)
}

func (u *UI) drainModalKeys() {
	for {
		select {
		case <-u.modalKeys:
		default:
			return
		}
	}
}
