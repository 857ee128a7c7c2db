package window

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/ruins/internal/frontend/text"
	"github.com/cory-johannsen/ruins/internal/game/anim"
	"github.com/cory-johannsen/ruins/internal/game/command"
	"github.com/cory-johannsen/ruins/internal/game/engine"
	"github.com/cory-johannsen/ruins/internal/game/turn"
)

// CommandSource yields the player's next command.
type CommandSource interface {
	// Next blocks for one input decoded in mode. ok is false when the input
	// did not decode to a command. io.EOF ends the session.
	Next(mode command.InputMode) (cmd command.Command, ok bool, err error)
}

// Manager drives one game: it advances the turn clock, feeds player
// commands to the Router, and plays animations between turns.
type Manager struct {
	game     *engine.Game
	pa       Actions
	router   *Router
	seq      *anim.Sequencer
	canvas   *text.Canvas
	renderer *text.Renderer
	logger   *zap.Logger
}

// NewManager creates a Manager playing g's animations at framesPerTick
// render cycles per declared frame.
//
// Precondition: every pointer argument must be non-nil.
func NewManager(g *engine.Game, router *Router, canvas *text.Canvas, renderer *text.Renderer, framesPerTick int, logger *zap.Logger) *Manager {
	if g == nil || router == nil || canvas == nil || renderer == nil || logger == nil {
		panic("window.NewManager: arguments must not be nil")
	}
	return &Manager{
		game:     g,
		pa:       g.PlayerAction(),
		router:   router,
		seq:      anim.NewSequencer(g.PopAnimation, framesPerTick),
		canvas:   canvas,
		renderer: renderer,
		logger:   logger,
	}
}

// Router returns the dialog router.
func (m *Manager) Router() *Router { return m.router }

// AdvanceTurn runs one step of the loop, then starts the next queued
// animation. While the clock is waiting the step runs the clock up to the
// player's turn; a step that advanced the clock returns without reading so
// the NPCs' moves are drawn before the player is asked for input. During the
// player's turn the step reads and routes one command.
//
// Precondition: AnimationNow() is false.
// Postcondition: Returns false when the player quit, the input ended, or
// the player died.
func (m *Manager) AdvanceTurn(src CommandSource) bool {
	if m.seq.InFlight() {
		panic("window: AdvanceTurn called while an animation is in flight")
	}
	advanced := false
	if m.game.State() == turn.WaitingForNextTurn {
		m.game.AdvanceTurn()
		advanced = true
	}
	if m.game.GameOver() {
		m.logger.Info("player died", zap.Int("turn", m.game.Turn()))
		return false
	}
	if !advanced && m.game.State() == turn.PlayerTurn {
		m.router.SyncTextInput()
		cmd, ok, err := src.Next(m.router.Mode())
		if err != nil {
			if !errors.Is(err, io.EOF) {
				m.logger.Warn("reading command", zap.Error(err))
			}
			return false
		}
		if ok && m.router.Route(cmd, m.pa) {
			m.logger.Info("player quit", zap.Int("turn", m.game.Turn()))
			return false
		}
	}
	m.seq.Start()
	return true
}

// Redraw renders one frame: the main window with the current animation
// frame, then every open dialog bottom first.
func (m *Manager) Redraw() error {
	a, frame, animating := m.seq.Tick()
	m.renderer.Draw(m.canvas, m.game, a, frame, animating)
	for _, d := range m.router.Dialogs() {
		d.Render(m.canvas)
	}
	return m.canvas.Flush()
}

// AnimationNow reports whether an animation is playing.
func (m *Manager) AnimationNow() bool {
	return m.seq.InFlight()
}
