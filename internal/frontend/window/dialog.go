// Package window routes player commands through a stack of modal dialogs
// and drives the turn and animation loop of the terminal frontend.
package window

import (
	"fmt"

	"github.com/cory-johannsen/ruins/internal/frontend/text"
	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/command"
	"github.com/cory-johannsen/ruins/internal/game/content"
	"github.com/cory-johannsen/ruins/internal/game/engine"
	"github.com/cory-johannsen/ruins/internal/game/world"
)

// Result tells the Router what to do with the dialog that handled a command.
type Result int

// Dialog results.
const (
	// Continue keeps the dialog open.
	Continue Result = iota
	// Close removes the dialog that handled the command.
	Close
	// CloseAll empties the dialog stack.
	CloseAll
	// Quit ends the game loop.
	Quit
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case Close:
		return "close"
	case CloseAll:
		return "close_all"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Actions is the player's side of the game. *engine.PlayerAction implements it.
type Actions interface {
	Player() *character.Character
	TryMove(dir world.Direction) bool
	Wait()
	OnMapEntrance() bool
	MoveNextFloor() bool
	UseSkill(skillID, targetID string) bool
	NearestVisibleHostile() (*character.Character, bool)
	Build(dir world.Direction, obj content.BuildObj) bool
	Buildable() []content.BuildChoice
	UsableSkills() []*content.ActiveSkill
	Items() []engine.ItemLine
	InspectItem(index int) bool
}

var _ Actions = (*engine.PlayerAction)(nil)

// Dialog is one modal window on the Router stack.
type Dialog interface {
	// ProcessCommand handles cmd while the dialog is on top of the stack.
	ProcessCommand(cmd command.Command, pa Actions) Result
	// Mode is the input mode the dialog wants while it is on top.
	Mode() command.InputMode
	// Render draws the dialog below the main window.
	Render(c *text.Canvas)
}

// TextInput is the free-text side channel of the frontend.
type TextInput interface {
	Start()
	Stop()
	Active() bool
}
