// Package command turns raw input lines into abstract game commands.
package command

import (
	"strings"

	"github.com/cory-johannsen/ruins/internal/game/world"
)

// Categories for organizing words.
const (
	CategoryMovement = "movement"
	CategoryWorld    = "world"
	CategoryMenu     = "menu"
	CategoryDialog   = "dialog"
	CategorySystem   = "system"
)

// Kind identifies a decoded command.
type Kind string

// Command kinds.
const (
	KindMove          Kind = "move"
	KindEnter         Kind = "enter"
	KindWait          Kind = "wait"
	KindOpenExitWin   Kind = "open_exit_win"
	KindOpenItemMenu  Kind = "open_item_menu"
	KindOpenBuildMenu Kind = "open_build_menu"
	KindOpenSkillMenu Kind = "open_skill_menu"
	KindFind          Kind = "find"
	KindSelect        Kind = "select"
	KindConfirm       Kind = "confirm"
	KindCancel        Kind = "cancel"
	KindTextInput     Kind = "text_input"
	KindHelp          Kind = "help"
)

// Command is one decoded input.
type Command struct {
	Kind Kind
	// Dir is set for KindMove.
	Dir world.Direction
	// Index is the zero-based choice for KindSelect.
	Index int
	// Text is the entered line for KindTextInput.
	Text string
}

// InputMode selects how raw lines are decoded.
type InputMode int

// Input modes.
const (
	ModeNormal InputMode = iota
	// ModeText treats every non-empty line as free text.
	ModeText
)

func (m InputMode) String() string {
	if m == ModeText {
		return "text"
	}
	return "normal"
}

// Def defines a player-invocable word.
type Def struct {
	// Name is the canonical word.
	Name string
	// Aliases are alternate spellings.
	Aliases []string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the word.
	Category string
	// Kind is the command the word decodes to.
	Kind Kind
}

// BuiltinDefs returns every built-in word.
func BuiltinDefs() []Def {
	return []Def{
		// Movement
		{Name: "north", Aliases: []string{"n"}, Help: "Move north", Category: CategoryMovement, Kind: KindMove},
		{Name: "south", Aliases: []string{"s"}, Help: "Move south", Category: CategoryMovement, Kind: KindMove},
		{Name: "east", Aliases: []string{"e"}, Help: "Move east", Category: CategoryMovement, Kind: KindMove},
		{Name: "west", Aliases: []string{"w"}, Help: "Move west", Category: CategoryMovement, Kind: KindMove},
		{Name: "northeast", Aliases: []string{"ne"}, Help: "Move northeast", Category: CategoryMovement, Kind: KindMove},
		{Name: "northwest", Aliases: []string{"nw"}, Help: "Move northwest", Category: CategoryMovement, Kind: KindMove},
		{Name: "southeast", Aliases: []string{"se"}, Help: "Move southeast", Category: CategoryMovement, Kind: KindMove},
		{Name: "southwest", Aliases: []string{"sw"}, Help: "Move southwest", Category: CategoryMovement, Kind: KindMove},

		// World
		{Name: "enter", Aliases: []string{">"}, Help: "Take the entrance you stand on", Category: CategoryWorld, Kind: KindEnter},
		{Name: "wait", Aliases: []string{"."}, Help: "Let a turn pass", Category: CategoryWorld, Kind: KindWait},

		// Menus
		{Name: "inventory", Aliases: []string{"inv", "i"}, Help: "Show backpack contents", Category: CategoryMenu, Kind: KindOpenItemMenu},
		{Name: "build", Aliases: []string{"b"}, Help: "Choose something to build", Category: CategoryMenu, Kind: KindOpenBuildMenu},
		{Name: "skills", Aliases: []string{"k", "cast"}, Help: "Use an active skill", Category: CategoryMenu, Kind: KindOpenSkillMenu},
		{Name: "find", Aliases: []string{"/"}, Help: "Search the backpack by name", Category: CategoryMenu, Kind: KindFind},

		// Dialog answers
		{Name: "select", Aliases: []string{"sel"}, Help: "Pick a menu entry (select <n>)", Category: CategoryDialog, Kind: KindSelect},
		{Name: "yes", Aliases: []string{"y"}, Help: "Confirm", Category: CategoryDialog, Kind: KindConfirm},
		{Name: "cancel", Aliases: []string{"no", "c"}, Help: "Close the current dialog", Category: CategoryDialog, Kind: KindCancel},

		// System
		{Name: "quit", Aliases: []string{"exit", "q"}, Help: "Leave the game", Category: CategorySystem, Kind: KindOpenExitWin},
		{Name: "help", Aliases: []string{"?"}, Help: "Show available commands", Category: CategorySystem, Kind: KindHelp},
	}
}

// Usage returns the name followed by any aliases, e.g. "quit, exit, q".
func (d *Def) Usage() string {
	return strings.Join(append([]string{d.Name}, d.Aliases...), ", ")
}
