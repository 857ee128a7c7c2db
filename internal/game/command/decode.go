package command

import (
	"strconv"
	"strings"

	"github.com/cory-johannsen/ruins/internal/game/world"
)

// Decoder turns raw lines into Commands.
type Decoder struct {
	reg *Registry
}

// NewDecoder creates a Decoder over reg.
func NewDecoder(reg *Registry) *Decoder {
	return &Decoder{reg: reg}
}

// Registry returns the word registry.
func (d *Decoder) Registry() *Registry { return d.reg }

// Decode interprets line in mode. In ModeText every non-blank line is a
// KindTextInput carrying the trimmed line and a blank line cancels. In
// ModeNormal the first word, in any case, names the command and a bare
// positive number selects that entry.
//
// Postcondition: Returns ok == false for blank or unrecognised input in ModeNormal.
func (d *Decoder) Decode(line string, mode InputMode) (Command, bool) {
	if mode == ModeText {
		text := strings.TrimSpace(line)
		if text == "" {
			return Command{Kind: KindCancel}, true
		}
		return Command{Kind: KindTextInput, Text: text}, true
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return Command{}, false
	}
	verb, args := strings.ToLower(words[0]), words[1:]
	if n, ok := parseChoice(verb); ok && len(args) == 0 {
		return Command{Kind: KindSelect, Index: n}, true
	}
	def, ok := d.reg.Resolve(verb)
	if !ok {
		return Command{}, false
	}
	switch def.Kind {
	case KindMove:
		dir, ok := world.ParseDirection(def.Name)
		if !ok {
			return Command{}, false
		}
		return Command{Kind: KindMove, Dir: dir}, true
	case KindSelect:
		if len(args) != 1 {
			return Command{}, false
		}
		n, ok := parseChoice(args[0])
		if !ok {
			return Command{}, false
		}
		return Command{Kind: KindSelect, Index: n}, true
	default:
		return Command{Kind: def.Kind}, true
	}
}

// parseChoice converts a 1-based menu number to a 0-based index.
func parseChoice(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}
