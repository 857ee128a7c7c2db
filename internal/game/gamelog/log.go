// Package gamelog records player-facing log entries keyed by message id and
// renders them through per-locale catalogs.
package gamelog

// Level is the severity of a player-facing entry.
type Level int

// Entry levels.
const (
	Info Level = iota
	Warn
)

// Arg is one named message argument.
type Arg struct {
	Key   string
	Value any
}

// Chara names a character.
func Chara(name string) Arg { return Arg{Key: "chara", Value: name} }

// Target names the target character.
func Target(name string) Arg { return Arg{Key: "target", Value: name} }

// Item names an item.
func Item(name string) Arg { return Arg{Key: "item", Value: name} }

// N is a quantity.
func N(n int) Arg { return Arg{Key: "n", Value: n} }

// Skill names an active skill.
func Skill(id string) Arg { return Arg{Key: "active_skill", Value: id} }

// Damage is an amount of damage.
func Damage(n int) Arg { return Arg{Key: "damage", Value: n} }

// Status names a status kind.
func Status(kind string) Arg { return Arg{Key: "status", Value: kind} }

// Entry is one emitted message.
type Entry struct {
	ID    string
	Level Level
	Args  []Arg
}

// Arg returns the value of the named argument.
func (e Entry) Arg(key string) (any, bool) {
	for _, a := range e.Args {
		if a.Key == key {
			return a.Value, true
		}
	}
	return nil, false
}

// Sink receives player-facing log entries.
type Sink interface {
	Emit(id string, args ...Arg)
}

// Log is a bounded buffer of the most recent entries.
// It is not safe for concurrent use.
type Log struct {
	entries []Entry
	start   int
	size    int
}

// NewLog creates a Log keeping the last capacity entries.
//
// Precondition: capacity >= 1.
func NewLog(capacity int) *Log {
	if capacity < 1 {
		panic("gamelog: NewLog called with capacity < 1")
	}
	return &Log{entries: make([]Entry, capacity)}
}

// Emit records an info entry.
func (l *Log) Emit(id string, args ...Arg) {
	l.Append(Entry{ID: id, Level: Info, Args: args})
}

// Warn records a warning entry.
func (l *Log) Warn(id string, args ...Arg) {
	l.Append(Entry{ID: id, Level: Warn, Args: args})
}

// Append records e, evicting the oldest entry when full.
func (l *Log) Append(e Entry) {
	idx := (l.start + l.size) % len(l.entries)
	l.entries[idx] = e
	if l.size < len(l.entries) {
		l.size++
		return
	}
	l.start = (l.start + 1) % len(l.entries)
}

// Entries returns the retained entries, oldest first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, l.size)
	for i := range out {
		out[i] = l.entries[(l.start+i)%len(l.entries)]
	}
	return out
}

// Last returns up to n of the newest entries, oldest first.
func (l *Log) Last(n int) []Entry {
	all := l.Entries()
	if n < len(all) {
		return all[len(all)-n:]
	}
	return all
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	return l.size
}

// Clear drops every entry.
func (l *Log) Clear() {
	clear(l.entries)
	l.start, l.size = 0, 0
}
