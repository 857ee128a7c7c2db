package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Limits accepted by Parse.
const (
	MaxCount = 100
	MaxSides = 1000
)

// Expression is a parsed "NdS+M" roll: Count dice of Sides faces plus a
// flat Modifier.
type Expression struct {
	Text     string
	Count    int
	Sides    int
	Modifier int
}

// Parse reads expressions of the form "d20", "2d6", "2d6+3" or "3d4-1".
// Case and spaces are ignored.
//
// Postcondition: on success 1 <= Count <= MaxCount and 2 <= Sides <= MaxSides.
func Parse(text string) (Expression, error) {
	s := strings.ToLower(strings.ReplaceAll(text, " ", ""))
	count, rest, ok := strings.Cut(s, "d")
	if !ok {
		return Expression{}, fmt.Errorf("dice: %q has no 'd'", text)
	}
	e := Expression{Text: text, Count: 1}
	if count != "" {
		n, err := strconv.Atoi(count)
		if err != nil || n < 1 || n > MaxCount {
			return Expression{}, fmt.Errorf("dice: %q: count must be 1..%d", text, MaxCount)
		}
		e.Count = n
	}

	sides, mod := rest, ""
	if i := strings.IndexAny(rest, "+-"); i >= 0 {
		sides, mod = rest[:i], rest[i:]
	}
	n, err := strconv.Atoi(sides)
	if err != nil || n < 2 || n > MaxSides {
		return Expression{}, fmt.Errorf("dice: %q: sides must be 2..%d", text, MaxSides)
	}
	e.Sides = n
	if mod != "" {
		m, err := strconv.Atoi(mod)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: %q: bad modifier %q", text, mod)
		}
		e.Modifier = m
	}
	return e, nil
}

// Result is one evaluated Expression.
type Result struct {
	Text     string
	Dice     []int
	Modifier int
}

// Sum returns the dice alone.
func (r Result) Sum() int {
	n := 0
	for _, d := range r.Dice {
		n += d
	}
	return n
}

// Total returns Sum plus the modifier.
func (r Result) Total() int {
	return r.Sum() + r.Modifier
}

// String renders r as "2d6+3: [4 5] = 12".
func (r Result) String() string {
	return fmt.Sprintf("%s: %v = %d", r.Text, r.Dice, r.Total())
}

// Roll evaluates e with src.
//
// Postcondition: len(Dice) == e.Count and each die is in [1, e.Sides].
func (e Expression) Roll(src Source) Result {
	r := Result{Text: e.Text, Dice: make([]int, e.Count), Modifier: e.Modifier}
	for i := range r.Dice {
		r.Dice[i] = 1 + src.Intn(e.Sides)
	}
	return r
}
