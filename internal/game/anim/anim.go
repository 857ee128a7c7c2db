// Package anim queues frame-counted presentation effects and paces their
// playback one render cycle at a time.
package anim

import (
	"fmt"

	"github.com/cory-johannsen/ruins/internal/game/world"
)

// Kind selects how an animation is drawn.
type Kind string

// Animation kinds.
const (
	// Img plays an image sequence over the target tile.
	Img Kind = "img"
	// Shot moves a projectile from From to To.
	Shot Kind = "shot"
	// Tile flashes the target tile.
	Tile Kind = "tile"
)

// ParseKind validates an animation kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Img, Shot, Tile:
		return k, nil
	default:
		return "", fmt.Errorf("unknown animation kind %q", s)
	}
}

// Animation is one queued presentation effect.
type Animation struct {
	Kind   Kind
	Name   string
	Frames int
	From   world.Pos
	To     world.Pos
}

// Queue is a FIFO of pending animations.
type Queue struct {
	items []Animation
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends a to the back of the queue.
//
// Precondition: a.Frames >= 1.
func (q *Queue) Push(a Animation) {
	if a.Frames < 1 {
		panic(fmt.Sprintf("anim: Push called with %d frames for %q", a.Frames, a.Name))
	}
	q.items = append(q.items, a)
}

// Pop removes and returns the front of the queue.
//
// Postcondition: Returns (front, true), or (Animation{}, false) when empty.
func (q *Queue) Pop() (Animation, bool) {
	if len(q.items) == 0 {
		return Animation{}, false
	}
	a := q.items[0]
	q.items[0] = Animation{}
	q.items = q.items[1:]
	return a, true
}

// Len returns the number of pending animations.
func (q *Queue) Len() int {
	return len(q.items)
}

// Clear drops every pending animation.
func (q *Queue) Clear() {
	q.items = nil
}
