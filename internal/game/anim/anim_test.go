package anim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/ruins/internal/game/anim"
)

func TestQueue_FIFO(t *testing.T) {
	q := anim.NewQueue()
	q.Push(anim.Animation{Name: "a", Frames: 1})
	q.Push(anim.Animation{Name: "b", Frames: 2})
	require.Equal(t, 2, q.Len())

	a, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", a.Name)
	b, _ := q.Pop()
	assert.Equal(t, "b", b.Name)
	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestQueue_PushPanicsOnZeroFrames(t *testing.T) {
	assert.Panics(t, func() { anim.NewQueue().Push(anim.Animation{Name: "x"}) })
}

func TestParseKind(t *testing.T) {
	k, err := anim.ParseKind("shot")
	require.NoError(t, err)
	assert.Equal(t, anim.Shot, k)
	_, err = anim.ParseKind("sparkle")
	assert.Error(t, err)
}

func TestSequencer_PlaysEachAnimationForItsFrames(t *testing.T) {
	q := anim.NewQueue()
	q.Push(anim.Animation{Name: "a", Frames: 2})
	q.Push(anim.Animation{Name: "b", Frames: 1})
	s := anim.NewSequencer(q.Pop, 1)

	s.Start()
	require.True(t, s.InFlight())

	var drawn []string
	for i := 0; i < 5; i++ {
		a, frame, ok := s.Tick()
		if !ok {
			drawn = append(drawn, "-")
			continue
		}
		drawn = append(drawn, a.Name+string(rune('0'+frame)))
	}
	assert.Equal(t, []string{"a0", "a1", "b0", "-", "-"}, drawn)
	assert.False(t, s.InFlight())
}

func TestSequencer_TickWithoutAnimationDoesNotCount(t *testing.T) {
	q := anim.NewQueue()
	s := anim.NewSequencer(q.Pop, 1)
	s.Start()
	for i := 0; i < 3; i++ {
		_, _, ok := s.Tick()
		assert.False(t, ok)
	}
	q.Push(anim.Animation{Name: "late", Frames: 1})
	s.Start()
	_, frame, ok := s.Tick()
	require.True(t, ok)
	assert.Equal(t, 0, frame, "counter must not have advanced while idle")
}

func TestSequencer_StartPanicsWhileInFlight(t *testing.T) {
	q := anim.NewQueue()
	q.Push(anim.Animation{Name: "a", Frames: 3})
	s := anim.NewSequencer(q.Pop, 1)
	s.Start()
	assert.Panics(t, s.Start)
}

func TestSequencer_FramesPerTickScales(t *testing.T) {
	q := anim.NewQueue()
	q.Push(anim.Animation{Name: "a", Frames: 2})
	s := anim.NewSequencer(q.Pop, 3)
	s.Start()
	var frames []int
	for s.InFlight() {
		_, f, ok := s.Tick()
		if ok {
			frames = append(frames, f)
		}
	}
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, frames)
}

func TestPropertySequencerPlaysAllInOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		frames := rapid.SliceOfN(rapid.IntRange(1, 5), 0, 6).Draw(t, "frames")
		q := anim.NewQueue()
		total := 0
		for i, f := range frames {
			q.Push(anim.Animation{Name: string(rune('a' + i)), Frames: f})
			total += f
		}
		s := anim.NewSequencer(q.Pop, 1)
		s.Start()
		var names []string
		ticks := 0
		for s.InFlight() {
			a, frame, ok := s.Tick()
			if !ok {
				break
			}
			ticks++
			if frame == 0 {
				names = append(names, a.Name)
			}
			if frame >= a.Frames {
				t.Fatalf("frame %d beyond %d for %s", frame, a.Frames, a.Name)
			}
		}
		if ticks != total {
			t.Fatalf("drew %d frames, want %d", ticks, total)
		}
		if len(names) != len(frames) {
			t.Fatalf("played %d animations, want %d", len(names), len(frames))
		}
		for i, n := range names {
			if n != string(rune('a'+i)) {
				t.Fatalf("out of order: %v", names)
			}
		}
	})
}
