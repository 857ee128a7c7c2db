package gamelog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/ruins/internal/game/gamelog"
)

func TestLog_EmitAndEntries(t *testing.T) {
	l := gamelog.NewLog(4)
	l.Emit("asleep", gamelog.Chara("Rin"))
	l.Warn("strange-noise")

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "asleep", entries[0].ID)
	assert.Equal(t, gamelog.Info, entries[0].Level)
	v, ok := entries[0].Arg("chara")
	require.True(t, ok)
	assert.Equal(t, "Rin", v)
	assert.Equal(t, gamelog.Warn, entries[1].Level)
}

func TestLog_EvictsOldest(t *testing.T) {
	l := gamelog.NewLog(2)
	l.Emit("a")
	l.Emit("b")
	l.Emit("c")
	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].ID)
	assert.Equal(t, "c", entries[1].ID)
	assert.Equal(t, []gamelog.Entry{entries[1]}, l.Last(1))
}

func TestLog_Clear(t *testing.T) {
	l := gamelog.NewLog(2)
	l.Emit("a")
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Entries())
}

func TestNewLog_PanicsOnZeroCapacity(t *testing.T) {
	assert.Panics(t, func() { gamelog.NewLog(0) })
}

func TestPropertyLogKeepsNewestInOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 10).Draw(t, "capacity")
		n := rapid.IntRange(0, 30).Draw(t, "n")
		l := gamelog.NewLog(capacity)
		for i := 0; i < n; i++ {
			l.Emit("m", gamelog.N(i))
		}
		entries := l.Entries()
		if len(entries) != min(n, capacity) {
			t.Fatalf("kept %d entries, want %d", len(entries), min(n, capacity))
		}
		for i, e := range entries {
			v, _ := e.Arg("n")
			if v.(int) != n-len(entries)+i {
				t.Fatalf("entry %d has n=%v", i, v)
			}
		}
	})
}
