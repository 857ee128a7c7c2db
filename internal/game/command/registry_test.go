package command_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/ruins/internal/game/command"
)

func TestDefaultRegistry_Resolve(t *testing.T) {
	r := command.DefaultRegistry()
	cases := map[string]command.Kind{
		"north": command.KindMove,
		"sw":    command.KindMove,
		"i":     command.KindOpenItemMenu,
		"inv":   command.KindOpenItemMenu,
		"b":     command.KindOpenBuildMenu,
		"cast":  command.KindOpenSkillMenu,
		"/":     command.KindFind,
		">":     command.KindEnter,
		".":     command.KindWait,
		"y":     command.KindConfirm,
		"no":    command.KindCancel,
		"sel":   command.KindSelect,
		"exit":  command.KindOpenExitWin,
		"?":     command.KindHelp,
	}
	for word, kind := range cases {
		d, ok := r.Resolve(word)
		require.True(t, ok, "word %q", word)
		assert.Equal(t, kind, d.Kind, "word %q", word)
	}
	_, ok := r.Resolve("teleport")
	assert.False(t, ok)
}

func TestDefaultRegistry_EveryDirection(t *testing.T) {
	r := command.DefaultRegistry()
	n := 0
	for _, d := range r.Defs() {
		if d.Kind == command.KindMove {
			n++
			assert.Equal(t, command.CategoryMovement, d.Category)
		}
	}
	assert.Equal(t, 8, n)
}

func TestNewRegistry_ReportsEveryCollision(t *testing.T) {
	_, err := command.NewRegistry([]command.Def{
		{Name: "wait", Aliases: []string{"w"}},
		{Name: "west", Aliases: []string{"w"}},
		{Name: "Wait"},
		{Name: "rest", Aliases: []string{""}},
	})
	require.Error(t, err)
	for _, want := range []string{`word "w"`, `word "wait"`, "empty word"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestRegistry_DefsKeepOrder(t *testing.T) {
	r, err := command.NewRegistry([]command.Def{{Name: "zap"}, {Name: "apple"}})
	require.NoError(t, err)
	defs := r.Defs()
	require.Len(t, defs, 2)
	assert.Equal(t, "zap", defs[0].Name)
	defs[0] = nil
	assert.NotNil(t, r.Defs()[0], "Defs returns a copy")
}

func TestRegistry_HelpLines(t *testing.T) {
	lines := command.DefaultRegistry().HelpLines()
	require.NotEmpty(t, lines)
	assert.Equal(t, command.CategoryMovement+":", lines[0])
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[1]), "north, n"))

	var headings []string
	for _, l := range lines {
		if !strings.HasPrefix(l, " ") {
			headings = append(headings, l)
		}
	}
	assert.Equal(t, []string{"movement:", "world:", "menu:", "dialog:", "system:"}, headings)
	assert.Contains(t, strings.Join(lines, "\n"), "quit, exit, q")
}

func TestPropertyEveryWordResolvesToItsDef(t *testing.T) {
	r := command.DefaultRegistry()
	defs := r.Defs()
	rapid.Check(t, func(rt *rapid.T) {
		d := defs[rapid.IntRange(0, len(defs)-1).Draw(rt, "def")]
		words := append([]string{d.Name}, d.Aliases...)
		w := words[rapid.IntRange(0, len(words)-1).Draw(rt, "word")]
		got, ok := r.Resolve(w)
		if !ok || got != d {
			rt.Fatalf("%q resolved to %v, want %q", w, got, d.Name)
		}
	})
}
