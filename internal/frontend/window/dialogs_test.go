package window_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/ruins/internal/frontend/text"
	"github.com/cory-johannsen/ruins/internal/frontend/window"
	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/command"
	"github.com/cory-johannsen/ruins/internal/game/content"
	"github.com/cory-johannsen/ruins/internal/game/engine"
	"github.com/cory-johannsen/ruins/internal/game/world"
)

func sel(i int) command.Command { return command.Command{Kind: command.KindSelect, Index: i} }

var (
	confirm = command.Command{Kind: command.KindConfirm}
	cancel  = command.Command{Kind: command.KindCancel}
)

func render(d window.Dialog) string {
	c := text.NewCanvas(&bytes.Buffer{}, false)
	d.Render(c)
	return c.String()
}

func TestExit(t *testing.T) {
	pa := newFakeActions()
	d := window.NewExit()
	assert.Equal(t, window.Quit, d.ProcessCommand(confirm, pa))
	assert.Equal(t, window.Quit, d.ProcessCommand(sel(0), pa))
	assert.Equal(t, window.Close, d.ProcessCommand(cancel, pa))
	assert.Equal(t, window.Close, d.ProcessCommand(sel(1), pa))
	assert.Equal(t, window.Continue, d.ProcessCommand(command.Command{Kind: command.KindWait}, pa))
	assert.Contains(t, render(d), "Quit the game?")
}

func TestYesNo(t *testing.T) {
	pa := newFakeActions()
	yes := 0
	d := window.NewYesNo("Sure?", func(window.Actions) window.Result {
		yes++
		return window.CloseAll
	})
	assert.Equal(t, window.CloseAll, d.ProcessCommand(confirm, pa))
	assert.Equal(t, window.CloseAll, d.ProcessCommand(sel(0), pa))
	assert.Equal(t, 2, yes)
	assert.Equal(t, window.Close, d.ProcessCommand(sel(1), pa))
	assert.Equal(t, window.Continue, d.ProcessCommand(sel(4), pa))
	assert.Equal(t, 2, yes)
	assert.Equal(t, command.ModeNormal, d.Mode())
}

func TestTextInputDialog(t *testing.T) {
	var got string
	d := window.NewTextInputDialog("Find item:", func(s string, _ window.Actions) window.Result {
		got = s
		return window.Close
	})
	assert.Equal(t, command.ModeText, d.Mode())
	assert.Equal(t, window.Close, d.ProcessCommand(command.Command{Kind: command.KindTextInput, Text: "tim"}, newFakeActions()))
	assert.Equal(t, "tim", got)
	assert.Equal(t, window.Close, d.ProcessCommand(cancel, newFakeActions()))
	assert.Equal(t, "Find item:\n", render(d))
}

func TestItemMenu_FilterAndInspect(t *testing.T) {
	pa := newFakeActions()
	pa.items = []engine.ItemLine{{Name: "Timber", N: 4}, {Name: "Rope", N: 1}, {Name: "Timber pole", N: 2}}

	all := window.NewItemMenu(pa, "")
	assert.Equal(t, 3, all.Len())
	assert.Equal(t, "Backpack\n  1) Timber x4\n  2) Rope x1\n  3) Timber pole x2\n", render(all))

	m := window.NewItemMenu(pa, "POLE")
	require.Equal(t, 1, m.Len())
	assert.Equal(t, window.Continue, m.ProcessCommand(sel(0), pa))
	assert.Equal(t, window.Continue, m.ProcessCommand(sel(5), pa))
	assert.Equal(t, []string{"inspect 2"}, pa.calls, "selection maps back to the backpack index")
	assert.Equal(t, window.Close, m.ProcessCommand(cancel, pa))
}

func TestItemMenu_Empty(t *testing.T) {
	m := window.NewItemMenu(newFakeActions(), "sword")
	assert.Contains(t, render(m), "(nothing)")
}

func TestBuildMenu_TwoStages(t *testing.T) {
	pa := newFakeActions()
	wall := content.BuildObj{Kind: content.BuildWall, ID: "stone-wall"}
	pa.buildable = []content.BuildChoice{
		{Obj: content.BuildObj{Kind: content.BuildTile, ID: "plank-floor"}},
		{Obj: wall, SkillLevel: 1},
	}
	m := window.NewBuildMenu(pa)
	assert.Contains(t, render(m), "2) wall:stone-wall")

	north := command.Command{Kind: command.KindMove, Dir: world.North}
	assert.Equal(t, window.Continue, m.ProcessCommand(north, pa), "no object chosen yet")
	assert.Empty(t, pa.calls)

	assert.Equal(t, window.Continue, m.ProcessCommand(sel(1), pa))
	assert.Contains(t, render(m), "which direction?")

	assert.Equal(t, window.Continue, m.ProcessCommand(north, pa), "failed build keeps the menu")
	pa.buildOK = true
	assert.Equal(t, window.CloseAll, m.ProcessCommand(north, pa))
	assert.Equal(t, []string{"build wall:stone-wall north", "build wall:stone-wall north"}, pa.calls)
}

func TestBuildMenu_CancelStepsBack(t *testing.T) {
	pa := newFakeActions()
	pa.buildable = []content.BuildChoice{{Obj: content.BuildObj{Kind: content.BuildTile, ID: "plank-floor"}}}
	m := window.NewBuildMenu(pa)

	m.ProcessCommand(sel(0), pa)
	assert.Equal(t, window.Continue, m.ProcessCommand(cancel, pa))
	assert.Contains(t, render(m), "1) tile:plank-floor")
	assert.Equal(t, window.Close, m.ProcessCommand(cancel, pa))
}

func TestSkillMenu_Targets(t *testing.T) {
	pa := newFakeActions()
	pa.skills = []*content.ActiveSkill{
		{ID: "bite", Effect: content.Effect{Kind: content.Damage}},
		{ID: "mend", Effect: content.Effect{Kind: content.Heal}},
	}
	m := window.NewSkillMenu(pa)

	assert.Equal(t, window.Continue, m.ProcessCommand(sel(0), pa))
	assert.Contains(t, render(m), "No target in sight.")
	assert.Empty(t, pa.calls)

	pa.hostile = &character.Character{ID: "rat"}
	pa.useOK = true
	assert.Equal(t, window.CloseAll, m.ProcessCommand(sel(0), pa))
	assert.Equal(t, window.CloseAll, m.ProcessCommand(sel(1), pa))
	assert.Equal(t, []string{"use bite on rat", "use mend on hero"}, pa.calls)

	pa.useOK = false
	assert.Equal(t, window.Continue, m.ProcessCommand(sel(0), pa))
	assert.Equal(t, window.Close, m.ProcessCommand(cancel, pa))
}

func TestTextWindow_ClosesOnAnyCommand(t *testing.T) {
	w := window.NewTextWindow("Commands", []string{"north", "south"})
	assert.Equal(t, "Commands\n  north\n  south\n", render(w))
	assert.Equal(t, window.Close, w.ProcessCommand(command.Command{Kind: command.KindWait}, newFakeActions()))
}

func TestDefaultHandler(t *testing.T) {
	h := window.NewDefaultHandler(command.DefaultRegistry(), zap.NewNop())
	pa := newFakeActions()
	r := window.NewRouter(h, nil, zap.NewNop())

	r.Route(command.Command{Kind: command.KindMove, Dir: world.East}, pa)
	r.Route(command.Command{Kind: command.KindWait}, pa)
	assert.Equal(t, []string{"move east", "wait"}, pa.calls)

	r.Route(command.Command{Kind: command.KindEnter}, pa)
	assert.Zero(t, r.Len(), "enter off an entrance does nothing")

	pa.entrance = true
	r.Route(command.Command{Kind: command.KindEnter}, pa)
	require.Equal(t, 1, r.Len())
	r.Route(confirm, pa)
	assert.Zero(t, r.Len())
	assert.Equal(t, "descend", pa.calls[len(pa.calls)-1])

	for kind, want := range map[command.Kind]window.Dialog{
		command.KindOpenExitWin:   &window.Exit{},
		command.KindOpenItemMenu:  &window.ItemMenu{},
		command.KindOpenBuildMenu: &window.BuildMenu{},
		command.KindOpenSkillMenu: &window.SkillMenu{},
		command.KindHelp:          &window.TextWindow{},
		command.KindFind:          &window.TextInputDialog{},
	} {
		r := window.NewRouter(h, nil, zap.NewNop())
		assert.False(t, r.Route(command.Command{Kind: kind}, pa))
		top, ok := r.Top()
		require.True(t, ok, kind)
		assert.IsType(t, want, top, kind)
	}
}

func TestDefaultHandler_FindReplacesPromptWithResults(t *testing.T) {
	pa := newFakeActions()
	pa.items = []engine.ItemLine{{Name: "Timber", N: 4}, {Name: "Rope", N: 1}}
	r := window.NewRouter(window.NewDefaultHandler(command.DefaultRegistry(), zap.NewNop()), nil, zap.NewNop())

	r.Route(command.Command{Kind: command.KindFind}, pa)
	assert.Equal(t, command.ModeText, r.Mode())
	r.Route(command.Command{Kind: command.KindTextInput, Text: "rope"}, pa)

	require.Equal(t, 1, r.Len())
	top, _ := r.Top()
	menu, ok := top.(*window.ItemMenu)
	require.True(t, ok)
	assert.Equal(t, 1, menu.Len())
	assert.Equal(t, command.ModeNormal, r.Mode())
}

func TestDefaultHandler_HelpListsWords(t *testing.T) {
	r := window.NewRouter(window.NewDefaultHandler(command.DefaultRegistry(), zap.NewNop()), nil, zap.NewNop())
	r.Route(command.Command{Kind: command.KindHelp}, newFakeActions())
	top, _ := r.Top()
	out := render(top)
	assert.Contains(t, out, "Commands")
	assert.Contains(t, out, "Search the backpack by name")
}
