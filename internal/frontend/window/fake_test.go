package window_test

import (
	"fmt"

	"github.com/cory-johannsen/ruins/internal/frontend/text"
	"github.com/cory-johannsen/ruins/internal/frontend/window"
	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/command"
	"github.com/cory-johannsen/ruins/internal/game/content"
	"github.com/cory-johannsen/ruins/internal/game/engine"
	"github.com/cory-johannsen/ruins/internal/game/world"
)

// fakeActions records every player action it is asked to perform.
type fakeActions struct {
	calls     []string
	player    *character.Character
	hostile   *character.Character
	entrance  bool
	items     []engine.ItemLine
	buildable []content.BuildChoice
	skills    []*content.ActiveSkill
	buildOK   bool
	useOK     bool
}

func newFakeActions() *fakeActions {
	return &fakeActions{player: &character.Character{ID: "hero", Name: "Hero"}}
}

func (f *fakeActions) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeActions) Player() *character.Character { return f.player }

func (f *fakeActions) TryMove(dir world.Direction) bool {
	f.record("move %s", dir)
	return true
}

func (f *fakeActions) Wait() { f.record("wait") }

func (f *fakeActions) OnMapEntrance() bool { return f.entrance }

func (f *fakeActions) MoveNextFloor() bool {
	f.record("descend")
	return true
}

func (f *fakeActions) UseSkill(skillID, targetID string) bool {
	f.record("use %s on %s", skillID, targetID)
	return f.useOK
}

func (f *fakeActions) NearestVisibleHostile() (*character.Character, bool) {
	return f.hostile, f.hostile != nil
}

func (f *fakeActions) Build(dir world.Direction, obj content.BuildObj) bool {
	f.record("build %s %s", obj, dir)
	return f.buildOK
}

func (f *fakeActions) Buildable() []content.BuildChoice { return f.buildable }

func (f *fakeActions) UsableSkills() []*content.ActiveSkill { return f.skills }

func (f *fakeActions) Items() []engine.ItemLine { return f.items }

func (f *fakeActions) InspectItem(index int) bool {
	f.record("inspect %d", index)
	return index < len(f.items)
}

var _ window.Actions = (*fakeActions)(nil)

// stubDialog returns a fixed result and counts the commands it sees.
type stubDialog struct {
	result window.Result
	mode   command.InputMode
	seen   int
	onCmd  func()
}

func (d *stubDialog) ProcessCommand(command.Command, window.Actions) window.Result {
	d.seen++
	if d.onCmd != nil {
		d.onCmd()
	}
	return d.result
}

func (d *stubDialog) Mode() command.InputMode { return d.mode }

func (d *stubDialog) Render(c *text.Canvas) { c.Line("stub") }

// recordingHandler records the commands that reach the main window.
type recordingHandler struct {
	kinds []command.Kind
	quit  bool
}

func (h *recordingHandler) Handle(cmd command.Command, _ window.Actions, _ *window.Router) bool {
	h.kinds = append(h.kinds, cmd.Kind)
	return h.quit
}

// fakeInput counts Start and Stop transitions.
type fakeInput struct {
	active        bool
	starts, stops int
}

func (i *fakeInput) Start()       { i.active = true; i.starts++ }
func (i *fakeInput) Stop()        { i.active = false; i.stops++ }
func (i *fakeInput) Active() bool { return i.active }
