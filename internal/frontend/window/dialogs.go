package window

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/ruins/internal/frontend/text"
	"github.com/cory-johannsen/ruins/internal/game/command"
	"github.com/cory-johannsen/ruins/internal/game/content"
)

// YesNo asks a question and runs a callback on yes.
type YesNo struct {
	question string
	onYes    func(pa Actions) Result
}

// NewYesNo creates a YesNo dialog. Answering no closes it.
func NewYesNo(question string, onYes func(pa Actions) Result) *YesNo {
	return &YesNo{question: question, onYes: onYes}
}

// ProcessCommand implements Dialog. Select 1 answers yes and select 2 no.
func (d *YesNo) ProcessCommand(cmd command.Command, pa Actions) Result {
	switch {
	case cmd.Kind == command.KindConfirm, cmd.Kind == command.KindSelect && cmd.Index == 0:
		return d.onYes(pa)
	case cmd.Kind == command.KindCancel, cmd.Kind == command.KindSelect && cmd.Index == 1:
		return Close
	}
	return Continue
}

// Mode implements Dialog.
func (d *YesNo) Mode() command.InputMode { return command.ModeNormal }

// Render implements Dialog.
func (d *YesNo) Render(c *text.Canvas) {
	c.Line(c.Paint(text.Bold, d.question))
	c.Line("  1) yes  2) no")
}

// Exit confirms leaving the game.
type Exit struct{}

// NewExit creates an Exit dialog.
func NewExit() *Exit { return &Exit{} }

// ProcessCommand implements Dialog.
func (d *Exit) ProcessCommand(cmd command.Command, _ Actions) Result {
	switch {
	case cmd.Kind == command.KindConfirm, cmd.Kind == command.KindSelect && cmd.Index == 0:
		return Quit
	case cmd.Kind == command.KindCancel, cmd.Kind == command.KindSelect && cmd.Index == 1:
		return Close
	}
	return Continue
}

// Mode implements Dialog.
func (d *Exit) Mode() command.InputMode { return command.ModeNormal }

// Render implements Dialog.
func (d *Exit) Render(c *text.Canvas) {
	c.Line(c.Paint(text.Bold, "Quit the game?"))
	c.Line("  1) quit  2) cancel")
}

// TextInputDialog takes one line of free text.
type TextInputDialog struct {
	label    string
	onSubmit func(s string, pa Actions) Result
}

// NewTextInputDialog creates a TextInputDialog calling onSubmit with the entered text.
func NewTextInputDialog(label string, onSubmit func(s string, pa Actions) Result) *TextInputDialog {
	return &TextInputDialog{label: label, onSubmit: onSubmit}
}

// ProcessCommand implements Dialog.
func (d *TextInputDialog) ProcessCommand(cmd command.Command, pa Actions) Result {
	switch cmd.Kind {
	case command.KindTextInput:
		return d.onSubmit(cmd.Text, pa)
	case command.KindCancel:
		return Close
	}
	return Continue
}

// Mode implements Dialog.
func (d *TextInputDialog) Mode() command.InputMode { return command.ModeText }

// Render implements Dialog.
func (d *TextInputDialog) Render(c *text.Canvas) {
	c.Line(c.Paint(text.Bold, d.label))
}

// ItemMenu lists the backpack. Selecting an entry describes it.
type ItemMenu struct {
	title   string
	lines   []string
	indices []int
}

// NewItemMenu lists the player's items whose name contains filter,
// ignoring case. An empty filter lists everything.
func NewItemMenu(pa Actions, filter string) *ItemMenu {
	m := &ItemMenu{title: "Backpack"}
	if filter != "" {
		m.title = fmt.Sprintf("Backpack matching %q", filter)
	}
	needle := strings.ToLower(filter)
	for i, it := range pa.Items() {
		if !strings.Contains(strings.ToLower(it.Name), needle) {
			continue
		}
		m.lines = append(m.lines, fmt.Sprintf("%s x%d", it.Name, it.N))
		m.indices = append(m.indices, i)
	}
	return m
}

// Len returns the number of listed entries.
func (m *ItemMenu) Len() int { return len(m.lines) }

// ProcessCommand implements Dialog.
func (m *ItemMenu) ProcessCommand(cmd command.Command, pa Actions) Result {
	switch cmd.Kind {
	case command.KindSelect:
		if cmd.Index < len(m.indices) {
			pa.InspectItem(m.indices[cmd.Index])
		}
	case command.KindCancel:
		return Close
	}
	return Continue
}

// Mode implements Dialog.
func (m *ItemMenu) Mode() command.InputMode { return command.ModeNormal }

// Render implements Dialog.
func (m *ItemMenu) Render(c *text.Canvas) {
	renderList(c, m.title, m.lines)
}

// BuildMenu picks a build target, then the adjacent tile to build it on.
type BuildMenu struct {
	choices []content.BuildChoice
	chosen  int
}

// NewBuildMenu lists what the player's construction skill allows.
func NewBuildMenu(pa Actions) *BuildMenu {
	return &BuildMenu{choices: pa.Buildable(), chosen: -1}
}

// ProcessCommand implements Dialog. Cancel while choosing a direction
// returns to the list.
func (m *BuildMenu) ProcessCommand(cmd command.Command, pa Actions) Result {
	if m.chosen < 0 {
		switch cmd.Kind {
		case command.KindSelect:
			if cmd.Index < len(m.choices) {
				m.chosen = cmd.Index
			}
		case command.KindCancel:
			return Close
		}
		return Continue
	}
	switch cmd.Kind {
	case command.KindMove:
		if pa.Build(cmd.Dir, m.choices[m.chosen].Obj) {
			return CloseAll
		}
	case command.KindCancel:
		m.chosen = -1
	}
	return Continue
}

// Mode implements Dialog.
func (m *BuildMenu) Mode() command.InputMode { return command.ModeNormal }

// Render implements Dialog.
func (m *BuildMenu) Render(c *text.Canvas) {
	if m.chosen >= 0 {
		c.Line(c.Paint(text.Bold, fmt.Sprintf("Build %s: which direction?", m.choices[m.chosen].Obj)))
		return
	}
	lines := make([]string, len(m.choices))
	for i, ch := range m.choices {
		lines[i] = ch.Obj.String()
	}
	renderList(c, "Build", lines)
}

// SkillMenu uses an active skill. Heals target the player; every other
// effect targets the nearest visible hostile.
type SkillMenu struct {
	skills []*content.ActiveSkill
	note   string
}

// NewSkillMenu lists the skills the player can currently afford.
func NewSkillMenu(pa Actions) *SkillMenu {
	return &SkillMenu{skills: pa.UsableSkills()}
}

// ProcessCommand implements Dialog.
func (m *SkillMenu) ProcessCommand(cmd command.Command, pa Actions) Result {
	switch cmd.Kind {
	case command.KindSelect:
		if cmd.Index >= len(m.skills) {
			return Continue
		}
		skill := m.skills[cmd.Index]
		target := pa.Player().ID
		if skill.Effect.Kind != content.Heal {
			foe, ok := pa.NearestVisibleHostile()
			if !ok {
				m.note = "No target in sight."
				return Continue
			}
			target = foe.ID
		}
		if pa.UseSkill(skill.ID, target) {
			return CloseAll
		}
	case command.KindCancel:
		return Close
	}
	return Continue
}

// Mode implements Dialog.
func (m *SkillMenu) Mode() command.InputMode { return command.ModeNormal }

// Render implements Dialog.
func (m *SkillMenu) Render(c *text.Canvas) {
	lines := make([]string, len(m.skills))
	for i, s := range m.skills {
		lines[i] = s.ID
	}
	renderList(c, "Skills", lines)
	if m.note != "" {
		c.Line(c.Paint(text.Yellow, m.note))
	}
}

// TextWindow shows read-only text and closes on the next command.
type TextWindow struct {
	title string
	lines []string
}

// NewTextWindow creates a TextWindow.
func NewTextWindow(title string, lines []string) *TextWindow {
	return &TextWindow{title: title, lines: lines}
}

// ProcessCommand implements Dialog.
func (w *TextWindow) ProcessCommand(command.Command, Actions) Result { return Close }

// Mode implements Dialog.
func (w *TextWindow) Mode() command.InputMode { return command.ModeNormal }

// Render implements Dialog.
func (w *TextWindow) Render(c *text.Canvas) {
	c.Line(c.Paint(text.Bold, w.title))
	for _, l := range w.lines {
		c.Line("  " + l)
	}
}

func renderList(c *text.Canvas, title string, lines []string) {
	c.Line(c.Paint(text.Bold, title))
	if len(lines) == 0 {
		c.Line("  (nothing)")
		return
	}
	for i, l := range lines {
		c.Linef("  %d) %s", i+1, l)
	}
}
