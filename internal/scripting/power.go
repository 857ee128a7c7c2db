package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/ruins/internal/game/character"
)

// Info snapshots c for Lua.
func Info(c *character.Character) *CharaInfo {
	info := &CharaInfo{
		ID:     c.ID,
		Name:   c.Name,
		HP:     c.HP.Cur,
		MaxHP:  c.HP.Max,
		SP:     c.SP.Cur,
		MP:     c.MP.Cur,
		X:      c.Pos.X,
		Y:      c.Pos.Y,
		Attrs:  make(map[string]int, 7),
		Skills: make(map[string]int, len(c.Skills)),
	}
	for _, k := range []character.AttrKind{character.Str, character.Vit, character.Dex, character.Int, character.Wil, character.Cha, character.Spd} {
		info.Attrs[string(k)] = c.Attr(k)
	}
	for k, v := range c.Skills {
		info.Skills[string(k)] = v
	}
	if c.Status != nil {
		for _, s := range c.Status.All() {
			info.Statuses = append(info.Statuses, string(s.Kind))
		}
	}
	return info
}

// PowerHooks resolves custom power routines from the PowerVM. A routine
// receives the actor as a table and returns a number.
type PowerHooks struct {
	m *Manager
}

// PowerHooks returns the power.HookSet backed by m.
func (m *Manager) PowerHooks() PowerHooks {
	return PowerHooks{m: m}
}

// Power implements power.HookSet. A routine that errors or returns a
// non-number yields 0.
//
// Postcondition: ok is false iff the PowerVM defines no function named name.
func (h PowerHooks) Power(name string, actor *character.Character) (float64, bool) {
	if !h.m.HasHook(PowerVM, name) {
		return 0, false
	}
	info := Info(actor)
	ret := h.m.call(PowerVM, name, func(L *lua.LState) []lua.LValue {
		return []lua.LValue{CharaTable(L, info)}
	})
	n, ok := ret.(lua.LNumber)
	if !ok {
		h.m.logger.Warn("power routine returned a non-number",
			zap.String("routine", name),
			zap.String("type", ret.Type().String()),
		)
		return 0, true
	}
	return float64(n), true
}
