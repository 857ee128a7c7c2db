package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// RegisterModules registers all engine.* Lua tables into L:
// engine.log, engine.dice and engine.chara.
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: engine global is defined in L.
func (m *Manager) RegisterModules(L *lua.LState) {
	engine := L.NewTable()
	L.SetField(engine, "log", m.logModule(L))
	L.SetField(engine, "dice", m.diceModule(L))
	L.SetField(engine, "chara", m.charaModule(L))
	L.SetGlobal("engine", engine)
}

func (m *Manager) logModule(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	levels := map[string]func(string, ...zap.Field){
		"debug": m.logger.Debug,
		"info":  m.logger.Info,
		"warn":  m.logger.Warn,
		"error": m.logger.Error,
	}
	for name, fn := range levels {
		L.SetField(mod, name, L.NewFunction(func(L *lua.LState) int {
			fn(L.CheckString(1), zap.String("source", "lua"))
			return 0
		}))
	}
	return mod
}

func (m *Manager) diceModule(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	L.SetField(mod, "roll", L.NewFunction(func(L *lua.LState) int {
		res, err := m.roller.RollExpr(L.CheckString(1))
		if err != nil {
			L.RaiseError("engine.dice.roll: %v", err)
			return 0
		}
		t := L.NewTable()
		t.RawSetString("total", lua.LNumber(res.Total()))
		t.RawSetString("dice", lua.LNumber(res.Sum()))
		t.RawSetString("modifier", lua.LNumber(res.Modifier))
		L.Push(t)
		return 1
	}))
	return mod
}

func (m *Manager) charaModule(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	get := func(name string, fn func(*CharaInfo, *lua.LState) lua.LValue) {
		L.SetField(mod, name, L.NewFunction(func(L *lua.LState) int {
			id := L.CheckString(1)
			if m.GetChara == nil {
				L.Push(lua.LNil)
				return 1
			}
			info := m.GetChara(id)
			if info == nil {
				L.Push(lua.LNil)
				return 1
			}
			L.Push(fn(info, L))
			return 1
		}))
	}
	get("get", func(c *CharaInfo, L *lua.LState) lua.LValue { return CharaTable(L, c) })
	get("get_hp", func(c *CharaInfo, _ *lua.LState) lua.LValue { return lua.LNumber(c.HP) })
	get("get_name", func(c *CharaInfo, _ *lua.LState) lua.LValue { return lua.LString(c.Name) })
	get("get_attr", func(c *CharaInfo, L *lua.LState) lua.LValue {
		return lua.LNumber(c.Attrs[L.CheckString(2)])
	})
	get("get_skill", func(c *CharaInfo, L *lua.LState) lua.LValue {
		return lua.LNumber(c.Skills[L.CheckString(2)])
	})
	get("has_status", func(c *CharaInfo, L *lua.LState) lua.LValue {
		want := L.CheckString(2)
		for _, s := range c.Statuses {
			if s == want {
				return lua.LTrue
			}
		}
		return lua.LFalse
	})
	return mod
}

// CharaTable converts c to a Lua table with fields id, name, hp, max_hp,
// sp, mp, x, y, attr, skill and statuses.
func CharaTable(L *lua.LState, c *CharaInfo) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("id", lua.LString(c.ID))
	t.RawSetString("name", lua.LString(c.Name))
	t.RawSetString("hp", lua.LNumber(c.HP))
	t.RawSetString("max_hp", lua.LNumber(c.MaxHP))
	t.RawSetString("sp", lua.LNumber(c.SP))
	t.RawSetString("mp", lua.LNumber(c.MP))
	t.RawSetString("x", lua.LNumber(c.X))
	t.RawSetString("y", lua.LNumber(c.Y))
	attrs := L.NewTable()
	for k, v := range c.Attrs {
		attrs.RawSetString(k, lua.LNumber(v))
	}
	t.RawSetString("attr", attrs)
	skills := L.NewTable()
	for k, v := range c.Skills {
		skills.RawSetString(k, lua.LNumber(v))
	}
	t.RawSetString("skill", skills)
	statuses := L.NewTable()
	for _, s := range c.Statuses {
		statuses.Append(lua.LString(s))
	}
	t.RawSetString("statuses", statuses)
	return t
}
