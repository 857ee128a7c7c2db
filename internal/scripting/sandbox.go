// Package scripting runs content-supplied Lua: custom power routines and NPC
// behaviour preconditions. Every VM is sandboxed and metered.
package scripting

import (
	"context"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// DefaultInstructionLimit bounds one load or hook call when no limit is configured.
const DefaultInstructionLimit = 100_000

// strippedGlobals are removed from every VM. Scripts reach the host only
// through the engine.* tables.
var strippedGlobals = []string{
	"dofile", "loadfile", "load", "loadstring",
	"require", "module", "collectgarbage", "print",
}

// strippedMath are removed from math. Dice go through engine.dice so a
// seeded game replays identically.
var strippedMath = []string{"random", "randomseed"}

// meter is a context whose Done counts opcodes. gopher-lua polls Done once
// per instruction, so a VM stops after budget instructions.
type meter struct {
	context.Context
	cancel context.CancelFunc
	budget atomic.Int64
}

func newMeter(limit int) *meter {
	if limit <= 0 {
		limit = DefaultInstructionLimit
	}
	ctx, cancel := context.WithCancel(context.Background())
	m := &meter{Context: ctx, cancel: cancel}
	m.budget.Store(int64(limit))
	return m
}

// Done spends one instruction.
func (m *meter) Done() <-chan struct{} {
	if m.budget.Add(-1) <= 0 {
		m.cancel()
	}
	return m.Context.Done()
}

// NewSandboxedState creates a VM with the base, table, string and math
// libraries, minus strippedGlobals and strippedMath, metered to instLimit
// instructions.
//
// Precondition: instLimit >= 0; 0 uses DefaultInstructionLimit.
// Postcondition: the caller owns the LState and must Close it.
func NewSandboxedState(instLimit int) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	L.SetTop(0)

	for _, name := range strippedGlobals {
		L.SetGlobal(name, lua.LNil)
	}
	if math, ok := L.GetGlobal(lua.MathLibName).(*lua.LTable); ok {
		for _, name := range strippedMath {
			math.RawSetString(name, lua.LNil)
		}
	}

	L.SetContext(newMeter(instLimit))
	return L
}

// refill gives L a fresh budget of limit instructions. The returned func
// releases the meter.
func refill(L *lua.LState, limit int) context.CancelFunc {
	m := newMeter(limit)
	L.SetContext(m)
	return m.cancel
}
