package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/ruins/internal/game/dice"
)

// VM keys.
const (
	// PowerVM holds custom power-calculation routines.
	PowerVM = "power"
	// AIVM holds NPC behaviour preconditions.
	AIVM = "ai"
)

// CharaInfo is a snapshot of a character passed to Lua callbacks.
type CharaInfo struct {
	ID       string
	Name     string
	HP       int
	MaxHP    int
	SP       int
	MP       int
	X, Y     int
	Attrs    map[string]int
	Skills   map[string]int
	Statuses []string
}

// vm is one loaded sandbox and the instruction budget each call gets.
type vm struct {
	L     *lua.LState
	limit int
}

// Manager owns one sandboxed LState per key and exposes hook dispatch.
//
// Manager is safe for concurrent use. Each LState is single-threaded, so
// hook calls are serialised.
type Manager struct {
	mu     sync.RWMutex
	callMu sync.Mutex
	vms    map[string]vm
	roller *dice.Roller
	logger *zap.Logger

	// GetChara resolves a character id for engine.chara.*. nil makes those calls return nil.
	GetChara func(id string) *CharaInfo
}

// NewManager creates a Manager.
//
// Precondition: roller and logger must be non-nil.
// Postcondition: Returns a non-nil Manager with no VMs.
func NewManager(roller *dice.Roller, logger *zap.Logger) *Manager {
	if roller == nil {
		panic("scripting.NewManager: roller must not be nil")
	}
	if logger == nil {
		panic("scripting.NewManager: logger must not be nil")
	}
	return &Manager{vms: make(map[string]vm), roller: roller, logger: logger}
}

// Load builds a sandboxed VM for key from every *.lua file in dir, run in
// name order, and installs it in place of any VM already under key.
// A limit of 0 uses DefaultInstructionLimit.
//
// Postcondition: on error the previous VM for key, if any, is untouched.
func (m *Manager) Load(key, dir string, limit int) error {
	L, files, err := m.compile(dir, limit)
	if err != nil {
		return fmt.Errorf("scripting: loading %q VM: %w", key, err)
	}

	m.callMu.Lock()
	m.mu.Lock()
	if old, ok := m.vms[key]; ok {
		old.L.Close()
	}
	m.vms[key] = vm{L: L, limit: limit}
	m.mu.Unlock()
	m.callMu.Unlock()

	m.logger.Info("scripts loaded", zap.String("vm", key), zap.Int("files", files))
	return nil
}

func (m *Manager) compile(dir string, limit int) (*lua.LState, int, error) {
	if info, err := os.Stat(dir); err != nil {
		return nil, 0, err
	} else if !info.IsDir() {
		return nil, 0, fmt.Errorf("%s is not a directory", dir)
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.lua"))
	if err != nil {
		return nil, 0, err
	}

	L := NewSandboxedState(limit)
	m.RegisterModules(L)
	for _, f := range files {
		if err := L.DoFile(f); err != nil {
			L.Close()
			return nil, 0, fmt.Errorf("%s: %w", filepath.Base(f), err)
		}
	}
	return L, len(files), nil
}

func (m *Manager) state(key string) (*lua.LState, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v := m.vms[key]
	return v.L, v.limit
}

// HasHook reports whether key's VM defines a global function named hook.
func (m *Manager) HasHook(key, hook string) bool {
	L, _ := m.state(key)
	if L == nil {
		return false
	}
	m.callMu.Lock()
	defer m.callMu.Unlock()
	_, ok := L.GetGlobal(hook).(*lua.LFunction)
	return ok
}

// CallHook calls the named Lua global function in key's VM with a fresh
// instruction budget. Returns (LNil, nil) if the hook is not defined or no
// VM exists. Lua runtime errors are logged at Warn level and never propagated.
//
// Precondition: args must be valid lua.LValue instances.
// Postcondition: Returns the first return value of the hook, or LNil.
func (m *Manager) CallHook(key, hook string, args ...lua.LValue) (lua.LValue, error) {
	return m.call(key, hook, func(*lua.LState) []lua.LValue { return args }), nil
}

// call runs hook with the arguments built by args inside key's VM.
func (m *Manager) call(key, hook string, args func(L *lua.LState) []lua.LValue) lua.LValue {
	L, limit := m.state(key)
	if L == nil {
		m.logger.Info("scripting: no VM",
			zap.String("vm", key),
			zap.String("hook", hook),
		)
		return lua.LNil
	}

	m.callMu.Lock()
	defer m.callMu.Unlock()

	fn := L.GetGlobal(hook)
	if fn == lua.LNil {
		return lua.LNil
	}

	cancel := refill(L, limit)
	defer cancel()
	if err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, args(L)...); err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.String("vm", key),
			zap.String("hook", hook),
			zap.Error(err),
		)
		return lua.LNil
	}

	ret := L.Get(-1)
	L.Pop(1)
	return ret
}

// Close shuts down every VM.
func (m *Manager) Close() {
	m.callMu.Lock()
	defer m.callMu.Unlock()
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.vms {
		v.L.Close()
	}
	clear(m.vms)
}
