package ai

import (
	"errors"

	lua "github.com/yuin/gopher-lua"
)

// maxExpansions bounds one plan on domains that were never validated.
const maxExpansions = 64

// ScriptCaller evaluates Lua preconditions.
type ScriptCaller interface {
	// CallHook calls a named Lua function in the given VM.
	// Returns (LNil, nil) if the function is not defined.
	CallHook(vm, hook string, args ...lua.LValue) (lua.LValue, error)
}

// PlannedAction is one operator with its target resolved.
type PlannedAction struct {
	Action Action
	// Target is a character ID; empty when the operator's target is absent.
	Target string
	Skill  string
}

// Planner turns a domain into ordered plans for the NPCs that use it.
type Planner struct {
	domain *Domain
	caller ScriptCaller
	vm     string
}

// NewPlanner constructs a Planner evaluating preconditions in caller's vm.
//
// Precondition: domain and caller must not be nil.
func NewPlanner(domain *Domain, caller ScriptCaller, vm string) *Planner {
	if domain == nil {
		panic("ai.NewPlanner: domain must not be nil")
	}
	if caller == nil {
		panic("ai.NewPlanner: caller must not be nil")
	}
	return &Planner{domain: domain, caller: caller, vm: vm}
}

// Plan decomposes RootTask against state.
//
// Every precondition is called as fn(self_id, prey_id), where prey is the
// nearest living enemy or nil. Only a true result selects the method; Lua
// errors count as false.
//
// Precondition: state.Self must not be nil.
// Postcondition: returns a non-nil plan, possibly empty.
func (p *Planner) Plan(state *WorldState) ([]PlannedAction, error) {
	if state == nil || state.Self == nil {
		return nil, errors.New("ai: Plan: state has no self")
	}
	args := []lua.LValue{lua.LString(state.Self.ID), lua.LNil}
	if prey := state.NearestEnemy(); prey != nil {
		args[1] = lua.LString(prey.ID)
	}
	plan := []PlannedAction{}
	budget := maxExpansions
	p.expand(RootTask, state, args, &plan, &budget)
	return plan, nil
}

func (p *Planner) expand(name string, state *WorldState, args []lua.LValue, plan *[]PlannedAction, budget *int) {
	if *budget == 0 {
		return
	}
	*budget--
	if op, ok := p.domain.OperatorByID(name); ok {
		*plan = append(*plan, PlannedAction{
			Action: op.Action,
			Target: state.ResolveTarget(op.Target),
			Skill:  op.Skill,
		})
		return
	}
	m := p.method(name, args)
	if m == nil {
		return
	}
	for _, sub := range m.Subtasks {
		p.expand(sub, state, args, plan, budget)
	}
}

// method returns the first method for task whose precondition holds.
func (p *Planner) method(task string, args []lua.LValue) *Method {
	for _, m := range p.domain.MethodsForTask(task) {
		if m.Precondition == "" {
			return m
		}
		if val, _ := p.caller.CallHook(p.vm, m.Precondition, args...); val == lua.LTrue {
			return m
		}
	}
	return nil
}
