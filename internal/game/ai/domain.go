// Package ai drives NPC turns with a hierarchical task network.
//
// A behaviour domain decomposes the root task through ordered methods, each
// gated by an optional Lua precondition, down to operators: use a skill,
// approach a target, or wait. The first operator that can be performed is
// the NPC's action for the turn.
package ai

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// RootTask is the task every plan starts from.
const RootTask = "behave"

// Action is the primitive an operator performs.
type Action string

// Operator actions.
const (
	ActionUseSkill Action = "use_skill"
	ActionApproach Action = "approach"
	ActionWait     Action = "wait"
)

// Target names whom an operator acts on, relative to the planning NPC.
type Target string

// Operator targets.
const (
	NearestEnemy Target = "nearest_enemy"
	WeakestEnemy Target = "weakest_enemy"
	Self         Target = "self"
)

// Method decomposes Task into Subtasks, which name tasks or operators.
// An empty Precondition always applies.
type Method struct {
	Task         string   `yaml:"task"`
	ID           string   `yaml:"id"`
	Precondition string   `yaml:"precondition"`
	Subtasks     []string `yaml:"subtasks"`
}

// Operator is a primitive step of a plan.
type Operator struct {
	ID     string `yaml:"id"`
	Action Action `yaml:"action"`
	Target Target `yaml:"target"`
	Skill  string `yaml:"skill"`
}

// Domain is one behaviour, referenced by character templates through its ID.
type Domain struct {
	ID          string      `yaml:"id"`
	Description string      `yaml:"description"`
	Tasks       []string    `yaml:"tasks"`
	Methods     []*Method   `yaml:"methods"`
	Operators   []*Operator `yaml:"operators"`
}

// Validate reports every structural problem in d.
//
// Postcondition: nil means RootTask is declared, every name is unique across
// tasks and operators, every method decomposes a declared task into known
// names, every operator is well formed and no task can expand into itself.
func (d *Domain) Validate() error {
	if d.ID == "" {
		return errors.New("ai: domain id must not be empty")
	}
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("ai: domain %q: "+format, append([]any{d.ID}, args...)...))
	}

	names := make(map[string]string, len(d.Tasks)+len(d.Operators))
	declare := func(kind, name string) {
		if name == "" {
			fail("%s with empty id", kind)
			return
		}
		if prev, dup := names[name]; dup {
			fail("%s %q already declared as a %s", kind, name, prev)
			return
		}
		names[name] = kind
	}
	for _, t := range d.Tasks {
		declare("task", t)
	}
	for _, op := range d.Operators {
		declare("operator", op.ID)
		if err := op.validate(); err != nil {
			fail("operator %q: %v", op.ID, err)
		}
	}
	if names[RootTask] != "task" {
		fail("root task %q is not declared", RootTask)
	}

	methodIDs := make(map[string]bool, len(d.Methods))
	for _, m := range d.Methods {
		if m.ID == "" || methodIDs[m.ID] {
			fail("method id %q is empty or repeated", m.ID)
		}
		methodIDs[m.ID] = true
		if names[m.Task] != "task" {
			fail("method %q decomposes unknown task %q", m.ID, m.Task)
		}
		if len(m.Subtasks) == 0 {
			fail("method %q has no subtasks", m.ID)
		}
		for _, sub := range m.Subtasks {
			if _, ok := names[sub]; !ok {
				fail("method %q: subtask %q is neither a task nor an operator", m.ID, sub)
			}
		}
	}
	if len(errs) == 0 {
		if task, ok := d.recursion(); ok {
			fail("task %q can expand into itself", task)
		}
	}
	return errors.Join(errs...)
}

func (op *Operator) validate() error {
	switch op.Action {
	case ActionUseSkill:
		if op.Skill == "" {
			return errors.New("use_skill requires a skill")
		}
	case ActionApproach:
		if op.Skill != "" {
			return errors.New("approach takes no skill")
		}
	case ActionWait:
		if op.Skill != "" || (op.Target != "" && op.Target != Self) {
			return errors.New("wait takes neither a skill nor a target")
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q", op.Action)
	}
	switch op.Target {
	case NearestEnemy, WeakestEnemy, Self:
		return nil
	default:
		return fmt.Errorf("unknown target %q", op.Target)
	}
}

// recursion returns a task reachable from itself through method subtasks.
func (d *Domain) recursion() (string, bool) {
	const (
		unseen = iota
		open
		done
	)
	state := make(map[string]int, len(d.Tasks))
	var visit func(task string) bool
	visit = func(task string) bool {
		switch state[task] {
		case open:
			return true
		case done:
			return false
		}
		state[task] = open
		for _, m := range d.MethodsForTask(task) {
			for _, sub := range m.Subtasks {
				if _, isOp := d.OperatorByID(sub); !isOp && visit(sub) {
					return true
				}
			}
		}
		state[task] = done
		return false
	}
	for _, t := range d.Tasks {
		if visit(t) {
			return t, true
		}
	}
	return "", false
}

// OperatorByID returns the operator named id.
func (d *Domain) OperatorByID(id string) (*Operator, bool) {
	i := slices.IndexFunc(d.Operators, func(op *Operator) bool { return op.ID == id })
	if i < 0 {
		return nil, false
	}
	return d.Operators[i], true
}

// MethodsForTask returns the methods decomposing task, in declaration order.
func (d *Domain) MethodsForTask(task string) []*Method {
	return slices.DeleteFunc(slices.Clone(d.Methods), func(m *Method) bool { return m.Task != task })
}

// Preconditions returns the distinct Lua functions d's methods rely on, sorted.
func (d *Domain) Preconditions() []string {
	var out []string
	for _, m := range d.Methods {
		if m.Precondition != "" {
			out = append(out, m.Precondition)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// LoadDomains reads the domain in every *.yaml file in dir, in file-name
// order. A missing dir holds no domains.
//
// Postcondition: returns the validated domains with unique IDs, or the
// first file error.
func LoadDomains(dir string) ([]*Domain, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("ai: listing %q: %w", dir, err)
	}
	var domains []*Domain
	origin := make(map[string]string, len(paths))
	for _, path := range paths {
		d, err := loadDomainFile(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := origin[d.ID]; dup {
			return nil, fmt.Errorf("ai: domain %q defined in both %s and %s", d.ID, prev, path)
		}
		origin[d.ID] = path
		domains = append(domains, d)
	}
	return domains, nil
}

func loadDomainFile(path string) (*Domain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ai: %w", err)
	}
	defer f.Close()

	var doc struct {
		Domain *Domain `yaml:"domain"`
	}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("ai: parsing %s: %w", path, err)
	}
	if doc.Domain == nil {
		return nil, fmt.Errorf("ai: %s has no top-level domain key", path)
	}
	if err := doc.Domain.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc.Domain, nil
}
