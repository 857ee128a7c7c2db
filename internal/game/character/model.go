// Package character defines the character domain model: attributes, skills,
// resource pools, statuses and carried inventory.
package character

import (
	"fmt"

	"github.com/cory-johannsen/ruins/internal/game/inventory"
	"github.com/cory-johannsen/ruins/internal/game/status"
	"github.com/cory-johannsen/ruins/internal/game/world"
)

// AttrKind names one attribute.
type AttrKind string

// Attribute kinds.
const (
	Str AttrKind = "str"
	Vit AttrKind = "vit"
	Dex AttrKind = "dex"
	Int AttrKind = "int"
	Wil AttrKind = "wil"
	Cha AttrKind = "cha"
	Spd AttrKind = "spd"
)

// Attributes holds the seven base attribute values of a character.
type Attributes struct {
	Str int `yaml:"str"`
	Vit int `yaml:"vit"`
	Dex int `yaml:"dex"`
	Int int `yaml:"int"`
	Wil int `yaml:"wil"`
	Cha int `yaml:"cha"`
	Spd int `yaml:"spd"`
}

// Attr returns the value of attribute k, or 0 for an unknown kind.
func (a Attributes) Attr(k AttrKind) int {
	switch k {
	case Str:
		return a.Str
	case Vit:
		return a.Vit
	case Dex:
		return a.Dex
	case Int:
		return a.Int
	case Wil:
		return a.Wil
	case Cha:
		return a.Cha
	case Spd:
		return a.Spd
	default:
		return 0
	}
}

// SkillKind names a trained skill.
type SkillKind string

// Skill kinds.
const (
	MagicDevice  SkillKind = "magic_device"
	Construction SkillKind = "construction"
	Defence      SkillKind = "defence"
	Evasion      SkillKind = "evasion"
	BareHands    SkillKind = "bare_hands"
)

// Faction groups characters for hostility decisions.
type Faction string

// PlayerFaction is the faction of the player character.
const PlayerFaction Faction = "player"

// Pool is a current/maximum resource pair. Cur never drops below zero.
type Pool struct {
	Cur int
	Max int
}

// NewPool returns a full pool of the given size.
func NewPool(size int) Pool {
	return Pool{Cur: size, Max: size}
}

// add shifts Cur by delta, clamped to [0, Max], and returns the applied change.
func (p *Pool) add(delta int) int {
	before := p.Cur
	p.Cur = min(max(p.Cur+delta, 0), p.Max)
	return p.Cur - before
}

func (p Pool) String() string {
	return fmt.Sprintf("%d/%d", p.Cur, p.Max)
}

// Character is a live actor on the map.
//
// A Character is owned by the game aggregate and mutated only by action
// resolvers and turn bookkeeping.
type Character struct {
	ID         string
	TemplateID string
	Name       string
	Faction    Faction
	Attrs      Attributes
	Skills     map[SkillKind]int

	HP Pool
	SP Pool
	MP Pool

	Status    *status.Ledger
	Inventory *inventory.Backpack
	Pos       world.Pos

	// AI is the behaviour domain ID; empty for the player.
	AI string

	// Wait is the scheduler's accumulated wait time.
	Wait int
}

// IsPlayer reports whether c belongs to the player faction.
func (c *Character) IsPlayer() bool {
	return c.Faction == PlayerFaction
}

// SkillLevel returns the trained level of kind, 0 when untrained.
func (c *Character) SkillLevel(kind SkillKind) int {
	return c.Skills[kind]
}

// Attr returns the current value of attribute k.
func (c *Character) Attr(k AttrKind) int {
	return c.Attrs.Attr(k)
}

// IsDead reports whether c has no hit points left.
func (c *Character) IsDead() bool {
	return c.HP.Cur <= 0
}

// Damage removes up to n hit points.
//
// Precondition: n >= 0.
// Postcondition: Returns the hit points actually removed; HP.Cur >= 0.
func (c *Character) Damage(n int) int {
	if n < 0 {
		panic(fmt.Sprintf("character: Damage called with negative amount %d", n))
	}
	return -c.HP.add(-n)
}

// Heal restores up to n hit points without exceeding the maximum.
//
// Precondition: n >= 0.
// Postcondition: Returns the hit points actually restored.
func (c *Character) Heal(n int) int {
	if n < 0 {
		panic(fmt.Sprintf("character: Heal called with negative amount %d", n))
	}
	return c.HP.add(n)
}

// AddSP shifts SP by delta, clamped to [0, SP.Max].
func (c *Character) AddSP(delta int) int {
	return c.SP.add(delta)
}

// AddMP shifts MP by delta, clamped to [0, MP.Max].
func (c *Character) AddMP(delta int) int {
	return c.MP.add(delta)
}

// CanAfford reports whether the current SP and MP cover the given costs.
func (c *Character) CanAfford(costSP, costMP int) bool {
	return c.SP.Cur >= costSP && c.MP.Cur >= costMP
}
