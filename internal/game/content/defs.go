// Package content holds the read-only definition tables (skills, walls,
// tiles, items) that resolvers look up by identifier.
package content

import (
	"fmt"

	"github.com/cory-johannsen/ruins/internal/game/anim"
	"github.com/cory-johannsen/ruins/internal/game/power"
	"github.com/cory-johannsen/ruins/internal/game/status"
	"github.com/cory-johannsen/ruins/internal/game/world"
)

// SkillGroup distinguishes how an active skill is presented.
type SkillGroup string

// Skill groups.
const (
	Magic   SkillGroup = "magic"
	Special SkillGroup = "special"
)

// EffectKind selects what an effect does to its target.
type EffectKind string

// Effect kinds.
const (
	Damage EffectKind = "damage"
	Heal   EffectKind = "heal"
	Status EffectKind = "status"
)

// Element is the damage element of an effect.
type Element string

// Elements.
const (
	Physical Element = "physical"
	Fire     Element = "fire"
	Cold     Element = "cold"
	Shock    Element = "shock"
	Poison   Element = "poison"
	Spirit   Element = "spirit"
)

var validElements = map[Element]bool{
	"": true, Physical: true, Fire: true, Cold: true, Shock: true, Poison: true, Spirit: true,
}

// AnimDef names the animation an effect plays.
type AnimDef struct {
	Kind   anim.Kind `yaml:"kind"`
	Name   string    `yaml:"name"`
	Frames int       `yaml:"frames"`
}

// Effect describes what happens to the target of a skill.
type Effect struct {
	Kind    EffectKind      `yaml:"kind"`
	Element Element         `yaml:"element"`
	Base    power.BasePower `yaml:"base_power"`
	// Status and Duration apply to status effects.
	Status   status.Kind `yaml:"status"`
	Duration int         `yaml:"duration"`
	Anim     *AnimDef    `yaml:"anim"`
}

// Validate checks the fields required by Kind.
func (e Effect) Validate() error {
	switch e.Kind {
	case Damage, Heal:
		if e.Base.Base < 0 || e.Base.Var < 0 {
			return fmt.Errorf("effect base_power must be non-negative")
		}
	case Status:
		if e.Status == "" {
			return fmt.Errorf("status effect requires a status")
		}
		if e.Duration == 0 || e.Duration < status.Permanent {
			return fmt.Errorf("status effect duration must be > 0 or -1, got %d", e.Duration)
		}
	default:
		return fmt.Errorf("unknown effect kind %q", e.Kind)
	}
	if !validElements[e.Element] {
		return fmt.Errorf("unknown element %q", e.Element)
	}
	if e.Anim != nil {
		if _, err := anim.ParseKind(string(e.Anim.Kind)); err != nil {
			return err
		}
		if e.Anim.Frames < 1 {
			return fmt.Errorf("anim %q must have at least one frame", e.Anim.Name)
		}
	}
	return nil
}

// ActiveSkill is the definition of a usable skill.
type ActiveSkill struct {
	ID       string     `yaml:"id"`
	Group    SkillGroup `yaml:"group"`
	Effect   Effect     `yaml:"effect"`
	Power    float64    `yaml:"power"`
	HitPower float64    `yaml:"hit_power"`
	// PowerCalc yields the raw power that Power multiplies.
	PowerCalc power.Calc `yaml:"power_calc"`
	CostSP    int        `yaml:"cost_sp"`
	CostMP    int        `yaml:"cost_mp"`
	// Range is the farthest distance the skill reaches; 0 reaches any visible target.
	Range int `yaml:"range"`
}

// Validate checks that the skill definition is usable.
func (s *ActiveSkill) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("skill id must not be empty")
	}
	if s.Group != Magic && s.Group != Special {
		return fmt.Errorf("skill %q: group must be magic or special, got %q", s.ID, s.Group)
	}
	if s.CostSP < 0 || s.CostMP < 0 {
		return fmt.Errorf("skill %q: costs must be >= 0", s.ID)
	}
	if s.Range < 0 {
		return fmt.Errorf("skill %q: range must be >= 0", s.ID)
	}
	if err := s.PowerCalc.Validate(); err != nil {
		return fmt.Errorf("skill %q: %w", s.ID, err)
	}
	if err := s.Effect.Validate(); err != nil {
		return fmt.Errorf("skill %q: %w", s.ID, err)
	}
	return nil
}

// Ingredient is one line of a bill of materials.
type Ingredient struct {
	Item string `yaml:"item"`
	N    int    `yaml:"n"`
}

// Wall is a wall template. A non-nil BuildSkill makes it constructible.
type Wall struct {
	ID         string       `yaml:"id"`
	Name       string       `yaml:"name"`
	Symbol     string       `yaml:"symbol"`
	Materials  []Ingredient `yaml:"materials"`
	BuildSkill *int         `yaml:"build_skill"`
}

// Tile is a terrain template. A non-nil BuildSkill makes it constructible.
type Tile struct {
	ID         string         `yaml:"id"`
	Name       string         `yaml:"name"`
	Symbol     string         `yaml:"symbol"`
	Kind       world.TileKind `yaml:"kind"`
	Materials  []Ingredient   `yaml:"materials"`
	BuildSkill *int           `yaml:"build_skill"`
}

// validateMaterials requires each item to appear on one line, so a shortage
// check per line covers the whole bill.
func validateMaterials(owner string, ms []Ingredient) error {
	seen := make(map[string]bool, len(ms))
	for _, m := range ms {
		if m.Item == "" || m.N < 1 {
			return fmt.Errorf("%s: materials need an item and n >= 1", owner)
		}
		if seen[m.Item] {
			return fmt.Errorf("%s: material %q listed more than once", owner, m.Item)
		}
		seen[m.Item] = true
	}
	return nil
}

// Validate checks that the wall definition is usable.
func (w *Wall) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("wall id must not be empty")
	}
	if w.BuildSkill != nil && *w.BuildSkill < 0 {
		return fmt.Errorf("wall %q: build_skill must be >= 0", w.ID)
	}
	return validateMaterials(fmt.Sprintf("wall %q", w.ID), w.Materials)
}

// Validate checks that the tile definition is usable.
func (t *Tile) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tile id must not be empty")
	}
	if _, err := world.ParseTileKind(string(t.Kind)); err != nil {
		return fmt.Errorf("tile %q: %w", t.ID, err)
	}
	if t.BuildSkill != nil && *t.BuildSkill < 0 {
		return fmt.Errorf("tile %q: build_skill must be >= 0", t.ID)
	}
	return validateMaterials(fmt.Sprintf("tile %q", t.ID), t.Materials)
}

// BuildKind distinguishes wall and tile build targets.
type BuildKind string

// Build target kinds.
const (
	BuildWall BuildKind = "wall"
	BuildTile BuildKind = "tile"
)

// BuildObj identifies a constructible entity.
type BuildObj struct {
	Kind BuildKind
	ID   string
}

func (b BuildObj) String() string {
	return string(b.Kind) + ":" + b.ID
}

// BuildChoice pairs a build target with the construction skill level it requires.
type BuildChoice struct {
	Obj        BuildObj
	SkillLevel int
}
