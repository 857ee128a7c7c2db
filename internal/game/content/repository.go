package content

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cory-johannsen/ruins/internal/game/inventory"
	"github.com/cory-johannsen/ruins/internal/game/status"
	"github.com/cory-johannsen/ruins/internal/game/world"
)

// ErrUnknownID is returned when a definition lookup misses.
var ErrUnknownID = errors.New("unknown identifier")

// Repository is the read-only set of definitions resolvers consult.
// It is populated once at startup and never mutated afterwards.
type Repository struct {
	skills   map[string]*ActiveSkill
	walls    map[string]*Wall
	tiles    map[string]*Tile
	items    *inventory.Registry
	statuses *status.Registry
}

// NewRepository creates an empty Repository with the built-in status kinds.
func NewRepository() *Repository {
	return &Repository{
		skills:   make(map[string]*ActiveSkill),
		walls:    make(map[string]*Wall),
		tiles:    make(map[string]*Tile),
		items:    inventory.NewRegistry(),
		statuses: status.DefaultRegistry(),
	}
}

// AddSkill registers s.
//
// Postcondition: Returns an error if s is invalid or its ID is already registered.
func (r *Repository) AddSkill(s *ActiveSkill) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, ok := r.skills[s.ID]; ok {
		return fmt.Errorf("content: skill %q already registered", s.ID)
	}
	r.skills[s.ID] = s
	return nil
}

// AddWall registers w.
//
// Postcondition: Returns an error if w is invalid or its ID is already registered.
func (r *Repository) AddWall(w *Wall) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if _, ok := r.walls[w.ID]; ok {
		return fmt.Errorf("content: wall %q already registered", w.ID)
	}
	r.walls[w.ID] = w
	return nil
}

// AddTile registers t.
//
// Postcondition: Returns an error if t is invalid or its ID is already registered.
func (r *Repository) AddTile(t *Tile) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, ok := r.tiles[t.ID]; ok {
		return fmt.Errorf("content: tile %q already registered", t.ID)
	}
	r.tiles[t.ID] = t
	return nil
}

// AddItem registers d with the item registry.
func (r *Repository) AddItem(d *inventory.ItemDef) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return r.items.Register(d)
}

// Skill resolves an active skill.
func (r *Repository) Skill(id string) (*ActiveSkill, error) {
	s, ok := r.skills[id]
	if !ok {
		return nil, fmt.Errorf("skill %q: %w", id, ErrUnknownID)
	}
	return s, nil
}

// Wall resolves a wall template.
func (r *Repository) Wall(id string) (*Wall, error) {
	w, ok := r.walls[id]
	if !ok {
		return nil, fmt.Errorf("wall %q: %w", id, ErrUnknownID)
	}
	return w, nil
}

// Tile resolves a tile template.
func (r *Repository) Tile(id string) (*Tile, error) {
	t, ok := r.tiles[id]
	if !ok {
		return nil, fmt.Errorf("tile %q: %w", id, ErrUnknownID)
	}
	return t, nil
}

// TileKind implements world.TileLookup.
func (r *Repository) TileKind(id string) (world.TileKind, bool) {
	t, ok := r.tiles[id]
	if !ok {
		return "", false
	}
	return t.Kind, true
}

// Items returns the item registry.
func (r *Repository) Items() *inventory.Registry {
	return r.items
}

// Statuses returns the status registry.
func (r *Repository) Statuses() *status.Registry {
	return r.statuses
}

// Skills returns every skill sorted by ID.
func (r *Repository) Skills() []*ActiveSkill {
	out := make([]*ActiveSkill, 0, len(r.skills))
	for _, s := range r.skills {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Materials resolves the bill of materials of a build target.
func (r *Repository) Materials(obj BuildObj) ([]Ingredient, error) {
	switch obj.Kind {
	case BuildWall:
		w, err := r.Wall(obj.ID)
		if err != nil {
			return nil, err
		}
		return w.Materials, nil
	case BuildTile:
		t, err := r.Tile(obj.ID)
		if err != nil {
			return nil, err
		}
		return t.Materials, nil
	default:
		return nil, fmt.Errorf("build target %s: %w", obj, ErrUnknownID)
	}
}

// BuildObjList returns every constructible tile and wall with its required
// construction level, tiles first, each group sorted by ID.
func (r *Repository) BuildObjList() []BuildChoice {
	var tiles, walls []BuildChoice
	for id, t := range r.tiles {
		if t.BuildSkill != nil {
			tiles = append(tiles, BuildChoice{Obj: BuildObj{Kind: BuildTile, ID: id}, SkillLevel: *t.BuildSkill})
		}
	}
	for id, w := range r.walls {
		if w.BuildSkill != nil {
			walls = append(walls, BuildChoice{Obj: BuildObj{Kind: BuildWall, ID: id}, SkillLevel: *w.BuildSkill})
		}
	}
	byID := func(s []BuildChoice) func(i, j int) bool {
		return func(i, j int) bool { return s[i].Obj.ID < s[j].Obj.ID }
	}
	sort.Slice(tiles, byID(tiles))
	sort.Slice(walls, byID(walls))
	return append(tiles, walls...)
}
