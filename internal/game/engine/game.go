// Package engine assembles the turn-resolution core into a playable game:
// the dungeon, its characters, the turn clock and the action resolvers.
package engine

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/ruins/internal/config"
	"github.com/cory-johannsen/ruins/internal/game/action"
	"github.com/cory-johannsen/ruins/internal/game/ai"
	"github.com/cory-johannsen/ruins/internal/game/anim"
	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/content"
	"github.com/cory-johannsen/ruins/internal/game/dice"
	"github.com/cory-johannsen/ruins/internal/game/effect"
	"github.com/cory-johannsen/ruins/internal/game/gamelog"
	"github.com/cory-johannsen/ruins/internal/game/power"
	"github.com/cory-johannsen/ruins/internal/game/status"
	"github.com/cory-johannsen/ruins/internal/game/turn"
	"github.com/cory-johannsen/ruins/internal/game/world"
)

// Options carries everything New needs.
type Options struct {
	Config    config.GameConfig
	Content   *content.Repository
	Floors    []*world.Floor
	Templates []*character.Template
	// Hooks resolves custom power routines; nil means none are defined.
	Hooks power.HookSet
	// Behaviours drives NPCs; nil leaves every NPC idle.
	Behaviours *ai.Registry
	Source     dice.Source
	Cues       action.Cues
	Logger     *zap.Logger
}

// Game is the aggregate root of a running game. It is not safe for
// concurrent use.
type Game struct {
	content    *content.Repository
	dungeon    *world.Dungeon
	templates  map[string]*character.Template
	charas     map[string]*character.Character
	order      []string
	player     *character.Character
	melee      string
	viewRadius int

	log    *gamelog.Log
	anims  *anim.Queue
	sched  *turn.Scheduler
	clock  *turn.Clock
	skills *action.SkillUse
	build  *action.Construction
	move   *action.Move
	logger *zap.Logger
}

// New builds a Game positioned on the first floor with the player at its
// start position.
//
// Precondition: opts.Config must be valid.
// Postcondition: Returns a Game in WaitingForNextTurn, or an error when the
// content does not define the player template or a spawn template.
func New(opts Options) (*Game, error) {
	if opts.Content == nil || opts.Source == nil || opts.Cues == nil || opts.Logger == nil {
		return nil, errors.New("engine.New: Content, Source, Cues and Logger must be set")
	}
	dungeon, err := world.NewDungeon(opts.Floors)
	if err != nil {
		return nil, fmt.Errorf("engine.New: %w", err)
	}
	hooks := opts.Hooks
	if hooks == nil {
		hooks = power.Hooks{}
	}
	behaviours := opts.Behaviours
	if behaviours == nil {
		behaviours = ai.NewRegistry()
	}

	g := &Game{
		content:    opts.Content,
		dungeon:    dungeon,
		templates:  make(map[string]*character.Template, len(opts.Templates)),
		charas:     make(map[string]*character.Character),
		melee:      opts.Config.MeleeSkill,
		viewRadius: opts.Config.ViewRadius,
		log:        gamelog.NewLog(opts.Config.LogCapacity),
		anims:      anim.NewQueue(),
		sched:      turn.NewScheduler(opts.Config.WaitBase),
		logger:     opts.Logger,
	}
	for _, t := range opts.Templates {
		g.templates[t.ID] = t
	}
	if err := g.checkTemplates(opts.Config.Player, opts.Floors); err != nil {
		return nil, err
	}

	statuses := opts.Content.Statuses()
	if def, ok := statuses.Get(status.Poisoned); ok {
		tuned := *def
		tuned.DamageDivisor = opts.Config.PoisonDivisor
		statuses.Register(&tuned)
	}

	roller := dice.NewLoggedRoller(opts.Source, opts.Logger)
	effects := effect.NewResolver(opts.Source, g.anims, g.log, opts.Logger)
	g.skills = action.NewSkillUse(opts.Content, power.NewResolver(hooks, roller, opts.Logger), effects, g, g.log, opts.Logger)
	g.build = action.NewConstruction(opts.Content, g, g.log, opts.Cues, opts.Logger)
	g.move = action.NewMove(g, opts.Content)

	gate := turn.NewGate(statuses, g.log)
	preturn := turn.NewPreturn(statuses, gate, g.log, opts.Config.SPConsumption, opts.Logger)
	npc := ai.NewActor(behaviours, g, g.skills, g.move, opts.Logger)
	g.clock = turn.NewClock(g.sched, preturn, npc, opts.Logger)

	player, err := character.Build(g.templates[opts.Config.Player], dungeon.Current().Start, opts.Content.Items())
	if err != nil {
		return nil, fmt.Errorf("engine.New: %w", err)
	}
	player.Faction = character.PlayerFaction
	g.player = player
	g.enterFloor(dungeon.Current())
	return g, nil
}

// checkTemplates verifies that every template the game will build exists
// and can be built.
func (g *Game) checkTemplates(player string, floors []*world.Floor) error {
	ids := []string{player}
	for _, f := range floors {
		for _, s := range f.Spawns {
			ids = append(ids, s.Template)
		}
	}
	for _, id := range ids {
		tmpl, ok := g.templates[id]
		if !ok {
			return fmt.Errorf("engine.New: unknown character template %q", id)
		}
		if _, err := character.Build(tmpl, world.Pos{}, g.content.Items()); err != nil {
			return fmt.Errorf("engine.New: %w", err)
		}
	}
	return nil
}

// enterFloor replaces the population with the player and f's spawns.
func (g *Game) enterFloor(f *world.Floor) {
	for _, id := range g.order {
		if id != g.player.ID {
			g.sched.Remove(id)
		}
	}
	g.charas = map[string]*character.Character{g.player.ID: g.player}
	g.order = []string{g.player.ID}
	g.player.Pos = f.Start
	g.sched.Add(g.player)

	for _, s := range f.Spawns {
		c, err := character.Build(g.templates[s.Template], s.Pos, g.content.Items())
		if err != nil {
			panic("engine: spawning checked template failed: " + err.Error())
		}
		g.charas[c.ID] = c
		g.order = append(g.order, c.ID)
		g.sched.Add(c)
	}
	g.logger.Info("entered floor",
		zap.String("floor", f.Map.ID),
		zap.Int("depth", g.dungeon.Depth()),
		zap.Int("npcs", len(f.Spawns)),
	)
}

// reap drops dead NPCs from the map and the schedule.
func (g *Game) reap() {
	kept := g.order[:0]
	for _, id := range g.order {
		c := g.charas[id]
		if c != g.player && c.IsDead() {
			delete(g.charas, id)
			g.sched.Remove(id)
			continue
		}
		kept = append(kept, id)
	}
	g.order = kept
}

// CurrentMap implements action.World.
func (g *Game) CurrentMap() *world.Map { return g.dungeon.Current().Map }

// CharaAt implements action.World.
func (g *Game) CharaAt(p world.Pos) (*character.Character, bool) {
	for _, id := range g.order {
		c := g.charas[id]
		if c.Pos == p && !c.IsDead() {
			return c, true
		}
	}
	return nil, false
}

// Charas returns the living characters on the current floor in spawn order,
// the player first.
func (g *Game) Charas() []*character.Character {
	out := make([]*character.Character, 0, len(g.order))
	for _, id := range g.order {
		if c := g.charas[id]; !c.IsDead() {
			out = append(out, c)
		}
	}
	return out
}

// Chara returns the character with id on the current floor.
func (g *Game) Chara(id string) (*character.Character, bool) {
	c, ok := g.charas[id]
	return c, ok
}

// TargetVisible reports whether both characters are alive on the current
// floor and target lies in actor's line of sight.
func (g *Game) TargetVisible(actor, target *character.Character) bool {
	if _, ok := g.charas[actor.ID]; !ok {
		return false
	}
	if _, ok := g.charas[target.ID]; !ok || target.IsDead() {
		return false
	}
	return world.LineOfSight(g.CurrentMap(), actor.Pos, target.Pos, g.viewRadius)
}

// AdvanceTurn runs the schedule until the player may act.
//
// Precondition: State() == turn.WaitingForNextTurn.
func (g *Game) AdvanceTurn() turn.State {
	st := g.clock.AdvanceTurn()
	g.reap()
	return st
}

// State returns the turn clock phase.
func (g *Game) State() turn.State { return g.clock.State() }

// Turn returns the number of advanced turns.
func (g *Game) Turn() int { return g.clock.Turn() }

// GameOver reports whether the player has died.
func (g *Game) GameOver() bool { return g.player.IsDead() }

// Player returns the player character.
func (g *Game) Player() *character.Character { return g.player }

// Depth returns the zero-based index of the current floor.
func (g *Game) Depth() int { return g.dungeon.Depth() }

// Log returns the game log.
func (g *Game) Log() *gamelog.Log { return g.log }

// Content returns the content repository.
func (g *Game) Content() *content.Repository { return g.content }

// PopAnimation removes and returns the next queued animation.
func (g *Game) PopAnimation() (anim.Animation, bool) { return g.anims.Pop() }

// PendingAnimations returns the number of queued animations.
func (g *Game) PendingAnimations() int { return g.anims.Len() }
