package action

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/content"
	"github.com/cory-johannsen/ruins/internal/game/gamelog"
	"github.com/cory-johannsen/ruins/internal/game/world"
)

// FinishCue is the cue played when construction completes.
const FinishCue = "finish-build"

// Construction resolves building walls and tiles.
type Construction struct {
	content *content.Repository
	world   World
	log     gamelog.Sink
	cues    Cues
	logger  *zap.Logger
}

// NewConstruction creates a Construction resolver.
//
// Precondition: all arguments must be non-nil.
func NewConstruction(repo *content.Repository, w World, log gamelog.Sink, cues Cues, logger *zap.Logger) *Construction {
	return &Construction{content: repo, world: w, log: log, cues: cues, logger: logger}
}

// Start builds obj at pos from actor's inventory. The first missing
// ingredient in declaration order is reported as
// "building-shortage-material" and nothing is consumed.
//
// Postcondition: on true every ingredient was consumed and obj stands at pos;
// on false neither the inventory nor the map changed.
func (c *Construction) Start(actor *character.Character, pos world.Pos, obj content.BuildObj) bool {
	materials, err := c.content.Materials(obj)
	if err != nil {
		c.logger.Warn("unknown build target", zap.Stringer("obj", obj), zap.Error(err))
		return false
	}
	if !world.Buildable(c.world.CurrentMap(), c.content, pos) {
		return false
	}

	for _, m := range materials {
		have := actor.Inventory.Count(m.Item)
		if have < m.N {
			c.log.Emit("building-shortage-material", gamelog.Item(c.content.Items().Name(m.Item)), gamelog.N(m.N-have))
			return false
		}
	}
	for _, m := range materials {
		if _, err := actor.Inventory.Consume(m.Item, m.N, nil, false); err != nil {
			// counts were verified above; the backpack changed underneath us
			panic("action: consuming verified materials failed: " + err.Error())
		}
	}

	c.Finish(pos, obj)
	return true
}

// Finish writes obj into the current map at pos and plays FinishCue.
//
// Precondition: pos is inside the current map.
func (c *Construction) Finish(pos world.Pos, obj content.BuildObj) {
	m := c.world.CurrentMap()
	var err error
	switch obj.Kind {
	case content.BuildWall:
		err = m.SetWall(pos, obj.ID)
	case content.BuildTile:
		err = m.SetTile(pos, obj.ID)
	}
	if err != nil {
		panic("action: Finish: " + err.Error())
	}
	c.logger.Debug("built", zap.Stringer("obj", obj), zap.Stringer("pos", pos))
	c.cues.Play(FinishCue)
}
