package turn

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/gamelog"
	"github.com/cory-johannsen/ruins/internal/game/status"
)

// Preturn runs the bookkeeping every character goes through before its turn.
type Preturn struct {
	defs          *status.Registry
	gate          *Gate
	log           gamelog.Sink
	spConsumption int
	logger        *zap.Logger
}

// NewPreturn creates a Preturn.
//
// Precondition: defs, gate, log and logger must not be nil; spConsumption >= 0.
func NewPreturn(defs *status.Registry, gate *Gate, log gamelog.Sink, spConsumption int, logger *zap.Logger) *Preturn {
	return &Preturn{defs: defs, gate: gate, log: log, spConsumption: spConsumption, logger: logger}
}

// Run advances c's statuses, applies damage from surviving damaging
// statuses, drains SP and consults the gate.
//
// Postcondition: Returns true iff c may act this turn.
func (p *Preturn) Run(c *character.Character) bool {
	if c.Status != nil {
		expired := c.Status.Advance()
		if len(expired) > 0 {
			p.logger.Debug("statuses expired",
				zap.String("chara", c.Name),
				zap.Any("kinds", expired),
			)
		}
		for _, s := range c.Status.All() {
			def, ok := p.defs.Get(s.Kind)
			if !ok || def.DamageDivisor <= 0 {
				continue
			}
			dmg := max(c.HP.Max/def.DamageDivisor, 1)
			p.log.Emit(string(s.Kind)+"-damage", gamelog.Chara(c.Name), gamelog.Damage(dmg))
			c.Damage(dmg)
		}
	}
	c.AddSP(-p.spConsumption)
	return p.gate.CanAct(c)
}
