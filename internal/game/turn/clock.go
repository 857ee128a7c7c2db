package turn

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/ruins/internal/game/character"
)

// State is the turn clock phase.
type State int

// Clock states.
const (
	WaitingForNextTurn State = iota
	PlayerTurn
)

func (s State) String() string {
	switch s {
	case PlayerTurn:
		return "player_turn"
	case WaitingForNextTurn:
		return "waiting_for_next_turn"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// NPCActor takes the turn of a non-player character that is able to act.
type NPCActor interface {
	Act(c *character.Character)
}

// NPCActorFunc adapts a function to NPCActor.
type NPCActorFunc func(c *character.Character)

// Act calls f(c).
func (f NPCActorFunc) Act(c *character.Character) { f(c) }

// Clock is the turn state machine. It is not safe for concurrent use.
type Clock struct {
	state   State
	turn    int
	sched   *Scheduler
	preturn *Preturn
	npc     NPCActor
	logger  *zap.Logger
}

// NewClock creates a Clock in WaitingForNextTurn.
//
// Precondition: sched, preturn, npc and logger must not be nil.
func NewClock(sched *Scheduler, preturn *Preturn, npc NPCActor, logger *zap.Logger) *Clock {
	return &Clock{
		state:   WaitingForNextTurn,
		sched:   sched,
		preturn: preturn,
		npc:     npc,
		logger:  logger,
	}
}

// State returns the current phase.
func (c *Clock) State() State { return c.state }

// Turn returns the number of completed AdvanceTurn calls.
func (c *Clock) Turn() int { return c.turn }

// Scheduler returns the actor schedule.
func (c *Clock) Scheduler() *Scheduler { return c.sched }

// AdvanceTurn runs actors in schedule order until the player's turn arrives.
// NPCs that pass the gate act through the NPCActor; dead NPCs are unscheduled.
// If the player fails the gate its turn is consumed and the clock stays in
// WaitingForNextTurn so the caller can redraw before advancing again.
//
// Precondition: State() == WaitingForNextTurn and a player character is scheduled.
// Postcondition: Returns the new state.
func (c *Clock) AdvanceTurn() State {
	if c.state != WaitingForNextTurn {
		panic("turn: AdvanceTurn called during the player's turn")
	}
	c.turn++
	for {
		actor, ok := c.sched.Next()
		if !ok {
			panic("turn: AdvanceTurn called with an empty schedule")
		}
		if actor.IsPlayer() {
			if c.preturn.Run(actor) {
				c.state = PlayerTurn
			}
			c.logger.Debug("player turn",
				zap.Int("turn", c.turn),
				zap.Stringer("state", c.state),
			)
			return c.state
		}
		if actor.IsDead() {
			c.sched.Remove(actor.ID)
			continue
		}
		if c.preturn.Run(actor) && !actor.IsDead() {
			c.npc.Act(actor)
		}
		if actor.IsDead() {
			c.sched.Remove(actor.ID)
		}
	}
}

// EndPlayerTurn hands control back to the schedule.
//
// Precondition: State() == PlayerTurn.
func (c *Clock) EndPlayerTurn() {
	c.RequirePlayerTurn()
	c.state = WaitingForNextTurn
}

// RequirePlayerTurn panics unless the player is acting. Action resolution
// must only happen during the player's turn.
func (c *Clock) RequirePlayerTurn() {
	if c.state != PlayerTurn {
		panic(fmt.Sprintf("turn: action resolved in state %s", c.state))
	}
}
