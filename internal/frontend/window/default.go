package window

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/ruins/internal/game/command"
)

// DefaultHandler handles commands on the main map with no dialog open.
type DefaultHandler struct {
	help   []string
	logger *zap.Logger
}

// NewDefaultHandler creates a DefaultHandler whose help window lists reg's words.
//
// Precondition: reg and logger must be non-nil.
func NewDefaultHandler(reg *command.Registry, logger *zap.Logger) *DefaultHandler {
	if reg == nil || logger == nil {
		panic("window.NewDefaultHandler: reg and logger must not be nil")
	}
	return &DefaultHandler{help: reg.HelpLines(), logger: logger}
}

// Handle implements Handler.
func (h *DefaultHandler) Handle(cmd command.Command, pa Actions, r *Router) bool {
	switch cmd.Kind {
	case command.KindMove:
		pa.TryMove(cmd.Dir)
	case command.KindEnter:
		if pa.OnMapEntrance() {
			r.Push(NewYesNo("Move to the next floor?", func(pa Actions) Result {
				pa.MoveNextFloor()
				return Close
			}))
		}
	case command.KindWait:
		pa.Wait()
	case command.KindOpenExitWin:
		r.Push(NewExit())
	case command.KindOpenItemMenu:
		r.Push(NewItemMenu(pa, ""))
	case command.KindFind:
		r.Push(NewTextInputDialog("Find item:", func(s string, pa Actions) Result {
			r.Push(NewItemMenu(pa, s))
			return Close
		}))
	case command.KindOpenBuildMenu:
		r.Push(NewBuildMenu(pa))
	case command.KindOpenSkillMenu:
		r.Push(NewSkillMenu(pa))
	case command.KindHelp:
		r.Push(NewTextWindow("Commands", h.help))
	default:
		h.logger.Debug("command ignored on main window", zap.String("kind", string(cmd.Kind)))
	}
	return false
}
