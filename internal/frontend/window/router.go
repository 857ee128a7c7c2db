package window

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/ruins/internal/game/command"
)

// Handler processes commands while no dialog is open.
type Handler interface {
	// Handle runs cmd against pa and may push dialogs onto r.
	// Returns true when the game loop should end.
	Handle(cmd command.Command, pa Actions, r *Router) (quit bool)
}

// Router owns the dialog stack and the input mode derived from it.
// It is not safe for concurrent use.
type Router struct {
	stack    []Dialog
	fallback Handler
	input    TextInput
	logger   *zap.Logger
}

// NewRouter creates a Router with an empty stack. input may be nil when the
// frontend has no text side channel.
//
// Precondition: fallback and logger must be non-nil.
func NewRouter(fallback Handler, input TextInput, logger *zap.Logger) *Router {
	if fallback == nil || logger == nil {
		panic("window.NewRouter: fallback and logger must not be nil")
	}
	return &Router{fallback: fallback, input: input, logger: logger}
}

// Push opens d on top of the stack.
func (r *Router) Push(d Dialog) {
	r.stack = append(r.stack, d)
}

// Top returns the topmost dialog.
func (r *Router) Top() (Dialog, bool) {
	if len(r.stack) == 0 {
		return nil, false
	}
	return r.stack[len(r.stack)-1], true
}

// Len returns the number of open dialogs.
func (r *Router) Len() int {
	return len(r.stack)
}

// Dialogs returns the open dialogs, bottom first.
func (r *Router) Dialogs() []Dialog {
	return append([]Dialog(nil), r.stack...)
}

// Mode returns the top dialog's input mode, or ModeNormal when none is open.
func (r *Router) Mode() command.InputMode {
	if d, ok := r.Top(); ok {
		return d.Mode()
	}
	return command.ModeNormal
}

// SyncTextInput starts the text side channel when the current mode wants
// text and it is inactive, and stops it when the mode does not and it is active.
func (r *Router) SyncTextInput() {
	if r.input == nil {
		return
	}
	wanted := r.Mode() == command.ModeText
	switch active := r.input.Active(); {
	case wanted && !active:
		r.input.Start()
	case !wanted && active:
		r.input.Stop()
	}
}

// Route sends cmd to the top dialog, or to the fallback handler when the
// stack is empty, and applies the dialog's Result. Close removes the dialog
// that handled cmd even if it pushed another dialog while doing so.
//
// Postcondition: Returns true when the game loop should end.
func (r *Router) Route(cmd command.Command, pa Actions) (quit bool) {
	top, ok := r.Top()
	if !ok {
		return r.fallback.Handle(cmd, pa, r)
	}
	res := top.ProcessCommand(cmd, pa)
	r.logger.Debug("dialog processed command",
		zap.String("kind", string(cmd.Kind)),
		zap.Stringer("result", res),
		zap.Int("depth", len(r.stack)),
	)
	switch res {
	case Close:
		r.remove(top)
	case CloseAll:
		r.stack = nil
	case Quit:
		return true
	}
	return false
}

func (r *Router) remove(d Dialog) {
	for i := len(r.stack) - 1; i >= 0; i-- {
		if r.stack[i] == d {
			r.stack = append(r.stack[:i], r.stack[i+1:]...)
			return
		}
	}
}
