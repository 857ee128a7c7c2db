package text

import (
	"fmt"
	"io"
)

// LinePrompt is the terminal's free-text side channel. While active every
// entered line is taken as text rather than a command word.
type LinePrompt struct {
	w      io.Writer
	label  string
	active bool
}

// NewLinePrompt creates an inactive prompt announcing itself on w with label.
func NewLinePrompt(w io.Writer, label string) *LinePrompt {
	return &LinePrompt{w: w, label: label}
}

// Start activates the prompt and announces it.
func (p *LinePrompt) Start() {
	p.active = true
	fmt.Fprintf(p.w, "%s (blank line cancels)\n", p.label)
}

// Stop deactivates the prompt.
func (p *LinePrompt) Stop() {
	p.active = false
}

// Active reports whether the prompt is taking text.
func (p *LinePrompt) Active() bool {
	return p.active
}
