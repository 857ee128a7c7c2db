package text

import (
	"fmt"
	"io"
	"strings"
)

// Canvas buffers one frame of terminal output.
// It is not safe for concurrent use.
type Canvas struct {
	w     io.Writer
	color bool
	buf   strings.Builder
}

// NewCanvas creates a Canvas flushing to w. With color disabled every
// Paint call returns its text unstyled.
//
// Precondition: w must be non-nil.
func NewCanvas(w io.Writer, color bool) *Canvas {
	if w == nil {
		panic("text.NewCanvas: writer must not be nil")
	}
	return &Canvas{w: w, color: color}
}

// Paint styles s with st when the canvas is in color mode.
func (c *Canvas) Paint(st Style, s string) string {
	if !c.color {
		return s
	}
	return st.Apply(s)
}

// Line appends s and a newline to the frame.
func (c *Canvas) Line(s string) {
	c.buf.WriteString(s)
	c.buf.WriteByte('\n')
}

// Linef appends a formatted line to the frame.
func (c *Canvas) Linef(format string, args ...any) {
	c.Line(fmt.Sprintf(format, args...))
}

// String returns the frame buffered so far.
func (c *Canvas) String() string {
	return c.buf.String()
}

// Flush writes the buffered frame to the writer and starts a new one.
// In color mode the screen is cleared first.
func (c *Canvas) Flush() error {
	defer c.buf.Reset()
	out := c.buf.String()
	if c.color {
		out = ClearScreen + out
	}
	if _, err := io.WriteString(c.w, out); err != nil {
		return fmt.Errorf("flushing frame: %w", err)
	}
	return nil
}
