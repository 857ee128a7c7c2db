package window

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cory-johannsen/ruins/internal/game/command"
)

// LineSource decodes one command per input line.
type LineSource struct {
	scanner *bufio.Scanner
	dec     *command.Decoder
}

// NewLineSource creates a LineSource reading r.
//
// Precondition: r and dec must be non-nil.
func NewLineSource(r io.Reader, dec *command.Decoder) *LineSource {
	return &LineSource{scanner: bufio.NewScanner(r), dec: dec}
}

// Next implements CommandSource.
func (s *LineSource) Next(mode command.InputMode) (command.Command, bool, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return command.Command{}, false, fmt.Errorf("reading input: %w", err)
		}
		return command.Command{}, false, io.EOF
	}
	cmd, ok := s.dec.Decode(s.scanner.Text(), mode)
	return cmd, ok, nil
}
