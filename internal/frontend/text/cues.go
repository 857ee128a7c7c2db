package text

import "go.uber.org/zap"

// LoggingCues records named presentation cues. A terminal has no mixer, so
// a cue is a debug log line.
type LoggingCues struct {
	logger *zap.Logger
}

// NewLoggingCues creates LoggingCues writing to logger.
//
// Precondition: logger must be non-nil.
func NewLoggingCues(logger *zap.Logger) *LoggingCues {
	if logger == nil {
		panic("text.NewLoggingCues: logger must not be nil")
	}
	return &LoggingCues{logger: logger}
}

// Play logs the cue name.
func (c *LoggingCues) Play(name string) {
	c.logger.Debug("cue", zap.String("name", name))
}
