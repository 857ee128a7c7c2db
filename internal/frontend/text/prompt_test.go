package text

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLinePrompt_StartStop(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompt(&out, "find:")
	assert.False(t, p.Active())

	p.Start()
	assert.True(t, p.Active())
	assert.Equal(t, "find: (blank line cancels)\n", out.String())

	p.Stop()
	assert.False(t, p.Active())
}

func TestLoggingCues_Play(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	NewLoggingCues(zap.New(core)).Play("arrow")

	entries := logs.FilterMessage("cue").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "arrow", entries[0].ContextMap()["name"])
	}
}
