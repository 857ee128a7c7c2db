package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestStyle_Apply(t *testing.T) {
	assert.Equal(t, "\033[31mbite\033[0m", Red.Apply("bite"))
	assert.Equal(t, "\033[1m\033[0m", Bold.Apply(""))
}

func TestStrip(t *testing.T) {
	in := Red.Apply("rat") + " hits " + Bold.Apply(Cyan.Apply("you")) + "\033[1;33m!"
	assert.Equal(t, "rat hits you!", Strip(in))
	assert.Equal(t, "plain", Strip("plain"))
	assert.Equal(t, "a\033[31", Strip("a\033[31"), "an unterminated sequence is kept")
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 2, Width(Yellow.Apply("ab")))
	assert.Equal(t, 10, Width("ネズミ: "+Red.Apply("hp")), "wide runes take two columns")
	assert.Zero(t, Width(""))
}

func TestPadRight(t *testing.T) {
	s := Yellow.Apply("ab")
	assert.Equal(t, s+"   ", PadRight(s, 5))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
	assert.Equal(t, "毒 ", PadRight("毒", 3))
}

func TestPropertyStripUndoesApply(t *testing.T) {
	styles := []Style{Bold, Red, Yellow, Blue, Magenta, Cyan, BrightBlack, BrightYellow}
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[a-zA-Z0-9 .,!]{0,40}`).Draw(t, "s")
		st := rapid.SampledFrom(styles).Draw(t, "style")
		if got := Strip(st.Apply(s)); got != s {
			t.Fatalf("Strip(Apply(%q)) = %q", s, got)
		}
	})
}

func TestPropertyPadRightReachesWidth(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[a-z]{0,20}`).Draw(t, "s")
		cols := rapid.IntRange(0, 30).Draw(t, "cols")
		if got := Width(PadRight(Red.Apply(s), cols)); got != max(cols, len(s)) {
			t.Fatalf("PadRight(%q, %d) is %d wide", s, cols, got)
		}
	})
}
