package text

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cory-johannsen/ruins/internal/game/anim"
	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/engine"
	"github.com/cory-johannsen/ruins/internal/game/gamelog"
	"github.com/cory-johannsen/ruins/internal/game/world"
)

// Map glyphs.
const (
	GlyphWall      = '#'
	GlyphWater     = '~'
	GlyphEntrance  = '>'
	GlyphGround    = '.'
	GlyphPlayer    = '@'
	GlyphAnimation = '*'
)

// Renderer draws the main map, the indicator line and the log window.
type Renderer struct {
	catalog  *gamelog.Catalog
	logLines int
}

// NewRenderer creates a Renderer showing the newest logLines log entries.
//
// Precondition: catalog must be non-nil; logLines >= 0.
func NewRenderer(catalog *gamelog.Catalog, logLines int) *Renderer {
	if catalog == nil {
		panic("text.NewRenderer: catalog must not be nil")
	}
	return &Renderer{catalog: catalog, logLines: max(logLines, 0)}
}

// Draw renders one frame of g. When animating is true the glyph of a at
// frame is laid over the map.
func (r *Renderer) Draw(c *Canvas, g *engine.Game, a anim.Animation, frame int, animating bool) {
	r.DrawIndicator(c, g)
	r.DrawMap(c, g, a, frame, animating)
	r.DrawLog(c, g.Log())
}

// DrawIndicator renders the player's pools, the depth and the turn.
func (r *Renderer) DrawIndicator(c *Canvas, g *engine.Game) {
	p := g.Player()
	hp := fmt.Sprintf("HP %d/%d", p.HP.Cur, p.HP.Max)
	if p.HP.Cur*4 <= p.HP.Max {
		hp = c.Paint(Red, hp)
	}
	line := fmt.Sprintf("%s  %s  SP %d/%d  MP %d/%d  Depth %d  Turn %d",
		c.Paint(Bold, p.Name), hp, p.SP.Cur, p.SP.Max, p.MP.Cur, p.MP.Max, g.Depth()+1, g.Turn())
	for _, s := range p.Status.All() {
		line += " " + c.Paint(Magenta, "["+string(s.Kind)+"]")
	}
	c.Line(line)
}

// DrawMap renders the current floor.
func (r *Renderer) DrawMap(c *Canvas, g *engine.Game, a anim.Animation, frame int, animating bool) {
	m := g.CurrentMap()
	at := world.Pos{X: -1, Y: -1}
	if animating {
		at = AnimationPos(a, frame)
	}
	var row strings.Builder
	for y := 0; y < m.Height; y++ {
		row.Reset()
		for x := 0; x < m.Width; x++ {
			p := world.Pos{X: x, Y: y}
			if p == at {
				row.WriteString(c.Paint(BrightYellow, string(GlyphAnimation)))
				continue
			}
			if ch, ok := g.CharaAt(p); ok {
				row.WriteString(charaGlyph(c, ch))
				continue
			}
			row.WriteString(terrainGlyph(c, g, m, p))
		}
		c.Line(row.String())
	}
}

// DrawLog renders the newest log entries, warnings highlighted.
func (r *Renderer) DrawLog(c *Canvas, l *gamelog.Log) {
	for _, e := range l.Last(r.logLines) {
		msg := r.catalog.Render(e)
		if e.Level == gamelog.Warn {
			msg = c.Paint(Yellow, msg)
		}
		c.Line(msg)
	}
}

// AnimationPos returns the tile an animation occupies at frame. Shots travel
// from From to To across their frames; every other kind sits on To.
func AnimationPos(a anim.Animation, frame int) world.Pos {
	if a.Kind != anim.Shot || a.Frames <= 1 {
		return a.To
	}
	frame = min(max(frame, 0), a.Frames-1)
	span := a.Frames - 1
	return world.Pos{
		X: a.From.X + (a.To.X-a.From.X)*frame/span,
		Y: a.From.Y + (a.To.Y-a.From.Y)*frame/span,
	}
}

func charaGlyph(c *Canvas, ch *character.Character) string {
	if ch.IsPlayer() {
		return c.Paint(Bold, string(GlyphPlayer))
	}
	r, _ := utf8.DecodeRuneInString(ch.Name)
	if r == utf8.RuneError {
		r = 'm'
	}
	return c.Paint(Red, string(unicode.ToLower(r)))
}

func terrainGlyph(c *Canvas, g *engine.Game, m *world.Map, p world.Pos) string {
	switch {
	case m.HasWall(p):
		return string(GlyphWall)
	case m.IsEntrance(p):
		return c.Paint(Cyan, string(GlyphEntrance))
	}
	if kind, ok := g.Content().TileKind(m.Tile(p)); ok && kind == world.Water {
		return c.Paint(Blue, string(GlyphWater))
	}
	return c.Paint(BrightBlack, string(GlyphGround))
}
