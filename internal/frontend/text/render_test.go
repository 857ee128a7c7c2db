package text_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/ruins/internal/config"
	"github.com/cory-johannsen/ruins/internal/frontend/text"
	"github.com/cory-johannsen/ruins/internal/game/anim"
	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/content"
	"github.com/cory-johannsen/ruins/internal/game/dice"
	"github.com/cory-johannsen/ruins/internal/game/engine"
	"github.com/cory-johannsen/ruins/internal/game/gamelog"
	"github.com/cory-johannsen/ruins/internal/game/status"
	"github.com/cory-johannsen/ruins/internal/game/world"
)

const cave = `
floor:
  id: cave
  depth: 1
  start: [1, 1]
  legend:
    "#": {tile: grass, wall: stone-wall}
    ".": {tile: grass}
    "~": {tile: pond}
    ">": {tile: grass, entrance: true}
  rows:
    - "######"
    - "#..~>#"
    - "######"
  spawns:
    - {template: giant-rat, at: [2, 1]}
`

func newGame(t *testing.T) *engine.Game {
	t.Helper()
	floor, err := world.LoadFloorFromBytes([]byte(cave))
	require.NoError(t, err)

	repo := content.NewRepository()
	require.NoError(t, repo.AddTile(&content.Tile{ID: "grass", Name: "Grass", Kind: world.Ground}))
	require.NoError(t, repo.AddTile(&content.Tile{ID: "pond", Name: "Pond", Kind: world.Water}))
	require.NoError(t, repo.AddWall(&content.Wall{ID: "stone-wall", Name: "Stone wall"}))

	g, err := engine.New(engine.Options{
		Config: config.GameConfig{
			SPConsumption: 1, PoisonDivisor: 20, ViewRadius: 8, Locale: "en-US",
			WaitBase: 100, Player: "adventurer", LogCapacity: 10,
		},
		Content: repo,
		Floors:  []*world.Floor{floor},
		Templates: []*character.Template{
			{ID: "adventurer", Name: "Adventurer", Faction: character.PlayerFaction,
				Attrs: character.Attributes{Spd: 100}, MaxHP: 30, MaxSP: 10, MaxMP: 5},
			{ID: "giant-rat", Name: "Giant rat", Faction: "monster",
				Attrs: character.Attributes{Spd: 100}, MaxHP: 5},
		},
		Source: dice.NewSeededSource(1),
		Cues:   text.NewLoggingCues(zap.NewNop()),
		Logger: zap.NewNop(),
	})
	require.NoError(t, err)
	return g
}

func newCatalog(t *testing.T) *gamelog.Catalog {
	t.Helper()
	c := gamelog.NewCatalog()
	require.NoError(t, c.Add("en-US", map[string]string{
		"damaged-chara":              "{chara} takes {damage} damage.",
		"building-shortage-material": "Not enough {item}.",
	}))
	return c
}

func TestRenderer_DrawsIndicatorAndMap(t *testing.T) {
	g := newGame(t)
	var out bytes.Buffer
	c := text.NewCanvas(&out, false)

	text.NewRenderer(newCatalog(t), 5).Draw(c, g, anim.Animation{}, 0, false)

	assert.Equal(t, strings.Join([]string{
		"Adventurer  HP 30/30  SP 10/10  MP 5/5  Depth 1  Turn 0",
		"######",
		"#@g~>#",
		"######",
	}, "\n")+"\n", c.String())
}

func TestRenderer_IndicatorListsStatuses(t *testing.T) {
	g := newGame(t)
	g.Player().Status.Apply(status.Poisoned, 3)
	c := text.NewCanvas(&bytes.Buffer{}, false)

	text.NewRenderer(newCatalog(t), 0).DrawIndicator(c, g)

	assert.True(t, strings.HasSuffix(c.String(), "Turn 0 [poisoned]\n"), c.String())
}

func TestRenderer_AnimationOverlaysMap(t *testing.T) {
	g := newGame(t)
	c := text.NewCanvas(&bytes.Buffer{}, false)
	shot := anim.Animation{Kind: anim.Shot, Name: "arrow", Frames: 4, From: world.Pos{X: 1, Y: 1}, To: world.Pos{X: 4, Y: 1}}

	text.NewRenderer(newCatalog(t), 0).DrawMap(c, g, shot, 1, true)

	assert.Equal(t, "######\n#@*~>#\n######\n", c.String())
}

func TestRenderer_LogWindowShowsNewestEntries(t *testing.T) {
	g := newGame(t)
	g.Log().Emit("damaged-chara", gamelog.Chara("Giant rat"), gamelog.Damage(3))
	g.Log().Emit("damaged-chara", gamelog.Chara("Adventurer"), gamelog.Damage(2))
	g.Log().Warn("building-shortage-material", gamelog.Item("timber"))

	plain := text.NewCanvas(&bytes.Buffer{}, false)
	text.NewRenderer(newCatalog(t), 2).DrawLog(plain, g.Log())
	assert.Equal(t, "Adventurer takes 2 damage.\nNot enough timber.\n", plain.String())

	colored := text.NewCanvas(&bytes.Buffer{}, true)
	text.NewRenderer(newCatalog(t), 1).DrawLog(colored, g.Log())
	assert.Equal(t, text.Yellow.Apply("Not enough timber.")+"\n", colored.String())
}

func TestAnimationPos(t *testing.T) {
	to := world.Pos{X: 5, Y: 2}
	assert.Equal(t, to, text.AnimationPos(anim.Animation{Kind: anim.Img, Frames: 3, To: to}, 1))
	assert.Equal(t, to, text.AnimationPos(anim.Animation{Kind: anim.Shot, Frames: 1, From: world.Pos{}, To: to}, 0))
}

// Property: a shot starts on From and ends on To.
func TestPropertyShotTravelsFromTo(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		from := world.Pos{X: rapid.IntRange(0, 20).Draw(t, "fx"), Y: rapid.IntRange(0, 20).Draw(t, "fy")}
		to := world.Pos{X: rapid.IntRange(0, 20).Draw(t, "tx"), Y: rapid.IntRange(0, 20).Draw(t, "ty")}
		frames := rapid.IntRange(2, 10).Draw(t, "frames")
		a := anim.Animation{Kind: anim.Shot, Frames: frames, From: from, To: to}
		if got := text.AnimationPos(a, 0); got != from {
			t.Fatalf("frame 0 at %v, want %v", got, from)
		}
		if got := text.AnimationPos(a, frames-1); got != to {
			t.Fatalf("last frame at %v, want %v", got, to)
		}
	})
}
