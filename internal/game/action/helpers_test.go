package action_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/content"
	"github.com/cory-johannsen/ruins/internal/game/inventory"
	"github.com/cory-johannsen/ruins/internal/game/status"
	"github.com/cory-johannsen/ruins/internal/game/world"
)

type fakeWorld struct {
	m      *world.Map
	charas []*character.Character
}

func (w *fakeWorld) CurrentMap() *world.Map { return w.m }

func (w *fakeWorld) CharaAt(p world.Pos) (*character.Character, bool) {
	for _, c := range w.charas {
		if c.Pos == p && !c.IsDead() {
			return c, true
		}
	}
	return nil, false
}

type recordingCues struct{ played []string }

func (c *recordingCues) Play(name string) { c.played = append(c.played, name) }

func intPtr(n int) *int { return &n }

func newRepo(t *testing.T) *content.Repository {
	t.Helper()
	repo := content.NewRepository()
	for _, d := range []*inventory.ItemDef{
		{ID: "timber", Name: "Timber", Kind: inventory.KindMaterial, Weight: 1, Stackable: true, MaxStack: 99},
		{ID: "stone", Name: "Stone", Kind: inventory.KindMaterial, Weight: 2, Stackable: true, MaxStack: 99},
	} {
		require.NoError(t, repo.AddItem(d))
	}
	require.NoError(t, repo.AddTile(&content.Tile{ID: "grass", Name: "Grass", Kind: world.Ground}))
	require.NoError(t, repo.AddTile(&content.Tile{ID: "water", Name: "Water", Kind: world.Water}))
	require.NoError(t, repo.AddTile(&content.Tile{
		ID: "plank-floor", Name: "Plank floor", Kind: world.Ground,
		Materials: []content.Ingredient{{Item: "timber", N: 1}}, BuildSkill: intPtr(0),
	}))
	require.NoError(t, repo.AddWall(&content.Wall{
		ID: "stone-wall", Name: "Stone wall",
		Materials:  []content.Ingredient{{Item: "timber", N: 2}, {Item: "stone", N: 3}},
		BuildSkill: intPtr(1),
	}))
	return repo
}

func newChara(t *testing.T, repo *content.Repository, id string, pos world.Pos) *character.Character {
	t.Helper()
	return &character.Character{
		ID:        id,
		Name:      id,
		Attrs:     character.Attributes{Int: 10, Spd: 100},
		Skills:    map[character.SkillKind]int{character.MagicDevice: 2},
		HP:        character.NewPool(30),
		SP:        character.NewPool(10),
		MP:        character.NewPool(10),
		Status:    status.NewLedger(),
		Inventory: inventory.NewBackpack(20, 100),
		Pos:       pos,
	}
}

func give(t *testing.T, repo *content.Repository, c *character.Character, item string, n int) {
	t.Helper()
	require.NoError(t, c.Inventory.Add(item, n, repo.Items()))
}
