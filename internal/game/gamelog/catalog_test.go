package gamelog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/ruins/internal/game/gamelog"
)

func catalogDir(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en-US.yaml"), []byte(`
locale: en-US
messages:
  asleep: "{chara} is sleeping."
  building-shortage-material: "{n} more {item} needed."
  use-active-skill-magic: "{chara} casts {active_skill}."
  poison-damage: "{chara} takes {damage} poison damage (100% real)."
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ja.yaml"), []byte(`
locale: ja
messages:
  asleep: "{chara}は眠っている。"
`), 0644))
	return dir
}

func TestCatalog_RenderBase(t *testing.T) {
	c, err := gamelog.LoadCatalog(catalogDir(t), "en-US")
	require.NoError(t, err)

	assert.Equal(t, "Rin is sleeping.", c.Render(gamelog.Entry{ID: "asleep", Args: []gamelog.Arg{gamelog.Chara("Rin")}}))
	assert.Equal(t, "3 more Timber needed.", c.Render(gamelog.Entry{
		ID:   "building-shortage-material",
		Args: []gamelog.Arg{gamelog.Item("Timber"), gamelog.N(3)},
	}))
	assert.Equal(t, "Rin takes 7 poison damage (100% real).", c.Render(gamelog.Entry{
		ID:   "poison-damage",
		Args: []gamelog.Arg{gamelog.Chara("Rin"), gamelog.Damage(7)},
	}))
}

func TestCatalog_LocaleAndFallback(t *testing.T) {
	c, err := gamelog.LoadCatalog(catalogDir(t), "ja-JP")
	require.NoError(t, err)

	assert.Equal(t, "Rinは眠っている。", c.Render(gamelog.Entry{ID: "asleep", Args: []gamelog.Arg{gamelog.Chara("Rin")}}))
	assert.Equal(t, "Rin casts fire-ball.", c.Render(gamelog.Entry{
		ID:   "use-active-skill-magic",
		Args: []gamelog.Arg{gamelog.Chara("Rin"), gamelog.Skill("fire-ball")},
	}))
	assert.True(t, c.Has("poison-damage"))
}

func TestCatalog_UnknownIDAndMissingArgs(t *testing.T) {
	c, err := gamelog.LoadCatalog(catalogDir(t), "en-US")
	require.NoError(t, err)
	assert.Equal(t, "no-such-message", c.Render(gamelog.Entry{ID: "no-such-message"}))
	assert.False(t, c.Has("no-such-message"))
	assert.Equal(t, "{chara} is sleeping.", c.Render(gamelog.Entry{ID: "asleep"}))
}

func TestLoadCatalog_Errors(t *testing.T) {
	t.Run("empty dir", func(t *testing.T) {
		_, err := gamelog.LoadCatalog(t.TempDir(), "en-US")
		assert.Error(t, err)
	})
	t.Run("missing base", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "ja.yaml"), []byte("locale: ja\nmessages: {a: b}\n"), 0644))
		_, err := gamelog.LoadCatalog(dir, "ja")
		assert.Error(t, err)
	})
	t.Run("locale mismatch", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "en-US.yaml"), []byte("locale: fr\nmessages: {a: b}\n"), 0644))
		_, err := gamelog.LoadCatalog(dir, "en-US")
		assert.Error(t, err)
	})
	t.Run("bad active locale", func(t *testing.T) {
		_, err := gamelog.LoadCatalog(catalogDir(t), "!!")
		assert.Error(t, err)
	})
}

func TestCatalog_AddRejectsBlankID(t *testing.T) {
	c := gamelog.NewCatalog()
	assert.Error(t, c.Add("en-US", map[string]string{" ": "x"}))
	assert.Error(t, c.Add("en-US", nil))
}
