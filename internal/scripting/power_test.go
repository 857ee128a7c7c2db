package scripting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/power"
	"github.com/cory-johannsen/ruins/internal/game/status"
	"github.com/cory-johannsen/ruins/internal/scripting"
)

func TestPowerHooks(t *testing.T) {
	mgr, logs := newTestManager(t)
	dir := writeTempLua(t, "power.lua", `
		function will_power(c)
			return c.attr.wil * 2 + c.skill.magic_device
		end
		function broken(c)
			return "lots"
		end
	`)
	require.NoError(t, mgr.Load(scripting.PowerVM, dir, 0))
	var hooks power.HookSet = mgr.PowerHooks()

	actor := &character.Character{
		ID:     "mage",
		Attrs:  character.Attributes{Wil: 6},
		Skills: map[character.SkillKind]int{character.MagicDevice: 3},
		Status: status.NewLedger(),
	}

	v, ok := hooks.Power("will_power", actor)
	require.True(t, ok)
	assert.Equal(t, 15.0, v)

	v, ok = hooks.Power("broken", actor)
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, 1, logs.FilterMessage("power routine returned a non-number").Len())

	_, ok = hooks.Power("missing", actor)
	assert.False(t, ok)
}

func TestPowerHooks_NoVM(t *testing.T) {
	mgr, _ := newTestManager(t)
	_, ok := mgr.PowerHooks().Power("anything", &character.Character{})
	assert.False(t, ok)
}

func TestInfo_Snapshot(t *testing.T) {
	c := &character.Character{
		ID:     "hero",
		Name:   "Hero",
		Attrs:  character.Attributes{Str: 9, Spd: 100},
		Skills: map[character.SkillKind]int{character.Construction: 2},
		HP:     character.NewPool(20),
		Status: status.NewLedger(),
	}
	c.Status.Apply(status.Hungry, status.Permanent)

	info := scripting.Info(c)
	assert.Equal(t, 9, info.Attrs["str"])
	assert.Equal(t, 100, info.Attrs["spd"])
	assert.Equal(t, 2, info.Skills["construction"])
	assert.Equal(t, []string{"hungry"}, info.Statuses)
	assert.Equal(t, 20, info.MaxHP)
}
