package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/ruins/internal/game/character"
)

func newChara() *character.Character {
	return &character.Character{
		Name:   "tester",
		Attrs:  character.Attributes{Str: 5, Vit: 6, Dex: 7, Int: 8, Wil: 9, Cha: 10, Spd: 100},
		Skills: map[character.SkillKind]int{character.MagicDevice: 3},
		HP:     character.NewPool(40),
		SP:     character.NewPool(10),
		MP:     character.NewPool(5),
	}
}

func TestAttributes_Attr(t *testing.T) {
	c := newChara()
	assert.Equal(t, 5, c.Attr(character.Str))
	assert.Equal(t, 8, c.Attr(character.Int))
	assert.Equal(t, 100, c.Attr(character.Spd))
	assert.Equal(t, 0, c.Attr("luck"))
}

func TestSkillLevel_UntrainedIsZero(t *testing.T) {
	c := newChara()
	assert.Equal(t, 3, c.SkillLevel(character.MagicDevice))
	assert.Equal(t, 0, c.SkillLevel(character.Construction))
}

func TestDamage_ClampsAtZero(t *testing.T) {
	c := newChara()
	assert.Equal(t, 40, c.Damage(100))
	assert.Equal(t, 0, c.HP.Cur)
	assert.True(t, c.IsDead())
	assert.Equal(t, 0, c.Damage(1))
}

func TestHeal_ClampsAtMax(t *testing.T) {
	c := newChara()
	c.Damage(10)
	assert.Equal(t, 10, c.Heal(50))
	assert.Equal(t, 40, c.HP.Cur)
}

func TestDamage_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { newChara().Damage(-1) })
	assert.Panics(t, func() { newChara().Heal(-1) })
}

func TestCanAfford(t *testing.T) {
	c := newChara()
	assert.True(t, c.CanAfford(10, 5))
	assert.False(t, c.CanAfford(11, 0))
	assert.False(t, c.CanAfford(0, 6))
}

func TestPropertyPoolsNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := newChara()
		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				c.Damage(rapid.IntRange(0, 50).Draw(t, "dmg"))
			case 1:
				c.Heal(rapid.IntRange(0, 50).Draw(t, "heal"))
			case 2:
				c.AddSP(rapid.IntRange(-20, 20).Draw(t, "sp"))
			case 3:
				c.AddMP(rapid.IntRange(-20, 20).Draw(t, "mp"))
			}
			for _, p := range []character.Pool{c.HP, c.SP, c.MP} {
				if p.Cur < 0 || p.Cur > p.Max {
					t.Fatalf("pool out of range: %v", p)
				}
			}
		}
	})
}
