package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerDataResetGranularity(t *testing.T) {
	d := NewPlayerData(50)
	d.AddScore(1200)
	d.Lives = 1
	d.Health = 10
	d.Weapon = WeaponLaser
	d.Shield = ShieldReflect

	d.FullReset()
	assert.Equal(t, DefaultLives, d.Lives)
	assert.Equal(t, 0, d.Score)
	assert.Equal(t, 50, d.Health)

	// play a little, then soft reset
	d.AddScore(300)
	d.Lives = 2
	d.Health = 5
	d.Collect(ItemSpreadGun)
	d.Collect(ItemShield)
	d.Collect(ItemKey)

	d.Reset()
	assert.Equal(t, 2, d.Lives, "reset keeps lives")
	assert.Equal(t, 300, d.Score, "reset keeps score")
	assert.Equal(t, 1, d.Inventory.Keys, "reset keeps inventory")
	assert.Equal(t, 50, d.Health)
	assert.Equal(t, WeaponBlaster, d.Weapon)
	assert.Equal(t, ShieldNone, d.Shield)
}

func TestPlayerDataFullResetThenReset(t *testing.T) {
	d := NewPlayerData(0)
	d.FullReset()
	lives, score := d.Lives, d.Score
	d.Reset()
	assert.Equal(t, lives, d.Lives)
	assert.Equal(t, score, d.Score)
	assert.Equal(t, DefaultMaxHealth, d.Health)
	assert.Equal(t, WeaponBlaster, d.Weapon)
	assert.Equal(t, ShieldNone, d.Shield)
}

func TestPlayerDataDamage(t *testing.T) {
	cases := []struct {
		name       string
		shield     Shield
		hits       []int
		wantHealth int
		wantDead   bool
		wantShield Shield
	}{
		{"plain", ShieldNone, []int{30, 30}, 40, false, ShieldNone},
		{"lethal", ShieldNone, []int{60, 60}, 0, true, ShieldNone},
		{"basic_shield_takes_one_hit", ShieldBasic, []int{30, 30}, 70, false, ShieldNone},
		{"reflect_blocks_all", ShieldReflect, []int{90, 90}, 100, false, ShieldReflect},
		{"ignores_non_positive", ShieldNone, []int{0, -5}, 100, false, ShieldNone},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := NewPlayerData(100)
			d.Shield = c.shield
			dead := false
			for _, h := range c.hits {
				if d.TakeDamage(h) {
					dead = true
				}
			}
			assert.Equal(t, c.wantHealth, d.Health)
			assert.Equal(t, c.wantDead, dead)
			assert.Equal(t, c.wantDead, !d.IsAlive())
			assert.Equal(t, c.wantShield, d.Shield)
		})
	}
}

func TestPlayerDataLoseLife(t *testing.T) {
	d := NewPlayerData(100)
	d.AddScore(50)
	d.TakeDamage(100)

	assert.False(t, d.LoseLife())
	assert.Equal(t, DefaultLives-1, d.Lives)
	assert.Equal(t, 0, d.Health, "health is only restored by Reset")
	assert.Equal(t, 50, d.Score)

	d.Reset()
	assert.Equal(t, 100, d.Health)
	assert.Equal(t, DefaultLives-1, d.Lives, "respawn keeps the spent life")

	d.LoseLife()
	assert.True(t, d.LoseLife(), "last life spent")
	assert.Equal(t, 0, d.Lives)
	assert.True(t, d.LoseLife(), "lives never go negative")
	assert.Equal(t, 0, d.Lives)
}

func TestPlayerDataPickups(t *testing.T) {
	d := NewPlayerData(100)
	for _, it := range []Item{ItemKey, ItemBomb, ItemBomb, ItemPotion, ItemLaser, ItemReflector} {
		d.Collect(it)
	}
	assert.Equal(t, Inventory{Keys: 1, Bombs: 2, Potions: 1}, d.Inventory)
	assert.Equal(t, WeaponLaser, d.Weapon)
	assert.Equal(t, ShieldReflect, d.Shield)

	d.Health = 90
	d.Heal(50)
	assert.Equal(t, 100, d.Health)

	d.AddScore(-10)
	assert.Equal(t, 0, d.Score)
}

func TestPlayerDataEquipment(t *testing.T) {
	d := NewPlayerData(100)
	d.SetWeapon(WeaponSpread)
	d.SetShield(ShieldBasic)
	assert.Equal(t, "spread", d.Weapon.String())

	assert.False(t, d.TakeDamage(500), "basic shield eats one hit")
	assert.Equal(t, ShieldNone, d.Shield)
	assert.Equal(t, 100, d.Health)

	d.Reset()
	assert.Equal(t, WeaponBlaster, d.Weapon)
}

func TestPlayerDataDrinkPotion(t *testing.T) {
	d := NewPlayerData(100)
	assert.False(t, d.DrinkPotion(), "no potions")

	d.Collect(ItemPotion)
	d.Collect(ItemPotion)
	assert.False(t, d.DrinkPotion(), "already at full health")
	assert.Equal(t, 2, d.Inventory.Potions)

	d.TakeDamage(40)
	assert.True(t, d.DrinkPotion())
	assert.Equal(t, 60+PotionHeal, d.Health)
	assert.Equal(t, 1, d.Inventory.Potions)

	d.TakeDamage(100)
	assert.False(t, d.DrinkPotion(), "dead players cannot drink")
	assert.Equal(t, 1, d.Inventory.Potions)
}
