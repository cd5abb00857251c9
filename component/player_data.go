package component

// Defaults applied by PlayerData resets.
const (
	DefaultMaxHealth = 100
	DefaultLives     = 3
	// PotionHeal is the health one potion restores.
	PotionHeal = 25
)

type Weapon int

const (
	WeaponBlaster Weapon = iota
	WeaponSpread
	WeaponLaser
)

func (w Weapon) String() string {
	switch w {
	case WeaponBlaster:
		return "blaster"
	case WeaponSpread:
		return "spread"
	case WeaponLaser:
		return "laser"
	default:
		return "unknown"
	}
}

type Shield int

const (
	ShieldNone Shield = iota
	// ShieldBasic absorbs one hit and breaks.
	ShieldBasic
	// ShieldReflect absorbs every hit until the next reset.
	ShieldReflect
)

func (s Shield) String() string {
	switch s {
	case ShieldNone:
		return "none"
	case ShieldBasic:
		return "basic"
	case ShieldReflect:
		return "reflect"
	default:
		return "unknown"
	}
}

// Item is something a player can pick up.
type Item int

const (
	ItemKey Item = iota
	ItemBomb
	ItemPotion
	ItemSpreadGun
	ItemLaser
	ItemShield
	ItemReflector
)

// Inventory holds item counters.
type Inventory struct {
	Keys    int
	Bombs   int
	Potions int
}

// PlayerData is the per-player state that outlives behavior changes: health,
// lives, score, inventory and equipment. It is changed only by gameplay
// events (damage, pickups, death).
type PlayerData struct {
	MaxHealth int
	Health    int
	Lives     int
	Score     int
	Inventory Inventory
	Weapon    Weapon
	Shield    Shield
}

// NewPlayerData creates data at new-game values. `maxHealth` defaults to
// DefaultMaxHealth if <= 0.
func NewPlayerData(maxHealth int) *PlayerData {
	if maxHealth <= 0 {
		maxHealth = DefaultMaxHealth
	}
	d := &PlayerData{MaxHealth: maxHealth}
	d.FullReset()
	return d
}

// FullReset starts a new game: lives, score and inventory go back to their
// initial values, then Reset restores health and equipment.
func (d *PlayerData) FullReset() {
	d.Lives = DefaultLives
	d.Score = 0
	d.Inventory = Inventory{}
	d.Reset()
}

// Reset is the respawn reset. Only health and equipment change; lives and
// score are kept.
func (d *PlayerData) Reset() {
	d.Health = d.MaxHealth
	d.SetWeapon(WeaponBlaster)
	d.SetShield(ShieldNone)
}

// IsAlive reports whether the player has health left.
func (d *PlayerData) IsAlive() bool {
	return d != nil && d.Health > 0
}

// TakeDamage applies damage through the shield. Returns true if this hit
// brought health to zero.
func (d *PlayerData) TakeDamage(amount int) bool {
	if amount <= 0 || d.Health <= 0 {
		return false
	}
	switch d.Shield {
	case ShieldReflect:
		return false
	case ShieldBasic:
		d.Shield = ShieldNone
		return false
	}
	d.Health -= amount
	if d.Health < 0 {
		d.Health = 0
	}
	return d.Health == 0
}

// Heal restores health up to MaxHealth.
func (d *PlayerData) Heal(amount int) {
	if amount <= 0 || d.Health <= 0 {
		return
	}
	d.Health += amount
	if d.Health > d.MaxHealth {
		d.Health = d.MaxHealth
	}
}

func (d *PlayerData) AddScore(points int) {
	d.Score += points
	if d.Score < 0 {
		d.Score = 0
	}
}

func (d *PlayerData) SetWeapon(w Weapon) { d.Weapon = w }

func (d *PlayerData) SetShield(s Shield) { d.Shield = s }

// Collect applies a pickup.
func (d *PlayerData) Collect(item Item) {
	switch item {
	case ItemKey:
		d.Inventory.Keys++
	case ItemBomb:
		d.Inventory.Bombs++
	case ItemPotion:
		d.Inventory.Potions++
	case ItemSpreadGun:
		d.SetWeapon(WeaponSpread)
	case ItemLaser:
		d.SetWeapon(WeaponLaser)
	case ItemShield:
		d.SetShield(ShieldBasic)
	case ItemReflector:
		d.SetShield(ShieldReflect)
	}
}

// DrinkPotion spends one potion to heal PotionHeal. Reports whether a potion
// was used; nothing happens without potions, at full health or when dead.
func (d *PlayerData) DrinkPotion() bool {
	if d.Inventory.Potions == 0 || d.Health <= 0 || d.Health >= d.MaxHealth {
		return false
	}
	d.Inventory.Potions--
	d.Heal(PotionHeal)
	return true
}

// LoseLife records a death by spending one life. Health stays where the
// killing blow left it; Reset on respawn restores it. Returns true when no
// lives remain.
func (d *PlayerData) LoseLife() bool {
	if d.Lives > 0 {
		d.Lives--
	}
	return d.Lives == 0
}
