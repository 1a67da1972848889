// Package catalog resolves item names and the monster roster. Every lookup
// is an exact-name match against the catalog tables; unknown names classify
// as ClassOther and contribute nothing in combat.
package catalog

import (
	"github.com/nmorin/dungeoncore/engine/rng"
	"github.com/nmorin/dungeoncore/types"
)

// weaponInfo is the catalog record for one weapon name.
type weaponInfo struct {
	Tier      types.WeaponTier
	TwoHanded bool
}

// Catalog is the item and monster database. A fresh Catalog holds the
// built-in tables; content packs extend it through the Add methods.
type Catalog struct {
	general  map[string]bool
	clothing map[string]string // name -> body slot
	armor    map[string]armorPiece
	weapons  map[string]weaponInfo
	potions  map[string]types.PotionEffect

	lowTier  []string
	highTier []string
	clothes  []string
	armors   []string

	roster []types.Monster
}

// New builds a catalog from the built-in tables.
func New() *Catalog {
	c := &Catalog{
		general:  make(map[string]bool, len(generalItems)),
		clothing: make(map[string]string, len(clothingSlots)),
		armor:    make(map[string]armorPiece, len(armorPieces)),
		weapons:  make(map[string]weaponInfo, len(lowTierWeapons)+len(highTierWeapons)),
		potions:  make(map[string]types.PotionEffect, len(potionEffects)),
	}
	for _, n := range generalItems {
		c.general[n] = true
	}
	for n, slot := range clothingSlots {
		c.AddClothing(n, slot)
	}
	for n, p := range armorPieces {
		c.AddArmor(n, p.Slot, p.Defense)
	}
	two := make(map[string]bool, len(twoHandedWeapons))
	for _, n := range twoHandedWeapons {
		two[n] = true
	}
	for _, n := range lowTierWeapons {
		c.AddWeapon(n, types.TierLow, two[n])
	}
	for _, n := range highTierWeapons {
		c.AddWeapon(n, types.TierHigh, two[n])
	}
	for n, e := range potionEffects {
		c.AddPotion(n, e)
	}
	c.roster = append(c.roster, monsterRoster...)
	return c
}

// AddWeapon registers a weapon name with its tier.
func (c *Catalog) AddWeapon(name string, tier types.WeaponTier, twoHanded bool) {
	if _, dup := c.weapons[name]; !dup {
		if tier == types.TierHigh {
			c.highTier = append(c.highTier, name)
		} else {
			c.lowTier = append(c.lowTier, name)
		}
	}
	c.weapons[name] = weaponInfo{Tier: tier, TwoHanded: twoHanded}
}

// AddClothing registers a clothing item on a body slot.
func (c *Catalog) AddClothing(name, slot string) {
	if _, dup := c.clothing[name]; !dup {
		c.clothes = append(c.clothes, name)
	}
	c.clothing[name] = slot
}

// AddArmor registers an armor item with its slot and defense value.
func (c *Catalog) AddArmor(name, slot string, defense int) {
	if _, dup := c.armor[name]; !dup {
		c.armors = append(c.armors, name)
	}
	c.armor[name] = armorPiece{Slot: slot, Defense: defense}
}

// AddPotion registers a potion with its drink effect.
func (c *Catalog) AddPotion(name string, effect types.PotionEffect) {
	c.potions[name] = effect
}

// AddGeneral registers a plain carryable item.
func (c *Catalog) AddGeneral(name string) {
	c.general[name] = true
}

// AddMonster appends a roster entry.
func (c *Catalog) AddMonster(m types.Monster) {
	c.roster = append(c.roster, m)
}

// Classify returns the item class for a name. Weapon takes precedence,
// then clothing, then armor, then potion; anything else is ClassOther.
func (c *Catalog) Classify(name string) types.ItemClass {
	switch {
	case c.IsWeapon(name):
		return types.ClassWeapon
	case c.clothing[name] != "":
		return types.ClassClothing
	case c.armor[name].Slot != "":
		return types.ClassArmor
	default:
		if _, ok := c.potions[name]; ok {
			return types.ClassPotion
		}
		return types.ClassOther
	}
}

// IsWeapon reports whether the name is a known weapon.
func (c *Catalog) IsWeapon(name string) bool {
	_, ok := c.weapons[name]
	return ok
}

// WeaponTier returns the tier of a known weapon.
func (c *Catalog) WeaponTier(name string) (types.WeaponTier, bool) {
	w, ok := c.weapons[name]
	return w.Tier, ok
}

// IsTwoHanded reports whether the weapon needs both hands.
func (c *Catalog) IsTwoHanded(name string) bool {
	return c.weapons[name].TwoHanded
}

// ItemStats returns the flat attack and defense an item contributes in
// combat. Weapons contribute by tier, armor by its defense value; clothing
// and everything else contribute nothing.
func (c *Catalog) ItemStats(name string) (attack, defense int) {
	if w, ok := c.weapons[name]; ok {
		if w.Tier == types.TierHigh {
			return highTierAttack, highTierDefense
		}
		return lowTierAttack, lowTierDefense
	}
	if a, ok := c.armor[name]; ok {
		return 0, a.Defense
	}
	return 0, 0
}

// BodySlot returns the body slot a clothing or armor item occupies.
func (c *Catalog) BodySlot(name string) (string, bool) {
	if slot, ok := c.clothing[name]; ok {
		return slot, true
	}
	if a, ok := c.armor[name]; ok {
		return a.Slot, true
	}
	return "", false
}

// IsWearable reports whether the item equips on a body slot.
func (c *Catalog) IsWearable(name string) bool {
	_, ok := c.BodySlot(name)
	return ok
}

// PotionEffect returns the drink effect of a potion name.
func (c *Catalog) PotionEffect(name string) (types.PotionEffect, bool) {
	e, ok := c.potions[name]
	return e, ok
}

// IsPotion reports whether the name is a known potion.
func (c *Catalog) IsPotion(name string) bool {
	_, ok := c.potions[name]
	return ok
}

// Roster returns the monster roster in level order.
func (c *Catalog) Roster() []types.Monster {
	return c.roster
}

// ByLevelWindow returns roster entries whose level falls inside
// [max(1, level-2), level+2]. An empty window falls back to the first
// roster entry so an encounter can always be produced.
func (c *Catalog) ByLevelWindow(level int) []types.Monster {
	lo := level - 2
	if lo < 1 {
		lo = 1
	}
	hi := level + 2
	var out []types.Monster
	for _, m := range c.roster {
		if m.Level >= lo && m.Level <= hi {
			out = append(out, m)
		}
	}
	if len(out) == 0 && len(c.roster) > 0 {
		out = append(out, c.roster[0])
	}
	return out
}

// RandomClothing picks a uniformly random clothing item name.
func (c *Catalog) RandomClothing(r *rng.RNG) string {
	return c.clothes[r.Intn(len(c.clothes))]
}

// RandomArmor picks a uniformly random armor item name.
func (c *Catalog) RandomArmor(r *rng.RNG) string {
	return c.armors[r.Intn(len(c.armors))]
}

// RandomWeapon picks a uniformly random weapon of the given tier.
func (c *Catalog) RandomWeapon(r *rng.RNG, tier types.WeaponTier) string {
	if tier == types.TierHigh {
		return c.highTier[r.Intn(len(c.highTier))]
	}
	return c.lowTier[r.Intn(len(c.lowTier))]
}
