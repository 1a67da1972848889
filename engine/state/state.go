// Package state manages the mutable session state: character creation,
// inventory and ground piles, equipping, and item use. All mutators take
// the state explicitly; nothing here is global.
package state

import (
	"fmt"

	"github.com/nmorin/dungeoncore/engine/catalog"
	"github.com/nmorin/dungeoncore/engine/character"
	"github.com/nmorin/dungeoncore/engine/rng"
	"github.com/nmorin/dungeoncore/types"
)

// NewState creates a fresh character at level 0; the first 1000
// experience earns level 1. When base is nil the seven base stats roll
// 8..21 each; hitpoints start at base Stamina.
func NewState(name string, base *types.Stats, r *rng.RNG) *types.GameState {
	s := &types.GameState{
		Name:  name,
		Level: 0,
		Inventory: []types.InventoryEntry{
			{Name: "Compass", Count: 1, Equipped: true},
			{Name: "Timepiece", Count: 1, Equipped: true},
			{Name: "Food", Count: 0},
			{Name: "Torches", Count: 0},
			{Name: "Flasks", Count: 0},
		},
		GroundItems: map[string][]string{},
		Clothing:    map[string]string{},
		Effects:     map[string]types.TemporaryEffect{},
		RNGSeed:     r.Seed(),
	}
	for _, slot := range types.BodySlots {
		s.Clothing[slot] = ""
	}
	for _, stat := range types.StatNames {
		s.Effects[stat] = types.TemporaryEffect{}
	}
	s.Effects["invisibility"] = types.TemporaryEffect{}

	if base != nil {
		s.BaseStats = *base
	} else {
		for _, stat := range types.StatNames {
			character.Set(&s.BaseStats, stat, r.Range(8, 21))
		}
	}
	s.Hitpoints = s.BaseStats.Stamina
	character.RecalcDerived(s)
	return s
}

// GroundKey builds the ground-pile key for a tile on a dungeon floor.
func GroundKey(floor, x, y int) string {
	return fmt.Sprintf("%d:%d,%d", floor, x, y)
}

// findEntry returns the inventory entry for a name, or nil.
func findEntry(s *types.GameState, name string) *types.InventoryEntry {
	for i := range s.Inventory {
		if s.Inventory[i].Name == name {
			return &s.Inventory[i]
		}
	}
	return nil
}

// AddItem adds count of a named item to the inventory, merging into an
// existing stack when one exists.
func AddItem(s *types.GameState, name string, count int) {
	if count <= 0 {
		return
	}
	if e := findEntry(s, name); e != nil {
		e.Count += count
		return
	}
	s.Inventory = append(s.Inventory, types.InventoryEntry{Name: name, Count: count})
}

// HasItem reports whether the inventory holds at least one of the name.
func HasItem(s *types.GameState, name string) bool {
	e := findEntry(s, name)
	return e != nil && e.Count > 0
}

// UsableItems returns the inventory entries with a positive count, in
// inventory order. Menus index into this view.
func UsableItems(s *types.GameState) []types.InventoryEntry {
	var out []types.InventoryEntry
	for _, e := range s.Inventory {
		if e.Count > 0 {
			out = append(out, e)
		}
	}
	return out
}

// GroundAt returns the pile of item names on the player's current tile.
func GroundAt(s *types.GameState) []string {
	return s.GroundItems[GroundKey(s.DungeonFloor, s.TileX, s.TileY)]
}

// DropItem moves one unit of the indexed usable item onto the player's
// tile. Equipped slots referencing the dropped name are cleared when the
// last unit leaves the inventory.
func DropItem(s *types.GameState, index int) bool {
	usable := UsableItems(s)
	if index < 0 || index >= len(usable) {
		return false
	}
	name := usable[index].Name
	e := findEntry(s, name)
	if e == nil || e.Count <= 0 {
		return false
	}
	e.Count--
	if e.Count == 0 {
		e.Equipped = false
		unequipByName(s, name)
	}
	key := GroundKey(s.DungeonFloor, s.TileX, s.TileY)
	s.GroundItems[key] = append(s.GroundItems[key], name)
	return true
}

// GetItem picks up the indexed item from the player's tile pile.
func GetItem(s *types.GameState, index int) bool {
	key := GroundKey(s.DungeonFloor, s.TileX, s.TileY)
	pile := s.GroundItems[key]
	if index < 0 || index >= len(pile) {
		return false
	}
	name := pile[index]
	s.GroundItems[key] = append(pile[:index:index], pile[index+1:]...)
	if len(s.GroundItems[key]) == 0 {
		delete(s.GroundItems, key)
	}
	AddItem(s, name, 1)
	return true
}

// unequipByName clears any equipment slot holding the named item.
func unequipByName(s *types.GameState, name string) {
	if s.PrimaryWeapon == name {
		s.PrimaryWeapon = ""
	}
	if s.SecondaryWeapon == name {
		s.SecondaryWeapon = ""
	}
	for slot, worn := range s.Clothing {
		if worn == name {
			s.Clothing[slot] = ""
		}
	}
}

// UseItem dispatches the indexed usable item. Weapons and wearables flip
// the state into the matching two-step equip mode and report false
// (further input needed); consumables apply immediately and report true.
func UseItem(s *types.GameState, cat *catalog.Catalog, index int) bool {
	usable := UsableItems(s)
	if index < 0 || index >= len(usable) {
		return true
	}
	name := usable[index].Name

	if cat.IsWeapon(name) {
		s.UI.WeaponToEquip = name
		s.UI.WeaponEquipMode = true
		s.UI.ShowUseMode = false
		return false
	}
	if cat.IsWearable(name) {
		s.UI.ClothingToEquip = name
		s.UI.ClothingEquip = true
		s.UI.ShowUseMode = false
		return false
	}
	if cat.IsPotion(name) {
		drinkPotion(s, cat, name)
		return true
	}

	e := findEntry(s, name)
	switch name {
	case "Food", "Food Packet":
		s.Hitpoints = min(s.Hitpoints+10, s.BaseStats.Stamina)
		e.Count--
	case "Water Flask", "Flasks":
		s.Hitpoints = min(s.Hitpoints+5, s.BaseStats.Stamina)
		e.Count--
	case "Unlit Torch":
		e.Name = "Lit Torch"
	case "Lit Torch":
		e.Name = "Burnt Stick"
	}
	return true
}

// drinkPotion applies a potion effect and consumes one unit. Re-drinking
// an active temporary potion resets its clock rather than stacking.
func drinkPotion(s *types.GameState, cat *catalog.Catalog, name string) {
	effect, ok := cat.PotionEffect(name)
	if !ok {
		return
	}
	switch {
	case effect.Duration > 0:
		key := effect.Stat
		if key == "" {
			key = effect.Effect
		}
		s.Effects[key] = types.TemporaryEffect{Active: true, Duration: effect.Duration, Bonus: effect.Bonus}
		character.RecalcDerived(s)
	case effect.Stat != "":
		character.Set(&s.BaseStats, effect.Stat, character.Get(s.BaseStats, effect.Stat)+effect.Bonus)
		character.RecalcDerived(s)
	case effect.Effect == "relieve_fatigue":
		s.Hitpoints = s.BaseStats.Stamina
	}
	if e := findEntry(s, name); e != nil {
		e.Count--
	}
}

// EquipWeapon resolves a pending weapon equip into the primary or
// secondary slot. The displaced weapon stays in the inventory.
func EquipWeapon(s *types.GameState, slot string) {
	if s.UI.WeaponToEquip == "" {
		return
	}
	switch slot {
	case "primary":
		s.PrimaryWeapon = s.UI.WeaponToEquip
	case "secondary":
		s.SecondaryWeapon = s.UI.WeaponToEquip
	}
	s.UI.WeaponToEquip = ""
	s.UI.WeaponEquipMode = false
}

// EquipClothing resolves a pending wearable equip onto a body slot. A
// slot that does not match the item's catalog slot cancels the equip.
func EquipClothing(s *types.GameState, cat *catalog.Catalog, bodySlot string) {
	name := s.UI.ClothingToEquip
	s.UI.ClothingToEquip = ""
	s.UI.ClothingEquip = false
	if name == "" {
		return
	}
	if want, ok := cat.BodySlot(name); ok && want == bodySlot {
		s.Clothing[bodySlot] = name
	}
}

// CloseModes clears every interaction mode flag.
func CloseModes(s *types.GameState) {
	s.UI = types.UIState{}
}

// ToggleInventory flips the inventory view and closes the other modes.
func ToggleInventory(s *types.GameState) {
	open := !s.UI.ShowInventory
	CloseModes(s)
	s.UI.ShowInventory = open
}

// OpenLoseMode enters the drop-item menu.
func OpenLoseMode(s *types.GameState) {
	CloseModes(s)
	s.UI.ShowLoseMode = true
}

// OpenGetMode enters the pick-up menu.
func OpenGetMode(s *types.GameState) {
	CloseModes(s)
	s.UI.ShowGetMode = true
}

// OpenUseMode enters the use-item menu.
func OpenUseMode(s *types.GameState) {
	CloseModes(s)
	s.UI.ShowUseMode = true
}

// TickEffects advances the temporary-effect clocks by one game minute and
// recomputes derived stats when an effect expires.
func TickEffects(s *types.GameState) {
	expired := false
	for key, eff := range s.Effects {
		if !eff.Active {
			continue
		}
		eff.Duration--
		if eff.Duration <= 0 {
			eff = types.TemporaryEffect{}
			expired = true
		}
		s.Effects[key] = eff
	}
	if expired {
		character.RecalcDerived(s)
	}
}
