package loader

import (
	"fmt"

	"github.com/nmorin/dungeoncore/types"
)

// Pack is a compiled, validated content pack.
type Pack struct {
	Weapons  []WeaponDef
	Clothing []WearableDef
	Armor    []ArmorDef
	Potions  []PotionDef
	General  []string
	Monsters []types.Monster
	Maps     []MapDef
}

// WeaponDef is one pack weapon.
type WeaponDef struct {
	Name      string
	Tier      types.WeaponTier
	TwoHanded bool
}

// WearableDef is one pack clothing item.
type WearableDef struct {
	Name string
	Slot string
}

// ArmorDef is one pack armor piece.
type ArmorDef struct {
	Name    string
	Slot    string
	Defense int
}

// PotionDef is one pack potion.
type PotionDef struct {
	Name   string
	Effect types.PotionEffect
}

// MapDef is one hand-built dungeon: level → row → tile code, with the
// player start on level 0.
type MapDef struct {
	Name   string
	Width  int
	Height int
	StartX int
	StartY int
	Levels [][][]types.TileKind
}

// Dungeon converts the map into a playable dungeon.
func (m MapDef) Dungeon() *types.Dungeon {
	d := &types.Dungeon{
		Width:  m.Width,
		Height: m.Height,
		StartX: m.StartX,
		StartY: m.StartY,
	}
	for _, src := range m.Levels {
		l := &types.Level{Width: m.Width, Height: m.Height}
		for _, row := range src {
			l.Tiles = append(l.Tiles, append([]types.TileKind(nil), row...))
		}
		d.Levels = append(d.Levels, l)
	}
	return d
}

var validSlots = func() map[string]bool {
	m := make(map[string]bool, len(types.BodySlots))
	for _, s := range types.BodySlots {
		m[s] = true
	}
	return m
}()

var validStats = func() map[string]bool {
	m := make(map[string]bool, len(types.StatNames))
	for _, s := range types.StatNames {
		m[s] = true
	}
	return m
}()

// compile turns raw Lua entries into typed definitions, validating each
// field against the catalog's expectations.
func compile(coll *collector) (*Pack, error) {
	p := &Pack{General: coll.general}
	seen := map[string]string{}
	claim := func(e rawEntry, kind string) error {
		if prev, dup := seen[e.name]; dup {
			return fmt.Errorf("%s: %s %q already defined as %s", e.file, kind, e.name, prev)
		}
		seen[e.name] = kind
		return nil
	}

	for _, e := range coll.weapons {
		if err := claim(e, "weapon"); err != nil {
			return nil, err
		}
		tier := types.TierLow
		switch t := tableString(e.table, "tier", "low"); t {
		case "low":
		case "high":
			tier = types.TierHigh
		default:
			return nil, fmt.Errorf("%s: weapon %q has unknown tier %q", e.file, e.name, t)
		}
		p.Weapons = append(p.Weapons, WeaponDef{
			Name:      e.name,
			Tier:      tier,
			TwoHanded: tableBool(e.table, "two_handed", false),
		})
	}

	for _, e := range coll.clothing {
		if err := claim(e, "clothing"); err != nil {
			return nil, err
		}
		slot := tableString(e.table, "slot", "")
		if !validSlots[slot] {
			return nil, fmt.Errorf("%s: clothing %q has invalid slot %q", e.file, e.name, slot)
		}
		p.Clothing = append(p.Clothing, WearableDef{Name: e.name, Slot: slot})
	}

	for _, e := range coll.armor {
		if err := claim(e, "armor"); err != nil {
			return nil, err
		}
		slot := tableString(e.table, "slot", "")
		if !validSlots[slot] {
			return nil, fmt.Errorf("%s: armor %q has invalid slot %q", e.file, e.name, slot)
		}
		def := tableInt(e.table, "defense", 0)
		if def <= 0 {
			return nil, fmt.Errorf("%s: armor %q needs a positive defense", e.file, e.name)
		}
		p.Armor = append(p.Armor, ArmorDef{Name: e.name, Slot: slot, Defense: def})
	}

	for _, e := range coll.potions {
		if err := claim(e, "potion"); err != nil {
			return nil, err
		}
		eff := types.PotionEffect{
			Stat:     tableString(e.table, "stat", ""),
			Bonus:    tableInt(e.table, "bonus", 0),
			Duration: tableInt(e.table, "duration", 0),
			Effect:   tableString(e.table, "effect", ""),
		}
		if eff.Stat == "" && eff.Effect == "" {
			return nil, fmt.Errorf("%s: potion %q needs a stat or an effect", e.file, e.name)
		}
		if eff.Stat != "" && !validStats[eff.Stat] {
			return nil, fmt.Errorf("%s: potion %q targets unknown stat %q", e.file, e.name, eff.Stat)
		}
		if eff.Stat != "" && eff.Bonus == 0 {
			return nil, fmt.Errorf("%s: potion %q has a stat but no bonus", e.file, e.name)
		}
		p.Potions = append(p.Potions, PotionDef{Name: e.name, Effect: eff})
	}

	for _, e := range coll.monsters {
		if err := claim(e, "monster"); err != nil {
			return nil, err
		}
		m := types.Monster{
			Name:    e.name,
			Level:   tableInt(e.table, "level", 0),
			HP:      tableInt(e.table, "hitpoints", 0),
			Attack:  tableInt(e.table, "attack", 0),
			Defense: tableInt(e.table, "defense", 0),
			Exp:     tableInt(e.table, "exp", 0),
			Gold:    tableInt(e.table, "gold", 0),
		}
		if m.Level < 1 {
			return nil, fmt.Errorf("%s: monster %q needs a level of at least 1", e.file, e.name)
		}
		if m.HP < 1 {
			return nil, fmt.Errorf("%s: monster %q needs positive hitpoints", e.file, e.name)
		}
		p.Monsters = append(p.Monsters, m)
	}

	seenMaps := map[string]bool{}
	for _, e := range coll.maps {
		if seenMaps[e.name] {
			return nil, fmt.Errorf("%s: map %q already defined", e.file, e.name)
		}
		seenMaps[e.name] = true
		m, err := compileMap(e)
		if err != nil {
			return nil, err
		}
		p.Maps = append(p.Maps, m)
	}

	return p, nil
}

// compileMap validates one map definition: consistent dimensions, known
// tile codes, and a walkable start on the first level.
func compileMap(e rawEntry) (MapDef, error) {
	m := MapDef{
		Name:   e.name,
		Width:  tableInt(e.table, "width", 0),
		Height: tableInt(e.table, "height", 0),
	}
	if m.Width < 3 || m.Height < 3 {
		return m, fmt.Errorf("%s: map %q needs width and height of at least 3", e.file, e.name)
	}
	m.StartX = tableInt(e.table, "start_x", m.Width/2)
	m.StartY = tableInt(e.table, "start_y", m.Height/2)
	if m.StartX < 0 || m.StartX >= m.Width || m.StartY < 0 || m.StartY >= m.Height {
		return m, fmt.Errorf("%s: map %q start (%d,%d) is out of bounds", e.file, e.name, m.StartX, m.StartY)
	}

	levels := tableGrid(e.table, "levels")
	if len(levels) == 0 {
		return m, fmt.Errorf("%s: map %q has no levels", e.file, e.name)
	}
	for li, rows := range levels {
		if len(rows) != m.Height {
			return m, fmt.Errorf("%s: map %q level %d has %d rows, want %d", e.file, e.name, li, len(rows), m.Height)
		}
		grid := make([][]types.TileKind, 0, m.Height)
		for ri, row := range rows {
			if len(row) != m.Width {
				return m, fmt.Errorf("%s: map %q level %d row %d has %d tiles, want %d", e.file, e.name, li, ri, len(row), m.Width)
			}
			tiles := make([]types.TileKind, m.Width)
			for ci, code := range row {
				if code < int(types.TileFloor) || code > int(types.TileStairsUp) {
					return m, fmt.Errorf("%s: map %q level %d has bad tile code %d at (%d,%d)", e.file, e.name, li, code, ci, ri)
				}
				tiles[ci] = types.TileKind(code)
			}
			grid = append(grid, tiles)
		}
		m.Levels = append(m.Levels, grid)
	}

	if m.Levels[0][m.StartY][m.StartX] != types.TileFloor {
		return m, fmt.Errorf("%s: map %q start (%d,%d) is not a floor tile", e.file, e.name, m.StartX, m.StartY)
	}
	return m, nil
}
