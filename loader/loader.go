// Package loader reads Lua content packs: extra weapons, wearables,
// potions, monsters, and hand-built maps. Item and monster definitions
// merge into the catalog; maps convert to playable dungeons. Packs run in
// a sandboxed VM with no filesystem or OS access, and the VM is discarded
// once the pack is compiled.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nmorin/dungeoncore/engine/catalog"
)

// collector accumulates raw Lua definitions during file execution.
type collector struct {
	file     string // file currently executing, for error messages
	weapons  []rawEntry
	clothing []rawEntry
	armor    []rawEntry
	potions  []rawEntry
	monsters []rawEntry
	maps     []rawEntry
	general  []string
}

// rawEntry is one named Lua table captured by a constructor.
type rawEntry struct {
	name  string
	table *lua.LTable
	file  string
}

// Load reads every .lua file in dir and compiles the definitions into a
// Pack ready to merge into a catalog.
func Load(dir string) (*Pack, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}
	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	sort.Strings(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		coll.file = f
		if err := L.DoFile(filepath.Join(dir, f)); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	pack, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling content pack: %w", err)
	}
	return pack, nil
}

// Apply merges a loaded pack into the catalog. Maps are not catalog
// content; callers convert those with MapDef.Dungeon.
func (p *Pack) Apply(cat *catalog.Catalog) {
	for _, w := range p.Weapons {
		cat.AddWeapon(w.Name, w.Tier, w.TwoHanded)
	}
	for _, c := range p.Clothing {
		cat.AddClothing(c.Name, c.Slot)
	}
	for _, a := range p.Armor {
		cat.AddArmor(a.Name, a.Slot, a.Defense)
	}
	for _, pot := range p.Potions {
		cat.AddPotion(pot.Name, pot.Effect)
	}
	for _, g := range p.General {
		cat.AddGeneral(g)
	}
	for _, m := range p.Monsters {
		cat.AddMonster(m)
	}
}

// openSafeLibs opens only the safe subset of the Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that reach outside the VM.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}
