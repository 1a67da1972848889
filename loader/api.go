package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the content constructors as Lua globals. Each is
// curried: Weapon "name" { ... } calls Weapon("name") which returns a
// function taking the definition table.
func registerAPI(L *lua.LState, coll *collector) {
	curried := func(sink *[]rawEntry) *lua.LFunction {
		return L.NewFunction(func(L *lua.LState) int {
			name := L.CheckString(1)
			file := coll.file
			L.Push(L.NewFunction(func(L *lua.LState) int {
				tbl := L.CheckTable(1)
				*sink = append(*sink, rawEntry{name: name, table: tbl, file: file})
				return 0
			}))
			return 1
		})
	}

	L.SetGlobal("Weapon", curried(&coll.weapons))
	L.SetGlobal("Clothing", curried(&coll.clothing))
	L.SetGlobal("Armor", curried(&coll.armor))
	L.SetGlobal("Potion", curried(&coll.potions))
	L.SetGlobal("Monster", curried(&coll.monsters))
	L.SetGlobal("Map", curried(&coll.maps))

	// Item "name" — a plain carryable with no definition table.
	L.SetGlobal("Item", L.NewFunction(func(L *lua.LState) int {
		coll.general = append(coll.general, L.CheckString(1))
		return 0
	}))
}

// tableGrid reads a nested array field: level → row → tile code. A
// non-numeric cell becomes -1 so compilation can report it.
func tableGrid(tbl *lua.LTable, key string) [][][]int {
	outer, ok := tbl.RawGetString(key).(*lua.LTable)
	if !ok {
		return nil
	}
	var levels [][][]int
	outer.ForEach(func(_, lv lua.LValue) {
		lt, ok := lv.(*lua.LTable)
		if !ok {
			return
		}
		var rows [][]int
		lt.ForEach(func(_, rv lua.LValue) {
			rt, ok := rv.(*lua.LTable)
			if !ok {
				return
			}
			var row []int
			rt.ForEach(func(_, cv lua.LValue) {
				if n, ok := cv.(lua.LNumber); ok {
					row = append(row, int(n))
				} else {
					row = append(row, -1)
				}
			})
			rows = append(rows, row)
		})
		levels = append(levels, rows)
	})
	return levels
}

// tableString reads a string field, with a default.
func tableString(tbl *lua.LTable, key, def string) string {
	if v := tbl.RawGetString(key); v != lua.LNil {
		if s, ok := v.(lua.LString); ok {
			return string(s)
		}
	}
	return def
}

// tableInt reads an integer field, with a default.
func tableInt(tbl *lua.LTable, key string, def int) int {
	if v := tbl.RawGetString(key); v != lua.LNil {
		if n, ok := v.(lua.LNumber); ok {
			return int(n)
		}
	}
	return def
}

// tableBool reads a boolean field, with a default.
func tableBool(tbl *lua.LTable, key string, def bool) bool {
	if v := tbl.RawGetString(key); v != lua.LNil {
		if b, ok := v.(lua.LBool); ok {
			return bool(b)
		}
	}
	return def
}
