package cli

import (
	"strings"
	"testing"

	"github.com/nmorin/dungeoncore/engine"
	"github.com/nmorin/dungeoncore/engine/catalog"
	"github.com/nmorin/dungeoncore/engine/dungeon"
	"github.com/nmorin/dungeoncore/engine/save"
	"github.com/nmorin/dungeoncore/engine/state"
)

func testCLI(t *testing.T, script string) (*CLI, *strings.Builder) {
	t.Helper()
	eng, err := engine.NewGame("Scripted", 42, catalog.New(), dungeon.DefaultConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	// Suppress random encounters so scripted sessions stay deterministic.
	eng.State.Paused = true

	store, err := save.NewSlotStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewSlotStore: %v", err)
	}
	out := &strings.Builder{}
	return &CLI{
		Engine: eng,
		Store:  store,
		In:     strings.NewReader(script),
		Out:    out,
	}, out
}

func TestScriptedSession(t *testing.T) {
	c, out := testCLI(t, strings.Join([]string{
		"/help",
		"right",
		"look",
		"i",
		"/state",
		"/quit",
	}, "\n"))
	c.Run()

	text := out.String()
	wants := []string{
		"Movement:",
		"Facing east.",
		"[Floor 1]",
		"Compass",
		"name=Scripted",
		"Farewell.",
	}
	for _, want := range wants {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q\n%s", want, text)
		}
	}
}

func TestSaveAndLoadSlots(t *testing.T) {
	c, out := testCLI(t, strings.Join([]string{
		"/save 2",
		"/slots",
		"/load 2",
		"/load 3",
		"/save 99",
		"/quit",
	}, "\n"))
	c.Run()

	text := out.String()
	if !strings.Contains(text, "Saved to slot 2.") {
		t.Errorf("save not confirmed:\n%s", text)
	}
	if !strings.Contains(text, "2: saved") {
		t.Errorf("slot listing missing:\n%s", text)
	}
	if !strings.Contains(text, "Loaded slot 2.") {
		t.Errorf("load not confirmed:\n%s", text)
	}
	if !strings.Contains(text, "Slot 3 is empty.") {
		t.Errorf("empty slot not reported:\n%s", text)
	}
	if !strings.Contains(text, "out of range") {
		t.Errorf("slot 99 not rejected:\n%s", text)
	}
}

func TestUseMenuEquipsWeapon(t *testing.T) {
	c, out := testCLI(t, strings.Join([]string{
		"u", // open use menu
		"1", // pick the sword (only usable item)
		"1", // primary
		"/state",
		"/quit",
	}, "\n"))
	// Strip the starting kit down to a single weapon so menu indexes are fixed.
	c.Engine.State.Inventory = nil
	state.AddItem(c.Engine.State, "Sword", 1)
	c.Run()

	if c.Engine.State.PrimaryWeapon != "Sword" {
		t.Errorf("primary = %q, want Sword", c.Engine.State.PrimaryWeapon)
	}
	if !strings.Contains(out.String(), `primary="Sword"`) {
		t.Errorf("state dump missing weapon:\n%s", out.String())
	}
}

func TestBattleScript(t *testing.T) {
	c, _ := testCLI(t, strings.Join([]string{
		"6", // run (guaranteed by speed below)
		"/quit",
	}, "\n"))
	eng := c.Engine
	eng.State.Paused = false
	eng.State.Stats.Speed = 100
	eng.StartBattle()
	if !eng.State.Battle.InBattle {
		t.Fatal("battle did not start")
	}
	c.Run()
	if eng.State.Battle.InBattle {
		t.Error("run command did not end the battle")
	}
}
