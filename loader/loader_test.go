package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nmorin/dungeoncore/engine/catalog"
	"github.com/nmorin/dungeoncore/types"
)

func TestLoadValidPack(t *testing.T) {
	pack, err := Load("testdata/valid")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(pack.Weapons) != 2 || len(pack.Clothing) != 1 || len(pack.Armor) != 1 {
		t.Errorf("gear counts: %d weapons, %d clothing, %d armor",
			len(pack.Weapons), len(pack.Clothing), len(pack.Armor))
	}
	if len(pack.Potions) != 2 || len(pack.Monsters) != 2 || len(pack.General) != 1 {
		t.Errorf("counts: %d potions, %d monsters, %d general",
			len(pack.Potions), len(pack.Monsters), len(pack.General))
	}
	if len(pack.Maps) != 1 {
		t.Fatalf("expected 1 map, got %d", len(pack.Maps))
	}

	cat := catalog.New()
	pack.Apply(cat)

	if cat.Classify("Obsidian Pike") != types.ClassWeapon {
		t.Error("pack weapon not in catalog")
	}
	if !cat.IsTwoHanded("Obsidian Pike") {
		t.Error("two_handed flag lost")
	}
	if tier, _ := cat.WeaponTier("Obsidian Pike"); tier != types.TierHigh {
		t.Error("tier lost")
	}
	if atk, def := cat.ItemStats("Obsidian Plate"); atk != 0 || def != 14 {
		t.Errorf("pack armor stats = (%d,%d)", atk, def)
	}
	if slot, ok := cat.BodySlot("Traveler's Cloak"); !ok || slot != "Body" {
		t.Errorf("pack clothing slot = %q", slot)
	}
	eff, ok := cat.PotionEffect("Elixir of Haste")
	if !ok || eff.Stat != "Speed" || eff.Duration != 60 {
		t.Errorf("pack potion effect = %+v", eff)
	}
	found := false
	for _, m := range cat.ByLevelWindow(19) {
		if m.Name == "Obsidian Golem" {
			found = true
		}
	}
	if !found {
		t.Error("pack monster not in roster window")
	}
}

func TestPackMapConvertsToDungeon(t *testing.T) {
	pack, err := Load("testdata/valid")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m := pack.Maps[0]
	if m.Name != "Practice Pit" || m.Width != 5 || m.Height != 5 {
		t.Fatalf("map header = %+v", m)
	}

	d := m.Dungeon()
	if len(d.Levels) != 1 || d.StartX != 2 || d.StartY != 2 {
		t.Fatalf("dungeon = %d levels, start (%d,%d)", len(d.Levels), d.StartX, d.StartY)
	}
	if d.Levels[0].Tiles[0][0] != types.TileWall {
		t.Error("border should be wall")
	}
	if d.Levels[0].Tiles[2][2] != types.TileFloor {
		t.Error("start should be floor")
	}
}

func TestLoadRejectsBadContent(t *testing.T) {
	cases := map[string]string{
		"testdata/bad_slot":   "invalid slot",
		"testdata/bad_potion": "stat or an effect",
		"testdata/duplicate":  "already defined",
		"testdata/bad_map":    "bad tile code",
	}
	for dir, wantErr := range cases {
		_, err := Load(dir)
		if err == nil {
			t.Errorf("Load(%s) accepted bad content", dir)
			continue
		}
		if !strings.Contains(err.Error(), wantErr) {
			t.Errorf("Load(%s) error %q, want mention of %q", dir, err, wantErr)
		}
	}
}

func TestLoadEmptyDirFails(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("empty directory accepted")
	}
}

func TestSandboxBlocksOSAccess(t *testing.T) {
	dir := t.TempDir()
	script := `
if os ~= nil and os.execute ~= nil then
    error("os.execute is reachable")
end
if io ~= nil then
    error("io is reachable")
end
if dofile ~= nil then
    error("dofile is reachable")
end
Item "Probe"
`
	if err := os.WriteFile(filepath.Join(dir, "probe.lua"), []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}
	pack, err := Load(dir)
	if err != nil {
		t.Fatalf("sandbox probe failed: %v", err)
	}
	if len(pack.General) != 1 || pack.General[0] != "Probe" {
		t.Errorf("pack = %+v", pack.General)
	}
}

func TestLoadRuntimeErrorSurfacesFile(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "broken.lua"), []byte(`Weapon "Half" `+"\n"+`nonsense(`), 0o644)
	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "broken.lua") {
		t.Errorf("error %v should name the failing file", err)
	}
}
