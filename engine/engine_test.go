package engine

import (
	"testing"

	"github.com/nmorin/dungeoncore/engine/catalog"
	"github.com/nmorin/dungeoncore/engine/dungeon"
	"github.com/nmorin/dungeoncore/engine/rng"
	"github.com/nmorin/dungeoncore/engine/state"
	"github.com/nmorin/dungeoncore/types"
)

// testDungeon is a fixed two-floor 5x5 layout. Floor 0 has a down
// staircase at (3,1) matched by an up staircase on floor 1.
func testDungeon() *types.Dungeon {
	const W, F, D, U = types.TileWall, types.TileFloor, types.TileStairsDown, types.TileStairsUp
	l0 := &types.Level{Width: 5, Height: 5, Tiles: [][]types.TileKind{
		{W, W, W, W, W},
		{W, F, F, D, W},
		{W, F, W, F, W},
		{W, F, F, F, W},
		{W, W, W, W, W},
	}}
	l1 := &types.Level{Width: 5, Height: 5, Tiles: [][]types.TileKind{
		{W, W, W, W, W},
		{W, F, F, U, W},
		{W, F, W, F, W},
		{W, F, F, F, W},
		{W, W, W, W, W},
	}}
	return &types.Dungeon{Width: 5, Height: 5, StartX: 1, StartY: 1, Levels: []*types.Level{l0, l1}}
}

func testEngine(seed int64) *Engine {
	r := rng.New(seed)
	s := state.NewState("Tester", &types.Stats{
		Stamina: 30, Charisma: 12, Strength: 20,
		Intelligence: 11, Wisdom: 13, Skill: 14, Speed: 16,
	}, r)
	d := testDungeon()
	s.TileX, s.TileY = d.StartX, d.StartY
	return &Engine{Catalog: catalog.New(), Dungeon: d, State: s, RNG: r}
}

func TestNewGamePlacesPlayerAtStart(t *testing.T) {
	e, err := NewGame("Hero", 42, catalog.New(), dungeon.DefaultConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if e.State.TileX != 32 || e.State.TileY != 32 {
		t.Errorf("start tile = (%d,%d), want (32,32)", e.State.TileX, e.State.TileY)
	}
	if e.State.DungeonFloor != 0 || e.State.Heading != 0 {
		t.Errorf("floor=%d heading=%d, want 0 and 0", e.State.DungeonFloor, e.State.Heading)
	}
}

func TestNewGameFromPrebuiltDungeon(t *testing.T) {
	e, err := NewGameFrom("Hero", 42, catalog.New(), testDungeon())
	if err != nil {
		t.Fatalf("NewGameFrom: %v", err)
	}
	if e.State.TileX != 1 || e.State.TileY != 1 {
		t.Errorf("start tile = (%d,%d), want (1,1)", e.State.TileX, e.State.TileY)
	}

	// Walling off (2,1) and (1,2) strands the floor tile at (1,1).
	bad := testDungeon()
	bad.Levels[0].Tiles[1][2] = types.TileWall
	bad.Levels[0].Tiles[2][1] = types.TileWall
	bad.StartX, bad.StartY = 1, 3
	if _, err := NewGameFrom("Hero", 42, catalog.New(), bad); err == nil {
		t.Error("disconnected dungeon accepted")
	}
}

func TestMoveAndTurn(t *testing.T) {
	e := testEngine(1)
	s := e.State

	// Facing north at (1,1): the wall border blocks.
	if e.Move(1) {
		t.Error("move into border wall succeeded")
	}
	e.TurnRight() // east
	if !e.Move(1) || s.TileX != 2 || s.TileY != 1 {
		t.Errorf("eastward step: (%d,%d)", s.TileX, s.TileY)
	}
	// Backward returns west.
	if !e.Move(-1) || s.TileX != 1 || s.TileY != 1 {
		t.Errorf("backward step: (%d,%d)", s.TileX, s.TileY)
	}
	e.TurnLeft() // north again
	e.TurnLeft() // west
	if e.Move(1) {
		t.Error("move into west wall succeeded")
	}
	if s.Heading != 3 {
		t.Errorf("heading = %d, want 3", s.Heading)
	}
}

func TestMoveBlockedInBattle(t *testing.T) {
	e := testEngine(1)
	e.State.Battle.InBattle = true
	e.TurnRight()
	if e.Move(1) {
		t.Error("movement allowed during battle")
	}
}

func TestUseStairs(t *testing.T) {
	e := testEngine(1)
	s := e.State

	if e.UseStairs() {
		t.Error("stairs used from a plain floor tile")
	}
	s.TileX, s.TileY = 3, 1
	if !e.UseStairs() || s.DungeonFloor != 1 {
		t.Errorf("descend failed, floor = %d", s.DungeonFloor)
	}
	if s.TileX != 3 || s.TileY != 1 {
		t.Errorf("position changed across floors: (%d,%d)", s.TileX, s.TileY)
	}
	if !e.UseStairs() || s.DungeonFloor != 0 {
		t.Errorf("ascend failed, floor = %d", s.DungeonFloor)
	}
}

func TestTickCountsTimeAndSpawnsEncounters(t *testing.T) {
	e := testEngine(7)
	spawned := false
	for i := 0; i < 200 && !spawned; i++ {
		if m := e.Tick(); m != nil {
			spawned = true
			if !e.State.Battle.InBattle || !e.State.Paused {
				t.Error("encounter did not enter battle state")
			}
			if m.Level < 1 || m.Level > e.State.Level+2 {
				t.Errorf("monster level %d outside window for player level %d", m.Level, e.State.Level)
			}
		}
	}
	if !spawned {
		t.Error("no encounter in 200 ticks at 10% per tick")
	}
	if e.State.GameTime != 200 && !spawned {
		t.Errorf("game time = %d", e.State.GameTime)
	}
}

func TestTickSkipsEncountersWhilePaused(t *testing.T) {
	e := testEngine(7)
	e.State.Paused = true
	for i := 0; i < 200; i++ {
		if m := e.Tick(); m != nil {
			t.Fatal("encounter spawned while paused")
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	e := testEngine(11)
	for i := 0; i < 25; i++ {
		e.RNG.Intn(100)
	}
	e.Snapshot()

	resumed := Resume(e.Catalog, e.Dungeon, e.State)
	want := e.RNG.Intn(1000)
	got := resumed.RNG.Intn(1000)
	if want != got {
		t.Errorf("resumed stream diverged: %d vs %d", got, want)
	}
}
