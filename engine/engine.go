// Package engine drives the simulation: movement on the dungeon grid,
// the game clock with its random encounters, and battle resolution. The
// engine owns no globals; every session is one Engine value.
package engine

import (
	"fmt"

	"github.com/nmorin/dungeoncore/engine/catalog"
	"github.com/nmorin/dungeoncore/engine/dungeon"
	"github.com/nmorin/dungeoncore/engine/grid"
	"github.com/nmorin/dungeoncore/engine/rng"
	"github.com/nmorin/dungeoncore/engine/state"
	"github.com/nmorin/dungeoncore/types"
)

// encounterChance is the per-tick probability of a monster encounter.
const encounterChance = 0.10

// Engine is one running session: the catalog, the generated dungeon, the
// character state, and the deterministic random stream behind it all.
type Engine struct {
	Catalog *catalog.Catalog
	Dungeon *types.Dungeon
	State   *types.GameState
	RNG     *rng.RNG
}

// NewGame generates a dungeon from the seed and creates a fresh character
// standing at the dungeon start, facing north.
func NewGame(name string, seed int64, cat *catalog.Catalog, cfg dungeon.Config) (*Engine, error) {
	r := rng.New(seed)
	d, err := dungeon.Generate(cfg, r)
	if err != nil {
		return nil, fmt.Errorf("generate dungeon: %w", err)
	}
	s := state.NewState(name, nil, r)
	s.TileX = d.StartX
	s.TileY = d.StartY
	return &Engine{Catalog: cat, Dungeon: d, State: s, RNG: r}, nil
}

// NewGameFrom creates a fresh character on a pre-built dungeon, such as
// one loaded from a content pack. The dungeon must pass connectivity
// validation.
func NewGameFrom(name string, seed int64, cat *catalog.Catalog, d *types.Dungeon) (*Engine, error) {
	if err := dungeon.Validate(d); err != nil {
		return nil, fmt.Errorf("validate dungeon: %w", err)
	}
	r := rng.New(seed)
	s := state.NewState(name, nil, r)
	s.TileX = d.StartX
	s.TileY = d.StartY
	return &Engine{Catalog: cat, Dungeon: d, State: s, RNG: r}, nil
}

// Resume rebuilds an engine around restored state. The random stream is
// advanced to the persisted position so the session continues exactly
// where it stopped.
func Resume(cat *catalog.Catalog, d *types.Dungeon, s *types.GameState) *Engine {
	return &Engine{
		Catalog: cat,
		Dungeon: d,
		State:   s,
		RNG:     rng.Restore(s.RNGSeed, s.RNGPosition),
	}
}

// Snapshot records the random stream position into the state, making it
// safe to persist.
func (e *Engine) Snapshot() {
	e.State.RNGSeed = e.RNG.Seed()
	e.State.RNGPosition = e.RNG.Position()
}

// CurrentLevel returns the floor the player stands on.
func (e *Engine) CurrentLevel() *types.Level {
	f := e.State.DungeonFloor
	if f < 0 || f >= len(e.Dungeon.Levels) {
		return nil
	}
	return e.Dungeon.Levels[f]
}

// Move steps the player one tile along the heading (dir +1) or its
// reverse (dir -1). A wall blocks the step and the move reports false.
func (e *Engine) Move(dir int) bool {
	if e.State.Battle.InBattle {
		return false
	}
	h := e.State.Heading
	nx := e.State.TileX + types.HeadingDX[h]*dir
	ny := e.State.TileY + types.HeadingDY[h]*dir
	if !grid.IsWalkable(e.CurrentLevel(), nx, ny) {
		return false
	}
	e.State.TileX, e.State.TileY = nx, ny
	return true
}

// TurnLeft rotates the heading counterclockwise.
func (e *Engine) TurnLeft() {
	e.State.Heading = (e.State.Heading + 3) % 4
}

// TurnRight rotates the heading clockwise.
func (e *Engine) TurnRight() {
	e.State.Heading = (e.State.Heading + 1) % 4
}

// UseStairs descends or ascends when the player stands on a staircase.
// Tile coordinates carry over unchanged; the matching staircase occupies
// the same position on the destination floor.
func (e *Engine) UseStairs() bool {
	s := e.State
	switch grid.TileAt(e.CurrentLevel(), s.TileX, s.TileY) {
	case types.TileStairsDown:
		if s.DungeonFloor < len(e.Dungeon.Levels)-1 {
			s.DungeonFloor++
			return true
		}
	case types.TileStairsUp:
		if s.DungeonFloor > 0 {
			s.DungeonFloor--
			return true
		}
	}
	return false
}

// Tick advances the game clock one minute: temporary effects count down
// and, outside battle and pause, an encounter may start. It returns the
// monster when one appears.
func (e *Engine) Tick() *types.MonsterInstance {
	s := e.State
	s.GameTime++
	state.TickEffects(s)
	if !s.Battle.InBattle && !s.Paused && e.RNG.Chance(encounterChance) {
		e.StartBattle()
		return s.Battle.Monster
	}
	return nil
}
