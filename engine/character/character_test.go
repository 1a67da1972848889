package character

import (
	"testing"

	"github.com/nmorin/dungeoncore/engine/rng"
	"github.com/nmorin/dungeoncore/types"
)

func TestClampStat(t *testing.T) {
	cases := map[int]int{-5: 0, 0: 0, 100: 100, 255: 255, 300: 255}
	for in, want := range cases {
		if got := ClampStat(in); got != want {
			t.Errorf("ClampStat(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestXPCurve(t *testing.T) {
	thresholds := map[int]int{1: 1000, 2: 2000, 3: 4000, 4: 8000}
	for lvl, want := range thresholds {
		if got := XPThreshold(lvl); got != want {
			t.Errorf("XPThreshold(%d) = %d, want %d", lvl, got, want)
		}
	}
	cumulative := map[int]int{0: 0, 1: 1000, 2: 3000, 3: 7000, 4: 15000}
	for lvl, want := range cumulative {
		if got := CumulativeXP(lvl); got != want {
			t.Errorf("CumulativeXP(%d) = %d, want %d", lvl, got, want)
		}
	}
}

func TestRecalcDerivedWithEffects(t *testing.T) {
	state := &types.GameState{
		BaseStats: types.Stats{Stamina: 20, Charisma: 10, Strength: 250, Intelligence: 12, Wisdom: 14, Skill: 16, Speed: 18},
		Effects: map[string]types.TemporaryEffect{
			"Strength": {Active: true, Duration: 30, Bonus: 10},
			"Speed":    {Active: false, Duration: 0, Bonus: 10},
		},
	}
	RecalcDerived(state)
	if state.Stats.Strength != 255 {
		t.Errorf("Strength = %d, want clamped 255", state.Stats.Strength)
	}
	if state.Stats.Speed != 18 {
		t.Errorf("inactive effect changed Speed to %d", state.Stats.Speed)
	}
	if state.Stats.Stamina != 20 {
		t.Errorf("Stamina = %d, want 20", state.Stats.Stamina)
	}
}

func TestCheckLevelUpBoundary(t *testing.T) {
	mk := func(exp int) *types.GameState {
		return &types.GameState{
			Level:      1,
			Experience: exp,
			Hitpoints:  15,
			BaseStats:  types.Stats{Stamina: 15, Charisma: 10, Strength: 10, Intelligence: 10, Wisdom: 10, Skill: 10, Speed: 10},
		}
	}

	// 2999 total is one short of the level-2 cumulative requirement.
	if res := CheckLevelUp(mk(2999), rng.New(1)); len(res) != 0 {
		t.Errorf("2999 xp leveled up: %+v", res)
	}

	state := mk(3000)
	res := CheckLevelUp(state, rng.New(1))
	if len(res) != 1 || state.Level != 2 {
		t.Fatalf("3000 xp: results=%d level=%d", len(res), state.Level)
	}
	for name, inc := range res[0].Increases {
		if inc < 3 || inc > 6 {
			t.Errorf("stat %s increased by %d, want 3..6", name, inc)
		}
	}
	if state.Hitpoints < state.BaseStats.Stamina {
		t.Errorf("hitpoints %d below new base stamina %d", state.Hitpoints, state.BaseStats.Stamina)
	}
}

func TestFirstLevelUpFromZero(t *testing.T) {
	state := &types.GameState{
		Level:      0,
		Experience: 1000,
		Hitpoints:  15,
		BaseStats:  types.Stats{Stamina: 15, Charisma: 10, Strength: 10, Intelligence: 10, Wisdom: 10, Skill: 10, Speed: 10},
	}
	res := CheckLevelUp(state, rng.New(2))
	if len(res) != 1 || state.Level != 1 {
		t.Errorf("results=%d level=%d, want exactly one level-up to 1", len(res), state.Level)
	}
}

func TestCheckLevelUpMultiple(t *testing.T) {
	state := &types.GameState{
		Level:      1,
		Experience: 7000, // cumulative for level 3
		Hitpoints:  15,
		BaseStats:  types.Stats{Stamina: 15, Charisma: 10, Strength: 10, Intelligence: 10, Wisdom: 10, Skill: 10, Speed: 10},
	}
	res := CheckLevelUp(state, rng.New(7))
	if len(res) != 2 || state.Level != 3 {
		t.Errorf("results=%d level=%d, want 2 and 3", len(res), state.Level)
	}
}

func TestCheckLevelUpMaxedStat(t *testing.T) {
	state := &types.GameState{
		Level:      1,
		Experience: 3000,
		Hitpoints:  255,
		BaseStats:  types.Stats{Stamina: 255, Charisma: 10, Strength: 10, Intelligence: 10, Wisdom: 10, Skill: 10, Speed: 10},
	}
	res := CheckLevelUp(state, rng.New(3))
	if len(res) != 1 {
		t.Fatalf("expected one level, got %d", len(res))
	}
	if res[0].Increases["Stamina"] != 0 {
		t.Errorf("maxed Stamina increased by %d", res[0].Increases["Stamina"])
	}
	if state.BaseStats.Stamina != 255 {
		t.Errorf("Stamina moved off cap: %d", state.BaseStats.Stamina)
	}
}
