// Package character covers the attribute math: stat clamping, derived-stat
// recalculation from base stats and timed effects, and the experience curve
// with its level-up rolls.
package character

import (
	"github.com/nmorin/dungeoncore/engine/rng"
	"github.com/nmorin/dungeoncore/types"
)

// MaxStat caps every attribute, base and derived.
const MaxStat = 255

// baseXPThreshold anchors the doubling experience curve.
const baseXPThreshold = 1000

// ClampStat bounds a stat value to [0, MaxStat].
func ClampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

// statPtrs returns named pointers into a Stats value, in canonical order.
func statPtrs(s *types.Stats) map[string]*int {
	return map[string]*int{
		"Stamina":      &s.Stamina,
		"Charisma":     &s.Charisma,
		"Strength":     &s.Strength,
		"Intelligence": &s.Intelligence,
		"Wisdom":       &s.Wisdom,
		"Skill":        &s.Skill,
		"Speed":        &s.Speed,
	}
}

// Get reads a stat by name; unknown names read as zero.
func Get(s types.Stats, name string) int {
	if p, ok := statPtrs(&s)[name]; ok {
		return *p
	}
	return 0
}

// Set writes a stat by name, clamped. Unknown names are ignored.
func Set(s *types.Stats, name string, v int) {
	if p, ok := statPtrs(s)[name]; ok {
		*p = ClampStat(v)
	}
}

// EquipmentStatBonuses returns per-stat bonuses from worn equipment.
// Equipment currently affects only combat attack/defense, so every bonus
// is zero; the hook exists so enchanted gear can feed RecalcDerived later.
func EquipmentStatBonuses(state *types.GameState) types.Stats {
	return types.Stats{}
}

// RecalcDerived recomputes state.Stats from base stats, equipment bonuses,
// and active temporary effects, clamping each result.
func RecalcDerived(state *types.GameState) {
	equip := EquipmentStatBonuses(state)
	eq := statPtrs(&equip)
	base := statPtrs(&state.BaseStats)
	out := statPtrs(&state.Stats)
	for _, name := range types.StatNames {
		total := *base[name] + *eq[name]
		if eff, ok := state.Effects[name]; ok && eff.Active {
			total += eff.Bonus
		}
		*out[name] = ClampStat(total)
	}
}

// XPThreshold is the experience one level costs: 1000 for level 1,
// doubling every level after.
func XPThreshold(level int) int {
	if level <= 0 {
		return 0
	}
	return baseXPThreshold << (level - 1)
}

// CumulativeXP is the total experience required to hold a level.
func CumulativeXP(level int) int {
	if level <= 0 {
		return 0
	}
	return baseXPThreshold * ((1 << level) - 1)
}

// LevelUpResult records one level gained and the per-stat increases rolled.
type LevelUpResult struct {
	NewLevel  int
	Increases map[string]int
}

// CheckLevelUp applies every level the accumulated experience has earned.
// Each level rolls +3..6 on every base stat that is not already maxed and
// never lowers current hitpoints. The loop is bounded by the doubling
// curve, which outruns any finite experience total.
func CheckLevelUp(state *types.GameState, r *rng.RNG) []LevelUpResult {
	var results []LevelUpResult
	for state.Experience >= CumulativeXP(state.Level+1) {
		state.Level++
		res := LevelUpResult{NewLevel: state.Level, Increases: make(map[string]int)}
		base := statPtrs(&state.BaseStats)
		for _, name := range types.StatNames {
			cur := *base[name]
			if cur >= MaxStat {
				res.Increases[name] = 0
				continue
			}
			next := ClampStat(cur + r.Range(3, 6))
			*base[name] = next
			res.Increases[name] = next - cur
		}
		if state.Hitpoints < state.BaseStats.Stamina {
			state.Hitpoints = state.BaseStats.Stamina
		}
		results = append(results, res)
	}
	if len(results) > 0 {
		RecalcDerived(state)
	}
	return results
}
