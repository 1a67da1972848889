package engine

import (
	"fmt"
	"math"

	"github.com/nmorin/dungeoncore/engine/character"
	"github.com/nmorin/dungeoncore/engine/state"
	"github.com/nmorin/dungeoncore/types"
)

// PlayerCombatStats folds equipment into the derived attributes. Attack
// comes from Strength plus the primary weapon; defense from half Strength
// plus the secondary weapon and every worn piece. Pairing a two-handed
// primary with a secondary halves effective skill.
func (e *Engine) PlayerCombatStats() types.CombatStats {
	s := e.State
	cs := types.CombatStats{
		Attack:  s.Stats.Strength,
		Defense: s.Stats.Strength / 2,
		Skill:   s.Stats.Skill,
		Speed:   s.Stats.Speed,
	}
	if s.PrimaryWeapon != "" {
		atk, _ := e.Catalog.ItemStats(s.PrimaryWeapon)
		cs.Attack += atk
	}
	if s.SecondaryWeapon != "" {
		_, def := e.Catalog.ItemStats(s.SecondaryWeapon)
		cs.Defense += def
		if s.PrimaryWeapon != "" && e.Catalog.IsTwoHanded(s.PrimaryWeapon) {
			cs.Skill = int(math.Floor(float64(cs.Skill) * 0.5))
		}
	}
	for _, worn := range s.Clothing {
		if worn != "" {
			_, def := e.Catalog.ItemStats(worn)
			cs.Defense += def
		}
	}
	return cs
}

// StartBattle spawns an encounter scaled to the player level and pauses
// the world clock. It is a no-op while a battle is already running.
func (e *Engine) StartBattle() {
	s := e.State
	if s.Battle.InBattle || s.Paused {
		return
	}
	s.Battle = types.BattleState{
		InBattle: true,
		Monster:  e.spawnMonster(s.Level),
	}
	s.Paused = true
}

// spawnMonster clones a roster entry from the player's level window and
// rolls its carried equipment. Strong monsters always carry a magical
// weapon plus a wearable; weaker ones only sometimes carry anything.
func (e *Engine) spawnMonster(playerLevel int) *types.MonsterInstance {
	pick := e.Catalog.ByLevelWindow(playerLevel)
	m := pick[e.RNG.Intn(len(pick))]
	inst := &types.MonsterInstance{
		Name: m.Name, Level: m.Level, HP: m.HP,
		Attack: m.Attack, Defense: m.Defense,
		Exp: m.Exp, Gold: m.Gold,
	}
	if m.Level >= 11 {
		inst.Equipment = append(inst.Equipment, e.Catalog.RandomWeapon(e.RNG, types.TierHigh))
		if e.RNG.Chance(0.5) {
			inst.Equipment = append(inst.Equipment, e.Catalog.RandomClothing(e.RNG))
		} else {
			inst.Equipment = append(inst.Equipment, e.Catalog.RandomArmor(e.RNG))
		}
	} else if e.RNG.Chance(0.30) {
		if e.RNG.Chance(0.5) {
			inst.Equipment = append(inst.Equipment, e.Catalog.RandomWeapon(e.RNG, types.TierLow))
		} else if e.RNG.Chance(0.5) {
			inst.Equipment = append(inst.Equipment, e.Catalog.RandomClothing(e.RNG))
		} else {
			inst.Equipment = append(inst.Equipment, e.Catalog.RandomArmor(e.RNG))
		}
	}
	return inst
}

// ResolvePlayerAction resolves one battle menu choice synchronously.
// Every non-terminal outcome leaves the battle waiting on the monster;
// the caller follows up with ResolveMonsterTurn.
func (e *Engine) ResolvePlayerAction(action types.BattleAction) types.BattleOutcome {
	s := e.State
	if !s.Battle.InBattle || s.Battle.Monster == nil {
		return types.BattleOutcome{Status: types.OutcomeOngoing}
	}
	if s.Battle.WaitingTurn {
		return types.BattleOutcome{Status: types.OutcomeWaitingMonster}
	}
	monster := s.Battle.Monster
	cs := e.PlayerCombatStats()

	baseHit := float64(70 + cs.Skill - monster.Level*2)
	mult := 1.0
	var log []string

	switch action {
	case types.ActionAttack:
	case types.ActionCharge:
		baseHit -= 20
		mult = 1.5
	case types.ActionAimed:
		if e.RNG.Chance(0.3) {
			log = append(log, "You wait for an opening...")
			return e.waitMonster(log)
		}
		baseHit += 30
		mult = 1.3
	case types.ActionTransact:
		chance := float64(30 + (s.Stats.Charisma-monster.Level)*5)
		if e.RNG.Percent() < chance {
			log = append(log, fmt.Sprintf("You calmed the %s.", monster.Name))
			e.winBattle(false)
			return types.BattleOutcome{Status: types.OutcomeBartered, Log: log}
		}
		log = append(log, "Transact failed.")
		return e.waitMonster(log)
	case types.ActionRun:
		chance := float64(50 + (s.Stats.Speed-monster.Level*2)*5)
		if e.RNG.Percent() < chance {
			s.Battle = types.BattleState{}
			s.Paused = false
			return types.BattleOutcome{Status: types.OutcomeFled, Log: []string{"You ran away!"}}
		}
		log = append(log, "Failed to run!")
		return e.waitMonster(log)
	default:
		// Pass.
		return e.waitMonster(log)
	}

	if e.RNG.Percent() < baseHit {
		dmg := e.rollDamage(cs.Attack, monster.Defense, mult)
		monster.HP -= dmg
		log = append(log, fmt.Sprintf("You hit %s for %d damage!", monster.Name, dmg))
		if monster.HP <= 0 {
			log = append(log, fmt.Sprintf("You defeated %s!", monster.Name))
			e.winBattle(true)
			return types.BattleOutcome{Status: types.OutcomeVictory, Log: log}
		}
	} else {
		log = append(log, fmt.Sprintf("You missed %s.", monster.Name))
	}
	return e.waitMonster(log)
}

// waitMonster hands the turn to the monster.
func (e *Engine) waitMonster(log []string) types.BattleOutcome {
	e.State.Battle.WaitingTurn = true
	e.State.Battle.Log = append(e.State.Battle.Log, log...)
	return types.BattleOutcome{Status: types.OutcomeWaitingMonster, Log: log}
}

// ResolveMonsterTurn resolves the monster's counterattack and returns the
// turn to the player.
func (e *Engine) ResolveMonsterTurn() types.BattleOutcome {
	s := e.State
	monster := s.Battle.Monster
	if !s.Battle.InBattle || monster == nil || monster.HP <= 0 {
		return types.BattleOutcome{Status: types.OutcomeOngoing}
	}
	s.Battle.WaitingTurn = false

	var log []string
	hitChance := float64(70 + monster.Level*2 - s.Stats.Speed)
	if e.RNG.Percent() < hitChance {
		dmg := e.rollDamage(monster.Attack, e.PlayerCombatStats().Defense, 1.0)
		s.Hitpoints -= dmg
		log = append(log, fmt.Sprintf("%s hits you for %d damage!", monster.Name, dmg))
		if s.Hitpoints <= 0 {
			s.Battle.Log = append(s.Battle.Log, log...)
			return types.BattleOutcome{Status: types.OutcomeDead, Log: log}
		}
	} else {
		log = append(log, fmt.Sprintf("%s missed you!", monster.Name))
	}
	s.Battle.Log = append(s.Battle.Log, log...)
	return types.BattleOutcome{Status: types.OutcomeOngoing, Log: log}
}

// rollDamage computes one damage roll: attack against half defense, the
// action multiplier, and a 0.8..1.2 variance, never below 1.
func (e *Engine) rollDamage(attack, defense int, mult float64) int {
	base := float64(attack) - float64(defense)/2
	if base < 1 {
		base = 1
	}
	dmg := int(math.Floor(base * mult * e.RNG.Variance()))
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// winBattle ends the encounter in the player's favor: experience, level
// checks, and (for a kill, not a barter) the monster's equipment dropping
// onto the player's tile.
func (e *Engine) winBattle(dropEquipment bool) {
	s := e.State
	monster := s.Battle.Monster
	if monster == nil {
		return
	}
	s.Experience += monster.Exp
	character.CheckLevelUp(s, e.RNG)

	if dropEquipment && len(monster.Equipment) > 0 {
		key := state.GroundKey(s.DungeonFloor, s.TileX, s.TileY)
		s.GroundItems[key] = append(s.GroundItems[key], monster.Equipment...)
	}

	s.Battle = types.BattleState{}
	s.Paused = false
}
