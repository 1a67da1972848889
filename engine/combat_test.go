package engine

import (
	"testing"

	"github.com/nmorin/dungeoncore/types"
)

func TestPlayerCombatStatsBare(t *testing.T) {
	e := testEngine(1)
	cs := e.PlayerCombatStats()
	if cs.Attack != 20 || cs.Defense != 10 || cs.Skill != 14 || cs.Speed != 16 {
		t.Errorf("bare stats = %+v", cs)
	}
}

func TestPlayerCombatStatsEquipped(t *testing.T) {
	e := testEngine(1)
	s := e.State
	s.PrimaryWeapon = "Flame Sword" // high tier: 30 attack
	s.SecondaryWeapon = "Shield"    // low tier: 2 defense
	s.Clothing["Body"] = "Chain Mail"
	s.Clothing["Head"] = "Iron Helm"
	s.Clothing["Feet"] = "Cotton Shoes" // clothing, no defense

	cs := e.PlayerCombatStats()
	if cs.Attack != 50 {
		t.Errorf("attack = %d, want 20+30", cs.Attack)
	}
	if cs.Defense != 10+2+8+3 {
		t.Errorf("defense = %d, want 23", cs.Defense)
	}
	if cs.Skill != 14 {
		t.Errorf("one-handed primary should not touch skill: %d", cs.Skill)
	}
}

func TestTwoHandedSkillPenalty(t *testing.T) {
	e := testEngine(1)
	s := e.State
	s.Stats.Skill = 15
	s.PrimaryWeapon = "Dragon Blade" // two-handed

	if cs := e.PlayerCombatStats(); cs.Skill != 15 {
		t.Errorf("two-handed alone penalized skill: %d", cs.Skill)
	}
	s.SecondaryWeapon = "Dagger"
	if cs := e.PlayerCombatStats(); cs.Skill != 7 {
		t.Errorf("two-handed plus secondary skill = %d, want floor(15*0.5)=7", cs.Skill)
	}
}

func TestRollDamageBounds(t *testing.T) {
	e := testEngine(3)
	for i := 0; i < 200; i++ {
		dmg := e.rollDamage(50, 20, 1.0)
		if dmg < 32 || dmg > 48 {
			t.Fatalf("damage %d outside [32,48] for atk 50 def 20", dmg)
		}
	}
	// Attack fully absorbed still lands at least 1.
	for i := 0; i < 50; i++ {
		if dmg := e.rollDamage(1, 100, 1.0); dmg < 1 {
			t.Fatalf("damage %d below 1", dmg)
		}
	}
}

func startTestBattle(e *Engine, m types.MonsterInstance) {
	e.State.Battle = types.BattleState{InBattle: true, Monster: &m}
	e.State.Paused = true
}

func TestResolvePlayerActionBlockedWhileWaiting(t *testing.T) {
	e := testEngine(5)
	startTestBattle(e, types.MonsterInstance{Name: "Goblin", Level: 2, HP: 15, Attack: 8, Defense: 4, Exp: 20})
	e.State.Battle.WaitingTurn = true

	out := e.ResolvePlayerAction(types.ActionAttack)
	if out.Status != types.OutcomeWaitingMonster {
		t.Errorf("status = %v, want waiting", out.Status)
	}
	if e.State.Battle.Monster.HP != 15 {
		t.Error("blocked action still dealt damage")
	}
}

func TestAttackKillsAndDropsEquipment(t *testing.T) {
	e := testEngine(5)
	e.State.Stats.Skill = 200 // guaranteed hit
	e.State.Stats.Strength = 100
	startTestBattle(e, types.MonsterInstance{
		Name: "Goblin", Level: 2, HP: 1, Attack: 8, Defense: 4, Exp: 20,
		Equipment: []string{"Sword"},
	})

	out := e.ResolvePlayerAction(types.ActionAttack)
	if out.Status != types.OutcomeVictory {
		t.Fatalf("status = %v, want victory", out.Status)
	}
	if e.State.Battle.InBattle || e.State.Paused {
		t.Error("battle state not cleared after victory")
	}
	if e.State.Experience != 20 {
		t.Errorf("experience = %d, want 20", e.State.Experience)
	}
	pile := e.State.GroundItems["0:1,1"]
	if len(pile) != 1 || pile[0] != "Sword" {
		t.Errorf("dropped equipment = %v", pile)
	}
}

func TestBarterAwardsExpWithoutDrops(t *testing.T) {
	e := testEngine(5)
	e.State.Stats.Charisma = 100 // guaranteed calm
	startTestBattle(e, types.MonsterInstance{
		Name: "Goblin", Level: 2, HP: 15, Attack: 8, Defense: 4, Exp: 20,
		Equipment: []string{"Sword"},
	})

	out := e.ResolvePlayerAction(types.ActionTransact)
	if out.Status != types.OutcomeBartered {
		t.Fatalf("status = %v, want bartered", out.Status)
	}
	if e.State.Experience != 20 {
		t.Errorf("experience = %d, want 20", e.State.Experience)
	}
	if len(e.State.GroundItems) != 0 {
		t.Errorf("barter dropped equipment: %v", e.State.GroundItems)
	}
}

func TestRunGuaranteedEscape(t *testing.T) {
	e := testEngine(5)
	e.State.Stats.Speed = 100
	startTestBattle(e, types.MonsterInstance{Name: "Goblin", Level: 2, HP: 15, Attack: 8, Defense: 4})

	out := e.ResolvePlayerAction(types.ActionRun)
	if out.Status != types.OutcomeFled {
		t.Fatalf("status = %v, want fled", out.Status)
	}
	if e.State.Battle.InBattle || e.State.Paused {
		t.Error("battle not cleared after escape")
	}
}

func TestMonsterTurnCanKillPlayer(t *testing.T) {
	e := testEngine(5)
	e.State.Hitpoints = 1
	e.State.Stats.Speed = 0 // level 20 against speed 0 cannot miss
	startTestBattle(e, types.MonsterInstance{Name: "Death Knight", Level: 20, HP: 160, Attack: 75, Defense: 50})
	e.State.Battle.WaitingTurn = true

	out := e.ResolveMonsterTurn()
	if out.Status != types.OutcomeDead {
		t.Fatalf("status = %v, want dead", out.Status)
	}
	if e.State.Hitpoints > 0 {
		t.Errorf("hitpoints = %d after lethal hit", e.State.Hitpoints)
	}
}

func TestMonsterTurnClearsWaiting(t *testing.T) {
	e := testEngine(5)
	startTestBattle(e, types.MonsterInstance{Name: "Goblin", Level: 2, HP: 15, Attack: 8, Defense: 4})
	e.State.Battle.WaitingTurn = true

	out := e.ResolveMonsterTurn()
	if out.Status != types.OutcomeOngoing && out.Status != types.OutcomeDead {
		t.Fatalf("status = %v", out.Status)
	}
	if e.State.Battle.WaitingTurn {
		t.Error("waiting flag not cleared")
	}
}

func TestVictoryTriggersLevelUp(t *testing.T) {
	e := testEngine(5)
	e.State.Stats.Skill = 200
	e.State.Experience = 2999
	startTestBattle(e, types.MonsterInstance{Name: "Rat", Level: 1, HP: 1, Attack: 1, Defense: 0, Exp: 1})

	out := e.ResolvePlayerAction(types.ActionAttack)
	if out.Status != types.OutcomeVictory {
		t.Fatalf("status = %v", out.Status)
	}
	if e.State.Level != 2 {
		t.Errorf("level = %d, want 2 after crossing 3000 xp", e.State.Level)
	}
}

func TestSpawnMonsterEquipmentRules(t *testing.T) {
	e := testEngine(9)
	for i := 0; i < 100; i++ {
		m := e.spawnMonster(15)
		if m.Level >= 11 {
			if len(m.Equipment) != 2 {
				t.Fatalf("strong monster carries %d items, want 2", len(m.Equipment))
			}
			if tier, ok := e.Catalog.WeaponTier(m.Equipment[0]); !ok || tier != types.TierHigh {
				t.Fatalf("strong monster weapon %q is not high tier", m.Equipment[0])
			}
		}
	}
	for i := 0; i < 100; i++ {
		m := e.spawnMonster(1)
		if len(m.Equipment) > 1 {
			t.Fatalf("weak monster carries %d items", len(m.Equipment))
		}
	}
}
