// Package types defines the shared data structures for the dungeoncore
// simulation. This package contains only type definitions — no logic, no
// methods.
package types

// TileKind is the wire code for one dungeon grid cell. The numeric values
// are fixed by the map interchange format and must not be reordered.
type TileKind int

const (
	TileFloor      TileKind = 0
	TileWall       TileKind = 1
	TileStairsDown TileKind = 2
	TileStairsUp   TileKind = 3
)

// Level is one dungeon floor: a Height×Width grid of tile codes,
// indexed Tiles[y][x].
type Level struct {
	Width  int
	Height int
	Tiles  [][]TileKind
}

// Dungeon is an ordered stack of levels plus the designated player start.
type Dungeon struct {
	Width  int
	Height int
	StartX int
	StartY int
	Levels []*Level
}

// Stats is the ordered record of the seven base attributes. Each is
// clamped to [0, 255] by the character package.
type Stats struct {
	Stamina      int `json:"Stamina"`
	Charisma     int `json:"Charisma"`
	Strength     int `json:"Strength"`
	Intelligence int `json:"Intelligence"`
	Wisdom       int `json:"Wisdom"`
	Skill        int `json:"Skill"`
	Speed        int `json:"Speed"`
}

// StatNames lists the seven attributes in their canonical order.
var StatNames = []string{
	"Stamina", "Charisma", "Strength", "Intelligence", "Wisdom", "Skill", "Speed",
}

// CombatStats are the equipment-derived numbers used by battle resolution.
type CombatStats struct {
	Attack  int
	Defense int
	Skill   int
	Speed   int
}

// ItemClass is the catalog classification of an item name.
type ItemClass int

const (
	ClassOther ItemClass = iota
	ClassWeapon
	ClassClothing
	ClassArmor
	ClassPotion
)

// WeaponTier separates mundane from magical weapons; the tier drives the
// flat attack/defense contribution in combat.
type WeaponTier int

const (
	TierLow WeaponTier = iota
	TierHigh
)

// BodySlots lists the six clothing/armor slots in menu order.
var BodySlots = []string{"Head", "Hands", "Arms", "Body", "Legs", "Feet"}

// PotionEffect describes what drinking a potion does. Stat potions carry a
// stat name and bonus; special potions carry a named Effect instead.
// Duration > 0 marks a temporary effect (game minutes); zero is permanent.
type PotionEffect struct {
	Stat     string
	Bonus    int
	Duration int
	Effect   string // "invisibility", "cure_disease", "relieve_fatigue", ...
}

// InventoryEntry is one stack of a named item. Count never goes negative;
// a zero-count entry stays in the list but is hidden from usable views.
type InventoryEntry struct {
	Name     string `json:"name"`
	Count    int    `json:"count"`
	Equipped bool   `json:"equipped,omitempty"`
}

// Monster is a static roster entry.
type Monster struct {
	Name    string
	Level   int
	HP      int
	Attack  int
	Defense int
	Exp     int
	Gold    int
}

// MonsterInstance is a per-encounter clone of a roster entry. Only HP
// mutates during the encounter; Equipment is rolled at spawn and dropped
// on victory (it does not alter the monster's own combat numbers).
type MonsterInstance struct {
	Name      string   `json:"name"`
	Level     int      `json:"level"`
	HP        int      `json:"hitpoints"`
	Attack    int      `json:"attack"`
	Defense   int      `json:"defense"`
	Exp       int      `json:"exp"`
	Gold      int      `json:"gold"`
	Equipment []string `json:"equipment,omitempty"`
}

// TemporaryEffect is one timed stat boost (or invisibility). Duration is in
// game minutes; the tick clock decrements it and flips Active off at zero.
type TemporaryEffect struct {
	Active   bool `json:"active"`
	Duration int  `json:"duration"`
	Bonus    int  `json:"bonus,omitempty"`
}

// BattleState is the transient in-battle bookkeeping. It is reset to a safe
// default when a save is loaded; WaitingTurn in particular is never trusted
// from persisted data.
type BattleState struct {
	InBattle    bool             `json:"inBattle"`
	Monster     *MonsterInstance `json:"currentMonster,omitempty"`
	WaitingTurn bool             `json:"-"`
	Log         []string         `json:"-"`
}

// UIState holds the mutually exclusive interaction-mode flags. Pending
// equip selections live here because they are two-step interactions, not
// durable state.
type UIState struct {
	ShowInventory   bool   `json:"showInventory"`
	ShowLoseMode    bool   `json:"showLoseMode"`
	ShowGetMode     bool   `json:"showGetMode"`
	GetItemIndex    int    `json:"getItemIndex"`
	ShowUseMode     bool   `json:"showUseMode"`
	UseItemIndex    int    `json:"useItemIndex"`
	WeaponEquipMode bool   `json:"showWeaponEquipMode"`
	WeaponToEquip   string `json:"weaponToEquip,omitempty"`
	ClothingEquip   bool   `json:"showClothingEquipMode"`
	ClothingToEquip string `json:"clothingToEquip,omitempty"`
}

// CameraPose is the presentation layer's view state, persisted opaquely so
// a session resumes exactly where it left off.
type CameraPose struct {
	X   float64 `json:"X"`
	Y   float64 `json:"Y"`
	Z   float64 `json:"Z"`
	Yaw float64 `json:"Yaw"`
}

// GameState is the aggregate root for one character's session.
type GameState struct {
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Hitpoints  int    `json:"hitpoints"`
	Experience int    `json:"experience"`

	BaseStats Stats `json:"baseStats"`
	Stats     Stats `json:"stats"` // derived: base + bonuses, reclamped

	Inventory   []InventoryEntry    `json:"inventory"`
	GroundItems map[string][]string `json:"groundItems"` // key "floor:x,y"

	PrimaryWeapon   string            `json:"primaryWeapon,omitempty"`
	SecondaryWeapon string            `json:"secondaryWeapon,omitempty"`
	Clothing        map[string]string `json:"equippedClothing"` // body slot → item name

	Effects map[string]TemporaryEffect `json:"temporaryEffects"` // stat name or "invisibility"

	DungeonFloor int `json:"dungeonLevel"`
	TileX        int `json:"tileX"`
	TileY        int `json:"tileY"`
	Heading      int `json:"heading"` // 0=N 1=E 2=S 3=W

	GameTime int  `json:"gameTime"` // simulated minutes since session start
	Paused   bool `json:"-"`

	UI     UIState     `json:"ui"`
	Battle BattleState `json:"battle"`

	RNGSeed     int64 `json:"rngSeed"`
	RNGPosition int64 `json:"rngPosition"`
}

// Direction deltas indexed by heading (N, E, S, W).
var (
	HeadingDX = []int{0, 1, 0, -1}
	HeadingDY = []int{-1, 0, 1, 0}
)

// BattleAction is one of the six battle menu entries.
type BattleAction int

const (
	ActionAttack   BattleAction = 1
	ActionCharge   BattleAction = 2
	ActionAimed    BattleAction = 3
	ActionTransact BattleAction = 4
	ActionPass     BattleAction = 5
	ActionRun      BattleAction = 6
)

// OutcomeStatus classifies the result of one resolved battle turn.
type OutcomeStatus int

const (
	OutcomeOngoing OutcomeStatus = iota
	OutcomeWaitingMonster
	OutcomeVictory
	OutcomeBartered
	OutcomeFled
	OutcomeDead
)

// BattleOutcome is the synchronous result of ResolvePlayerAction or
// ResolveMonsterTurn.
type BattleOutcome struct {
	Status OutcomeStatus
	Log    []string
}
