package catalog

import "github.com/nmorin/dungeoncore/types"

// Item tables. Names are the identity: inventory, equipment slots, and
// ground piles all reference items by exact name.

var generalItems = []string{
	"Compass", "Timepiece", "Food Packet", "Water Flask",
	"Unlit Torch", "Lit Torch", "Burnt Stick",
	"Keys", "Crystals", "Gems", "Jewels",
	"Gold", "Silver", "Copper",
	"Food", "Torches", "Flasks",
}

// clothingSlots maps each clothing item to its body slot. Clothing never
// contributes defense.
var clothingSlots = map[string]string{
	"Woolen Hat": "Head", "Leather Helm": "Head", "Silk Hood": "Head",
	"Wizard's Cap": "Head", "Crown of Speed": "Head", "Mask of Stealth": "Head",
	"Hood of Shadows": "Head", "Circlet of Wisdom": "Head", "Helm of Courage": "Head",
	"Tiara of Luck": "Head",

	"Cotton Gloves": "Hands", "Leather Gloves": "Hands", "Silk Gloves": "Hands",
	"Gauntlets of Strength": "Hands", "Gloves of Dexterity": "Hands",
	"Bracers of Defense": "Hands", "Gloves of Healing": "Hands",
	"Cursed Gauntlets": "Hands", "Gloves of Fire": "Hands",

	"Linen Sleeves": "Arms", "Leather Sleeves": "Arms", "Silk Sleeves": "Arms",
	"Bracers of Power": "Arms", "Sleeves of Accuracy": "Arms",
	"Arm Guards of Protection": "Arms", "Healing Bracers": "Arms",
	"Flame Sleeves": "Arms", "Ice Bracers": "Arms", "Poisoner's Sleeves": "Arms",

	"Cotton Shirt": "Body", "Leather Vest": "Body", "Silk Robe": "Body",
	"Robe of the Mage": "Body", "Vest of Swiftness": "Body", "Shadow Cloak": "Body",
	"Cloak of Invisibility": "Body", "Tunic of Wisdom": "Body",
	"Robe of Courage": "Body", "Lucky Tunic": "Body",

	"Cotton Pants": "Legs", "Leather Pants": "Legs", "Silk Trousers": "Legs",
	"Greaves of Might": "Legs", "Pants of Agility": "Legs",
	"Leg Guards of Steel": "Legs", "Regenerative Greaves": "Legs",
	"Flame Leggings": "Legs", "Frost Pants": "Legs", "Anti-Venom Greaves": "Legs",

	"Cotton Shoes": "Feet", "Leather Boots": "Feet", "Silk Slippers": "Feet",
	"Boots of Speed": "Feet", "Stealth Boots": "Feet", "Armored Boots": "Feet",
	"Healing Sandals": "Feet", "Poison Ward Boots": "Feet",
}

// armorPiece is one armor item: its slot and flat defense contribution.
type armorPiece struct {
	Slot    string
	Defense int
}

var armorPieces = map[string]armorPiece{
	"Iron Helm": {"Head", 3}, "Steel Helm": {"Head", 4}, "Mithril Helm": {"Head", 5},
	"Helm of Fire Protection": {"Head", 4}, "Frost Crown": {"Head", 4},
	"Helm of Clarity": {"Head", 4}, "Crown of Regeneration": {"Head", 4},
	"Speed Helm": {"Head", 4}, "Wise Helm": {"Head", 4}, "Lucky Helm": {"Head", 4},

	"Iron Gauntlets": {"Hands", 2}, "Steel Gauntlets": {"Hands", 3},
	"Mithril Gauntlets": {"Hands", 4}, "Flame Gauntlets": {"Hands", 3},
	"Ice Gauntlets": {"Hands", 3}, "Pure Gauntlets": {"Hands", 3},
	"Vital Gauntlets": {"Hands", 3}, "Swift Gauntlets": {"Hands", 3},
	"Arcane Gauntlets": {"Hands", 3}, "Fortunate Gauntlets": {"Hands", 3},

	"Iron Bracers": {"Arms", 2}, "Steel Bracers": {"Arms", 3},
	"Mithril Bracers": {"Arms", 4}, "Fire Bracers": {"Arms", 3},
	"Frost Bracers": {"Arms", 3},
	"Clean Bracers": {"Arms", 3}, "Life Bracers": {"Arms", 3},
	"Quick Bracers": {"Arms", 3}, "Mystic Bracers": {"Arms", 3},
	"Blessed Bracers": {"Arms", 3},

	"Chain Mail": {"Body", 8}, "Plate Armor": {"Body", 10},
	"Mithril Armor": {"Body", 12}, "Dragon Scale Armor": {"Body", 10},
	"Ice Crystal Armor": {"Body", 10}, "Blessed Chain Mail": {"Body", 10},
	"Living Armor": {"Body", 10}, "Wind Walker Armor": {"Body", 10},
	"Mage's Robes": {"Body", 10}, "Hero's Plate": {"Body", 10},

	"Iron Greaves": {"Legs", 4}, "Steel Greaves": {"Legs", 5},
	"Mithril Greaves": {"Legs", 6}, "Flame Greaves": {"Legs", 5},
	"Frost Greaves": {"Legs", 5}, "Pure Greaves": {"Legs", 5},
	"Vital Greaves": {"Legs", 5}, "Swift Greaves": {"Legs", 5},
	"Arcane Greaves": {"Legs", 5}, "Fortunate Greaves": {"Legs", 5},

	"Iron Boots": {"Feet", 3}, "Steel Boots": {"Feet", 4},
	"Mithril Boots": {"Feet", 5}, "Fire Boots": {"Feet", 4},
	"Ice Boots": {"Feet", 4}, "Clean Boots": {"Feet", 4},
	"Life Boots": {"Feet", 4}, "Quick Boots": {"Feet", 4},
	"Mystic Boots": {"Feet", 4}, "Blessed Boots": {"Feet", 4},
}

var lowTierWeapons = []string{
	"Sword", "Bow", "Dagger", "Axe", "Mace",
	"Spear", "Hammer", "Staff", "Crossbow", "Shield",
}

var highTierWeapons = []string{
	"Flame Sword", "Ice Dagger", "Thunder Axe", "Earth Mace", "Water Spear",
	"Light Hammer", "Shadow Staff", "Phoenix Bow", "Frost Crossbow", "Holy Shield",
	"Dragon Blade", "Void Dagger", "Storm Axe", "Crystal Mace", "Serpent Spear",
	"Celestial Hammer", "Necrotic Staff", "Inferno Bow", "Glacier Crossbow",
	"Divine Shield", "Abyssal Blade", "Eternal Dagger", "Tempest Dagger",
	"Volcanic Axe", "Mystic Mace", "Tidal Spear", "Radiant Hammer", "Cursed Staff",
	"Ethereal Bow", "Soul Crossbow", "Guardian Shield", "Chaos Blade",
}

// twoHandedWeapons need both hands; equipping a secondary alongside one
// halves effective skill in combat.
var twoHandedWeapons = []string{
	"Bow", "Crossbow", "Staff", "Spear", "Hammer",
	"Phoenix Bow", "Frost Crossbow", "Inferno Bow", "Ethereal Bow", "Soul Crossbow",
	"Shadow Staff", "Necrotic Staff", "Cursed Staff",
	"Water Spear", "Serpent Spear", "Tidal Spear",
	"Light Hammer", "Celestial Hammer", "Radiant Hammer",
	"Dragon Blade", "Abyssal Blade", "Chaos Blade",
}

// Flat combat contributions per weapon tier.
const (
	highTierAttack  = 30
	highTierDefense = 5
	lowTierAttack   = 10
	lowTierDefense  = 2
)

var potionEffects = map[string]types.PotionEffect{
	"Strength Potion":     {Stat: "Strength", Bonus: 10, Duration: 60},
	"Intelligence Potion": {Stat: "Intelligence", Bonus: 10, Duration: 60},
	"Skill Potion":        {Stat: "Skill", Bonus: 10, Duration: 60},
	"Stamina Potion":      {Stat: "Stamina", Bonus: 10, Duration: 60},
	"Charisma Potion":     {Stat: "Charisma", Bonus: 10, Duration: 60},
	"Wisdom Potion":       {Stat: "Wisdom", Bonus: 10, Duration: 60},
	"Speed Potion":        {Stat: "Speed", Bonus: 10, Duration: 60},
	"Invisibility Potion": {Effect: "invisibility", Duration: 60},

	"Permanent Strength Potion":     {Stat: "Strength", Bonus: 5},
	"Permanent Intelligence Potion": {Stat: "Intelligence", Bonus: 5},
	"Permanent Skill Potion":        {Stat: "Skill", Bonus: 5},
	"Permanent Stamina Potion":      {Stat: "Stamina", Bonus: 5},
	"Permanent Charisma Potion":     {Stat: "Charisma", Bonus: 5},
	"Permanent Wisdom Potion":       {Stat: "Wisdom", Bonus: 5},
	"Permanent Speed Potion":        {Stat: "Speed", Bonus: 5},

	"Cure Disease Potion":   {Effect: "cure_disease"},
	"Banish Curse Potion":   {Effect: "banish_curse"},
	"Cure Poison Potion":    {Effect: "cure_poison"},
	"Fatigue Relief Potion": {Effect: "relieve_fatigue"},
	"Banish Hunger Potion":  {Effect: "banish_hunger"},
	"Banish Thirst Potion":  {Effect: "banish_thirst"},
}
