package catalog

import "github.com/nmorin/dungeoncore/types"

// monsterRoster is the full bestiary, ordered by level. The first entry
// doubles as the fallback when no candidate matches an encounter window.
var monsterRoster = []types.Monster{
	{Name: "Giant Rat", Level: 1, HP: 8, Attack: 5, Defense: 2, Exp: 10, Gold: 2},
	{Name: "Cave Bat", Level: 1, HP: 6, Attack: 4, Defense: 1, Exp: 8, Gold: 1},
	{Name: "Slime", Level: 2, HP: 12, Attack: 6, Defense: 3, Exp: 15, Gold: 3},
	{Name: "Goblin", Level: 2, HP: 15, Attack: 8, Defense: 4, Exp: 20, Gold: 5},
	{Name: "Skeleton", Level: 3, HP: 18, Attack: 10, Defense: 5, Exp: 25, Gold: 8},
	{Name: "Giant Spider", Level: 3, HP: 20, Attack: 12, Defense: 4, Exp: 30, Gold: 10},
	{Name: "Zombie", Level: 4, HP: 25, Attack: 10, Defense: 8, Exp: 35, Gold: 12},
	{Name: "Kobold", Level: 4, HP: 22, Attack: 14, Defense: 6, Exp: 40, Gold: 15},
	{Name: "Giant Centipede", Level: 5, HP: 28, Attack: 16, Defense: 7, Exp: 45, Gold: 18},
	{Name: "Ghoul", Level: 5, HP: 32, Attack: 18, Defense: 10, Exp: 55, Gold: 22},

	{Name: "Orc Warrior", Level: 6, HP: 40, Attack: 22, Defense: 12, Exp: 70, Gold: 30},
	{Name: "Hobgoblin", Level: 6, HP: 38, Attack: 20, Defense: 14, Exp: 65, Gold: 28},
	{Name: "Harpy", Level: 7, HP: 35, Attack: 24, Defense: 10, Exp: 80, Gold: 35},
	{Name: "Wererat", Level: 7, HP: 42, Attack: 26, Defense: 15, Exp: 85, Gold: 40},
	{Name: "Shadow", Level: 8, HP: 45, Attack: 28, Defense: 8, Exp: 95, Gold: 45},
	{Name: "Wight", Level: 8, HP: 50, Attack: 30, Defense: 18, Exp: 100, Gold: 50},
	{Name: "Ogre", Level: 9, HP: 65, Attack: 35, Defense: 20, Exp: 120, Gold: 60},
	{Name: "Gargoyle", Level: 9, HP: 55, Attack: 32, Defense: 25, Exp: 115, Gold: 55},
	{Name: "Wraith", Level: 10, HP: 60, Attack: 38, Defense: 15, Exp: 140, Gold: 70},
	{Name: "Troll", Level: 10, HP: 80, Attack: 40, Defense: 22, Exp: 150, Gold: 75},

	{Name: "Minotaur", Level: 11, HP: 90, Attack: 45, Defense: 28, Exp: 180, Gold: 90},
	{Name: "Basilisk", Level: 12, HP: 85, Attack: 48, Defense: 30, Exp: 200, Gold: 100},
	{Name: "Manticore", Level: 12, HP: 95, Attack: 50, Defense: 26, Exp: 210, Gold: 105},
	{Name: "Medusa", Level: 13, HP: 88, Attack: 52, Defense: 24, Exp: 230, Gold: 115},
	{Name: "Vampire", Level: 14, HP: 100, Attack: 55, Defense: 32, Exp: 260, Gold: 130},
	{Name: "Stone Golem", Level: 15, HP: 120, Attack: 58, Defense: 45, Exp: 280, Gold: 140},
	{Name: "Chimera", Level: 16, HP: 130, Attack: 62, Defense: 35, Exp: 320, Gold: 160},
	{Name: "Hydra", Level: 17, HP: 150, Attack: 65, Defense: 38, Exp: 360, Gold: 180},
	{Name: "Beholder", Level: 18, HP: 140, Attack: 70, Defense: 30, Exp: 400, Gold: 200},
	{Name: "Death Knight", Level: 20, HP: 160, Attack: 75, Defense: 50, Exp: 500, Gold: 250},
}
