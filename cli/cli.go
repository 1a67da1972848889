// Package cli provides terminal I/O and meta-command dispatch for the
// dungeon engine: a plain prompt loop for play and script-driven sessions.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nmorin/dungeoncore/engine"
	"github.com/nmorin/dungeoncore/engine/save"
	"github.com/nmorin/dungeoncore/engine/state"
	"github.com/nmorin/dungeoncore/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Store     *save.SlotStore
	In        io.Reader
	Out       io.Writer
	EchoInput bool // echo each input line after the prompt (for script playback)
}

// New creates a CLI wired to the given engine, saving under
// ~/.dungeoncore/saves unless the store is replaced.
func New(eng *engine.Engine) *CLI {
	home, _ := os.UserHomeDir()
	store, _ := save.NewSlotStore(filepath.Join(home, ".dungeoncore", "saves"))
	return &CLI{
		Engine: eng,
		Store:  store,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the game loop: prompt, input, dispatch, output. It returns
// when the player quits or dies.
func (c *CLI) Run() {
	c.printLine(fmt.Sprintf("%s descends into the dungeon.", c.Engine.State.Name))
	c.printStatus()

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return
			}
			continue
		}

		if !c.dispatch(strings.ToLower(input)) {
			return // player died
		}
	}
}

// Exec runs a single input line and returns its captured output. done
// reports that the session ended, by quitting or by death.
func (c *CLI) Exec(input string) (output string, done bool) {
	var buf strings.Builder
	prev := c.Out
	c.Out = &buf
	defer func() { c.Out = prev }()

	input = strings.TrimSpace(input)
	if input == "" || strings.HasPrefix(input, "#") {
		return "", false
	}
	if strings.HasPrefix(input, "/") {
		done = c.handleMeta(input)
	} else {
		done = !c.dispatch(strings.ToLower(input))
	}
	return buf.String(), done
}

// dispatch runs one game command. It returns false when the session ends.
func (c *CLI) dispatch(input string) bool {
	s := c.Engine.State

	if s.Battle.InBattle {
		return c.dispatchBattle(input)
	}
	if s.UI != (types.UIState{}) {
		c.dispatchMode(input)
		return true
	}

	switch input {
	case "f", "forward":
		if c.Engine.Move(1) {
			c.afterStep()
		} else {
			c.printLine("A wall blocks the way.")
		}
	case "b", "back":
		if c.Engine.Move(-1) {
			c.afterStep()
		} else {
			c.printLine("A wall blocks the way.")
		}
	case "left":
		c.Engine.TurnLeft()
		c.printLine("Facing " + headingName(s.Heading) + ".")
	case "right":
		c.Engine.TurnRight()
		c.printLine("Facing " + headingName(s.Heading) + ".")
	case "climb", "stairs":
		if c.Engine.UseStairs() {
			c.printLine(fmt.Sprintf("You are now on floor %d.", s.DungeonFloor+1))
		} else {
			c.printLine("There are no stairs here.")
		}
	case "w", "wait":
		c.afterStep()
	case "i", "inventory":
		state.ToggleInventory(s)
		c.printInventory()
		state.CloseModes(s)
	case "g", "get":
		state.OpenGetMode(s)
		c.printGround()
	case "l", "lose", "drop":
		state.OpenLoseMode(s)
		c.printUsable("Drop which item?")
	case "u", "use":
		state.OpenUseMode(s)
		c.printUsable("Use which item?")
	case "look":
		c.printStatus()
	case "m", "map":
		c.printMap()
	default:
		c.printLine("Unknown command. Try /help.")
	}
	return true
}

// afterStep advances the clock one minute and reports any encounter.
func (c *CLI) afterStep() {
	if m := c.Engine.Tick(); m != nil {
		c.printEncounter(m)
	}
}

// dispatchBattle handles the six-option battle menu.
func (c *CLI) dispatchBattle(input string) bool {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > 6 {
		c.printLine("Choose 1-6.")
		return true
	}
	out := c.Engine.ResolvePlayerAction(types.BattleAction(n))
	c.printLog(out.Log)
	switch out.Status {
	case types.OutcomeVictory, types.OutcomeBartered, types.OutcomeFled:
		c.printStatus()
		return true
	case types.OutcomeWaitingMonster:
		mout := c.Engine.ResolveMonsterTurn()
		c.printLog(mout.Log)
		if mout.Status == types.OutcomeDead {
			c.printLine("You have died.")
			return false
		}
	}
	return true
}

// dispatchMode handles the numbered pick menus (get, drop, use, equip).
func (c *CLI) dispatchMode(input string) {
	s := c.Engine.State
	ui := &s.UI

	if input == "q" || input == "cancel" {
		state.CloseModes(s)
		c.printLine("Never mind.")
		return
	}

	if ui.WeaponEquipMode {
		switch input {
		case "1", "p", "primary":
			state.EquipWeapon(s, "primary")
			c.printLine("Equipped as primary weapon.")
		case "2", "s", "secondary":
			state.EquipWeapon(s, "secondary")
			c.printLine("Equipped as secondary weapon.")
		default:
			c.printLine("1 for primary, 2 for secondary, q to cancel.")
		}
		return
	}
	if ui.ClothingEquip {
		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(types.BodySlots) {
			c.printLine("Choose a body slot number, q to cancel.")
			return
		}
		name := ui.ClothingToEquip
		slot := types.BodySlots[n-1]
		state.EquipClothing(s, c.Engine.Catalog, slot)
		if s.Clothing[slot] == name {
			c.printLine(fmt.Sprintf("Wearing %s on %s.", name, slot))
		} else {
			c.printLine(fmt.Sprintf("%s does not fit there.", name))
		}
		return
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		c.printLine("Choose an item number, q to cancel.")
		return
	}
	idx := n - 1
	switch {
	case ui.ShowGetMode:
		if state.GetItem(s, idx) {
			c.printLine("Taken.")
		} else {
			c.printLine("Nothing there to take.")
		}
		state.CloseModes(s)
	case ui.ShowLoseMode:
		if state.DropItem(s, idx) {
			c.printLine("Dropped.")
		} else {
			c.printLine("You are not carrying that.")
		}
		state.CloseModes(s)
	case ui.ShowUseMode:
		if state.UseItem(s, c.Engine.Catalog, idx) {
			state.CloseModes(s)
			c.printStatus()
		} else if ui.WeaponEquipMode {
			c.printLine("Equip as: 1. Primary  2. Secondary")
		} else if ui.ClothingEquip {
			c.printSlotMenu()
		}
	default:
		state.CloseModes(s)
	}
}

// handleMeta dispatches /-prefixed commands; it returns true on /quit.
func (c *CLI) handleMeta(input string) bool {
	fields := strings.Fields(input)
	switch fields[0] {
	case "/quit", "/exit":
		c.printLine("Farewell.")
		return true
	case "/save":
		c.cmdSave(fields[1:])
	case "/load":
		c.cmdLoad(fields[1:])
	case "/slots":
		c.cmdSlots()
	case "/state":
		c.cmdState()
	case "/help":
		c.cmdHelp()
	default:
		c.printLine("Unknown command. Try /help.")
	}
	return false
}

func (c *CLI) cmdSave(args []string) {
	slot, ok := parseSlot(args)
	if !ok {
		c.printLine("Usage: /save <slot 1-10>")
		return
	}
	c.Engine.Snapshot()
	sd := save.Capture(c.Engine.State, c.Engine.Dungeon, types.CameraPose{})
	if err := c.Store.Save(slot, sd); err != nil {
		c.printLine("Save failed: " + err.Error())
		return
	}
	c.printLine(fmt.Sprintf("Saved to slot %d.", slot))
}

func (c *CLI) cmdLoad(args []string) {
	slot, ok := parseSlot(args)
	if !ok {
		c.printLine("Usage: /load <slot 1-10>")
		return
	}
	sd, err := c.Store.Load(slot)
	if err != nil {
		c.printLine("Load failed: " + err.Error())
		return
	}
	if sd == nil {
		c.printLine(fmt.Sprintf("Slot %d is empty.", slot))
		return
	}
	d, s, err := save.Apply(sd)
	if err != nil {
		c.printLine("Load failed: " + err.Error())
		return
	}
	restored := engine.Resume(c.Engine.Catalog, d, s)
	*c.Engine = *restored
	c.printLine(fmt.Sprintf("Loaded slot %d.", slot))
	c.printStatus()
}

func (c *CLI) cmdSlots() {
	for _, info := range c.Store.SlotInfos() {
		if info.HasSave {
			c.printLine(fmt.Sprintf("  %2d: saved %s", info.Slot, info.SavedAt.Format("2006-01-02 15:04")))
		} else {
			c.printLine(fmt.Sprintf("  %2d: empty", info.Slot))
		}
	}
}

func (c *CLI) cmdState() {
	s := c.Engine.State
	c.printLine(fmt.Sprintf("name=%s level=%d hp=%d xp=%d", s.Name, s.Level, s.Hitpoints, s.Experience))
	c.printLine(fmt.Sprintf("floor=%d tile=(%d,%d) facing=%s time=%dm",
		s.DungeonFloor+1, s.TileX, s.TileY, headingName(s.Heading), s.GameTime))
	c.printLine(fmt.Sprintf("stats=%+v", s.Stats))
	c.printLine(fmt.Sprintf("primary=%q secondary=%q", s.PrimaryWeapon, s.SecondaryWeapon))
	c.printLine(fmt.Sprintf("rng seed=%d pos=%d", s.RNGSeed, c.Engine.RNG.Position()))
}

func (c *CLI) cmdHelp() {
	for _, line := range []string{
		"Movement:  f/forward, b/back, left, right, climb, w/wait",
		"Items:     i inventory, g get, l drop, u use",
		"Battle:    1 attack, 2 charge, 3 aimed, 4 transact, 5 pass, 6 run",
		"Meta:      /save <slot>, /load <slot>, /slots, /state, /quit",
	} {
		c.printLine(line)
	}
}

func parseSlot(args []string) (int, bool) {
	if len(args) != 1 {
		return 0, false
	}
	slot, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false
	}
	return slot, true
}

func (c *CLI) printStatus() {
	s := c.Engine.State
	c.printLine(fmt.Sprintf("[Floor %d] (%d,%d) facing %s | HP %d | Lv %d | XP %d | %s",
		s.DungeonFloor+1, s.TileX, s.TileY, headingName(s.Heading),
		s.Hitpoints, s.Level, s.Experience, clock(s.GameTime)))
	if pile := state.GroundAt(s); len(pile) > 0 {
		c.printLine("On the ground: " + strings.Join(pile, ", "))
	}
}

func (c *CLI) printInventory() {
	s := c.Engine.State
	c.printLine("You are carrying:")
	for _, e := range s.Inventory {
		if e.Count <= 0 {
			continue
		}
		line := fmt.Sprintf("  %s x%d", e.Name, e.Count)
		if e.Name == s.PrimaryWeapon {
			line += " (primary)"
		}
		if e.Name == s.SecondaryWeapon {
			line += " (secondary)"
		}
		c.printLine(line)
	}
	for _, slot := range types.BodySlots {
		if worn := s.Clothing[slot]; worn != "" {
			c.printLine(fmt.Sprintf("  %s: %s", slot, worn))
		}
	}
}

func (c *CLI) printGround() {
	pile := state.GroundAt(c.Engine.State)
	if len(pile) == 0 {
		c.printLine("Nothing here to take.")
		state.CloseModes(c.Engine.State)
		return
	}
	c.printLine("Take which item?")
	for i, name := range pile {
		c.printLine(fmt.Sprintf("  %d. %s", i+1, name))
	}
}

func (c *CLI) printUsable(prompt string) {
	usable := state.UsableItems(c.Engine.State)
	if len(usable) == 0 {
		c.printLine("You are carrying nothing usable.")
		state.CloseModes(c.Engine.State)
		return
	}
	c.printLine(prompt)
	for i, e := range usable {
		c.printLine(fmt.Sprintf("  %d. %s x%d", i+1, e.Name, e.Count))
	}
}

func (c *CLI) printSlotMenu() {
	c.printLine("Wear on:")
	for i, slot := range types.BodySlots {
		c.printLine(fmt.Sprintf("  %d. %s", i+1, slot))
	}
}

func (c *CLI) printEncounter(m *types.MonsterInstance) {
	c.printLine(fmt.Sprintf("ENCOUNTER! A %s (level %d, HP %d) blocks your path!", m.Name, m.Level, m.HP))
	if len(m.Equipment) > 0 {
		c.printLine("Wielding: " + strings.Join(m.Equipment, ", "))
	}
	c.printLine("1. Attack  2. Charge  3. Aimed  4. Transact  5. Pass  6. Run")
}

func (c *CLI) printLog(log []string) {
	for _, line := range log {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func headingName(h int) string {
	switch h {
	case 0:
		return "north"
	case 1:
		return "east"
	case 2:
		return "south"
	case 3:
		return "west"
	}
	return "?"
}

// clock renders game minutes as a 12-hour dungeon clock starting at noon.
func clock(minutes int) string {
	total := (12*60 + minutes) % (24 * 60)
	h, m := total/60, total%60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, suffix)
}
