// DungeonCore is a deterministic first-person dungeon crawler engine.
// Usage: dungeoncore [--version] [--plain] [--script <file>] [--seed <n>]
//
//	[--name <player>] [--content <dir>] [--saves <dir>]
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nmorin/dungeoncore/cli"
	"github.com/nmorin/dungeoncore/engine"
	"github.com/nmorin/dungeoncore/engine/catalog"
	"github.com/nmorin/dungeoncore/engine/dungeon"
	"github.com/nmorin/dungeoncore/engine/save"
	"github.com/nmorin/dungeoncore/loader"
	"github.com/nmorin/dungeoncore/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	name := "Adventurer"
	seed := time.Now().UnixNano()
	var scriptFile, contentDir, savesDir string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("dungeoncore %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--script":
			scriptFile = flagValue(args, &i)
		case "--name":
			name = flagValue(args, &i)
		case "--content":
			contentDir = flagValue(args, &i)
		case "--saves":
			savesDir = flagValue(args, &i)
		case "--seed":
			n, err := strconv.ParseInt(flagValue(args, &i), 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "--seed requires an integer\n")
				os.Exit(1)
			}
			seed = n
		default:
			usage()
		}
	}

	cat := catalog.New()
	var pack *loader.Pack
	if contentDir != "" {
		var err error
		pack, err = loader.Load(contentDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading content: %v\n", err)
			os.Exit(1)
		}
		pack.Apply(cat)
	}

	// A pack map replaces the generated dungeon.
	var eng *engine.Engine
	var err error
	if pack != nil && len(pack.Maps) > 0 {
		eng, err = engine.NewGameFrom(name, seed, cat, pack.Maps[0].Dungeon())
	} else {
		eng, err = engine.NewGame(name, seed, cat, dungeon.DefaultConfig())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing dungeon: %v\n", err)
		os.Exit(1)
	}

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := newCLI(eng, savesDir)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		newCLI(eng, savesDir).Run()
		return
	}

	if err := tui.Run(newCLI(eng, savesDir)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCLI(eng *engine.Engine, savesDir string) *cli.CLI {
	c := cli.New(eng)
	if savesDir != "" {
		store, err := save.NewSlotStore(savesDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening save directory: %v\n", err)
			os.Exit(1)
		}
		c.Store = store
	}
	return c
}

func flagValue(args []string, i *int) string {
	if *i+1 >= len(args) {
		fmt.Fprintf(os.Stderr, "%s requires a value\n", args[*i])
		os.Exit(1)
	}
	*i++
	return args[*i]
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: dungeoncore [--version] [--plain] [--script <file>] [--seed <n>] [--name <player>] [--content <dir>] [--saves <dir>]\n")
	os.Exit(1)
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
