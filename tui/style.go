package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleEncounter = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	styleCombatHit = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	styleCombatHurt = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	styleLoot = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleMap = lipgloss.NewStyle().
			Foreground(lipgloss.Color("115"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindEncounter
	kindCombatHit
	kindCombatHurt
	kindLoot
	kindMap
)

// classifyLine styles output by its shape: encounter banners, combat
// exchanges, loot notices, and map rows each get their own color.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "ENCOUNTER!"):
		return kindEncounter
	case strings.HasPrefix(line, "You hit "), strings.HasPrefix(line, "You defeated "):
		return kindCombatHit
	case strings.Contains(line, " hits you for "), line == "You have died.":
		return kindCombatHurt
	case strings.HasPrefix(line, "On the ground:"), strings.HasPrefix(line, "Wielding:"):
		return kindLoot
	case isMapRow(line):
		return kindMap
	}
	return kindNarrative
}

// isMapRow detects rendered map rows: long runs of tile glyphs only.
func isMapRow(line string) bool {
	if len(line) < 10 {
		return false
	}
	for _, r := range line {
		switch r {
		case '#', '.', '>', '<', '^', 'v':
		default:
			return false
		}
	}
	return true
}

func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindEncounter:
		return styleEncounter.Render(line)
	case kindCombatHit:
		return styleCombatHit.Render(line)
	case kindCombatHurt:
		return styleCombatHurt.Render(line)
	case kindLoot:
		return styleLoot.Render(line)
	case kindMap:
		return styleMap.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}
