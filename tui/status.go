package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nmorin/dungeoncore/engine/character"
)

// renderStatusBar produces a full-width inverted status line: vitals on
// the left, the dungeon clock on the right.
func (m Model) renderStatusBar() string {
	s := m.cli.Engine.State

	next := character.CumulativeXP(s.Level + 1)
	left := fmt.Sprintf(" %s | HP %d/%d | Lv %d | XP %d/%d | Floor %d",
		s.Name, s.Hitpoints, s.BaseStats.Stamina, s.Level, s.Experience, next, s.DungeonFloor+1)

	right := dungeonClock(s.GameTime) + " "
	if s.Battle.InBattle && s.Battle.Monster != nil {
		right = fmt.Sprintf("FIGHTING %s (HP %d) | %s", s.Battle.Monster.Name, s.Battle.Monster.HP, right)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}

// dungeonClock renders game minutes on a 12-hour clock anchored at noon.
func dungeonClock(minutes int) string {
	total := (12*60 + minutes) % (24 * 60)
	h, mm := total/60, total%60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, mm, suffix)
}
