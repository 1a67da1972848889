package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmorin/dungeoncore/cli"
	"github.com/nmorin/dungeoncore/types"
)

// rawLine stores an unstyled output line so the log can be re-styled
// and re-wrapped on resize.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool
	isSystem bool
}

// tickMsg fires once per real second: one game minute.
type tickMsg time.Time

// Model is the Bubble Tea model. Commands are dispatched through the
// shared CLI interpreter; this layer adds the live clock, the status
// bar, and styled scrollback.
type Model struct {
	cli     *cli.CLI
	history *History

	viewport viewport.Model
	input    textinput.Model
	rawLines []rawLine

	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates a TUI model around the given command interpreter.
func New(c *cli.CLI) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 128
	ti.PromptStyle = styleInputPrompt

	return Model{
		cli:     c,
		history: NewHistory(100),
		input:   ti,
	}
}

// Run starts the Bubble Tea program in the alternate screen.
func Run(c *cli.CLI) error {
	p := tea.NewProgram(New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init greets the player and starts the clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

// Update handles key presses, the clock, and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := m.height - 2 // status bar + input line
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.ready = true
			m = m.append("", []string{
				fmt.Sprintf("%s descends into the dungeon.", m.cli.Engine.State.Name),
				"Type /help for commands.",
			}, true)
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.refreshViewport()

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		if monster := m.cli.Engine.Tick(); monster != nil {
			m = m.append("", encounterLines(monster), false)
		}
		return m, tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.handleEnter()
		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil
		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil
		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)
	return m, tea.Batch(cmds...)
}

// handleEnter dispatches the submitted line through the CLI interpreter.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if input == "" {
		return m, nil
	}
	m.history.Push(input)
	m.history.ResetCursor()

	output, done := m.cli.Exec(input)
	m = m.append(input, splitLines(output), strings.HasPrefix(input, "/"))
	if done {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// append adds an echoed input and its output lines to the scrollback.
func (m Model) append(input string, lines []string, system bool) Model {
	if input != "" {
		m.rawLines = append(m.rawLines, rawLine{text: "> " + input, isInput: true})
	}
	for _, line := range lines {
		rl := rawLine{text: line, isSystem: system}
		if !system {
			rl.kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rl)
	}
	m.rawLines = append(m.rawLines, rawLine{})
	m.refreshViewport()
	return m
}

// refreshViewport re-styles the scrollback at the current width.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	var styled []string
	for _, rl := range m.rawLines {
		switch {
		case rl.text == "":
			styled = append(styled, "")
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(rl.text))
		case rl.isSystem:
			styled = append(styled, styleSystem.Render(wordWrap(rl.text, m.width)))
		case rl.kind == kindMap:
			styled = append(styled, styleMap.Render(rl.text))
		default:
			styled = append(styled, renderLineKind(wordWrap(rl.text, m.width), rl.kind))
		}
	}
	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// View renders the scrollback, status bar, and input line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.quitting {
		return ""
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

func encounterLines(monster *types.MonsterInstance) []string {
	lines := []string{
		fmt.Sprintf("ENCOUNTER! A %s (level %d, HP %d) blocks your path!", monster.Name, monster.Level, monster.HP),
	}
	if len(monster.Equipment) > 0 {
		lines = append(lines, "Wielding: "+strings.Join(monster.Equipment, ", "))
	}
	lines = append(lines, "1. Attack  2. Charge  3. Aimed  4. Transact  5. Pass  6. Run")
	return lines
}

// wordWrap breaks text at word boundaries to fit the given width.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i == 0 {
			b.WriteString(word)
			lineLen = len(word)
			continue
		}
		if lineLen+1+len(word) > width {
			b.WriteByte('\n')
			b.WriteString(word)
			lineLen = len(word)
		} else {
			b.WriteByte(' ')
			b.WriteString(word)
			lineLen += 1 + len(word)
		}
	}
	return b.String()
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
