package main

import (
	"fmt"
	"strings"

	"keycalc/app/calc"
	"keycalc/app/lang"
	"keycalc/app/logger"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.design/x/clipboard"
)

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive keypad",
		Long: `Run the calculator as a keypad in the terminal. Type digits and
operators directly or move over the keypad with the arrow keys and press
space. Enter computes, Backspace deletes, Esc clears and ctrl+y copies the
display to the clipboard.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(newTUIModel(opts.log), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running keypad: %w", err)
			}
			return nil
		},
	}
}

type keyMap struct {
	Compute   key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Press     key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Compute, k.Clear, k.Copy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Compute, k.Backspace, k.Clear},
		{k.Up, k.Down, k.Left, k.Right, k.Press},
		{k.Copy, k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Compute:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter/=", "compute")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Press:     key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "press key")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1)
	displayStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("241")).Width(displayWidth).Align(lipgloss.Right).Padding(0, 1)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	keyStyle      = lipgloss.NewStyle().Width(keyWidth).Align(lipgloss.Center).Foreground(lipgloss.Color("252"))
	opKeyStyle    = keyStyle.Foreground(lipgloss.Color("220"))
	cmdKeyStyle   = keyStyle.Foreground(lipgloss.Color("203"))
	selectedStyle = keyStyle.Reverse(true).Bold(true)
	tapeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
)

const (
	keyWidth     = 6
	displayWidth = keyWidth * 4
	tapeLines    = 3
)

// clipboardMsg reports the outcome of a clipboard copy.
type clipboardMsg struct {
	text string
	err  error
}

type tuiModel struct {
	session *calc.Session
	display string
	keys    keyMap
	help    help.Model
	row     int
	col     int
	status  string
	log     *logger.Logger
}

func newTUIModel(log *logger.Logger) *tuiModel {
	m := &tuiModel{
		keys: defaultKeyMap(),
		help: help.New(),
		log:  log,
	}
	m.session = calc.NewSession(
		calc.WithDisplay(calc.DisplayFunc(func(text string) { m.display = text })),
		calc.WithLogger(log.WithPrefix("session")),
	)
	return m
}

// Init implements tea.Model
func (m *tuiModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			m.log.Warn("clipboard: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Copied %q", msg.text)
		}
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Copy):
			return m, copyToClipboard(m.display)
		case key.Matches(msg, m.keys.Compute):
			m.session.Press(calc.KeyCompute)
		case key.Matches(msg, m.keys.Backspace):
			m.session.Press(calc.KeyBackspace)
		case key.Matches(msg, m.keys.Clear):
			m.session.Press(calc.KeyClear)
		case key.Matches(msg, m.keys.Up):
			m.move(-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.move(1, 0)
		case key.Matches(msg, m.keys.Left):
			m.move(0, -1)
		case key.Matches(msg, m.keys.Right):
			m.move(0, 1)
		case key.Matches(msg, m.keys.Press):
			m.session.Press(m.selected())
		case msg.Type == tea.KeyRunes:
			for _, r := range msg.Runes {
				if label, ok := calc.KeyForRune(r); ok {
					m.session.Press(label)
				}
			}
		}
	}
	return m, nil
}

// move shifts the keypad selection, wrapping at the edges.
func (m *tuiModel) move(dRow, dCol int) {
	rows := len(calc.Keys)
	m.row = (m.row + dRow + rows) % rows
	cols := len(calc.Keys[m.row])
	m.col = (m.col + dCol + cols) % cols
}

func (m *tuiModel) selected() string {
	return calc.Keys[m.row][m.col]
}

// View implements tea.Model
func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("keycalc"))
	b.WriteString("\n")

	display := m.display
	if display == "" {
		display = "0"
	}
	if display == lang.ErrorText {
		display = errorStyle.Render(display)
	}
	b.WriteString(displayStyle.Render(display))
	b.WriteString("\n")

	for r, row := range calc.Keys {
		cells := make([]string, len(row))
		for c, label := range row {
			cells[c] = keyCellStyle(label, r == m.row && c == m.col).Render(label)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	tape := m.session.Tape()
	if len(tape) > tapeLines {
		tape = tape[len(tape)-tapeLines:]
	}
	b.WriteString("\n")
	for _, e := range tape {
		b.WriteString(tapeStyle.Render(e.String()))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func keyCellStyle(label string, selected bool) lipgloss.Style {
	if selected {
		return selectedStyle
	}
	switch calc.ParseKey(label).Kind {
	case calc.CmdAppend:
		if strings.ContainsAny(label, "+-*/%") || label == lang.ModOperator {
			return opKeyStyle
		}
		return keyStyle
	default:
		return cmdKeyStyle
	}
}

// copyToClipboard copies text to the system clipboard
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.Init(); err != nil {
			return clipboardMsg{err: fmt.Errorf("failed to initialize clipboard: %w", err)}
		}
		clipboard.Write(clipboard.FmtText, []byte(text))
		return clipboardMsg{text: text}
	}
}
