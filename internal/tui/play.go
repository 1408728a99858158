// Package tui implements the interactive play mode: scramble, turn faces by
// key, and watch the naive solver undo everything.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/render"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model for play mode.
type Model struct {
	session  *cubestate.Session
	renderer render.Renderer
	length   int

	lastAction string
	lastMoves  string
	err        error
	quitting   bool

	// OnScramble is called with every generated scramble, e.g. to store it.
	OnScramble func(scramble string)
	// OnSolve is called with the applied solution.
	OnSolve func(solution string)
	// OnReset is called after the cube is returned to solved without a solve.
	OnReset func()
}

// New creates a play model around sess. length is the scramble length.
func New(sess *cubestate.Session, length int, report cubestate.Reporter) *Model {
	return &Model{
		session:  sess,
		renderer: render.Renderer{Report: report},
		length:   length,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch k := key.String(); k {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "n":
		m.lastAction = "scramble"
		m.lastMoves = m.session.Scramble(m.length)
		if m.OnScramble != nil {
			m.OnScramble(m.lastMoves)
		}

	case "s":
		m.lastAction = "solve"
		m.lastMoves = m.session.Solve()
		if m.OnSolve != nil {
			m.OnSolve(m.lastMoves)
		}

	case "x":
		m.session.Reset()
		m.lastAction = "reset"
		m.lastMoves = ""
		if m.OnReset != nil {
			m.OnReset()
		}

	default:
		if token, ok := keyToken(k); ok {
			m.lastAction = "turn"
			m.lastMoves = cubestate.FormatMoves(m.session.ApplySequence(token))
		}
	}

	return m, nil
}

// keyToken maps u/d/l/r/f/b to a clockwise turn and the upper-case key to
// the counter-clockwise turn.
func keyToken(k string) (string, bool) {
	if len(k) != 1 {
		return "", false
	}
	switch c := k[0]; {
	case strings.ContainsRune("udlrfb", rune(c)):
		return strings.ToUpper(k), true
	case strings.ContainsRune("UDLRFB", rune(c)):
		return k + "'", true
	default:
		return "", false
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubestate"))
	b.WriteString("\n\n")

	snap := m.session.Snapshot()
	net, err := m.renderer.Net(&snap)
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
	} else {
		b.WriteString(net)
	}
	b.WriteString("\n\n")

	history := len(m.session.History())
	if snap.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
	} else {
		b.WriteString(statusStyle.Render(fmt.Sprintf("%d moves since solved", history)))
	}
	b.WriteString("\n")

	if m.lastAction != "" {
		b.WriteString(statusStyle.Render(m.lastAction + ": "))
		b.WriteString(moveStyle.Render(m.lastMoves))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("n: scramble  s: solve  x: reset  u/d/l/r/f/b: turn (shift = prime)  q: quit"))
	b.WriteString("\n")

	return b.String()
}

// Run starts play mode in the alternate screen.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
