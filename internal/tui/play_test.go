package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/cubestate"
)

func press(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return cmd
}

func TestKeyToken(t *testing.T) {
	tests := map[string]string{"r": "R", "R": "R'", "u": "U", "B": "B'"}
	for key, want := range tests {
		got, ok := keyToken(key)
		if !ok || got != want {
			t.Errorf("keyToken(%q) = %q, %v; want %q", key, got, ok, want)
		}
	}
	for _, key := range []string{"z", "enter", "1", ""} {
		if _, ok := keyToken(key); ok {
			t.Errorf("keyToken(%q) should not map", key)
		}
	}
}

func TestPlay_TurnsAndUndo(t *testing.T) {
	sess := cubestate.NewSession()
	m := New(sess, 20, nil)

	press(m, "r")
	press(m, "U")
	if got := cubestate.FormatMoves(sess.History()); got != "R U'" {
		t.Fatalf("history = %q", got)
	}

	press(m, "s")
	if !sess.IsSolved() {
		t.Error("s should solve the cube")
	}
	if m.lastMoves != "U R'" {
		t.Errorf("solution = %q, want %q", m.lastMoves, "U R'")
	}
}

func TestPlay_ScrambleCallbacks(t *testing.T) {
	sess := cubestate.NewSession(cubestate.WithSeed(6))
	m := New(sess, 12, nil)

	var scrambled, solved string
	m.OnScramble = func(s string) { scrambled = s }
	m.OnSolve = func(s string) { solved = s }

	press(m, "n")
	if len(strings.Fields(scrambled)) != 12 || sess.IsSolved() {
		t.Fatalf("scramble = %q", scrambled)
	}
	if !strings.Contains(m.View(), "12 moves since solved") {
		t.Errorf("view missing move count:\n%s", m.View())
	}

	press(m, "s")
	if solved != cubestate.ReverseSequence(scrambled) {
		t.Errorf("solve = %q, want %q", solved, cubestate.ReverseSequence(scrambled))
	}
	if !strings.Contains(m.View(), "SOLVED") {
		t.Error("view should show SOLVED")
	}
}

func TestPlay_ResetAndQuit(t *testing.T) {
	sess := cubestate.NewSession()
	m := New(sess, 20, nil)

	resets := 0
	m.OnReset = func() { resets++ }

	press(m, "f")
	press(m, "x")
	if !sess.IsSolved() || len(sess.History()) != 0 {
		t.Error("x should reset")
	}
	if resets != 1 {
		t.Errorf("OnReset called %d times, want 1", resets)
	}

	cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
