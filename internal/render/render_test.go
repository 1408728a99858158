package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubestate"
)

func TestNet_Layout(t *testing.T) {
	s := cubestate.NewState()
	s.ApplySequence("R U")
	snap := s.Snapshot()

	out, err := Net(&snap)
	if err != nil {
		t.Fatalf("Net: %v", err)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9", len(lines))
	}

	// Each sticker is 3 cells wide, so the middle band is 4 faces of 9 cells.
	if w := lipgloss.Width(lines[4]); w != 36 {
		t.Errorf("middle band width = %d, want 36", w)
	}
	if !strings.HasPrefix(lines[0], strings.Repeat(" ", 9)) {
		t.Errorf("U face should be indented by one face: %q", lines[0])
	}
}

func TestNet_RefusesNil(t *testing.T) {
	var got []cubestate.Diagnostic
	r := Renderer{Report: func(d cubestate.Diagnostic) { got = append(got, d) }}

	if _, err := r.Net(nil); !errors.Is(err, cubestate.ErrInvalidSnapshot) {
		t.Errorf("error = %v, want ErrInvalidSnapshot", err)
	}
	if len(got) != 1 || got[0].Kind != cubestate.DiagInvalidSnapshot {
		t.Errorf("diagnostics = %+v", got)
	}
}

func TestNet_RefusesInconsistent(t *testing.T) {
	snap := cubestate.NewState().Snapshot()
	snap.Faces[cubestate.FaceF][0] = cubestate.Color(42)

	if _, err := Net(&snap); !errors.Is(err, cubestate.ErrInvalidSnapshot) {
		t.Errorf("error = %v, want ErrInvalidSnapshot", err)
	}
}
