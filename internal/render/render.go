// Package render draws cube snapshots as a colored terminal net.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubestate"
)

// Sticker colors, indexed by cubestate.Color.
var palette = [6]lipgloss.Color{
	cubestate.White:  lipgloss.Color("#FFFFFF"),
	cubestate.Yellow: lipgloss.Color("#FFD500"),
	cubestate.Blue:   lipgloss.Color("#0046AD"),
	cubestate.Green:  lipgloss.Color("#009B48"),
	cubestate.Red:    lipgloss.Color("#B71234"),
	cubestate.Orange: lipgloss.Color("#FF5800"),
}

var stickerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#000000")).
	Padding(0, 1)

// Renderer draws snapshots. Report, if set, is told about snapshots that
// were refused.
type Renderer struct {
	Report cubestate.Reporter
}

// Net renders snap as an unfolded net (U on top, L F R B across, D below).
// A nil or inconsistent snapshot is refused with cubestate.ErrInvalidSnapshot.
func (r Renderer) Net(snap *cubestate.Snapshot) (string, error) {
	if snap == nil {
		return "", r.refuse(fmt.Errorf("%w: nil snapshot", cubestate.ErrInvalidSnapshot))
	}
	if err := snap.Validate(); err != nil {
		return "", r.refuse(err)
	}

	faces := make(map[cubestate.Face]string, 6)
	for _, face := range cubestate.Faces {
		faces[face] = faceBlock(snap.Face(face))
	}

	indent := lipgloss.NewStyle().MarginLeft(lipgloss.Width(faces[cubestate.FaceL]))
	net := lipgloss.JoinVertical(lipgloss.Left,
		indent.Render(faces[cubestate.FaceU]),
		lipgloss.JoinHorizontal(lipgloss.Top,
			faces[cubestate.FaceL],
			faces[cubestate.FaceF],
			faces[cubestate.FaceR],
			faces[cubestate.FaceB],
		),
		indent.Render(faces[cubestate.FaceD]),
	)
	return net, nil
}

// Net renders with a Renderer that reports nothing.
func Net(snap *cubestate.Snapshot) (string, error) {
	return Renderer{}.Net(snap)
}

func (r Renderer) refuse(err error) error {
	if r.Report != nil {
		r.Report(cubestate.Diagnostic{
			Kind:    cubestate.DiagInvalidSnapshot,
			Message: "refused to render snapshot",
			Err:     err,
		})
	}
	return err
}

func faceBlock(facelets [9]cubestate.Color) string {
	rows := make([]string, 3)
	for r := 0; r < 3; r++ {
		var b strings.Builder
		for c := 0; c < 3; c++ {
			b.WriteString(sticker(facelets[r*3+c]))
		}
		rows[r] = b.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func sticker(c cubestate.Color) string {
	return stickerStyle.Background(palette[c]).Render(c.String())
}
