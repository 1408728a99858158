package cubestate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Snapshot is a read-only copy of a cube configuration, handed to consumers
// such as renderers. Changing a Snapshot never affects the State it came from.
type Snapshot struct {
	Faces [6][9]Color
}

// Face returns the 9 facelets of one face.
func (s Snapshot) Face(face Face) [9]Color {
	return s.Faces[face]
}

// Validate checks that the snapshot could come from a real cube: palette
// colors only, 9 of each, and six distinct centers.
func (s Snapshot) Validate() error {
	var counts [6]int
	for _, face := range Faces {
		for i, c := range s.Faces[face] {
			if !c.Valid() {
				return fmt.Errorf("%w: %s[%d] has color %d", ErrInvalidSnapshot, face, i, c)
			}
			counts[c]++
		}
	}
	for c, n := range counts {
		if n != 9 {
			return fmt.Errorf("%w: %d facelets are %s", ErrInvalidSnapshot, n, Color(c).Name())
		}
	}

	var seen [6]bool
	for _, face := range Faces {
		center := s.Faces[face][4]
		if seen[center] {
			return fmt.Errorf("%w: center %s repeats on %s", ErrInvalidSnapshot, center.Name(), face)
		}
		seen[center] = true
	}
	return nil
}

// IsSolved returns true if every face shows a single color.
func (s Snapshot) IsSolved() bool {
	for _, face := range Faces {
		for _, c := range s.Faces[face] {
			if c != s.Faces[face][4] {
				return false
			}
		}
	}
	return true
}

// MarshalJSON encodes the snapshot as {"U":["yellow",...],...}.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	out := make(map[string][9]Color, len(Faces))
	for _, face := range Faces {
		out[face.String()] = s.Faces[face]
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the form produced by MarshalJSON. Every face must be
// present with exactly 9 known colors.
func (s *Snapshot) UnmarshalJSON(b []byte) error {
	var in map[string][]Color
	if err := json.Unmarshal(b, &in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	var snap Snapshot
	for _, face := range Faces {
		facelets, ok := in[face.String()]
		if !ok {
			return fmt.Errorf("%w: missing face %s", ErrInvalidSnapshot, face)
		}
		if len(facelets) != 9 {
			return fmt.Errorf("%w: face %s has %d facelets", ErrInvalidSnapshot, face, len(facelets))
		}
		copy(snap.Faces[face][:], facelets)
	}
	if len(in) != len(Faces) {
		return fmt.Errorf("%w: unexpected faces in %d entries", ErrInvalidSnapshot, len(in))
	}

	*s = snap
	return nil
}

// String returns a text representation of the cube.
func (s Snapshot) String() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(&b, s.Faces[FaceU], row)
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			writeRow(&b, s.Faces[face], row)
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(&b, s.Faces[FaceD], row)
		b.WriteString("\n")
	}

	return b.String()
}
