package cubestate

import "strings"

// State is the 54-facelet configuration of a 3x3 cube.
// Each face has 9 facelets indexed as seen head-on:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face color and never moves.
// Use NewState; the zero value is not a valid cube.
//
// A State is not safe for concurrent mutation. Callers that drive turns
// from several goroutines should hold one State per session or use Session.
type State struct {
	// facelets[face][position] = color
	facelets [6][9]Color
}

// NewState creates a solved cube: each face filled with its SolvedColor.
func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset returns the state to the solved configuration.
func (s *State) Reset() {
	for _, face := range Faces {
		color := face.SolvedColor()
		for i := range s.facelets[face] {
			s.facelets[face][i] = color
		}
	}
}

// Clone creates a deep copy of the state.
func (s *State) Clone() *State {
	clone := *s
	return &clone
}

// Equal reports whether both states have the same facelet arrangement.
func (s *State) Equal(other *State) bool {
	return other != nil && s.facelets == other.facelets
}

// Facelets returns a copy of one face's 9 facelets.
func (s *State) Facelets(face Face) [9]Color {
	if !face.Valid() {
		return [9]Color{}
	}
	return s.facelets[face]
}

// At returns the color at one facelet position.
func (s *State) At(face Face, index int) Color {
	return s.facelets[face][index]
}

// IsSolved returns true if every face shows a single color.
func (s *State) IsSolved() bool {
	for _, face := range Faces {
		center := s.facelets[face][4]
		for _, c := range s.facelets[face] {
			if c != center {
				return false
			}
		}
	}
	return true
}

// Misplaced counts facelets whose color differs from their face's center.
func (s *State) Misplaced() int {
	n := 0
	for _, face := range Faces {
		center := s.facelets[face][4]
		for _, c := range s.facelets[face] {
			if c != center {
				n++
			}
		}
	}
	return n
}

// ColorCounts returns how many facelets show each color.
func (s *State) ColorCounts() [6]int {
	var counts [6]int
	for _, face := range Faces {
		for _, c := range s.facelets[face] {
			if c.Valid() {
				counts[c]++
			}
		}
	}
	return counts
}

// Snapshot returns a read-only copy of the current configuration.
func (s *State) Snapshot() Snapshot {
	return Snapshot{Faces: s.facelets}
}

// String returns an unfolded text net of the cube:
//
//	      U
//	L F R B
//	      D
func (s *State) String() string {
	return s.Snapshot().String()
}

// writeRow writes one 3-facelet row of a face.
func writeRow(b *strings.Builder, row [9]Color, r int) {
	for col := 0; col < 3; col++ {
		b.WriteString(row[r*3+col].String())
		b.WriteByte(' ')
	}
}
