package cubestate

import "fmt"

// strip is the 3 facelets of one face that border a turning face.
type strip struct {
	face Face
	idx  [3]int
}

// rings holds the boundary cycle of each clockwise quarter turn.
// ring[0] receives ring[1], ring[1] receives ring[2], ring[2] receives ring[3]
// and ring[3] receives the old ring[0]. Index order inside a strip follows the
// physical adjacency, so B's column runs reversed against U/D for R and L, and
// L's column runs reversed against U's bottom row for F.
var rings = [6][4]strip{
	FaceU: {
		{FaceF, [3]int{0, 1, 2}},
		{FaceR, [3]int{0, 1, 2}},
		{FaceB, [3]int{0, 1, 2}},
		{FaceL, [3]int{0, 1, 2}},
	},
	FaceD: {
		{FaceF, [3]int{6, 7, 8}},
		{FaceL, [3]int{6, 7, 8}},
		{FaceB, [3]int{6, 7, 8}},
		{FaceR, [3]int{6, 7, 8}},
	},
	FaceL: {
		{FaceU, [3]int{0, 3, 6}},
		{FaceB, [3]int{8, 5, 2}},
		{FaceD, [3]int{0, 3, 6}},
		{FaceF, [3]int{0, 3, 6}},
	},
	FaceR: {
		{FaceU, [3]int{2, 5, 8}},
		{FaceF, [3]int{2, 5, 8}},
		{FaceD, [3]int{2, 5, 8}},
		{FaceB, [3]int{6, 3, 0}},
	},
	FaceF: {
		{FaceU, [3]int{6, 7, 8}},
		{FaceL, [3]int{8, 5, 2}},
		{FaceD, [3]int{2, 1, 0}},
		{FaceR, [3]int{0, 3, 6}},
	},
	FaceB: {
		{FaceU, [3]int{2, 1, 0}},
		{FaceR, [3]int{8, 5, 2}},
		{FaceD, [3]int{6, 7, 8}},
		{FaceL, [3]int{0, 3, 6}},
	},
}

// Internal cycles of a clockwise quarter turn on the turning face.
// The value at position k moves to the next position in the list.
var (
	cornerCycle = [4]int{0, 2, 8, 6}
	edgeCycle   = [4]int{1, 5, 7, 3}
)

// ApplyTurn turns one face. Clockwise and counter-clockwise are quarter
// turns as seen from outside that face; Half is two clockwise quarters.
// An invalid face or modifier leaves the state untouched and returns an
// error wrapping ErrInvalidFace or ErrInvalidModifier.
func (s *State) ApplyTurn(face Face, mod Modifier) error {
	if !face.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidFace, int(face))
	}
	if !mod.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidModifier, int(mod))
	}
	for i := 0; i < mod.Quarters(); i++ {
		s.quarterTurn(face)
	}
	return nil
}

// quarterTurn applies one clockwise quarter turn.
func (s *State) quarterTurn(face Face) {
	f := &s.facelets[face]
	cycle(f, cornerCycle)
	cycle(f, edgeCycle)
	s.cycleRing(rings[face])
}

// cycle moves the value at idx[k] to idx[k+1], wrapping at the end.
func cycle(f *[9]Color, idx [4]int) {
	temp := f[idx[3]]
	f[idx[3]] = f[idx[2]]
	f[idx[2]] = f[idx[1]]
	f[idx[1]] = f[idx[0]]
	f[idx[0]] = temp
}

// cycleRing rotates the four boundary strips one step.
func (s *State) cycleRing(ring [4]strip) {
	// Save first strip
	var t [3]Color
	for i, pos := range ring[0].idx {
		t[i] = s.facelets[ring[0].face][pos]
	}

	// 0 <- 1 <- 2 <- 3
	for k := 0; k < 3; k++ {
		dst, src := ring[k], ring[k+1]
		for i := range dst.idx {
			s.facelets[dst.face][dst.idx[i]] = s.facelets[src.face][src.idx[i]]
		}
	}

	// 3 <- 0 (saved)
	last := ring[3]
	for i, pos := range last.idx {
		s.facelets[last.face][pos] = t[i]
	}
}
