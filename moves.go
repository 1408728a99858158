package cubestate

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	s.ApplyMoves(cubestate.R, cubestate.U, cubestate.RPrime, cubestate.UPrime)
var (
	// Up face moves
	U      = Move{Face: FaceU, Modifier: Clockwise}
	UPrime = Move{Face: FaceU, Modifier: CounterClockwise}
	U2     = Move{Face: FaceU, Modifier: Half}

	// Down face moves
	D      = Move{Face: FaceD, Modifier: Clockwise}
	DPrime = Move{Face: FaceD, Modifier: CounterClockwise}
	D2     = Move{Face: FaceD, Modifier: Half}

	// Left face moves
	L      = Move{Face: FaceL, Modifier: Clockwise}
	LPrime = Move{Face: FaceL, Modifier: CounterClockwise}
	L2     = Move{Face: FaceL, Modifier: Half}

	// Right face moves
	R      = Move{Face: FaceR, Modifier: Clockwise}
	RPrime = Move{Face: FaceR, Modifier: CounterClockwise}
	R2     = Move{Face: FaceR, Modifier: Half}

	// Front face moves
	F      = Move{Face: FaceF, Modifier: Clockwise}
	FPrime = Move{Face: FaceF, Modifier: CounterClockwise}
	F2     = Move{Face: FaceF, Modifier: Half}

	// Back face moves
	B      = Move{Face: FaceB, Modifier: Clockwise}
	BPrime = Move{Face: FaceB, Modifier: CounterClockwise}
	B2     = Move{Face: FaceB, Modifier: Half}
)

// AllMoves returns the 18-element move space, face by face.
func AllMoves() []Move {
	moves := make([]Move, 0, 18)
	for _, face := range Faces {
		for _, mod := range []Modifier{Clockwise, CounterClockwise, Half} {
			moves = append(moves, Move{Face: face, Modifier: mod})
		}
	}
	return moves
}

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
