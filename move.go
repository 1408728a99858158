package cubestate

// Modifier is the direction and magnitude of a face turn.
type Modifier int

const (
	Clockwise        Modifier = 0 // Quarter turn, no suffix
	CounterClockwise Modifier = 1 // Quarter turn, ' suffix
	Half             Modifier = 2 // 180 degrees, 2 suffix
)

// Valid reports whether m is one of the three modifiers.
func (m Modifier) Valid() bool {
	return m >= Clockwise && m <= Half
}

// Suffix returns the notation suffix: "", "'" or "2".
func (m Modifier) Suffix() string {
	switch m {
	case CounterClockwise:
		return "'"
	case Half:
		return "2"
	default:
		return ""
	}
}

// Quarters returns the number of clockwise quarter turns the modifier stands for.
func (m Modifier) Quarters() int {
	switch m {
	case Clockwise:
		return 1
	case CounterClockwise:
		return 3
	case Half:
		return 2
	default:
		return 0
	}
}

// Inverse returns the modifier that undoes m.
func (m Modifier) Inverse() Modifier {
	switch m {
	case Clockwise:
		return CounterClockwise
	case CounterClockwise:
		return Clockwise
	default:
		return m
	}
}

func (m Modifier) String() string {
	switch m {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	case Half:
		return "half"
	default:
		return "?"
	}
}

// Move is a single face turn.
type Move struct {
	Face     Face     // Which face to turn
	Modifier Modifier // Direction and amount
}

// Valid reports whether both the face and the modifier are valid.
func (m Move) Valid() bool {
	return m.Face.Valid() && m.Modifier.Valid()
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	return m.Face.String() + m.Modifier.Suffix()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	return Move{Face: m.Face, Modifier: m.Modifier.Inverse()}
}

// Axis returns the rotation axis of the turned face.
func (m Move) Axis() Axis {
	return m.Face.Axis()
}

// ParseMove parses one token of the grammar [UDLRFB](['2])?.
// Anything else, including surrounding whitespace or lower-case letters,
// returns a *NotationError.
func ParseMove(token string) (Move, error) {
	if len(token) == 0 || len(token) > 2 {
		return Move{}, &NotationError{Token: token}
	}

	face, ok := parseFace(token[0])
	if !ok {
		return Move{}, &NotationError{Token: token}
	}

	mod := Clockwise
	if len(token) == 2 {
		switch token[1] {
		case '\'':
			mod = CounterClockwise
		case '2':
			mod = Half
		default:
			return Move{}, &NotationError{Token: token}
		}
	}

	return Move{Face: face, Modifier: mod}, nil
}

// MustParseMove is like ParseMove but panics on an invalid token.
// It is meant for package-level tables and tests.
func MustParseMove(token string) Move {
	m, err := ParseMove(token)
	if err != nil {
		panic(err)
	}
	return m
}
