package cubestate

import "fmt"

// Color represents a facelet color.
type Color byte

const (
	White  Color = 0 // Down face when solved
	Yellow Color = 1 // Up face when solved
	Blue   Color = 2 // Back face when solved
	Green  Color = 3 // Front face when solved
	Red    Color = 4 // Left face when solved
	Orange Color = 5 // Right face when solved
)

var colorNames = [...]string{"white", "yellow", "blue", "green", "red", "orange"}

// Valid reports whether c is one of the six palette colors.
func (c Color) Valid() bool {
	return c <= Orange
}

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Blue:
		return "B"
	case Green:
		return "G"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Name returns the lower-case color name used in JSON.
func (c Color) Name() string {
	if !c.Valid() {
		return "unknown"
	}
	return colorNames[c]
}

// MarshalText encodes the color by name.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: color %d", ErrInvalidSnapshot, c)
	}
	return []byte(colorNames[c]), nil
}

// UnmarshalText decodes a color name.
func (c *Color) UnmarshalText(b []byte) error {
	for i, name := range colorNames {
		if string(b) == name {
			*c = Color(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown color %q", ErrInvalidSnapshot, string(b))
}

// Face identifies one of the six cube faces.
type Face int

const (
	FaceU Face = 0 // Up
	FaceD Face = 1 // Down
	FaceL Face = 2 // Left
	FaceR Face = 3 // Right
	FaceF Face = 4 // Front
	FaceB Face = 5 // Back
)

// Faces lists every face in identifier order.
var Faces = [6]Face{FaceU, FaceD, FaceL, FaceR, FaceF, FaceB}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= FaceU && f <= FaceB
}

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceL:
		return "L"
	case FaceR:
		return "R"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	default:
		return "?"
	}
}

// SolvedColor returns the color a face shows when the cube is solved.
func (f Face) SolvedColor() Color {
	switch f {
	case FaceU:
		return Yellow
	case FaceD:
		return White
	case FaceL:
		return Red
	case FaceR:
		return Orange
	case FaceF:
		return Green
	case FaceB:
		return Blue
	default:
		return White
	}
}

// Axis returns the rotation axis shared with the opposite face.
func (f Face) Axis() Axis {
	return Axis(f / 2)
}

// Opposite returns the face on the other end of the same axis.
// U<->D, L<->R, F<->B.
func (f Face) Opposite() Face {
	return f ^ 1
}

// parseFace maps a notation letter to a face. Only upper-case letters are accepted.
func parseFace(b byte) (Face, bool) {
	switch b {
	case 'U':
		return FaceU, true
	case 'D':
		return FaceD, true
	case 'L':
		return FaceL, true
	case 'R':
		return FaceR, true
	case 'F':
		return FaceF, true
	case 'B':
		return FaceB, true
	default:
		return 0, false
	}
}

// Axis is one of the three opposing-face pairs.
type Axis int

const (
	AxisUD Axis = 0
	AxisLR Axis = 1
	AxisFB Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisUD:
		return "UD"
	case AxisLR:
		return "LR"
	case AxisFB:
		return "FB"
	default:
		return "?"
	}
}
