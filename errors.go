package cubestate

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cubestate package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubestate: invalid move notation")
	ErrInvalidPolicy   = errors.New("cubestate: invalid scramble policy")

	// Turn errors
	ErrInvalidFace     = errors.New("cubestate: invalid face")
	ErrInvalidModifier = errors.New("cubestate: invalid turn modifier")

	// Consumer errors
	ErrInvalidSnapshot = errors.New("cubestate: invalid state snapshot")
)

// NotationError reports a token that does not match the move grammar.
// Position is the 0-based index of the token within its sequence.
type NotationError struct {
	Token    string
	Position int
}

func (e *NotationError) Error() string {
	return fmt.Sprintf("%v: %q at position %d", ErrInvalidNotation, e.Token, e.Position)
}

func (e *NotationError) Unwrap() error {
	return ErrInvalidNotation
}
